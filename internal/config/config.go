package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Meta            Meta            `mapstructure:",squash"`
	GoogleAds       GoogleAds       `mapstructure:",squash"`
	TikTok          TikTok          `mapstructure:",squash"`
	Shopify         Shopify         `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	InsightSync     InsightSync     `mapstructure:",squash"`
	RexAnalysisSync RexAnalysisSync `mapstructure:",squash"`
	Suggestions     Suggestions     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL        string `mapstructure:"meta_base_url"`
	URL            string `mapstructure:"meta_url"`
	Version        string `mapstructure:"meta_version"`
	AccessToken    string `mapstructure:"meta_access_token"`
	AppID          string `mapstructure:"meta_app_id"`
	AppSecret      string `mapstructure:"meta_app_secret"`
	BusinessID     string `mapstructure:"meta_business_id"`
	LongLivedToken string `mapstructure:"meta_long_lived_token"`
}

type GoogleAds struct {
	URL            string `mapstructure:"google_ads_url"`
	DeveloperToken string `mapstructure:"google_ads_developer_token"`
	ClientID       string `mapstructure:"google_ads_client_id"`
	ClientSecret   string `mapstructure:"google_ads_client_secret"`
	RefreshToken   string `mapstructure:"google_ads_refresh_token"`
	LoginCustomer  string `mapstructure:"google_ads_login_customer_id"`
}

type TikTok struct {
	URL         string `mapstructure:"tiktok_url"`
	AppID       string `mapstructure:"tiktok_app_id"`
	AppSecret   string `mapstructure:"tiktok_app_secret"`
	AccessToken string `mapstructure:"tiktok_access_token"`
}

type Shopify struct {
	APIVersion    string `mapstructure:"shopify_api_version"`
	AccessToken   string `mapstructure:"shopify_access_token"`
	WebhookSecret string `mapstructure:"shopify_webhook_secret"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// InsightSync configura os agendadores de sincronização de métricas por plataforma
type InsightSync struct {
	CronSchedule        string `mapstructure:"insight_sync_cron"`
	LookbackDays        int    `mapstructure:"insight_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"insight_sync_request_delay_seconds"`
	MetaEnabled         bool   `mapstructure:"insight_sync_meta_enabled"`
	GoogleEnabled       bool   `mapstructure:"insight_sync_google_enabled"`
	TikTokEnabled       bool   `mapstructure:"insight_sync_tiktok_enabled"`
}

// RexAnalysisSync configura o agendador da análise proativa
type RexAnalysisSync struct {
	CronSchedule string `mapstructure:"rex_analysis_cron"`
	LookbackDays int    `mapstructure:"rex_analysis_lookback_days"`
	Enabled      bool   `mapstructure:"rex_analysis_enabled"`
}

// Suggestions configura a validade das sugestões geradas
type Suggestions struct {
	TTLHours         int `mapstructure:"suggestions_ttl_hours"`
	CleanupOlderDays int `mapstructure:"suggestions_cleanup_older_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/revoa")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_BUSINESS_ID", "")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("GOOGLE_ADS_URL", "https://googleads.googleapis.com/v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")

	viper.SetDefault("TIKTOK_URL", "https://business-api.tiktok.com/open_api/v1.3")
	viper.SetDefault("TIKTOK_APP_ID", "")
	viper.SetDefault("TIKTOK_APP_SECRET", "")
	viper.SetDefault("TIKTOK_ACCESS_TOKEN", "")

	viper.SetDefault("SHOPIFY_API_VERSION", "2024-10")
	viper.SetDefault("SHOPIFY_ACCESS_TOKEN", "")
	viper.SetDefault("SHOPIFY_WEBHOOK_SECRET", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Defaults para sincronização de métricas
	viper.SetDefault("INSIGHT_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("INSIGHT_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("INSIGHT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("INSIGHT_SYNC_META_ENABLED", false)
	viper.SetDefault("INSIGHT_SYNC_GOOGLE_ENABLED", false)
	viper.SetDefault("INSIGHT_SYNC_TIKTOK_ENABLED", false)

	// Defaults para a análise proativa do Rex
	viper.SetDefault("REX_ANALYSIS_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("REX_ANALYSIS_LOOKBACK_DAYS", 7)
	viper.SetDefault("REX_ANALYSIS_ENABLED", false)

	viper.SetDefault("SUGGESTIONS_TTL_HOURS", 72)
	viper.SetDefault("SUGGESTIONS_CLEANUP_OLDER_DAYS", 30)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
