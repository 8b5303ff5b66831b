package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/infrastructure/repository"
	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/internal/usecases/insighting"
)

// PlatformInsightSyncConfig representa a configuração do agendador de métricas de uma plataforma
type PlatformInsightSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// PlatformInsightSyncService agenda e executa a sincronização diária de métricas
// de uma plataforma de anúncios. Uma instância por plataforma habilitada.
type PlatformInsightSyncService struct {
	scheduler           *gocron.Scheduler
	config              PlatformInsightSyncConfig
	integrator          insighting.PlatformIntegrator
	accountRepo         repository.AccountRepository
	adInsightRepo       repository.AdInsightRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewPlatformInsightSyncService cria o serviço de sincronização para uma plataforma
func NewPlatformInsightSyncService(
	integrator insighting.PlatformIntegrator,
	accountRepo repository.AccountRepository,
	adInsightRepo repository.AdInsightRepository,
	appConfig *config.Config,
) *PlatformInsightSyncService {
	syncConfig := PlatformInsightSyncConfig{
		CronSchedule:        appConfig.InsightSync.CronSchedule,
		LookbackDays:        appConfig.InsightSync.LookbackDays,
		RequestDelaySeconds: appConfig.InsightSync.RequestDelaySeconds,
		SyncEnabled:         platformEnabled(appConfig, integrator.Platform()),
	}

	logrus.WithFields(logrus.Fields{
		"platform":              integrator.Platform(),
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de métricas carregada")

	return &PlatformInsightSyncService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        syncConfig,
		integrator:    integrator,
		accountRepo:   accountRepo,
		adInsightRepo: adInsightRepo,
	}
}

func platformEnabled(cfg *config.Config, platform domain.Platform) bool {
	switch platform {
	case domain.PlatformMeta:
		return cfg.InsightSync.MetaEnabled
	case domain.PlatformGoogle:
		return cfg.InsightSync.GoogleEnabled
	case domain.PlatformTikTok:
		return cfg.InsightSync.TikTokEnabled
	}
	return false
}

// Start agenda a sincronização e para o agendador quando o contexto é cancelado
func (s *PlatformInsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.WithField("platform", s.integrator.Platform()).Info("Sincronização de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"platform": s.integrator.Platform(),
		"cron":     s.config.CronSchedule,
	}).Info("Iniciando agendador de sincronização de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("platform", s.integrator.Platform()).Info("Parando agendador de sincronização de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a sincronização fora do horário agendado
func (s *PlatformInsightSyncService) TriggerManualSync() {
	go s.syncAllAccounts()
}

// Status informa se há sincronização em andamento e os horários da última execução
func (s *PlatformInsightSyncService) Status() (running bool, startedAt, completedAt time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt
}

func (s *PlatformInsightSyncService) syncAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("platform", s.integrator.Platform()).Info("Sincronização já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	platform := s.integrator.Platform()

	logrus.WithField("platform", platform).Info("Iniciando sincronização de métricas para todas as contas ativas")

	accounts, err := s.accountRepo.ListAccountsByPlatform(platform, []domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas para sincronização de métricas")
		return
	}

	if len(accounts) == 0 {
		logrus.WithField("platform", platform).Info("Nenhuma conta ativa encontrada para sincronização")
		return
	}

	dates := s.datesToProcess()

	for _, account := range accounts {
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		s.syncAccount(account, dates)
	}

	logrus.WithFields(logrus.Fields{
		"platform": platform,
		"duration": time.Since(startTime).String(),
		"accounts": len(accounts),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de métricas concluída")
}

// datesToProcess devolve a janela de datas, de ontem para trás
func (s *PlatformInsightSyncService) datesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1)
	}
	return dates
}

func (s *PlatformInsightSyncService) syncAccount(account *domain.AdAccount, dates []time.Time) {
	logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"external_id":  account.ExternalID,
		"account_name": account.Name,
		"total_dates":  len(dates),
	}).Info("Processando métricas da conta")

	for _, date := range dates {
		entries, err := s.integrator.FetchDailyEntityMetrics(account.ExternalID, date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"date":       date.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("Erro ao buscar métricas da plataforma")
			continue
		}

		for _, entry := range entries {
			// A plataforma devolve o ID externo; persistimos com o ID interno
			entry.AccountID = account.ID

			if err := s.adInsightRepo.SaveOrUpdate(entry); err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": account.ID,
					"entity_id":  entry.EntityID,
					"date":       date.Format(time.DateOnly),
					"error":      err.Error(),
				}).Error("Erro ao salvar métricas da entidade")
			}
		}

		// Espaçar as requisições para não estourar os limites da API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}
}
