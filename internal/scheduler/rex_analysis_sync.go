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
	"github.com/revoa/revoa-api/internal/usecases/rex"
)

// RexAnalysisSyncService agenda a análise proativa diária: roda o Rex sobre as
// métricas recém-sincronizadas de cada conta ativa e limpa sugestões antigas
type RexAnalysisSyncService struct {
	scheduler           *gocron.Scheduler
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	rexSuggestionRepo   repository.RexSuggestionRepository
	rexService          rex.Analyzer
	analysisRunning     bool
	analysisMutex       sync.Mutex
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time
}

func NewRexAnalysisSyncService(
	accountRepo repository.AccountRepository,
	rexSuggestionRepo repository.RexSuggestionRepository,
	rexService rex.Analyzer,
	appConfig *config.Config,
) *RexAnalysisSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.RexAnalysisSync.CronSchedule,
		"lookback_days": appConfig.RexAnalysisSync.LookbackDays,
		"enabled":       appConfig.RexAnalysisSync.Enabled,
	}).Info("Configuração do agendador de análise proativa carregada")

	return &RexAnalysisSyncService{
		scheduler:         gocron.NewScheduler(time.Local),
		appConfig:         appConfig,
		accountRepo:       accountRepo,
		rexSuggestionRepo: rexSuggestionRepo,
		rexService:        rexService,
	}
}

// Start agenda a análise e para o agendador quando o contexto é cancelado
func (s *RexAnalysisSyncService) Start(ctx context.Context) error {
	if !s.appConfig.RexAnalysisSync.Enabled {
		logrus.Info("Análise proativa desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.appConfig.RexAnalysisSync.CronSchedule).Info("Iniciando agendador de análise proativa")

	_, err := s.scheduler.Cron(s.appConfig.RexAnalysisSync.CronSchedule).Do(func() {
		s.analyzeAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar análise proativa: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de análise proativa")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a análise fora do horário agendado
func (s *RexAnalysisSyncService) TriggerManualSync() {
	go s.analyzeAllAccounts()
}

// Status informa se há análise em andamento e os horários da última execução
func (s *RexAnalysisSyncService) Status() (running bool, startedAt, completedAt time.Time) {
	s.analysisMutex.Lock()
	defer s.analysisMutex.Unlock()
	return s.analysisRunning, s.lastRunStartedAt, s.lastRunCompletedAt
}

func (s *RexAnalysisSyncService) analyzeAllAccounts() {
	s.analysisMutex.Lock()
	if s.analysisRunning {
		s.analysisMutex.Unlock()
		logrus.Info("Análise proativa já em andamento, ignorando")
		return
	}
	s.analysisRunning = true
	s.lastRunStartedAt = time.Now()
	s.analysisMutex.Unlock()

	defer func() {
		s.analysisMutex.Lock()
		s.analysisRunning = false
		s.lastRunCompletedAt = time.Now()
		s.analysisMutex.Unlock()
	}()

	startTime := time.Now()

	logrus.Info("Iniciando análise proativa para todas as contas ativas")

	accounts, err := s.accountRepo.ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas para análise proativa")
		return
	}

	totalSaved := 0
	for _, account := range accounts {
		saved, err := s.rexService.AnalyzeAccount(account.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err.Error(),
			}).Error("Erro ao analisar conta")
			continue
		}
		totalSaved += len(saved)
	}

	// Limpar sugestões expiradas há mais tempo que a janela de retenção
	cutoff := time.Now().AddDate(0, 0, -s.appConfig.Suggestions.CleanupOlderDays)
	deleted, err := s.rexSuggestionRepo.DeleteExpiredBefore(cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao limpar sugestões expiradas")
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"accounts": len(accounts),
		"saved":    totalSaved,
		"deleted":  deleted,
	}).Info("Análise proativa concluída")
}
