package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/revoa/revoa-api/infrastructure/repository/mocks"
	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/domain"
	integratormocks "github.com/revoa/revoa-api/internal/usecases/insighting/mocks"
)

func TestPlatformInsightSyncService_syncAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := integratormocks.NewMockPlatformIntegrator(ctrl)
	mockAdInsightRepo := mocks.NewMockAdInsightRepository(ctrl)

	service := &PlatformInsightSyncService{
		config: PlatformInsightSyncConfig{
			LookbackDays:        1,
			RequestDelaySeconds: 0,
		},
		integrator:    mockIntegrator,
		adInsightRepo: mockAdInsightRepo,
	}

	account := &domain.AdAccount{
		ID:         "ACC001",
		ExternalID: "act_999",
		Name:       "Loja Principal",
		Platform:   domain.PlatformMeta,
	}
	date := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		setup func()
	}{
		{
			name: "Deve persistir as entradas com o ID interno da conta",
			setup: func() {
				mockIntegrator.EXPECT().
					FetchDailyEntityMetrics("act_999", date).
					Return([]*domain.AdInsightEntry{
						{AccountID: "act_999", EntityID: "camp_1", EntityType: domain.EntityTypeCampaign},
						{AccountID: "act_999", EntityID: "camp_2", EntityType: domain.EntityTypeCampaign},
					}, nil)

				// As entradas chegam com o ID externo e devem ser gravadas com o interno
				mockAdInsightRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(entry *domain.AdInsightEntry) error {
						assert.Equal(t, "ACC001", entry.AccountID)
						return nil
					}).
					Times(2)
			},
		},
		{
			name: "Erro na plataforma não deve interromper a sincronização",
			setup: func() {
				mockIntegrator.EXPECT().
					FetchDailyEntityMetrics("act_999", date).
					Return(nil, assert.AnError)
			},
		},
		{
			name: "Erro ao salvar uma entrada não deve impedir as demais",
			setup: func() {
				mockIntegrator.EXPECT().
					FetchDailyEntityMetrics("act_999", date).
					Return([]*domain.AdInsightEntry{
						{AccountID: "act_999", EntityID: "camp_1", EntityType: domain.EntityTypeCampaign},
						{AccountID: "act_999", EntityID: "camp_2", EntityType: domain.EntityTypeCampaign},
					}, nil)

				mockAdInsightRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(assert.AnError)
				mockAdInsightRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.syncAccount(account, []time.Time{date})
		})
	}
}

func TestPlatformInsightSyncService_syncAllAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := integratormocks.NewMockPlatformIntegrator(ctrl)
	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockAdInsightRepo := mocks.NewMockAdInsightRepository(ctrl)

	mockIntegrator.EXPECT().Platform().Return(domain.PlatformMeta).AnyTimes()

	service := &PlatformInsightSyncService{
		config: PlatformInsightSyncConfig{
			LookbackDays:        1,
			RequestDelaySeconds: 0,
		},
		integrator:    mockIntegrator,
		accountRepo:   mockAccountRepo,
		adInsightRepo: mockAdInsightRepo,
	}

	tests := []struct {
		name  string
		setup func()
	}{
		{
			name: "Conta sem external_id deve ser pulada",
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccountsByPlatform(domain.PlatformMeta, []domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return([]*domain.AdAccount{
						{ID: "ACC001", ExternalID: "", Name: "Sem vínculo"},
						{ID: "ACC002", ExternalID: "act_2", Name: "Loja B"},
					}, nil)

				// Apenas a conta com external_id gera chamada à plataforma
				mockIntegrator.EXPECT().
					FetchDailyEntityMetrics("act_2", gomock.Any()).
					Return([]*domain.AdInsightEntry{}, nil)
			},
		},
		{
			name: "Erro ao listar contas encerra a execução",
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccountsByPlatform(domain.PlatformMeta, []domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return(nil, assert.AnError)
			},
		},
		{
			name: "Nenhuma conta ativa encerra sem chamadas à plataforma",
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccountsByPlatform(domain.PlatformMeta, []domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return([]*domain.AdAccount{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.syncAllAccounts()

			running, _, completedAt := service.Status()
			assert.False(t, running)
			assert.False(t, completedAt.IsZero())
		})
	}
}

func TestPlatformEnabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.InsightSync.MetaEnabled = true
	cfg.InsightSync.GoogleEnabled = false
	cfg.InsightSync.TikTokEnabled = true

	tests := []struct {
		name     string
		platform domain.Platform
		expected bool
	}{
		{name: "Meta habilitada", platform: domain.PlatformMeta, expected: true},
		{name: "Google desabilitada", platform: domain.PlatformGoogle, expected: false},
		{name: "TikTok habilitada", platform: domain.PlatformTikTok, expected: true},
		{name: "Plataforma desconhecida", platform: domain.Platform("other"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, platformEnabled(cfg, tt.platform))
		})
	}
}

func TestDatesToProcess(t *testing.T) {
	service := &PlatformInsightSyncService{
		config: PlatformInsightSyncConfig{LookbackDays: 3},
	}

	dates := service.datesToProcess()

	assert.Len(t, dates, 3)

	yesterday := time.Now().AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Format(time.DateOnly), dates[0].Format(time.DateOnly))

	// Sempre de ontem para trás, um dia por posição
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].Before(dates[i-1]))
	}
}
