package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/revoa/revoa-api/infrastructure/repository/mocks"
	"github.com/revoa/revoa-api/internal/config"
	"github.com/revoa/revoa-api/internal/domain"
	rexmocks "github.com/revoa/revoa-api/internal/usecases/rex/mocks"
)

func TestRexAnalysisSyncService_analyzeAllAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)
	mockRexSuggestionRepo := mocks.NewMockRexSuggestionRepository(ctrl)
	mockRexService := rexmocks.NewMockAnalyzer(ctrl)

	appConfig := &config.Config{}
	appConfig.Suggestions.CleanupOlderDays = 30

	service := &RexAnalysisSyncService{
		appConfig:         appConfig,
		accountRepo:       mockAccountRepo,
		rexSuggestionRepo: mockRexSuggestionRepo,
		rexService:        mockRexService,
	}

	tests := []struct {
		name  string
		setup func()
	}{
		{
			name: "Deve analisar todas as contas ativas e limpar sugestões antigas",
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return([]*domain.AdAccount{
						{ID: "ACC001", Name: "Loja A"},
						{ID: "ACC002", Name: "Loja B"},
					}, nil)

				mockRexService.EXPECT().
					AnalyzeAccount("ACC001").
					Return([]*domain.RexSuggestionEntry{{ID: "rex_1"}}, nil)
				mockRexService.EXPECT().
					AnalyzeAccount("ACC002").
					Return([]*domain.RexSuggestionEntry{}, nil)

				// Janela de retenção de 30 dias
				mockRexSuggestionRepo.EXPECT().
					DeleteExpiredBefore(gomock.Any()).
					DoAndReturn(func(cutoff time.Time) (int64, error) {
						expected := time.Now().AddDate(0, 0, -30)
						assert.WithinDuration(t, expected, cutoff, time.Minute)
						return 3, nil
					})
			},
		},
		{
			name: "Erro em uma conta não deve interromper as demais",
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return([]*domain.AdAccount{
						{ID: "ACC001", Name: "Loja A"},
						{ID: "ACC002", Name: "Loja B"},
					}, nil)

				mockRexService.EXPECT().
					AnalyzeAccount("ACC001").
					Return(nil, assert.AnError)
				mockRexService.EXPECT().
					AnalyzeAccount("ACC002").
					Return([]*domain.RexSuggestionEntry{}, nil)

				mockRexSuggestionRepo.EXPECT().
					DeleteExpiredBefore(gomock.Any()).
					Return(int64(0), nil)
			},
		},
		{
			name: "Erro ao listar contas encerra sem análise",
			setup: func() {
				mockAccountRepo.EXPECT().
					ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).
					Return(nil, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.analyzeAllAccounts()

			running, _, completedAt := service.Status()
			assert.False(t, running)
			assert.False(t, completedAt.IsZero())
		})
	}
}
