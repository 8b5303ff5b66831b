package rex

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/revoa/revoa-api/infrastructure/repository/mocks"
	"github.com/revoa/revoa-api/internal/config"
)

func TestService_Dismiss(t *testing.T) {
	tests := []struct {
		name         string
		accountID    string
		suggestionID string
		setup        func(repo *mocks.MockRexSuggestionRepository)
		expectedErr  error
	}{
		{
			name:         "Dispensa restrita à conta dona da sugestão",
			accountID:    "ACC001",
			suggestionID: "sug_abc123",
			setup: func(repo *mocks.MockRexSuggestionRepository) {
				repo.EXPECT().Dismiss("ACC001", "sug_abc123").Return(nil)
			},
		},
		{
			name:         "Sugestão de outra conta não é encontrada",
			accountID:    "ACC002",
			suggestionID: "sug_abc123",
			setup: func(repo *mocks.MockRexSuggestionRepository) {
				// A query filtra por conta; para a conta errada nenhuma linha é afetada
				repo.EXPECT().Dismiss("ACC002", "sug_abc123").Return(sql.ErrNoRows)
			},
			expectedErr: ErrSuggestionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rexSuggestionRepo := mocks.NewMockRexSuggestionRepository(ctrl)
			tt.setup(rexSuggestionRepo)

			service := NewService(&config.Config{}, nil, nil, rexSuggestionRepo)

			err := service.Dismiss(tt.accountID, tt.suggestionID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
