package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/revoa/revoa-api/internal/usecases/rex"
	"github.com/revoa/revoa-api/pkg/apiErrors"
	"github.com/revoa/revoa-api/pkg/log"
)

// GetRexSuggestions lista as sugestões proativas ativas da conta
func GetRexSuggestions(service rex.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("rex: listing active suggestions for account")

		suggestions, err := service.ListForAccount(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("rex: failed to list suggestions for account")

			if errors.Is(err, rex.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar sugestões da conta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suggestions); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("rex: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// DismissRexSuggestion marca uma sugestão como dispensada pelo usuário
func DismissRexSuggestion(service rex.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("id")
		suggestionID := params.ByName("sid")

		if suggestionID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da sugestão é obrigatório", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id":    accountID,
			"suggestion_id": suggestionID,
		}).Info("rex: dismissing suggestion")

		if err := service.Dismiss(accountID, suggestionID); err != nil {
			logger.WithFields(log.Fields{
				"suggestion_id": suggestionID,
				"error":         err.Error(),
			}).Error("rex: failed to dismiss suggestion")

			if errors.Is(err, rex.ErrSuggestionNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrSuggestionNotFound, "Sugestão não encontrada", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao dispensar sugestão", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":       "Sugestão dispensada com sucesso",
			"suggestion_id": suggestionID,
		})
	})
}
