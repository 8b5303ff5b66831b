package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/internal/usecases/suggesting"
	"github.com/revoa/revoa-api/pkg/apiErrors"
	"github.com/revoa/revoa-api/pkg/log"
	"github.com/revoa/revoa-api/pkg/utils"
)

// GetAdAccountSuggestions roda o classificador sob demanda sobre as métricas
// do período e devolve as sugestões ordenadas por prioridade
func GetAdAccountSuggestions(service suggesting.Suggester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("suggestions: generating suggestions for account")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("suggestions: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("suggestions: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida", nil)
			return
		}

		filters := domain.InsightFilters{
			StartDate: startDate,
			EndDate:   endDate,
		}

		suggestions, err := service.GenerateForAccount(id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("suggestions: failed to generate suggestions for account")

			if errors.Is(err, suggesting.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar sugestões para a conta", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id":  id,
			"suggestions": len(suggestions),
		}).Info("suggestions: successfully generated suggestions")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suggestions); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("suggestions: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
