package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/internal/usecases/insighting"
	"github.com/revoa/revoa-api/pkg/apiErrors"
	"github.com/revoa/revoa-api/pkg/log"
	"github.com/revoa/revoa-api/pkg/utils"
)

// GetAdAccountInsights retorna as métricas agregadas por entidade de uma conta
// no período solicitado
func GetAdAccountInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("insights: fetching ad account insights by ID")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("insights: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("insights: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida", nil)
			return
		}

		filters := domain.InsightFilters{
			StartDate: startDate,
			EndDate:   endDate,
		}

		insights, err := service.GetAccountInsights(id, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("insights: failed to get insights for account")

			if errors.Is(err, insighting.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar métricas da conta", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": id,
			"entities":   len(insights.Entities),
		}).Info("insights: successfully retrieved account insights")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("insights: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
