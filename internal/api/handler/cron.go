package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/revoa/revoa-api/internal/domain"
	"github.com/revoa/revoa-api/pkg/apiErrors"
	"github.com/revoa/revoa-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMeta   = "meta"
	CronJobTypeGoogle = "google"
	CronJobTypeTikTok = "tiktok"
	CronJobTypeRex    = "rex"
	CronJobTypeAll    = "all"
)

// syncTrigger é o contrato mínimo que os agendadores expõem para execução manual
type syncTrigger interface {
	TriggerManualSync()
	Status() (running bool, startedAt, completedAt time.Time)
}

// CronJobServices contém os agendadores disponíveis para execução manual
type CronJobServices struct {
	MetaInsightSyncService   syncTrigger
	GoogleInsightSyncService syncTrigger
	TikTokInsightSyncService syncTrigger
	RexAnalysisSyncService   syncTrigger
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem disparar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMeta:
			if services.MetaInsightSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do Meta não disponível", nil)
				return
			}
			services.MetaInsightSyncService.TriggerManualSync()

		case CronJobTypeGoogle:
			if services.GoogleInsightSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do Google Ads não disponível", nil)
				return
			}
			services.GoogleInsightSyncService.TriggerManualSync()

		case CronJobTypeTikTok:
			if services.TikTokInsightSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do TikTok não disponível", nil)
				return
			}
			services.TikTokInsightSyncService.TriggerManualSync()

		case CronJobTypeRex:
			if services.RexAnalysisSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de análise proativa não disponível", nil)
				return
			}
			services.RexAnalysisSyncService.TriggerManualSync()

		case CronJobTypeAll:
			for _, service := range []syncTrigger{
				services.MetaInsightSyncService,
				services.GoogleInsightSyncService,
				services.TikTokInsightSyncService,
				services.RexAnalysisSyncService,
			} {
				if service != nil {
					service.TriggerManualSync()
				}
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: meta, google, tiktok, rex, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Apenas administradores podem consultar o status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			CronJobTypeMeta:   cronStatusPayload(services.MetaInsightSyncService),
			CronJobTypeGoogle: cronStatusPayload(services.GoogleInsightSyncService),
			CronJobTypeTikTok: cronStatusPayload(services.TikTokInsightSyncService),
			CronJobTypeRex:    cronStatusPayload(services.RexAnalysisSyncService),
		}

		json.NewEncoder(w).Encode(status)
	}
}

func cronStatusPayload(service syncTrigger) map[string]any {
	if service == nil {
		return map[string]any{"available": false}
	}

	running, startedAt, completedAt := service.Status()

	payload := map[string]any{
		"available": true,
		"running":   running,
	}
	if !startedAt.IsZero() {
		payload["last_started_at"] = startedAt.Format(time.RFC3339)
	}
	if !completedAt.IsZero() {
		payload["last_completed_at"] = completedAt.Format(time.RFC3339)
	}

	return payload
}
