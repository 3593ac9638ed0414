package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-dashboard-api/internal/scheduler"
	"github.com/vfg2006/channel-dashboard-api/pkg/apiErrors"
)

// CronJobServices contém os serviços de agendamento expostos pela API
type CronJobServices struct {
	EntrySnapshotSyncService *scheduler.EntrySnapshotSyncService
}

// RunEntrySnapshotSync executa manualmente uma atualização do snapshot de
// entradas, sem esperar o próximo intervalo
func RunEntrySnapshotSync(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunEntrySnapshotSync")

		if services.EntrySnapshotSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshot de entradas não disponível", nil)
			return
		}

		services.EntrySnapshotSyncService.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "Atualização de snapshot iniciada",
		})
	}
}

// StartEntrySnapshotSync ativa o agendamento do snapshot de entradas em tempo
// de execução
func StartEntrySnapshotSync(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - StartEntrySnapshotSync")

		if services.EntrySnapshotSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshot de entradas não disponível", nil)
			return
		}

		if err := services.EntrySnapshotSyncService.StartSchedule(); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar agendamento de snapshot", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "Agendamento de snapshot ativado",
		})
	}
}

// StopEntrySnapshotSync desativa o agendamento do snapshot de entradas em
// tempo de execução
func StopEntrySnapshotSync(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - StopEntrySnapshotSync")

		if services.EntrySnapshotSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshot de entradas não disponível", nil)
			return
		}

		services.EntrySnapshotSyncService.StopSchedule()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "Agendamento de snapshot desativado",
		})
	}
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.EntrySnapshotSyncService != nil {
			status["entry_snapshot_sync"] = services.EntrySnapshotSyncService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
