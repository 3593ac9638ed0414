package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"github.com/vfg2006/channel-dashboard-api/internal/scheduler"
	"github.com/vfg2006/channel-dashboard-api/pkg/apiErrors"
)

// GetLiveChannelEntries serve o snapshot em memória das entradas do canal,
// atualizado pelo agendador em intervalo fixo. Inclui o instante da última
// atualização para o cliente julgar a idade do dado.
func GetLiveChannelEntries(service *scheduler.EntrySnapshotSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channel := domain.Channel(httprouter.ParamsFromContext(r.Context()).ByName("channel"))
		if !channel.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrUnknownChannel, "Canal inválido", map[string]any{
				"channel": string(channel),
			})
			return
		}

		snapshot := service.Snapshot(channel)
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Snapshot ainda não coletado para este canal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshot)
	}
}
