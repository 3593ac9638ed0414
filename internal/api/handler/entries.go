package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"github.com/vfg2006/channel-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/channel-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/channel-dashboard-api/pkg/apiErrors"
)

// CreateEntry registra um novo lançamento diário. O corpo é o formato achatado
// do lançamento: campos fixos mais os campos do formulário do canal.
func CreateEntry(service recording.RecordingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry domain.DataEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateEntry(&entry)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// ListEntries retorna os lançamentos do canal informado (ou todos), mais
// recentes primeiro
func ListEntries(service recording.RecordingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channel := r.URL.Query().Get("channel")

		entries, err := service.ListEntries(channel)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		if entries == nil {
			entries = []*domain.DataEntry{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}

// UpdateEntry aplica uma atualização parcial em um lançamento existente. O
// canal do lançamento não muda.
func UpdateEntry(service recording.RecordingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		var updates domain.DataEntry
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		updated, err := service.UpdateEntry(id, &updates)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

// DeleteEntry remove um lançamento
func DeleteEntry(service recording.RecordingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		if err := service.DeleteEntry(id); err != nil {
			handleEntryError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ExportChannelEntries gera o CSV de schema dinâmico do canal, respeitando os
// mesmos filtros das consultas analíticas
func ExportChannelEntries(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channel := domain.Channel(r.URL.Query().Get("channel"))
		if !channel.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrUnknownChannel, "Canal inválido", map[string]any{
				"channel": string(channel),
			})
			return
		}

		filter, err := parseEntryFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		data, filename, err := service.ExportChannel(channel, filter)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar exportação do canal", nil)
			return
		}

		writeCSVAttachment(w, filename, data)
	}
}

// handleEntryError mapeia os erros de lançamento para as respostas da API
func handleEntryError(w http.ResponseWriter, err error) {
	var validationErr *recording.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, validationErr.Code, validationErr.Message, map[string]any{
			"field": validationErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, recording.ErrUnknownChannel):
		apiErrors.WriteError(w, apiErrors.ErrUnknownChannel, "Canal inválido", nil)

	case errors.Is(err, recording.ErrEntryNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Lançamento não encontrado", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
	}
}

func writeCSVAttachment(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
