package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"github.com/vfg2006/channel-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/channel-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/channel-dashboard-api/pkg/utils"
)

// parseEntryFilter monta o filtro analítico a partir da query string. Datas
// fora do formato ISO são rejeitadas; dimensões vazias ou "all" não
// restringem nada.
func parseEntryFilter(r *http.Request) (domain.EntryFilter, error) {
	query := r.URL.Query()

	filter := domain.EntryFilter{
		DateFrom:   query.Get("dateFrom"),
		DateTo:     query.Get("dateTo"),
		Product:    query.Get("product"),
		Channel:    query.Get("channel"),
		TeamMember: query.Get("teamMember"),
	}

	if _, err := utils.ParseDate(filter.DateFrom); err != nil {
		return domain.EntryFilter{}, err
	}
	if _, err := utils.ParseDate(filter.DateTo); err != nil {
		return domain.EntryFilter{}, err
	}

	return filter, nil
}

// GetReportSummary retorna os totais agregados da coleção filtrada
func GetReportSummary(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseEntryFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.Summary(filter)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular resumo analítico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// GetReportEntries retorna a coleção filtrada, na ordem do store
func GetReportEntries(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseEntryFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		entries, err := service.FilteredEntries(filter)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar lançamentos", nil)
			return
		}

		if entries == nil {
			entries = []*domain.DataEntry{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}

// ExportReport gera o CSV analítico de schema fixo da coleção filtrada
func ExportReport(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseEntryFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		data, filename, err := service.ExportAnalytics(filter)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar exportação analítica", nil)
			return
		}

		writeCSVAttachment(w, filename, data)
	}
}
