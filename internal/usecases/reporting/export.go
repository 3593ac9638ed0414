package reporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"github.com/vfg2006/channel-dashboard-api/pkg/utils"
)

// analyticsHeader é o schema fixo da exportação analítica, igual para todos
// os canais.
var analyticsHeader = []string{"Date", "Channel", "Product", "Revenue/Value", "Orders", "Team Member"}

// AnalyticsCSV serializa a coleção no schema analítico fixo. A saída tem
// len(entries)+1 linhas (cabeçalho incluso) e toda linha tem a largura do
// cabeçalho. Valores com vírgula ou aspas são escapados pelo writer.
func AnalyticsCSV(entries []*domain.DataEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(analyticsHeader); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever cabeçalho do CSV analítico")
	}

	for _, entry := range entries {
		row := []string{
			entry.Date,
			entry.Channel.Label(),
			entry.Product,
			formatNumber(RevenueValue(entry)),
			formatNumber(OrdersValue(entry)),
			entry.TeamMember,
		}
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrapf(err, "erro ao escrever linha do CSV analítico [entryID: %s]", entry.ID)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar CSV analítico")
	}

	return buf.Bytes(), nil
}

// ChannelCSV serializa as entradas de um canal no schema dinâmico daquele
// canal: Date, Product, Team Member e, na ordem da configuração do canal, os
// campos que não são seleções de referência.
func ChannelCSV(channel domain.Channel, entries []*domain.DataEntry) ([]byte, error) {
	config, ok := channel.Config()
	if !ok {
		return nil, errors.Errorf("canal inválido para exportação: %s", channel)
	}

	extraFields := make([]domain.FieldSpec, 0, len(config.Fields))
	for _, field := range config.Fields {
		if field.Kind == domain.FieldKindProductSelect || field.Kind == domain.FieldKindTeamSelect {
			continue
		}
		extraFields = append(extraFields, field)
	}

	header := []string{"Date", "Product", "Team Member"}
	for _, field := range extraFields {
		header = append(header, field.Label)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(header); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever cabeçalho do CSV por canal")
	}

	for _, entry := range entries {
		row := make([]string, 0, len(header))
		row = append(row, entry.Date, entry.Product, entry.TeamMember)
		for _, field := range extraFields {
			row = append(row, formatFieldValue(entry.Fields[field.Name]))
		}
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrapf(err, "erro ao escrever linha do CSV por canal [entryID: %s]", entry.ID)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "erro ao finalizar CSV por canal")
	}

	return buf.Bytes(), nil
}

// AnalyticsFilename monta o nome do anexo da exportação analítica com a data
// corrente.
func AnalyticsFilename() string {
	return fmt.Sprintf("analytics-report-%s.csv", utils.TodayISO())
}

// ChannelFilename monta o nome do anexo da exportação por canal.
func ChannelFilename(channel domain.Channel) string {
	return fmt.Sprintf("%s-entries-%s.csv", channel, utils.TodayISO())
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFieldValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return formatNumber(value)
	case float32:
		return formatNumber(float64(value))
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	default:
		return fmt.Sprintf("%v", value)
	}
}
