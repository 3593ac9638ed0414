package reporting

import (
	"github.com/vfg2006/channel-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"github.com/vfg2006/channel-dashboard-api/pkg/utils"
)

// ReportingService responde as consultas analíticas do dashboard: totais
// filtrados, coleção filtrada e as duas exportações CSV. Todas as operações
// leem o store uma vez e aplicam o filtro em memória.
type ReportingService interface {
	Summary(filter domain.EntryFilter) (*Summary, error)
	FilteredEntries(filter domain.EntryFilter) ([]*domain.DataEntry, error)
	ExportAnalytics(filter domain.EntryFilter) ([]byte, string, error)
	ExportChannel(channel domain.Channel, filter domain.EntryFilter) ([]byte, string, error)
}

type Service struct {
	entryRepo repository.DataEntryRepository
}

func NewService(entryRepo repository.DataEntryRepository) ReportingService {
	return &Service{
		entryRepo: entryRepo,
	}
}

// Summary calcula os totais agregados sobre a coleção filtrada. A receita
// total é arredondada para duas casas na borda, não durante a soma.
func (s *Service) Summary(filter domain.EntryFilter) (*Summary, error) {
	entries, err := s.FilteredEntries(filter)
	if err != nil {
		return nil, err
	}

	summary := Summarize(entries)
	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)

	return &summary, nil
}

// FilteredEntries retorna a coleção filtrada, preservando a ordem do store
// (mais recentes primeiro).
func (s *Service) FilteredEntries(filter domain.EntryFilter) ([]*domain.DataEntry, error) {
	entries, err := s.entryRepo.ListDataEntries("")
	if err != nil {
		return nil, err
	}

	return FilterEntries(entries, filter), nil
}

// ExportAnalytics gera o CSV de schema fixo da coleção filtrada e o nome do
// anexo.
func (s *Service) ExportAnalytics(filter domain.EntryFilter) ([]byte, string, error) {
	entries, err := s.FilteredEntries(filter)
	if err != nil {
		return nil, "", err
	}

	data, err := AnalyticsCSV(entries)
	if err != nil {
		return nil, "", err
	}

	return data, AnalyticsFilename(), nil
}

// ExportChannel gera o CSV de schema dinâmico do canal sobre as entradas do
// canal que passam no filtro.
func (s *Service) ExportChannel(channel domain.Channel, filter domain.EntryFilter) ([]byte, string, error) {
	entries, err := s.entryRepo.ListDataEntries(string(channel))
	if err != nil {
		return nil, "", err
	}

	data, err := ChannelCSV(channel, FilterEntries(entries, filter))
	if err != nil {
		return nil, "", err
	}

	return data, ChannelFilename(channel), nil
}
