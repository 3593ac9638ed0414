package recording

import (
	"github.com/vfg2006/channel-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
)

// RecordingService gerencia os lançamentos diários por canal. A configuração
// de formulário do canal (domain.Channel.Config) é a única fonte de verdade
// sobre quais campos cada entrada pode conter; criação e edição validam
// contra a mesma tabela.
type RecordingService interface {
	CreateEntry(entry *domain.DataEntry) (*domain.DataEntry, error)
	ListEntries(channel string) ([]*domain.DataEntry, error)
	UpdateEntry(id string, updates *domain.DataEntry) (*domain.DataEntry, error)
	DeleteEntry(id string) error
}

type Service struct {
	entryRepo repository.DataEntryRepository
}

func NewService(entryRepo repository.DataEntryRepository) RecordingService {
	return &Service{
		entryRepo: entryRepo,
	}
}

// CreateEntry valida a entrada contra a configuração do canal e persiste.
// Erros de validação nunca chegam ao store.
func (s *Service) CreateEntry(entry *domain.DataEntry) (*domain.DataEntry, error) {
	if err := ValidateEntry(entry); err != nil {
		return nil, err
	}

	return s.entryRepo.CreateDataEntry(entry)
}

// ListEntries retorna as entradas do canal, mais recentes primeiro. Canal
// vazio retorna todas.
func (s *Service) ListEntries(channel string) ([]*domain.DataEntry, error) {
	if channel != "" && !domain.Channel(channel).IsValid() {
		return nil, ErrUnknownChannel
	}

	return s.entryRepo.ListDataEntries(channel)
}

// UpdateEntry aplica uma substituição parcial de campos sobre a entrada
// existente e revalida o resultado. O canal da entrada é imutável.
func (s *Service) UpdateEntry(id string, updates *domain.DataEntry) (*domain.DataEntry, error) {
	existing, err := s.entryRepo.GetDataEntryByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrEntryNotFound
	}

	if updates.Date != "" {
		existing.Date = updates.Date
	}
	if updates.Product != "" {
		existing.Product = updates.Product
	}
	if updates.TeamMember != "" {
		existing.TeamMember = updates.TeamMember
	}
	if existing.Fields == nil {
		existing.Fields = make(map[string]any)
	}
	for key, value := range updates.Fields {
		existing.Fields[key] = value
	}

	if err := ValidateEntry(existing); err != nil {
		return nil, err
	}

	if err := s.entryRepo.UpdateDataEntry(existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (s *Service) DeleteEntry(id string) error {
	return s.entryRepo.DeleteDataEntry(id)
}

// ValidateEntry garante que a entrada tem data, canal conhecido, todos os
// campos obrigatórios do canal e nenhum campo fora da configuração do canal.
func ValidateEntry(entry *domain.DataEntry) error {
	config, ok := entry.Channel.Config()
	if !ok {
		return ErrUnknownChannel
	}

	if entry.Date == "" {
		return newRequiredFieldError("date", "Date")
	}

	for _, field := range config.Fields {
		if !field.Required {
			continue
		}
		if _, present := entry.FieldValue(field.Name); !present {
			return newRequiredFieldError(field.Name, field.Label)
		}
	}

	allowed := entry.Channel.AllowedFieldNames()
	for key := range entry.Fields {
		if !allowed[key] {
			return newUnknownFieldError(key, string(entry.Channel))
		}
	}

	return nil
}
