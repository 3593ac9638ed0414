package targeting

import (
	"errors"
	"strings"

	"github.com/vfg2006/channel-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"github.com/vfg2006/channel-dashboard-api/internal/usecases/reporting"
)

// Erros de validação de metas
var (
	ErrUnknownChannel  = errors.New("canal inválido")
	ErrProductRequired = errors.New("Product is required")
	ErrInvalidAmount   = errors.New("Amount must be greater than zero")
)

// TargetService gerencia as metas por canal+produto e o progresso calculado
// contra os lançamentos. A unicidade do par canal+produto é delegada ao
// índice único do store.
type TargetService interface {
	CreateTarget(target *domain.Target) (*domain.Target, error)
	ListTargetsWithProgress() ([]*domain.TargetProgress, error)
	DeleteTarget(id string) error
}

type Service struct {
	targetRepo repository.TargetRepository
	entryRepo  repository.DataEntryRepository
}

func NewService(
	targetRepo repository.TargetRepository,
	entryRepo repository.DataEntryRepository,
) TargetService {
	return &Service{
		targetRepo: targetRepo,
		entryRepo:  entryRepo,
	}
}

// CreateTarget valida e persiste a meta. Um par canal+produto duplicado
// retorna repository.ErrDuplicateTarget sem alterar o store.
func (s *Service) CreateTarget(target *domain.Target) (*domain.Target, error) {
	if !target.Channel.IsValid() {
		return nil, ErrUnknownChannel
	}

	target.Product = strings.TrimSpace(target.Product)
	if target.Product == "" {
		return nil, ErrProductRequired
	}

	if target.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	return s.targetRepo.CreateTarget(target)
}

// ListTargetsWithProgress retorna as metas mais recentes primeiro, cada uma
// com progresso, percentuais e status calculados sobre todas as entradas do
// seu canal+produto.
func (s *Service) ListTargetsWithProgress() ([]*domain.TargetProgress, error) {
	targets, err := s.targetRepo.ListTargets()
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListDataEntries("")
	if err != nil {
		return nil, err
	}

	progresses := make([]*domain.TargetProgress, 0, len(targets))
	for _, target := range targets {
		progress := reporting.BuildTargetProgress(target, entries)
		progresses = append(progresses, &progress)
	}

	return progresses, nil
}

func (s *Service) DeleteTarget(id string) error {
	return s.targetRepo.DeleteTarget(id)
}
