package catalog

import (
	"errors"
	"strings"

	"github.com/vfg2006/channel-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
)

// Erros de validação das listas de referência
var (
	ErrNameRequired = errors.New("Name is required")
)

// CatalogService gerencia as listas de referência do dashboard: produtos e
// membros do time. Ambas têm o mesmo ciclo de vida — criação e exclusão por
// ação do usuário, sem edição.
type CatalogService interface {
	CreateProduct(name string) (*domain.Product, error)
	ListProducts() ([]*domain.Product, error)
	DeleteProduct(id string) error

	CreateTeamMember(name string) (*domain.TeamMember, error)
	ListTeamMembers() ([]*domain.TeamMember, error)
	DeleteTeamMember(id string) error
}

type Service struct {
	productRepo repository.ProductRepository
	teamRepo    repository.TeamMemberRepository
}

func NewService(
	productRepo repository.ProductRepository,
	teamRepo repository.TeamMemberRepository,
) CatalogService {
	return &Service{
		productRepo: productRepo,
		teamRepo:    teamRepo,
	}
}

func (s *Service) CreateProduct(name string) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	return s.productRepo.CreateProduct(name)
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	return s.productRepo.ListProducts()
}

func (s *Service) DeleteProduct(id string) error {
	return s.productRepo.DeleteProduct(id)
}

func (s *Service) CreateTeamMember(name string) (*domain.TeamMember, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	return s.teamRepo.CreateTeamMember(name)
}

func (s *Service) ListTeamMembers() ([]*domain.TeamMember, error) {
	return s.teamRepo.ListTeamMembers()
}

func (s *Service) DeleteTeamMember(id string) error {
	return s.teamRepo.DeleteTeamMember(id)
}
