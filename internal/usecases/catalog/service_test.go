package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockTeamRepo := mocks.NewMockTeamMemberRepository(ctrl)
	service := NewService(mockProductRepo, mockTeamRepo)

	t.Run("Nome válido é persistido sem espaços nas bordas", func(t *testing.T) {
		mockProductRepo.EXPECT().
			CreateProduct("Widget").
			Return(&domain.Product{ID: "P1", Name: "Widget"}, nil)

		product, err := service.CreateProduct("  Widget  ")
		require.NoError(t, err)
		assert.Equal(t, "Widget", product.Name)
	})

	t.Run("Nome em branco é rejeitado sem chamar o store", func(t *testing.T) {
		_, err := service.CreateProduct("   ")
		assert.ErrorIs(t, err, ErrNameRequired)
	})
}

func TestService_CreateTeamMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockTeamRepo := mocks.NewMockTeamMemberRepository(ctrl)
	service := NewService(mockProductRepo, mockTeamRepo)

	t.Run("Nome válido é persistido", func(t *testing.T) {
		mockTeamRepo.EXPECT().
			CreateTeamMember("Ana").
			Return(&domain.TeamMember{ID: "M1", Name: "Ana"}, nil)

		member, err := service.CreateTeamMember("Ana")
		require.NoError(t, err)
		assert.Equal(t, "Ana", member.Name)
	})

	t.Run("Nome vazio é rejeitado", func(t *testing.T) {
		_, err := service.CreateTeamMember("")
		assert.ErrorIs(t, err, ErrNameRequired)
	})
}

func TestService_ListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockTeamRepo := mocks.NewMockTeamMemberRepository(ctrl)
	service := NewService(mockProductRepo, mockTeamRepo)

	mockProductRepo.EXPECT().ListProducts().Return([]*domain.Product{
		{ID: "P1", Name: "Gadget"},
		{ID: "P2", Name: "Widget"},
	}, nil)

	products, err := service.ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 2)

	mockTeamRepo.EXPECT().DeleteTeamMember("M1").Return(nil)
	assert.NoError(t, service.DeleteTeamMember("M1"))
}
