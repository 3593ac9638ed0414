package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/channel-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockEntryRepo := mocks.NewMockDataEntryRepository(ctrl)
	service := NewService(mockTargetRepo, mockEntryRepo)

	tests := []struct {
		name        string
		target      *domain.Target
		setup       func()
		expectedErr error
	}{
		{
			name: "Meta válida é persistida",
			target: &domain.Target{
				Channel: domain.ChannelSalesCampaign,
				Product: "Widget",
				Amount:  200,
			},
			setup: func() {
				mockTargetRepo.EXPECT().
					CreateTarget(gomock.Any()).
					Return(&domain.Target{ID: "T1"}, nil)
			},
		},
		{
			name: "Canal desconhecido é rejeitado",
			target: &domain.Target{
				Channel: domain.Channel("email-marketing"),
				Product: "Widget",
				Amount:  200,
			},
			expectedErr: ErrUnknownChannel,
		},
		{
			name: "Produto em branco é rejeitado",
			target: &domain.Target{
				Channel: domain.ChannelSalesCampaign,
				Product: "   ",
				Amount:  200,
			},
			expectedErr: ErrProductRequired,
		},
		{
			name: "Valor não positivo é rejeitado",
			target: &domain.Target{
				Channel: domain.ChannelSalesCampaign,
				Product: "Widget",
				Amount:  0,
			},
			expectedErr: ErrInvalidAmount,
		},
		{
			name: "Par canal+produto duplicado propaga o erro do store",
			target: &domain.Target{
				Channel: domain.ChannelSalesCampaign,
				Product: "Widget",
				Amount:  200,
			},
			setup: func() {
				mockTargetRepo.EXPECT().
					CreateTarget(gomock.Any()).
					Return(nil, repository.ErrDuplicateTarget)
			},
			expectedErr: repository.ErrDuplicateTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			_, err := service.CreateTarget(tt.target)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_ListTargetsWithProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockEntryRepo := mocks.NewMockDataEntryRepository(ctrl)
	service := NewService(mockTargetRepo, mockEntryRepo)

	targets := []*domain.Target{
		{ID: "T1", Channel: domain.ChannelSalesCampaign, Product: "Widget", Amount: 200},
		{ID: "T2", Channel: domain.ChannelLeadGeneration, Product: "Gadget", Amount: 100},
	}
	entries := []*domain.DataEntry{
		{
			Channel: domain.ChannelSalesCampaign,
			Product: "Widget",
			Fields:  map[string]any{"orderValue": 100.0},
		},
		{
			Channel: domain.ChannelSalesCampaign,
			Product: "Widget",
			Fields:  map[string]any{"orderValue": 50.0},
		},
		{
			Channel: domain.ChannelLeadGeneration,
			Product: "Gadget",
			Fields:  map[string]any{"value": 130.0},
		},
	}

	mockTargetRepo.EXPECT().ListTargets().Return(targets, nil)
	mockEntryRepo.EXPECT().ListDataEntries("").Return(entries, nil)

	progresses, err := service.ListTargetsWithProgress()
	require.NoError(t, err)
	require.Len(t, progresses, 2)

	assert.Equal(t, "T1", progresses[0].ID)
	assert.Equal(t, 150.0, progresses[0].Progress)
	assert.Equal(t, 75.0, progresses[0].Percentage)
	assert.Equal(t, domain.TargetStatusOnTrack, progresses[0].Status)

	// Percentual acima de 100 mantém o valor bruto e o teto separado
	assert.Equal(t, "T2", progresses[1].ID)
	assert.Equal(t, 130.0, progresses[1].Progress)
	assert.Equal(t, 130.0, progresses[1].Percentage)
	assert.Equal(t, 100.0, progresses[1].CappedPercentage)
	assert.Equal(t, domain.TargetStatusAchieved, progresses[1].Status)
}

func TestService_ListTargetsWithProgress_SemMetas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTargetRepo := mocks.NewMockTargetRepository(ctrl)
	mockEntryRepo := mocks.NewMockDataEntryRepository(ctrl)
	service := NewService(mockTargetRepo, mockEntryRepo)

	mockTargetRepo.EXPECT().ListTargets().Return(nil, nil)
	mockEntryRepo.EXPECT().ListDataEntries("").Return(nil, nil)

	progresses, err := service.ListTargetsWithProgress()
	require.NoError(t, err)
	assert.Empty(t, progresses)
}
