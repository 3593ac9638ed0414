package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func validSalesEntry() *domain.DataEntry {
	return &domain.DataEntry{
		Channel: domain.ChannelSalesCampaign,
		Date:    "2024-01-01",
		Product: "Widget",
		Fields: map[string]any{
			"orders":     2.0,
			"orderValue": 100.0,
		},
	}
}

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name        string
		entry       *domain.DataEntry
		expectedErr string
	}{
		{
			name:  "Entrada válida passa sem erro",
			entry: validSalesEntry(),
		},
		{
			name: "Canal desconhecido é rejeitado",
			entry: &domain.DataEntry{
				Channel: domain.Channel("email-marketing"),
				Date:    "2024-01-01",
			},
			expectedErr: "canal inválido",
		},
		{
			name: "Data ausente é rejeitada",
			entry: &domain.DataEntry{
				Channel: domain.ChannelSalesCampaign,
				Product: "Widget",
				Fields:  map[string]any{"orders": 2.0, "orderValue": 100.0},
			},
			expectedErr: "Date is required",
		},
		{
			name: "Campo obrigatório ausente nomeia o campo pelo rótulo",
			entry: &domain.DataEntry{
				Channel: domain.ChannelSalesCampaign,
				Date:    "2024-01-01",
				Product: "Widget",
				Fields:  map[string]any{"orders": 2.0},
			},
			expectedErr: "Order Value is required",
		},
		{
			name: "Produto obrigatório ausente",
			entry: &domain.DataEntry{
				Channel: domain.ChannelSalesCampaign,
				Date:    "2024-01-01",
				Fields:  map[string]any{"orders": 2.0, "orderValue": 100.0},
			},
			expectedErr: "Product is required",
		},
		{
			name: "Membro do time obrigatório em recurring-sales",
			entry: &domain.DataEntry{
				Channel: domain.ChannelRecurringSales,
				Date:    "2024-01-01",
				Product: "Widget",
				Fields:  map[string]any{"orders": 2.0, "revenue": 100.0},
			},
			expectedErr: "Team Member is required",
		},
		{
			name: "Campo fora da configuração do canal é rejeitado",
			entry: &domain.DataEntry{
				Channel: domain.ChannelSalesCampaign,
				Date:    "2024-01-01",
				Product: "Widget",
				Fields: map[string]any{
					"orders":     2.0,
					"orderValue": 100.0,
					"revenue":    50.0,
				},
			},
			expectedErr: `field "revenue" is not allowed for channel "sales-campaign"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.entry)
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expectedErr, err.Error())
		})
	}
}

func TestService_CreateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockDataEntryRepository(ctrl)
	service := NewService(mockEntryRepo)

	t.Run("Entrada válida é persistida", func(t *testing.T) {
		entry := validSalesEntry()

		mockEntryRepo.EXPECT().
			CreateDataEntry(entry).
			Return(entry, nil)

		created, err := service.CreateEntry(entry)
		require.NoError(t, err)
		assert.Equal(t, entry, created)
	})

	t.Run("Entrada inválida nunca chega ao store", func(t *testing.T) {
		entry := validSalesEntry()
		entry.Date = ""

		_, err := service.CreateEntry(entry)
		assert.Error(t, err)
	})
}

func TestService_ListEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockDataEntryRepository(ctrl)
	service := NewService(mockEntryRepo)

	t.Run("Canal conhecido consulta o store", func(t *testing.T) {
		mockEntryRepo.EXPECT().
			ListDataEntries("sales-campaign").
			Return([]*domain.DataEntry{validSalesEntry()}, nil)

		entries, err := service.ListEntries("sales-campaign")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Canal desconhecido é rejeitado sem consultar o store", func(t *testing.T) {
		_, err := service.ListEntries("email-marketing")
		assert.ErrorIs(t, err, ErrUnknownChannel)
	})
}

func TestService_UpdateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockDataEntryRepository(ctrl)
	service := NewService(mockEntryRepo)

	t.Run("Atualização parcial preserva os demais campos e revalida", func(t *testing.T) {
		existing := validSalesEntry()
		existing.ID = "E1"

		mockEntryRepo.EXPECT().GetDataEntryByID("E1").Return(existing, nil)
		mockEntryRepo.EXPECT().UpdateDataEntry(gomock.Any()).Return(nil)

		updated, err := service.UpdateEntry("E1", &domain.DataEntry{
			Fields: map[string]any{"orderValue": 250.0},
		})
		require.NoError(t, err)
		assert.Equal(t, 250.0, updated.Number("orderValue"))
		assert.Equal(t, 2.0, updated.Number("orders"))
		assert.Equal(t, "Widget", updated.Product)
	})

	t.Run("Atualização que viola a configuração do canal é rejeitada", func(t *testing.T) {
		existing := validSalesEntry()
		existing.ID = "E1"

		mockEntryRepo.EXPECT().GetDataEntryByID("E1").Return(existing, nil)

		_, err := service.UpdateEntry("E1", &domain.DataEntry{
			Fields: map[string]any{"revenue": 10.0},
		})
		assert.Error(t, err)
	})

	t.Run("Entrada sem mapa de campos aceita atualização de campos", func(t *testing.T) {
		existing := &domain.DataEntry{
			ID:      "E2",
			Channel: domain.ChannelSalesCampaign,
			Date:    "2024-01-01",
			Product: "Widget",
		}

		mockEntryRepo.EXPECT().GetDataEntryByID("E2").Return(existing, nil)
		mockEntryRepo.EXPECT().UpdateDataEntry(gomock.Any()).Return(nil)

		updated, err := service.UpdateEntry("E2", &domain.DataEntry{
			Fields: map[string]any{"orders": 3.0, "orderValue": 90.0},
		})
		require.NoError(t, err)
		assert.Equal(t, 3.0, updated.Number("orders"))
		assert.Equal(t, 90.0, updated.Number("orderValue"))
	})

	t.Run("Lançamento inexistente retorna erro de não encontrado", func(t *testing.T) {
		mockEntryRepo.EXPECT().GetDataEntryByID("E9").Return(nil, nil)

		_, err := service.UpdateEntry("E9", &domain.DataEntry{})
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}
