package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/channel-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockDataEntryRepository(ctrl)
	service := NewService(mockEntryRepo)

	entries := []*domain.DataEntry{
		salesEntry("E1", "2024-01-01", "Widget", 2, 100),
		salesEntry("E2", "2024-01-05", "Widget", 1, 50),
	}

	tests := []struct {
		name     string
		filter   domain.EntryFilter
		expected Summary
	}{
		{
			name:   "Resumo sem filtro soma todas as entradas",
			filter: domain.EntryFilter{},
			expected: Summary{
				TotalRevenue:         150,
				TotalOrders:          3,
				DistinctProductCount: 1,
				EntryCount:           2,
			},
		},
		{
			name:   "Filtro por data inicial restringe o resumo",
			filter: domain.EntryFilter{DateFrom: "2024-01-02"},
			expected: Summary{
				TotalRevenue:         50,
				TotalOrders:          1,
				DistinctProductCount: 1,
				EntryCount:           1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEntryRepo.EXPECT().ListDataEntries("").Return(entries, nil)

			summary, err := service.Summary(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *summary)
		})
	}
}

func TestService_Summary_ArredondaReceita(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockDataEntryRepository(ctrl)
	service := NewService(mockEntryRepo)

	mockEntryRepo.EXPECT().ListDataEntries("").Return([]*domain.DataEntry{
		salesEntry("E1", "2024-01-01", "Widget", 1, 10.005),
		salesEntry("E2", "2024-01-02", "Widget", 1, 20.001),
	}, nil)

	summary, err := service.Summary(domain.EntryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 30.01, summary.TotalRevenue)
}

func TestService_ExportAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockDataEntryRepository(ctrl)
	service := NewService(mockEntryRepo)

	mockEntryRepo.EXPECT().ListDataEntries("").Return([]*domain.DataEntry{
		salesEntry("E1", "2024-01-01", "Widget", 2, 100),
	}, nil)

	data, filename, err := service.ExportAnalytics(domain.EntryFilter{})
	require.NoError(t, err)

	records := parseCSV(t, data)
	assert.Len(t, records, 2)
	assert.Regexp(t, `^analytics-report-\d{4}-\d{2}-\d{2}\.csv$`, filename)
}

func TestService_ExportChannel_ConsultaSomenteOCanal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockDataEntryRepository(ctrl)
	service := NewService(mockEntryRepo)

	mockEntryRepo.EXPECT().
		ListDataEntries("sales-campaign").
		Return([]*domain.DataEntry{
			salesEntry("E1", "2024-01-01", "Widget", 2, 100),
			salesEntry("E2", "2024-03-01", "Widget", 1, 50),
		}, nil)

	data, filename, err := service.ExportChannel(
		domain.ChannelSalesCampaign,
		domain.EntryFilter{DateTo: "2024-01-31"},
	)
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-01", records[1][0])
	assert.Regexp(t, `^sales-campaign-entries-\d{4}-\d{2}-\d{2}\.csv$`, filename)
}
