package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
)

func TestRevenueValue_PrioridadeDosCampos(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]any
		expected float64
	}{
		{
			name:     "orderValue tem prioridade",
			fields:   map[string]any{"orderValue": 100.0, "revenue": 40.0, "value": 10.0},
			expected: 100,
		},
		{
			name:     "revenue quando orderValue é zero",
			fields:   map[string]any{"orderValue": 0.0, "revenue": 40.0},
			expected: 40,
		},
		{
			name:     "value como último recurso",
			fields:   map[string]any{"value": 10.0},
			expected: 10,
		},
		{
			name:     "nenhum campo presente vale zero",
			fields:   map[string]any{"orders": 3.0},
			expected: 0,
		},
		{
			name:     "campo malformado vale zero",
			fields:   map[string]any{"orderValue": "abc"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &domain.DataEntry{Channel: domain.ChannelSalesCampaign, Fields: tt.fields}
			assert.Equal(t, tt.expected, RevenueValue(entry))
		})
	}
}

func TestOrdersValue_PrioridadeDosCampos(t *testing.T) {
	entry := &domain.DataEntry{Fields: map[string]any{"leadsGenerated": 12.0}}
	assert.Equal(t, 12.0, OrdersValue(entry))

	entry = &domain.DataEntry{Fields: map[string]any{"abandonedCarts": 7.0}}
	assert.Equal(t, 7.0, OrdersValue(entry))

	entry = &domain.DataEntry{Fields: map[string]any{"orders": 3.0, "leadsGenerated": 12.0}}
	assert.Equal(t, 3.0, OrdersValue(entry))
}

func TestSummarize(t *testing.T) {
	entries := []*domain.DataEntry{
		salesEntry("E1", "2024-01-01", "Widget", 2, 100),
		salesEntry("E2", "2024-01-05", "Widget", 1, 50),
		{
			ID:      "E3",
			Channel: domain.ChannelLeadGeneration,
			Date:    "2024-01-10",
			Product: "Gadget",
			Fields: map[string]any{
				"leadsGenerated": 20.0,
				"conversion":     5.0,
				"value":          300.0,
			},
		},
	}

	summary := Summarize(entries)

	assert.Equal(t, 450.0, summary.TotalRevenue)
	assert.Equal(t, 3.0, summary.TotalOrders)
	assert.Equal(t, 20.0, summary.TotalLeads)
	assert.Equal(t, 2, summary.DistinctProductCount)
	assert.Equal(t, 3, summary.EntryCount)
}

func TestSummarize_ColecaoVazia(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.TotalOrders)
	assert.Equal(t, 0.0, summary.TotalLeads)
	assert.Equal(t, 0, summary.DistinctProductCount)
	assert.Equal(t, 0, summary.EntryCount)
}

func TestSummarize_Aditividade(t *testing.T) {
	e1 := []*domain.DataEntry{
		salesEntry("E1", "2024-01-01", "Widget", 2, 100),
	}
	e2 := []*domain.DataEntry{
		salesEntry("E2", "2024-01-05", "Gadget", 1, 50),
	}

	combined := Summarize(append(append([]*domain.DataEntry{}, e1...), e2...))
	s1 := Summarize(e1)
	s2 := Summarize(e2)

	assert.Equal(t, s1.TotalRevenue+s2.TotalRevenue, combined.TotalRevenue)
	assert.Equal(t, s1.TotalOrders+s2.TotalOrders, combined.TotalOrders)
	assert.Equal(t, s1.TotalLeads+s2.TotalLeads, combined.TotalLeads)
	assert.Equal(t, s1.EntryCount+s2.EntryCount, combined.EntryCount)
}

func TestPercentage(t *testing.T) {
	// Amount zero resulta em zero, independente do progresso
	assert.Equal(t, 0.0, Percentage(150, 0))
	assert.Equal(t, 0.0, Percentage(0, 0))

	// Escala linear com o progresso para amount fixo
	assert.Equal(t, 25.0, Percentage(50, 200))
	assert.Equal(t, 50.0, Percentage(100, 200))
	assert.Equal(t, 100.0, Percentage(200, 200))
	assert.Equal(t, 150.0, Percentage(300, 200))
}

func TestStatusForPercentage_LimitesDasFaixas(t *testing.T) {
	tests := []struct {
		percentage float64
		expected   string
	}{
		{100, domain.TargetStatusAchieved},
		{120, domain.TargetStatusAchieved},
		{99.999, domain.TargetStatusOnTrack},
		{75, domain.TargetStatusOnTrack},
		{74.999, domain.TargetStatusBehind},
		{50, domain.TargetStatusBehind},
		{49.999, domain.TargetStatusCritical},
		{0, domain.TargetStatusCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StatusForPercentage(tt.percentage), "percentual %v", tt.percentage)
	}
}

func TestProgress_CampoPorCanal(t *testing.T) {
	tests := []struct {
		name     string
		channel  domain.Channel
		fields   map[string]any
		expected float64
	}{
		{
			name:     "sales-campaign soma orderValue",
			channel:  domain.ChannelSalesCampaign,
			fields:   map[string]any{"orderValue": 100.0, "orders": 2.0},
			expected: 100,
		},
		{
			name:     "recurring-sales soma revenue",
			channel:  domain.ChannelRecurringSales,
			fields:   map[string]any{"revenue": 80.0, "orders": 4.0},
			expected: 80,
		},
		{
			name:     "lead-generation soma value",
			channel:  domain.ChannelLeadGeneration,
			fields:   map[string]any{"value": 60.0, "leadsGenerated": 10.0},
			expected: 60,
		},
		{
			name:     "abandoned-cart soma revenue",
			channel:  domain.ChannelAbandonedCart,
			fields:   map[string]any{"revenue": 45.0, "abandonedCarts": 9.0},
			expected: 45,
		},
		{
			name:     "media-engagement soma value",
			channel:  domain.ChannelMediaEngagement,
			fields:   map[string]any{"value": 30.0, "orders": 1.0},
			expected: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &domain.Target{Channel: tt.channel, Product: "Widget", Amount: 100}
			entries := []*domain.DataEntry{
				{Channel: tt.channel, Product: "Widget", Fields: tt.fields},
			}
			assert.Equal(t, tt.expected, Progress(target, entries))
		})
	}
}

func TestProgress_IgnoraOutrosCanaisEProdutos(t *testing.T) {
	target := &domain.Target{Channel: domain.ChannelSalesCampaign, Product: "Widget", Amount: 100}

	entries := []*domain.DataEntry{
		salesEntry("E1", "2024-01-01", "Widget", 2, 100),
		salesEntry("E2", "2024-01-02", "Gadget", 1, 999),
		{Channel: domain.ChannelRecurringSales, Product: "Widget", Fields: map[string]any{"revenue": 500.0}},
	}

	assert.Equal(t, 100.0, Progress(target, entries))
}

func TestBuildTargetProgress_CenarioCompleto(t *testing.T) {
	target := &domain.Target{
		ID:      "T1",
		Channel: domain.ChannelSalesCampaign,
		Product: "Widget",
		Amount:  200,
	}
	entries := []*domain.DataEntry{
		salesEntry("E1", "2024-01-01", "Widget", 2, 100),
		salesEntry("E2", "2024-01-05", "Widget", 1, 50),
	}

	progress := BuildTargetProgress(target, entries)

	assert.Equal(t, 150.0, progress.Progress)
	assert.Equal(t, 75.0, progress.Percentage)
	assert.Equal(t, 75.0, progress.CappedPercentage)
	assert.Equal(t, domain.TargetStatusOnTrack, progress.Status)
}

func TestBuildTargetProgress_PercentualComTeto(t *testing.T) {
	target := &domain.Target{Channel: domain.ChannelSalesCampaign, Product: "Widget", Amount: 100}
	entries := []*domain.DataEntry{
		salesEntry("E1", "2024-01-01", "Widget", 2, 250),
	}

	progress := BuildTargetProgress(target, entries)

	assert.Equal(t, 250.0, progress.Percentage)
	assert.Equal(t, 100.0, progress.CappedPercentage)
	assert.Equal(t, domain.TargetStatusAchieved, progress.Status)
}
