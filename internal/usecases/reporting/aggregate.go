package reporting

import (
	"github.com/vfg2006/channel-dashboard-api/internal/domain"
)

// Summary são os totais agregados de uma coleção filtrada de entradas. Todas
// as métricas são reduções O(n) independentes de ordem; campos ausentes ou
// malformados valem 0 e uma coleção vazia produz totais zerados sem erro.
type Summary struct {
	TotalRevenue         float64 `json:"totalRevenue"`
	TotalOrders          float64 `json:"totalOrders"`
	TotalLeads           float64 `json:"totalLeads"`
	DistinctProductCount int     `json:"distinctProductCount"`
	EntryCount           int     `json:"entryCount"`
}

// revenueFields é a ordem de prioridade do valor de receita de uma entrada.
// Cada entrada contribui com no máximo um destes campos — na prática
// exatamente um é preenchido, conforme o canal.
var revenueFields = []string{"orderValue", "revenue", "value"}

// ordersFields é a ordem de prioridade da contagem de pedidos usada na
// exportação analítica.
var ordersFields = []string{"orders", "leadsGenerated", "abandonedCarts"}

// RevenueValue retorna o valor de receita da entrada: o primeiro campo
// não-zero entre orderValue, revenue e value, ou 0.
func RevenueValue(entry *domain.DataEntry) float64 {
	return firstNonZero(entry, revenueFields)
}

// OrdersValue retorna a contagem de pedidos da entrada: o primeiro campo
// não-zero entre orders, leadsGenerated e abandonedCarts, ou 0.
func OrdersValue(entry *domain.DataEntry) float64 {
	return firstNonZero(entry, ordersFields)
}

func firstNonZero(entry *domain.DataEntry, fields []string) float64 {
	for _, field := range fields {
		if v := entry.Number(field); v != 0 {
			return v
		}
	}
	return 0
}

// Summarize calcula os totais agregados da coleção.
func Summarize(entries []*domain.DataEntry) Summary {
	summary := Summary{
		EntryCount: len(entries),
	}

	seenProducts := make(map[string]bool)

	for _, entry := range entries {
		summary.TotalRevenue += RevenueValue(entry)
		summary.TotalOrders += entry.Number("orders")
		summary.TotalLeads += entry.Number("leadsGenerated")

		if entry.Product != "" {
			seenProducts[entry.Product] = true
		}
	}

	summary.DistinctProductCount = len(seenProducts)

	return summary
}

// Progress soma o campo de progresso do canal da meta sobre as entradas cujo
// canal e produto coincidem com os da meta.
func Progress(target *domain.Target, entries []*domain.DataEntry) float64 {
	field, ok := target.Channel.ProgressField()
	if !ok {
		return 0
	}

	var progress float64
	for _, entry := range entries {
		if entry.Channel != target.Channel || entry.Product != target.Product {
			continue
		}
		progress += entry.Number(field)
	}

	return progress
}

// Percentage calcula o percentual de progresso contra a meta. Metas com
// amount zero ou negativo resultam em 0, independente do progresso.
func Percentage(progress, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	return progress / amount * 100
}

// StatusForPercentage classifica o percentual em faixas não sobrepostas,
// avaliadas em ordem decrescente; o valor exato do limite pertence à faixa
// superior.
func StatusForPercentage(percentage float64) string {
	switch {
	case percentage >= 100:
		return domain.TargetStatusAchieved
	case percentage >= 75:
		return domain.TargetStatusOnTrack
	case percentage >= 50:
		return domain.TargetStatusBehind
	default:
		return domain.TargetStatusCritical
	}
}

// BuildTargetProgress monta a visão de progresso de uma meta sobre a coleção
// de entradas. Percentage fica sem teto para análises; CappedPercentage é
// limitado a 100 para barras de progresso.
func BuildTargetProgress(target *domain.Target, entries []*domain.DataEntry) domain.TargetProgress {
	progress := Progress(target, entries)
	percentage := Percentage(progress, target.Amount)

	capped := percentage
	if capped > 100 {
		capped = 100
	}

	return domain.TargetProgress{
		Target:           *target,
		Progress:         progress,
		Percentage:       percentage,
		CappedPercentage: capped,
		Status:           StatusForPercentage(percentage),
	}
}
