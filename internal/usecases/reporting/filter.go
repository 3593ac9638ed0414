package reporting

import "github.com/vfg2006/channel-dashboard-api/internal/domain"

// FilterEntries restringe a coleção de entradas pelos predicados definidos no
// filtro (AND lógico entre dimensões). O filtro é estável: o resultado
// preserva a ordem da entrada, nenhuma entrada é mutada e um filtro vazio
// retorna uma cópia da coleção completa.
func FilterEntries(entries []*domain.DataEntry, filter domain.EntryFilter) []*domain.DataEntry {
	filtered := make([]*domain.DataEntry, 0, len(entries))

	for _, entry := range entries {
		if filter.Matches(entry) {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}
