package domain

// FilterAll é o valor de dimensão que não impõe restrição alguma, equivalente
// a deixar a dimensão vazia.
const FilterAll = "all"

// EntryFilter restringe uma coleção de entradas. Dimensões vazias (ou "all")
// não restringem; as demais são combinadas com AND lógico. As datas são
// limites inclusivos comparados lexicograficamente — correto apenas porque as
// datas são strings ISO zero-padded (YYYY-MM-DD).
type EntryFilter struct {
	DateFrom   string `json:"dateFrom,omitempty"`
	DateTo     string `json:"dateTo,omitempty"`
	Product    string `json:"product,omitempty"`
	Channel    string `json:"channel,omitempty"`
	TeamMember string `json:"teamMember,omitempty"`
}

// IsEmpty retorna verdadeiro quando nenhuma dimensão restringe o resultado.
func (f EntryFilter) IsEmpty() bool {
	return !constrains(f.DateFrom) && !constrains(f.DateTo) &&
		!constrains(f.Product) && !constrains(f.Channel) && !constrains(f.TeamMember)
}

// Matches verifica se a entrada satisfaz todos os predicados definidos.
func (f EntryFilter) Matches(entry *DataEntry) bool {
	if constrains(f.DateFrom) && entry.Date < f.DateFrom {
		return false
	}
	if constrains(f.DateTo) && entry.Date > f.DateTo {
		return false
	}
	if constrains(f.Product) && entry.Product != f.Product {
		return false
	}
	if constrains(f.Channel) && string(entry.Channel) != f.Channel {
		return false
	}
	if constrains(f.TeamMember) && entry.TeamMember != f.TeamMember {
		return false
	}
	return true
}

func constrains(value string) bool {
	return value != "" && value != FilterAll
}
