package utils

import "time"

// ParseDate valida uma data ISO (YYYY-MM-DD). String vazia é aceita e retorna
// a data zero — dimensões de filtro não informadas não restringem nada.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// TodayISO retorna a data de hoje no formato YYYY-MM-DD, usado nos nomes dos
// arquivos exportados.
func TodayISO() string {
	return time.Now().Format(time.DateOnly)
}
