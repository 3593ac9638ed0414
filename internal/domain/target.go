package domain

import "time"

// Target é uma meta numérica para um par canal+produto. No máximo uma meta
// por par — garantido por índice único no banco.
type Target struct {
	ID        string    `json:"id"`
	Channel   Channel   `json:"channel"`
	Product   string    `json:"product"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Rótulos de status de progresso, por faixa de percentual.
const (
	TargetStatusAchieved = "Achieved"
	TargetStatusOnTrack  = "On Track"
	TargetStatusBehind   = "Behind"
	TargetStatusCritical = "Critical"
)

// TargetProgress é uma meta acompanhada do progresso calculado sobre as
// entradas do seu canal+produto. Percentage não é limitado a 100;
// CappedPercentage é a apresentação para barras de progresso.
type TargetProgress struct {
	Target
	Progress         float64 `json:"progress"`
	Percentage       float64 `json:"percentage"`
	CappedPercentage float64 `json:"cappedPercentage"`
	Status           string  `json:"status"`
}
