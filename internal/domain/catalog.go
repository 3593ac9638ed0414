package domain

import "time"

// Product é um item da lista de referência de produtos. Imutável após a
// criação, exceto pela exclusão.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// TeamMember é um item da lista de referência de membros do time. Mesmo
// formato e ciclo de vida de Product, em namespace independente.
type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
