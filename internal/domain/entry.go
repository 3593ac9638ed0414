package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// DataEntry é um lançamento diário de um canal. Além dos campos fixos, cada
// entrada carrega um conjunto aberto de campos numéricos/textuais definido
// pela configuração do canal (orders, orderValue, revenue, leadsGenerated,
// conversion, value, abandonedCarts). Product e TeamMember referenciam o NOME
// do produto/membro, não o ID.
type DataEntry struct {
	ID         string
	Channel    Channel
	Date       string // ISO YYYY-MM-DD
	Product    string
	TeamMember string
	Fields     map[string]any
	CreatedAt  time.Time
}

// entryFixedKeys são as chaves que não fazem parte do conjunto dinâmico.
var entryFixedKeys = map[string]bool{
	"id":         true,
	"channel":    true,
	"date":       true,
	"product":    true,
	"teamMember": true,
	"createdAt":  true,
}

// MarshalJSON achata os campos dinâmicos no mesmo nível dos fixos, mantendo o
// formato de documento usado pelo dashboard.
func (e DataEntry) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(e.Fields)+6)
	for key, value := range e.Fields {
		if !entryFixedKeys[key] {
			doc[key] = value
		}
	}

	doc["id"] = e.ID
	doc["channel"] = e.Channel
	doc["date"] = e.Date
	if e.Product != "" {
		doc["product"] = e.Product
	}
	if e.TeamMember != "" {
		doc["teamMember"] = e.TeamMember
	}
	if !e.CreatedAt.IsZero() {
		doc["createdAt"] = e.CreatedAt.Format(time.RFC3339)
	}

	return json.Marshal(doc)
}

// UnmarshalJSON separa os campos fixos do conjunto dinâmico.
func (e *DataEntry) UnmarshalJSON(data []byte) error {
	doc := make(map[string]any)
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	if id, ok := doc["id"].(string); ok {
		e.ID = id
	}
	if channel, ok := doc["channel"].(string); ok {
		e.Channel = Channel(channel)
	}
	if date, ok := doc["date"].(string); ok {
		e.Date = date
	}
	if product, ok := doc["product"].(string); ok {
		e.Product = product
	}
	if member, ok := doc["teamMember"].(string); ok {
		e.TeamMember = member
	}
	if createdAt, ok := doc["createdAt"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = parsed
		}
	}

	e.Fields = make(map[string]any)
	for key, value := range doc {
		if !entryFixedKeys[key] {
			e.Fields[key] = value
		}
	}

	return nil
}

// FieldValue retorna o valor de um campo pelo nome da configuração do canal,
// cobrindo também os campos fixos product e teamMember.
func (e *DataEntry) FieldValue(name string) (any, bool) {
	switch name {
	case "product":
		if e.Product == "" {
			return nil, false
		}
		return e.Product, true
	case "teamMember":
		if e.TeamMember == "" {
			return nil, false
		}
		return e.TeamMember, true
	default:
		value, ok := e.Fields[name]
		return value, ok
	}
}

// Number retorna o valor numérico de um campo dinâmico. Campos ausentes ou
// malformados valem 0 — agregações nunca falham por dado ruim.
func (e *DataEntry) Number(name string) float64 {
	value, ok := e.Fields[name]
	if !ok || value == nil {
		return 0
	}

	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
