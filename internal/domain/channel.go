package domain

// Channel identifica um processo de negócio fixo. O canal determina quais
// campos uma entrada carrega e qual fórmula de agregação se aplica.
type Channel string

const (
	ChannelSalesCampaign   Channel = "sales-campaign"
	ChannelRecurringSales  Channel = "recurring-sales"
	ChannelLeadGeneration  Channel = "lead-generation"
	ChannelAbandonedCart   Channel = "abandoned-cart"
	ChannelMediaEngagement Channel = "media-engagement"
)

// Channels lista todos os canais na ordem de exibição do dashboard.
var Channels = []Channel{
	ChannelSalesCampaign,
	ChannelRecurringSales,
	ChannelLeadGeneration,
	ChannelAbandonedCart,
	ChannelMediaEngagement,
}

// FieldKind define o tipo de input de um campo do formulário de canal.
type FieldKind string

const (
	FieldKindProductSelect FieldKind = "product-select"
	FieldKindTeamSelect    FieldKind = "team-select"
	FieldKindNumber        FieldKind = "number"
	FieldKindText          FieldKind = "text"
)

// FieldSpec descreve um campo de formulário de um canal.
type FieldSpec struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Prefix   string    `json:"prefix,omitempty"`
	Suffix   string    `json:"suffix,omitempty"`
}

// ChannelConfig é a configuração de formulário de um canal: título e a lista
// ordenada de campos.
type ChannelConfig struct {
	Title  string      `json:"title"`
	Fields []FieldSpec `json:"fields"`
}

// channelConfigs é a única fonte de verdade sobre quais campos cada canal
// aceita. É consultada tanto na criação quanto na edição de entradas e também
// pela exportação por canal — nunca duplicar esta tabela.
var channelConfigs = map[Channel]ChannelConfig{
	ChannelSalesCampaign: {
		Title: "Sales Campaign Entry",
		Fields: []FieldSpec{
			{Name: "product", Label: "Product", Kind: FieldKindProductSelect, Required: true},
			{Name: "orders", Label: "No. of Orders", Kind: FieldKindNumber, Required: true},
			{Name: "orderValue", Label: "Order Value", Kind: FieldKindNumber, Required: true, Prefix: "$"},
		},
	},
	ChannelRecurringSales: {
		Title: "Recurring Sales Entry",
		Fields: []FieldSpec{
			{Name: "product", Label: "Product", Kind: FieldKindProductSelect, Required: true},
			{Name: "orders", Label: "No. of Orders", Kind: FieldKindNumber, Required: true},
			{Name: "revenue", Label: "Revenue", Kind: FieldKindNumber, Required: true, Prefix: "$"},
			{Name: "teamMember", Label: "Team Member", Kind: FieldKindTeamSelect, Required: true},
		},
	},
	ChannelLeadGeneration: {
		Title: "Lead Generation Entry",
		Fields: []FieldSpec{
			{Name: "product", Label: "Product", Kind: FieldKindProductSelect, Required: true},
			{Name: "leadsGenerated", Label: "Leads Generated", Kind: FieldKindNumber, Required: true},
			{Name: "conversion", Label: "Conversion (%)", Kind: FieldKindNumber, Required: true, Suffix: "%"},
			{Name: "value", Label: "Value", Kind: FieldKindNumber, Required: true, Prefix: "$"},
		},
	},
	ChannelAbandonedCart: {
		Title: "Abandoned Cart Entry",
		Fields: []FieldSpec{
			{Name: "product", Label: "Product", Kind: FieldKindProductSelect, Required: true},
			{Name: "abandonedCarts", Label: "Abandoned Carts Received", Kind: FieldKindNumber, Required: true},
			{Name: "conversion", Label: "Conversion (%)", Kind: FieldKindNumber, Required: true, Suffix: "%"},
			{Name: "revenue", Label: "Revenue", Kind: FieldKindNumber, Required: true, Prefix: "$"},
		},
	},
	ChannelMediaEngagement: {
		Title: "Media Engagement Entry",
		Fields: []FieldSpec{
			{Name: "orders", Label: "No. of Orders", Kind: FieldKindNumber, Required: true},
			{Name: "value", Label: "Value", Kind: FieldKindNumber, Required: true, Prefix: "$"},
		},
	},
}

// channelLabels mapeia o identificador do canal para o rótulo exibido.
var channelLabels = map[Channel]string{
	ChannelSalesCampaign:   "Sales Campaign",
	ChannelRecurringSales:  "Recurring Sales",
	ChannelLeadGeneration:  "Lead Generation",
	ChannelAbandonedCart:   "Abandoned Cart",
	ChannelMediaEngagement: "Media Engagement",
}

// progressFields mapeia cada canal para o campo numérico somado no cálculo de
// progresso contra a meta.
var progressFields = map[Channel]string{
	ChannelSalesCampaign:   "orderValue",
	ChannelRecurringSales:  "revenue",
	ChannelLeadGeneration:  "value",
	ChannelAbandonedCart:   "revenue",
	ChannelMediaEngagement: "value",
}

// IsValid retorna verdadeiro se o canal pertence à enumeração fixa.
func (c Channel) IsValid() bool {
	_, ok := channelConfigs[c]
	return ok
}

// Config retorna a configuração de formulário do canal.
func (c Channel) Config() (ChannelConfig, bool) {
	cfg, ok := channelConfigs[c]
	return cfg, ok
}

// Label retorna o rótulo de exibição do canal, ou o próprio identificador
// quando o canal é desconhecido.
func (c Channel) Label() string {
	if label, ok := channelLabels[c]; ok {
		return label
	}
	return string(c)
}

// ProgressField retorna o nome do campo somado no progresso da meta.
func (c Channel) ProgressField() (string, bool) {
	field, ok := progressFields[c]
	return field, ok
}

// AllowedFieldNames retorna o conjunto de nomes de campos que entradas deste
// canal podem conter, além dos campos fixos (id, channel, date, createdAt).
func (c Channel) AllowedFieldNames() map[string]bool {
	cfg, ok := channelConfigs[c]
	if !ok {
		return nil
	}

	allowed := make(map[string]bool, len(cfg.Fields))
	for _, field := range cfg.Fields {
		allowed[field.Name] = true
	}
	return allowed
}
