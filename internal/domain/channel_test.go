package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelRegistry_CoberturaCompleta(t *testing.T) {
	require.Len(t, Channels, 5)

	for _, channel := range Channels {
		t.Run(string(channel), func(t *testing.T) {
			assert.True(t, channel.IsValid())

			config, ok := channel.Config()
			require.True(t, ok)
			assert.NotEmpty(t, config.Title)
			assert.NotEmpty(t, config.Fields)

			// Todo canal tem um campo de progresso e ele pertence à própria
			// configuração
			progressField, ok := channel.ProgressField()
			require.True(t, ok)
			assert.True(t, channel.AllowedFieldNames()[progressField])
		})
	}
}

func TestChannelRegistry_CamposPorCanal(t *testing.T) {
	fieldNames := func(c Channel) []string {
		config, _ := c.Config()
		names := make([]string, 0, len(config.Fields))
		for _, field := range config.Fields {
			names = append(names, field.Name)
		}
		return names
	}

	assert.Equal(t, []string{"product", "orders", "orderValue"}, fieldNames(ChannelSalesCampaign))
	assert.Equal(t, []string{"product", "orders", "revenue", "teamMember"}, fieldNames(ChannelRecurringSales))
	assert.Equal(t, []string{"product", "leadsGenerated", "conversion", "value"}, fieldNames(ChannelLeadGeneration))
	assert.Equal(t, []string{"product", "abandonedCarts", "conversion", "revenue"}, fieldNames(ChannelAbandonedCart))
	assert.Equal(t, []string{"orders", "value"}, fieldNames(ChannelMediaEngagement))
}

func TestChannelRegistry_CamposDeProgresso(t *testing.T) {
	expected := map[Channel]string{
		ChannelSalesCampaign:   "orderValue",
		ChannelRecurringSales:  "revenue",
		ChannelLeadGeneration:  "value",
		ChannelAbandonedCart:   "revenue",
		ChannelMediaEngagement: "value",
	}

	for channel, field := range expected {
		actual, ok := channel.ProgressField()
		require.True(t, ok)
		assert.Equal(t, field, actual, "canal %s", channel)
	}
}

func TestChannel_Desconhecido(t *testing.T) {
	channel := Channel("email-marketing")

	assert.False(t, channel.IsValid())

	_, ok := channel.Config()
	assert.False(t, ok)

	_, ok = channel.ProgressField()
	assert.False(t, ok)

	assert.Nil(t, channel.AllowedFieldNames())

	// Label de canal desconhecido devolve o próprio identificador
	assert.Equal(t, "email-marketing", channel.Label())
}

func TestChannel_Label(t *testing.T) {
	assert.Equal(t, "Sales Campaign", ChannelSalesCampaign.Label())
	assert.Equal(t, "Abandoned Cart", ChannelAbandonedCart.Label())
}
