package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/surbot/anytoany/client"
)

func TestResolveMarket(t *testing.T) {
	exchange := NewFakeExchange(btcUsdt())

	market, side, err := resolveMarket(exchange, "BTC", "USDT")
	assert.NoError(t, err)
	assert.Equal(t, "BTC-USDT", market.ID)
	assert.Equal(t, client.Sell, side)

	market, side, err = resolveMarket(exchange, "USDT", "BTC")
	assert.NoError(t, err)
	assert.Equal(t, "BTC-USDT", market.ID)
	assert.Equal(t, client.Buy, side)
}

func TestResolveMarketMissing(t *testing.T) {
	exchange := NewFakeExchange(btcUsdt())

	_, _, err := resolveMarket(exchange, "BTC", "CLP")
	assert.EqualError(t, err, "no market connects BTC and CLP")

	// The constructor refuses to build a bot without a market.
	cfg := testConfig()
	cfg.To.Currency = "CLP"
	_, err = New(cfg, exchange, nil, nil, nil)
	assert.Error(t, err)
}
