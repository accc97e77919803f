package bot

import "github.com/shopspring/decimal"

// precisions maps currencies to the decimal places the exchange accepts.
// Amounts are truncated to these, never rounded up, so an order can't
// overshoot the exchange's step size and a withdrawal can't overshoot the
// converted value.
type precisions map[string]int32

var builtinPrecisions = precisions{
	"BTC":  8,
	"BCH":  8,
	"LTC":  8,
	"ETH":  9,
	"CLP":  0,
	"COP":  0,
	"PEN":  0,
	"USDC": 2,
	"USDT": 2,
}

const defaultDecimals = 8

// newPrecisions copies the builtin table and applies the configured
// overrides, so one bot's overrides never reach another.
func newPrecisions(overrides map[string]int32) precisions {
	p := make(precisions, len(builtinPrecisions)+len(overrides))
	for currency, places := range builtinPrecisions {
		p[currency] = places
	}
	for currency, places := range overrides {
		p[currency] = places
	}

	return p
}

func (p precisions) truncate(d decimal.Decimal, currency string) decimal.Decimal {
	places, ok := p[currency]
	if !ok {
		places = defaultDecimals
	}

	return d.Truncate(places)
}
