package bot

import (
	"github.com/pkg/errors"
	"github.com/thoas/go-funk"

	"github.com/surbot/anytoany/client"
)

// resolveMarket finds the market pairing from and to, and the side that
// converts from into to: selling when from is the base currency, buying when
// it is the quote. No direct market is a setup error; the bot must not run.
func resolveMarket(exchange Exchange, from, to string) (*client.Market, client.Side, error) {
	markets, err := exchange.Markets()
	if err != nil {
		return nil, "", errors.Wrap(err, "listing markets")
	}

	if m := funk.Find(markets, func(m client.Market) bool {
		return m.BaseCurrency == from && m.QuoteCurrency == to
	}); m != nil {
		market := m.(client.Market)
		return &market, client.Sell, nil
	}

	if m := funk.Find(markets, func(m client.Market) bool {
		return m.BaseCurrency == to && m.QuoteCurrency == from
	}); m != nil {
		market := m.(client.Market)
		return &market, client.Buy, nil
	}

	return nil, "", errors.Errorf("no market connects %s and %s", from, to)
}
