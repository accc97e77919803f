package bot

import (
	"github.com/shopspring/decimal"

	"github.com/surbot/anytoany/client"
)

// Exchange is the trading capability the bot needs. *client.Client
// satisfies it.
type Exchange interface {
	Markets() ([]client.Market, error)
	Deposits(currency string) ([]client.Deposit, error)
	Quotation(market string, typ client.QuotationType, amount decimal.Decimal) (*client.Quotation, error)
	PlaceMarketOrder(market string, side client.Side, amount decimal.Decimal) (*client.Order, error)
	Order(id string) (*client.Order, error)
	Balance(currency string) (*client.Balance, error)
	Withdraw(currency string, amount decimal.Decimal, address string, subtractFee bool) (*client.Withdrawal, error)
}

// Notifier receives one-way, best-effort alerts. Implementations swallow
// their own failures; a notification must never abort a tick.
type Notifier interface {
	Notify(message string)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string) {}
