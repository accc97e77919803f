package bot

import (
	"github.com/shopspring/decimal"

	"github.com/surbot/anytoany/client"
)

// FakeExchange implements Exchange against fixed in-memory data so the state
// machine can be exercised without the real API.
type FakeExchange struct {
	MarketList      []client.Market
	DepositFeed     map[string][]client.Deposit // by wallet currency
	QuoteAmount     decimal.Decimal             // order amount any quotation returns
	NextOrder       *client.Order               // what PlaceMarketOrder hands back; nil rejects silently
	OrderBook       map[string]*client.Order    // order details by id
	Balances        map[string]decimal.Decimal  // available balance by currency
	WithdrawalState string

	PlacedOrders []client.Order      // every market order placed
	Withdrawals  []client.Withdrawal // every withdrawal requested
}

func NewFakeExchange(markets ...client.Market) *FakeExchange {
	return &FakeExchange{
		MarketList:      markets,
		DepositFeed:     make(map[string][]client.Deposit),
		OrderBook:       make(map[string]*client.Order),
		Balances:        make(map[string]decimal.Decimal),
		WithdrawalState: client.WithdrawalPendingPreparation,
	}
}

func (f *FakeExchange) Markets() ([]client.Market, error) {
	return f.MarketList, nil
}

func (f *FakeExchange) Deposits(currency string) ([]client.Deposit, error) {
	return f.DepositFeed[currency], nil
}

func (f *FakeExchange) Quotation(market string, typ client.QuotationType, amount decimal.Decimal) (*client.Quotation, error) {
	return &client.Quotation{
		Type:        string(typ),
		Amount:      client.Amount{Value: amount},
		OrderAmount: client.Amount{Value: f.QuoteAmount},
	}, nil
}

func (f *FakeExchange) PlaceMarketOrder(market string, side client.Side, amount decimal.Decimal) (*client.Order, error) {
	if f.NextOrder == nil {
		return nil, nil
	}

	order := *f.NextOrder
	order.Market = market
	order.Type = side
	order.Amount = client.Amount{Value: amount}
	f.PlacedOrders = append(f.PlacedOrders, order)

	return &order, nil
}

func (f *FakeExchange) Order(id string) (*client.Order, error) {
	return f.OrderBook[id], nil
}

func (f *FakeExchange) Balance(currency string) (*client.Balance, error) {
	return &client.Balance{
		ID:              currency,
		AvailableAmount: client.Amount{Value: f.Balances[currency], Currency: currency},
	}, nil
}

func (f *FakeExchange) Withdraw(currency string, amount decimal.Decimal, address string, subtractFee bool) (*client.Withdrawal, error) {
	withdrawal := client.Withdrawal{
		ID:       "W1",
		State:    f.WithdrawalState,
		Currency: currency,
		Amount:   client.Amount{Value: amount, Currency: currency},
	}
	f.Withdrawals = append(f.Withdrawals, withdrawal)

	return &withdrawal, nil
}

// recorder captures notifications for assertions.
type recorder struct {
	messages []string
}

func (r *recorder) Notify(message string) {
	r.messages = append(r.messages, message)
}
