package client

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Side string

const (
	Buy  Side = "Bid"
	Sell Side = "Ask"
)

// Deposit lifecycle states as the exchange reports them. The bot compares
// them for equality only; it never validates transitions.
const (
	DepositUnconfirmed = "unconfirmed"
	DepositConfirmed   = "confirmed"
	DepositRejected    = "rejected"
)

// OrderTraded is the terminal state of a filled market order.
const OrderTraded = "traded"

// WithdrawalPendingPreparation is the state a freshly accepted withdrawal
// request reaches; anything else means the request did not stick.
const WithdrawalPendingPreparation = "pending_preparation"

type QuotationType string

const (
	// BidGivenSpentQuote asks how much base currency a market buy obtains
	// for a given quote-currency spend.
	BidGivenSpentQuote QuotationType = "bid_given_spent_quote"
	// AskGivenSize asks how much quote currency a market sell of a given
	// base-currency size returns.
	AskGivenSize QuotationType = "ask_given_size"
)

// Amount is the exchange's wire format for monetary values, a
// ["1.5", "BTC"] pair.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{a.Value.String(), a.Currency})
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var pair [2]string

	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	value, err := decimal.NewFromString(pair[0])
	if err != nil {
		return err
	}

	a.Value = value
	a.Currency = pair[1]

	return nil
}

type Market struct {
	ID                 string `json:"id"`
	BaseCurrency       string `json:"base_currency"`
	QuoteCurrency      string `json:"quote_currency"`
	MinimumOrderAmount Amount `json:"minimum_order_amount"`
}

type Deposit struct {
	ID          string      `json:"id"`
	State       string      `json:"state"`
	Currency    string      `json:"currency"`
	Amount      Amount      `json:"amount"`
	CreatedAt   time.Time   `json:"created_at"`
	DepositData DepositData `json:"deposit_data"`
}

type DepositData struct {
	Address string `json:"address"`
}

type Order struct {
	ID             string `json:"id"`
	Market         string `json:"market_id"`
	Type           Side   `json:"type"`
	State          string `json:"state"`
	Amount         Amount `json:"amount"`
	TradedAmount   Amount `json:"traded_amount"`
	TotalExchanged Amount `json:"total_exchanged"`
	PaidFee        Amount `json:"paid_fee"`
}

type Quotation struct {
	Type        string `json:"type"`
	Amount      Amount `json:"amount"`
	OrderAmount Amount `json:"order_amount"`
}

type Balance struct {
	ID              string `json:"id"`
	Amount          Amount `json:"amount"`
	AvailableAmount Amount `json:"available_amount"`
}

type Withdrawal struct {
	ID       string `json:"id"`
	State    string `json:"state"`
	Currency string `json:"currency"`
	Amount   Amount `json:"amount"`
}
