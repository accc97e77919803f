package client

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type marketOrderParams struct {
	Type      string `url:"type" json:"type"`
	PriceType string `url:"price_type" json:"price_type"`
	Amount    string `url:"amount" json:"amount"`
}

// PlaceMarketOrder submits a market order for amount, denominated in the
// market's base currency.
func (c *Client) PlaceMarketOrder(market string, side Side, amount decimal.Decimal) (*Order, error) {
	var resp struct {
		Order Order `json:"order"`
	}

	params := marketOrderParams{Type: string(side), PriceType: "market", Amount: amount.String()}
	if err := c.call(http.MethodPost, "/markets/"+market+"/orders", params, &resp); err != nil {
		return nil, errors.Wrapf(err, "placing %s order on %s", side, market)
	}

	return &resp.Order, nil
}

// Order fetches the current details of a placed order.
func (c *Client) Order(id string) (*Order, error) {
	var resp struct {
		Order Order `json:"order"`
	}

	if err := c.call(http.MethodGet, "/orders/"+id, nil, &resp); err != nil {
		return nil, errors.Wrapf(err, "querying order %s", id)
	}

	return &resp.Order, nil
}
