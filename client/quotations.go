package client

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type quotationParams struct {
	Type   string `url:"type" json:"type"`
	Amount string `url:"amount" json:"amount"`
}

// Quotation simulates a market order: it translates an amount in one
// currency of the pair into the tradeable amount in the other, per typ.
func (c *Client) Quotation(market string, typ QuotationType, amount decimal.Decimal) (*Quotation, error) {
	var resp struct {
		Quotation Quotation `json:"quotation"`
	}

	params := quotationParams{Type: string(typ), Amount: amount.String()}
	if err := c.call(http.MethodPost, "/markets/"+market+"/quotations", params, &resp); err != nil {
		return nil, errors.Wrapf(err, "quoting %s on %s", typ, market)
	}

	return &resp.Quotation, nil
}
