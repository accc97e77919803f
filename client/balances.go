package client

import (
	"net/http"

	"github.com/pkg/errors"
)

// Balance fetches the wallet balance for one currency.
func (c *Client) Balance(currency string) (*Balance, error) {
	var resp struct {
		Balance Balance `json:"balance"`
	}

	if err := c.call(http.MethodGet, "/balances/"+currency, nil, &resp); err != nil {
		return nil, errors.Wrapf(err, "querying %s balance", currency)
	}

	return &resp.Balance, nil
}
