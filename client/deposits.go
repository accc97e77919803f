package client

import (
	"net/http"

	"github.com/pkg/errors"
)

// Deposits lists the incoming transfers into the currency's wallet, newest
// first.
func (c *Client) Deposits(currency string) ([]Deposit, error) {
	var resp struct {
		Deposits []Deposit `json:"deposits"`
	}

	if err := c.call(http.MethodGet, "/currencies/"+currency+"/deposits", nil, &resp); err != nil {
		return nil, errors.Wrapf(err, "listing %s deposits", currency)
	}

	return resp.Deposits, nil
}
