package client

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type withdrawalParams struct {
	Amount        string `url:"amount" json:"amount"`
	TargetAddress string `url:"target_address" json:"target_address"`
	SubtractFee   bool   `url:"subtract_fee" json:"subtract_fee"`
}

// Withdraw requests a payout of amount to address. With subtractFee the
// exchange takes its fee out of the requested amount instead of the
// remaining balance.
func (c *Client) Withdraw(currency string, amount decimal.Decimal, address string, subtractFee bool) (*Withdrawal, error) {
	var resp struct {
		Withdrawal Withdrawal `json:"withdrawal"`
	}

	params := withdrawalParams{Amount: amount.String(), TargetAddress: address, SubtractFee: subtractFee}
	if err := c.call(http.MethodPost, "/currencies/"+currency+"/withdrawals", params, &resp); err != nil {
		return nil, errors.Wrapf(err, "requesting %s withdrawal", currency)
	}

	return &resp.Withdrawal, nil
}
