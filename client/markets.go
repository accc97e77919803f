package client

import (
	"net/http"

	"github.com/pkg/errors"
)

// Markets lists every market the exchange trades.
func (c *Client) Markets() ([]Market, error) {
	var resp struct {
		Markets []Market `json:"markets"`
	}

	if err := c.call(http.MethodGet, "/markets", nil, &resp); err != nil {
		return nil, errors.Wrap(err, "listing markets")
	}

	return resp.Markets, nil
}
