package config

import (
	"github.com/jinzhu/configor"
	"github.com/pkg/errors"
)

const FileName = "anytoany.config.yml"

// AnyAddress is the wildcard sentinel disabling deposit address filtering.
const AnyAddress = "Any"

type Config struct {
	From struct {
		Currency string `required:"true"` // currency deposits arrive in
		Address  string `default:"Any"`   // only watch deposits to this address
	}
	To struct {
		Currency string `required:"true"` // currency deposits are converted into
		Withdraw bool   // whether converted value is paid out
		Address  string // payout destination
	}
	Exchange struct {
		AccessKey string
		SecretKey string
	}
	Notifier struct {
		SlackWebhook string
		Tag          string `default:"AnyToAny"`
	}
	DB               string `default:"anytoany.db"`
	TickInterval     int64  `default:"60"`  // seconds between ticks
	OrderPollTimeout int64  `default:"300"` // seconds to wait for an order to trade
	// Decimals overrides the built-in per-currency precision table.
	Decimals map[string]int32
}

func Load(name string) (*Config, error) {
	config := &Config{}

	err := configor.New(&configor.Config{Silent: true, ErrorOnUnmatchedKeys: true}).Load(config, name)
	if err != nil {
		return nil, errors.Wrap(err, "loading configuration")
	}

	if config.To.Withdraw && config.To.Address == "" {
		return nil, errors.New("to.address is required when to.withdraw is set")
	}

	return config, nil
}
