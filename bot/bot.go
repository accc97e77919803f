// Package bot implements the detect → convert → withdraw state machine over
// a persisted deposit ledger. Each tick runs the three passes in order;
// every record mutation is persisted immediately, so an aborted tick resumes
// where it stopped and re-running a tick on unchanged inputs is a no-op.
package bot

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/surbot/anytoany/client"
	"github.com/surbot/anytoany/config"
	"github.com/surbot/anytoany/store"
)

type Bot struct {
	config   *config.Config
	exchange Exchange
	notifier Notifier
	log      *logrus.Logger

	market    *client.Market
	side      client.Side
	ledger    *Ledger
	decimals  precisions
	startedAt time.Time
}

func New(cfg *config.Config, exchange Exchange, s store.Store, notifier Notifier, logger *logrus.Logger) (*Bot, error) {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if logger == nil {
		logger = logrus.New()
	}

	market, side, err := resolveMarket(exchange, cfg.From.Currency, cfg.To.Currency)
	if err != nil {
		return nil, err
	}

	ledger, err := OpenLedger(s, cfg.From.Currency)
	if err != nil {
		return nil, err
	}

	startedAt, err := loadStartMarker(s, cfg.From.Currency)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"market": market.ID, "side": side, "records": ledger.Len(),
	}).Info("bot ready")

	return &Bot{
		config:    cfg,
		exchange:  exchange,
		notifier:  notifier,
		log:       logger,
		market:    market,
		side:      side,
		ledger:    ledger,
		decimals:  newPrecisions(cfg.Decimals),
		startedAt: startedAt,
	}, nil
}

// loadStartMarker returns the persisted activation time, writing it on the
// first ever run. Deposits created before it are never processed, even after
// restarts.
func loadStartMarker(s store.Store, currency string) (time.Time, error) {
	key := currency + "_start"

	var startedAt time.Time
	ok, err := s.Get(key, &startedAt)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "loading start marker")
	}
	if ok {
		return startedAt, nil
	}

	startedAt = time.Now().UTC()

	return startedAt, errors.Wrap(s.Set(key, startedAt), "persisting start marker")
}

// Tick runs one detect → convert → withdraw pass. An error aborts the tick;
// progress persisted up to that point stands and the next tick resumes from
// it.
func (b *Bot) Tick() error {
	b.log.Infof("checking for new %s deposits", b.config.From.Currency)
	if err := b.trackDeposits(); err != nil {
		return err
	}

	b.log.Info("converting pending amounts")
	if err := b.convert(); err != nil {
		return err
	}

	b.log.Info("processing pending withdrawals")
	return b.withdraw()
}

// Run drives Tick at the configured interval. Ticks never overlap: the next
// wait starts only after the current tick returns.
func (b *Bot) Run() {
	ticker := time.NewTicker(time.Second * time.Duration(b.config.TickInterval))
	defer ticker.Stop()

	for {
		if err := b.Tick(); err != nil {
			b.log.WithError(err).Error("tick aborted")
		}
		<-ticker.C
	}
}

// sourceCurrency is the wallet deposits arrive in: the quote currency when
// the bot buys, the base currency when it sells.
func (b *Bot) sourceCurrency() string {
	if b.side == client.Buy {
		return b.market.QuoteCurrency
	}
	return b.market.BaseCurrency
}

// targetCurrency is the wallet conversions land in, the opposite of
// sourceCurrency.
func (b *Bot) targetCurrency() string {
	if b.side == client.Buy {
		return b.market.BaseCurrency
	}
	return b.market.QuoteCurrency
}
