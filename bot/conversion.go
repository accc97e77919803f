package bot

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/surbot/anytoany/client"
)

const (
	orderPollInterval   = time.Second
	orderPollBackoffCap = 32 * time.Second
)

// errOrderPending marks an order that did not reach the traded state within
// the poll timeout. The record keeps the order id and the next tick resumes
// the wait.
var errOrderPending = errors.New("order still pending")

// convert places one market order per eligible record: confirmed deposits
// with source currency left to consume. Records with an in-flight order from
// an earlier run are settled first and left for the next tick.
func (b *Bot) convert() error {
	for _, id := range b.ledger.IDs() {
		record, _ := b.ledger.Get(id)

		if record.PendingOrder != "" {
			// Settle before anything else; those funds are already committed
			// no matter what the deposit state says now.
			if err := b.settlePending(id, record); err != nil {
				return err
			}
			continue
		}

		if record.State != client.DepositConfirmed || !record.Remaining().IsPositive() {
			continue
		}

		amount := record.Remaining()
		if b.side == client.Buy {
			// Remaining is quote currency; ask the exchange how much base
			// currency that spend buys.
			quotation, err := b.exchange.Quotation(b.market.ID, client.BidGivenSpentQuote, amount)
			if err != nil {
				return errors.Wrap(err, "quoting order amount")
			}
			amount = quotation.OrderAmount.Value
		}

		amount = b.decimals.truncate(amount, b.market.BaseCurrency)
		if !amount.IsPositive() || amount.LessThan(b.market.MinimumOrderAmount.Value) {
			continue // not tradeable yet, skip silently
		}

		order, err := b.exchange.PlaceMarketOrder(b.market.ID, b.side, amount)
		if err != nil {
			return errors.Wrap(err, "placing market order")
		}
		if order == nil {
			continue
		}

		b.notifier.Notify(fmt.Sprintf("%sing %s %s at market rate", sideVerb(b.side), amount, b.market.BaseCurrency))

		// Persist the order id before waiting on it; a crash past this point
		// cannot lose an order the exchange accepted.
		record.placeOrder(order.ID)
		if err := b.ledger.Save(); err != nil {
			return err
		}

		b.log.WithField("order", order.ID).Infof("%s market order placed, waiting for traded state", b.side)

		if err := b.settlePending(id, record); err != nil {
			return err
		}
	}

	return nil
}

// settlePending waits for the record's in-flight order to trade and folds
// the result into the running totals. A poll timeout is retryable: the order
// id stays on the record and the tick moves on.
func (b *Bot) settlePending(id string, record *Record) error {
	order, err := b.waitTraded(record.PendingOrder)
	if err == errOrderPending {
		b.log.WithField("order", record.PendingOrder).Warn("order not traded yet, retrying next tick")
		b.notifier.Notify(fmt.Sprintf("Order %s for deposit %s still pending, will retry", record.PendingOrder, id))
		return nil
	}
	if err != nil {
		return err
	}

	// Buying consumes quote currency (TotalExchanged) and obtains base
	// currency (TradedAmount); selling is the reverse.
	amount, value := order.TradedAmount.Value, order.TotalExchanged.Value
	if b.side == client.Buy {
		amount, value = order.TotalExchanged.Value, order.TradedAmount.Value
	}
	value = value.Sub(order.PaidFee.Value) // fees never reach the withdrawal

	if err := record.settleOrder(amount, value); err != nil {
		return errors.Wrapf(err, "settling order %s", order.ID)
	}
	if err := b.ledger.Save(); err != nil {
		return err
	}

	b.log.WithField("order", order.ID).Infof("%s order traded, totals updated", b.side)
	b.notifier.Notify(fmt.Sprintf("Success!, converted value: %s %s", record.Amounts.Value, b.config.To.Currency))

	return nil
}

// waitTraded polls the order until it trades, backing off from one second up
// to the cap, bounded by the configured timeout.
func (b *Bot) waitTraded(id string) (*client.Order, error) {
	deadline := time.Now().Add(time.Second * time.Duration(b.config.OrderPollTimeout))
	wait := orderPollInterval

	for {
		order, err := b.exchange.Order(id)
		if err != nil {
			return nil, errors.Wrap(err, "querying order")
		}
		if order.State == client.OrderTraded {
			return order, nil
		}
		if !time.Now().Before(deadline) {
			return nil, errOrderPending
		}

		time.Sleep(wait)
		wait *= 2
		if wait > orderPollBackoffCap {
			wait = orderPollBackoffCap
		}
	}
}

func sideVerb(side client.Side) string {
	if side == client.Buy {
		return "Buy"
	}
	return "Sell"
}
