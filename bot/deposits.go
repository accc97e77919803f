package bot

import (
	"fmt"

	"github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"

	"github.com/surbot/anytoany/client"
	"github.com/surbot/anytoany/config"
)

// trackDeposits reconciles the exchange's deposit list into the ledger:
// unknown deposits get a fresh record, known deposits mirror their reported
// state, unchanged deposits are left alone. The ledger is persisted after
// every deposit, not once at the end.
func (b *Bot) trackDeposits() error {
	deposits, err := b.exchange.Deposits(b.sourceCurrency())
	if err != nil {
		return errors.Wrap(err, "listing deposits")
	}

	var watched []client.Deposit
	linq.From(deposits).
		WhereT(func(d client.Deposit) bool {
			if b.config.From.Address != config.AnyAddress && d.DepositData.Address != b.config.From.Address {
				return false
			}
			return !d.CreatedAt.Before(b.startedAt)
		}).
		ToSlice(&watched)

	for _, deposit := range watched {
		record, ok := b.ledger.Get(deposit.ID)

		switch {
		case !ok:
			record = newRecord(deposit.State, deposit.Amount.Value, b.config.To.Withdraw)
			b.ledger.Put(deposit.ID, record)

			b.log.WithField("deposit", deposit.ID).Info("new deposit detected")
			b.notifier.Notify(fmt.Sprintf(
				"New deposit detected: id: %s | currency: %s | amount: %s | state: %s",
				deposit.ID, deposit.Currency, deposit.Amount.Value, deposit.State))
		case record.State != deposit.State:
			record.State = deposit.State

			b.log.WithField("deposit", deposit.ID).Infof("deposit state changed to %s", deposit.State)
			b.notifier.Notify(fmt.Sprintf("Deposit %s state changed to %s", deposit.ID, deposit.State))
		default:
			continue // unchanged, nothing to persist
		}

		if err := b.ledger.Save(); err != nil {
			return err
		}
	}

	return nil
}
