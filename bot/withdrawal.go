package bot

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/surbot/anytoany/client"
)

// withdraw pays out records that are confirmed, fully converted and still
// awaiting payout. Soft failures (insufficient balance, withdrawal request
// not sticking) leave the record untouched so the next tick retries.
func (b *Bot) withdraw() error {
	for _, id := range b.ledger.IDs() {
		record, _ := b.ledger.Get(id)

		if record.State != client.DepositConfirmed || !record.PendingWithdrawal || !record.converted() {
			continue
		}

		amount := b.decimals.truncate(record.Amounts.Value, b.config.To.Currency)
		if !amount.IsPositive() {
			continue
		}

		balance, err := b.exchange.Balance(b.targetCurrency())
		if err != nil {
			return errors.Wrap(err, "querying balance")
		}

		available := balance.AvailableAmount.Value
		if amount.GreaterThan(available) {
			b.log.WithFields(logrus.Fields{"amount": amount, "available": available}).
				Warn("available balance not enough for withdrawal")
			b.notifier.Notify(fmt.Sprintf(
				"Available balance not enough for withdrawal amount %s %s", amount, b.config.To.Currency))
			continue
		}

		b.notifier.Notify(fmt.Sprintf("Withdrawing %s %s", amount, b.config.To.Currency))

		withdrawal, err := b.exchange.Withdraw(b.config.To.Currency, amount, b.config.To.Address, true)
		if err != nil {
			return errors.Wrap(err, "requesting withdrawal")
		}
		if withdrawal.State != client.WithdrawalPendingPreparation {
			b.log.WithField("state", withdrawal.State).Warn("withdrawal failed")
			b.notifier.Notify("Withdrawal failed, will retry next run")
			continue
		}

		if err := record.settleWithdrawal(); err != nil {
			return err
		}
		if err := b.ledger.Save(); err != nil {
			return err
		}

		b.log.WithField("withdrawal", withdrawal.ID).Infof("%s withdrawal request received", b.config.To.Currency)
		b.notifier.Notify(fmt.Sprintf("Success!, withdrawal id: %s %s", withdrawal.ID, b.config.To.Currency))
	}

	return nil
}
