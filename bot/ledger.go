package bot

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/thoas/go-funk"

	"github.com/surbot/anytoany/store"
)

// Amounts tracks one deposit's conversion progress.
type Amounts struct {
	Original  decimal.Decimal // deposited quantity, fixed at creation
	Converted decimal.Decimal // source currency consumed by orders so far
	Value     decimal.Decimal // target currency obtained, net of fees
}

// Record is one deposit's entry in the ledger. Mutations go through methods
// so the invariants hold on every write: Converted never exceeds Original or
// decreases, and PendingWithdrawal flips to false at most once.
type Record struct {
	State             string
	Amounts           Amounts
	Orders            []string // audit trail of every order placed for this deposit
	PendingOrder      string   // placed but not yet settled
	PendingWithdrawal bool
}

func newRecord(state string, amount decimal.Decimal, withdraw bool) *Record {
	return &Record{
		State:             state,
		Amounts:           Amounts{Original: amount},
		PendingWithdrawal: withdraw,
	}
}

// Remaining is the source-currency quantity not yet consumed by orders.
func (r *Record) Remaining() decimal.Decimal {
	return r.Amounts.Original.Sub(r.Amounts.Converted)
}

func (r *Record) converted() bool {
	return r.Amounts.Converted.Equal(r.Amounts.Original)
}

// placeOrder records an order id before its results are known, so a crash
// between placement and settlement cannot lose an order the exchange
// accepted.
func (r *Record) placeOrder(id string) {
	r.Orders = append(r.Orders, id)
	r.PendingOrder = id
}

// settleOrder folds a traded order into the running totals: amount of source
// currency consumed, value of target currency obtained net of fees.
func (r *Record) settleOrder(amount, value decimal.Decimal) error {
	if amount.IsNegative() || value.IsNegative() {
		return errors.Errorf("order settled with negative amounts: %s, %s", amount, value)
	}

	converted := r.Amounts.Converted.Add(amount)
	if converted.GreaterThan(r.Amounts.Original) {
		return errors.Errorf("converted amount %s exceeds original %s", converted, r.Amounts.Original)
	}

	r.Amounts.Converted = converted
	r.Amounts.Value = r.Amounts.Value.Add(value)
	r.PendingOrder = ""

	return nil
}

// settleWithdrawal marks the record paid out. A record is withdrawn at most
// once; the flag never goes back.
func (r *Record) settleWithdrawal() error {
	if !r.PendingWithdrawal {
		return errors.New("withdrawal already settled")
	}
	r.PendingWithdrawal = false

	return nil
}

// Ledger maps deposit ids to their records. One ledger covers one source
// currency and is persisted as a whole snapshot under a single store key, so
// a crash loses at most the record mutated since the last Save.
type Ledger struct {
	key     string
	store   store.Store
	records map[string]*Record
}

func OpenLedger(s store.Store, currency string) (*Ledger, error) {
	ledger := &Ledger{
		key:     currency + "_deposits",
		store:   s,
		records: make(map[string]*Record),
	}

	if _, err := s.Get(ledger.key, &ledger.records); err != nil {
		return nil, errors.Wrap(err, "loading ledger")
	}

	return ledger, nil
}

func (l *Ledger) Get(id string) (*Record, bool) {
	record, ok := l.records[id]
	return record, ok
}

func (l *Ledger) Put(id string, record *Record) {
	l.records[id] = record
}

func (l *Ledger) Len() int {
	return len(l.records)
}

// IDs returns the deposit ids in sorted order, so records are processed
// deterministically within a tick.
func (l *Ledger) IDs() []string {
	ids := funk.Keys(l.records).([]string)
	sort.Strings(ids)

	return ids
}

// Save rewrites the whole snapshot. Callers persist after every record
// mutation, not at the end of a pass.
func (l *Ledger) Save() error {
	return errors.Wrap(l.store.Set(l.key, l.records), "saving ledger")
}
