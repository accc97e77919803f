package store

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type snapshot struct {
	Amount  decimal.Decimal
	Started time.Time
	Orders  []string
}

func TestBolt(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "store")
	assert.NoError(t, err)
	defer os.Remove(tmpfile.Name())
	assert.NoError(t, tmpfile.Close())

	s, err := OpenBolt(tmpfile.Name())
	assert.NoError(t, err)
	defer s.Close()

	testStore(t, s)
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func testStore(t *testing.T, s Store) {
	var loaded snapshot

	ok, err := s.Get("missing", &loaded)
	assert.NoError(t, err)
	assert.False(t, ok)

	saved := snapshot{
		Amount:  decimal.RequireFromString("0.12345678"),
		Started: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Orders:  []string{"O1", "O2"},
	}
	assert.NoError(t, s.Set("snapshot", saved))

	ok, err = s.Get("snapshot", &loaded)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, saved.Amount.Equal(loaded.Amount))
	assert.True(t, saved.Started.Equal(loaded.Started))
	assert.Equal(t, saved.Orders, loaded.Orders)

	// Set overwrites the whole value.
	assert.NoError(t, s.Set("snapshot", snapshot{Orders: []string{"O3"}}))
	ok, err = s.Get("snapshot", &loaded)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"O3"}, loaded.Orders)
}
