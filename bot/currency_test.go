package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecisionsTruncate(t *testing.T) {
	p := newPrecisions(map[string]int32{"XYZ": 4})

	// Truncation floors, it never rounds up.
	assert.Equal(t, "1.2345", p.truncate(dec("1.23456789"), "XYZ").String())
	assert.Equal(t, "1.2345", p.truncate(dec("1.23459999"), "XYZ").String())

	assert.Equal(t, "1998", p.truncate(dec("1998.567"), "CLP").String())
	assert.Equal(t, "1998.56", p.truncate(dec("1998.567"), "USDT").String())
	assert.Equal(t, "0.12345678", p.truncate(dec("0.123456789"), "BTC").String())
	assert.Equal(t, "0.123456789", p.truncate(dec("0.123456789"), "ETH").String())

	// Unknown currencies fall back to eight places.
	assert.Equal(t, "0.12345678", p.truncate(dec("0.123456789"), "DOGE").String())
}

// TestPrecisionOverridesStayLocal builds two tables and checks overrides in
// one never reach the other or the builtin defaults.
func TestPrecisionOverridesStayLocal(t *testing.T) {
	overridden := newPrecisions(map[string]int32{"USDT": 0})
	plain := newPrecisions(nil)

	assert.Equal(t, "1998", overridden.truncate(dec("1998.567"), "USDT").String())
	assert.Equal(t, "1998.56", plain.truncate(dec("1998.567"), "USDT").String())
	assert.Equal(t, int32(2), builtinPrecisions["USDT"])
}
