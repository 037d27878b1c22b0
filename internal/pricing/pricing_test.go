package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

func march(day int) time.Time {
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

func dailyOnly(rate int64) domain.Rates {
	return domain.Rates{Daily: decimal.NewFromInt(rate)}
}

func TestDayCount(t *testing.T) {
	assert.Equal(t, 4, DayCount(march(1), march(5)))
	assert.Equal(t, 1, DayCount(march(1), march(1).Add(time.Hour)))
	assert.Equal(t, 2, DayCount(march(1), march(2).Add(time.Minute)))
	assert.Equal(t, 1, DayCount(march(5), march(5)))
}

func TestPrice_DailyRate(t *testing.T) {
	got, err := Price(dailyOnly(450), march(1), march(5))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1800).Equal(got), got.String())
}

func TestExtensionPrice_Incremental(t *testing.T) {
	rates := dailyOnly(450)

	base, err := Price(rates, march(1), march(5))
	require.NoError(t, err)
	extra, err := ExtensionPrice(rates, march(5), march(8))
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1350).Equal(extra), extra.String())
	assert.True(t, decimal.NewFromInt(3150).Equal(base.Add(extra)))
}

func TestPrice_WeeklyBlend(t *testing.T) {
	weekly := decimal.NewFromInt(2800)
	rates := domain.Rates{Daily: decimal.NewFromInt(450), Weekly: &weekly}

	tests := []struct {
		name    string
		dropoff time.Time
		want    int64
	}{
		{"six days stays daily", march(7), 6 * 450},
		{"exactly one week", march(8), 2800},
		{"week plus three days", march(11), 2800 + 3*450},
		{"two weeks", march(15), 2 * 2800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(rates, march(1), tt.dropoff)
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), got.String())
		})
	}
}

func TestCalculate_Breakdown(t *testing.T) {
	weekly := decimal.NewFromInt(2800)
	b, err := Calculate(domain.Rates{Daily: decimal.NewFromInt(450), Weekly: &weekly}, march(1), march(11))
	require.NoError(t, err)
	assert.Equal(t, Breakdown{Days: 10, Weeks: 1, ExtraDays: 3, Total: b.Total}, b)
}

func TestPrice_RoundsToCents(t *testing.T) {
	got, err := Price(domain.Rates{Daily: decimal.RequireFromString("33.333")}, march(1), march(4))
	require.NoError(t, err)
	assert.Equal(t, "100", got.String())

	got, err = Price(domain.Rates{Daily: decimal.RequireFromString("10.005")}, march(1), march(2))
	require.NoError(t, err)
	assert.Equal(t, "10.01", got.String())
}

func TestPrice_Errors(t *testing.T) {
	_, err := Price(dailyOnly(0), march(1), march(5))
	assert.ErrorIs(t, err, ErrInvalidRates)

	_, err = Price(dailyOnly(450), march(5), march(5))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}
