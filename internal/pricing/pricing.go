// Package pricing рассчитывает стоимость аренды по дневному и недельному тарифу.
//
// Политика: количество суток = ceil(часы / 24), минимум 1.
// При наличии недельного тарифа и аренде от 7 суток полные недели считаются по
// недельному тарифу, остаток дней по дневному. Итог округляется до копеек.
package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/RentalBookingService/internal/domain"
)

// ErrInvalidRates возвращается при отрицательном или нулевом дневном тарифе
var ErrInvalidRates = errors.New("pricing: invalid rates")

const day = 24 * time.Hour

// Breakdown детализация расчета
type Breakdown struct {
	Days      int
	Weeks     int
	ExtraDays int
	Total     decimal.Decimal
}

// DayCount количество оплачиваемых суток в периоде [pickup, dropoff)
func DayCount(pickup, dropoff time.Time) int {
	d := dropoff.Sub(pickup)
	if d <= 0 {
		return 1
	}
	days := int(d / day)
	if d%day != 0 {
		days++
	}
	if days < 1 {
		return 1
	}
	return days
}

// Calculate возвращает детализацию стоимости периода
func Calculate(rates domain.Rates, pickup, dropoff time.Time) (Breakdown, error) {
	if err := validateRates(rates); err != nil {
		return Breakdown{}, err
	}
	if !dropoff.After(pickup) {
		return Breakdown{}, domain.ErrInvalidDateRange
	}

	days := DayCount(pickup, dropoff)
	b := Breakdown{Days: days, ExtraDays: days}

	if rates.Weekly != nil && days >= domain.DaysPerWeek {
		b.Weeks = days / domain.DaysPerWeek
		b.ExtraDays = days % domain.DaysPerWeek
	}

	total := rates.Daily.Mul(decimal.NewFromInt(int64(b.ExtraDays)))
	if b.Weeks > 0 {
		total = total.Add(rates.Weekly.Mul(decimal.NewFromInt(int64(b.Weeks))))
	}
	b.Total = total.Round(domain.PriceDecimalPlaces)

	return b, nil
}

// Price стоимость аренды за период [pickup, dropoff)
func Price(rates domain.Rates, pickup, dropoff time.Time) (decimal.Decimal, error) {
	b, err := Calculate(rates, pickup, dropoff)
	if err != nil {
		return decimal.Zero, err
	}
	return b.Total, nil
}

// ExtensionPrice доплата за продление: считается только добавленный отрезок
// [oldDropoff, newDropoff), уже оплаченные дни повторно не тарифицируются
func ExtensionPrice(rates domain.Rates, oldDropoff, newDropoff time.Time) (decimal.Decimal, error) {
	return Price(rates, oldDropoff, newDropoff)
}

func validateRates(rates domain.Rates) error {
	if !rates.Daily.IsPositive() {
		return fmt.Errorf("%w: daily rate must be positive", ErrInvalidRates)
	}
	if rates.Weekly != nil && !rates.Weekly.IsPositive() {
		return fmt.Errorf("%w: weekly rate must be positive", ErrInvalidRates)
	}
	return nil
}
