package projection

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthcast-backend/internal/domain"
)

const daysPerYear = 365.0

var one = decimal.NewFromInt(1)

// growthFactor returns (1 + rate)^(days/365)
// rate is a fraction (0.05 for 5%). days may be negative.
// A zero rate or zero days yields exactly 1
func growthFactor(rate decimal.Decimal, days int) (decimal.Decimal, error) {
	if rate.IsZero() || days == 0 {
		return one, nil
	}
	base := one.Add(rate).InexactFloat64()
	factor := math.Pow(base, float64(days)/daysPerYear)
	if math.IsInf(factor, 0) || math.IsNaN(factor) {
		return decimal.Zero, fmt.Errorf("%w: growth at rate %s over %d days is not finite", domain.ErrOutOfRange, rate, days)
	}
	return decimal.NewFromFloat(factor), nil
}
