package kernel

import (
	"github.com/shopspring/decimal"
)

// Money is a signed decimal amount. Negative values are representable on purpose:
// the record model carries whatever the source supplied and rules decide what is valid.
//
// The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// MoneyFromFloat converts a float read from the source into an exact decimal using the
// shortest representation that round-trips (so 0.1 becomes exactly 0.1).
func MoneyFromFloat(v float64) Money {
	return Money{amount: decimal.NewFromFloat(v)}
}

// MoneyFromDecimal wraps an existing decimal, as read back from storage.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul returns m multiplied by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Abs returns |m|.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs()}
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether m == 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares amounts numerically, so 1.50 equals 1.5.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// WithinTolerance reports whether |m - other| <= tolerance.
func (m Money) WithinTolerance(other Money, tolerance decimal.Decimal) bool {
	return m.amount.Sub(other.amount).Abs().LessThanOrEqual(tolerance)
}

// Float64 returns the nearest float64.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount without trailing zeros ("70", "-15", "0.5").
func (m Money) String() string {
	return m.amount.String()
}
