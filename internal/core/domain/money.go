package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits amounts are stored and shown with.
const MoneyScale = 2

// MoneyEpsilon is the tolerance used when comparing totals rounded to two places.
var MoneyEpsilon = decimal.New(1, -MoneyScale)

// Money is an arbitrary-precision monetary amount in the business's single currency.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps a decimal.
func NewMoney(d decimal.Decimal) Money {
	return Money{amount: d}
}

// MoneyFromInt builds a whole-unit amount.
func MoneyFromInt(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{}
}

// ParseMoney parses a decimal string such as "1250.50". Values with more than
// MoneyScale fractional digits are rejected rather than rounded.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty value", apperrors.ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, s)
	}
	m := Money{amount: d}
	if !m.WithinScale() {
		return Money{}, fmt.Errorf("%w: %q has more than %d decimal places", apperrors.ErrInvalidAmount, s, MoneyScale)
	}
	return m, nil
}

// MustParseMoney is ParseMoney for literals known to be valid. It panics otherwise.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(o Money) Money { return Money{amount: m.amount.Add(o.amount)} }
func (m Money) Sub(o Money) Money { return Money{amount: m.amount.Sub(o.amount)} }
func (m Money) Neg() Money        { return Money{amount: m.amount.Neg()} }
func (m Money) Abs() Money        { return Money{amount: m.amount.Abs()} }

// MulPercent returns m * pct / 100 without rounding.
func (m Money) MulPercent(pct decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(pct).Div(decimal.NewFromInt(100))}
}

// Round rounds half away from zero to two fractional digits.
func (m Money) Round() Money { return Money{amount: m.amount.Round(MoneyScale)} }

// WithinScale reports whether the amount needs no more than MoneyScale fractional digits.
func (m Money) WithinScale() bool { return m.amount.Equal(m.amount.Round(MoneyScale)) }

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }
func (m Money) Cmp(o Money) int  { return m.amount.Cmp(o.amount) }
func (m Money) Equal(o Money) bool {
	return m.amount.Equal(o.amount)
}

// EqualWithin compares both amounts rounded to two places and reports whether
// they differ by strictly less than eps.
func (m Money) EqualWithin(o Money, eps decimal.Decimal) bool {
	diff := m.amount.Round(MoneyScale).Sub(o.amount.Round(MoneyScale)).Abs()
	return diff.LessThan(eps)
}

// Balances is EqualWithin using MoneyEpsilon.
func (m Money) Balances(o Money) bool {
	return m.EqualWithin(o, MoneyEpsilon)
}

// Decimal exposes the underlying value for storage and formatting.
func (m Money) Decimal() decimal.Decimal { return m.amount }

// String renders exactly two fractional digits, rounding computed values half away from zero.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// MarshalJSON encodes the amount as a quoted decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare decimal with at most MoneyScale fractional digits.
func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, string(b))
	}
	if !(Money{amount: d}).WithinScale() {
		return fmt.Errorf("%w: %s has more than %d decimal places", apperrors.ErrInvalidAmount, string(b), MoneyScale)
	}
	m.amount = d
	return nil
}

// Scan implements sql.Scanner for NUMERIC columns.
func (m *Money) Scan(value any) error {
	return m.amount.Scan(value)
}

// Value implements driver.Valuer.
func (m Money) Value() (driver.Value, error) {
	return m.amount.String(), nil
}

// SumMoney adds a list of amounts.
func SumMoney(amounts ...Money) Money {
	total := ZeroMoney()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
