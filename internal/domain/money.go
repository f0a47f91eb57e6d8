package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an immutable amount in a single currency. The amount is never
// negative; operations that would produce a negative amount fail instead.
// Arithmetic across currencies is a usage error, not a conversion.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money value. The currency is an ISO 4217 code such as
// "USD" and is upper-cased on the way in.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	fields := make(map[string]string)

	if amount.IsNegative() {
		fields["amount"] = fmt.Sprintf("must not be negative, got %s", amount)
	}
	if len(currency) != 3 {
		fields["currency"] = fmt.Sprintf("must be a 3-letter ISO code, got %q", currency)
	}
	if len(fields) > 0 {
		return Money{}, &ValidationError{Fields: fields}
	}

	return Money{amount: amount, currency: strings.ToUpper(currency)}, nil
}

// NewMoneyFromString parses the amount from its decimal string form.
func NewMoneyFromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, &ValidationError{Fields: map[string]string{
			"amount": fmt.Sprintf("invalid decimal: %q", amount),
		}}
	}
	return NewMoney(d, currency)
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return Money{amount: decimal.Zero, currency: strings.ToUpper(currency)}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the ISO currency code.
func (m Money) Currency() string { return m.currency }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// Add returns the sum of two amounts in the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency("Add", other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference of two amounts in the same currency.
// Fails if the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency("Subtract", other); err != nil {
		return Money{}, err
	}
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, NewStateError("Money.Subtract",
			"result would be negative: %s - %s", m.amount, other.amount)
	}
	return Money{amount: result, currency: m.currency}, nil
}

// Multiply scales the amount by a non-negative factor.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, &ValidationError{Fields: map[string]string{
			"factor": fmt.Sprintf("must not be negative, got %s", factor),
		}}
	}
	return Money{amount: m.amount.Mul(factor), currency: m.currency}, nil
}

// Equal reports structural equality: same currency and numerically equal
// amounts (decimal.Equal, so 1.5 == 1.50).
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String implements fmt.Stringer, e.g. "125.50 USD".
func (m Money) String() string {
	return m.amount.String() + " " + m.currency
}

func (m Money) sameCurrency(op string, other Money) error {
	if m.currency != other.currency {
		return &ValidationError{Fields: map[string]string{
			"currency": fmt.Sprintf("%s requires matching currencies, got %s and %s",
				op, m.currency, other.currency),
		}}
	}
	return nil
}
