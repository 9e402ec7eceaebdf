package orders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
)

var (
	// ErrCurrencyMismatch is returned when combining amounts in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrAmountOverflow is returned when arithmetic leaves the int64 range.
	ErrAmountOverflow = errors.New("amount out of range")
)

const currencyCodeLen = 3

var _ domain.Equatable = Money{}

// Money is an amount in minor units (cents) of a single ISO 4217 currency.
type Money struct {
	Amount   int64
	Currency string
}

// NewMoney validates and returns a Money. The currency code is upper-cased.
func NewMoney(amount int64, currency string) (Money, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	fields := make(map[string]string)
	if amount < 0 {
		fields["amount"] = "must not be negative"
	}
	if !isCurrencyCode(currency) {
		fields["currency"] = fmt.Sprintf("must be a 3-letter code, got %q", currency)
	}
	if len(fields) > 0 {
		return Money{}, &domain.ValidationError{Fields: fields}
	}

	return Money{Amount: amount, Currency: currency}, nil
}

func (m Money) EqualityComponents() []any { return []any{m.Currency, m.Amount} }

func (m Money) Equals(other domain.ValueObject) bool { return domain.Equal(m, other) }

func (m Money) HashCode() int32 { return domain.Hash(m) }

// Add returns m + o. Both must share a currency.
func (m Money) Add(o Money) (Money, error) {
	if m.Currency != o.Currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency, o.Currency)
	}
	sum := m.Amount + o.Amount
	if (o.Amount > 0 && sum < m.Amount) || (o.Amount < 0 && sum > m.Amount) {
		return Money{}, fmt.Errorf("%w: %s + %s", ErrAmountOverflow, m, o)
	}
	return Money{Amount: sum, Currency: m.Currency}, nil
}

// Times returns m multiplied by n.
func (m Money) Times(n int) (Money, error) {
	a, b := m.Amount, int64(n)
	if a == 0 || b == 0 {
		return Money{Currency: m.Currency}, nil
	}
	product := a * b
	if product/b != a || (product < 0) != ((a < 0) != (b < 0)) {
		return Money{}, fmt.Errorf("%w: %s x %d", ErrAmountOverflow, m, n)
	}
	return Money{Amount: product, Currency: m.Currency}, nil
}

// IsZero reports whether m has no amount.
func (m Money) IsZero() bool {
	return m.Amount == 0
}

func (m Money) String() string {
	sign := ""
	abs := uint64(m.Amount)
	if m.Amount < 0 {
		sign = "-"
		abs = uint64(-m.Amount) // -MinInt64 wraps to itself; the conversion still yields 2^63.
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, abs/100, abs%100, m.Currency)
}

func isCurrencyCode(s string) bool {
	if len(s) != currencyCodeLen {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
