package currency_test

import (
	"testing"

	"github.com/niksmo/storefront/pkg/currency"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("GroupedThousands", func(t *testing.T) {
		assert.Equal(t, currency.Cents(102800), currency.Parse("1.028,00"))
	})

	t.Run("PlainWholeAndFraction", func(t *testing.T) {
		assert.Equal(t, currency.Cents(2700), currency.Parse("27,00"))
	})

	t.Run("NoFraction", func(t *testing.T) {
		assert.Equal(t, currency.Cents(102800), currency.Parse("1.028"))
	})

	t.Run("SingleFractionDigit", func(t *testing.T) {
		assert.Equal(t, currency.Cents(2750), currency.Parse("27,5"))
	})

	t.Run("EmptyString", func(t *testing.T) {
		assert.Equal(t, currency.Cents(0), currency.Parse(""))
	})

	t.Run("BlankString", func(t *testing.T) {
		assert.Equal(t, currency.Cents(0), currency.Parse("   "))
	})

	t.Run("CurrencySymbolPrefix", func(t *testing.T) {
		assert.Equal(t, currency.Cents(102800), currency.Parse("$1.028,00"))
	})

	t.Run("MalformedFailsSoft", func(t *testing.T) {
		assert.Equal(t, currency.Cents(0), currency.Parse("precio"))
		assert.Equal(t, currency.Cents(0), currency.Parse("12a,00"))
	})
}

func TestFormat(t *testing.T) {
	t.Run("GroupedThousands", func(t *testing.T) {
		assert.Equal(t, "$1.028,00", currency.Format(102800))
	})

	t.Run("MillionGrouping", func(t *testing.T) {
		assert.Equal(t, "$1.234.567,89", currency.Format(123456789))
	})

	t.Run("SmallAmount", func(t *testing.T) {
		assert.Equal(t, "$27,00", currency.Format(2700))
	})

	t.Run("Zero", func(t *testing.T) {
		assert.Equal(t, "$0,00", currency.Format(0))
	})

	t.Run("SubWholeAmount", func(t *testing.T) {
		assert.Equal(t, "$0,05", currency.Format(5))
	})

	t.Run("Negative", func(t *testing.T) {
		assert.Equal(t, "$-12,34", currency.Format(-1234))
	})
}

func TestRoundTrip(t *testing.T) {
	values := []currency.Cents{0, 1, 99, 100, 2700, 2750, 102800, 123456789}
	for _, v := range values {
		assert.Equal(t, v, currency.Parse(currency.Format(v)), "value %d", v)
	}

	wellFormed := []string{"1.028,00", "27,00", "0,05", "999,99", "10.000,10"}
	for _, s := range wellFormed {
		v := currency.Parse(s)
		assert.Equal(t, v, currency.Parse(currency.Format(v)), "string %q", s)
	}
}
