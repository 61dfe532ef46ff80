package kernel_test

import (
	"testing"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates_valid_money", func(t *testing.T) {
		money, err := kernel.NewMoney(4200, "USD")

		require.NoError(t, err)
		assert.Equal(t, int64(4200), money.Cents())
		assert.Equal(t, "USD", money.Currency())
	})

	t.Run("zero_amount_is_valid", func(t *testing.T) {
		money, err := kernel.NewMoney(0, "EUR")

		require.NoError(t, err)
		assert.True(t, money.IsZero())
	})

	t.Run("negative_amount_is_rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(-1, "USD")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_currency_defaults", func(t *testing.T) {
		money, err := kernel.NewMoney(100, "")

		require.NoError(t, err)
		assert.Equal(t, kernel.DefaultCurrency, money.Currency())
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("adds_same_currency", func(t *testing.T) {
		a, _ := kernel.NewMoney(1000, "USD")
		b, _ := kernel.NewMoney(250, "USD")

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(1250), sum.Cents())
	})

	t.Run("rejects_currency_mismatch", func(t *testing.T) {
		a, _ := kernel.NewMoney(1000, "USD")
		b, _ := kernel.NewMoney(250, "EUR")

		_, err := a.Add(b)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoney(4200, "USD")
	b, _ := kernel.NewMoney(4200, "USD")
	c, _ := kernel.NewMoney(4200, "EUR")
	d, _ := kernel.NewMoney(999, "USD")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(d))
}

func TestMoney_String(t *testing.T) {
	money, _ := kernel.NewMoney(4205, "USD")
	assert.Equal(t, "42.05 USD", money.String())

	money, _ = kernel.NewMoney(7, "EUR")
	assert.Equal(t, "0.07 EUR", money.String())
}

func TestMoney_Float64(t *testing.T) {
	money, _ := kernel.NewMoney(4200, "USD")
	assert.InDelta(t, 42.0, money.Float64(), 0.0001)
}
