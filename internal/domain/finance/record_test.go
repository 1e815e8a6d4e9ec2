package finance

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() NewRecordInput {
	return NewRecordInput{
		PetShopID:   1,
		Description: "Banho e tosa",
		Amount:      80,
		Type:        TypeIncome,
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewRecord(t *testing.T) {
	t.Run("defaults aplicados na escrita", func(t *testing.T) {
		rec, err := NewRecord(validInput())
		require.NoError(t, err)

		assert.Equal(t, PaymentCash, rec.PaymentMethod)
		assert.Equal(t, DefaultCategory, rec.Category)
	})

	t.Run("método é normalizado para minúsculas", func(t *testing.T) {
		in := validInput()
		in.PaymentMethod = "  PIX "

		rec, err := NewRecord(in)
		require.NoError(t, err)
		assert.Equal(t, PaymentPix, rec.PaymentMethod)
	})

	t.Run("descrição com espaços vira erro", func(t *testing.T) {
		in := validInput()
		in.Description = "   "

		_, err := NewRecord(in)

		var valErr ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "description", valErr.Field)
	})

	t.Run("valor não positivo é rejeitado", func(t *testing.T) {
		for _, amount := range []float64{0, -10} {
			in := validInput()
			in.Amount = amount

			_, err := NewRecord(in)

			var valErr ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, "amount", valErr.Field)
		}
	})

	t.Run("NaN e infinito são rejeitados", func(t *testing.T) {
		for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			in := validInput()
			in.Amount = amount

			_, err := NewRecord(in)
			assert.Error(t, err)
		}
	})

	t.Run("tipo desconhecido é rejeitado", func(t *testing.T) {
		in := validInput()
		in.Type = "transfer"

		_, err := NewRecord(in)

		var valErr ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "type", valErr.Field)
	})

	t.Run("data zero é rejeitada", func(t *testing.T) {
		in := validInput()
		in.Date = time.Time{}

		_, err := NewRecord(in)
		assert.Error(t, err)
	})
}

func TestIsCashLike(t *testing.T) {
	assert.True(t, IsCashLike(""))
	assert.True(t, IsCashLike(PaymentCash))
	assert.False(t, IsCashLike(PaymentPix))
	assert.False(t, IsCashLike(PaymentCreditCard))
}

func TestPaymentMethodHelpers(t *testing.T) {
	assert.Equal(t, PaymentCash, NormalizePaymentMethod(""))
	assert.Equal(t, PaymentDebitCard, NormalizePaymentMethod(" Debit_Card "))

	assert.True(t, IsValidPaymentMethod(PaymentCash))
	assert.True(t, IsValidPaymentMethod(PaymentPix))
	assert.False(t, IsValidPaymentMethod("cheque"))
}
