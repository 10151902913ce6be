package models

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		in    string
		want  TransactionType
		known bool
	}{
		{"withdrawal", TransactionTypeWithdrawal, true},
		{"Deposit", TransactionTypeDeposit, true},
		{" TRANSFER ", TransactionTypeTransfer, true},
		{"opening balance", TransactionType("Opening balance"), false},
		{"", TransactionType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseTransactionType(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, got.Known())
		})
	}
}

func TestTransaction_ForeignCurrency(t *testing.T) {
	leg := Transaction{Amount: decimal.NewFromInt(5)}
	assert.Nil(t, leg.ForeignCurrency())

	leg.ForeignCurrencyID = sql.NullInt64{Int64: 2, Valid: true}
	require.NotNil(t, leg.ForeignCurrency())
	assert.Equal(t, int64(2), *leg.ForeignCurrency())
}

func TestTransaction_MarshalJSON(t *testing.T) {
	leg := Transaction{
		ID:                9,
		Amount:            decimal.RequireFromString("-9.2"),
		CurrencyID:        1,
		ForeignAmount:     decimal.NewNullDecimal(decimal.NewFromInt(-10)),
		ForeignCurrencyID: sql.NullInt64{Int64: 2, Valid: true},
	}
	raw, err := json.Marshal(leg)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, float64(9), out["id"])
	assert.Equal(t, "-9.2", out["amount"])
	assert.Equal(t, "-10", out["foreign_amount"])
	assert.Equal(t, float64(2), out["foreign_currency_id"])

	raw, err = json.Marshal(Transaction{Amount: decimal.NewFromInt(5)})
	require.NoError(t, err)
	out = nil
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Contains(t, out, "foreign_currency_id")
	assert.Nil(t, out["foreign_currency_id"])
	assert.Nil(t, out["foreign_amount"])
}

func TestNewCurrency(t *testing.T) {
	t.Run("takes decimal places from ISO table", func(t *testing.T) {
		jpy, err := NewCurrency("jpy", "Japanese Yen")
		require.NoError(t, err)
		assert.Equal(t, "JPY", jpy.Code)
		assert.Equal(t, 0, jpy.DecimalPlaces)

		eur, err := NewCurrency("EUR", "Euro")
		require.NoError(t, err)
		assert.Equal(t, 2, eur.DecimalPlaces)
	})

	t.Run("rejects unknown codes", func(t *testing.T) {
		_, err := NewCurrency("XYZ", "Nothing")
		assert.Error(t, err)
	})
}

func TestCurrency_Format(t *testing.T) {
	eur, err := NewCurrency("EUR", "Euro")
	require.NoError(t, err)

	assert.Equal(t, "€20.00", eur.Format(decimal.RequireFromString("20")))
	assert.Equal(t, "€9.20", eur.Format(decimal.RequireFromString("9.2")))
}
