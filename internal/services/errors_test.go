package services

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersistence(t *testing.T) {
	assert.Nil(t, persistence("op", nil))

	typed := &MissingBudgetError{BudgetID: 3}
	assert.Same(t, typed, persistence("op", typed))

	err := persistence("store journal", sql.ErrTxDone)
	var storeErr *PersistenceError
	assert.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "store journal", storeErr.Op)
	assert.ErrorIs(t, err, sql.ErrTxDone)

	assert.Same(t, err, persistence("again", err))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "source account #5 not found, cannot continue", (&MissingAccountError{Role: "source", AccountID: 5}).Error())
	assert.Equal(t, "destination account is missing, cannot continue", (&MissingAccountError{Role: "destination"}).Error())
	assert.Equal(t, `did not recognise transaction type "Refund"`, (&UnrecognizedTypeError{Type: "Refund"}).Error())
	assert.Equal(t, `amount "x": boom`, (&CurrencyReconciliationError{Field: "amount", Value: "x", Err: errors.New("boom")}).Error())
}
