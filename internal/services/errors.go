package services

import (
	"errors"
	"fmt"

	"github.com/ledgerfox/backend/internal/models"
)

var (
	errMissingAmount  = errors.New("amount is required")
	errAmountNotAbove = errors.New("amount must be greater than zero")
)

// UnrecognizedTypeError is returned for journal types other than
// Withdrawal, Deposit and Transfer.
type UnrecognizedTypeError struct {
	Type models.TransactionType
}

func (e *UnrecognizedTypeError) Error() string {
	return fmt.Sprintf("did not recognise transaction type %q", string(e.Type))
}

// MissingAccountError means the source or destination account could not be
// resolved for the user: it does not exist, belongs to someone else, or no
// id was given where one is required.
type MissingAccountError struct {
	Role      string // "source" or "destination"
	AccountID int64
}

func (e *MissingAccountError) Error() string {
	if e.AccountID > 0 {
		return fmt.Sprintf("%s account #%d not found, cannot continue", e.Role, e.AccountID)
	}
	return fmt.Sprintf("%s account is missing, cannot continue", e.Role)
}

// CurrencyReconciliationError reports a missing or malformed amount field.
type CurrencyReconciliationError struct {
	Field string
	Value string
	Err   error
}

func (e *CurrencyReconciliationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *CurrencyReconciliationError) Unwrap() error { return e.Err }

// MissingBudgetError is returned when a budget id does not belong to the user.
type MissingBudgetError struct {
	BudgetID int64
}

func (e *MissingBudgetError) Error() string {
	return fmt.Sprintf("budget #%d not found", e.BudgetID)
}

// PersistenceError wraps a storage failure. The unit of work it happened in
// has been rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// persistence wraps err as a PersistenceError unless it already is one of
// the typed engine errors.
func persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		typeErr     *UnrecognizedTypeError
		accountErr  *MissingAccountError
		currencyErr *CurrencyReconciliationError
		budgetErr   *MissingBudgetError
		storeErr    *PersistenceError
	)
	switch {
	case errors.As(err, &typeErr), errors.As(err, &accountErr), errors.As(err, &currencyErr),
		errors.As(err, &budgetErr), errors.As(err, &storeErr):
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
