package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ledgerfox/backend/internal/models"
	"github.com/ledgerfox/backend/internal/repository"
	"github.com/shopspring/decimal"
)

// NormalizedAmounts is the amount a journal is booked at in the reference
// account's native currency, plus what the user actually entered when that
// was a different currency. Amounts are unsigned; legs apply the sign.
type NormalizedAmounts struct {
	Amount            decimal.Decimal
	CurrencyID        int64
	ForeignAmount     decimal.NullDecimal
	ForeignCurrencyID sql.NullInt64
}

func (n NormalizedAmounts) HasForeign() bool {
	return n.ForeignAmount.Valid && n.ForeignCurrencyID.Valid
}

type CurrencyReconciler struct {
	currencies repository.CurrencyProvider
}

func NewCurrencyReconciler(currencies repository.CurrencyProvider) *CurrencyReconciler {
	return &CurrencyReconciler{currencies: currencies}
}

// Reconcile normalizes the submitted amounts against the native currencies
// of the resolved accounts.
//
// Withdrawals are checked against the source account and deposits against
// the destination. Transfers are always booked in the source currency, with
// the destination amount kept as the foreign figure when the two accounts
// differ.
func (c *CurrencyReconciler) Reconcile(ctx context.Context, txType models.TransactionType, in *models.JournalInput, source, destination *models.Account) (*NormalizedAmounts, error) {
	switch txType {
	case models.TransactionTypeWithdrawal, models.TransactionTypeDeposit:
		reference := source
		if txType == models.TransactionTypeDeposit {
			reference = destination
		}
		nativeID, err := c.native(ctx, reference)
		if err != nil {
			return nil, err
		}
		amount, err := parseAmount("amount", in.Amount)
		if err != nil {
			return nil, err
		}

		// currency_id 0 means the user did not pick one.
		if in.CurrencyID == 0 || in.CurrencyID == nativeID {
			return &NormalizedAmounts{Amount: amount, CurrencyID: nativeID}, nil
		}

		native, err := parseAmount("native_amount", in.NativeAmount)
		if err != nil {
			return nil, err
		}
		return &NormalizedAmounts{
			Amount:            native,
			CurrencyID:        nativeID,
			ForeignAmount:     decimal.NewNullDecimal(amount),
			ForeignCurrencyID: sql.NullInt64{Int64: in.CurrencyID, Valid: true},
		}, nil

	case models.TransactionTypeTransfer:
		sourceID, err := c.native(ctx, source)
		if err != nil {
			return nil, err
		}
		destinationID, err := c.native(ctx, destination)
		if err != nil {
			return nil, err
		}

		sourceAmount := in.SourceAmount
		if strings.TrimSpace(sourceAmount) == "" {
			sourceAmount = in.Amount
		}
		amount, err := parseAmount("source_amount", sourceAmount)
		if err != nil {
			return nil, err
		}
		normalized := &NormalizedAmounts{Amount: amount, CurrencyID: sourceID}
		if sourceID == destinationID {
			return normalized, nil
		}

		foreign, err := parseAmount("destination_amount", in.DestinationAmount)
		if err != nil {
			return nil, err
		}
		normalized.ForeignAmount = decimal.NewNullDecimal(foreign)
		normalized.ForeignCurrencyID = sql.NullInt64{Int64: destinationID, Valid: true}
		return normalized, nil
	}
	return nil, &UnrecognizedTypeError{Type: txType}
}

func (c *CurrencyReconciler) native(ctx context.Context, account *models.Account) (int64, error) {
	id, err := c.currencies.NativeCurrencyID(ctx, account)
	if err != nil {
		return 0, persistence("native currency", err)
	}
	return id, nil
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, &CurrencyReconciliationError{Field: field, Err: errMissingAmount}
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &CurrencyReconciliationError{Field: field, Value: value, Err: err}
	}
	if !amount.IsPositive() {
		return decimal.Zero, &CurrencyReconciliationError{Field: field, Value: value, Err: errAmountNotAbove}
	}
	return amount, nil
}
