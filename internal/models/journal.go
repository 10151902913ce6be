package models

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeWithdrawal TransactionType = "Withdrawal"
	TransactionTypeDeposit    TransactionType = "Deposit"
	TransactionTypeTransfer   TransactionType = "Transfer"
)

// ParseTransactionType maps the "what" field of a request ("withdrawal",
// "DEPOSIT", ...) onto a TransactionType. Unknown values are returned as-is
// so callers can report them.
func ParseTransactionType(what string) TransactionType {
	what = strings.TrimSpace(what)
	if what == "" {
		return ""
	}
	normalized := strings.ToUpper(what[:1]) + strings.ToLower(what[1:])
	return TransactionType(normalized)
}

// Known reports whether t is one of the journal types the engine can build.
func (t TransactionType) Known() bool {
	switch t {
	case TransactionTypeWithdrawal, TransactionTypeDeposit, TransactionTypeTransfer:
		return true
	}
	return false
}

// TransactionJournal is one economic event. Once committed it carries
// exactly two Transactions.
type TransactionJournal struct {
	ID           int64           `json:"id" db:"id"`
	UserID       int64           `json:"user_id" db:"user_id"`
	Type         TransactionType `json:"type" db:"transaction_type"`
	Description  string          `json:"description" db:"description"`
	Date         time.Time       `json:"date" db:"date"`
	CurrencyID   int64           `json:"currency_id" db:"transaction_currency_id"`
	Transactions []Transaction   `json:"transactions"`
	Tags         []string        `json:"tags"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// Transaction is a single ledger leg of a journal.
type Transaction struct {
	ID                int64               `json:"id" db:"id"`
	JournalID         int64               `json:"journal_id" db:"transaction_journal_id"`
	AccountID         int64               `json:"account_id" db:"account_id"`
	Amount            decimal.Decimal     `json:"amount" db:"amount"`
	CurrencyID        int64               `json:"currency_id" db:"transaction_currency_id"`
	ForeignAmount     decimal.NullDecimal `json:"foreign_amount" db:"foreign_amount"`
	ForeignCurrencyID sql.NullInt64       `json:"-" db:"foreign_currency_id"`
	Description       string              `json:"description" db:"description"`
	Identifier        int                 `json:"identifier" db:"identifier"`
	CreatedAt         time.Time           `json:"created_at" db:"created_at"`
}

// ForeignCurrency returns the foreign currency id, or nil when the leg was
// booked in its native currency only.
func (t Transaction) ForeignCurrency() *int64 {
	if !t.ForeignCurrencyID.Valid {
		return nil
	}
	id := t.ForeignCurrencyID.Int64
	return &id
}

// MarshalJSON emits foreign_currency_id next to foreign_amount.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type leg Transaction
	return json.Marshal(struct {
		leg
		ForeignCurrencyID *int64 `json:"foreign_currency_id"`
	}{leg(t), t.ForeignCurrency()})
}
