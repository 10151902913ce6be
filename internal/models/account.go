package models

import (
	"database/sql"
	"time"
)

type AccountType string

const (
	AccountTypeAsset   AccountType = "Asset account"
	AccountTypeExpense AccountType = "Expense account"
	AccountTypeRevenue AccountType = "Revenue account"
	AccountTypeCash    AccountType = "Cash account"
)

// CashAccountName is the name of the single cash account every user gets
// when a withdrawal or deposit names no counterparty.
const CashAccountName = "Cash account"

type Account struct {
	ID         int64         `json:"id" db:"id"`
	UserID     int64         `json:"user_id" db:"user_id"`
	Type       AccountType   `json:"type" db:"account_type"`
	Name       string        `json:"name" db:"name"`
	CurrencyID sql.NullInt64 `json:"-" db:"currency_id"` // native currency, unset for counterparties
	Active     bool          `json:"active" db:"active"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" db:"updated_at"`
}
