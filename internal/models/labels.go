package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Tag struct {
	ID     int64  `json:"id" db:"id"`
	UserID int64  `json:"user_id" db:"user_id"`
	Name   string `json:"tag" db:"tag"`
}

type Category struct {
	ID     int64  `json:"id" db:"id"`
	UserID int64  `json:"user_id" db:"user_id"`
	Name   string `json:"name" db:"name"`
}

type Budget struct {
	ID     int64  `json:"id" db:"id"`
	UserID int64  `json:"user_id" db:"user_id"`
	Name   string `json:"name" db:"name"`
	Active bool   `json:"active" db:"active"`
}

// BudgetLimit is the amount a budget may spend between StartDate and EndDate.
// Spent is derived from the withdrawals linked to the budget in that range.
type BudgetLimit struct {
	ID        int64           `json:"id" db:"id"`
	BudgetID  int64           `json:"budget_id" db:"budget_id"`
	StartDate time.Time       `json:"start_date" db:"start_date"`
	EndDate   time.Time       `json:"end_date" db:"end_date"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Spent     decimal.Decimal `json:"spent"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
