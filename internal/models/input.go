package models

import "time"

// JournalInput is the raw, already-authenticated request to store a journal.
// Amounts are decimal strings.
type JournalInput struct {
	What                   string    `json:"what" validate:"required,oneof=withdrawal deposit transfer Withdrawal Deposit Transfer"`
	Description            string    `json:"description" validate:"required,max=1024"`
	Date                   time.Time `json:"date" validate:"required"`
	SourceAccountID        int64     `json:"source_account_id" validate:"gte=0"`
	DestinationAccountID   int64     `json:"destination_account_id" validate:"gte=0"`
	SourceAccountName      string    `json:"source_account_name" validate:"max=255"`
	DestinationAccountName string    `json:"destination_account_name" validate:"max=255"`
	Amount                 string    `json:"amount" validate:"omitempty,numeric"`
	CurrencyID             int64     `json:"currency_id" validate:"gte=0"`
	NativeAmount           string    `json:"native_amount" validate:"omitempty,numeric"`
	SourceAmount           string    `json:"source_amount" validate:"omitempty,numeric"`
	DestinationAmount      string    `json:"destination_amount" validate:"omitempty,numeric"`
	Category               string    `json:"category" validate:"max=255"`
	BudgetID               int64     `json:"budget_id" validate:"gte=0"`
	Tags                   []string  `json:"tags" validate:"omitempty,dive,max=1024"`
}
