package models

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is a transaction currency known to the ledger.
type Currency struct {
	ID            int64  `json:"id" db:"id"`
	Code          string `json:"code" db:"code"`
	Name          string `json:"name" db:"name"`
	DecimalPlaces int    `json:"decimal_places" db:"decimal_places"`
}

// NewCurrency builds a Currency from an ISO 4217 code, taking the number of
// decimal places from the go-money currency table.
func NewCurrency(code, name string) (*Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	iso := money.GetCurrency(code)
	if iso == nil {
		return nil, fmt.Errorf("unknown currency code %q", code)
	}
	return &Currency{Code: iso.Code, Name: name, DecimalPlaces: iso.Fraction}, nil
}

// Format renders amount in this currency, e.g. "€20.00".
func (c Currency) Format(amount decimal.Decimal) string {
	iso := money.GetCurrency(c.Code)
	if iso == nil {
		return amount.StringFixed(int32(c.DecimalPlaces)) + " " + c.Code
	}
	minor := amount.Shift(int32(iso.Fraction)).Round(0).IntPart()
	return money.New(minor, iso.Code).Display()
}
