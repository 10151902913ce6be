package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerfox/backend/internal/models"
)

// currencyPreference is the user preference holding a default ISO code.
const currencyPreference = "currencyPreference"

// CurrencyRepository reads transaction currencies and resolves account native currencies.
type CurrencyRepository struct {
	q               Querier
	preferences     PreferenceRepository
	defaultCurrency string
}

func NewCurrencyRepository(q Querier, preferences PreferenceRepository, defaultCurrency string) *CurrencyRepository {
	return &CurrencyRepository{q: q, preferences: preferences, defaultCurrency: defaultCurrency}
}

func (r *CurrencyRepository) FindByCode(ctx context.Context, code string) (*models.Currency, error) {
	var c models.Currency
	err := r.q.QueryRowContext(ctx, `
		SELECT id, code, name, decimal_places
		FROM transaction_currencies
		WHERE code = $1`, code).Scan(&c.ID, &c.Code, &c.Name, &c.DecimalPlaces)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// NativeCurrencyID returns the currency an account is denominated in. Accounts
// without one inherit the owner's currency preference, then the configured
// default.
func (r *CurrencyRepository) NativeCurrencyID(ctx context.Context, account *models.Account) (int64, error) {
	if account.CurrencyID.Valid {
		return account.CurrencyID.Int64, nil
	}

	code := r.defaultCurrency
	preferred, ok, err := r.preferences.Get(ctx, account.UserID, currencyPreference)
	if err != nil {
		return 0, fmt.Errorf("currency preference: %w", err)
	}
	if ok && preferred != "" {
		code = preferred
	}

	currency, err := r.FindByCode(ctx, code)
	if errors.Is(err, ErrNotFound) {
		return 0, fmt.Errorf("currency %q is not configured: %w", code, err)
	}
	if err != nil {
		return 0, err
	}
	return currency.ID, nil
}

// Seed inserts the currency if its code is not present yet.
func (r *CurrencyRepository) Seed(ctx context.Context, currency *models.Currency) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO transaction_currencies (code, name, decimal_places)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO NOTHING`,
		currency.Code, currency.Name, currency.DecimalPlaces)
	return err
}
