package repository

import (
	"context"
	"fmt"

	"github.com/ledgerfox/backend/internal/models"
)

type accountRepository struct {
	q Querier
}

func NewAccountRepository(q Querier) AccountRepository {
	return &accountRepository{q: q}
}

const accountColumns = `id, user_id, account_type, name, currency_id, active, created_at, updated_at`

func (r *accountRepository) FindByID(ctx context.Context, userID, accountID int64) (*models.Account, error) {
	var account models.Account
	err := r.q.QueryRowContext(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		accountID, userID).Scan(&account.ID, &account.UserID, &account.Type, &account.Name,
		&account.CurrencyID, &account.Active, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &account, nil
}

func (r *accountRepository) FindOrCreate(ctx context.Context, userID int64, accountType models.AccountType, name string) (*models.Account, error) {
	var account models.Account
	// DO UPDATE so RETURNING always yields the row; a soft-deleted match is restored.
	err := r.q.QueryRowContext(ctx, `
		INSERT INTO accounts (user_id, account_type, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, true, NOW(), NOW())
		ON CONFLICT (user_id, account_type, name) DO UPDATE SET name = EXCLUDED.name, deleted_at = NULL, updated_at = NOW()
		RETURNING `+accountColumns,
		userID, string(accountType), name).Scan(&account.ID, &account.UserID, &account.Type, &account.Name,
		&account.CurrencyID, &account.Active, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("find or create %s %q: %w", accountType, name, err)
	}
	return &account, nil
}
