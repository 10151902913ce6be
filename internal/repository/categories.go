package repository

import (
	"context"
	"fmt"

	"github.com/ledgerfox/backend/internal/models"
)

type categoryRepository struct {
	q Querier
}

func NewCategoryRepository(q Querier) CategoryRepository {
	return &categoryRepository{q: q}
}

func (r *categoryRepository) FindOrCreate(ctx context.Context, userID int64, name string) (*models.Category, error) {
	var c models.Category
	err := r.q.QueryRowContext(ctx, `
		INSERT INTO categories (user_id, name, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, user_id, name`,
		userID, name).Scan(&c.ID, &c.UserID, &c.Name)
	if err != nil {
		return nil, fmt.Errorf("find or create category %q: %w", name, err)
	}
	return &c, nil
}

func (r *categoryRepository) LinkToJournal(ctx context.Context, journalID, categoryID int64) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO category_transaction_journal (category_id, transaction_journal_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, categoryID, journalID)
	return err
}

func (r *categoryRepository) UnlinkFromJournal(ctx context.Context, journalID int64) error {
	_, err := r.q.ExecContext(ctx, `
		DELETE FROM category_transaction_journal
		WHERE transaction_journal_id = $1`, journalID)
	return err
}

func (r *categoryRepository) LinkToTransaction(ctx context.Context, transactionID, categoryID int64) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO category_transaction (category_id, transaction_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, categoryID, transactionID)
	return err
}
