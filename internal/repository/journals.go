package repository

import (
	"context"
	"fmt"

	"github.com/ledgerfox/backend/internal/models"
)

type journalRepository struct {
	q Querier
}

func NewJournalRepository(q Querier) JournalRepository {
	return &journalRepository{q: q}
}

func (r *journalRepository) CreateJournal(ctx context.Context, journal *models.TransactionJournal) error {
	err := r.q.QueryRowContext(ctx, `
		INSERT INTO transaction_journals (user_id, transaction_type, transaction_currency_id, description, date, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at`,
		journal.UserID, string(journal.Type), journal.CurrencyID, journal.Description, journal.Date,
	).Scan(&journal.ID, &journal.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert journal: %w", err)
	}
	return nil
}

// CreateTransaction inserts one leg. Unset foreign fields are written as NULL.
func (r *journalRepository) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	err := r.q.QueryRowContext(ctx, `
		INSERT INTO transactions (transaction_journal_id, account_id, amount, transaction_currency_id,
			foreign_amount, foreign_currency_id, description, identifier, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at`,
		t.JournalID, t.AccountID, t.Amount, t.CurrencyID,
		t.ForeignAmount, t.ForeignCurrencyID, t.Description, t.Identifier,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction for account %d: %w", t.AccountID, err)
	}
	return nil
}

func (r *journalRepository) FindByID(ctx context.Context, userID, journalID int64) (*models.TransactionJournal, error) {
	var j models.TransactionJournal
	err := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, transaction_type, transaction_currency_id, description, date, created_at
		FROM transaction_journals
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		journalID, userID).Scan(&j.ID, &j.UserID, &j.Type, &j.CurrencyID, &j.Description, &j.Date, &j.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT id, transaction_journal_id, account_id, amount, transaction_currency_id,
			foreign_amount, foreign_currency_id, description, identifier, created_at
		FROM transactions
		WHERE transaction_journal_id = $1
		ORDER BY amount ASC, id ASC`, j.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.JournalID, &t.AccountID, &t.Amount, &t.CurrencyID,
			&t.ForeignAmount, &t.ForeignCurrencyID, &t.Description, &t.Identifier, &t.CreatedAt); err != nil {
			return nil, err
		}
		j.Transactions = append(j.Transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tags, err := r.q.QueryContext(ctx, `
		SELECT t.tag
		FROM tags t
		JOIN tag_transaction_journal tj ON tj.tag_id = t.id
		WHERE tj.transaction_journal_id = $1
		ORDER BY t.tag`, j.ID)
	if err != nil {
		return nil, err
	}
	defer tags.Close()

	j.Tags = []string{}
	for tags.Next() {
		var name string
		if err := tags.Scan(&name); err != nil {
			return nil, err
		}
		j.Tags = append(j.Tags, name)
	}
	return &j, tags.Err()
}
