package repository

import (
	"context"

	"github.com/ledgerfox/backend/internal/models"
)

type budgetRepository struct {
	q Querier
}

func NewBudgetRepository(q Querier) BudgetRepository {
	return &budgetRepository{q: q}
}

func (r *budgetRepository) FindByID(ctx context.Context, userID, budgetID int64) (*models.Budget, error) {
	var b models.Budget
	err := r.q.QueryRowContext(ctx, `
		SELECT id, user_id, name, active
		FROM budgets
		WHERE id = $1 AND user_id = $2`, budgetID, userID).Scan(&b.ID, &b.UserID, &b.Name, &b.Active)
	if err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *budgetRepository) LinkToJournal(ctx context.Context, journalID, budgetID int64) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO budget_transaction_journal (budget_id, transaction_journal_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, budgetID, journalID)
	return err
}

func (r *budgetRepository) LinkToTransaction(ctx context.Context, transactionID, budgetID int64) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO budget_transaction (budget_id, transaction_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, budgetID, transactionID)
	return err
}

// FindLimit loads a budget limit through its budget, so limits of other
// users' budgets are reported as ErrNotFound. Spent is the sum of the
// withdrawal legs booked against the budget inside the limit's range.
func (r *budgetRepository) FindLimit(ctx context.Context, userID, limitID int64) (*models.BudgetLimit, error) {
	var l models.BudgetLimit
	err := r.q.QueryRowContext(ctx, `
		SELECT bl.id, bl.budget_id, bl.start_date, bl.end_date, bl.amount, bl.created_at, bl.updated_at
		FROM budget_limits bl
		JOIN budgets b ON b.id = bl.budget_id
		WHERE bl.id = $1 AND b.user_id = $2`, limitID, userID).
		Scan(&l.ID, &l.BudgetID, &l.StartDate, &l.EndDate, &l.Amount, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}

	err = r.q.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM transactions t
		JOIN transaction_journals j ON j.id = t.transaction_journal_id
		JOIN budget_transaction_journal bj ON bj.transaction_journal_id = j.id
		WHERE bj.budget_id = $1
			AND j.transaction_type = 'Withdrawal'
			AND j.deleted_at IS NULL
			AND j.date >= $2
			AND j.date < $3::date + INTERVAL '1 day'
			AND t.amount < 0`, l.BudgetID, l.StartDate, l.EndDate).Scan(&l.Spent)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
