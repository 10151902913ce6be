package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ledgerfox/backend/internal/models"
	"github.com/ledgerfox/backend/internal/repository"
)

// BudgetCategoryLinker attaches budgets and categories to journals and to
// their legs. A linker lives for one unit of work and remembers the budgets
// and categories it already resolved.
type BudgetCategoryLinker struct {
	budgets    repository.BudgetRepository
	categories repository.CategoryRepository

	budgetCache   map[int64]*models.Budget
	categoryCache map[string]*models.Category
}

func NewBudgetCategoryLinker(budgets repository.BudgetRepository, categories repository.CategoryRepository) *BudgetCategoryLinker {
	return &BudgetCategoryLinker{
		budgets:       budgets,
		categories:    categories,
		budgetCache:   make(map[int64]*models.Budget),
		categoryCache: make(map[string]*models.Category),
	}
}

// LinkBudgetToJournal links the budget to a withdrawal. It reports whether
// a link was made.
func (l *BudgetCategoryLinker) LinkBudgetToJournal(ctx context.Context, journal *models.TransactionJournal, budgetID int64) (bool, error) {
	if budgetID <= 0 || journal.Type != models.TransactionTypeWithdrawal {
		return false, nil
	}
	budget, err := l.budget(ctx, journal.UserID, budgetID)
	if err != nil {
		return false, err
	}
	if err := l.budgets.LinkToJournal(ctx, journal.ID, budget.ID); err != nil {
		return false, persistence("link budget to journal", err)
	}
	return true, nil
}

// LinkBudgetToTransaction links the budget to one leg of a non-transfer journal.
func (l *BudgetCategoryLinker) LinkBudgetToTransaction(ctx context.Context, journal *models.TransactionJournal, leg *models.Transaction, budgetID int64) (bool, error) {
	if budgetID <= 0 || journal.Type == models.TransactionTypeTransfer {
		return false, nil
	}
	budget, err := l.budget(ctx, journal.UserID, budgetID)
	if err != nil {
		return false, err
	}
	if err := l.budgets.LinkToTransaction(ctx, leg.ID, budget.ID); err != nil {
		return false, persistence("link budget to transaction", err)
	}
	return true, nil
}

func (l *BudgetCategoryLinker) LinkCategoryToJournal(ctx context.Context, journal *models.TransactionJournal, name string) (*models.Category, error) {
	category, err := l.category(ctx, journal.UserID, name)
	if err != nil || category == nil {
		return nil, err
	}
	if err := l.categories.LinkToJournal(ctx, journal.ID, category.ID); err != nil {
		return nil, persistence("link category to journal", err)
	}
	return category, nil
}

func (l *BudgetCategoryLinker) LinkCategoryToTransaction(ctx context.Context, journal *models.TransactionJournal, leg *models.Transaction, name string) (*models.Category, error) {
	category, err := l.category(ctx, journal.UserID, name)
	if err != nil || category == nil {
		return nil, err
	}
	if err := l.categories.LinkToTransaction(ctx, leg.ID, category.ID); err != nil {
		return nil, persistence("link category to transaction", err)
	}
	return category, nil
}

func (l *BudgetCategoryLinker) budget(ctx context.Context, userID, budgetID int64) (*models.Budget, error) {
	if b, ok := l.budgetCache[budgetID]; ok {
		return b, nil
	}
	b, err := l.budgets.FindByID(ctx, userID, budgetID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &MissingBudgetError{BudgetID: budgetID}
	}
	if err != nil {
		return nil, persistence("find budget", err)
	}
	l.budgetCache[budgetID] = b
	return b, nil
}

// category returns nil without error for a blank name.
func (l *BudgetCategoryLinker) category(ctx context.Context, userID int64, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	if c, ok := l.categoryCache[name]; ok {
		return c, nil
	}
	c, err := l.categories.FindOrCreate(ctx, userID, name)
	if err != nil {
		return nil, persistence("find or create category", err)
	}
	l.categoryCache[name] = c
	return c, nil
}
