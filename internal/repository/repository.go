// Package repository holds the Postgres-backed stores the journal engine
// reads and writes through. Every repository is bound to a Querier, which is
// either the connection pool or the *sql.Tx of a running unit of work.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ledgerfox/backend/internal/models"
)

// ErrNotFound is returned when a row does not exist or belongs to another user.
var ErrNotFound = errors.New("not found")

// Querier is the subset of *sql.DB and *sql.Tx the repositories need.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type AccountRepository interface {
	FindByID(ctx context.Context, userID, accountID int64) (*models.Account, error)
	// FindOrCreate returns the account keyed by (userID, accountType, name),
	// inserting it when absent. The unique constraint on that key makes it
	// safe under concurrent callers.
	FindOrCreate(ctx context.Context, userID int64, accountType models.AccountType, name string) (*models.Account, error)
}

type CurrencyProvider interface {
	NativeCurrencyID(ctx context.Context, account *models.Account) (int64, error)
}

type JournalRepository interface {
	CreateJournal(ctx context.Context, journal *models.TransactionJournal) error
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
	FindByID(ctx context.Context, userID, journalID int64) (*models.TransactionJournal, error)
}

type TagRepository interface {
	FindOrCreate(ctx context.Context, userID int64, name string) (*models.Tag, error)
	// DetachAllExcept removes every tag link of the journal whose tag id is
	// not in keep. An empty keep removes all links.
	DetachAllExcept(ctx context.Context, journalID int64, keep []int64) (int64, error)
	Connect(ctx context.Context, journalID, tagID int64) error
}

type CategoryRepository interface {
	FindOrCreate(ctx context.Context, userID int64, name string) (*models.Category, error)
	LinkToJournal(ctx context.Context, journalID, categoryID int64) error
	UnlinkFromJournal(ctx context.Context, journalID int64) error
	LinkToTransaction(ctx context.Context, transactionID, categoryID int64) error
}

type BudgetRepository interface {
	FindByID(ctx context.Context, userID, budgetID int64) (*models.Budget, error)
	LinkToJournal(ctx context.Context, journalID, budgetID int64) error
	LinkToTransaction(ctx context.Context, transactionID, budgetID int64) error
	FindLimit(ctx context.Context, userID, limitID int64) (*models.BudgetLimit, error)
}

type PreferenceRepository interface {
	// Get returns the stored preference and whether it was set.
	Get(ctx context.Context, userID int64, name string) (string, bool, error)
}

// Repositories bundles every repository bound to the same Querier.
type Repositories struct {
	Accounts    AccountRepository
	Currencies  CurrencyProvider
	Journals    JournalRepository
	Tags        TagRepository
	Categories  CategoryRepository
	Budgets     BudgetRepository
	Preferences PreferenceRepository
}

// New binds the Postgres repositories to q. defaultCurrency is the ISO code
// used when neither the account nor the user names a currency.
func New(q Querier, defaultCurrency string) *Repositories {
	prefs := NewPreferenceRepository(q)
	return &Repositories{
		Accounts:    NewAccountRepository(q),
		Currencies:  NewCurrencyRepository(q, prefs, defaultCurrency),
		Journals:    NewJournalRepository(q),
		Tags:        NewTagRepository(q),
		Categories:  NewCategoryRepository(q),
		Budgets:     NewBudgetRepository(q),
		Preferences: prefs,
	}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
