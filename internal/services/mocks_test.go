package services

import (
	"context"

	"github.com/ledgerfox/backend/internal/models"
	"github.com/ledgerfox/backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) FindByID(ctx context.Context, userID, accountID int64) (*models.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccounts) FindOrCreate(ctx context.Context, userID int64, accountType models.AccountType, name string) (*models.Account, error) {
	args := m.Called(ctx, userID, accountType, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

type MockCurrencies struct {
	mock.Mock
}

func (m *MockCurrencies) NativeCurrencyID(ctx context.Context, account *models.Account) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

type MockJournals struct {
	mock.Mock
}

func (m *MockJournals) CreateJournal(ctx context.Context, journal *models.TransactionJournal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournals) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockJournals) FindByID(ctx context.Context, userID, journalID int64) (*models.TransactionJournal, error) {
	args := m.Called(ctx, userID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionJournal), args.Error(1)
}

type MockTags struct {
	mock.Mock
}

func (m *MockTags) FindOrCreate(ctx context.Context, userID int64, name string) (*models.Tag, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTags) DetachAllExcept(ctx context.Context, journalID int64, keep []int64) (int64, error) {
	args := m.Called(ctx, journalID, keep)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTags) Connect(ctx context.Context, journalID, tagID int64) error {
	args := m.Called(ctx, journalID, tagID)
	return args.Error(0)
}

type MockCategories struct {
	mock.Mock
}

func (m *MockCategories) FindOrCreate(ctx context.Context, userID int64, name string) (*models.Category, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategories) LinkToJournal(ctx context.Context, journalID, categoryID int64) error {
	args := m.Called(ctx, journalID, categoryID)
	return args.Error(0)
}

func (m *MockCategories) UnlinkFromJournal(ctx context.Context, journalID int64) error {
	args := m.Called(ctx, journalID)
	return args.Error(0)
}

func (m *MockCategories) LinkToTransaction(ctx context.Context, transactionID, categoryID int64) error {
	args := m.Called(ctx, transactionID, categoryID)
	return args.Error(0)
}

type MockBudgets struct {
	mock.Mock
}

func (m *MockBudgets) FindByID(ctx context.Context, userID, budgetID int64) (*models.Budget, error) {
	args := m.Called(ctx, userID, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Budget), args.Error(1)
}

func (m *MockBudgets) LinkToJournal(ctx context.Context, journalID, budgetID int64) error {
	args := m.Called(ctx, journalID, budgetID)
	return args.Error(0)
}

func (m *MockBudgets) LinkToTransaction(ctx context.Context, transactionID, budgetID int64) error {
	args := m.Called(ctx, transactionID, budgetID)
	return args.Error(0)
}

func (m *MockBudgets) FindLimit(ctx context.Context, userID, limitID int64) (*models.BudgetLimit, error) {
	args := m.Called(ctx, userID, limitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BudgetLimit), args.Error(1)
}

type mockRepos struct {
	accounts   *MockAccounts
	currencies *MockCurrencies
	journals   *MockJournals
	tags       *MockTags
	categories *MockCategories
	budgets    *MockBudgets
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		accounts:   &MockAccounts{},
		currencies: &MockCurrencies{},
		journals:   &MockJournals{},
		tags:       &MockTags{},
		categories: &MockCategories{},
		budgets:    &MockBudgets{},
	}
}

func (m *mockRepos) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Accounts:   m.accounts,
		Currencies: m.currencies,
		Journals:   m.journals,
		Tags:       m.tags,
		Categories: m.categories,
		Budgets:    m.budgets,
	}
}

// fakeUnitOfWork runs fn against the mocks and records whether the unit of
// work would have been committed or rolled back.
type fakeUnitOfWork struct {
	repos      *mockRepos
	commits    int
	rollbacks  int
	beginError error
}

func (f *fakeUnitOfWork) WithinTransaction(ctx context.Context, fn func(r *repository.Repositories) error) error {
	if f.beginError != nil {
		return f.beginError
	}
	if err := fn(f.repos.Repositories()); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

func (f *fakeUnitOfWork) Repositories() *repository.Repositories {
	return f.repos.Repositories()
}
