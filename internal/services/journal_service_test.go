package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ledgerfox/backend/internal/audit"
	"github.com/ledgerfox/backend/internal/models"
	"github.com/ledgerfox/backend/internal/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestJournalService(repos *mockRepos) (*JournalService, *fakeUnitOfWork, *bytes.Buffer) {
	var buf bytes.Buffer
	uow := &fakeUnitOfWork{repos: repos}
	svc := NewJournalService(uow, audit.NewLogger(zerolog.New(&buf)), zerolog.Nop())
	return svc, uow, &buf
}

func TestJournalService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("audits stored journals", func(t *testing.T) {
		repos := newMockRepos()
		source := asset(5, 1)
		repos.accounts.On("FindByID", mock.Anything, int64(1), int64(5)).Return(source, nil)
		repos.accounts.On("FindByID", mock.Anything, int64(1), int64(6)).Return(asset(6, 1), nil)
		repos.currencies.On("NativeCurrencyID", mock.Anything, mock.Anything).Return(eur, nil)
		expectJournalWrites(repos.journals, 7, 70)
		repos.tags.On("DetachAllExcept", mock.Anything, int64(7), []int64(nil)).Return(int64(0), nil)

		svc, uow, buf := newTestJournalService(repos)
		journal, err := svc.Create(ctx, 1, &models.JournalInput{
			What:                 "transfer",
			Description:          "To savings",
			Date:                 time.Now(),
			SourceAccountID:      5,
			DestinationAccountID: 6,
			SourceAmount:         "250",
		})

		require.NoError(t, err)
		assert.Equal(t, models.TransactionTypeTransfer, journal.Type)
		assert.Equal(t, 1, uow.commits)
		assert.Contains(t, buf.String(), "JOURNAL_STORED")
		assert.Contains(t, buf.String(), `"amount":"250"`)
	})

	t.Run("audits failures", func(t *testing.T) {
		repos := newMockRepos()
		svc, _, buf := newTestJournalService(repos)

		_, err := svc.Create(ctx, 1, &models.JournalInput{What: "refund"})

		assert.Error(t, err)
		assert.Contains(t, buf.String(), "JOURNAL_STORE")
		assert.Contains(t, buf.String(), "FAILED")
	})
}

func TestJournalService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("not found passes through", func(t *testing.T) {
		repos := newMockRepos()
		repos.journals.On("FindByID", mock.Anything, int64(1), int64(404)).Return(nil, repository.ErrNotFound)
		svc, _, _ := newTestJournalService(repos)

		_, err := svc.Get(ctx, 1, 404)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("storage error is wrapped", func(t *testing.T) {
		repos := newMockRepos()
		repos.journals.On("FindByID", mock.Anything, int64(1), int64(7)).Return(nil, errors.New("timeout"))
		svc, _, _ := newTestJournalService(repos)

		_, err := svc.Get(ctx, 1, 7)
		var storeErr *PersistenceError
		assert.True(t, errors.As(err, &storeErr))
	})
}

func TestJournalService_UpdateTags(t *testing.T) {
	ctx := context.Background()
	journal := func() *models.TransactionJournal {
		return &models.TransactionJournal{ID: 7, UserID: 1, Type: models.TransactionTypeWithdrawal, Tags: []string{"a", "b"}}
	}

	t.Run("replaces tags and is idempotent", func(t *testing.T) {
		repos := newMockRepos()
		repos.journals.On("FindByID", mock.Anything, int64(1), int64(7)).Return(journal(), nil).Once()
		repos.journals.On("FindByID", mock.Anything, int64(1), int64(7)).Return(journal(), nil).Once()
		repos.tags.On("FindOrCreate", mock.Anything, int64(1), "a").Return(&models.Tag{ID: 1, Name: "a"}, nil)
		repos.tags.On("DetachAllExcept", mock.Anything, int64(7), []int64{1}).Return(int64(1), nil).Once()
		repos.tags.On("DetachAllExcept", mock.Anything, int64(7), []int64{1}).Return(int64(0), nil).Once()
		repos.tags.On("Connect", mock.Anything, int64(7), int64(1)).Return(nil)
		svc, uow, buf := newTestJournalService(repos)

		first, err := svc.UpdateTags(ctx, 1, 7, []string{"a"})
		require.NoError(t, err)
		second, err := svc.UpdateTags(ctx, 1, 7, []string{"a"})
		require.NoError(t, err)

		assert.Equal(t, []string{"a"}, first.Tags)
		assert.Equal(t, first.Tags, second.Tags)
		assert.Equal(t, 2, uow.commits)
		assert.Contains(t, buf.String(), "JOURNAL_TAGS")
		repos.tags.AssertExpectations(t)
	})

	t.Run("unknown journal", func(t *testing.T) {
		repos := newMockRepos()
		repos.journals.On("FindByID", mock.Anything, int64(1), int64(8)).Return(nil, repository.ErrNotFound)
		svc, uow, _ := newTestJournalService(repos)

		_, err := svc.UpdateTags(ctx, 1, 8, []string{"a"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Equal(t, 1, uow.rollbacks)
	})
}

func TestJournalService_SetCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces journal category", func(t *testing.T) {
		repos := newMockRepos()
		repos.journals.On("FindByID", mock.Anything, int64(1), int64(7)).Return(&models.TransactionJournal{ID: 7, UserID: 1}, nil)
		repos.categories.On("UnlinkFromJournal", mock.Anything, int64(7)).Return(nil)
		repos.categories.On("FindOrCreate", mock.Anything, int64(1), "Rent").Return(&models.Category{ID: 2, UserID: 1, Name: "Rent"}, nil)
		repos.categories.On("LinkToJournal", mock.Anything, int64(7), int64(2)).Return(nil)
		svc, _, _ := newTestJournalService(repos)

		category, err := svc.SetCategory(ctx, 1, 7, "Rent")
		require.NoError(t, err)
		assert.Equal(t, "Rent", category.Name)
		repos.categories.AssertExpectations(t)
	})

	t.Run("blank name clears", func(t *testing.T) {
		repos := newMockRepos()
		repos.journals.On("FindByID", mock.Anything, int64(1), int64(7)).Return(&models.TransactionJournal{ID: 7, UserID: 1}, nil)
		repos.categories.On("UnlinkFromJournal", mock.Anything, int64(7)).Return(nil)
		svc, _, _ := newTestJournalService(repos)

		category, err := svc.SetCategory(ctx, 1, 7, "")
		require.NoError(t, err)
		assert.Nil(t, category)
		repos.categories.AssertNotCalled(t, "LinkToJournal", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestJournalService_BudgetLimit(t *testing.T) {
	repos := newMockRepos()
	limit := &models.BudgetLimit{ID: 3, BudgetID: 4, Amount: decimal.NewFromInt(300), Spent: decimal.NewFromInt(-120)}
	repos.budgets.On("FindLimit", mock.Anything, int64(1), int64(3)).Return(limit, nil)
	repos.budgets.On("FindLimit", mock.Anything, int64(2), int64(3)).Return(nil, repository.ErrNotFound)
	svc, _, _ := newTestJournalService(repos)

	got, err := svc.BudgetLimit(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.True(t, got.Spent.Equal(decimal.NewFromInt(-120)))

	_, err = svc.BudgetLimit(context.Background(), 2, 3)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
