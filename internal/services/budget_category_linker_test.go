package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ledgerfox/backend/internal/models"
	"github.com/ledgerfox/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBudgetCategoryLinker_Budgets(t *testing.T) {
	ctx := context.Background()
	groceries := &models.Budget{ID: 4, UserID: 1, Name: "Groceries", Active: true}

	t.Run("withdrawal links journal and legs with one lookup", func(t *testing.T) {
		budgets := &MockBudgets{}
		budgets.On("FindByID", mock.Anything, int64(1), int64(4)).Return(groceries, nil).Once()
		budgets.On("LinkToJournal", mock.Anything, int64(7), int64(4)).Return(nil)
		budgets.On("LinkToTransaction", mock.Anything, int64(70), int64(4)).Return(nil)

		linker := NewBudgetCategoryLinker(budgets, &MockCategories{})
		journal := &models.TransactionJournal{ID: 7, UserID: 1, Type: models.TransactionTypeWithdrawal}

		linked, err := linker.LinkBudgetToJournal(ctx, journal, 4)
		require.NoError(t, err)
		assert.True(t, linked)

		linked, err = linker.LinkBudgetToTransaction(ctx, journal, &models.Transaction{ID: 70}, 4)
		require.NoError(t, err)
		assert.True(t, linked)
		budgets.AssertExpectations(t)
	})

	t.Run("deposit links legs but not the journal", func(t *testing.T) {
		budgets := &MockBudgets{}
		budgets.On("FindByID", mock.Anything, int64(1), int64(4)).Return(groceries, nil)
		budgets.On("LinkToTransaction", mock.Anything, int64(70), int64(4)).Return(nil)

		linker := NewBudgetCategoryLinker(budgets, &MockCategories{})
		journal := &models.TransactionJournal{ID: 7, UserID: 1, Type: models.TransactionTypeDeposit}

		linked, err := linker.LinkBudgetToJournal(ctx, journal, 4)
		require.NoError(t, err)
		assert.False(t, linked)

		linked, err = linker.LinkBudgetToTransaction(ctx, journal, &models.Transaction{ID: 70}, 4)
		require.NoError(t, err)
		assert.True(t, linked)
		budgets.AssertNotCalled(t, "LinkToJournal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("transfers never get budgets", func(t *testing.T) {
		budgets := &MockBudgets{}
		linker := NewBudgetCategoryLinker(budgets, &MockCategories{})
		journal := &models.TransactionJournal{ID: 7, UserID: 1, Type: models.TransactionTypeTransfer}

		linked, err := linker.LinkBudgetToJournal(ctx, journal, 4)
		require.NoError(t, err)
		assert.False(t, linked)
		linked, err = linker.LinkBudgetToTransaction(ctx, journal, &models.Transaction{ID: 70}, 4)
		require.NoError(t, err)
		assert.False(t, linked)
		budgets.AssertExpectations(t)
	})

	t.Run("budget of another user", func(t *testing.T) {
		budgets := &MockBudgets{}
		budgets.On("FindByID", mock.Anything, int64(1), int64(99)).Return(nil, repository.ErrNotFound)

		linker := NewBudgetCategoryLinker(budgets, &MockCategories{})
		journal := &models.TransactionJournal{ID: 7, UserID: 1, Type: models.TransactionTypeWithdrawal}

		_, err := linker.LinkBudgetToJournal(ctx, journal, 99)

		var budgetErr *MissingBudgetError
		require.True(t, errors.As(err, &budgetErr))
		assert.Equal(t, int64(99), budgetErr.BudgetID)
	})
}

func TestBudgetCategoryLinker_Categories(t *testing.T) {
	ctx := context.Background()
	journal := &models.TransactionJournal{ID: 7, UserID: 1, Type: models.TransactionTypeTransfer}

	t.Run("blank name is a no-op", func(t *testing.T) {
		categories := &MockCategories{}
		linker := NewBudgetCategoryLinker(&MockBudgets{}, categories)

		category, err := linker.LinkCategoryToJournal(ctx, journal, "  ")
		require.NoError(t, err)
		assert.Nil(t, category)
		categories.AssertExpectations(t)
	})

	t.Run("category is created once per unit of work", func(t *testing.T) {
		categories := &MockCategories{}
		savings := &models.Category{ID: 3, UserID: 1, Name: "Savings"}
		categories.On("FindOrCreate", mock.Anything, int64(1), "Savings").Return(savings, nil).Once()
		categories.On("LinkToTransaction", mock.Anything, int64(70), int64(3)).Return(nil)
		categories.On("LinkToTransaction", mock.Anything, int64(71), int64(3)).Return(nil)

		linker := NewBudgetCategoryLinker(&MockBudgets{}, categories)
		for _, id := range []int64{70, 71} {
			category, err := linker.LinkCategoryToTransaction(ctx, journal, &models.Transaction{ID: id}, " Savings")
			require.NoError(t, err)
			assert.Equal(t, int64(3), category.ID)
		}
		categories.AssertExpectations(t)
	})
}
