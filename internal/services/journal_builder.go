package services

import (
	"context"

	"github.com/ledgerfox/backend/internal/models"
	"github.com/ledgerfox/backend/internal/repository"
	"github.com/rs/zerolog"
)

// UnitOfWork opens database transactions. repository.Store implements it.
type UnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(r *repository.Repositories) error) error
	Repositories() *repository.Repositories
}

// JournalBuilder turns validated input into a stored journal with two
// balanced legs. Everything it writes happens in one database transaction.
type JournalBuilder struct {
	uow UnitOfWork
	log zerolog.Logger
}

func NewJournalBuilder(uow UnitOfWork, log zerolog.Logger) *JournalBuilder {
	return &JournalBuilder{uow: uow, log: log}
}

func (b *JournalBuilder) Build(ctx context.Context, userID int64, in *models.JournalInput) (*models.TransactionJournal, error) {
	txType := models.ParseTransactionType(in.What)
	if !txType.Known() {
		return nil, &UnrecognizedTypeError{Type: txType}
	}

	var journal *models.TransactionJournal
	err := b.uow.WithinTransaction(ctx, func(r *repository.Repositories) error {
		source, destination, err := NewAccountResolver(r.Accounts, b.log).Resolve(ctx, userID, txType, in)
		if err != nil {
			return err
		}

		amounts, err := NewCurrencyReconciler(r.Currencies).Reconcile(ctx, txType, in, source, destination)
		if err != nil {
			return err
		}

		journal = &models.TransactionJournal{
			UserID:      userID,
			Type:        txType,
			Description: in.Description,
			Date:        in.Date,
			CurrencyID:  amounts.CurrencyID,
		}
		if err := r.Journals.CreateJournal(ctx, journal); err != nil {
			return persistence("store journal", err)
		}

		linker := NewBudgetCategoryLinker(r.Budgets, r.Categories)
		if _, err := linker.LinkBudgetToJournal(ctx, journal, in.BudgetID); err != nil {
			return err
		}

		legs := []models.Transaction{
			leg(journal, source, amounts, true),
			leg(journal, destination, amounts, false),
		}
		for i := range legs {
			if err := r.Journals.CreateTransaction(ctx, &legs[i]); err != nil {
				return persistence("store transaction", err)
			}
			if _, err := linker.LinkCategoryToTransaction(ctx, journal, &legs[i], in.Category); err != nil {
				return err
			}
			if _, err := linker.LinkBudgetToTransaction(ctx, journal, &legs[i], in.BudgetID); err != nil {
				return err
			}
		}
		journal.Transactions = legs

		return NewTagReconciler(r.Tags, b.log).SyncTags(ctx, journal, in.Tags)
	})
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", userID).Str("type", string(txType)).
			Msg("[JOURNAL] Failed to store journal, rolled back")
		return nil, persistence("store journal", err)
	}

	b.log.Info().Int64("journal_id", journal.ID).Int64("user_id", userID).Str("type", string(txType)).
		Msg("[JOURNAL] Journal stored")
	return journal, nil
}

// leg builds the transaction for one side of the journal. The source side
// carries the negated amounts.
func leg(journal *models.TransactionJournal, account *models.Account, amounts *NormalizedAmounts, source bool) models.Transaction {
	t := models.Transaction{
		JournalID:   journal.ID,
		AccountID:   account.ID,
		Amount:      amounts.Amount,
		CurrencyID:  amounts.CurrencyID,
		Description: journal.Description,
	}
	if amounts.HasForeign() {
		t.ForeignAmount = amounts.ForeignAmount
		t.ForeignCurrencyID = amounts.ForeignCurrencyID
	}
	if source {
		t.Amount = t.Amount.Neg()
		if t.ForeignAmount.Valid {
			t.ForeignAmount.Decimal = t.ForeignAmount.Decimal.Neg()
		}
	}
	return t
}
