package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ledgerfox/backend/internal/audit"
	"github.com/ledgerfox/backend/internal/models"
	"github.com/ledgerfox/backend/internal/repository"
	"github.com/rs/zerolog"
)

// JournalService is the entry point the HTTP layer talks to.
type JournalService struct {
	uow     UnitOfWork
	builder *JournalBuilder
	audit   *audit.Logger
	log     zerolog.Logger
}

func NewJournalService(uow UnitOfWork, auditLogger *audit.Logger, log zerolog.Logger) *JournalService {
	return &JournalService{
		uow:     uow,
		builder: NewJournalBuilder(uow, log),
		audit:   auditLogger,
		log:     log,
	}
}

func (s *JournalService) Create(ctx context.Context, userID int64, in *models.JournalInput) (*models.TransactionJournal, error) {
	journal, err := s.builder.Build(ctx, userID, in)
	if err != nil {
		s.audit.LogError("JOURNAL_STORE", userID, err)
		return nil, err
	}
	s.audit.LogJournal(journal)
	return journal, nil
}

func (s *JournalService) Get(ctx context.Context, userID, journalID int64) (*models.TransactionJournal, error) {
	journal, err := s.uow.Repositories().Journals.FindByID(ctx, userID, journalID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, persistence("find journal", err)
	}
	return journal, err
}

// UpdateTags replaces the tags of an existing journal.
func (s *JournalService) UpdateTags(ctx context.Context, userID, journalID int64, names []string) (*models.TransactionJournal, error) {
	var journal *models.TransactionJournal
	err := s.uow.WithinTransaction(ctx, func(r *repository.Repositories) error {
		var err error
		if journal, err = r.Journals.FindByID(ctx, userID, journalID); err != nil {
			return err
		}
		return NewTagReconciler(r.Tags, s.log).SyncTags(ctx, journal, names)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		s.audit.LogError("JOURNAL_TAGS", userID, err)
		return nil, persistence("update tags", err)
	}
	s.audit.LogOperation("JOURNAL_TAGS", journal.ID, userID, map[string]any{"tags": journal.Tags})
	return journal, nil
}

// SetCategory replaces the journal-level category. A blank name clears it.
func (s *JournalService) SetCategory(ctx context.Context, userID, journalID int64, name string) (*models.Category, error) {
	var category *models.Category
	err := s.uow.WithinTransaction(ctx, func(r *repository.Repositories) error {
		journal, err := r.Journals.FindByID(ctx, userID, journalID)
		if err != nil {
			return err
		}
		if err := r.Categories.UnlinkFromJournal(ctx, journal.ID); err != nil {
			return fmt.Errorf("unlink categories: %w", err)
		}
		category, err = NewBudgetCategoryLinker(r.Budgets, r.Categories).LinkCategoryToJournal(ctx, journal, name)
		return err
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		s.audit.LogError("JOURNAL_CATEGORY", userID, err)
		return nil, persistence("set category", err)
	}
	s.audit.LogOperation("JOURNAL_CATEGORY", journalID, userID, map[string]any{"category": name})
	return category, nil
}

// BudgetLimit loads one of the user's budget limits with its spent amount.
func (s *JournalService) BudgetLimit(ctx context.Context, userID, limitID int64) (*models.BudgetLimit, error) {
	limit, err := s.uow.Repositories().Budgets.FindLimit(ctx, userID, limitID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, persistence("find budget limit", err)
	}
	return limit, err
}
