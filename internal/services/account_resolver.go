package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ledgerfox/backend/internal/models"
	"github.com/ledgerfox/backend/internal/repository"
	"github.com/rs/zerolog"
)

// AccountResolver finds the source and destination accounts of a new
// journal, creating expense, revenue and cash counterparties on the fly.
type AccountResolver struct {
	accounts repository.AccountRepository
	log      zerolog.Logger
}

func NewAccountResolver(accounts repository.AccountRepository, log zerolog.Logger) *AccountResolver {
	return &AccountResolver{accounts: accounts, log: log}
}

func (r *AccountResolver) Resolve(ctx context.Context, userID int64, txType models.TransactionType, in *models.JournalInput) (source, destination *models.Account, err error) {
	r.log.Debug().Str("type", string(txType)).Int64("user_id", userID).Msg("[JOURNAL] Resolving accounts")

	switch txType {
	case models.TransactionTypeWithdrawal:
		if source, err = r.owned(ctx, userID, in.SourceAccountID, "source"); err != nil {
			return nil, nil, err
		}
		destination, err = r.counterparty(ctx, userID, models.AccountTypeExpense, in.DestinationAccountName)
	case models.TransactionTypeDeposit:
		if destination, err = r.owned(ctx, userID, in.DestinationAccountID, "destination"); err != nil {
			return nil, nil, err
		}
		source, err = r.counterparty(ctx, userID, models.AccountTypeRevenue, in.SourceAccountName)
	case models.TransactionTypeTransfer:
		if source, err = r.owned(ctx, userID, in.SourceAccountID, "source"); err != nil {
			return nil, nil, err
		}
		destination, err = r.owned(ctx, userID, in.DestinationAccountID, "destination")
	default:
		return nil, nil, &UnrecognizedTypeError{Type: txType}
	}
	if err != nil {
		return nil, nil, err
	}

	if source == nil {
		r.log.Error().Int64("user_id", userID).Msg("[JOURNAL] Source account is nil, cannot continue")
		return nil, nil, &MissingAccountError{Role: "source", AccountID: in.SourceAccountID}
	}
	if destination == nil {
		r.log.Error().Int64("user_id", userID).Msg("[JOURNAL] Destination account is nil, cannot continue")
		return nil, nil, &MissingAccountError{Role: "destination", AccountID: in.DestinationAccountID}
	}
	return source, destination, nil
}

// owned loads an account that must already exist and belong to userID.
func (r *AccountResolver) owned(ctx context.Context, userID, accountID int64, role string) (*models.Account, error) {
	if accountID <= 0 {
		return nil, &MissingAccountError{Role: role}
	}
	account, err := r.accounts.FindByID(ctx, userID, accountID)
	if errors.Is(err, repository.ErrNotFound) {
		r.log.Warn().Int64("user_id", userID).Int64("account_id", accountID).Str("role", role).
			Msg("[JOURNAL] Account not found for user")
		return nil, &MissingAccountError{Role: role, AccountID: accountID}
	}
	if err != nil {
		return nil, persistence("find "+role+" account", err)
	}
	return account, nil
}

// counterparty finds or creates the named account of the given type, or the
// user's cash account when name is blank.
func (r *AccountResolver) counterparty(ctx context.Context, userID int64, accountType models.AccountType, name string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		r.log.Debug().Int64("user_id", userID).Msg("[JOURNAL] No counterparty name, defaulting to cash account")
		accountType, name = models.AccountTypeCash, models.CashAccountName
	}
	account, err := r.accounts.FindOrCreate(ctx, userID, accountType, name)
	if err != nil {
		return nil, persistence("find or create counterparty", err)
	}
	r.log.Debug().Str("name", name).Int64("account_id", account.ID).Msg("[JOURNAL] Counterparty resolved")
	return account, nil
}
