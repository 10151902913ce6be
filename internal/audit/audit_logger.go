package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/ledgerfox/backend/internal/models"
	"github.com/rs/zerolog"
)

type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"event_type"`
	JournalID int64     `json:"journal_id,omitempty"`
	UserID    int64     `json:"user_id"`
	Amount    string    `json:"amount,omitempty"`
	Status    string    `json:"status"`
	Details   any       `json:"details,omitempty"`
}

// Logger writes one structured audit line per ledger mutation.
type Logger struct {
	log zerolog.Logger
}

func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{log: log.With().Str("component", "audit").Logger()}
}

func (a *Logger) LogJournal(journal *models.TransactionJournal) {
	details := map[string]any{
		"type":        string(journal.Type),
		"currency_id": journal.CurrencyID,
		"tags":        journal.Tags,
	}
	amount := ""
	for _, leg := range journal.Transactions {
		if leg.Amount.IsPositive() {
			amount = leg.Amount.String()
		}
		if leg.ForeignAmount.Valid && leg.ForeignAmount.Decimal.IsPositive() {
			details["foreign_amount"] = leg.ForeignAmount.Decimal.String()
			details["foreign_currency_id"] = leg.ForeignCurrencyID.Int64
		}
	}
	a.emit(Event{
		EventType: "JOURNAL_STORED",
		JournalID: journal.ID,
		UserID:    journal.UserID,
		Amount:    amount,
		Status:    "SUCCESS",
		Details:   details,
	})
}

func (a *Logger) LogOperation(operation string, journalID, userID int64, details map[string]any) {
	a.emit(Event{
		EventType: operation,
		JournalID: journalID,
		UserID:    userID,
		Status:    "SUCCESS",
		Details:   details,
	})
}

func (a *Logger) LogError(operation string, userID int64, err error) {
	a.emit(Event{
		EventType: operation,
		UserID:    userID,
		Status:    "FAILED",
		Details:   map[string]string{"error": err.Error()},
	})
}

func (a *Logger) emit(event Event) {
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	a.log.Info().Interface("event", event).Msg("AUDIT")
}
