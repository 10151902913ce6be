package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ledgerfox/backend/internal/logger"
	mW "github.com/ledgerfox/backend/internal/middleware"
	"github.com/ledgerfox/backend/internal/models"
	"github.com/ledgerfox/backend/internal/repository"
	"github.com/ledgerfox/backend/internal/services"
)

// JournalAPI is what the handler needs from services.JournalService.
type JournalAPI interface {
	Create(ctx context.Context, userID int64, in *models.JournalInput) (*models.TransactionJournal, error)
	Get(ctx context.Context, userID, journalID int64) (*models.TransactionJournal, error)
	UpdateTags(ctx context.Context, userID, journalID int64, names []string) (*models.TransactionJournal, error)
	SetCategory(ctx context.Context, userID, journalID int64, name string) (*models.Category, error)
	BudgetLimit(ctx context.Context, userID, limitID int64) (*models.BudgetLimit, error)
}

type JournalHandler struct {
	service   JournalAPI
	validator *services.ValidationHelper
}

func NewJournalHandler(service JournalAPI) *JournalHandler {
	return &JournalHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

type TransactionResponse struct {
	ID                int64   `json:"id"`
	AccountID         int64   `json:"account_id"`
	Amount            string  `json:"amount"`
	CurrencyID        int64   `json:"currency_id"`
	ForeignAmount     *string `json:"foreign_amount,omitempty"`
	ForeignCurrencyID *int64  `json:"foreign_currency_id,omitempty"`
}

type JournalResponse struct {
	ID           int64                 `json:"id"`
	Type         string                `json:"type"`
	Description  string                `json:"description"`
	Date         time.Time             `json:"date"`
	CurrencyID   int64                 `json:"currency_id"`
	Transactions []TransactionResponse `json:"transactions"`
	Tags         []string              `json:"tags"`
}

func newJournalResponse(j *models.TransactionJournal) JournalResponse {
	resp := JournalResponse{
		ID:           j.ID,
		Type:         string(j.Type),
		Description:  j.Description,
		Date:         j.Date,
		CurrencyID:   j.CurrencyID,
		Transactions: make([]TransactionResponse, 0, len(j.Transactions)),
		Tags:         j.Tags,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	for _, t := range j.Transactions {
		tr := TransactionResponse{
			ID:                t.ID,
			AccountID:         t.AccountID,
			Amount:            t.Amount.String(),
			CurrencyID:        t.CurrencyID,
			ForeignCurrencyID: t.ForeignCurrency(),
		}
		if t.ForeignAmount.Valid {
			foreign := t.ForeignAmount.Decimal.String()
			tr.ForeignAmount = &foreign
		}
		resp.Transactions = append(resp.Transactions, tr)
	}
	return resp
}

// StoreJournal creates a withdrawal, deposit or transfer
// @Summary Store a transaction journal
// @Description Resolve accounts, reconcile currencies and store a balanced two-leg journal
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param journal body models.JournalInput true "Journal data"
// @Success 201 {object} JournalResponse
// @Failure 400 {object} services.ErrorResponse
// @Failure 422 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /transactions [post]
func (h *JournalHandler) StoreJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := mW.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return
	}

	var req models.JournalInput
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	journal, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newJournalResponse(journal))
}

// GetJournal returns one journal with its legs and tags
// @Summary Get transaction journal
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param journalID path int true "Journal ID"
// @Success 200 {object} JournalResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /transactions/{journalID} [get]
func (h *JournalHandler) GetJournal(w http.ResponseWriter, r *http.Request) {
	userID, journalID, ok := userAndID(w, r, "journalID")
	if !ok {
		return
	}

	journal, err := h.service.Get(r.Context(), userID, journalID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newJournalResponse(journal))
}

// UpdateTags replaces the tags of a journal
// @Summary Replace journal tags
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param journalID path int true "Journal ID"
// @Param tags body object{tags=[]string} true "Tag names"
// @Success 200 {object} JournalResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /transactions/{journalID}/tags [put]
func (h *JournalHandler) UpdateTags(w http.ResponseWriter, r *http.Request) {
	userID, journalID, ok := userAndID(w, r, "journalID")
	if !ok {
		return
	}

	var req struct {
		Tags []string `json:"tags" validate:"omitempty,dive,max=1024"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	journal, err := h.service.UpdateTags(r.Context(), userID, journalID, req.Tags)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newJournalResponse(journal))
}

// SetCategory replaces the journal-level category
// @Summary Set journal category
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param journalID path int true "Journal ID"
// @Param category body object{category=string} true "Category name, empty to clear"
// @Success 200 {object} object{category=models.Category}
// @Failure 404 {object} services.ErrorResponse
// @Router /transactions/{journalID}/category [put]
func (h *JournalHandler) SetCategory(w http.ResponseWriter, r *http.Request) {
	userID, journalID, ok := userAndID(w, r, "journalID")
	if !ok {
		return
	}

	var req struct {
		Category string `json:"category" validate:"max=255"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	category, err := h.service.SetCategory(r.Context(), userID, journalID, req.Category)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"category": category})
}

// GetBudgetLimit returns a budget limit of the current user
// @Summary Get budget limit
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param limitID path int true "Budget limit ID"
// @Success 200 {object} models.BudgetLimit
// @Failure 404 {object} services.ErrorResponse
// @Router /budget-limits/{limitID} [get]
func (h *JournalHandler) GetBudgetLimit(w http.ResponseWriter, r *http.Request) {
	userID, limitID, ok := userAndID(w, r, "limitID")
	if !ok {
		return
	}

	limit, err := h.service.BudgetLimit(r.Context(), userID, limitID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, limit)
}

func userAndID(w http.ResponseWriter, r *http.Request, param string) (int64, int64, bool) {
	userID, ok := mW.UserIDFromContext(r.Context())
	if !ok {
		services.SendErrorResponse(w, "Unauthorized", http.StatusUnauthorized, nil)
		return 0, 0, false
	}
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		services.SendErrorResponse(w, "Not found", http.StatusNotFound, nil)
		return 0, 0, false
	}
	return userID, id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return false
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		typeErr     *services.UnrecognizedTypeError
		accountErr  *services.MissingAccountError
		currencyErr *services.CurrencyReconciliationError
		budgetErr   *services.MissingBudgetError
	)
	switch {
	case errors.As(err, &typeErr):
		services.SendErrorResponse(w, typeErr.Error(), http.StatusBadRequest, nil)
	case errors.As(err, &accountErr):
		services.SendErrorResponse(w, accountErr.Error(), http.StatusUnprocessableEntity, nil)
	case errors.As(err, &currencyErr):
		services.SendErrorResponse(w, currencyErr.Error(), http.StatusUnprocessableEntity, nil)
	case errors.As(err, &budgetErr):
		services.SendErrorResponse(w, budgetErr.Error(), http.StatusUnprocessableEntity, nil)
	case errors.Is(err, repository.ErrNotFound):
		services.SendErrorResponse(w, "Not found", http.StatusNotFound, nil)
	default:
		log := logger.FromContext(r.Context())
		log.Error().Err(err).Str("path", r.URL.Path).Msg("[JOURNAL] Request failed")
		services.SendErrorResponse(w, "Failed to process transaction", http.StatusInternalServerError, nil)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
