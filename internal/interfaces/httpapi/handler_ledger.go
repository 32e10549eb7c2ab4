package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ligaescolar/kings-api/internal/usecase"
)

type createTransactionRequest struct {
	TeamID      string `json:"teamId" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"max=500"`
}

type reviewRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransactions")
	defer span.End()

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	transactions, err := h.services.Ledger.ListTransactions(ctx, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list transactions failed", "status", status, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]transactionDTO, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, transactionToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTransaction")
	defer span.End()

	var req createTransactionRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := h.services.Ledger.CreateTransaction(ctx, usecase.CreateTransactionInput{
		TeamID:      req.TeamID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create transaction failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, transactionToDTO(t))
}

func (h *Handler) ReviewTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReviewTransaction")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	transactionID := strings.TrimSpace(r.PathValue("transactionID"))
	var req reviewRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := h.services.Ledger.ReviewTransaction(ctx, usecase.ReviewTransactionInput{
		TransactionID: transactionID,
		Status:        req.Status,
		ReviewerID:    principal.UserID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "review transaction failed", "transaction_id", transactionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transactionToDTO(t))
}
