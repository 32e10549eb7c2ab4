package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ligaescolar/kings-api/internal/usecase"
)

type submitRequestRequest struct {
	Type string          `json:"type" validate:"required"`
	Data json.RawMessage `json:"data"`
}

func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRequests")
	defer span.End()

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	requests, err := h.services.Requests.ListRequests(ctx, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list requests failed", "status", status, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]requestDTO, 0, len(requests))
	for _, rq := range requests {
		items = append(items, requestToDTO(rq))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitRequest")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req submitRequestRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rq, err := h.services.Requests.SubmitRequest(ctx, usecase.SubmitRequestInput{
		Type:   req.Type,
		UserID: principal.UserID,
		Data:   req.Data,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit request failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, requestToDTO(rq))
}

func (h *Handler) ReviewRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReviewRequest")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	requestID := strings.TrimSpace(r.PathValue("requestID"))
	var req reviewRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rq, err := h.services.Requests.ReviewRequest(ctx, usecase.ReviewRequestInput{
		RequestID:  requestID,
		Status:     req.Status,
		ReviewerID: principal.UserID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "review request failed", "request_id", requestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, requestToDTO(rq))
}
