package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/ligaescolar/kings-api/internal/usecase"
)

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, data)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, body := mapError(err)
	writeJSON(ctx, w, status, body)
}

// writeInternalError hides the cause from the client; callers log the
// detail server-side before reaching for it.
func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Error: "internal error"})
}

func mapError(err error) (int, errorBody) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest, errorBody{Error: "invalid input", Details: err.Error()}
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound, errorBody{Error: "not found", Details: err.Error()}
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized, errorBody{Error: "unauthorized", Details: err.Error()}
	default:
		return http.StatusInternalServerError, errorBody{Error: "internal error"}
	}
}
