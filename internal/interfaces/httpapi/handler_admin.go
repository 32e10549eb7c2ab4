package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ligaescolar/kings-api/internal/usecase"
)

const importMaxUploadBytes = 8 << 20

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportCSV")
	defer span.End()

	exportType := strings.TrimSpace(r.URL.Query().Get("type"))
	body, filename, err := h.services.Export.Export(ctx, exportType)
	if err != nil {
		h.logger.WarnContext(ctx, "export failed", "type", exportType, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) ImportPlayersCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportPlayersCSV")
	defer span.End()

	if err := r.ParseMultipartForm(importMaxUploadBytes); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid multipart form: %v", usecase.ErrInvalidInput, err))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: missing file field", usecase.ErrInvalidInput))
		return
	}
	defer file.Close()

	report, err := h.services.Import.ValidatePlayers(ctx, file)
	if err != nil {
		h.logger.WarnContext(ctx, "import validation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "import sheet validated",
		"total_rows", report.TotalRows,
		"accepted_rows", report.AcceptedRows,
		"rejected_rows", report.RejectedRows,
	)

	writeSuccess(ctx, w, http.StatusOK, report)
}
