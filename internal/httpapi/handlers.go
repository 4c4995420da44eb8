package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmynk/photobill/internal/appdata"
	"github.com/mmynk/photobill/internal/calculator"
	"github.com/mmynk/photobill/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler serves the plain HTTP endpoints next to the RPC services.
type Handler struct {
	store    appdata.Store
	expenses calculator.Expenses
	now      func() time.Time
	logger   *slog.Logger
}

// NewHandler creates a Handler. A nil logger means slog.Default().
func NewHandler(store appdata.Store, expenses calculator.Expenses, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, expenses: expenses, now: time.Now, logger: logger}
}

// Health reports that the process is up.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports 503 until the store has finished loading.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.store.Loading() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// ExportWorkbook streams the current data as an .xlsx download.
func (h *Handler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	if h.store.Loading() {
		writeError(w, http.StatusServiceUnavailable, appdata.ErrLoading.Error())
		return
	}

	now := h.now()
	snapshot := h.store.Snapshot()
	account := calculator.AccountSummary(snapshot, h.expenses)
	cashflow := calculator.CashflowSummary(snapshot, h.expenses, now)

	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, snapshot, account, cashflow); err != nil {
		h.logger.Error("Export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}

	filename := fmt.Sprintf("photobill-%s.xlsx", now.Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("Export write interrupted", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
