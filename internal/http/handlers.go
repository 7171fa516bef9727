package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"billtrack/internal/bills"
	"billtrack/internal/core"
	"billtrack/internal/report"
)

// createBillRequest is the creation payload. Amount and due date arrive
// as the raw user input; parsing and validation happen here, before the
// store is ever touched.
type createBillRequest struct {
	Type    string `json:"type"`
	Amount  any    `json:"amount"`
	DueDate string `json:"dueDate"`
}

// maxCreateBodyBytes caps the creation payload, matching the server's
// header cap.
const maxCreateBodyBytes = 1 << 16

func (s *Server) handleCreateBill(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCreateBodyBytes)

	var req createBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	billType := strings.TrimSpace(req.Type)
	if billType == "" {
		writeError(w, http.StatusUnprocessableEntity, "bill type is required")
		return
	}

	amount, err := core.ParseAmount(stringValue(req.Amount))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	dueDate, err := core.ParseFreeDate(req.DueDate)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity,
			`invalid due date (e.g. "April 15 2024" or "Apr 15 2024")`)
		return
	}

	bill := core.NewBill(billType, amount, dueDate)
	if err := bill.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.store.Add(r.Context(), bill); err != nil {
		if errors.Is(err, bills.ErrDuplicateID) {
			writeError(w, http.StatusConflict, "bill id already exists")
			return
		}
		slog.ErrorContext(r.Context(), "Add bill failed", "error", err, "id", bill.ID)
		writeError(w, http.StatusInternalServerError, "failed to save bill")
		return
	}

	writeJSON(w, http.StatusCreated, bill)
}

func (s *Server) handleListBills(w http.ResponseWriter, r *http.Request) {
	collection := s.store.Bills()

	switch strings.ToLower(r.URL.Query().Get("status")) {
	case "":
	case "paid":
		collection = report.FilterByStatus(collection, core.Paid)
	case "unpaid":
		collection = report.FilterByStatus(collection, core.Unpaid)
	default:
		writeError(w, http.StatusBadRequest, "status must be 'paid' or 'unpaid'")
		return
	}

	writeJSON(w, http.StatusOK, collection)
}

func (s *Server) handleToggleBill(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var target *core.Bill
	for _, b := range s.store.Bills() {
		if b.ID == id {
			bill := b
			target = &bill
			break
		}
	}
	if target == nil {
		writeError(w, http.StatusNotFound, "bill not found")
		return
	}

	target.Status = target.Status.Toggled()
	found, err := s.store.Update(r.Context(), *target)
	if err != nil {
		slog.ErrorContext(r.Context(), "Toggle bill failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to update bill")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "bill not found")
		return
	}

	writeJSON(w, http.StatusOK, target)
}

func (s *Server) handleDeleteBill(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// Absent IDs are fine: delete is idempotent.
	if _, err := s.store.Delete(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Delete bill failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete bill")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if rep, ok := s.reportCache.Get(reportCacheKey); ok {
		writeJSON(w, http.StatusOK, rep)
		return
	}

	rep := report.Aggregate(s.store.Bills())
	s.reportCache.Set(reportCacheKey, rep)
	writeJSON(w, http.StatusOK, rep)
}

// dashboardBill is a bill plus its dueness label.
type dashboardBill struct {
	core.Bill
	Dueness report.Dueness `json:"dueness"`
}

type dashboardResponse struct {
	TotalDue core.Money      `json:"totalDue"`
	Unpaid   []dashboardBill `json:"unpaid"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if resp, ok := s.dashboardCache.Get(dashboardCacheKey); ok {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	collection := s.store.Bills()
	today := s.now()

	resp := dashboardResponse{
		TotalDue: report.TotalDue(collection),
		Unpaid:   []dashboardBill{},
	}
	for _, b := range report.FilterByStatus(collection, core.Unpaid) {
		resp.Unpaid = append(resp.Unpaid, dashboardBill{
			Bill:    b,
			Dueness: report.Classify(b, today),
		})
	}

	s.dashboardCache.Set(dashboardCacheKey, resp)
	writeJSON(w, http.StatusOK, resp)
}
