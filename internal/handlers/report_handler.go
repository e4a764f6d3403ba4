package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"accounting-service/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func reportYear(r *http.Request) (int, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, false
	}
	return year, true
}

type GenerateSummaryRequest struct {
	Year int `json:"year"`
}

// GenerateSummary runs the account-summary procedure on demand and
// returns the freshly generated rows.
func (h *ReportHandler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	var req GenerateSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Year == 0 {
		respondWithError(w, http.StatusBadRequest, "year is required")
		return
	}

	rows, err := h.reportService.AccountSummary(r.Context(), req.Year)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) AccountSummary(w http.ResponseWriter, r *http.Request) {
	year, ok := reportYear(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "year query parameter is required")
		return
	}

	rows, err := h.reportService.AccountSummary(r.Context(), year)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) BalanceSheet(w http.ResponseWriter, r *http.Request) {
	year, ok := reportYear(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "year query parameter is required")
		return
	}

	rows, err := h.reportService.BalanceSheet(r.Context(), year)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) IncomeStatement(w http.ResponseWriter, r *http.Request) {
	year, ok := reportYear(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "year query parameter is required")
		return
	}

	rows, err := h.reportService.IncomeStatement(r.Context(), year)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) CashFlowStatement(w http.ResponseWriter, r *http.Request) {
	year, ok := reportYear(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "year query parameter is required")
		return
	}

	rows, err := h.reportService.CashFlowStatement(r.Context(), year)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	year, ok := reportYear(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "year query parameter is required")
		return
	}

	rows, err := h.reportService.TrialBalance(r.Context(), year)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, rows)
}
