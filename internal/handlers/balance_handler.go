package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"accounting-service/internal/repositories"
	"accounting-service/internal/services"
)

type BalanceHandler struct {
	balanceService *services.BalanceService
}

func NewBalanceHandler(balanceService *services.BalanceService) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

func (h *BalanceHandler) GetBalances(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "year query parameter is required")
		return
	}

	balances, err := h.balanceService.GetForYear(r.Context(), year)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, balances)
}

type SaveBalancesRequest struct {
	Year     int                         `json:"year"`
	Balances []repositories.BalanceInput `json:"balances"`
}

func (h *BalanceHandler) SaveBalances(w http.ResponseWriter, r *http.Request) {
	var req SaveBalancesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.Year == 0 || req.Balances == nil {
		respondWithError(w, http.StatusBadRequest, "year and balances are required")
		return
	}

	if err := h.balanceService.SaveForYear(r.Context(), req.Year, req.Balances); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "opening balances saved successfully"})
}
