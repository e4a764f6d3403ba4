package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"accounting-service/internal/models"
	"accounting-service/internal/services"
)

type VoucherHandler struct {
	voucherService *services.VoucherService
}

func NewVoucherHandler(voucherService *services.VoucherService) *VoucherHandler {
	return &VoucherHandler{
		voucherService: voucherService,
	}
}

func (h *VoucherHandler) ListVouchers(w http.ResponseWriter, r *http.Request) {
	vouchers, err := h.voucherService.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if vouchers == nil {
		vouchers = []*models.Voucher{}
	}
	respondWithJSON(w, http.StatusOK, vouchers)
}

func (h *VoucherHandler) GetVoucher(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "voucher not found")
		return
	}

	details, err := h.voucherService.GetDetails(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, details)
}

func (h *VoucherHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	voucherType := r.URL.Query().Get("type")

	next, err := h.voucherService.NextNumber(r.Context(), date, voucherType)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int{"next_number": next})
}

func (h *VoucherHandler) CreateVoucher(w http.ResponseWriter, r *http.Request) {
	var input services.VoucherInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	id, err := h.voucherService.Create(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "voucher created successfully",
		"voucher_id": id,
	})
}

func (h *VoucherHandler) DeleteVoucher(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "voucher not found")
		return
	}

	if err := h.voucherService.Delete(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "voucher deleted successfully"})
}
