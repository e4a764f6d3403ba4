package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"accounting-service/internal/models"
	"accounting-service/internal/repositories"
)

type AccountHandler struct {
	accountRepo repositories.AccountRepository
}

func NewAccountHandler(accountRepo repositories.AccountRepository) *AccountHandler {
	return &AccountHandler{
		accountRepo: accountRepo,
	}
}

func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountRepo.ListAll(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if accounts == nil {
		accounts = []*models.Account{}
	}
	respondWithJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) ListLeafAccounts(w http.ResponseWriter, r *http.Request) {
	refs, err := h.accountRepo.ListLeaf(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if refs == nil {
		refs = []*models.AccountRef{}
	}
	respondWithJSON(w, http.StatusOK, refs)
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	account, err := h.accountRepo.Get(r.Context(), code)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, account)
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if account.Code == "" || account.Name == "" || account.BalanceDirection == "" {
		respondWithError(w, http.StatusBadRequest, "account_code, account_name and balance_direction are required")
		return
	}

	if err := h.accountRepo.Create(r.Context(), &account); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to create account: "+err.Error())
		return
	}
	respondWithJSON(w, http.StatusCreated, MessageResponse{Message: "account created successfully"})
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var update repositories.AccountUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.accountRepo.Update(r.Context(), code, update); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "account updated successfully"})
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	if err := h.accountRepo.Delete(r.Context(), code); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "account deleted successfully"})
}
