package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"accounting-service/internal/apperrors"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Error marshaling JSON response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithServiceError maps the failure taxonomy onto status codes:
// validation 400, not found 404, anything else 500 with the underlying
// message.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondWithError(w, http.StatusBadRequest, apperrors.Message(err))
	case errors.Is(err, apperrors.ErrNotFound):
		respondWithError(w, http.StatusNotFound, apperrors.Message(err))
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
