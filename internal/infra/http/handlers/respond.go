package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/salestrack-dev/salestrack/internal/usecase"
)

type dataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type listResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Total   int64       `json:"total"`
	Page    int64       `json:"page"`
	Pages   int64       `json:"pages"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, dataResponse{Success: true, Data: data})
}

func writeList(w http.ResponseWriter, data interface{}, total, page, pages int64) {
	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Data:    data,
		Total:   total,
		Page:    page,
		Pages:   pages,
	})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Success: true, Message: message})
}

// writeError converts a usecase error into the uniform failure envelope.
// Store failures are logged with their raw text but never leaked to the
// caller.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErrs usecase.ValidationErrors
		validationErr  usecase.ValidationError
		authnErr       *usecase.AuthenticationError
		authzErr       *usecase.AuthorizationError
		notFoundErr    *usecase.NotFoundError
	)

	switch {
	case errors.As(err, &validationErrs), errors.As(err, &validationErr):
		writeFailure(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &authnErr):
		writeFailure(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &authzErr):
		writeFailure(w, http.StatusForbidden, err.Error())
	case errors.As(err, &notFoundErr):
		writeFailure(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("unexpected error: %v", err)
		writeFailure(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Success: false, Message: message})
}
