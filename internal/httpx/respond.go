// Package httpx holds the response helpers shared by the domain handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mirevo/shop-catalog-service/pkg/apperr"
)

func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type errorBody struct {
	Error string `json:"error"`
}

// RespondError maps the error taxonomy to status codes.
func RespondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrCycleDetected):
		status = http.StatusUnprocessableEntity
	}
	Respond(w, status, errorBody{Error: err.Error()})
}
