package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/intakebox/intakebox/pkg/usecase"
	"github.com/intakebox/intakebox/pkg/utils/errutil"
	"github.com/intakebox/intakebox/pkg/utils/logging"
	"github.com/intakebox/intakebox/pkg/utils/safe"
)

// envelope is the uniform response shape. Every handler returns it; raw
// errors never cross the HTTP boundary.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondOK(w http.ResponseWriter, r *http.Request, data any) {
	respondJSON(w, r, http.StatusOK, envelope{Success: true, Message: "ok", Data: data})
}

func respondCreated(w http.ResponseWriter, r *http.Request, data any) {
	respondJSON(w, r, http.StatusCreated, envelope{Success: true, Message: "created", Data: data})
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(r.Context()).Warn("failed to encode response", "error", err.Error())
	}
}

// respondError maps the use case error taxonomy to HTTP statuses. The
// envelope carries the sentinel's message, never internal error chains.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, usecase.ErrValidation):
		status = http.StatusBadRequest
		message = usecase.ErrValidation.Error()
	case errors.Is(err, usecase.ErrReportNotFound),
		errors.Is(err, usecase.ErrIdentityNotFound):
		status = http.StatusNotFound
		message = "not found"
	case errors.Is(err, usecase.ErrForbidden):
		status = http.StatusForbidden
		message = usecase.ErrForbidden.Error()
	case errors.Is(err, usecase.ErrInvalidState):
		status = http.StatusConflict
		message = usecase.ErrInvalidState.Error()
	case errors.Is(err, usecase.ErrInvalidTransition):
		status = http.StatusConflict
		message = usecase.ErrInvalidTransition.Error()
	case errors.Is(err, usecase.ErrInvalidLink):
		status = http.StatusNotFound
		message = usecase.ErrInvalidLink.Error()
	case errors.Is(err, usecase.ErrExpiredLink):
		status = http.StatusGone
		message = usecase.ErrExpiredLink.Error()
	case errors.Is(err, usecase.ErrAdvisoryFailed):
		status = http.StatusBadGateway
		message = usecase.ErrAdvisoryFailed.Error()
	}

	errutil.Handle(r.Context(), err, "request failed")
	respondJSON(w, r, status, envelope{Success: false, Message: message})
}

func decodeBody(r *http.Request, out any) error {
	defer safe.Close(r.Context(), r.Body)
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return usecase.ErrValidation
	}
	return nil
}
