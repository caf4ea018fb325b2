package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/Ko-stant/trailmap/internal/protocol"
	"github.com/Ko-stant/trailmap/internal/render"
	"github.com/Ko-stant/trailmap/internal/trail"
	"github.com/Ko-stant/trailmap/internal/trailmap"
)

// AppError is an error with the HTTP status it should be reported with.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

func badRequest(err error) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: err.Error()}
}

// classify maps pipeline errors onto statuses. Anything it does not
// recognise is an internal error.
func classify(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, trailmap.ErrInvalidParams),
		errors.Is(err, trail.ErrInvalidDigit),
		errors.Is(err, trail.ErrNonRectangular),
		errors.Is(err, trail.ErrEmptyGrid),
		errors.Is(err, render.ErrRasterTooLarge):
		return badRequest(err)
	}
	return &AppError{Status: http.StatusInternalServerError, Message: err.Error()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := classify(err)
	if appErr.Status >= http.StatusInternalServerError {
		s.logger.Errorw("request failed", "request_id", requestID(r.Context()), "error", err)
	} else {
		s.logger.Debugw("request rejected", "request_id", requestID(r.Context()), "error", err)
	}
	writeJSON(w, appErr.Status, protocol.ErrorResponse{Message: appErr.Message})
}
