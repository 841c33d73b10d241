// Package handler holds the response helpers shared by the HTTP handlers.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mager/songstory/charts"
	"github.com/mager/songstory/render"
	"github.com/mager/songstory/shares"
	"go.uber.org/zap"
)

// Status maps a chart error to an HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, charts.ErrBadSelection), errors.Is(err, shares.ErrBinCount):
		return http.StatusBadRequest
	case errors.Is(err, charts.ErrUnknownChart), errors.Is(err, render.ErrNotDrawable):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Error writes err with the status it maps to. Server errors are logged.
func Error(w http.ResponseWriter, log *zap.SugaredLogger, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Errorw("Request failed", "error", err)
	}
	http.Error(w, err.Error(), status)
}

func JSON(w http.ResponseWriter, log *zap.SugaredLogger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorw("Error encoding response", "error", err)
	}
}
