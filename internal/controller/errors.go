// internal/controller/errors.go
package controller

import (
	"errors"
	"net/http"

	appErrors "github.com/taemotherlode01/ministore-api/internal/errors"
	"github.com/taemotherlode01/ministore-api/internal/middleware"
	"github.com/taemotherlode01/ministore-api/internal/obs"
	"github.com/taemotherlode01/ministore-api/internal/respond"
)

// writeError maps service errors to status codes. Store faults are logged in
// full and reported with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, label string, err error) {
	switch {
	case appErrors.IsNotFound(err):
		respond.Message(w, http.StatusNotFound, label+" not found!")
	case errors.Is(err, appErrors.ErrInvalidInput):
		respond.Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrConflict):
		respond.Message(w, http.StatusConflict, label+" already exists!")
	default:
		obs.Logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"error", err,
		)
		respond.Message(w, http.StatusInternalServerError, "internal server error")
	}
}
