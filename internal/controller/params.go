package controller

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/taemotherlode01/ministore-api/internal/errors"
)

func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, appErrors.Invalid("id must be an integer")
	}
	return id, nil
}

// termParam returns the decoded {term}. chi matches on RawPath when it is
// set, so only then is the parameter still escaped.
func termParam(r *http.Request) string {
	raw := chi.URLParam(r, "term")
	if r.URL.RawPath == "" {
		return raw
	}
	if term, err := url.PathUnescape(raw); err == nil {
		return term
	}
	return raw
}
