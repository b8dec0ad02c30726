// internal/handler/system_handler.go
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/taemotherlode01/ministore-api/internal/handler/openapi"
	"github.com/taemotherlode01/ministore-api/internal/obs"
	"github.com/taemotherlode01/ministore-api/internal/respond"
)

// Pinger is satisfied by *sql.DB. A nil Pinger means there is no database
// to check.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// SystemHandler serves health and API documentation routes.
type SystemHandler struct {
	DB      Pinger
	Started time.Time
}

// NewSystemHandler creates a SystemHandler for the given database
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{DB: db, Started: time.Now()}
}

// Health reports 200 when the database answers a ping within two seconds.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			obs.Logger.Error("health check failed", "error", err)
			respond.JSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable"})
			return
		}
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"uptime_sec": int(time.Since(h.Started).Seconds()),
	})
}

func (h *SystemHandler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapi.YAML)
}

func (h *SystemHandler) Docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(docsPage))
}

const docsPage = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>MiniStore API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
