// Package health contains the liveness probe handler.
package health

import (
	"net/http"

	"github.com/aanand-mishra/cafe-api/internal/utils/response"
)

// Check handles GET /api/health
// Always responds 200 {"status":"healthy"} while the process is up —
// there are no downstream dependencies to probe.
func Check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	}
}
