// Package menu contains the HTTP handler for the café's menu catalogue.
package menu

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/cafe-api/internal/menu"
	"github.com/aanand-mishra/cafe-api/internal/utils/response"
)

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/menu
// Returns the menu catalogue as a JSON array. The optional ?category=
// query parameter filters by category (coffee, tea, pastries, snacks);
// an unknown category returns an empty array.
//
// Success response (200 OK):
//
//	[ { "id": "1", "name": "Signature Cappuccino", "price": "$4.50", ... } ]
//
// The catalogue is static, so there is no failure path.
// ─────────────────────────────────────────────────────────────────────────────
func GetList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		slog.Info("getting menu", slog.String("category", category))

		if category == "" || category == "all" {
			response.WriteJSON(w, http.StatusOK, menu.Items())
			return
		}

		response.WriteJSON(w, http.StatusOK, menu.ByCategory(category))
	}
}
