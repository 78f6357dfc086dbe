// Package newsletter contains the HTTP handler for newsletter
// subscriptions.
//
// Subscriptions are the one resource with a uniqueness rule: an email
// can subscribe once. The handler does NOT check for duplicates itself —
// storage.CreateNewsletter performs the check and the insert as one
// atomic unit and reports storage.ErrEmailSubscribed. A check here,
// before the create, would reopen the race between two concurrent
// subscriptions with the same email.
package newsletter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/cafe-api/internal/storage"
	"github.com/aanand-mishra/cafe-api/internal/types"
	"github.com/aanand-mishra/cafe-api/internal/utils/response"
	"github.com/aanand-mishra/cafe-api/internal/utils/validate"
)

type createdResponse struct {
	Success    bool             `json:"success"`
	Newsletter types.Newsletter `json:"newsletter"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Subscribe handles POST /api/newsletters
// Subscribes an email address to the newsletter.
//
// Request body (JSON):
//
//	{ "email": "alice@example.com" }
//
// Success response (200 OK):
//
//	{ "success": true, "newsletter": { "id": 1, "email": "...", "createdAt": "..." } }
//
// Error responses:
//
//	400 Bad Request — { "message": "Email already subscribed" } for a
//	                  duplicate, or { "message": "Invalid email", "errors": [...] }
//	                  for a missing/malformed address
//	500 Internal    — { "message": "Failed to subscribe" }
//
// ─────────────────────────────────────────────────────────────────────────────
func Subscribe(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a newsletter subscription")

		var insert types.InsertNewsletter

		err := json.NewDecoder(r.Body).Decode(&insert)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError("request body is empty"))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError("Invalid email"))
			return
		}

		if errs := validate.Struct(insert); errs != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError("Invalid email", errs))
			return
		}

		newsletter, err := store.CreateNewsletter(insert)
		if err != nil {
			if errors.Is(err, storage.ErrEmailSubscribed) {
				response.WriteJSON(w, http.StatusBadRequest,
					response.GeneralError("Email already subscribed"))
				return
			}

			slog.Error("error creating newsletter subscription",
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError("Failed to subscribe"))
			return
		}

		slog.Info("newsletter subscription created",
			slog.Int64("id", newsletter.ID))

		response.WriteJSON(w, http.StatusOK, createdResponse{
			Success:    true,
			Newsletter: newsletter,
		})
	}
}
