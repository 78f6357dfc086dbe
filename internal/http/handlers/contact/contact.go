// Package contact contains the HTTP handlers for the Contact resource —
// messages sent through the site's contact form.
//
// Same factory/closure pattern as the reservation package: each
// exported function takes the storage backend once and returns the
// per-request handler.
package contact

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
	Success bool          `json:"success"`
	Contact types.Contact `json:"contact"`
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/contacts
// Creates a new contact message from the JSON request body.
//
// Request body (JSON):
//
//	{ "name": "Alice", "email": "alice@example.com", "message": "Hi!" }
//
// Success response (200 OK):
//
//	{ "success": true, "contact": { "id": 1, ..., "createdAt": "..." } }
//
// Error responses:
//
//	400 Bad Request — empty body, malformed JSON, or failed validation
//	                  (including a syntactically invalid email)
//	500 Internal    — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a contact message")

		var insert types.InsertContact

		err := json.NewDecoder(r.Body).Decode(&insert)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError("request body is empty"))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError("Invalid contact data"))
			return
		}

		if errs := validate.Struct(insert); errs != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError("Invalid contact data", errs))
			return
		}

		contact, err := storage.CreateContact(insert)
		if err != nil {
			slog.Error("error creating contact",
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError("Failed to send message"))
			return
		}

		slog.Info("contact created", slog.Int64("id", contact.ID))

		response.WriteJSON(w, http.StatusOK, createdResponse{
			Success: true,
			Contact: contact,
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/contacts
// Returns a JSON array of all contact messages, most recent first.
// Returns an empty array [] (not null) when there are none.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all contacts")

		contacts, err := storage.GetContacts()
		if err != nil {
			slog.Error("error getting contacts",
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError("Failed to fetch contacts"))
			return
		}

		response.WriteJSON(w, http.StatusOK, contacts)
	}
}
