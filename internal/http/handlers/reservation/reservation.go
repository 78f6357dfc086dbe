// Package reservation contains the HTTP handlers for the Reservation
// resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like a storage
// backend. So each exported function here is a FACTORY: it accepts the
// dependencies once at startup and returns the actual handler, which
// closes over them. Example:
//
//	router.HandleFunc("POST /api/reservations", reservation.New(storage))
//	//                                          ^^^^^^^^^^^^^^^^^^^^^^^
//	//                        New(storage) is called ONCE at startup.
//	//                        It returns a handler func which is called
//	//                        on EVERY incoming request.
package reservation

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

// createdResponse is the body of a successful creation.
type createdResponse struct {
	Success     bool              `json:"success"`
	Reservation types.Reservation `json:"reservation"`
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/reservations
// Creates a new reservation from the JSON request body.
//
// Request body (JSON):
//
//	{ "name": "Alice", "phone": "555-0100", "date": "2025-06-01",
//	  "time": "18:00", "partySize": 2, "specialRequests": "window seat" }
//
// partySize also accepts a numeric string ("2") — the booking form
// submits it that way.
//
// Success response (200 OK):
//
//	{ "success": true, "reservation": { "id": 1, ..., "createdAt": "..." } }
//
// Error responses:
//
//	400 Bad Request — empty body, malformed JSON, or failed validation
//	500 Internal    — storage error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a reservation")

		var insert types.InsertReservation

		err := json.NewDecoder(r.Body).Decode(&insert)
		if errors.Is(err, io.EOF) {
			// io.EOF means the body was completely empty.
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError("request body is empty"))
			return
		}
		if err != nil {
			// Malformed JSON, wrong types, non-numeric partySize, etc.
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError("Invalid reservation data"))
			return
		}

		// Validation happens before any storage call — a rejected
		// request never leaves a partial write behind.
		if errs := validate.Struct(insert); errs != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError("Invalid reservation data", errs))
			return
		}

		reservation, err := storage.CreateReservation(insert)
		if err != nil {
			slog.Error("error creating reservation",
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError("Failed to create reservation"))
			return
		}

		slog.Info("reservation created", slog.Int64("id", reservation.ID))

		response.WriteJSON(w, http.StatusOK, createdResponse{
			Success:     true,
			Reservation: reservation,
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/reservations
// Returns a JSON array of all reservations, most recent first.
//
// Success response (200 OK):
//
//	[
//	  { "id": 2, "name": "Bob",   ..., "createdAt": "..." },
//	  { "id": 1, "name": "Alice", ..., "createdAt": "..." }
//	]
//
// Returns an empty array [] (not null) when there are no reservations.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all reservations")

		reservations, err := storage.GetReservations()
		if err != nil {
			slog.Error("error getting reservations",
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError("Failed to fetch reservations"))
			return
		}

		response.WriteJSON(w, http.StatusOK, reservations)
	}
}
