// Package storage defines the Storage interface — a contract that any
// backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// Handlers (HTTP layer) should not know or care which backend they are
// talking to. By depending only on this interface:
//
//   - Switching backends (in-memory ↔ SQLite) = change one line in
//     main.go. Zero handler changes.
//
//   - Writing tests = hand a handler a fresh in-memory store.
//     No shared global state between tests.
//
// The interface mirrors the café's three public resources (reservations,
// contacts, newsletter subscriptions) plus users, which have no HTTP
// routes yet but are part of the storage contract.
package storage

import (
	"errors"

	"github.com/aanand-mishra/cafe-api/internal/types"
)

// ErrNotFound is returned by every lookup that finds nothing. A miss is
// an expected outcome, not a failure — callers match it with errors.Is
// and decide what it means for them.
var ErrNotFound = errors.New("record not found")

// ErrEmailSubscribed is returned by CreateNewsletter when the email is
// already stored. The check and the insert happen as one atomic unit
// inside the backend, so two concurrent subscriptions with the same
// email can never both succeed.
var ErrEmailSubscribed = errors.New("email already subscribed")

// Storage is the backend contract.
//
// Invariants every implementation must uphold:
//
//   - Each Create* assigns the next sequential id for that entity kind
//     (separate counters, starting at 1, never reused) and, where the
//     entity has one, a createdAt timestamp. Callers never supply either.
//   - Stored records are immutable: no update, no delete, and returned
//     records are independent copies the caller cannot use to reach
//     internal state.
//   - GetReservations and GetContacts return records sorted by createdAt
//     descending (most recent first). GetNewsletters has no ordering
//     guarantee.
type Storage interface {
	// CreateUser stores a new user and returns the full record with its
	// assigned id.
	CreateUser(user types.InsertUser) (types.User, error)

	// GetUser fetches a user by id. Returns ErrNotFound on a miss.
	GetUser(id int64) (types.User, error)

	// GetUserByUsername scans for the first user with the given
	// username. Returns ErrNotFound on a miss.
	GetUserByUsername(username string) (types.User, error)

	// CreateReservation stores a new reservation, assigning id and
	// createdAt, and returns the full record.
	CreateReservation(reservation types.InsertReservation) (types.Reservation, error)

	// GetReservations returns all reservations, most recent first.
	// Returns an empty slice (not nil) when there are none.
	GetReservations() ([]types.Reservation, error)

	// GetReservation fetches one reservation by id. Returns ErrNotFound
	// on a miss.
	GetReservation(id int64) (types.Reservation, error)

	// CreateContact stores a new contact message, assigning id and
	// createdAt, and returns the full record.
	CreateContact(contact types.InsertContact) (types.Contact, error)

	// GetContacts returns all contact messages, most recent first.
	GetContacts() ([]types.Contact, error)

	// CreateNewsletter stores a new subscription, assigning id and
	// createdAt. Returns ErrEmailSubscribed — without storing anything —
	// if the email is already subscribed.
	CreateNewsletter(newsletter types.InsertNewsletter) (types.Newsletter, error)

	// GetNewsletters returns all subscriptions in no particular order.
	GetNewsletters() ([]types.Newsletter, error)

	// GetNewsletterByEmail scans for the subscription with the given
	// email. Returns ErrNotFound on a miss.
	GetNewsletterByEmail(email string) (types.Newsletter, error)
}
