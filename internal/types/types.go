// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and utils can all import types without depending
// on each other.
//
// Each entity kind comes in two shapes:
//
//  1. The full record (User, Reservation, ...) — what storage returns,
//     including the server-assigned id and createdAt fields.
//
//  2. The insert record (InsertUser, InsertReservation, ...) — what a
//     client submits at creation time. It carries every field of the
//     full record EXCEPT id and createdAt, which the storage layer
//     assigns itself. Only insert records carry validate:"..." tags,
//     because only client input is ever validated.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// FlexInt is an int that also accepts a numeric JSON string ("3" as well
// as 3). The site's booking form submits partySize as a string, so the
// decoder has to coerce it rather than reject it. A non-numeric string
// is still a decode error.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	// Fast path: a plain JSON number.
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}

	// Quoted number: unmarshal the string, then parse it.
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("FlexInt: expected number or numeric string, got %s", data)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("FlexInt: cannot parse %q as integer", s)
	}

	*f = FlexInt(n)
	return nil
}

// User is an account record. Passwords are stored verbatim — there is no
// login endpoint yet, so no hashing happens anywhere.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// InsertUser is the client-supplied portion of a User.
type InsertUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Reservation is a table booking request.
//
// Date and Time stay plain strings ("2025-06-01", "18:00") — they are
// labels chosen from the booking form's dropdowns, never computed with.
type Reservation struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	PartySize       FlexInt   `json:"partySize"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InsertReservation is the client-supplied portion of a Reservation.
// PartySize must be positive; gt=0 covers that once FlexInt has decoded
// whatever the form sent.
type InsertReservation struct {
	Name            string  `json:"name"      validate:"required"`
	Phone           string  `json:"phone"     validate:"required"`
	Date            string  `json:"date"      validate:"required"`
	Time            string  `json:"time"      validate:"required"`
	PartySize       FlexInt `json:"partySize" validate:"required,gt=0"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
}

// Contact is a message sent through the contact form.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertContact is the client-supplied portion of a Contact.
type InsertContact struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Newsletter is a single subscription. Emails are unique across all
// stored subscriptions — the storage layer enforces that at creation.
type Newsletter struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertNewsletter is the client-supplied portion of a Newsletter.
type InsertNewsletter struct {
	Email string `json:"email" validate:"required,email"`
}
