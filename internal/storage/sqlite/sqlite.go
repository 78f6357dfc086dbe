// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The in-memory store is the default backend; this one exists for
// deployments that want reservations and contact messages to survive a
// restart. Select it with storage_driver: sqlite in the config.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly, except to inspect
// constraint-violation errors in CreateNewsletter.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aanand-mishra/cafe-api/internal/config"
	"github.com/aanand-mishra/cafe-api/internal/storage"
	"github.com/aanand-mishra/cafe-api/internal/types"

	"github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at the path specified in
// cfg.StoragePath, creates the tables if they do not already exist, and
// returns a ready-to-use *SQLite.
//
// createdAt values are stored as RFC 3339 UTC text so they sort
// correctly with ORDER BY and round-trip losslessly through TEXT
// columns.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe to run on every
	// startup. The UNIQUE index on newsletters.email is what makes the
	// duplicate-email check atomic for this backend: the database
	// rejects the second insert no matter how the requests interleave.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			password TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS reservations (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			name             TEXT    NOT NULL,
			phone            TEXT    NOT NULL,
			date             TEXT    NOT NULL,
			time             TEXT    NOT NULL,
			party_size       INTEGER NOT NULL,
			special_requests TEXT    NOT NULL DEFAULT '',
			created_at       TEXT    NOT NULL
		);
		CREATE TABLE IF NOT EXISTS contacts (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			message    TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS newsletters (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			email      TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create tables: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// stamp returns the current time in the stored wire format.
func stamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// parseStamp converts a stored created_at column back to time.Time.
func parseStamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at %q: %w", s, err)
	}
	return t, nil
}

// CreateUser inserts a new user row and returns the full record.
func (s *SQLite) CreateUser(insert types.InsertUser) (types.User, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO users (username, password) VALUES (?, ?)",
	)
	if err != nil {
		return types.User{}, fmt.Errorf("CreateUser: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(insert.Username, insert.Password)
	if err != nil {
		return types.User{}, fmt.Errorf("CreateUser: exec: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return types.User{}, fmt.Errorf("CreateUser: last insert id: %w", err)
	}

	return types.User{
		ID:       id,
		Username: insert.Username,
		Password: insert.Password,
	}, nil
}

// GetUser fetches a user by primary key.
func (s *SQLite) GetUser(id int64) (types.User, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, username, password FROM users WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.User{}, fmt.Errorf("GetUser: prepare: %w", err)
	}
	defer stmt.Close()

	var user types.User
	err = stmt.QueryRow(id).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, storage.ErrNotFound
		}
		return types.User{}, fmt.Errorf("GetUser: scan: %w", err)
	}

	return user, nil
}

// GetUserByUsername fetches the first user with the given username.
func (s *SQLite) GetUserByUsername(username string) (types.User, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, username, password FROM users WHERE username = ? LIMIT 1",
	)
	if err != nil {
		return types.User{}, fmt.Errorf("GetUserByUsername: prepare: %w", err)
	}
	defer stmt.Close()

	var user types.User
	err = stmt.QueryRow(username).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, storage.ErrNotFound
		}
		return types.User{}, fmt.Errorf("GetUserByUsername: scan: %w", err)
	}

	return user, nil
}

// CreateReservation inserts a new reservation row, stamping created_at,
// and returns the full record.
func (s *SQLite) CreateReservation(insert types.InsertReservation) (types.Reservation, error) {
	stmt, err := s.Db.Prepare(`
		INSERT INTO reservations
			(name, phone, date, time, party_size, special_requests, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return types.Reservation{}, fmt.Errorf("CreateReservation: prepare: %w", err)
	}
	defer stmt.Close()

	createdAt := stamp()
	result, err := stmt.Exec(
		insert.Name,
		insert.Phone,
		insert.Date,
		insert.Time,
		int(insert.PartySize),
		insert.SpecialRequests,
		createdAt,
	)
	if err != nil {
		return types.Reservation{}, fmt.Errorf("CreateReservation: exec: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return types.Reservation{}, fmt.Errorf("CreateReservation: last insert id: %w", err)
	}

	ts, err := parseStamp(createdAt)
	if err != nil {
		return types.Reservation{}, fmt.Errorf("CreateReservation: %w", err)
	}

	return types.Reservation{
		ID:              id,
		Name:            insert.Name,
		Phone:           insert.Phone,
		Date:            insert.Date,
		Time:            insert.Time,
		PartySize:       insert.PartySize,
		SpecialRequests: insert.SpecialRequests,
		CreatedAt:       ts,
	}, nil
}

// GetReservations returns all reservations, most recent first.
func (s *SQLite) GetReservations() ([]types.Reservation, error) {
	stmt, err := s.Db.Prepare(`
		SELECT id, name, phone, date, time, party_size, special_requests, created_at
		FROM reservations
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("GetReservations: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetReservations: query: %w", err)
	}
	defer rows.Close()

	reservations := make([]types.Reservation, 0)

	for rows.Next() {
		var (
			r         types.Reservation
			partySize int
			createdAt string
		)
		if err := rows.Scan(
			&r.ID,
			&r.Name,
			&r.Phone,
			&r.Date,
			&r.Time,
			&partySize,
			&r.SpecialRequests,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("GetReservations: scan row: %w", err)
		}

		r.PartySize = types.FlexInt(partySize)
		if r.CreatedAt, err = parseStamp(createdAt); err != nil {
			return nil, fmt.Errorf("GetReservations: %w", err)
		}

		reservations = append(reservations, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetReservations: rows iteration: %w", err)
	}

	return reservations, nil
}

// GetReservation fetches a single reservation by primary key.
func (s *SQLite) GetReservation(id int64) (types.Reservation, error) {
	stmt, err := s.Db.Prepare(`
		SELECT id, name, phone, date, time, party_size, special_requests, created_at
		FROM reservations WHERE id = ? LIMIT 1
	`)
	if err != nil {
		return types.Reservation{}, fmt.Errorf("GetReservation: prepare: %w", err)
	}
	defer stmt.Close()

	var (
		r         types.Reservation
		partySize int
		createdAt string
	)
	err = stmt.QueryRow(id).Scan(
		&r.ID,
		&r.Name,
		&r.Phone,
		&r.Date,
		&r.Time,
		&partySize,
		&r.SpecialRequests,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Reservation{}, storage.ErrNotFound
		}
		return types.Reservation{}, fmt.Errorf("GetReservation: scan: %w", err)
	}

	r.PartySize = types.FlexInt(partySize)
	if r.CreatedAt, err = parseStamp(createdAt); err != nil {
		return types.Reservation{}, fmt.Errorf("GetReservation: %w", err)
	}

	return r, nil
}

// CreateContact inserts a new contact row, stamping created_at, and
// returns the full record.
func (s *SQLite) CreateContact(insert types.InsertContact) (types.Contact, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO contacts (name, email, message, created_at) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return types.Contact{}, fmt.Errorf("CreateContact: prepare: %w", err)
	}
	defer stmt.Close()

	createdAt := stamp()
	result, err := stmt.Exec(insert.Name, insert.Email, insert.Message, createdAt)
	if err != nil {
		return types.Contact{}, fmt.Errorf("CreateContact: exec: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return types.Contact{}, fmt.Errorf("CreateContact: last insert id: %w", err)
	}

	ts, err := parseStamp(createdAt)
	if err != nil {
		return types.Contact{}, fmt.Errorf("CreateContact: %w", err)
	}

	return types.Contact{
		ID:        id,
		Name:      insert.Name,
		Email:     insert.Email,
		Message:   insert.Message,
		CreatedAt: ts,
	}, nil
}

// GetContacts returns all contact messages, most recent first.
func (s *SQLite) GetContacts() ([]types.Contact, error) {
	stmt, err := s.Db.Prepare(`
		SELECT id, name, email, message, created_at
		FROM contacts
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("GetContacts: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetContacts: query: %w", err)
	}
	defer rows.Close()

	contacts := make([]types.Contact, 0)

	for rows.Next() {
		var (
			c         types.Contact
			createdAt string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("GetContacts: scan row: %w", err)
		}
		if c.CreatedAt, err = parseStamp(createdAt); err != nil {
			return nil, fmt.Errorf("GetContacts: %w", err)
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetContacts: rows iteration: %w", err)
	}

	return contacts, nil
}

// CreateNewsletter inserts a new subscription row. The UNIQUE index on
// email turns a duplicate into a constraint violation, which we map to
// storage.ErrEmailSubscribed so handlers treat both backends alike.
func (s *SQLite) CreateNewsletter(insert types.InsertNewsletter) (types.Newsletter, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO newsletters (email, created_at) VALUES (?, ?)",
	)
	if err != nil {
		return types.Newsletter{}, fmt.Errorf("CreateNewsletter: prepare: %w", err)
	}
	defer stmt.Close()

	createdAt := stamp()
	result, err := stmt.Exec(insert.Email, createdAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return types.Newsletter{}, storage.ErrEmailSubscribed
		}
		return types.Newsletter{}, fmt.Errorf("CreateNewsletter: exec: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return types.Newsletter{}, fmt.Errorf("CreateNewsletter: last insert id: %w", err)
	}

	ts, err := parseStamp(createdAt)
	if err != nil {
		return types.Newsletter{}, fmt.Errorf("CreateNewsletter: %w", err)
	}

	return types.Newsletter{
		ID:        id,
		Email:     insert.Email,
		CreatedAt: ts,
	}, nil
}

// GetNewsletters returns all subscriptions in insertion order.
func (s *SQLite) GetNewsletters() ([]types.Newsletter, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, email, created_at FROM newsletters",
	)
	if err != nil {
		return nil, fmt.Errorf("GetNewsletters: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetNewsletters: query: %w", err)
	}
	defer rows.Close()

	newsletters := make([]types.Newsletter, 0)

	for rows.Next() {
		var (
			n         types.Newsletter
			createdAt string
		)
		if err := rows.Scan(&n.ID, &n.Email, &createdAt); err != nil {
			return nil, fmt.Errorf("GetNewsletters: scan row: %w", err)
		}
		if n.CreatedAt, err = parseStamp(createdAt); err != nil {
			return nil, fmt.Errorf("GetNewsletters: %w", err)
		}
		newsletters = append(newsletters, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetNewsletters: rows iteration: %w", err)
	}

	return newsletters, nil
}

// GetNewsletterByEmail fetches the subscription with the given email.
func (s *SQLite) GetNewsletterByEmail(email string) (types.Newsletter, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, email, created_at FROM newsletters WHERE email = ? LIMIT 1",
	)
	if err != nil {
		return types.Newsletter{}, fmt.Errorf("GetNewsletterByEmail: prepare: %w", err)
	}
	defer stmt.Close()

	var (
		n         types.Newsletter
		createdAt string
	)
	err = stmt.QueryRow(email).Scan(&n.ID, &n.Email, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Newsletter{}, storage.ErrNotFound
		}
		return types.Newsletter{}, fmt.Errorf("GetNewsletterByEmail: scan: %w", err)
	}

	if n.CreatedAt, err = parseStamp(createdAt); err != nil {
		return types.Newsletter{}, fmt.Errorf("GetNewsletterByEmail: %w", err)
	}

	return n, nil
}
