// Package memory provides the default, in-process implementation of the
// storage.Storage interface.
//
// Everything lives in maps keyed by id, with one id counter per entity
// kind. Storage is deliberately volatile: a restart discards all data.
// That is the intended behaviour for this site — reservations and
// contact messages are read out of the process by staff, not archived.
// Anyone who needs the data to survive restarts switches the backend
// to sqlite in the config (storage_driver: sqlite).
//
// A single mutex guards every operation. That sounds coarse, but each
// operation is a map access or an O(n) scan over a few hundred records
// at most — contention is a non-issue, and holding the lock across the
// newsletter duplicate check AND the insert is exactly what makes two
// concurrent subscriptions with the same email impossible.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/aanand-mishra/cafe-api/internal/storage"
	"github.com/aanand-mishra/cafe-api/internal/types"
)

// Memory is the concrete in-memory implementation of storage.Storage.
type Memory struct {
	mu sync.Mutex

	// now is the clock used for createdAt stamps. Injected so tests can
	// pin time to fixed instants.
	now func() time.Time

	users        map[int64]types.User
	reservations map[int64]types.Reservation
	contacts     map[int64]types.Contact
	newsletters  map[int64]types.Newsletter

	// Per-kind id counters. Each holds the NEXT id to assign, so the
	// first record of every kind gets id 1.
	userID        int64
	reservationID int64
	contactID     int64
	newsletterID  int64
}

// New returns an empty store stamping createdAt with the wall clock.
func New() *Memory {
	return NewWithClock(time.Now)
}

// NewWithClock returns an empty store that reads the given clock for
// createdAt stamps. Tests use this with a fixed or stepping clock.
func NewWithClock(now func() time.Time) *Memory {
	return &Memory{
		now:           now,
		users:         make(map[int64]types.User),
		reservations:  make(map[int64]types.Reservation),
		contacts:      make(map[int64]types.Contact),
		newsletters:   make(map[int64]types.Newsletter),
		userID:        1,
		reservationID: 1,
		contactID:     1,
		newsletterID:  1,
	}
}

// CreateUser stores a new user under the next user id.
func (m *Memory) CreateUser(insert types.InsertUser) (types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.userID
	m.userID++

	user := types.User{
		ID:       id,
		Username: insert.Username,
		Password: insert.Password,
	}
	m.users[id] = user

	return user, nil
}

// GetUser fetches a user by id.
func (m *Memory) GetUser(id int64) (types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return types.User{}, storage.ErrNotFound
	}
	return user, nil
}

// GetUserByUsername scans for the first user with the given username.
// Linear scan — fine at this scale, and usernames are unique by
// convention (callers look before they create).
func (m *Memory) GetUserByUsername(username string) (types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return types.User{}, storage.ErrNotFound
}

// CreateReservation stores a new reservation, assigning the next
// reservation id and the current timestamp.
func (m *Memory) CreateReservation(insert types.InsertReservation) (types.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.reservationID
	m.reservationID++

	reservation := types.Reservation{
		ID:              id,
		Name:            insert.Name,
		Phone:           insert.Phone,
		Date:            insert.Date,
		Time:            insert.Time,
		PartySize:       insert.PartySize,
		SpecialRequests: insert.SpecialRequests,
		CreatedAt:       m.now(),
	}
	m.reservations[id] = reservation

	return reservation, nil
}

// GetReservations returns all reservations, most recent first.
func (m *Memory) GetReservations() ([]types.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reservations := make([]types.Reservation, 0, len(m.reservations))
	for _, r := range m.reservations {
		reservations = append(reservations, r)
	}

	// createdAt descending; ties broken by id descending so records
	// created within the same clock tick still list newest-first.
	sort.Slice(reservations, func(i, j int) bool {
		a, b := reservations[i], reservations[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	return reservations, nil
}

// GetReservation fetches one reservation by id.
func (m *Memory) GetReservation(id int64) (types.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reservation, ok := m.reservations[id]
	if !ok {
		return types.Reservation{}, storage.ErrNotFound
	}
	return reservation, nil
}

// CreateContact stores a new contact message, assigning the next
// contact id and the current timestamp.
func (m *Memory) CreateContact(insert types.InsertContact) (types.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.contactID
	m.contactID++

	contact := types.Contact{
		ID:        id,
		Name:      insert.Name,
		Email:     insert.Email,
		Message:   insert.Message,
		CreatedAt: m.now(),
	}
	m.contacts[id] = contact

	return contact, nil
}

// GetContacts returns all contact messages, most recent first.
func (m *Memory) GetContacts() ([]types.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	contacts := make([]types.Contact, 0, len(m.contacts))
	for _, c := range m.contacts {
		contacts = append(contacts, c)
	}

	sort.Slice(contacts, func(i, j int) bool {
		a, b := contacts[i], contacts[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	return contacts, nil
}

// CreateNewsletter stores a new subscription unless the email is
// already subscribed. The duplicate check and the insert happen under
// the same lock hold — this is the guarantee that concurrent
// subscriptions with one email produce exactly one record.
func (m *Memory) CreateNewsletter(insert types.InsertNewsletter) (types.Newsletter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, n := range m.newsletters {
		if n.Email == insert.Email {
			return types.Newsletter{}, storage.ErrEmailSubscribed
		}
	}

	id := m.newsletterID
	m.newsletterID++

	newsletter := types.Newsletter{
		ID:        id,
		Email:     insert.Email,
		CreatedAt: m.now(),
	}
	m.newsletters[id] = newsletter

	return newsletter, nil
}

// GetNewsletters returns all subscriptions in no particular order.
func (m *Memory) GetNewsletters() ([]types.Newsletter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	newsletters := make([]types.Newsletter, 0, len(m.newsletters))
	for _, n := range m.newsletters {
		newsletters = append(newsletters, n)
	}

	return newsletters, nil
}

// GetNewsletterByEmail scans for the subscription with the given email.
func (m *Memory) GetNewsletterByEmail(email string) (types.Newsletter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, n := range m.newsletters {
		if n.Email == email {
			return n, nil
		}
	}
	return types.Newsletter{}, storage.ErrNotFound
}
