package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/cafe-api/internal/storage"
	"github.com/aanand-mishra/cafe-api/internal/types"
)

// steppingClock returns a clock that advances by one second on every
// read, starting after base. Deterministic createdAt values let the
// ordering tests assert exact positions.
func steppingClock(base time.Time) func() time.Time {
	t := base
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCreateReservationAssignsSequentialIDs(t *testing.T) {
	store := NewWithClock(steppingClock(base))

	insert := types.InsertReservation{
		Name: "Alice", Phone: "555-0100",
		Date: "2025-06-01", Time: "18:00", PartySize: 2,
	}

	var lastID int64
	for i := 0; i < 5; i++ {
		r, err := store.CreateReservation(insert)
		require.NoError(t, err)
		assert.Greater(t, r.ID, lastID, "ids must be strictly increasing")
		lastID = r.ID
	}
	assert.Equal(t, int64(5), lastID, "counter starts at 1 and never skips")
}

func TestCountersAreIndependentPerKind(t *testing.T) {
	store := NewWithClock(steppingClock(base))

	r, err := store.CreateReservation(types.InsertReservation{
		Name: "Alice", Phone: "555-0100",
		Date: "2025-06-01", Time: "18:00", PartySize: 2,
	})
	require.NoError(t, err)

	c, err := store.CreateContact(types.InsertContact{
		Name: "Bob", Email: "bob@example.com", Message: "hello",
	})
	require.NoError(t, err)

	n, err := store.CreateNewsletter(types.InsertNewsletter{
		Email: "carol@example.com",
	})
	require.NoError(t, err)

	u, err := store.CreateUser(types.InsertUser{
		Username: "dave", Password: "hunter2",
	})
	require.NoError(t, err)

	// Every kind has its own counter, so each first record gets id 1.
	assert.Equal(t, int64(1), r.ID)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, int64(1), n.ID)
	assert.Equal(t, int64(1), u.ID)
}

func TestCreateReservationStampsCreatedAt(t *testing.T) {
	store := NewWithClock(steppingClock(base))

	r, err := store.CreateReservation(types.InsertReservation{
		Name: "Alice", Phone: "555-0100",
		Date: "2025-06-01", Time: "18:00", PartySize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, base.Add(time.Second), r.CreatedAt,
		"createdAt comes from the injected clock")
}

func TestGetReservationRoundTrip(t *testing.T) {
	store := NewWithClock(steppingClock(base))

	created, err := store.CreateReservation(types.InsertReservation{
		Name: "Alice", Phone: "555-0100",
		Date: "2025-06-01", Time: "18:00", PartySize: 2,
		SpecialRequests: "window seat",
	})
	require.NoError(t, err)

	got, err := store.GetReservation(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetReservationsSortsNewestFirst(t *testing.T) {
	store := NewWithClock(steppingClock(base))

	names := []string{"first", "second", "third"}
	for _, name := range names {
		_, err := store.CreateReservation(types.InsertReservation{
			Name: name, Phone: "555-0100",
			Date: "2025-06-01", Time: "18:00", PartySize: 2,
		})
		require.NoError(t, err)
	}

	list, err := store.GetReservations()
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "third", list[0].Name)
	assert.Equal(t, "second", list[1].Name)
	assert.Equal(t, "first", list[2].Name)
}

func TestGetReservationsBreaksTimestampTiesByID(t *testing.T) {
	// A frozen clock gives every record the same createdAt; ordering
	// must still be newest (highest id) first.
	frozen := func() time.Time { return base }
	store := NewWithClock(frozen)

	for _, name := range []string{"a", "b", "c"} {
		_, err := store.CreateReservation(types.InsertReservation{
			Name: name, Phone: "555-0100",
			Date: "2025-06-01", Time: "18:00", PartySize: 2,
		})
		require.NoError(t, err)
	}

	list, err := store.GetReservations()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, int64(1), list[2].ID)
}

func TestGetContactsSortsNewestFirst(t *testing.T) {
	store := NewWithClock(steppingClock(base))

	for _, name := range []string{"first", "second"} {
		_, err := store.CreateContact(types.InsertContact{
			Name: name, Email: name + "@example.com", Message: "hi",
		})
		require.NoError(t, err)
	}

	list, err := store.GetContacts()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Name)
	assert.Equal(t, "first", list[1].Name)
}

func TestListsAreEmptyNotNil(t *testing.T) {
	store := New()

	reservations, err := store.GetReservations()
	require.NoError(t, err)
	assert.NotNil(t, reservations)
	assert.Empty(t, reservations)

	contacts, err := store.GetContacts()
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)

	newsletters, err := store.GetNewsletters()
	require.NoError(t, err)
	assert.NotNil(t, newsletters)
	assert.Empty(t, newsletters)
}

func TestLookupMissesReturnErrNotFound(t *testing.T) {
	store := New()

	_, err := store.GetReservation(42)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.GetUser(42)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.GetNewsletterByEmail("nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetUserByUsername(t *testing.T) {
	store := New()

	created, err := store.CreateUser(types.InsertUser{
		Username: "alice", Password: "secret",
	})
	require.NoError(t, err)

	got, err := store.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateNewsletterRejectsDuplicateEmail(t *testing.T) {
	store := NewWithClock(steppingClock(base))

	_, err := store.CreateNewsletter(types.InsertNewsletter{
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	_, err = store.CreateNewsletter(types.InsertNewsletter{
		Email: "alice@example.com",
	})
	assert.ErrorIs(t, err, storage.ErrEmailSubscribed)

	// The rejected attempt must not have stored anything, and must not
	// have burned an id: the next distinct email still gets id 2.
	list, err := store.GetNewsletters()
	require.NoError(t, err)
	assert.Len(t, list, 1)

	n, err := store.CreateNewsletter(types.InsertNewsletter{
		Email: "bob@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n.ID)
}

func TestGetNewsletterByEmail(t *testing.T) {
	store := New()

	created, err := store.CreateNewsletter(types.InsertNewsletter{
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	got, err := store.GetNewsletterByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestConcurrentDuplicateSubscriptionsStoreExactlyOne(t *testing.T) {
	store := New()

	const workers = 32
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.CreateNewsletter(types.InsertNewsletter{
				Email: "alice@example.com",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, storage.ErrEmailSubscribed):
			conflicts++
		}
	}

	assert.Equal(t, 1, successes, "exactly one subscription may win")
	assert.Equal(t, workers-1, conflicts)

	list, err := store.GetNewsletters()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestConcurrentCreatesNeverReuseIDs(t *testing.T) {
	store := New()

	const workers = 32
	var wg sync.WaitGroup
	ids := make(chan int64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := store.CreateReservation(types.InsertReservation{
				Name: "Alice", Phone: "555-0100",
				Date: "2025-06-01", Time: "18:00", PartySize: 2,
			})
			if err == nil {
				ids <- r.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestReturnedSlicesAreIndependentCopies(t *testing.T) {
	store := NewWithClock(steppingClock(base))

	_, err := store.CreateReservation(types.InsertReservation{
		Name: "Alice", Phone: "555-0100",
		Date: "2025-06-01", Time: "18:00", PartySize: 2,
	})
	require.NoError(t, err)

	list, err := store.GetReservations()
	require.NoError(t, err)
	list[0].Name = "Mallory"

	again, err := store.GetReservations()
	require.NoError(t, err)
	assert.Equal(t, "Alice", again[0].Name,
		"mutating a returned record must not touch stored state")
}
