package newsletter_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/cafe-api/internal/http/handlers/newsletter"
	"github.com/aanand-mishra/cafe-api/internal/storage/memory"
	"github.com/aanand-mishra/cafe-api/internal/types"
)

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func subscribe(t *testing.T, store *memory.Memory, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/newsletters",
		strings.NewReader(body))
	rec := httptest.NewRecorder()
	newsletter.Subscribe(store)(rec, req)
	return rec
}

func TestSubscribe(t *testing.T) {
	store := memory.New()

	rec := subscribe(t, store, `{"email": "alice@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success    bool             `json:"success"`
		Newsletter types.Newsletter `json:"newsletter"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.Newsletter.ID)
	assert.Equal(t, "alice@example.com", body.Newsletter.Email)
	assert.False(t, body.Newsletter.CreatedAt.IsZero())
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	store := memory.New()

	rec := subscribe(t, store, `{"email": "alice@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = subscribe(t, store, `{"email": "alice@example.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Email already subscribed", body.Message)
	assert.Empty(t, body.Errors, "a conflict carries no field errors")

	// The duplicate attempt left the subscription count unchanged.
	list, err := store.GetNewsletters()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSubscribeInvalidEmail(t *testing.T) {
	store := memory.New()

	rec := subscribe(t, store, `{"email": "not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid email", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "email", body.Errors[0].Field)

	list, err := store.GetNewsletters()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSubscribeMissingEmail(t *testing.T) {
	rec := subscribe(t, memory.New(), `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid email", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "email", body.Errors[0].Field)
}

func TestSubscribeEmptyBody(t *testing.T) {
	rec := subscribe(t, memory.New(), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
