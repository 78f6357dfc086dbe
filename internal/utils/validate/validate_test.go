package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/cafe-api/internal/types"
)

func TestStructValidInput(t *testing.T) {
	errs := Struct(types.InsertContact{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "hi",
	})
	assert.Nil(t, errs)
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	errs := Struct(types.InsertReservation{
		Name:  "Alice",
		Phone: "555-0100",
		Date:  "2025-06-01",
		Time:  "18:00",
		// PartySize left at zero
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "partySize", errs[0].Field(),
		"errors must name the json field, not the Go field")
	assert.Equal(t, "required", errs[0].ActualTag())
}

func TestStructCollectsEveryFailure(t *testing.T) {
	errs := Struct(types.InsertContact{Email: "not-an-email"})
	require.Len(t, errs, 3)

	tags := map[string]string{}
	for _, e := range errs {
		tags[e.Field()] = e.ActualTag()
	}
	assert.Equal(t, "required", tags["name"])
	assert.Equal(t, "email", tags["email"])
	assert.Equal(t, "required", tags["message"])
}
