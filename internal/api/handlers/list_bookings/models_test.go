package list_bookings

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest(t *testing.T) {
	barberID := uuid.New()

	t.Run("single date sets both bounds", func(t *testing.T) {
		req, err := ToServiceRequest(url.Values{
			"barberId": {barberID.String()},
			"date":     {"2024-03-15"},
			"status":   {"pending"},
		})
		require.NoError(t, err)

		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, barberID, *req.BarberID)
		assert.Equal(t, want, *req.DateFrom)
		assert.Equal(t, want, *req.DateTo)
		assert.Equal(t, "pending", *req.Status)
	})

	t.Run("explicit range", func(t *testing.T) {
		req, err := ToServiceRequest(url.Values{"dateFrom": {"2024-03-01"}, "dateTo": {"2024-03-31"}})
		require.NoError(t, err)

		assert.Nil(t, req.BarberID)
		assert.Equal(t, 1, req.DateFrom.Day())
		assert.Equal(t, 31, req.DateTo.Day())
	})

	t.Run("empty query", func(t *testing.T) {
		req, err := ToServiceRequest(url.Values{})
		require.NoError(t, err)
		assert.Nil(t, req.DateFrom)
		assert.Nil(t, req.Status)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := ToServiceRequest(url.Values{"barberId": {"7"}})
		assert.ErrorIs(t, err, errInvalidBarberID)

		_, err = ToServiceRequest(url.Values{"dateTo": {"31/03/2024"}})
		assert.ErrorIs(t, err, errInvalidDate)
	})
}
