package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func TestFlightRoute_AvailableTickets(t *testing.T) {
	tests := []struct {
		name        string
		capacity    int
		overbooking float64
		want        int
	}{
		{"typical overbooking rounds up", 150, 0.015, 153},
		{"higher overbooking", 150, 0.03, 155},
		{"zero overbooking keeps capacity", 150, 0.0, 150},
		{"single seat", 1, 0.015, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := &FlightRoute{Overbooking: tt.overbooking}
			assert.Equal(t, tt.want, route.AvailableTickets(tt.capacity))
		})
	}
}

func TestFlightRoute_Dates(t *testing.T) {
	t.Run("three day window", func(t *testing.T) {
		route := &FlightRoute{
			StartDate: date(t, "2024-10-24"),
			EndDate:   date(t, "2024-10-26"),
		}

		dates := route.Dates()

		require.Len(t, dates, 3)
		assert.Equal(t, date(t, "2024-10-24"), dates[0])
		assert.Equal(t, date(t, "2024-10-25"), dates[1])
		assert.Equal(t, date(t, "2024-10-26"), dates[2])
		assert.Equal(t, 3, route.Days())
	})

	t.Run("single day window", func(t *testing.T) {
		route := &FlightRoute{
			StartDate: date(t, "2024-10-24"),
			EndDate:   date(t, "2024-10-24"),
		}

		dates := route.Dates()

		require.Len(t, dates, 1)
		assert.Equal(t, date(t, "2024-10-24"), dates[0])
		assert.Equal(t, 1, route.Days())
	})

	t.Run("crosses month boundary", func(t *testing.T) {
		route := &FlightRoute{
			StartDate: date(t, "2024-10-24"),
			EndDate:   date(t, "2024-11-10"),
		}

		dates := route.Dates()

		require.Len(t, dates, 18)
		assert.Equal(t, date(t, "2024-10-31"), dates[7])
		assert.Equal(t, date(t, "2024-11-01"), dates[8])
		assert.Equal(t, date(t, "2024-11-10"), dates[17])
	})
}
