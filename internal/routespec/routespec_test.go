package routespec

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "flight-schedule-seeder/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() RouteSpec {
	return RouteSpec{
		FlightNumber:    590,
		DepartureCity:   "IAH",
		DestinationCity: "YYZ",
		DepartureTime:   "07:20:00",
		ArrivalTime:     "11:26:00",
		AircraftID:      320,
		Overbooking:     0.015,
		StartDate:       "2024-10-24",
		EndDate:         "2024-11-10",
	}
}

func writeSpecFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		path := writeSpecFile(t, `
routes:
  - flight_number: 590
    departure_city: IAH
    destination_city: YYZ
    departure_time: "07:20:00"
    arrival_time: "11:26:00"
    aircraft_id: 320
    overbooking: 0.015
    start_date: "2024-10-24"
    end_date: "2024-11-10"
  - flight_number: 1284
    departure_city: LAS
    destination_city: YYZ
    departure_time: "23:55:00"
    arrival_time: "07:00:00"
    aircraft_id: 737
    overbooking: 0.03
    start_date: "2024-10-24"
    end_date: "2024-11-10"
`)

		specs, err := Load(path)

		require.NoError(t, err)
		require.Len(t, specs, 2)
		assert.Equal(t, 590, specs[0].FlightNumber)
		assert.Equal(t, "IAH", specs[0].DepartureCity)
		assert.Equal(t, 0.03, specs[1].Overbooking)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := writeSpecFile(t, "routes: [notamap")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("NoRoutes", func(t *testing.T) {
		path := writeSpecFile(t, "routes: []")
		_, err := Load(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("InvalidRouteRejected", func(t *testing.T) {
		path := writeSpecFile(t, `
routes:
  - flight_number: 590
    departure_city: IAH
    destination_city: YYZ
    departure_time: "07:20:00"
    arrival_time: "11:26:00"
    aircraft_id: 320
    overbooking: 0.015
    start_date: "2024-11-10"
    end_date: "2024-10-24"
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestRouteSpec_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RouteSpec)
	}{
		{"zero flight number", func(s *RouteSpec) { s.FlightNumber = 0 }},
		{"missing departure city", func(s *RouteSpec) { s.DepartureCity = "" }},
		{"missing destination city", func(s *RouteSpec) { s.DestinationCity = "" }},
		{"zero aircraft id", func(s *RouteSpec) { s.AircraftID = 0 }},
		{"negative overbooking", func(s *RouteSpec) { s.Overbooking = -0.01 }},
		{"short departure time", func(s *RouteSpec) { s.DepartureTime = "7:20" }},
		{"bad arrival time", func(s *RouteSpec) { s.ArrivalTime = "25:00:00" }},
		{"bad start date", func(s *RouteSpec) { s.StartDate = "24-10-2024" }},
		{"bad end date", func(s *RouteSpec) { s.EndDate = "2024-13-01" }},
		{"end before start", func(s *RouteSpec) { s.StartDate = "2024-11-10"; s.EndDate = "2024-10-24" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)

			err := spec.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}

	t.Run("valid spec passes", func(t *testing.T) {
		spec := validSpec()
		require.NoError(t, spec.Validate())
	})

	t.Run("zero overbooking is allowed", func(t *testing.T) {
		spec := validSpec()
		spec.Overbooking = 0
		require.NoError(t, spec.Validate())
	})

	t.Run("single day window is allowed", func(t *testing.T) {
		spec := validSpec()
		spec.EndDate = spec.StartDate
		require.NoError(t, spec.Validate())
	})
}

func TestRouteSpec_Route(t *testing.T) {
	spec := validSpec()

	route, err := spec.Route()

	require.NoError(t, err)
	assert.Equal(t, 590, route.FlightNumber)
	assert.Equal(t, "IAH", route.DepartureCity)
	assert.Equal(t, "YYZ", route.DestinationCity)
	assert.Equal(t, "07:20:00", route.DepartureTime)
	assert.Equal(t, "11:26:00", route.ArrivalTime)
	assert.Equal(t, 320, route.AircraftID)
	assert.Equal(t, 0.015, route.Overbooking)
	assert.Equal(t, time.Date(2024, 10, 24, 0, 0, 0, 0, time.UTC), route.StartDate)
	assert.Equal(t, time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC), route.EndDate)
	assert.Equal(t, 18, route.Days())
}
