package routespec

import (
	"fmt"
	"os"
	"time"

	"flight-schedule-seeder/internal/model"
	apperrors "flight-schedule-seeder/pkg/app_errors"

	"gopkg.in/yaml.v3"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// RouteSpec is one entry of a route-spec file: the nine route-level fields
// in their wire form, before any parsing.
type RouteSpec struct {
	FlightNumber    int     `yaml:"flight_number"`
	DepartureCity   string  `yaml:"departure_city"`
	DestinationCity string  `yaml:"destination_city"`
	DepartureTime   string  `yaml:"departure_time"`
	ArrivalTime     string  `yaml:"arrival_time"`
	AircraftID      int     `yaml:"aircraft_id"`
	Overbooking     float64 `yaml:"overbooking"`
	StartDate       string  `yaml:"start_date"`
	EndDate         string  `yaml:"end_date"`
}

type specFile struct {
	Routes []RouteSpec `yaml:"routes"`
}

// Load reads and validates a YAML route-spec file.
func Load(path string) ([]RouteSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read route spec file: %w", err)
	}

	var f specFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse route spec file: %w", err)
	}

	if len(f.Routes) == 0 {
		return nil, fmt.Errorf("%w: route spec file defines no routes", apperrors.ErrInvalidInput)
	}

	for i, spec := range f.Routes {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("route %d (flight %d): %w", i, spec.FlightNumber, err)
		}
	}

	return f.Routes, nil
}

// Validate checks every field without touching storage.
func (s RouteSpec) Validate() error {
	if s.FlightNumber <= 0 {
		return fmt.Errorf("%w: flight_number must be positive", apperrors.ErrInvalidInput)
	}
	if s.DepartureCity == "" || s.DestinationCity == "" {
		return fmt.Errorf("%w: departure_city and destination_city are required", apperrors.ErrInvalidInput)
	}
	if s.AircraftID <= 0 {
		return fmt.Errorf("%w: aircraft_id must be positive", apperrors.ErrInvalidInput)
	}
	if s.Overbooking < 0 {
		return fmt.Errorf("%w: overbooking must not be negative", apperrors.ErrInvalidInput)
	}
	if _, err := time.Parse(timeLayout, s.DepartureTime); err != nil {
		return fmt.Errorf("%w: departure_time %q is not HH:MM:SS", apperrors.ErrInvalidInput, s.DepartureTime)
	}
	if _, err := time.Parse(timeLayout, s.ArrivalTime); err != nil {
		return fmt.Errorf("%w: arrival_time %q is not HH:MM:SS", apperrors.ErrInvalidInput, s.ArrivalTime)
	}
	start, err := time.Parse(dateLayout, s.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start_date %q is not YYYY-MM-DD", apperrors.ErrInvalidInput, s.StartDate)
	}
	end, err := time.Parse(dateLayout, s.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end_date %q is not YYYY-MM-DD", apperrors.ErrInvalidInput, s.EndDate)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end_date %s is before start_date %s", apperrors.ErrInvalidInput, s.EndDate, s.StartDate)
	}
	return nil
}

// Route converts the spec into the domain model, parsing the date fields.
func (s RouteSpec) Route() (*model.FlightRoute, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse(dateLayout, s.StartDate)
	end, _ := time.Parse(dateLayout, s.EndDate)

	return &model.FlightRoute{
		FlightNumber:    s.FlightNumber,
		DepartureCity:   s.DepartureCity,
		DestinationCity: s.DestinationCity,
		DepartureTime:   s.DepartureTime,
		ArrivalTime:     s.ArrivalTime,
		AircraftID:      s.AircraftID,
		Overbooking:     s.Overbooking,
		StartDate:       start,
		EndDate:         end,
	}, nil
}
