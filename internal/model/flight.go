package model

import (
	"math"
	"time"
)

// FlightRoute is the template for a recurring flight: one concrete Flight is
// materialized per calendar day in [StartDate, EndDate].
type FlightRoute struct {
	FlightNumber    int       `json:"flight_number" db:"flight_number"`
	DepartureCity   string    `json:"departure_city" db:"departure_city"`
	DestinationCity string    `json:"destination_city" db:"destination_city"`
	DepartureTime   string    `json:"departure_time" db:"departure_time"`
	ArrivalTime     string    `json:"arrival_time" db:"arrival_time"`
	AircraftID      int       `json:"aircraft_id" db:"aircraft_id"`
	Overbooking     float64   `json:"overbooking" db:"overbooking"`
	StartDate       time.Time `json:"start_date" db:"start_date"`
	EndDate         time.Time `json:"end_date" db:"end_date"`
}

// AvailableTickets returns ceil(capacity * (1 + overbooking)). The value is
// fixed for the whole route and reused for every flight under it.
func (r *FlightRoute) AvailableTickets(capacity int) int {
	return int(math.Ceil(float64(capacity) * (1 + r.Overbooking)))
}

// Days returns the number of calendar days in the validity window, both
// endpoints included.
func (r *FlightRoute) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// Dates returns every calendar date of the validity window in ascending
// order.
func (r *FlightRoute) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Days())
	for d := r.StartDate; !d.After(r.EndDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Flight is one operation of a route on a specific calendar date. Version is
// the optimistic-concurrency token consumed by the booking system; the seeder
// always writes 1.
type Flight struct {
	FlightID         int64     `json:"flight_id" db:"flight_id"`
	FlightNumber     int       `json:"flight_number" db:"flight_number"`
	FlightDate       time.Time `json:"flight_date" db:"flight_date"`
	AvailableTickets int       `json:"available_tickets" db:"available_tickets"`
	Version          int       `json:"version" db:"version"`
}

// SeatStatus is an open enumeration; the seeder only ever writes
// SeatStatusAvailable, the other values belong to the booking system.
type SeatStatus string

const (
	SeatStatusAvailable   SeatStatus = "AVAILABLE"
	SeatStatusBooked      SeatStatus = "BOOKED"
	SeatStatusUnavailable SeatStatus = "UNAVAILABLE"
)

// SeatInventory is the per-seat availability record for one flight, keyed by
// (flight_id, seat_number). Seat numbers run 1..capacity with no gaps.
type SeatInventory struct {
	FlightID   int64      `json:"flight_id" db:"flight_id"`
	SeatNumber int        `json:"seat_number" db:"seat_number"`
	SeatStatus SeatStatus `json:"seat_status" db:"seat_status"`
}
