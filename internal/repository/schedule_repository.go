package repository

import (
	"context"

	"flight-schedule-seeder/internal/model"
	apperrors "flight-schedule-seeder/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleRepository interface {
	FindRoute(ctx context.Context, flightNumber int) (*model.FlightRoute, error)

	// Transaction methods: the service owns the transaction, every write of
	// one route goes through the same tx.
	InsertRoute(ctx context.Context, tx pgx.Tx, route *model.FlightRoute) error
	InsertFlight(ctx context.Context, tx pgx.Tx, flight *model.Flight) (*model.Flight, error)
	InsertSeats(ctx context.Context, tx pgx.Tx, flightID int64, capacity int) (int64, error)
}

type ScheduleRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) ScheduleRepository {
	return &ScheduleRepositoryImpl{
		pool: pool,
	}
}

func (r *ScheduleRepositoryImpl) FindRoute(ctx context.Context, flightNumber int) (*model.FlightRoute, error) {
	query := `
		SELECT flight_number, departure_city, destination_city,
				departure_time::text, arrival_time::text,
				aircraft_id, overbooking, start_date, end_date
		FROM flight_route
		WHERE flight_number = $1
	`

	var route model.FlightRoute
	err := r.pool.QueryRow(ctx, query, flightNumber).Scan(
		&route.FlightNumber,
		&route.DepartureCity,
		&route.DestinationCity,
		&route.DepartureTime,
		&route.ArrivalTime,
		&route.AircraftID,
		&route.Overbooking,
		&route.StartDate,
		&route.EndDate,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrRouteNotFound
		}
		return nil, err
	}

	return &route, nil
}

func (r *ScheduleRepositoryImpl) InsertRoute(ctx context.Context, tx pgx.Tx, route *model.FlightRoute) error {
	query := `
		INSERT INTO flight_route (
		flight_number, departure_city, destination_city, departure_time,
		arrival_time, aircraft_id, overbooking, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := tx.Exec(ctx, query,
		route.FlightNumber, route.DepartureCity, route.DestinationCity,
		route.DepartureTime, route.ArrivalTime, route.AircraftID,
		route.Overbooking, route.StartDate, route.EndDate,
	)

	return err
}

func (r *ScheduleRepositoryImpl) InsertFlight(ctx context.Context, tx pgx.Tx, flight *model.Flight) (*model.Flight, error) {
	query := `
		INSERT INTO flight (flight_number, flight_date, available_tickets, version)
		VALUES ($1, $2, $3, $4)
		RETURNING flight_id
	`

	err := tx.QueryRow(ctx, query,
		flight.FlightNumber, flight.FlightDate, flight.AvailableTickets, flight.Version,
	).Scan(&flight.FlightID)

	if err != nil {
		return nil, err
	}

	return flight, nil
}

// InsertSeats bulk-inserts one AVAILABLE seat row per physical seat, numbered
// 1..capacity, using the COPY protocol.
func (r *ScheduleRepositoryImpl) InsertSeats(ctx context.Context, tx pgx.Tx, flightID int64, capacity int) (int64, error) {
	rows := make([][]interface{}, 0, capacity)
	for seat := 1; seat <= capacity; seat++ {
		rows = append(rows, []interface{}{flightID, seat, string(model.SeatStatusAvailable)})
	}

	return tx.CopyFrom(ctx,
		pgx.Identifier{"unavailable_seat_info"},
		[]string{"flight_id", "seat_number", "seat_status"},
		pgx.CopyFromRows(rows),
	)
}
