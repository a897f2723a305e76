package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements create the schedule tables the seeder writes to. aircraft
// is created too but never populated here; fleet data is loaded separately.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS aircraft (
		aircraft_id INT PRIMARY KEY,
		capacity    INT NOT NULL CHECK (capacity > 0)
	)`,
	`CREATE TABLE IF NOT EXISTS flight_route (
		flight_number    INT PRIMARY KEY,
		departure_city   VARCHAR(8)    NOT NULL,
		destination_city VARCHAR(8)    NOT NULL,
		departure_time   TIME          NOT NULL,
		arrival_time     TIME          NOT NULL,
		aircraft_id      INT           NOT NULL REFERENCES aircraft (aircraft_id),
		overbooking      NUMERIC(6, 4) NOT NULL CHECK (overbooking >= 0),
		start_date       DATE          NOT NULL,
		end_date         DATE          NOT NULL,
		CHECK (start_date <= end_date)
	)`,
	`CREATE TABLE IF NOT EXISTS flight (
		flight_id         BIGSERIAL PRIMARY KEY,
		flight_number     INT  NOT NULL REFERENCES flight_route (flight_number),
		flight_date       DATE NOT NULL,
		available_tickets INT  NOT NULL,
		version           INT  NOT NULL DEFAULT 1,
		UNIQUE (flight_number, flight_date)
	)`,
	`CREATE TABLE IF NOT EXISTS unavailable_seat_info (
		flight_id   BIGINT      NOT NULL REFERENCES flight (flight_id),
		seat_number INT         NOT NULL,
		seat_status VARCHAR(16) NOT NULL DEFAULT 'AVAILABLE',
		version     INT         NOT NULL DEFAULT 1,
		PRIMARY KEY (flight_id, seat_number)
	)`,
}

// RunMigrations ensures the schedule tables exist. Statements are idempotent,
// re-running against a populated database is safe.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
