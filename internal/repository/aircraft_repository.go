package repository

import (
	"context"

	"flight-schedule-seeder/internal/model"
	apperrors "flight-schedule-seeder/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AircraftRepository interface {
	FindByID(ctx context.Context, id int) (*model.Aircraft, error)
}

type AircraftRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAircraftRepository(pool *pgxpool.Pool) AircraftRepository {
	return &AircraftRepositoryImpl{
		pool: pool,
	}
}

func (r *AircraftRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Aircraft, error) {
	query := `
		SELECT aircraft_id, capacity
		FROM aircraft
		WHERE aircraft_id = $1
	`

	var aircraft model.Aircraft
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&aircraft.AircraftID,
		&aircraft.Capacity,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAircraftNotFound
		}
		return nil, err
	}

	return &aircraft, nil
}
