package cache

import (
	"context"
	"fmt"
	"strconv"

	apperrors "flight-schedule-seeder/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// FlightInventoryWarmer pushes freshly seeded ticket counts into Redis so the
// booking system's hot path starts from a warm cache. Strictly post-commit
// and best-effort: a failed warm-up never fails a seed.
type FlightInventoryWarmer interface {
	WarmUpFlight(ctx context.Context, flightID int64, availableTickets int) error
	GetAvailableTickets(ctx context.Context, flightID int64) (int, error)
}

type FlightInventoryWarmerImpl struct {
	client *redis.Client
}

func NewFlightInventoryWarmer(client *redis.Client) FlightInventoryWarmer {
	return &FlightInventoryWarmerImpl{
		client: client,
	}
}

func (w *FlightInventoryWarmerImpl) getInfoKey(flightID int64) string {
	return fmt.Sprintf("flight:%d:info", flightID)
}

func (w *FlightInventoryWarmerImpl) WarmUpFlight(ctx context.Context, flightID int64, availableTickets int) error {
	key := w.getInfoKey(flightID)
	return w.client.HSet(ctx, key, map[string]interface{}{
		"available_tickets": availableTickets,
		"version":           1,
	}).Err()
}

func (w *FlightInventoryWarmerImpl) GetAvailableTickets(ctx context.Context, flightID int64) (int, error) {
	key := w.getInfoKey(flightID)
	val, err := w.client.HGet(ctx, key, "available_tickets").Result()
	if err == redis.Nil {
		return -1, apperrors.ErrFlightNotFound
	}
	if err != nil {
		return -1, err
	}
	return strconv.Atoi(val)
}
