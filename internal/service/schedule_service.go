package service

import (
	"context"

	"flight-schedule-seeder/internal/cache"
	"flight-schedule-seeder/internal/model"
	"flight-schedule-seeder/internal/repository"
	"flight-schedule-seeder/internal/routespec"
	apperrors "flight-schedule-seeder/pkg/app_errors"
	"flight-schedule-seeder/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TxBeginner opens the per-route transaction. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// MaterializeResult summarizes one committed route.
type MaterializeResult struct {
	Route            *model.FlightRoute
	Capacity         int
	AvailableTickets int
	FlightsCreated   int
	SeatsCreated     int64
}

type ScheduleService interface {
	// MaterializeRoute persists the route row, one flight per calendar day in
	// the validity window, and one AVAILABLE seat row per physical seat per
	// flight. All writes happen in a single transaction: the route either
	// fully materializes or leaves no trace.
	MaterializeRoute(ctx context.Context, spec routespec.RouteSpec) (*MaterializeResult, error)
}

type ScheduleServiceImpl struct {
	pool               TxBeginner
	aircraftRepository repository.AircraftRepository
	scheduleRepository repository.ScheduleRepository
	inventoryWarmer    cache.FlightInventoryWarmer
	log                *zap.Logger
}

// NewScheduleService wires the materializer. inventoryWarmer may be nil, in
// which case the post-commit cache warm-up is skipped.
func NewScheduleService(
	pool TxBeginner,
	aircraftRepository repository.AircraftRepository,
	scheduleRepository repository.ScheduleRepository,
	inventoryWarmer cache.FlightInventoryWarmer,
) ScheduleService {
	return &ScheduleServiceImpl{
		pool:               pool,
		aircraftRepository: aircraftRepository,
		scheduleRepository: scheduleRepository,
		inventoryWarmer:    inventoryWarmer,
		log:                logger.WithComponent("schedule_service"),
	}
}

func (s *ScheduleServiceImpl) MaterializeRoute(ctx context.Context, spec routespec.RouteSpec) (*MaterializeResult, error) {
	route, err := spec.Route()
	if err != nil {
		return nil, err
	}

	log := s.log.With(
		zap.String("run_id", uuid.NewString()),
		zap.Int("flight_number", route.FlightNumber),
	)

	// The capacity lookup must fail before any write starts.
	aircraft, err := s.aircraftRepository.FindByID(ctx, route.AircraftID)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	availableTickets := route.AvailableTickets(aircraft.Capacity)

	log.Info("materializing route",
		zap.String("departure_city", route.DepartureCity),
		zap.String("destination_city", route.DestinationCity),
		zap.String("start_date", spec.StartDate),
		zap.String("end_date", spec.EndDate),
		zap.Int("capacity", aircraft.Capacity),
		zap.Int("available_tickets", availableTickets),
	)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	defer tx.Rollback(ctx)

	if err := s.scheduleRepository.InsertRoute(ctx, tx, route); err != nil {
		return nil, apperrors.Classify(err)
	}

	result := &MaterializeResult{
		Route:            route,
		Capacity:         aircraft.Capacity,
		AvailableTickets: availableTickets,
	}

	flights := make([]*model.Flight, 0, route.Days())
	for _, date := range route.Dates() {
		flight := &model.Flight{
			FlightNumber:     route.FlightNumber,
			FlightDate:       date,
			AvailableTickets: availableTickets,
			Version:          1,
		}

		flight, err = s.scheduleRepository.InsertFlight(ctx, tx, flight)
		if err != nil {
			log.Error("failed to insert flight",
				zap.Time("flight_date", date),
				zap.Error(err),
			)
			return nil, apperrors.Classify(err)
		}

		seats, err := s.scheduleRepository.InsertSeats(ctx, tx, flight.FlightID, aircraft.Capacity)
		if err != nil {
			log.Error("failed to insert seats",
				zap.Int64("flight_id", flight.FlightID),
				zap.Error(err),
			)
			return nil, apperrors.Classify(err)
		}

		result.FlightsCreated++
		result.SeatsCreated += seats
		flights = append(flights, flight)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperrors.Classify(err)
	}

	// warm-up is best-effort, the committed rows are the source of truth
	if s.inventoryWarmer != nil {
		for _, flight := range flights {
			if err := s.inventoryWarmer.WarmUpFlight(ctx, flight.FlightID, flight.AvailableTickets); err != nil {
				log.Warn("inventory warm-up failed",
					zap.Int64("flight_id", flight.FlightID),
					zap.Error(err),
				)
			}
		}
	}

	log.Info("route materialized",
		zap.Int("flights_created", result.FlightsCreated),
		zap.Int64("seats_created", result.SeatsCreated),
	)

	return result, nil
}
