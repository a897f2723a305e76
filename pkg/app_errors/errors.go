package apperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrAircraftNotFound    = errors.New("aircraft not found")
	ErrRouteNotFound       = errors.New("flight route not found")
	ErrFlightNotFound      = errors.New("flight not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrConnection          = errors.New("storage connection error")
	ErrInvalidInput        = errors.New("invalid input")
)

// Postgres error class prefixes
const (
	pgClassConnectionException = "08"
	pgClassIntegrityViolation  = "23"
)

// Classify maps low-level storage errors onto the package sentinels so callers
// can branch with errors.Is without importing pgx. Sentinels pass through
// unchanged; errors that fit no category are returned as-is.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range []error{
		ErrAircraftNotFound,
		ErrRouteNotFound,
		ErrFlightNotFound,
		ErrConstraintViolation,
		ErrConnection,
		ErrInvalidInput,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, pgClassIntegrityViolation):
			return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.Message)
		case strings.HasPrefix(pgErr.Code, pgClassConnectionException):
			return fmt.Errorf("%w: %s", ErrConnection, pgErr.Message)
		}
		return err
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return err
}
