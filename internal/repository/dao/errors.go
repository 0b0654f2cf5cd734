package dao

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vietanh2810/raffles-api/internal/domain"
)

var (
	ErrUserEmailExists     = errors.New("user email already exists")
	ErrUserNameExists      = errors.New("user name already exists")
	ErrAlreadyExclusive    = errors.New("participant already registered for this raffle")
	ErrUserNotFound        = fmt.Errorf("user: %w", domain.ErrNotFound)
	ErrSessionNotFound     = fmt.Errorf("session: %w", domain.ErrNotFound)
	ErrEventNotFound       = fmt.Errorf("event: %w", domain.ErrNotFound)
	ErrRaffleNotFound      = fmt.Errorf("raffle: %w", domain.ErrNotFound)
	ErrParticipantNotFound = fmt.Errorf("participant: %w", domain.ErrNotFound)
)

// queryError marks err as a data store failure while keeping the driver error in the chain.
func queryError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDataStore, err)
}

// isUniqueViolation reports whether err is a unique constraint failure whose constraint
// (postgres) or column list (sqlite) mentions column.
func isUniqueViolation(err error, column string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation &&
			(strings.Contains(pgErr.ConstraintName, column) || strings.Contains(pgErr.Message, column))
	}

	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, column)
}
