package repository

import (
	"context"

	"pickup/internal/domain/entity"
	"pickup/internal/errors"
)

// ErrCheckInNotFound is returned when a check-in is not found.
var ErrCheckInNotFound = errors.New("check-in not found")

// CheckInRepository defines the interface for check-in store operations.
type CheckInRepository interface {
	// ListCheckIns retrieves every check-in row, regardless of status.
	// Callers filter; the duplicate-admission scan needs to see
	// historical rows with inconsistent columns.
	ListCheckIns(ctx context.Context) ([]*entity.CheckIn, error)

	// FindCheckInByID retrieves a single check-in by its ID.
	FindCheckInByID(ctx context.Context, id string) (*entity.CheckIn, error)

	// AppendCheckIn appends a new check-in row.
	AppendCheckIn(ctx context.Context, checkIn *entity.CheckIn) error

	// UpdateCheckIn writes back the full check-in row. The row must exist.
	UpdateCheckIn(ctx context.Context, checkIn *entity.CheckIn) error
}
