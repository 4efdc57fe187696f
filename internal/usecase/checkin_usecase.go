package usecase

import (
	"context"

	"pickup/internal/domain/entity"
)

// CheckInWithAddress bundles a check-in with its resolved address. Address
// is nil when the referenced address row no longer exists.
type CheckInWithAddress struct {
	CheckIn *entity.CheckIn `json:"checkIn"`
	Address *entity.Address `json:"address,omitempty"`
}

// DailyCount is the number of active check-ins on one local calendar date.
type DailyCount struct {
	Date  string `json:"date"` // Local date, formatted 2006-01-02.
	Count int    `json:"count"`
}

// CheckInUsecase defines the interface for check-in admission and
// lifecycle use cases.
type CheckInUsecase interface {
	// ListActiveCheckIns retrieves check-ins in checked-in status,
	// newest first.
	ListActiveCheckIns(ctx context.Context) ([]*entity.CheckIn, error)

	// GetCheckIn retrieves a check-in joined with its address.
	GetCheckIn(ctx context.Context, id string) (*CheckInWithAddress, error)

	// Admit resolves the identifier to a unique address, enforces the
	// one-check-in-per-address-per-day rule, and appends a new record.
	Admit(ctx context.Context, identifier string) (*entity.CheckIn, error)

	// CheckOut transitions a check-in to checked-out and stamps the
	// check-out time.
	CheckOut(ctx context.Context, id string) (*entity.CheckIn, error)

	// Cancel transitions a check-in to cancelled.
	Cancel(ctx context.Context, id string) (*entity.CheckIn, error)

	// DailyStats counts active check-ins per local calendar date,
	// newest date first.
	DailyStats(ctx context.Context) ([]DailyCount, error)
}
