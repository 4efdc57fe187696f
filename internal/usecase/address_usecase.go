// Package usecase defines the application service interfaces.
package usecase

import (
	"context"

	"pickup/internal/domain/entity"
	"pickup/internal/domain/matching"
)

// MatchMode selects which matching strategy serves a resolve request.
type MatchMode string

const (
	// MatchModeText is the free-text mode used by the check-in form.
	MatchModeText MatchMode = "text"
	// MatchModeNumeric is the kiosk numeric-keypad mode.
	MatchModeNumeric MatchMode = "numeric"
)

// CreateAddressInput carries the fields for a new address.
type CreateAddressInput struct {
	Street    string
	Name      string
	OtherName string
}

// UpdateAddressInput carries a field-wise address update. Nil fields are
// left unchanged.
type UpdateAddressInput struct {
	Street    *string
	Name      *string
	OtherName *string
	IsActive  *bool
}

// AddressUsecase defines the interface for address management use cases
type AddressUsecase interface {
	// ListAddresses retrieves the address list, honoring the active
	// filter policy.
	ListAddresses(ctx context.Context) ([]*entity.Address, error)

	// GetAddress retrieves a single address by ID.
	GetAddress(ctx context.Context, id string) (*entity.Address, error)

	// CreateAddress registers a new pickup address.
	CreateAddress(ctx context.Context, input CreateAddressInput) (*entity.Address, error)

	// UpdateAddress applies a field-wise update to an address.
	UpdateAddress(ctx context.Context, id string, input UpdateAddressInput) (*entity.Address, error)

	// DeactivateAddress soft-deletes an address by clearing its active flag.
	DeactivateAddress(ctx context.Context, id string) (*entity.Address, error)

	// ResolveAddress resolves an identifier against the current address
	// snapshot using the requested matching mode.
	ResolveAddress(ctx context.Context, identifier string, mode MatchMode) (matching.Result, error)

	// GeneratePickupCardQR renders the printed pickup card QR for an address.
	GeneratePickupCardQR(ctx context.Context, id string) ([]byte, error)
}
