// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pickup/internal/domain/entity"
	"pickup/internal/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related store operations.
// Every read fetches a fresh snapshot; the store offers no caching,
// locking, or transactional guarantees.
type AddressRepository interface {
	// ListAddresses retrieves the current list of addresses.
	ListAddresses(ctx context.Context) ([]*entity.Address, error)

	// FindAddressByID retrieves a single address by its ID.
	FindAddressByID(ctx context.Context, id string) (*entity.Address, error)

	// CreateAddress persists a new address.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// UpdateAddress writes back the full address row. The row must exist.
	UpdateAddress(ctx context.Context, address *entity.Address) error
}
