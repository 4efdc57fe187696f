// Package impl contains the application service implementations.
package impl

import (
	"context"
	"log/slog"

	"pickup/config"
	"pickup/internal/domain/entity"
	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/domain/matching"
	"pickup/internal/domain/repository"
	"pickup/internal/domain/service"
	"pickup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type addressService struct {
	addressRepo     repository.AddressRepository
	qrcodeService   service.QRCodeService
	clock           service.Clock
	textStrategy    matching.Strategy
	numericStrategy matching.Strategy
	activeOnly      bool
	logger          *slog.Logger
}

// NewAddressService creates a new address service instance
func NewAddressService(
	addressRepo repository.AddressRepository,
	qrcodeService service.QRCodeService,
	clock service.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AddressUsecase {
	policy := matching.Policy{ActiveOnly: cfg.Matching.ActiveFilterEnabled}

	return &addressService{
		addressRepo:     addressRepo,
		qrcodeService:   qrcodeService,
		clock:           clock,
		textStrategy:    matching.TextStrategy{Policy: policy},
		numericStrategy: matching.NumericPrefixStrategy{Policy: policy},
		activeOnly:      cfg.Matching.ActiveFilterEnabled,
		logger:          logger,
	}
}

// ListAddresses retrieves the address list, honoring the active filter policy.
func (s *addressService) ListAddresses(ctx context.Context) ([]*entity.Address, error) {
	addresses, err := s.addressRepo.ListAddresses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	if !s.activeOnly {
		return addresses, nil
	}

	active := make([]*entity.Address, 0, len(addresses))
	for _, address := range addresses {
		if address.IsActive {
			active = append(active, address)
		}
	}

	return active, nil
}

// GetAddress retrieves a single address by ID.
func (s *addressService) GetAddress(ctx context.Context, id string) (*entity.Address, error) {
	address, err := s.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return address, nil
}

// CreateAddress registers a new pickup address.
func (s *addressService) CreateAddress(ctx context.Context, input usecase.CreateAddressInput) (*entity.Address, error) {
	now := s.clock.Now()
	address := &entity.Address{
		ID:        uuid.NewString(),
		Street:    input.Street,
		Name:      input.Name,
		OtherName: input.OtherName,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, domainerrors.ErrAddressCreationFailed.WithDetails(err.Error())
	}

	s.logger.Info("Address created",
		slog.String("addressId", address.ID),
		slog.String("street", address.Street))

	return address, nil
}

// UpdateAddress applies a field-wise update to an address.
func (s *addressService) UpdateAddress(ctx context.Context, id string, input usecase.UpdateAddressInput) (*entity.Address, error) {
	address, err := s.GetAddress(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Street != nil {
		address.Street = *input.Street
	}
	if input.Name != nil {
		address.Name = *input.Name
	}
	if input.OtherName != nil {
		address.OtherName = *input.OtherName
	}
	if input.IsActive != nil {
		address.IsActive = *input.IsActive
	}
	address.UpdatedAt = s.clock.Now()

	if err := s.addressRepo.UpdateAddress(ctx, address); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// DeactivateAddress soft-deletes an address by clearing its active flag.
func (s *addressService) DeactivateAddress(ctx context.Context, id string) (*entity.Address, error) {
	inactive := false

	return s.UpdateAddress(ctx, id, usecase.UpdateAddressInput{IsActive: &inactive})
}

// ResolveAddress resolves an identifier against the current address snapshot.
func (s *addressService) ResolveAddress(ctx context.Context, identifier string, mode usecase.MatchMode) (matching.Result, error) {
	addresses, err := s.addressRepo.ListAddresses(ctx)
	if err != nil {
		return matching.Result{}, errors.Wrap(err, "failed to list addresses")
	}

	switch mode {
	case usecase.MatchModeNumeric:
		return s.numericStrategy.Resolve(identifier, addresses), nil
	case usecase.MatchModeText, "":
		return s.textStrategy.Resolve(identifier, addresses), nil
	default:
		return matching.Result{}, domainerrors.ErrValidationFailed.WithDetails("unknown match mode: " + string(mode))
	}
}

// GeneratePickupCardQR renders the printed pickup card QR for an address.
func (s *addressService) GeneratePickupCardQR(ctx context.Context, id string) ([]byte, error) {
	address, err := s.GetAddress(ctx, id)
	if err != nil {
		return nil, err
	}

	code := address.KioskCode()
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address has no kiosk code")
	}

	png, err := s.qrcodeService.GeneratePickupCardQR(code, address.Street)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup card QR")
	}

	return png, nil
}
