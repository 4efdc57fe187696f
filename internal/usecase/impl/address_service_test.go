package impl

import (
	"context"
	"testing"
	"time"

	"pickup/internal/domain/entity"
	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/domain/matching"
	"pickup/internal/domain/repository"
	mockRepo "pickup/internal/mocks/repository"
	mockSvc "pickup/internal/mocks/service"
	"pickup/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	addressRepo *mockRepo.MockAddressRepository
	qrcode      *mockSvc.MockQRCodeService
	clock       *mockSvc.MockClock
}

func createTestAddressService(t *testing.T, activeFilterEnabled bool) addressServiceFixtures {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	clock := mockSvc.NewMockClock(t)
	service := NewAddressService(addressRepo, qrcode, clock, newTestConfig(activeFilterEnabled), newDiscardLogger())

	return addressServiceFixtures{
		service:     service,
		addressRepo: addressRepo,
		qrcode:      qrcode,
		clock:       clock,
	}
}

func TestAddressService_ListAddresses_FilterDisabled(t *testing.T) {
	fx := createTestAddressService(t, false)

	ctx := context.Background()
	addresses := []*entity.Address{
		{ID: "addr-1", Street: "123 Main St", IsActive: true},
		{ID: "addr-2", Street: "456 Oak Rd", IsActive: false},
	}

	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return(addresses, nil)

	listed, err := fx.service.ListAddresses(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestAddressService_ListAddresses_FilterEnabled(t *testing.T) {
	fx := createTestAddressService(t, true)

	ctx := context.Background()
	addresses := []*entity.Address{
		{ID: "addr-1", Street: "123 Main St", IsActive: true},
		{ID: "addr-2", Street: "456 Oak Rd", IsActive: false},
	}

	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return(addresses, nil)

	listed, err := fx.service.ListAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "addr-1", listed[0].ID)
}

func TestAddressService_GetAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t, false)

	ctx := context.Background()
	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, "missing").
		Return(nil, repository.ErrAddressNotFound)

	address, err := fx.service.GetAddress(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, address)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_CreateAddress(t *testing.T) {
	fx := createTestAddressService(t, false)

	ctx := context.Background()
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)

	fx.clock.EXPECT().Now().Return(now)
	fx.addressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, usecase.CreateAddressInput{
		Street:    "789 Pine Ave",
		Name:      "Garcia Family",
		OtherName: "Maria",
	})
	require.NoError(t, err)
	require.NotNil(t, address)
	_, parseErr := uuid.Parse(address.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "789 Pine Ave", address.Street)
	assert.Equal(t, "Garcia Family", address.Name)
	assert.Equal(t, "Maria", address.OtherName)
	assert.True(t, address.IsActive)
	assert.Equal(t, now, address.CreatedAt)
	assert.Equal(t, now, address.UpdatedAt)
}

func TestAddressService_UpdateAddress_PartialFields(t *testing.T) {
	fx := createTestAddressService(t, false)

	ctx := context.Background()
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local)
	updatedAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)
	existing := &entity.Address{
		ID:        "addr-1",
		Street:    "123 Main St",
		Name:      "Smith Family",
		OtherName: "Bob",
		IsActive:  true,
		CreatedAt: created,
		UpdatedAt: created,
	}

	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, "addr-1").
		Return(existing, nil)
	fx.clock.EXPECT().Now().Return(updatedAt)
	fx.addressRepo.EXPECT().
		UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	newName := "Smith-Jones Family"
	address, err := fx.service.UpdateAddress(ctx, "addr-1", usecase.UpdateAddressInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Smith-Jones Family", address.Name)
	assert.Equal(t, "123 Main St", address.Street)
	assert.Equal(t, "Bob", address.OtherName)
	assert.True(t, address.IsActive)
	assert.Equal(t, created, address.CreatedAt)
	assert.Equal(t, updatedAt, address.UpdatedAt)
}

func TestAddressService_DeactivateAddress(t *testing.T) {
	fx := createTestAddressService(t, false)

	ctx := context.Background()
	existing := &entity.Address{ID: "addr-1", Street: "123 Main St", IsActive: true}

	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, "addr-1").
		Return(existing, nil)
	fx.clock.EXPECT().Now().Return(time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local))
	fx.addressRepo.EXPECT().
		UpdateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil)

	address, err := fx.service.DeactivateAddress(ctx, "addr-1")
	require.NoError(t, err)
	assert.False(t, address.IsActive)
}

func TestAddressService_ResolveAddress_TextMode(t *testing.T) {
	fx := createTestAddressService(t, false)

	ctx := context.Background()
	addresses := []*entity.Address{
		{ID: "addr-1", Street: "123 Main St", Name: "Smith Family", IsActive: true},
	}

	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return(addresses, nil)

	result, err := fx.service.ResolveAddress(ctx, "smith family", usecase.MatchModeText)
	require.NoError(t, err)
	assert.Equal(t, matching.OutcomeUnique, result.Outcome)
	assert.Equal(t, "addr-1", result.Address.ID)
}

func TestAddressService_ResolveAddress_DefaultsToText(t *testing.T) {
	fx := createTestAddressService(t, false)

	ctx := context.Background()
	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return([]*entity.Address{{ID: "addr-1", Street: "123 Main St", IsActive: true}}, nil)

	result, err := fx.service.ResolveAddress(ctx, "123 Main St", "")
	require.NoError(t, err)
	assert.Equal(t, matching.OutcomeUnique, result.Outcome)
}

func TestAddressService_ResolveAddress_NumericAmbiguous(t *testing.T) {
	fx := createTestAddressService(t, false)

	ctx := context.Background()
	addresses := []*entity.Address{
		{ID: "addr-1", Street: "123 Main St", IsActive: true},
		{ID: "addr-2", Street: "123 Oak Rd", IsActive: true},
	}

	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return(addresses, nil)

	result, err := fx.service.ResolveAddress(ctx, "123", usecase.MatchModeNumeric)
	require.NoError(t, err)
	assert.Equal(t, matching.OutcomeAmbiguous, result.Outcome)
	assert.Len(t, result.Candidates, 2)
}

func TestAddressService_ResolveAddress_UnknownMode(t *testing.T) {
	fx := createTestAddressService(t, false)

	ctx := context.Background()
	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return([]*entity.Address{}, nil)

	_, err := fx.service.ResolveAddress(ctx, "123", usecase.MatchMode("fuzzy"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressService_GeneratePickupCardQR(t *testing.T) {
	fx := createTestAddressService(t, false)

	ctx := context.Background()
	address := &entity.Address{ID: "addr-1", Street: "123 Main St"}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, "addr-1").
		Return(address, nil)
	fx.qrcode.EXPECT().
		GeneratePickupCardQR("123", "123 Main St").
		Return(png, nil)

	got, err := fx.service.GeneratePickupCardQR(ctx, "addr-1")
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestAddressService_GeneratePickupCardQR_NoKioskCode(t *testing.T) {
	fx := createTestAddressService(t, false)

	ctx := context.Background()
	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, "addr-1").
		Return(&entity.Address{ID: "addr-1", Street: "   "}, nil)

	png, err := fx.service.GeneratePickupCardQR(ctx, "addr-1")
	require.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
