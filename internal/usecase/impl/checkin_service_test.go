package impl

import (
	"context"
	"testing"
	"time"

	"pickup/internal/domain/entity"
	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/domain/repository"
	mockRepo "pickup/internal/mocks/repository"
	mockSvc "pickup/internal/mocks/service"
	"pickup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkInServiceFixtures holds all test dependencies for check-in service tests.
type checkInServiceFixtures struct {
	service     usecase.CheckInUsecase
	checkInRepo *mockRepo.MockCheckInRepository
	addressRepo *mockRepo.MockAddressRepository
	clock       *mockSvc.MockClock
}

func createTestCheckInService(t *testing.T) checkInServiceFixtures {
	checkInRepo := mockRepo.NewMockCheckInRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	clock := mockSvc.NewMockClock(t)
	service := NewCheckInService(checkInRepo, addressRepo, clock, newTestConfig(false), newDiscardLogger())

	return checkInServiceFixtures{
		service:     service,
		checkInRepo: checkInRepo,
		addressRepo: addressRepo,
		clock:       clock,
	}
}

func mainStreet() *entity.Address {
	return &entity.Address{
		ID:        "addr-1",
		Street:    "123 Main St",
		Name:      "Smith Family",
		OtherName: "Bob",
		IsActive:  true,
	}
}

func oakRoad() *entity.Address {
	return &entity.Address{
		ID:       "addr-2",
		Street:   "456 Oak Rd",
		Name:     "Jones Household",
		IsActive: true,
	}
}

func TestCheckInService_Admit_Success(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	now := time.Date(2026, 8, 29, 10, 30, 0, 0, time.Local)

	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return([]*entity.Address{mainStreet(), oakRoad()}, nil)

	fx.clock.EXPECT().Now().Return(now)

	fx.checkInRepo.EXPECT().
		ListCheckIns(ctx).
		Return([]*entity.CheckIn{}, nil)

	var appended *entity.CheckIn
	fx.checkInRepo.EXPECT().
		AppendCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Run(func(_ context.Context, checkIn *entity.CheckIn) {
			appended = checkIn
		}).
		Return(nil)

	checkIn, err := fx.service.Admit(ctx, "  123 Main St  ")
	require.NoError(t, err)
	require.NotNil(t, checkIn)
	assert.Same(t, appended, checkIn)
	assert.NotEmpty(t, checkIn.ID)
	assert.Equal(t, "123 Main St", checkIn.Identifier)
	assert.Equal(t, "Smith Family", checkIn.Name)
	assert.Equal(t, "addr-1", checkIn.AddressID)
	assert.Equal(t, "123 Main St", checkIn.Address)
	assert.Equal(t, entity.StatusCheckedIn, checkIn.Status)
	assert.Equal(t, now, checkIn.CheckInTime)
	assert.Nil(t, checkIn.CheckOutTime)
	assert.Equal(t, "Street: 123 Main St\nName: Smith Family\nOther Name: Bob\n", checkIn.Notes)
}

func TestCheckInService_Admit_NotesWithoutOtherName(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	now := time.Date(2026, 8, 29, 10, 30, 0, 0, time.Local)

	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return([]*entity.Address{oakRoad()}, nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.checkInRepo.EXPECT().
		ListCheckIns(ctx).
		Return(nil, nil)
	fx.checkInRepo.EXPECT().
		AppendCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	checkIn, err := fx.service.Admit(ctx, "Jones Household")
	require.NoError(t, err)
	assert.Equal(t, "Street: 456 Oak Rd\nName: Jones Household\n", checkIn.Notes)
}

func TestCheckInService_Admit_EmptyIdentifier(t *testing.T) {
	fx := createTestCheckInService(t)

	checkIn, err := fx.service.Admit(context.Background(), "   ")
	require.Error(t, err)
	assert.Nil(t, checkIn)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyIdentifier)
}

func TestCheckInService_Admit_NoMatch(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return([]*entity.Address{mainStreet()}, nil)

	checkIn, err := fx.service.Admit(ctx, "999 Nowhere Ln")
	require.Error(t, err)
	assert.Nil(t, checkIn)
	assert.ErrorIs(t, err, domainerrors.ErrNoMatchingAddress)
}

func TestCheckInService_Admit_DuplicateSameDay(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.Local)
	existing := &entity.CheckIn{
		ID:          "chk-1",
		AddressID:   "addr-1",
		Address:     "123 Main St",
		Status:      entity.StatusCheckedIn,
		CheckInTime: time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local),
	}

	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return([]*entity.Address{mainStreet()}, nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.checkInRepo.EXPECT().
		ListCheckIns(ctx).
		Return([]*entity.CheckIn{existing}, nil)

	checkIn, err := fx.service.Admit(ctx, "123 Main St")
	require.Error(t, err)
	assert.Nil(t, checkIn)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_CHECK_IN_TODAY", appErr.ErrorCode())
	assert.Contains(t, appErr.Error(), "123 Main St")
}

// A legacy row with no address id still blocks a second admission when
// its street text matches.
func TestCheckInService_Admit_DuplicateByStreetTextOnly(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.Local)
	legacy := &entity.CheckIn{
		ID:          "chk-legacy",
		Address:     "123 main st",
		Status:      entity.StatusCheckedIn,
		CheckInTime: time.Date(2026, 8, 29, 8, 0, 0, 0, time.Local),
	}

	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return([]*entity.Address{mainStreet()}, nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.checkInRepo.EXPECT().
		ListCheckIns(ctx).
		Return([]*entity.CheckIn{legacy}, nil)

	_, err := fx.service.Admit(ctx, "123 Main St")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DUPLICATE_CHECK_IN_TODAY", appErr.ErrorCode())
}

// Cancelled and checked-out records never block a new admission, so a
// household can be re-admitted the same day after a mistaken check-in
// is cancelled.
func TestCheckInService_Admit_AfterCancelSameDay(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	now := time.Date(2026, 8, 29, 14, 0, 0, 0, time.Local)
	cancelled := &entity.CheckIn{
		ID:          "chk-1",
		AddressID:   "addr-1",
		Address:     "123 Main St",
		Status:      entity.StatusCancelled,
		CheckInTime: time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local),
	}

	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return([]*entity.Address{mainStreet()}, nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.checkInRepo.EXPECT().
		ListCheckIns(ctx).
		Return([]*entity.CheckIn{cancelled}, nil)
	fx.checkInRepo.EXPECT().
		AppendCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	checkIn, err := fx.service.Admit(ctx, "123 Main St")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCheckedIn, checkIn.Status)
}

func TestCheckInService_Admit_PreviousDayDoesNotBlock(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	now := time.Date(2026, 8, 29, 0, 5, 0, 0, time.Local)
	yesterday := &entity.CheckIn{
		ID:          "chk-1",
		AddressID:   "addr-1",
		Address:     "123 Main St",
		Status:      entity.StatusCheckedIn,
		CheckInTime: time.Date(2026, 8, 28, 23, 55, 0, 0, time.Local),
	}

	fx.addressRepo.EXPECT().
		ListAddresses(ctx).
		Return([]*entity.Address{mainStreet()}, nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.checkInRepo.EXPECT().
		ListCheckIns(ctx).
		Return([]*entity.CheckIn{yesterday}, nil)
	fx.checkInRepo.EXPECT().
		AppendCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	_, err := fx.service.Admit(ctx, "123 Main St")
	require.NoError(t, err)
}

func TestCheckInService_ListActiveCheckIns_FiltersAndSorts(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	older := &entity.CheckIn{
		ID:          "chk-1",
		Status:      entity.StatusCheckedIn,
		CheckInTime: time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local),
	}
	newer := &entity.CheckIn{
		ID:          "chk-2",
		Status:      entity.StatusCheckedIn,
		CheckInTime: time.Date(2026, 8, 29, 11, 0, 0, 0, time.Local),
	}
	done := &entity.CheckIn{
		ID:          "chk-3",
		Status:      entity.StatusCheckedOut,
		CheckInTime: time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local),
	}

	fx.checkInRepo.EXPECT().
		ListCheckIns(ctx).
		Return([]*entity.CheckIn{older, done, newer}, nil)

	active, err := fx.service.ListActiveCheckIns(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "chk-2", active[0].ID)
	assert.Equal(t, "chk-1", active[1].ID)
}

func TestCheckInService_GetCheckIn_JoinsAddress(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	checkIn := &entity.CheckIn{ID: "chk-1", AddressID: "addr-1"}
	address := mainStreet()

	fx.checkInRepo.EXPECT().
		FindCheckInByID(ctx, "chk-1").
		Return(checkIn, nil)
	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, "addr-1").
		Return(address, nil)

	joined, err := fx.service.GetCheckIn(ctx, "chk-1")
	require.NoError(t, err)
	assert.Same(t, checkIn, joined.CheckIn)
	assert.Same(t, address, joined.Address)
}

func TestCheckInService_GetCheckIn_ToleratesMissingAddress(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	checkIn := &entity.CheckIn{ID: "chk-1", AddressID: "addr-gone"}

	fx.checkInRepo.EXPECT().
		FindCheckInByID(ctx, "chk-1").
		Return(checkIn, nil)
	fx.addressRepo.EXPECT().
		FindAddressByID(ctx, "addr-gone").
		Return(nil, repository.ErrAddressNotFound)

	joined, err := fx.service.GetCheckIn(ctx, "chk-1")
	require.NoError(t, err)
	assert.Same(t, checkIn, joined.CheckIn)
	assert.Nil(t, joined.Address)
}

func TestCheckInService_GetCheckIn_NotFound(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	fx.checkInRepo.EXPECT().
		FindCheckInByID(ctx, "missing").
		Return(nil, repository.ErrCheckInNotFound)

	joined, err := fx.service.GetCheckIn(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, joined)
	assert.ErrorIs(t, err, domainerrors.ErrCheckInNotFound)
}

func TestCheckInService_CheckOut_StampsTime(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	now := time.Date(2026, 8, 29, 16, 0, 0, 0, time.Local)
	checkIn := &entity.CheckIn{
		ID:          "chk-1",
		Status:      entity.StatusCheckedIn,
		CheckInTime: time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local),
	}

	fx.checkInRepo.EXPECT().
		FindCheckInByID(ctx, "chk-1").
		Return(checkIn, nil)
	fx.clock.EXPECT().Now().Return(now)
	fx.checkInRepo.EXPECT().
		UpdateCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	updated, err := fx.service.CheckOut(ctx, "chk-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCheckedOut, updated.Status)
	require.NotNil(t, updated.CheckOutTime)
	assert.Equal(t, now, *updated.CheckOutTime)
}

func TestCheckInService_Cancel_LeavesCheckOutTimeEmpty(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	checkIn := &entity.CheckIn{ID: "chk-1", Status: entity.StatusCheckedIn}

	fx.checkInRepo.EXPECT().
		FindCheckInByID(ctx, "chk-1").
		Return(checkIn, nil)
	fx.checkInRepo.EXPECT().
		UpdateCheckIn(ctx, mock.AnythingOfType("*entity.CheckIn")).
		Return(nil)

	updated, err := fx.service.Cancel(ctx, "chk-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, updated.Status)
	assert.Nil(t, updated.CheckOutTime)
}

func TestCheckInService_Transition_FromTerminalStatus(t *testing.T) {
	tests := []struct {
		name   string
		status entity.CheckInStatus
		run    func(svc usecase.CheckInUsecase, ctx context.Context) error
	}{
		{
			name:   "checkout a cancelled record",
			status: entity.StatusCancelled,
			run: func(svc usecase.CheckInUsecase, ctx context.Context) error {
				_, err := svc.CheckOut(ctx, "chk-1")
				return err
			},
		},
		{
			name:   "cancel a checked-out record",
			status: entity.StatusCheckedOut,
			run: func(svc usecase.CheckInUsecase, ctx context.Context) error {
				_, err := svc.Cancel(ctx, "chk-1")
				return err
			},
		},
		{
			name:   "checkout twice",
			status: entity.StatusCheckedOut,
			run: func(svc usecase.CheckInUsecase, ctx context.Context) error {
				_, err := svc.CheckOut(ctx, "chk-1")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckInService(t)

			ctx := context.Background()
			fx.checkInRepo.EXPECT().
				FindCheckInByID(ctx, "chk-1").
				Return(&entity.CheckIn{ID: "chk-1", Status: tt.status}, nil)

			err := tt.run(fx.service, ctx)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
		})
	}
}

func TestCheckInService_DailyStats(t *testing.T) {
	fx := createTestCheckInService(t)

	ctx := context.Background()
	checkIns := []*entity.CheckIn{
		{ID: "a", Status: entity.StatusCheckedIn, CheckInTime: time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local)},
		{ID: "b", Status: entity.StatusCheckedIn, CheckInTime: time.Date(2026, 8, 29, 15, 0, 0, 0, time.Local)},
		{ID: "c", Status: entity.StatusCheckedIn, CheckInTime: time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)},
		{ID: "d", Status: entity.StatusCancelled, CheckInTime: time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)},
	}

	fx.checkInRepo.EXPECT().
		ListCheckIns(ctx).
		Return(checkIns, nil)

	stats, err := fx.service.DailyStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, usecase.DailyCount{Date: "2026-08-29", Count: 2}, stats[0])
	assert.Equal(t, usecase.DailyCount{Date: "2026-08-28", Count: 1}, stats[1])
}
