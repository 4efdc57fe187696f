package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

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

type checkInService struct {
	checkInRepo  repository.CheckInRepository
	addressRepo  repository.AddressRepository
	clock        service.Clock
	textStrategy matching.Strategy
	logger       *slog.Logger

	// admitMu serializes admissions within this process. The sheet store
	// has no transactions or compare-and-swap, so without this two
	// concurrent admissions could both pass the duplicate scan against
	// their own snapshots and both append.
	admitMu sync.Mutex
}

// NewCheckInService creates a new check-in service instance
func NewCheckInService(
	checkInRepo repository.CheckInRepository,
	addressRepo repository.AddressRepository,
	clock service.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckInUsecase {
	return &checkInService{
		checkInRepo:  checkInRepo,
		addressRepo:  addressRepo,
		clock:        clock,
		textStrategy: matching.TextStrategy{Policy: matching.Policy{ActiveOnly: cfg.Matching.ActiveFilterEnabled}},
		logger:       logger,
	}
}

// Admit resolves the identifier, enforces the one-check-in-per-address-
// per-day rule, and appends a new record. Each attempt is all-or-nothing
// against a freshly fetched snapshot of store state.
func (s *checkInService) Admit(ctx context.Context, identifier string) (*entity.CheckIn, error) {
	// Blank input means "nothing entered": no match is attempted and no
	// store call is made.
	if strings.TrimSpace(identifier) == "" {
		return nil, domainerrors.ErrEmptyIdentifier
	}

	s.admitMu.Lock()
	defer s.admitMu.Unlock()

	addresses, err := s.addressRepo.ListAddresses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	result := s.textStrategy.Resolve(identifier, addresses)
	switch result.Outcome {
	case matching.OutcomeEmpty:
		return nil, domainerrors.ErrEmptyIdentifier
	case matching.OutcomeNoMatch:
		return nil, domainerrors.ErrNoMatchingAddress
	case matching.OutcomeAmbiguous:
		return nil, domainerrors.ErrAmbiguousMatch
	}
	matched := result.Address

	now := s.clock.Now()

	existing, err := s.checkInRepo.ListCheckIns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list check-ins")
	}
	for _, record := range existing {
		if record.Status == entity.StatusCheckedIn && record.OnSameLocalDay(now) && record.Matches(matched) {
			return nil, domainerrors.NewDuplicateCheckInError(matched.Street)
		}
	}

	checkIn := &entity.CheckIn{
		ID:          uuid.NewString(),
		Identifier:  strings.TrimSpace(identifier),
		Name:        matched.DisplayName(),
		AddressID:   matched.ID,
		Address:     matched.Street,
		Notes:       verificationNotes(matched),
		Status:      entity.StatusCheckedIn,
		CheckInTime: now,
	}

	if err := s.checkInRepo.AppendCheckIn(ctx, checkIn); err != nil {
		return nil, errors.Wrap(err, "failed to append check-in")
	}

	s.logger.Info("Check-in admitted",
		slog.String("checkInId", checkIn.ID),
		slog.String("street", checkIn.Address))

	return checkIn, nil
}

// verificationNotes snapshots the matched address's labels at creation
// time. The snapshot is never recomputed.
func verificationNotes(address *entity.Address) string {
	notes := fmt.Sprintf("Street: %s\n", address.Street)
	notes += fmt.Sprintf("Name: %s\n", address.Name)
	if address.OtherName != "" {
		notes += fmt.Sprintf("Other Name: %s\n", address.OtherName)
	}

	return notes
}

// ListActiveCheckIns retrieves check-ins in checked-in status, newest first.
func (s *checkInService) ListActiveCheckIns(ctx context.Context) ([]*entity.CheckIn, error) {
	checkIns, err := s.checkInRepo.ListCheckIns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list check-ins")
	}

	active := make([]*entity.CheckIn, 0, len(checkIns))
	for _, checkIn := range checkIns {
		if checkIn.Status == entity.StatusCheckedIn {
			active = append(active, checkIn)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CheckInTime.After(active[j].CheckInTime)
	})

	return active, nil
}

// GetCheckIn retrieves a check-in joined with its address.
func (s *checkInService) GetCheckIn(ctx context.Context, id string) (*usecase.CheckInWithAddress, error) {
	checkIn, err := s.checkInRepo.FindCheckInByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCheckInNotFound) {
			return nil, domainerrors.ErrCheckInNotFound
		}

		return nil, errors.Wrap(err, "failed to find check-in by ID")
	}

	joined := &usecase.CheckInWithAddress{CheckIn: checkIn}
	if checkIn.AddressID != "" {
		address, err := s.addressRepo.FindAddressByID(ctx, checkIn.AddressID)
		switch {
		case err == nil:
			joined.Address = address
		case errors.Is(err, repository.ErrAddressNotFound):
			// Historical rows may reference deleted address ids.
		default:
			return nil, errors.Wrap(err, "failed to find address by ID")
		}
	}

	return joined, nil
}

// CheckOut transitions a check-in to checked-out and stamps the check-out time.
func (s *checkInService) CheckOut(ctx context.Context, id string) (*entity.CheckIn, error) {
	return s.transition(ctx, id, entity.StatusCheckedOut)
}

// Cancel transitions a check-in to cancelled.
func (s *checkInService) Cancel(ctx context.Context, id string) (*entity.CheckIn, error) {
	return s.transition(ctx, id, entity.StatusCancelled)
}

func (s *checkInService) transition(ctx context.Context, id string, target entity.CheckInStatus) (*entity.CheckIn, error) {
	checkIn, err := s.checkInRepo.FindCheckInByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCheckInNotFound) {
			return nil, domainerrors.ErrCheckInNotFound
		}

		return nil, errors.Wrap(err, "failed to find check-in by ID")
	}

	if !checkIn.Status.CanTransitionTo(target) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			fmt.Sprintf("cannot transition from %s to %s", checkIn.Status, target))
	}

	checkIn.Status = target
	if target == entity.StatusCheckedOut {
		now := s.clock.Now()
		checkIn.CheckOutTime = &now
	}

	if err := s.checkInRepo.UpdateCheckIn(ctx, checkIn); err != nil {
		return nil, errors.Wrap(err, "failed to update check-in")
	}

	s.logger.Info("Check-in transitioned",
		slog.String("checkInId", checkIn.ID),
		slog.String("status", string(target)))

	return checkIn, nil
}

// DailyStats counts active check-ins per local calendar date, newest first.
func (s *checkInService) DailyStats(ctx context.Context) ([]usecase.DailyCount, error) {
	checkIns, err := s.checkInRepo.ListCheckIns(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list check-ins")
	}

	counts := make(map[string]int)
	for _, checkIn := range checkIns {
		if checkIn.Status != entity.StatusCheckedIn {
			continue
		}
		date := checkIn.CheckInTime.Local().Format("2006-01-02")
		counts[date]++
	}

	stats := make([]usecase.DailyCount, 0, len(counts))
	for date, count := range counts {
		stats = append(stats, usecase.DailyCount{Date: date, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date > stats[j].Date
	})

	return stats, nil
}
