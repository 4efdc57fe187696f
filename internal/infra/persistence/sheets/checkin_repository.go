package sheets

import (
	"context"

	"pickup/config"
	"pickup/internal/domain/entity"
	"pickup/internal/domain/repository"
)

// checkInRepository implements repository.CheckInRepository over the
// CheckIns worksheet.
type checkInRepository struct {
	client *Client
	sheet  string
}

// NewCheckInRepository is the constructor for checkInRepository.
func NewCheckInRepository(client *Client, cfg *config.Config) repository.CheckInRepository {
	return &checkInRepository{
		client: client,
		sheet:  cfg.Sheets.CheckInSheet,
	}
}

// ListCheckIns retrieves a fresh snapshot of every check-in row.
func (repo *checkInRepository) ListCheckIns(ctx context.Context) ([]*entity.CheckIn, error) {
	rows, err := repo.client.values(ctx, dataRange(repo.sheet, checkInLastColumn))
	if err != nil {
		return nil, err
	}

	checkIns := make([]*entity.CheckIn, 0, len(rows))
	for _, row := range rows {
		checkIn, err := checkInFromRow(row)
		if err != nil {
			return nil, err
		}
		if checkIn.ID == "" {
			continue
		}
		checkIns = append(checkIns, checkIn)
	}

	return checkIns, nil
}

// FindCheckInByID retrieves a single check-in by its ID.
func (repo *checkInRepository) FindCheckInByID(ctx context.Context, id string) (*entity.CheckIn, error) {
	row, _, found, err := repo.client.findRowByID(ctx, repo.sheet, checkInLastColumn, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrCheckInNotFound
	}

	return checkInFromRow(row)
}

// AppendCheckIn appends a new check-in row.
func (repo *checkInRepository) AppendCheckIn(ctx context.Context, checkIn *entity.CheckIn) error {
	return repo.client.appendRow(ctx, repo.sheet, checkInToRow(checkIn))
}

// UpdateCheckIn overwrites the row holding the check-in in place.
func (repo *checkInRepository) UpdateCheckIn(ctx context.Context, checkIn *entity.CheckIn) error {
	_, rowNum, found, err := repo.client.findRowByID(ctx, repo.sheet, checkInLastColumn, checkIn.ID)
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrCheckInNotFound
	}

	return repo.client.updateRow(ctx, repo.sheet, rowNum, checkInLastColumn, checkInToRow(checkIn))
}
