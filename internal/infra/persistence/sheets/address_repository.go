package sheets

import (
	"context"

	"pickup/config"
	"pickup/internal/domain/entity"
	"pickup/internal/domain/repository"
)

// addressRepository implements repository.AddressRepository over the
// Addresses worksheet.
type addressRepository struct {
	client *Client
	sheet  string
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(client *Client, cfg *config.Config) repository.AddressRepository {
	return &addressRepository{
		client: client,
		sheet:  cfg.Sheets.AddressSheet,
	}
}

// ListAddresses retrieves a fresh snapshot of every address row.
func (repo *addressRepository) ListAddresses(ctx context.Context) ([]*entity.Address, error) {
	rows, err := repo.client.values(ctx, dataRange(repo.sheet, addressLastColumn))
	if err != nil {
		return nil, err
	}

	addresses := make([]*entity.Address, 0, len(rows))
	for _, row := range rows {
		address, err := addressFromRow(row)
		if err != nil {
			return nil, err
		}
		if address.ID == "" {
			// Blank padding rows at the bottom of the sheet.
			continue
		}
		addresses = append(addresses, address)
	}

	return addresses, nil
}

// FindAddressByID retrieves a single address by its ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id string) (*entity.Address, error) {
	row, _, found, err := repo.client.findRowByID(ctx, repo.sheet, addressLastColumn, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrAddressNotFound
	}

	return addressFromRow(row)
}

// CreateAddress appends a new address row.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	return repo.client.appendRow(ctx, repo.sheet, addressToRow(address))
}

// UpdateAddress overwrites the row holding the address in place.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	_, rowNum, found, err := repo.client.findRowByID(ctx, repo.sheet, addressLastColumn, address.ID)
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrAddressNotFound
	}

	return repo.client.updateRow(ctx, repo.sheet, rowNum, addressLastColumn, addressToRow(address))
}
