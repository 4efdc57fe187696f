package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pickup/internal/domain/entity"
	"pickup/internal/errors"
)

// Worksheet column layouts. The sheet is schema-less; these mappings are
// the single place where string cells become typed fields.
const (
	// Addresses: id, street, name, otherName, isActive, createdAt, updatedAt
	addressLastColumn = "G"
	// CheckIns: id, identifier, name, addressId, address, notes,
	// checkInTime, checkOutTime, status
	checkInLastColumn = "I"
)

// AddressHeader is the header row of the Addresses worksheet.
var AddressHeader = []any{"id", "street", "name", "otherName", "isActive", "createdAt", "updatedAt"}

// CheckInHeader is the header row of the CheckIns worksheet.
var CheckInHeader = []any{"id", "identifier", "name", "addressId", "address", "notes", "checkInTime", "checkOutTime", "status"}

// cellString reads a cell as a trimmed string, tolerating short rows.
func cellString(row []any, idx int) string {
	if idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(fmt.Sprint(row[idx]))
}

// cellText reads a cell verbatim. Used for the notes snapshot, whose
// trailing newline is part of the recorded value.
func cellText(row []any, idx int) string {
	if idx >= len(row) {
		return ""
	}

	return fmt.Sprint(row[idx])
}

// cellBool reads a cell as a boolean. Legacy rows store "true"/"TRUE".
func cellBool(row []any, idx int) bool {
	value, err := strconv.ParseBool(strings.ToLower(cellString(row, idx)))

	return err == nil && value
}

// cellTime reads a cell as an RFC 3339 timestamp. An empty cell is the
// zero time; a malformed non-empty cell is an error.
func cellTime(row []any, idx int) (time.Time, error) {
	raw := cellString(row, idx)
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "malformed timestamp cell %q", raw)
	}

	return parsed, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.RFC3339)
}

func addressFromRow(row []any) (*entity.Address, error) {
	createdAt, err := cellTime(row, 5)
	if err != nil {
		return nil, err
	}
	updatedAt, err := cellTime(row, 6)
	if err != nil {
		return nil, err
	}

	return &entity.Address{
		ID:        cellString(row, 0),
		Street:    cellString(row, 1),
		Name:      cellString(row, 2),
		OtherName: cellString(row, 3),
		IsActive:  cellBool(row, 4),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func addressToRow(address *entity.Address) []any {
	return []any{
		address.ID,
		address.Street,
		address.Name,
		address.OtherName,
		strconv.FormatBool(address.IsActive),
		formatTime(address.CreatedAt),
		formatTime(address.UpdatedAt),
	}
}

func checkInFromRow(row []any) (*entity.CheckIn, error) {
	checkInTime, err := cellTime(row, 6)
	if err != nil {
		return nil, err
	}
	checkOutTime, err := cellTime(row, 7)
	if err != nil {
		return nil, err
	}

	checkIn := &entity.CheckIn{
		ID:          cellString(row, 0),
		Identifier:  cellString(row, 1),
		Name:        cellString(row, 2),
		AddressID:   cellString(row, 3),
		Address:     cellString(row, 4),
		Notes:       cellText(row, 5),
		Status:      entity.CheckInStatus(cellString(row, 8)),
		CheckInTime: checkInTime,
	}
	if !checkOutTime.IsZero() {
		checkIn.CheckOutTime = &checkOutTime
	}

	return checkIn, nil
}

func checkInToRow(checkIn *entity.CheckIn) []any {
	var checkOut string
	if checkIn.CheckOutTime != nil {
		checkOut = formatTime(*checkIn.CheckOutTime)
	}

	return []any{
		checkIn.ID,
		checkIn.Identifier,
		checkIn.Name,
		checkIn.AddressID,
		checkIn.Address,
		checkIn.Notes,
		formatTime(checkIn.CheckInTime),
		checkOut,
		string(checkIn.Status),
	}
}
