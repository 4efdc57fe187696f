package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckInStatus_TransitionTable(t *testing.T) {
	tests := []struct {
		from    CheckInStatus
		to      CheckInStatus
		allowed bool
	}{
		{from: StatusCheckedIn, to: StatusCheckedOut, allowed: true},
		{from: StatusCheckedIn, to: StatusCancelled, allowed: true},
		{from: StatusCheckedIn, to: StatusCheckedIn, allowed: false},
		{from: StatusCheckedOut, to: StatusCheckedIn, allowed: false},
		{from: StatusCheckedOut, to: StatusCancelled, allowed: false},
		{from: StatusCancelled, to: StatusCheckedIn, allowed: false},
		{from: StatusCancelled, to: StatusCheckedOut, allowed: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCheckInStatus_IsValid(t *testing.T) {
	assert.True(t, StatusCheckedIn.IsValid())
	assert.True(t, StatusCheckedOut.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, CheckInStatus("pending").IsValid())
	assert.False(t, CheckInStatus("").IsValid())
}

func TestCheckIn_OnSameLocalDay(t *testing.T) {
	morning := time.Date(2025, 6, 14, 8, 30, 0, 0, time.Local)
	evening := time.Date(2025, 6, 14, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2025, 6, 15, 0, 1, 0, 0, time.Local)

	checkIn := &CheckIn{CheckInTime: morning}
	assert.True(t, checkIn.OnSameLocalDay(evening))
	assert.False(t, checkIn.OnSameLocalDay(nextDay))
}

func TestCheckIn_Matches(t *testing.T) {
	address := &Address{ID: "a1", Street: "123 Main St"}

	// Match by ID even when the street string drifted.
	byID := &CheckIn{AddressID: "a1", Address: "123 Main Street (old)"}
	assert.True(t, byID.Matches(address))

	// Match by street string when the ID column was never populated.
	byStreet := &CheckIn{Address: "123 MAIN ST"}
	assert.True(t, byStreet.Matches(address))

	neither := &CheckIn{AddressID: "a2", Address: "45 River Ln"}
	assert.False(t, neither.Matches(address))
}

func TestAddress_DisplayName(t *testing.T) {
	assert.Equal(t, "Johnson", (&Address{Name: "Johnson", OtherName: "JJ"}).DisplayName())
	assert.Equal(t, "JJ", (&Address{OtherName: "JJ"}).DisplayName())
	assert.Equal(t, "", (&Address{}).DisplayName())
}
