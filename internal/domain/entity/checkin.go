package entity

import (
	"strings"
	"time"
)

// CheckInStatus is the lifecycle state of a check-in record.
type CheckInStatus string

const (
	// StatusCheckedIn is the initial state of every check-in.
	StatusCheckedIn CheckInStatus = "checked-in"
	// StatusCheckedOut marks a completed pickup. Terminal.
	StatusCheckedOut CheckInStatus = "checked-out"
	// StatusCancelled marks an abandoned check-in. Terminal.
	StatusCancelled CheckInStatus = "cancelled"
)

// statusTransitions is the explicit transition table. Anything not listed
// here is an illegal transition and must fail loudly rather than being
// merely unreachable through the UI.
var statusTransitions = map[CheckInStatus][]CheckInStatus{
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

// IsValid reports whether s is a known status value.
func (s CheckInStatus) IsValid() bool {
	_, ok := statusTransitions[s]

	return ok
}

// CanTransitionTo reports whether the state machine permits moving from s
// to next.
func (s CheckInStatus) CanTransitionTo(next CheckInStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// CheckIn records one admission of a pickup address for a calendar day.
// AddressID and Address identify the target redundantly: historical rows in
// the sheet do not always have both fields populated, so either one is
// accepted as an address match.
type CheckIn struct {
	ID           string        `json:"id"`                     // Opaque unique identifier, assigned at creation.
	Identifier   string        `json:"identifier"`             // The raw user input that resolved to the address.
	Name         string        `json:"name"`                   // Display name of the matched address, snapshotted.
	AddressID    string        `json:"addressId"`              // ID of the matched address.
	Address      string        `json:"address"`                // Denormalized street of the matched address.
	Notes        string        `json:"notes"`                  // Verification summary generated at creation, never recomputed.
	Status       CheckInStatus `json:"status"`                 // Forward-only lifecycle state.
	CheckInTime  time.Time     `json:"checkInTime"`            // Set at creation, never modified.
	CheckOutTime *time.Time    `json:"checkOutTime,omitempty"` // Set only on transition to checked-out.
}

// OnSameLocalDay reports whether the check-in happened on the same local
// calendar date as at. Both instants are compared in local time, not UTC.
func (c *CheckIn) OnSameLocalDay(at time.Time) bool {
	y1, m1, d1 := c.CheckInTime.Local().Date()
	y2, m2, d2 := at.Local().Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}

// Matches reports whether the check-in targets the given address, by ID or
// by case-insensitive street string.
func (c *CheckIn) Matches(address *Address) bool {
	if address == nil {
		return false
	}
	if c.AddressID != "" && c.AddressID == address.ID {
		return true
	}

	return strings.EqualFold(strings.TrimSpace(c.Address), strings.TrimSpace(address.Street))
}
