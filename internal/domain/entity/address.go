// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Address is a registered pickup address. The street value is the canonical
// identifier; Name and OtherName are soft aliases used for lookup.
type Address struct {
	ID        string    `json:"id"`        // Opaque unique identifier, assigned at creation.
	Street    string    `json:"street"`    // Primary display label and authoritative matching key.
	Name      string    `json:"name"`      // Optional alternate label (household name).
	OtherName string    `json:"otherName"` // Optional second alternate label.
	IsActive  bool      `json:"isActive"`  // Soft-delete flag; deactivated addresses keep their rows.
	CreatedAt time.Time `json:"createdAt"` // Timestamp of when this address was created.
	UpdatedAt time.Time `json:"updatedAt"` // Timestamp of the last modification.
}

// KioskCode returns the leading token of the street value (the text before
// the first space). Kiosk numeric-keypad input is matched against this code
// with full equality, never by substring.
func (a *Address) KioskCode() string {
	street := strings.TrimSpace(a.Street)
	if street == "" {
		return ""
	}
	if idx := strings.IndexByte(street, ' '); idx >= 0 {
		return street[:idx]
	}

	return street
}

// DisplayName returns the preferred human label for the address: the
// household name when present, otherwise the alternate name.
func (a *Address) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}

	return a.OtherName
}
