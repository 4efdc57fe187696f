// Package service defines interfaces for supporting domain services.
package service

import "time"

// Clock is the single source of "now" for admission decisions. The same
// instant must be used for the new record's check-in time and for the
// same-day duplicate comparison, to avoid midnight boundary skew.
type Clock interface {
	Now() time.Time
}
