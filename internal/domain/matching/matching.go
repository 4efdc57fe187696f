// Package matching resolves free-form identifiers to pickup addresses.
//
// Two deliberate, asymmetric strategies exist. TextStrategy serves typed
// input: street must match exactly while name and other-name tolerate
// partial entry. NumericPrefixStrategy serves the kiosk numeric keypad:
// the input must equal the leading token of the street, and collisions are
// surfaced as an ambiguous result for the caller to disambiguate.
package matching

import (
	"strings"

	"pickup/internal/domain/entity"
)

// MaxCandidates caps how many ambiguous candidates are surfaced.
const MaxCandidates = 5

// Outcome classifies a resolution attempt.
type Outcome string

const (
	// OutcomeEmpty means the identifier was blank. Callers treat this as
	// "nothing entered", not as a failure.
	OutcomeEmpty Outcome = "empty"
	// OutcomeNoMatch means no address satisfied the strategy's criterion.
	OutcomeNoMatch Outcome = "no_match"
	// OutcomeUnique means exactly one address matched.
	OutcomeUnique Outcome = "unique"
	// OutcomeAmbiguous means two or more addresses matched and the caller
	// must pick one explicitly. Only the numeric strategy produces this.
	OutcomeAmbiguous Outcome = "ambiguous"
)

// Result is the outcome of resolving one identifier.
type Result struct {
	Outcome    Outcome
	Address    *entity.Address   // Set when Outcome is OutcomeUnique.
	Candidates []*entity.Address // Set when Outcome is OutcomeAmbiguous, at most MaxCandidates.
}

// Strategy resolves an identifier against a snapshot of addresses.
type Strategy interface {
	Resolve(identifier string, addresses []*entity.Address) Result
}

// Policy controls which addresses a strategy considers.
type Policy struct {
	// ActiveOnly restricts matching to active addresses. The legacy read
	// path forced every address active on load, so the default is off;
	// it exists as an explicit switch instead of a baked-in assumption.
	ActiveOnly bool
}

func (p Policy) eligible(addresses []*entity.Address) []*entity.Address {
	if !p.ActiveOnly {
		return addresses
	}

	active := make([]*entity.Address, 0, len(addresses))
	for _, address := range addresses {
		if address.IsActive {
			active = append(active, address)
		}
	}

	return active
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// TextStrategy resolves typed identifiers. Exact matches are tried in
// field-precedence order (street, then name, then other name); only when
// no exact match exists does it fall back to substring containment against
// name and other name. Street is never matched by substring. The first
// satisfying address wins and further matches are not reported.
type TextStrategy struct {
	Policy Policy
}

// Resolve implements Strategy.
func (s TextStrategy) Resolve(identifier string, addresses []*entity.Address) Result {
	input := normalize(identifier)
	if input == "" {
		return Result{Outcome: OutcomeEmpty}
	}

	eligible := s.Policy.eligible(addresses)

	exactFields := []func(*entity.Address) string{
		func(a *entity.Address) string { return a.Street },
		func(a *entity.Address) string { return a.Name },
		func(a *entity.Address) string { return a.OtherName },
	}
	for _, field := range exactFields {
		for _, address := range eligible {
			if normalize(field(address)) == input {
				return Result{Outcome: OutcomeUnique, Address: address}
			}
		}
	}

	substringFields := []func(*entity.Address) string{
		func(a *entity.Address) string { return a.Name },
		func(a *entity.Address) string { return a.OtherName },
	}
	for _, field := range substringFields {
		for _, address := range eligible {
			value := normalize(field(address))
			if value != "" && strings.Contains(value, input) {
				return Result{Outcome: OutcomeUnique, Address: address}
			}
		}
	}

	return Result{Outcome: OutcomeNoMatch}
}

// NumericPrefixStrategy resolves kiosk keypad input against the leading
// token of each street. Full case-insensitive equality only; a shared leading token yields
// an ambiguous result and never an auto-pick.
type NumericPrefixStrategy struct {
	Policy Policy
}

// Resolve implements Strategy.
func (s NumericPrefixStrategy) Resolve(identifier string, addresses []*entity.Address) Result {
	input := strings.TrimSpace(identifier)
	if input == "" {
		return Result{Outcome: OutcomeEmpty}
	}

	var candidates []*entity.Address
	for _, address := range s.Policy.eligible(addresses) {
		if strings.EqualFold(address.KioskCode(), input) {
			candidates = append(candidates, address)
		}
	}

	switch {
	case len(candidates) == 0:
		return Result{Outcome: OutcomeNoMatch}
	case len(candidates) == 1:
		return Result{Outcome: OutcomeUnique, Address: candidates[0]}
	default:
		if len(candidates) > MaxCandidates {
			candidates = candidates[:MaxCandidates]
		}

		return Result{Outcome: OutcomeAmbiguous, Candidates: candidates}
	}
}
