package repository

import (
	"strings"
	"time"

	"rpromo/internal/domain/entity"
)

// SearchFilters is the filter set accepted by PersonProvider.Search.
// Zero values mean "no filtering on this axis"; provided filters are
// AND-combined.
type SearchFilters struct {
	// Term matches case-insensitively as a substring against name, CPF
	// digits, email, phone digits, neighborhood and city.
	Term string
	// Status is an exact match when non-blank.
	Status entity.Status
	// Neighborhood and City are case-insensitive substring matches.
	Neighborhood string
	City         string
	// DateFrom and DateTo bound the creation timestamp, inclusive.
	DateFrom *time.Time
	DateTo   *time.Time
}

// Empty reports whether no filter is set.
func (f SearchFilters) Empty() bool {
	return strings.TrimSpace(f.Term) == "" &&
		f.Status == "" &&
		strings.TrimSpace(f.Neighborhood) == "" &&
		strings.TrimSpace(f.City) == "" &&
		f.DateFrom == nil &&
		f.DateTo == nil
}

// Match reports whether p satisfies every provided filter. This is the
// canonical in-memory matching; the remote provider translates the same
// rules into SQL predicates.
func (f SearchFilters) Match(p *entity.Person) bool {
	if term := strings.TrimSpace(f.Term); term != "" {
		lower := strings.ToLower(term)
		if !strings.Contains(strings.ToLower(p.FullName), lower) &&
			!strings.Contains(DigitsOnly(p.CPF), term) &&
			!strings.Contains(strings.ToLower(p.Email), lower) &&
			!strings.Contains(DigitsOnly(p.Phone), term) &&
			!strings.Contains(strings.ToLower(p.Neighborhood), lower) &&
			!strings.Contains(strings.ToLower(p.City), lower) {
			return false
		}
	}

	if f.Status != "" && p.Status != f.Status {
		return false
	}

	if neighborhood := strings.TrimSpace(f.Neighborhood); neighborhood != "" {
		if !strings.Contains(strings.ToLower(p.Neighborhood), strings.ToLower(neighborhood)) {
			return false
		}
	}

	if city := strings.TrimSpace(f.City); city != "" {
		if !strings.Contains(strings.ToLower(p.City), strings.ToLower(city)) {
			return false
		}
	}

	if f.DateFrom != nil && p.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && p.CreatedAt.After(*f.DateTo) {
		return false
	}

	return true
}

// Filter returns the matching subsequence of people in original order.
func (f SearchFilters) Filter(people []*entity.Person) []*entity.Person {
	matched := make([]*entity.Person, 0, len(people))
	for _, p := range people {
		if f.Match(p) {
			matched = append(matched, p)
		}
	}

	return matched
}

// DigitsOnly strips everything but decimal digits. CPF and phone are
// matched against the raw digit string, not the formatted display value.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
