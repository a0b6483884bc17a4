package adminview

import (
	"strings"

	winja "github.com/winjahq/winja-go"
)

// matchesSearch reports whether any field contains term as a
// case-insensitive substring. An empty term matches everything.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// matchesExact reports whether value satisfies a categorical filter. An
// empty filter matches everything; otherwise the match is exact.
func matchesExact(filter, value string) bool {
	return filter == "" || filter == value
}

// filterSlice returns the items satisfying keep, preserving their relative
// order.
func filterSlice[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// countWhere counts the items satisfying pred.
func countWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// countBy tallies items by key, skipping empty keys. The tally covers only
// the items passed in; for paged data that is the currently loaded page,
// not the full remote set.
func countBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		if k := key(item); k != "" {
			counts[k]++
		}
	}
	return counts
}

// Verification filter values accepted by OpportunityFilter.
const (
	VerifiedFilterVerified   = "Verified"
	VerifiedFilterUnverified = "Unverified"
)

// OpportunityFilter is the search and filter state of the opportunities
// screen. Zero values match everything.
type OpportunityFilter struct {
	Search   string
	Status   string
	Verified string
}

// Match reports whether an opportunity passes the filter. The search term is
// checked against title, sponsor, and type name.
func (f OpportunityFilter) Match(o winja.Opportunity) bool {
	fields := []string{o.Title, o.Sponsor}
	if o.Type != nil {
		fields = append(fields, o.Type.Name)
	}
	if !matchesSearch(f.Search, fields...) {
		return false
	}
	if !matchesExact(f.Status, o.Status) {
		return false
	}
	switch f.Verified {
	case VerifiedFilterVerified:
		return o.Verified.Bool()
	case VerifiedFilterUnverified:
		return !o.Verified.Bool()
	}
	return true
}

// UserFilter is the search and filter state of the users screen. Zero
// values match everything.
type UserFilter struct {
	Search string
	Status string
	Role   string
}

// Match reports whether a user passes the filter. The search term is checked
// against name and email.
func (f UserFilter) Match(u winja.User) bool {
	return matchesSearch(f.Search, u.Name, u.Email) &&
		matchesExact(f.Status, u.Status) &&
		matchesExact(f.Role, u.UserType)
}

// PartnerFilter is the search and filter state of the partners screen. Zero
// values match everything.
type PartnerFilter struct {
	Search string
	Status string
}

// Match reports whether a partner passes the filter. The search term is
// checked against company name and website.
func (f PartnerFilter) Match(p winja.Partner) bool {
	return matchesSearch(f.Search, p.CompanyName, p.CompanyWebsite) &&
		matchesExact(f.Status, p.PartnerStatus)
}
