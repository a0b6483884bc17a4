package adminview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	winja "github.com/winjahq/winja-go"
)

func TestOpportunityFilterMatch(t *testing.T) {
	opportunity := winja.Opportunity{
		Title:    "Tech Fellowship",
		Sponsor:  "Acme Foundation",
		Type:     &winja.OpportunityType{Name: "Scholarships"},
		Status:   winja.OpportunityStatusActive,
		Verified: true,
	}

	tests := []struct {
		name     string
		filter   OpportunityFilter
		expected bool
	}{
		{name: "zero filter matches", filter: OpportunityFilter{}, expected: true},
		{name: "search by title", filter: OpportunityFilter{Search: "fellow"}, expected: true},
		{name: "search by sponsor", filter: OpportunityFilter{Search: "acme"}, expected: true},
		{name: "search by type name", filter: OpportunityFilter{Search: "scholar"}, expected: true},
		{name: "search miss", filter: OpportunityFilter{Search: "grant"}, expected: false},
		{name: "status match", filter: OpportunityFilter{Status: winja.OpportunityStatusActive}, expected: true},
		{name: "status miss", filter: OpportunityFilter{Status: winja.OpportunityStatusPending}, expected: false},
		{name: "verified match", filter: OpportunityFilter{Verified: VerifiedFilterVerified}, expected: true},
		{name: "unverified miss", filter: OpportunityFilter{Verified: VerifiedFilterUnverified}, expected: false},
		{name: "combined", filter: OpportunityFilter{Search: "tech", Status: winja.OpportunityStatusActive, Verified: VerifiedFilterVerified}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Match(opportunity))
		})
	}
}

func TestOpportunityFilterNilType(t *testing.T) {
	filter := OpportunityFilter{Search: "scholar"}
	assert.False(t, filter.Match(winja.Opportunity{Title: "Tech Fellowship"}))
}

func TestFilteredPreservesOrder(t *testing.T) {
	v := &OpportunitiesView{}
	v.Listings.Data = []winja.Opportunity{
		{ID: 1, Title: "One", Status: winja.OpportunityStatusActive},
		{ID: 2, Title: "Two", Status: winja.OpportunityStatusPending},
		{ID: 3, Title: "Three", Status: winja.OpportunityStatusActive},
		{ID: 4, Title: "Four", Status: winja.OpportunityStatusExpired},
		{ID: 5, Title: "Five", Status: winja.OpportunityStatusPending},
	}
	v.Filter = OpportunityFilter{Status: winja.OpportunityStatusActive}

	filtered := v.Filtered()
	assert.Len(t, filtered, 2)
	assert.Equal(t, int64(1), filtered[0].ID)
	assert.Equal(t, int64(3), filtered[1].ID)
}

func TestUserFilterMatch(t *testing.T) {
	user := winja.User{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Status:   winja.UserStatusActive,
		UserType: winja.UserTypeUser,
	}

	assert.True(t, UserFilter{}.Match(user))
	assert.True(t, UserFilter{Search: "JANE"}.Match(user))
	assert.True(t, UserFilter{Search: "example.com"}.Match(user))
	assert.False(t, UserFilter{Search: "bob"}.Match(user))
	assert.True(t, UserFilter{Status: winja.UserStatusActive, Role: winja.UserTypeUser}.Match(user))
	assert.False(t, UserFilter{Role: winja.UserTypeAdmin}.Match(user))
}

func TestPartnerFilterMatch(t *testing.T) {
	partner := winja.Partner{
		CompanyName:    "Acme Corp",
		CompanyWebsite: "https://acme.example",
		PartnerStatus:  winja.PartnerStatusActive,
	}

	assert.True(t, PartnerFilter{}.Match(partner))
	assert.True(t, PartnerFilter{Search: "acme"}.Match(partner))
	assert.False(t, PartnerFilter{Search: "globex"}.Match(partner))
	assert.False(t, PartnerFilter{Status: winja.PartnerStatusSuspended}.Match(partner))
}

func TestCountBySkipsEmptyKeys(t *testing.T) {
	counts := countBy([]winja.Opportunity{
		{Type: &winja.OpportunityType{Name: "Scholarships"}},
		{Type: &winja.OpportunityType{Name: "Scholarships"}},
		{Type: &winja.OpportunityType{Name: "Jobs"}},
		{Type: nil},
	}, func(o winja.Opportunity) string {
		if o.Type == nil {
			return ""
		}
		return o.Type.Name
	})

	assert.Equal(t, map[string]int{"Scholarships": 2, "Jobs": 1}, counts)
}
