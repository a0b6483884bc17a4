package adminview

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	winja "github.com/winjahq/winja-go"
)

func TestOpportunitiesViewLoad(t *testing.T) {
	backend := newFakeBackend()
	backend.respond(http.MethodGet, "/opportunity-types", `[{"id":1,"name":"Scholarships","count":2}]`)
	backend.respond(http.MethodGet, "/opportunities", `{"opportunities":[{"id":1,"title":"Tech Fellowship","status":"Active","verified":1},{"id":2,"title":"Design Grant","status":"Pending","verified":0}]}`)
	backend.respond(http.MethodGet, "/sponsored-opportunities", `{"data":[{"id":10,"opportunity_id":1,"partner_id":3}]}`)
	backend.respond(http.MethodGet, "/partners/all", `{"partners":[{"id":3,"company_name":"Acme Corp"}]}`)

	v := NewOpportunitiesView(newTestClient(t, backend), nil)
	v.Load(context.Background())

	require.True(t, v.Types.OK())
	require.True(t, v.Listings.OK())
	require.True(t, v.Sponsored.OK())
	require.True(t, v.Partners.OK())

	assert.Len(t, v.Listings.Data, 2)
	assert.True(t, v.IsSponsored(1))
	assert.False(t, v.IsSponsored(2))
}

func TestOpportunityMetrics(t *testing.T) {
	v := &OpportunitiesView{}
	v.Types.Data = []winja.OpportunityType{{ID: 1}, {ID: 2}}
	v.Listings.Data = []winja.Opportunity{
		{Status: winja.OpportunityStatusActive, Verified: true},
		{Status: winja.OpportunityStatusActive},
		{Status: winja.OpportunityStatusPending, Verified: true},
		{Status: winja.OpportunityStatusExpired},
	}

	metrics := v.Metrics()
	assert.Equal(t, OpportunityMetrics{
		Types:      2,
		Total:      4,
		Active:     2,
		Pending:    1,
		Expired:    1,
		Verified:   2,
		Unverified: 2,
	}, metrics)
}

func TestCreateListingRefetches(t *testing.T) {
	backend := newFakeBackend()
	backend.respond(http.MethodPost, "/opportunities", `{"id":9,"title":"Tech Fellowship"}`)
	backend.respond(http.MethodGet, "/opportunities", `{"opportunities":[{"id":9,"title":"Tech Fellowship"}]}`)

	v := NewOpportunitiesView(newTestClient(t, backend), nil)
	err := v.CreateListing(context.Background(), winja.OpportunityParams{Title: "Tech Fellowship"})
	require.NoError(t, err)

	assert.Equal(t, 1, backend.count(http.MethodPost, "/opportunities"))
	assert.Equal(t, 1, backend.count(http.MethodGet, "/opportunities"))
	require.Len(t, v.Listings.Data, 1)
	assert.Equal(t, int64(9), v.Listings.Data[0].ID)
}

func TestExportCSV(t *testing.T) {
	backend := newFakeBackend()
	backend.respond(http.MethodGet, "/opportunities/export/csv", "id,title\n1,Tech Fellowship\n")

	v := NewOpportunitiesView(newTestClient(t, backend), nil)
	raw, err := v.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Tech Fellowship")
}

func TestSponsorDefaultsWindow(t *testing.T) {
	backend := newFakeBackend()
	backend.respond(http.MethodPost, "/sponsored-opportunities", `{"id":10,"opportunity_id":7,"partner_id":3}`)
	backend.respond(http.MethodGet, "/sponsored-opportunities", `[{"id":10,"opportunity_id":7,"partner_id":3}]`)

	v := NewOpportunitiesView(newTestClient(t, backend), nil)
	assert.False(t, v.IsSponsored(7))

	err := v.Sponsor(context.Background(), winja.SponsorshipParams{OpportunityID: 7, PartnerID: 3})
	require.NoError(t, err)

	var captured winja.SponsorshipParams
	require.NoError(t, json.Unmarshal(backend.lastBody(http.MethodPost, "/sponsored-opportunities"), &captured))

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, captured.SponsoredFrom)

	from, err := time.Parse("2006-01-02", captured.SponsoredFrom)
	require.NoError(t, err)
	assert.Equal(t, from.AddDate(0, 0, 30).Format("2006-01-02"), captured.SponsoredTo)
	assert.Equal(t, winja.SponsorshipStatusPending, captured.Status)
	assert.Equal(t, winja.PaymentStatusUnpaid, captured.PaymentStatus)

	assert.True(t, v.IsSponsored(7))
}
