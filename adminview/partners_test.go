package adminview

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	winja "github.com/winjahq/winja-go"
)

func partnersBackend() *fakeBackend {
	backend := newFakeBackend()
	backend.respond(http.MethodGet, "/partners", `{"partners":[
		{"id":1,"company_name":"Acme Grants","company_website":"acme.example","partner_status":"active"},
		{"id":2,"company_name":"Beta Labs","company_website":"beta.example","partner_status":"inactive"},
		{"id":3,"company_name":"Acme Jobs","company_website":"jobs.acme.example","partner_status":"active"}
	]}`)
	return backend
}

func TestPartnersViewLoadAndFilter(t *testing.T) {
	backend := partnersBackend()

	v := NewPartnersView(newTestClient(t, backend), nil)
	v.Load(context.Background())
	require.True(t, v.Companies.OK())
	require.Len(t, v.Companies.Data, 3)

	v.Filter = PartnerFilter{Search: "acme", Status: winja.PartnerStatusActive}
	filtered := v.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, int64(1), filtered[0].ID)
	assert.Equal(t, int64(3), filtered[1].ID)

	counts := v.StatusCounts()
	assert.Equal(t, 2, counts[winja.PartnerStatusActive])
	assert.Equal(t, 1, counts[winja.PartnerStatusInactive])
}

func TestPartnerDetailSubFetchFailureIsIsolated(t *testing.T) {
	backend := partnersBackend()
	backend.respond(http.MethodGet, "/partners/1", `{"id":1,"company_name":"Acme Grants","partner_status":"active"}`)
	backend.respond(http.MethodGet, "/partners/1/sponsored-opportunities", `[{"id":10,"opportunity_id":4,"partner_id":1,"status":"approved"}]`)
	backend.fail(http.MethodGet, "/partners/1/metrics", http.StatusInternalServerError)

	v := NewPartnersView(newTestClient(t, backend), nil)
	detail, err := v.Detail(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Acme Grants", detail.Partner.CompanyName)
	require.True(t, detail.Sponsorships.OK())
	assert.Len(t, detail.Sponsorships.Data, 1)
	assert.Error(t, detail.Metrics.Err)
}

func TestPartnerUpdateRefetchesList(t *testing.T) {
	backend := partnersBackend()
	backend.respond(http.MethodPost, "/partners/2", `{"id":2,"company_name":"Beta Labs","partner_status":"active"}`)

	v := NewPartnersView(newTestClient(t, backend), nil)
	v.Load(context.Background())

	err := v.Update(context.Background(), 2, winja.PartnerParams{PartnerStatus: winja.PartnerStatusActive})
	require.NoError(t, err)

	assert.Equal(t, 1, backend.count(http.MethodPost, "/partners/2"))
	assert.Equal(t, 2, backend.count(http.MethodGet, "/partners"))
	assert.Contains(t, string(backend.lastBody(http.MethodPost, "/partners/2")), "partner_status")
}
