package adminview

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	winja "github.com/winjahq/winja-go"
)

func adsBackend() *fakeBackend {
	backend := newFakeBackend()
	backend.respond(http.MethodGet, "/ads/campaigns", `{"campaigns":[{"id":1,"ad_type":"featured","status":"pending","amount_paid":200},{"id":2,"ad_type":"inline","status":"active","amount_paid":50}]}`)
	backend.respond(http.MethodGet, "/ads/settings", `{"settings":[{"id":1,"ad_type":"featured","duration_type":"week","price":100}]}`)
	backend.respond(http.MethodGet, "/ads/analytics", `{"impressions":1000,"clicks":50,"ctr":5}`)
	backend.respond(http.MethodGet, "/ads/revenue", `{"total":250,"this_month":120,"pending":30}`)
	return backend
}

func TestAdsViewLoad(t *testing.T) {
	backend := adsBackend()

	v := NewAdsView(newTestClient(t, backend), nil)
	v.Load(context.Background())

	require.True(t, v.Campaigns.OK())
	require.True(t, v.Pricing.OK())
	assert.Len(t, v.Campaigns.Data, 2)
	assert.Equal(t, map[string]int{
		winja.AdStatusPending: 1,
		winja.AdStatusActive:  1,
	}, v.StatusCounts())
}

func TestApproveReloadsEverything(t *testing.T) {
	backend := adsBackend()
	backend.respond(http.MethodPost, "/ads/campaigns/1/approve", `{}`)

	v := NewAdsView(newTestClient(t, backend), nil)
	v.Load(context.Background())

	require.NoError(t, v.Approve(context.Background(), 1))

	assert.Equal(t, 1, backend.count(http.MethodPost, "/ads/campaigns/1/approve"))
	// Approval moves money: the whole screen reloads, not just the campaign
	// list.
	assert.Equal(t, 2, backend.count(http.MethodGet, "/ads/campaigns"))
	assert.Equal(t, 2, backend.count(http.MethodGet, "/ads/revenue"))
}

func TestSetPriceRefetchesPricing(t *testing.T) {
	backend := adsBackend()
	backend.respond(http.MethodPut, "/ads/settings/1", `{"id":1,"ad_type":"featured","duration_type":"week","price":150}`)

	v := NewAdsView(newTestClient(t, backend), nil)
	require.NoError(t, v.SetPrice(context.Background(), 1, 150))

	assert.Equal(t, 1, backend.count(http.MethodPut, "/ads/settings/1"))
	assert.Equal(t, 1, backend.count(http.MethodGet, "/ads/settings"))
}
