package adminview

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthyDashboardBackend() *fakeBackend {
	backend := newFakeBackend()
	backend.respond(http.MethodGet, "/opportunities", `{"opportunities":[{"id":1,"status":"Active"},{"id":2,"status":"Pending"},{"id":3,"status":"Active"}]}`)
	backend.respond(http.MethodGet, "/opportunities/analytics", `{"total":3,"active":2,"pending":1}`)
	backend.respond(http.MethodGet, "/users", `{"users":[{"id":1,"name":"Jane"},{"id":2,"name":"Bob"}]}`)
	backend.respond(http.MethodGet, "/analytics/user-engagement", `{"active":17,"new":4,"returning":13}`)
	backend.respond(http.MethodGet, "/saved-opportunities", `[{"id":1,"opportunity_id":1,"user_id":1}]`)
	backend.respond(http.MethodGet, "/referrals", `{"referrals":[{"id":1},{"id":2}],"stats":{"total":2,"completed":1}}`)
	backend.respond(http.MethodGet, "/analytics/revenue", `{"total":1250.5,"subscriptions":800,"ads":300.5,"sponsorships":150}`)
	backend.respond(http.MethodGet, "/analytics/trends", `{"trends":[{"label":"Jan","value":10}]}`)
	backend.respond(http.MethodGet, "/activity-logs", `{"logs":[{"id":1,"action":"login","actor":"admin"}]}`)
	backend.respond(http.MethodGet, "/push-notifications", `{"notifications":[{"id":1,"title":"Welcome"}]}`)
	return backend
}

func TestDashboardLoad(t *testing.T) {
	backend := healthyDashboardBackend()

	v := NewDashboardView(newTestClient(t, backend), nil)
	v.Load(context.Background())

	require.True(t, v.Listings.OK())
	require.True(t, v.Referrals.OK())
	require.True(t, v.Revenue.OK())

	kpis := v.KPIs()
	assert.Equal(t, 3, kpis.TotalOpportunities)
	assert.Equal(t, 2, kpis.ActiveOpportunities)
	assert.Equal(t, 1, kpis.PendingOpportunities)
	assert.Equal(t, 2, kpis.TotalUsers)
	assert.Equal(t, 17, kpis.ActiveUsers)
	assert.Equal(t, 1, kpis.SavedOpportunities)
	assert.Equal(t, 2, kpis.Referrals)
	assert.Equal(t, 1250.5, kpis.Revenue)
}

func TestDashboardSectionFailureIsIsolated(t *testing.T) {
	backend := healthyDashboardBackend()
	backend.fail(http.MethodGet, "/analytics/revenue", http.StatusInternalServerError)

	v := NewDashboardView(newTestClient(t, backend), nil)
	v.Load(context.Background())

	require.Error(t, v.Revenue.Err)
	assert.True(t, v.Listings.OK())
	assert.True(t, v.Accounts.OK())
	assert.True(t, v.Engagement.OK())
	assert.True(t, v.Trends.OK())
	assert.True(t, v.Notifications.OK())

	kpis := v.KPIs()
	assert.Equal(t, 3, kpis.TotalOpportunities)
	assert.Zero(t, kpis.Revenue)
}
