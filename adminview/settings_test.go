package adminview

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	winja "github.com/winjahq/winja-go"
)

func settingsBackend() *fakeBackend {
	backend := newFakeBackend()
	backend.respond(http.MethodGet, "/settings", `{"app_name":"Winja","support_email":"help@winja.app","maintenance_mode":0,"notify_by_email":1}`)
	backend.respond(http.MethodGet, "/push-notifications", `{"notifications":[{"id":1,"message":"New scholarships posted","status":"sent"}]}`)
	backend.respond(http.MethodGet, "/admin/subscription-plans", `{"plans":[{"id":1,"name":"Starter","price":9.99,"duration_months":1,"status":"active"}]}`)
	backend.respond(http.MethodGet, "/activity-logs", `{"logs":[{"id":1,"action":"login","actor":"admin"}]}`)
	return backend
}

func TestSettingsViewLoad(t *testing.T) {
	backend := settingsBackend()

	v := NewSettingsView(newTestClient(t, backend), nil)
	v.Load(context.Background())

	require.True(t, v.Config.OK())
	assert.Equal(t, "Winja", v.Config.Data.AppName)
	assert.False(t, v.Config.Data.MaintenanceMode.Bool())
	assert.True(t, v.Config.Data.NotifyByEmail.Bool())
	require.True(t, v.Notifications.OK())
	assert.Len(t, v.Notifications.Data, 1)
	require.True(t, v.Plans.OK())
	assert.Equal(t, "Starter", v.Plans.Data[0].Name)
	require.True(t, v.Logs.OK())
}

func TestSettingsTabFailureIsIsolated(t *testing.T) {
	backend := settingsBackend()
	backend.fail(http.MethodGet, "/admin/subscription-plans", http.StatusInternalServerError)

	v := NewSettingsView(newTestClient(t, backend), nil)
	v.Load(context.Background())

	require.Error(t, v.Plans.Err)
	assert.True(t, v.Config.OK())
	assert.True(t, v.Notifications.OK())
	assert.True(t, v.Logs.OK())
}

func TestSaveConfigRefetches(t *testing.T) {
	backend := settingsBackend()
	backend.respond(http.MethodPut, "/settings", `{"app_name":"Winja"}`)

	v := NewSettingsView(newTestClient(t, backend), nil)
	v.Load(context.Background())

	cfg := v.Config.Data
	cfg.MaintenanceMode = true
	require.NoError(t, v.SaveConfig(context.Background(), cfg))

	assert.Equal(t, 1, backend.count(http.MethodPut, "/settings"))
	assert.Equal(t, 2, backend.count(http.MethodGet, "/settings"))
	// Flags ride the wire as 1/0, never true/false.
	assert.Contains(t, string(backend.lastBody(http.MethodPut, "/settings")), `"maintenance_mode":1`)
}

func TestNotificationEditRefetchesList(t *testing.T) {
	backend := settingsBackend()
	backend.respond(http.MethodPut, "/push-notifications/1", `{"id":1,"message":"Updated copy"}`)

	v := NewSettingsView(newTestClient(t, backend), nil)
	v.Load(context.Background())

	err := v.EditNotification(context.Background(), 1, winja.PushNotificationParams{Message: "Updated copy"})
	require.NoError(t, err)

	assert.Equal(t, 1, backend.count(http.MethodPut, "/push-notifications/1"))
	assert.Equal(t, 2, backend.count(http.MethodGet, "/push-notifications"))
}

func TestPlanLifecycleRefetches(t *testing.T) {
	backend := settingsBackend()
	backend.respond(http.MethodPost, "/admin/subscription-plans", `{"id":2,"name":"Pro","price":29.99,"duration_months":12}`)
	backend.respond(http.MethodDelete, "/admin/subscription-plans/1", `{}`)

	v := NewSettingsView(newTestClient(t, backend), nil)
	v.Load(context.Background())

	require.NoError(t, v.AddPlan(context.Background(), winja.SubscriptionPlanParams{
		Name:           "Pro",
		Price:          29.99,
		DurationMonths: 12,
		Features:       []string{"priority support"},
	}))
	assert.Equal(t, 2, backend.count(http.MethodGet, "/admin/subscription-plans"))

	require.NoError(t, v.RemovePlan(context.Background(), 1))
	assert.Equal(t, 1, backend.count(http.MethodDelete, "/admin/subscription-plans/1"))
	assert.Equal(t, 3, backend.count(http.MethodGet, "/admin/subscription-plans"))
}
