package adminview

import (
	"context"

	"go.uber.org/zap"

	winja "github.com/winjahq/winja-go"
)

// SettingsView drives the settings screen and its tabs: app configuration,
// push notifications, subscription plans, and system logs.
type SettingsView struct {
	view

	Config        Section[winja.Settings]
	Notifications Section[[]winja.PushNotification]
	Plans         Section[[]winja.SubscriptionPlan]
	Logs          Section[[]winja.ActivityLog]
}

// NewSettingsView returns an unloaded settings view. A nil logger disables
// logging.
func NewSettingsView(client winja.Client, logger *zap.Logger) *SettingsView {
	return &SettingsView{view: newView(client, logger)}
}

// Load fetches every tab's data concurrently and returns when all have
// settled.
func (v *SettingsView) Load(ctx context.Context) {
	join(ctx,
		func(ctx context.Context) { v.Config.set(v.client.Settings(ctx)) },
		func(ctx context.Context) { v.Notifications.set(v.client.PushNotifications(ctx)) },
		func(ctx context.Context) { v.Plans.set(v.client.SubscriptionPlans(ctx)) },
		func(ctx context.Context) { v.Logs.set(v.client.ActivityLogs(ctx)) },
	)
	v.logSection("config", v.Config.Err)
	v.logSection("notifications", v.Notifications.Err)
	v.logSection("plans", v.Plans.Err)
	v.logSection("logs", v.Logs.Err)
}

// SaveConfig replaces the app configuration and re-fetches it.
func (v *SettingsView) SaveConfig(ctx context.Context, settings winja.Settings) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.UpdateSettings(ctx, settings); err != nil {
		return err
	}
	v.Config.set(v.client.Settings(ctx))
	return v.Config.Err
}

// AddNotification creates a push notification and re-fetches the list.
func (v *SettingsView) AddNotification(ctx context.Context, params winja.PushNotificationParams) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.CreatePushNotification(ctx, params); err != nil {
		return err
	}
	v.Notifications.set(v.client.PushNotifications(ctx))
	return v.Notifications.Err
}

// EditNotification edits a push notification in place and re-fetches the
// list.
func (v *SettingsView) EditNotification(ctx context.Context, id int64, params winja.PushNotificationParams) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.UpdatePushNotification(ctx, id, params); err != nil {
		return err
	}
	v.Notifications.set(v.client.PushNotifications(ctx))
	return v.Notifications.Err
}

// RemoveNotification deletes a push notification and re-fetches the list.
func (v *SettingsView) RemoveNotification(ctx context.Context, id int64) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if err := v.client.DeletePushNotification(ctx, id); err != nil {
		return err
	}
	v.Notifications.set(v.client.PushNotifications(ctx))
	return v.Notifications.Err
}

// AddPlan creates a subscription plan and re-fetches the plan list.
func (v *SettingsView) AddPlan(ctx context.Context, params winja.SubscriptionPlanParams) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.CreateSubscriptionPlan(ctx, params); err != nil {
		return err
	}
	v.Plans.set(v.client.SubscriptionPlans(ctx))
	return v.Plans.Err
}

// EditPlan updates a subscription plan and re-fetches the plan list.
func (v *SettingsView) EditPlan(ctx context.Context, id int64, params winja.SubscriptionPlanParams) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.UpdateSubscriptionPlan(ctx, id, params); err != nil {
		return err
	}
	v.Plans.set(v.client.SubscriptionPlans(ctx))
	return v.Plans.Err
}

// RemovePlan deletes a subscription plan and re-fetches the plan list.
func (v *SettingsView) RemovePlan(ctx context.Context, id int64) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if err := v.client.DeleteSubscriptionPlan(ctx, id); err != nil {
		return err
	}
	v.Plans.set(v.client.SubscriptionPlans(ctx))
	return v.Plans.Err
}
