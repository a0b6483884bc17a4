package adminview

import (
	"context"

	"go.uber.org/zap"

	winja "github.com/winjahq/winja-go"
)

// ReferralSummary bundles the two halves of the referrals envelope.
type ReferralSummary struct {
	Referrals []winja.Referral
	Stats     winja.ReferralStats
}

// DashboardView drives the landing screen: KPI tiles, the trend chart, the
// activity feed, and the notifications panel.
type DashboardView struct {
	view

	Listings     Section[[]winja.Opportunity]
	ListingStats Section[winja.OpportunityAnalytics]
	Accounts     Section[[]winja.User]
	Engagement   Section[winja.EngagementAnalytics]
	Saved        Section[[]winja.SavedOpportunity]
	Referrals    Section[ReferralSummary]
	Revenue      Section[winja.RevenueAnalytics]
	Trends       Section[[]winja.TrendPoint]

	Activity      Section[[]winja.ActivityLog]
	Notifications Section[[]winja.PushNotification]
}

// NewDashboardView returns an unloaded dashboard view. A nil logger disables
// logging.
func NewDashboardView(client winja.Client, logger *zap.Logger) *DashboardView {
	return &DashboardView{view: newView(client, logger)}
}

// Load fetches every dashboard section concurrently and returns when all
// have settled. A failed section carries its own error; the rest of the
// tiles render from their loaded data.
func (v *DashboardView) Load(ctx context.Context) {
	join(ctx,
		func(ctx context.Context) { v.Listings.set(v.client.Opportunities(ctx)) },
		func(ctx context.Context) { v.ListingStats.set(v.client.OpportunityAnalytics(ctx)) },
		func(ctx context.Context) { v.Accounts.set(v.client.Users(ctx, winja.UserFilters{})) },
		func(ctx context.Context) { v.Engagement.set(v.client.UserEngagement(ctx)) },
		func(ctx context.Context) { v.Saved.set(v.client.SavedOpportunities(ctx)) },
		func(ctx context.Context) {
			referrals, stats, err := v.client.Referrals(ctx)
			v.Referrals.set(ReferralSummary{Referrals: referrals, Stats: stats}, err)
		},
		func(ctx context.Context) { v.Revenue.set(v.client.RevenueAnalytics(ctx)) },
		func(ctx context.Context) { v.Trends.set(v.client.Trends(ctx)) },
		func(ctx context.Context) { v.Activity.set(v.client.ActivityLogs(ctx)) },
		func(ctx context.Context) { v.Notifications.set(v.client.PushNotifications(ctx)) },
	)
	v.logSection("listings", v.Listings.Err)
	v.logSection("listing_stats", v.ListingStats.Err)
	v.logSection("accounts", v.Accounts.Err)
	v.logSection("engagement", v.Engagement.Err)
	v.logSection("saved", v.Saved.Err)
	v.logSection("referrals", v.Referrals.Err)
	v.logSection("revenue", v.Revenue.Err)
	v.logSection("trends", v.Trends.Err)
	v.logSection("activity", v.Activity.Err)
	v.logSection("notifications", v.Notifications.Err)
}

// KPI is the set of dashboard tiles. Tiles backed by a failed section hold
// zero; the section's Err says why.
type KPI struct {
	TotalOpportunities   int
	ActiveOpportunities  int
	PendingOpportunities int
	TotalUsers           int
	ActiveUsers          int
	SavedOpportunities   int
	Referrals            int
	Revenue              float64
}

// KPIs derives the dashboard tiles from the loaded sections.
func (v *DashboardView) KPIs() KPI {
	listings := v.Listings.Data
	return KPI{
		TotalOpportunities: len(listings),
		ActiveOpportunities: countWhere(listings, func(o winja.Opportunity) bool {
			return o.Status == winja.OpportunityStatusActive
		}),
		PendingOpportunities: countWhere(listings, func(o winja.Opportunity) bool {
			return o.Status == winja.OpportunityStatusPending
		}),
		TotalUsers:         len(v.Accounts.Data),
		ActiveUsers:        v.Engagement.Data.Active,
		SavedOpportunities: len(v.Saved.Data),
		Referrals:          len(v.Referrals.Data.Referrals),
		Revenue:            v.Revenue.Data.Total,
	}
}
