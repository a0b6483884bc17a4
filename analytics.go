package winja

import (
	"context"
	"time"
)

// OpportunityAnalytics are aggregate listing numbers computed server-side.
type OpportunityAnalytics struct {
	Total        int   `json:"total"`
	Active       int   `json:"active"`
	Pending      int   `json:"pending"`
	Expired      int   `json:"expired"`
	Views        int64 `json:"views"`
	Applications int64 `json:"applications"`
}

// EngagementAnalytics are user activity numbers computed server-side.
type EngagementAnalytics struct {
	Active    int `json:"active"`
	New       int `json:"new"`
	Returning int `json:"returning"`
}

// RevenueAnalytics break platform revenue down by source.
type RevenueAnalytics struct {
	Total         float64 `json:"total"`
	Subscriptions float64 `json:"subscriptions"`
	Ads           float64 `json:"ads"`
	Sponsorships  float64 `json:"sponsorships"`
}

// TrendPoint is one point of the dashboard trend chart.
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ActivityLog is one admin audit trail entry.
type ActivityLog struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

// SavedOpportunity links a user to an opportunity they bookmarked.
type SavedOpportunity struct {
	ID            int64 `json:"id"`
	OpportunityID int64 `json:"opportunity_id"`
	UserID        int64 `json:"user_id"`
}

func (c *winjaClient) OpportunityAnalytics(ctx context.Context) (OpportunityAnalytics, error) {
	resp, err := c.get(ctx, "/opportunities/analytics")
	if err != nil {
		return OpportunityAnalytics{}, err
	}
	return decodeObject[OpportunityAnalytics](resp)
}

func (c *winjaClient) UserEngagement(ctx context.Context) (EngagementAnalytics, error) {
	resp, err := c.get(ctx, "/analytics/user-engagement")
	if err != nil {
		return EngagementAnalytics{}, err
	}
	return decodeObject[EngagementAnalytics](resp)
}

func (c *winjaClient) RevenueAnalytics(ctx context.Context) (RevenueAnalytics, error) {
	resp, err := c.get(ctx, "/analytics/revenue")
	if err != nil {
		return RevenueAnalytics{}, err
	}
	return decodeObject[RevenueAnalytics](resp)
}

func (c *winjaClient) Trends(ctx context.Context) ([]TrendPoint, error) {
	resp, err := c.get(ctx, "/analytics/trends")
	if err != nil {
		return nil, err
	}
	return decodeList[TrendPoint](resp, "trends")
}

// ExportOpportunitiesCSV returns the raw export bytes; the payload is a file
// download, not JSON.
func (c *winjaClient) ExportOpportunitiesCSV(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/opportunities/export/csv")
}

// ExportOpportunitiesPDF returns the raw export bytes; the payload is a file
// download, not JSON.
func (c *winjaClient) ExportOpportunitiesPDF(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/opportunities/export/pdf")
}

func (c *winjaClient) ActivityLogs(ctx context.Context) ([]ActivityLog, error) {
	resp, err := c.get(ctx, "/activity-logs")
	if err != nil {
		return nil, err
	}
	return decodeList[ActivityLog](resp, "logs")
}

func (c *winjaClient) SavedOpportunities(ctx context.Context) ([]SavedOpportunity, error) {
	resp, err := c.get(ctx, "/saved-opportunities")
	if err != nil {
		return nil, err
	}
	return decodeList[SavedOpportunity](resp)
}
