package winja

import (
	"context"
	"fmt"
	"time"
)

// Ad campaign statuses. Campaigns move from pending through approval into an
// active run and completion; rejection ends them early.
const (
	AdStatusPending   = "pending"
	AdStatusApproved  = "approved"
	AdStatusRejected  = "rejected"
	AdStatusActive    = "active"
	AdStatusCompleted = "completed"
)

// Ad placement types.
const (
	AdTypeFeatured = "featured"
	AdTypeInline   = "inline"
)

// AdCampaign represents a paid ad run a partner bought for one of their
// opportunities.
type AdCampaign struct {
	ID            int64       `json:"id"`
	Partner       Partner     `json:"partner"`
	Opportunity   Opportunity `json:"opportunity"`
	AdType        string      `json:"ad_type"`
	DurationValue int         `json:"duration_value"`
	DurationType  string      `json:"duration_type"`
	AmountPaid    float64     `json:"amount_paid"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// AdPricingSetting is the price of one ad type per duration unit.
type AdPricingSetting struct {
	ID           int64   `json:"id"`
	AdType       string  `json:"ad_type"`
	DurationType string  `json:"duration_type"`
	Price        float64 `json:"price"`
}

// AdPricingParams carries the mutable fields of a pricing update.
type AdPricingParams struct {
	Price float64 `json:"price"`
}

// AdAnalytics are aggregate ad performance numbers computed server-side.
type AdAnalytics struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

// AdRevenue are aggregate ad revenue numbers computed server-side.
type AdRevenue struct {
	Total     float64 `json:"total"`
	ThisMonth float64 `json:"this_month"`
	Pending   float64 `json:"pending"`
}

func (c *winjaClient) AdCampaigns(ctx context.Context) ([]AdCampaign, error) {
	resp, err := c.get(ctx, "/ads/campaigns")
	if err != nil {
		return nil, err
	}
	return decodeList[AdCampaign](resp, "campaigns")
}

func (c *winjaClient) ApproveAdCampaign(ctx context.Context, id int64) error {
	_, err := c.postJSON(ctx, fmt.Sprintf("/ads/campaigns/%d/approve", id), nil)
	return err
}

func (c *winjaClient) RejectAdCampaign(ctx context.Context, id int64) error {
	_, err := c.postJSON(ctx, fmt.Sprintf("/ads/campaigns/%d/reject", id), nil)
	return err
}

func (c *winjaClient) AdPricing(ctx context.Context) ([]AdPricingSetting, error) {
	resp, err := c.get(ctx, "/ads/settings")
	if err != nil {
		return nil, err
	}
	return decodeList[AdPricingSetting](resp, "settings")
}

func (c *winjaClient) UpdateAdPricing(ctx context.Context, id int64, params AdPricingParams) (AdPricingSetting, error) {
	resp, err := c.putJSON(ctx, fmt.Sprintf("/ads/settings/%d", id), params)
	if err != nil {
		return AdPricingSetting{}, err
	}
	return decodeObject[AdPricingSetting](resp)
}

func (c *winjaClient) AdAnalytics(ctx context.Context) (AdAnalytics, error) {
	resp, err := c.get(ctx, "/ads/analytics")
	if err != nil {
		return AdAnalytics{}, err
	}
	return decodeObject[AdAnalytics](resp)
}

func (c *winjaClient) AdRevenue(ctx context.Context) (AdRevenue, error) {
	resp, err := c.get(ctx, "/ads/revenue")
	if err != nil {
		return AdRevenue{}, err
	}
	return decodeObject[AdRevenue](resp)
}
