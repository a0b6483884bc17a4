package adminview

import (
	"context"

	"go.uber.org/zap"

	winja "github.com/winjahq/winja-go"
)

// AdsView drives the ad management screen: campaign review, pricing, and
// performance tabs.
type AdsView struct {
	view

	Campaigns   Section[[]winja.AdCampaign]
	Pricing     Section[[]winja.AdPricingSetting]
	Performance Section[winja.AdAnalytics]
	Revenue     Section[winja.AdRevenue]
}

// NewAdsView returns an unloaded ads view. A nil logger disables logging.
func NewAdsView(client winja.Client, logger *zap.Logger) *AdsView {
	return &AdsView{view: newView(client, logger)}
}

// Load fetches every tab's data concurrently and returns when all have
// settled.
func (v *AdsView) Load(ctx context.Context) {
	join(ctx,
		func(ctx context.Context) { v.Campaigns.set(v.client.AdCampaigns(ctx)) },
		func(ctx context.Context) { v.Pricing.set(v.client.AdPricing(ctx)) },
		func(ctx context.Context) { v.Performance.set(v.client.AdAnalytics(ctx)) },
		func(ctx context.Context) { v.Revenue.set(v.client.AdRevenue(ctx)) },
	)
	v.logSection("campaigns", v.Campaigns.Err)
	v.logSection("pricing", v.Pricing.Err)
	v.logSection("performance", v.Performance.Err)
	v.logSection("revenue", v.Revenue.Err)
}

// Approve approves a pending campaign and reloads the screen: approval
// moves money, so revenue and analytics refresh along with the campaign
// list.
func (v *AdsView) Approve(ctx context.Context, id int64) error {
	return v.review(ctx, id, v.client.ApproveAdCampaign)
}

// Reject rejects a pending campaign and reloads the screen.
func (v *AdsView) Reject(ctx context.Context, id int64) error {
	return v.review(ctx, id, v.client.RejectAdCampaign)
}

func (v *AdsView) review(ctx context.Context, id int64, action func(context.Context, int64) error) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if err := action(ctx, id); err != nil {
		return err
	}
	v.Load(ctx)
	return v.Campaigns.Err
}

// SetPrice updates one pricing setting and re-fetches the pricing list.
func (v *AdsView) SetPrice(ctx context.Context, id int64, price float64) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.UpdateAdPricing(ctx, id, winja.AdPricingParams{Price: price}); err != nil {
		return err
	}
	v.Pricing.set(v.client.AdPricing(ctx))
	return v.Pricing.Err
}

// StatusCounts tallies campaigns by status across the loaded list.
func (v *AdsView) StatusCounts() map[string]int {
	return countBy(v.Campaigns.Data, func(c winja.AdCampaign) string { return c.Status })
}
