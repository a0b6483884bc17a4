package adminview

import (
	"context"

	"go.uber.org/zap"

	winja "github.com/winjahq/winja-go"
)

// PartnersView drives the partner management screen.
type PartnersView struct {
	view

	Companies Section[[]winja.Partner]

	Filter PartnerFilter
}

// NewPartnersView returns an unloaded partners view. A nil logger disables
// logging.
func NewPartnersView(client winja.Client, logger *zap.Logger) *PartnersView {
	return &PartnersView{view: newView(client, logger)}
}

// Load fetches the partner list.
func (v *PartnersView) Load(ctx context.Context) {
	v.Companies.set(v.client.Partners(ctx, winja.PartnerFilters{}))
	v.logSection("companies", v.Companies.Err)
}

// Filtered returns the partners passing the current filter, in their
// original order.
func (v *PartnersView) Filtered() []winja.Partner {
	return filterSlice(v.Companies.Data, v.Filter.Match)
}

// PartnerDetail is the expanded row of one partner: the record itself plus
// its sponsorships and metrics, each fetched as its own section.
type PartnerDetail struct {
	Partner winja.Partner

	Sponsorships Section[[]winja.SponsoredOpportunity]
	Metrics      Section[winja.PartnerMetrics]
}

// Detail fetches one partner's record and then its sponsorships and metrics
// concurrently. A failed sub-fetch leaves its section holding the error
// while the rest of the detail renders.
func (v *PartnersView) Detail(ctx context.Context, id int64) (PartnerDetail, error) {
	partner, err := v.client.Partner(ctx, id)
	if err != nil {
		return PartnerDetail{}, err
	}

	detail := PartnerDetail{Partner: partner}
	join(ctx,
		func(ctx context.Context) { detail.Sponsorships.set(v.client.PartnerSponsorships(ctx, id)) },
		func(ctx context.Context) { detail.Metrics.set(v.client.PartnerMetrics(ctx, id)) },
	)
	v.logSection("sponsorships", detail.Sponsorships.Err)
	v.logSection("metrics", detail.Metrics.Err)
	return detail, nil
}

// Update saves a partner edit (including a logo upload) and re-fetches the
// list.
func (v *PartnersView) Update(ctx context.Context, id int64, params winja.PartnerParams) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.UpdatePartner(ctx, id, params); err != nil {
		return err
	}
	v.Companies.set(v.client.Partners(ctx, winja.PartnerFilters{}))
	return v.Companies.Err
}

// StatusCounts tallies partners by status across the loaded page.
func (v *PartnersView) StatusCounts() map[string]int {
	return countBy(v.Companies.Data, func(p winja.Partner) string { return p.PartnerStatus })
}
