package adminview

import (
	"context"
	"time"

	"go.uber.org/zap"

	winja "github.com/winjahq/winja-go"
)

// OpportunitiesView drives the opportunities screen: the listing table, the
// type manager, the sponsorship column, and the partner dropdown.
type OpportunitiesView struct {
	view

	Types     Section[[]winja.OpportunityType]
	Listings  Section[[]winja.Opportunity]
	Sponsored Section[[]winja.SponsoredOpportunity]
	Partners  Section[[]winja.Partner]

	Filter OpportunityFilter
}

// NewOpportunitiesView returns an unloaded opportunities view. A nil logger
// disables logging.
func NewOpportunitiesView(client winja.Client, logger *zap.Logger) *OpportunitiesView {
	return &OpportunitiesView{view: newView(client, logger)}
}

// Load fetches the four collections the screen needs concurrently and
// returns when all have settled. Sections fail independently.
func (v *OpportunitiesView) Load(ctx context.Context) {
	join(ctx,
		func(ctx context.Context) { v.Types.set(v.client.OpportunityTypes(ctx)) },
		func(ctx context.Context) { v.Listings.set(v.client.Opportunities(ctx)) },
		func(ctx context.Context) { v.Sponsored.set(v.client.SponsoredOpportunities(ctx)) },
		func(ctx context.Context) { v.Partners.set(v.client.AllPartners(ctx)) },
	)
	v.logSection("types", v.Types.Err)
	v.logSection("listings", v.Listings.Err)
	v.logSection("sponsored", v.Sponsored.Err)
	v.logSection("partners", v.Partners.Err)
}

// Filtered returns the listings passing the current filter, in their
// original order.
func (v *OpportunitiesView) Filtered() []winja.Opportunity {
	return filterSlice(v.Listings.Data, v.Filter.Match)
}

// OpportunityMetrics are the KPI tiles of the opportunities screen, derived
// from the loaded collections.
type OpportunityMetrics struct {
	Types      int
	Total      int
	Active     int
	Pending    int
	Expired    int
	Verified   int
	Unverified int
}

// Metrics derives the screen's KPI tiles from whatever is currently loaded.
func (v *OpportunitiesView) Metrics() OpportunityMetrics {
	listings := v.Listings.Data
	byStatus := func(status string) int {
		return countWhere(listings, func(o winja.Opportunity) bool { return o.Status == status })
	}
	verified := countWhere(listings, func(o winja.Opportunity) bool { return o.Verified.Bool() })

	return OpportunityMetrics{
		Types:      len(v.Types.Data),
		Total:      len(listings),
		Active:     byStatus(winja.OpportunityStatusActive),
		Pending:    byStatus(winja.OpportunityStatusPending),
		Expired:    byStatus(winja.OpportunityStatusExpired),
		Verified:   verified,
		Unverified: len(listings) - verified,
	}
}

// CategoryCounts tallies listings per type name across the loaded page.
func (v *OpportunitiesView) CategoryCounts() map[string]int {
	return countBy(v.Listings.Data, func(o winja.Opportunity) string {
		if o.Type == nil {
			return ""
		}
		return o.Type.Name
	})
}

// IsSponsored reports whether the opportunity has a sponsored placement,
// checked against the separately fetched sponsorship list. The answer is
// only as fresh as the last Load or sponsorship mutation.
func (v *OpportunitiesView) IsSponsored(opportunityID int64) bool {
	for _, s := range v.Sponsored.Data {
		if s.OpportunityID == opportunityID {
			return true
		}
	}
	return false
}

// AddType creates an opportunity type and re-fetches the type list so the
// view reflects the server-assigned ID and counts.
func (v *OpportunitiesView) AddType(ctx context.Context, name string) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.CreateOpportunityType(ctx, name); err != nil {
		return err
	}
	v.Types.set(v.client.OpportunityTypes(ctx))
	return v.Types.Err
}

// RenameType renames an opportunity type and re-fetches the type list.
func (v *OpportunitiesView) RenameType(ctx context.Context, id int64, name string) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.UpdateOpportunityType(ctx, id, name); err != nil {
		return err
	}
	v.Types.set(v.client.OpportunityTypes(ctx))
	return v.Types.Err
}

// DeleteType deletes an opportunity type and re-fetches the type list.
func (v *OpportunitiesView) DeleteType(ctx context.Context, id int64) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if err := v.client.DeleteOpportunityType(ctx, id); err != nil {
		return err
	}
	v.Types.set(v.client.OpportunityTypes(ctx))
	return v.Types.Err
}

// CreateListing creates an opportunity and re-fetches the listing table, so
// the new record shows without a manual reload.
func (v *OpportunitiesView) CreateListing(ctx context.Context, params winja.OpportunityParams) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.CreateOpportunity(ctx, params); err != nil {
		return err
	}
	v.Listings.set(v.client.Opportunities(ctx))
	return v.Listings.Err
}

// UpdateListing replaces an opportunity and re-fetches the listing table.
func (v *OpportunitiesView) UpdateListing(ctx context.Context, id int64, params winja.OpportunityParams) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.UpdateOpportunity(ctx, id, params); err != nil {
		return err
	}
	v.Listings.set(v.client.Opportunities(ctx))
	return v.Listings.Err
}

// DeleteListing deletes an opportunity and re-fetches the listing table.
func (v *OpportunitiesView) DeleteListing(ctx context.Context, id int64) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if err := v.client.DeleteOpportunity(ctx, id); err != nil {
		return err
	}
	v.Listings.set(v.client.Opportunities(ctx))
	return v.Listings.Err
}

// ExportCSV downloads the listing export as CSV bytes.
func (v *OpportunitiesView) ExportCSV(ctx context.Context) ([]byte, error) {
	return v.client.ExportOpportunitiesCSV(ctx)
}

// ExportPDF downloads the listing export as PDF bytes.
func (v *OpportunitiesView) ExportPDF(ctx context.Context) ([]byte, error) {
	return v.client.ExportOpportunitiesPDF(ctx)
}

// sponsorshipWindowDays is the default length of a new sponsored placement.
const sponsorshipWindowDays = 30

// Sponsor creates a sponsored placement for an opportunity and re-fetches
// the sponsorship list so membership checks see it. An unset window defaults
// to thirty days starting today; an unset status starts pending and unpaid.
func (v *OpportunitiesView) Sponsor(ctx context.Context, params winja.SponsorshipParams) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if params.SponsoredFrom == "" {
		params.SponsoredFrom = time.Now().Format("2006-01-02")
	}
	if params.SponsoredTo == "" {
		from, err := time.Parse("2006-01-02", params.SponsoredFrom)
		if err != nil {
			from = time.Now()
		}
		params.SponsoredTo = from.AddDate(0, 0, sponsorshipWindowDays).Format("2006-01-02")
	}
	if params.Status == "" {
		params.Status = winja.SponsorshipStatusPending
	}
	if params.PaymentStatus == "" {
		params.PaymentStatus = winja.PaymentStatusUnpaid
	}

	if _, err := v.client.CreateSponsorship(ctx, params); err != nil {
		return err
	}
	v.Sponsored.set(v.client.SponsoredOpportunities(ctx))
	return v.Sponsored.Err
}
