package winja

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Partner statuses.
const (
	PartnerStatusActive    = "active"
	PartnerStatusInactive  = "inactive"
	PartnerStatusSuspended = "suspended"
)

// Partner is a company that sponsors opportunities on the platform.
type Partner struct {
	ID                 int64      `json:"id"`
	CompanyName        string     `json:"company_name"`
	CompanyDescription string     `json:"company_description"`
	CompanyWebsite     string     `json:"company_website"`
	CompanyLogo        string     `json:"company_logo"`
	PartnerStatus      string     `json:"partner_status"`
	ContactName        string     `json:"contact_name"`
	ContactEmail       string     `json:"contact_email"`
	VerifiedAt         *time.Time `json:"verified_at"`
	CreatedAt          time.Time  `json:"created_at"`
}

// PartnerFilters narrows a partner listing. Empty fields match everything.
type PartnerFilters struct {
	Search string
	Status string
}

func (f PartnerFilters) query() string {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Status != "" {
		params.Set("partner_status", f.Status)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// PartnerParams carries the mutable fields of a partner update, including an
// optional logo upload.
type PartnerParams struct {
	CompanyName        string
	CompanyDescription string
	CompanyWebsite     string
	PartnerStatus      string
	ContactName        string
	ContactEmail       string
	Logo               *FileUpload
}

func (p PartnerParams) payload() *multipartPayload {
	payload := &multipartPayload{}
	payload.setOptional("company_name", p.CompanyName)
	payload.setOptional("company_description", p.CompanyDescription)
	payload.setOptional("company_website", p.CompanyWebsite)
	payload.setOptional("partner_status", p.PartnerStatus)
	payload.setOptional("contact_name", p.ContactName)
	payload.setOptional("contact_email", p.ContactEmail)
	payload.setFile("company_logo", p.Logo)
	return payload
}

// PartnerMetrics are per-partner engagement numbers computed server-side.
type PartnerMetrics struct {
	TotalSponsorships  int   `json:"total_sponsorships"`
	ActiveSponsorships int   `json:"active_sponsorships"`
	TotalViews         int64 `json:"total_views"`
	TotalClicks        int64 `json:"total_clicks"`
}

func (c *winjaClient) Partners(ctx context.Context, filters PartnerFilters) ([]Partner, error) {
	resp, err := c.get(ctx, "/partners"+filters.query())
	if err != nil {
		return nil, err
	}
	return decodeList[Partner](resp, "partners")
}

func (c *winjaClient) AllPartners(ctx context.Context) ([]Partner, error) {
	resp, err := c.get(ctx, "/partners/all")
	if err != nil {
		return nil, err
	}
	return decodeList[Partner](resp, "partners")
}

func (c *winjaClient) Partner(ctx context.Context, id int64) (Partner, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/partners/%d", id))
	if err != nil {
		return Partner{}, err
	}
	return decodeObject[Partner](resp)
}

func (c *winjaClient) UpdatePartner(ctx context.Context, id int64, params PartnerParams) (Partner, error) {
	// Same method-override workaround as opportunity updates: multipart
	// bodies ride a POST.
	endpoint := fmt.Sprintf("/partners/%d?_method=PUT", id)
	resp, err := c.postMultipart(ctx, endpoint, params.payload())
	if err != nil {
		return Partner{}, err
	}
	return decodeObject[Partner](resp)
}

func (c *winjaClient) PartnerSponsorships(ctx context.Context, id int64) ([]SponsoredOpportunity, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/partners/%d/sponsored-opportunities", id))
	if err != nil {
		return nil, err
	}
	return decodeList[SponsoredOpportunity](resp)
}

func (c *winjaClient) PartnerMetrics(ctx context.Context, id int64) (PartnerMetrics, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/partners/%d/metrics", id))
	if err != nil {
		return PartnerMetrics{}, err
	}
	return decodeObject[PartnerMetrics](resp)
}
