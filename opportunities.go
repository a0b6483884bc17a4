package winja

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Opportunity statuses. Listing statuses are capitalized on the wire,
// unlike every other status enum in the API.
const (
	OpportunityStatusActive  = "Active"
	OpportunityStatusPending = "Pending"
	OpportunityStatusExpired = "Expired"
)

// Opportunity is a scholarship, grant, or job listing surfaced to end users.
type Opportunity struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Eligibility     string           `json:"eligibility"`
	Sponsor         string           `json:"sponsor"`
	Type            *OpportunityType `json:"type"`
	TypeID          int64            `json:"opportunity_type_id"`
	PartnerID       int64            `json:"partner_id"`
	Status          string           `json:"status"`
	Verified        Flag             `json:"verified"`
	Expiry          string           `json:"expiry"`
	ImageURL        string           `json:"image_url"`
	ApplicationLink string           `json:"application_link"`
	Views           int64            `json:"views"`
	Applications    int64            `json:"applications"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// OpportunityType is a category an opportunity belongs to. Count is derived
// server-side and read-only.
type OpportunityType struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// OpportunityParams carries the full form of a create or update. Updates are
// full-replace: the whole form is resent, not a diff.
type OpportunityParams struct {
	Title           string
	Description     string
	Eligibility     string
	TypeID          int64
	PartnerID       int64
	Status          string
	Verified        bool
	Expiry          string
	ApplicationLink string
	Image           *FileUpload
}

func (p OpportunityParams) payload() *multipartPayload {
	payload := &multipartPayload{}
	payload.set("title", p.Title)
	payload.setOptional("description", p.Description)
	payload.setOptional("eligibility", p.Eligibility)
	if p.TypeID != 0 {
		payload.setInt("opportunity_type_id", p.TypeID)
	}
	if p.PartnerID != 0 {
		payload.setInt("partner_id", p.PartnerID)
	}
	payload.setOptional("status", p.Status)
	payload.setBool("verified", p.Verified)
	payload.setOptional("expiry", p.Expiry)
	payload.setOptional("application_link", p.ApplicationLink)
	payload.setFile("image", p.Image)
	return payload
}

func (c *winjaClient) OpportunityTypes(ctx context.Context) ([]OpportunityType, error) {
	resp, err := c.get(ctx, "/opportunity-types")
	if err != nil {
		return nil, err
	}
	return decodeList[OpportunityType](resp, "types")
}

func (c *winjaClient) CreateOpportunityType(ctx context.Context, name string) (OpportunityType, error) {
	resp, err := c.postJSON(ctx, "/opportunity-types", map[string]string{"name": name})
	if err != nil {
		return OpportunityType{}, err
	}
	return decodeObject[OpportunityType](resp)
}

func (c *winjaClient) UpdateOpportunityType(ctx context.Context, id int64, name string) (OpportunityType, error) {
	endpoint := fmt.Sprintf("/opportunity-types/%d", id)
	resp, err := c.putJSON(ctx, endpoint, map[string]string{"name": name})
	if err != nil {
		return OpportunityType{}, err
	}
	return decodeObject[OpportunityType](resp)
}

func (c *winjaClient) DeleteOpportunityType(ctx context.Context, id int64) error {
	return c.deleteResource(ctx, fmt.Sprintf("/opportunity-types/%d", id))
}

func (c *winjaClient) Opportunities(ctx context.Context) ([]Opportunity, error) {
	resp, err := c.get(ctx, "/opportunities")
	if err != nil {
		return nil, err
	}
	return decodeList[Opportunity](resp, "opportunities")
}

func (c *winjaClient) CreateOpportunity(ctx context.Context, params OpportunityParams) (Opportunity, error) {
	resp, err := c.postMultipart(ctx, "/opportunities", params.payload())
	if err != nil {
		return Opportunity{}, err
	}
	return decodeObject[Opportunity](resp)
}

func (c *winjaClient) UpdateOpportunity(ctx context.Context, id int64, params OpportunityParams) (Opportunity, error) {
	// POST with a method override: the backend cannot read a multipart body
	// out of a native PUT.
	endpoint := fmt.Sprintf("/opportunities/%d?_method=PUT", id)
	resp, err := c.postMultipart(ctx, endpoint, params.payload())
	if err != nil {
		return Opportunity{}, err
	}
	return decodeObject[Opportunity](resp)
}

func (c *winjaClient) DeleteOpportunity(ctx context.Context, id int64) error {
	return c.deleteResource(ctx, fmt.Sprintf("/opportunities/%d", id))
}

func (c *winjaClient) IncrementOpportunityCounter(ctx context.Context, id int64, counter string) error {
	endpoint := fmt.Sprintf("/opportunities/%d/increment/%s", id, url.PathEscape(counter))
	_, err := c.postJSON(ctx, endpoint, nil)
	return err
}
