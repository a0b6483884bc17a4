package winja

import (
	"context"
	"fmt"
)

// Sponsorship statuses and payment states.
const (
	SponsorshipStatusPending  = "pending"
	SponsorshipStatusApproved = "approved"
	SponsorshipStatusRejected = "rejected"

	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

// SponsoredOpportunity is a paid promotional placement linking an
// opportunity to a partner for a time window.
type SponsoredOpportunity struct {
	ID            int64  `json:"id"`
	OpportunityID int64  `json:"opportunity_id"`
	PartnerID     int64  `json:"partner_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	SponsoredFrom string `json:"sponsored_from"`
	SponsoredTo   string `json:"sponsored_to"`
}

// SponsorshipParams carries the fields of a sponsorship create or update.
type SponsorshipParams struct {
	OpportunityID int64  `json:"opportunity_id"`
	PartnerID     int64  `json:"partner_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	SponsoredFrom string `json:"sponsored_from"`
	SponsoredTo   string `json:"sponsored_to"`
}

func (c *winjaClient) SponsoredOpportunities(ctx context.Context) ([]SponsoredOpportunity, error) {
	resp, err := c.get(ctx, "/sponsored-opportunities")
	if err != nil {
		return nil, err
	}
	return decodeList[SponsoredOpportunity](resp)
}

func (c *winjaClient) CreateSponsorship(ctx context.Context, params SponsorshipParams) (SponsoredOpportunity, error) {
	resp, err := c.postJSON(ctx, "/sponsored-opportunities", params)
	if err != nil {
		return SponsoredOpportunity{}, err
	}
	return decodeObject[SponsoredOpportunity](resp)
}

func (c *winjaClient) UpdateSponsorship(ctx context.Context, id int64, params SponsorshipParams) (SponsoredOpportunity, error) {
	resp, err := c.putJSON(ctx, fmt.Sprintf("/sponsored-opportunities/%d", id), params)
	if err != nil {
		return SponsoredOpportunity{}, err
	}
	return decodeObject[SponsoredOpportunity](resp)
}

func (c *winjaClient) DeleteSponsorship(ctx context.Context, id int64) error {
	return c.deleteResource(ctx, fmt.Sprintf("/sponsored-opportunities/%d", id))
}
