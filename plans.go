package winja

import (
	"context"
	"fmt"
)

// Subscription plan statuses.
const (
	PlanStatusActive   = "active"
	PlanStatusInactive = "inactive"
)

// SubscriptionPlan is a paid tier offered to partners and users.
type SubscriptionPlan struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	DurationMonths int      `json:"duration_months"`
	Features       []string `json:"features"`
	Status         string   `json:"status"`
}

// SubscriptionPlanParams carries the fields of a plan create or update.
type SubscriptionPlanParams struct {
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	DurationMonths int      `json:"duration_months"`
	Features       []string `json:"features"`
	Status         string   `json:"status,omitempty"`
}

func (c *winjaClient) SubscriptionPlans(ctx context.Context) ([]SubscriptionPlan, error) {
	resp, err := c.get(ctx, "/admin/subscription-plans")
	if err != nil {
		return nil, err
	}
	return decodeList[SubscriptionPlan](resp, "plans")
}

func (c *winjaClient) CreateSubscriptionPlan(ctx context.Context, params SubscriptionPlanParams) (SubscriptionPlan, error) {
	resp, err := c.postJSON(ctx, "/admin/subscription-plans", params)
	if err != nil {
		return SubscriptionPlan{}, err
	}
	return decodeObject[SubscriptionPlan](resp)
}

func (c *winjaClient) UpdateSubscriptionPlan(ctx context.Context, id int64, params SubscriptionPlanParams) (SubscriptionPlan, error) {
	resp, err := c.putJSON(ctx, fmt.Sprintf("/admin/subscription-plans/%d", id), params)
	if err != nil {
		return SubscriptionPlan{}, err
	}
	return decodeObject[SubscriptionPlan](resp)
}

func (c *winjaClient) DeleteSubscriptionPlan(ctx context.Context, id int64) error {
	return c.deleteResource(ctx, fmt.Sprintf("/admin/subscription-plans/%d", id))
}
