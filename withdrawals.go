package winja

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Withdrawal statuses. Approve and reject are terminal one-way transitions.
const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusApproved = "approved"
	WithdrawalStatusRejected = "rejected"
)

// WithdrawalRequest is a user's request to cash out reward points.
type WithdrawalRequest struct {
	ID             int64             `json:"id"`
	Amount         float64           `json:"amount"`
	PointsUsed     int               `json:"points_used"`
	PaymentMethod  string            `json:"payment_method"`
	PaymentDetails map[string]string `json:"payment_details"`
	Status         string            `json:"status"`
	AdminNotes     string            `json:"admin_notes"`
	User           User              `json:"user"`
	CreatedAt      time.Time         `json:"created_at"`
}

// WithdrawalFilters narrows a withdrawal listing. Empty fields match
// everything.
type WithdrawalFilters struct {
	Status        string
	PaymentMethod string
}

func (f WithdrawalFilters) query() string {
	params := url.Values{}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.PaymentMethod != "" {
		params.Set("payment_method", f.PaymentMethod)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// WithdrawalStats are aggregate withdrawal numbers computed server-side.
type WithdrawalStats struct {
	Pending   int     `json:"pending"`
	Approved  int     `json:"approved"`
	Rejected  int     `json:"rejected"`
	TotalPaid float64 `json:"total_paid"`
}

func (c *winjaClient) Withdrawals(ctx context.Context, filters WithdrawalFilters) ([]WithdrawalRequest, error) {
	resp, err := c.get(ctx, "/withdrawals"+filters.query())
	if err != nil {
		return nil, err
	}
	return decodeList[WithdrawalRequest](resp, "withdrawals")
}

func (c *winjaClient) Withdrawal(ctx context.Context, id int64) (WithdrawalRequest, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/withdrawals/%d", id))
	if err != nil {
		return WithdrawalRequest{}, err
	}
	return decodeObject[WithdrawalRequest](resp)
}

func (c *winjaClient) ApproveWithdrawal(ctx context.Context, id int64, notes string) error {
	body := map[string]string{"admin_notes": notes}
	_, err := c.postJSON(ctx, fmt.Sprintf("/withdrawals/%d/approve", id), body)
	return err
}

func (c *winjaClient) RejectWithdrawal(ctx context.Context, id int64, notes string) error {
	body := map[string]string{"admin_notes": notes}
	_, err := c.postJSON(ctx, fmt.Sprintf("/withdrawals/%d/reject", id), body)
	return err
}

func (c *winjaClient) WithdrawalStats(ctx context.Context) (WithdrawalStats, error) {
	resp, err := c.get(ctx, "/withdrawals/stats")
	if err != nil {
		return WithdrawalStats{}, err
	}
	return decodeObject[WithdrawalStats](resp)
}
