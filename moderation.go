package winja

import (
	"context"
	"fmt"
)

// Report statuses. A report starts pending; warned, removed, and banned are
// terminal.
const (
	ReportStatusPending = "pending"
	ReportStatusWarned  = "warned"
	ReportStatusRemoved = "removed"
	ReportStatusBanned  = "banned"
)

// Moderation action types accepted by TakeModerationAction.
const (
	ModerationActionWarn   = "warn"
	ModerationActionRemove = "remove"
	ModerationActionBan    = "ban"
)

// Report is a moderation report filed against a listing or a user. The
// reportable_type field carries the server-side model name (e.g.
// "App\\Models\\Opportunity"); callers classify reports by substring match
// on it.
type Report struct {
	ID             int64  `json:"id"`
	ReportableType string `json:"reportable_type"`
	ReportableID   int64  `json:"reportable_id"`
	Title          string `json:"title"`
	Name           string `json:"name"`
	Reason         string `json:"reason"`
	Reporter       string `json:"reporter"`
	Status         string `json:"status"`
	Date           string `json:"date"`
}

// Resolved reports whether the report has left the pending state. Resolved
// reports accept no further moderation actions.
func (r Report) Resolved() bool {
	return r.Status != ReportStatusPending && r.Status != ""
}

// ModerationAction is the payload of a moderation decision.
type ModerationAction struct {
	ActionType string `json:"action_type"`
	Reason     string `json:"reason"`
}

// ModerationStats are aggregate moderation numbers computed server-side.
type ModerationStats struct {
	Pending     int `json:"pending"`
	Resolved    int `json:"resolved"`
	Listings    int `json:"listings"`
	Users       int `json:"users"`
	AutoFlagged int `json:"auto_flagged"`
}

// FlaggedContent is content surfaced by automatic moderation.
type FlaggedContent struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	FlaggedBy string `json:"flagged_by"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	Date      string `json:"date"`
}

func (c *winjaClient) ModerationReports(ctx context.Context) ([]Report, error) {
	resp, err := c.get(ctx, "/moderation/reports")
	if err != nil {
		return nil, err
	}
	// Reports arrive as {"reports": {"data": [...]}}, a paginator nested
	// under a named key.
	return decodeList[Report](resp, "reports")
}

func (c *winjaClient) ModerationReport(ctx context.Context, id int64) (Report, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/moderation/reports/%d", id))
	if err != nil {
		return Report{}, err
	}
	return decodeObject[Report](resp)
}

func (c *winjaClient) TakeModerationAction(ctx context.Context, id int64, action ModerationAction) error {
	_, err := c.postJSON(ctx, fmt.Sprintf("/moderation/reports/%d/action", id), action)
	return err
}

func (c *winjaClient) ModerationStats(ctx context.Context) (ModerationStats, error) {
	resp, err := c.get(ctx, "/moderation/stats")
	if err != nil {
		return ModerationStats{}, err
	}
	return decodeObject[ModerationStats](resp)
}

func (c *winjaClient) AutoFlaggedContent(ctx context.Context) ([]FlaggedContent, error) {
	resp, err := c.get(ctx, "/moderation/auto-flagged")
	if err != nil {
		return nil, err
	}
	return decodeList[FlaggedContent](resp)
}

func (c *winjaClient) UserModerationHistory(ctx context.Context, userID int64) ([]Report, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/moderation/users/%d/history", userID))
	if err != nil {
		return nil, err
	}
	return decodeList[Report](resp, "reports")
}
