package winja

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Referral statuses. The pending-to-completed transition happens
// server-side when the invited user signs up.
const (
	ReferralStatusPending   = "pending"
	ReferralStatusCompleted = "completed"
)

// Referral records one friend invitation and the points it earned.
type Referral struct {
	ID        int64     `json:"id"`
	Referred  User      `json:"referred"`
	Status    string    `json:"status"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

// ReferralStats are aggregate referral numbers computed server-side.
type ReferralStats struct {
	Total         int `json:"total"`
	Completed     int `json:"completed"`
	Pending       int `json:"pending"`
	PointsAwarded int `json:"points_awarded"`
}

// LeaderboardEntry is one row of the referral leaderboard.
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	User      User   `json:"user"`
	Completed int    `json:"completed"`
	Points    int    `json:"points"`
	Badge     string `json:"badge"`
}

// Badge is a reward badge users earn through referrals.
type Badge struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	PointsRequired int    `json:"points_required"`
}

// PointsSettings is the reward points configuration.
type PointsSettings struct {
	ReferralPoints  int     `json:"referral_points"`
	SignupPoints    int     `json:"signup_points"`
	ConversionRate  float64 `json:"conversion_rate"`
	MinWithdrawal   int     `json:"min_withdrawal"`
	PointsPerDollar int     `json:"points_per_dollar"`
}

// PointsOverview is the aggregate points position across all users.
type PointsOverview struct {
	TotalAwarded  int64 `json:"total_awarded"`
	TotalRedeemed int64 `json:"total_redeemed"`
	Outstanding   int64 `json:"outstanding"`
}

// Referrals returns both halves of the referrals envelope: the referral
// list and the server-computed stats that ride alongside it.
func (c *winjaClient) Referrals(ctx context.Context) ([]Referral, ReferralStats, error) {
	resp, err := c.get(ctx, "/referrals")
	if err != nil {
		return nil, ReferralStats{}, err
	}

	referrals, err := decodeList[Referral](resp, "referrals")
	if err != nil {
		return nil, ReferralStats{}, err
	}

	var envelope struct {
		Stats ReferralStats `json:"stats"`
	}
	if err := json.Unmarshal(resp, &envelope); err != nil {
		return nil, ReferralStats{}, fmt.Errorf("failed to unmarshal referral stats: %w", err)
	}

	return referrals, envelope.Stats, nil
}

func (c *winjaClient) CreateReferral(ctx context.Context, name, email string) (Referral, error) {
	body := map[string]string{"name": name, "email": email}
	resp, err := c.postJSON(ctx, "/referrals", body)
	if err != nil {
		return Referral{}, err
	}
	return decodeObject[Referral](resp)
}

func (c *winjaClient) CompleteReferral(ctx context.Context, id int64) error {
	_, err := c.postJSON(ctx, fmt.Sprintf("/referrals/%d/complete", id), nil)
	return err
}

func (c *winjaClient) ReferralLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	resp, err := c.get(ctx, "/referrals/leaderboard")
	if err != nil {
		return nil, err
	}
	return decodeList[LeaderboardEntry](resp, "leaderboard")
}

func (c *winjaClient) Badges(ctx context.Context) ([]Badge, error) {
	resp, err := c.get(ctx, "/badges")
	if err != nil {
		return nil, err
	}
	return decodeList[Badge](resp, "badges")
}

func (c *winjaClient) CheckBadgeEligibility(ctx context.Context) ([]Badge, error) {
	resp, err := c.postJSON(ctx, "/badges/check-eligibility", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Badge](resp, "badges")
}

func (c *winjaClient) PointsSettings(ctx context.Context) (PointsSettings, error) {
	resp, err := c.get(ctx, "/points/settings")
	if err != nil {
		return PointsSettings{}, err
	}
	return decodeObject[PointsSettings](resp)
}

func (c *winjaClient) UpdatePointsSettings(ctx context.Context, settings PointsSettings) (PointsSettings, error) {
	resp, err := c.putJSON(ctx, "/points/settings", settings)
	if err != nil {
		return PointsSettings{}, err
	}
	return decodeObject[PointsSettings](resp)
}

func (c *winjaClient) PointsOverview(ctx context.Context) (PointsOverview, error) {
	resp, err := c.get(ctx, "/points/overview")
	if err != nil {
		return PointsOverview{}, err
	}
	return decodeObject[PointsOverview](resp)
}
