package adminview

import (
	"context"

	"go.uber.org/zap"

	winja "github.com/winjahq/winja-go"
)

// ReferralsView drives the referrals and rewards screen: invitations, the
// leaderboard, badges, the points position, and withdrawal management.
type ReferralsView struct {
	view

	Referrals    Section[ReferralSummary]
	Leaderboard  Section[[]winja.LeaderboardEntry]
	Badges       Section[[]winja.Badge]
	Points       Section[winja.PointsOverview]
	PointsConfig Section[winja.PointsSettings]

	Withdrawals      Section[[]winja.WithdrawalRequest]
	WithdrawalTotals Section[winja.WithdrawalStats]

	// WithdrawalFilter narrows the withdrawal section on the next load or
	// refresh; it is applied server-side.
	WithdrawalFilter winja.WithdrawalFilters
}

// NewReferralsView returns an unloaded referrals view. A nil logger disables
// logging.
func NewReferralsView(client winja.Client, logger *zap.Logger) *ReferralsView {
	return &ReferralsView{view: newView(client, logger)}
}

// Load fetches every section of the screen concurrently and returns when
// all have settled.
func (v *ReferralsView) Load(ctx context.Context) {
	join(ctx,
		func(ctx context.Context) { v.loadReferrals(ctx) },
		func(ctx context.Context) { v.Leaderboard.set(v.client.ReferralLeaderboard(ctx)) },
		func(ctx context.Context) { v.Badges.set(v.client.Badges(ctx)) },
		func(ctx context.Context) { v.Points.set(v.client.PointsOverview(ctx)) },
		func(ctx context.Context) { v.PointsConfig.set(v.client.PointsSettings(ctx)) },
		func(ctx context.Context) { v.Withdrawals.set(v.client.Withdrawals(ctx, v.WithdrawalFilter)) },
		func(ctx context.Context) { v.WithdrawalTotals.set(v.client.WithdrawalStats(ctx)) },
	)
	v.logSection("referrals", v.Referrals.Err)
	v.logSection("leaderboard", v.Leaderboard.Err)
	v.logSection("badges", v.Badges.Err)
	v.logSection("points", v.Points.Err)
	v.logSection("points_config", v.PointsConfig.Err)
	v.logSection("withdrawals", v.Withdrawals.Err)
	v.logSection("withdrawal_totals", v.WithdrawalTotals.Err)
}

func (v *ReferralsView) loadReferrals(ctx context.Context) {
	referrals, stats, err := v.client.Referrals(ctx)
	v.Referrals.set(ReferralSummary{Referrals: referrals, Stats: stats}, err)
}

// Invite sends a friend invitation and re-fetches the referral list and
// stats.
func (v *ReferralsView) Invite(ctx context.Context, name, email string) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.CreateReferral(ctx, name, email); err != nil {
		return err
	}
	v.loadReferrals(ctx)
	return v.Referrals.Err
}

// SavePointsConfig updates the points configuration and re-fetches both the
// configuration and the points position derived from it.
func (v *ReferralsView) SavePointsConfig(ctx context.Context, settings winja.PointsSettings) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.UpdatePointsSettings(ctx, settings); err != nil {
		return err
	}
	join(ctx,
		func(ctx context.Context) { v.PointsConfig.set(v.client.PointsSettings(ctx)) },
		func(ctx context.Context) { v.Points.set(v.client.PointsOverview(ctx)) },
	)
	if v.PointsConfig.Err != nil {
		return v.PointsConfig.Err
	}
	return v.Points.Err
}

// ApproveWithdrawal approves a pending withdrawal with optional notes, then
// re-fetches the withdrawal list and totals.
func (v *ReferralsView) ApproveWithdrawal(ctx context.Context, id int64, notes string) error {
	return v.resolveWithdrawal(ctx, id, notes, v.client.ApproveWithdrawal)
}

// RejectWithdrawal rejects a pending withdrawal with optional notes, then
// re-fetches the withdrawal list and totals.
func (v *ReferralsView) RejectWithdrawal(ctx context.Context, id int64, notes string) error {
	return v.resolveWithdrawal(ctx, id, notes, v.client.RejectWithdrawal)
}

func (v *ReferralsView) resolveWithdrawal(ctx context.Context, id int64, notes string, action func(context.Context, int64, string) error) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if err := action(ctx, id, notes); err != nil {
		return err
	}
	join(ctx,
		func(ctx context.Context) { v.Withdrawals.set(v.client.Withdrawals(ctx, v.WithdrawalFilter)) },
		func(ctx context.Context) { v.WithdrawalTotals.set(v.client.WithdrawalStats(ctx)) },
	)
	if v.Withdrawals.Err != nil {
		return v.Withdrawals.Err
	}
	return v.WithdrawalTotals.Err
}

// RefreshWithdrawals re-fetches the withdrawal section with the current
// filter.
func (v *ReferralsView) RefreshWithdrawals(ctx context.Context) error {
	v.Withdrawals.set(v.client.Withdrawals(ctx, v.WithdrawalFilter))
	return v.Withdrawals.Err
}
