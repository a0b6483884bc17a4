package adminview

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	winja "github.com/winjahq/winja-go"
)

// ErrReportResolved is returned when a moderation action is attempted on a
// report that already left the pending state. Warned, removed, and banned
// are terminal: no transition leads out of them, and no request is issued
// for the attempt.
var ErrReportResolved = errors.New("report is already resolved")

// ModerationView drives the moderation screen: reported listings, reported
// users, auto-flagged content, and the stats row.
type ModerationView struct {
	view

	ReportedListings Section[[]winja.Report]
	ReportedUsers    Section[[]winja.Report]
	AutoFlagged      Section[[]winja.FlaggedContent]
	Stats            Section[winja.ModerationStats]
}

// NewModerationView returns an unloaded moderation view. A nil logger
// disables logging.
func NewModerationView(client winja.Client, logger *zap.Logger) *ModerationView {
	return &ModerationView{view: newView(client, logger)}
}

// Load fetches reports, auto-flagged content, and stats concurrently.
// Listings and users come from the single reports fetch, partitioned by
// reportable type, so those two sections share an outcome.
func (v *ModerationView) Load(ctx context.Context) {
	join(ctx,
		func(ctx context.Context) { v.setReports(v.client.ModerationReports(ctx)) },
		func(ctx context.Context) { v.AutoFlagged.set(v.client.AutoFlaggedContent(ctx)) },
		func(ctx context.Context) { v.Stats.set(v.client.ModerationStats(ctx)) },
	)
	v.logSection("reports", v.ReportedListings.Err)
	v.logSection("auto_flagged", v.AutoFlagged.Err)
	v.logSection("stats", v.Stats.Err)
}

// setReports splits one report list into the listing and user sections. The
// reportable_type field carries a server-side model name, so classification
// is by substring.
func (v *ModerationView) setReports(reports []winja.Report, err error) {
	if err != nil {
		v.ReportedListings.set(nil, err)
		v.ReportedUsers.set(nil, err)
		return
	}
	v.ReportedListings.set(filterSlice(reports, func(r winja.Report) bool {
		return strings.Contains(r.ReportableType, "Opportunity")
	}), nil)
	v.ReportedUsers.set(filterSlice(reports, func(r winja.Report) bool {
		return strings.Contains(r.ReportableType, "User")
	}), nil)
}

// CanAct reports whether the action buttons for a report are enabled.
func (v *ModerationView) CanAct(report winja.Report) bool {
	return !report.Resolved()
}

// Resolve applies a moderation action (warn, remove, or ban) to a pending
// report, then re-fetches the report list. A resolved report is rejected up
// front: terminal states accept no further transitions and no network call
// is made.
func (v *ModerationView) Resolve(ctx context.Context, report winja.Report, actionType string) error {
	if report.Resolved() {
		return ErrReportResolved
	}
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	action := winja.ModerationAction{
		ActionType: actionType,
		Reason:     "Admin " + actionType,
	}
	if err := v.client.TakeModerationAction(ctx, report.ID, action); err != nil {
		return err
	}

	v.setReports(v.client.ModerationReports(ctx))
	return v.ReportedListings.Err
}

// Details fetches the full record behind one report row.
func (v *ModerationView) Details(ctx context.Context, id int64) (winja.Report, error) {
	return v.client.ModerationReport(ctx, id)
}

// Overview derives the stats tiles from the loaded sections.
func (v *ModerationView) Overview() (listings, users, autoFlagged int) {
	return len(v.ReportedListings.Data), len(v.ReportedUsers.Data), len(v.AutoFlagged.Data)
}
