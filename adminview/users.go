package adminview

import (
	"context"

	"go.uber.org/zap"

	winja "github.com/winjahq/winja-go"
)

// UsersView drives the user management screen.
type UsersView struct {
	view

	Accounts Section[[]winja.User]

	Filter UserFilter
}

// NewUsersView returns an unloaded users view. A nil logger disables
// logging.
func NewUsersView(client winja.Client, logger *zap.Logger) *UsersView {
	return &UsersView{view: newView(client, logger)}
}

// Load fetches the user list. Filtering happens client-side against the
// loaded page.
func (v *UsersView) Load(ctx context.Context) {
	v.Accounts.set(v.client.Users(ctx, winja.UserFilters{}))
	v.logSection("accounts", v.Accounts.Err)
}

// Filtered returns the users passing the current filter, in their original
// order.
func (v *UsersView) Filtered() []winja.User {
	return filterSlice(v.Accounts.Data, v.Filter.Match)
}

// UserMetrics are the KPI tiles of the users screen.
type UserMetrics struct {
	Total    int
	Active   int
	Inactive int
	Banned   int
	Admins   int
	Partners int
}

// Metrics derives the screen's KPI tiles from the loaded page.
func (v *UsersView) Metrics() UserMetrics {
	accounts := v.Accounts.Data
	byStatus := func(status string) int {
		return countWhere(accounts, func(u winja.User) bool { return u.Status == status })
	}
	byType := func(userType string) int {
		return countWhere(accounts, func(u winja.User) bool { return u.UserType == userType })
	}
	return UserMetrics{
		Total:    len(accounts),
		Active:   byStatus(winja.UserStatusActive),
		Inactive: byStatus(winja.UserStatusInactive),
		Banned:   byStatus(winja.UserStatusBanned),
		Admins:   byType(winja.UserTypeAdmin),
		Partners: byType(winja.UserTypePartner),
	}
}

// Ban bans a user and re-fetches the list.
func (v *UsersView) Ban(ctx context.Context, id int64) error {
	return v.act(ctx, id, v.client.BanUser)
}

// Deactivate deactivates a user and re-fetches the list.
func (v *UsersView) Deactivate(ctx context.Context, id int64) error {
	return v.act(ctx, id, v.client.DeactivateUser)
}

// Activate re-activates a user and re-fetches the list.
func (v *UsersView) Activate(ctx context.Context, id int64) error {
	return v.act(ctx, id, v.client.ActivateUser)
}

func (v *UsersView) act(ctx context.Context, id int64, action func(context.Context, int64) error) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if err := action(ctx, id); err != nil {
		return err
	}
	v.Accounts.set(v.client.Users(ctx, winja.UserFilters{}))
	return v.Accounts.Err
}

// ChangeRole updates a user's account type and re-fetches the list.
func (v *UsersView) ChangeRole(ctx context.Context, id int64, role string) error {
	if err := v.begin(); err != nil {
		return err
	}
	defer v.end()

	if _, err := v.client.UpdateUser(ctx, id, winja.UserParams{UserType: role}); err != nil {
		return err
	}
	v.Accounts.set(v.client.Users(ctx, winja.UserFilters{}))
	return v.Accounts.Err
}

// History fetches the moderation history behind one user row.
func (v *UsersView) History(ctx context.Context, id int64) ([]winja.Report, error) {
	return v.client.UserModerationHistory(ctx, id)
}
