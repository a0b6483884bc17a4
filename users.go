package winja

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// User statuses and account types.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusBanned   = "banned"

	UserTypeAdmin   = "admin"
	UserTypePartner = "partner"
	UserTypeUser    = "user"
)

// User is an end-user account managed from the admin surface.
type User struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	UserType   string    `json:"user_type"`
	ReferredBy string    `json:"referred_by"`
	Interests  []string  `json:"interests"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserFilters narrows a user listing. Empty fields match everything.
type UserFilters struct {
	Search   string
	Status   string
	UserType string
}

func (f UserFilters) query() string {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.UserType != "" {
		params.Set("user_type", f.UserType)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// UserParams carries the mutable fields of a user update. Status changes go
// through the dedicated ban/deactivate/activate actions, not here.
type UserParams struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	UserType string `json:"user_type,omitempty"`
}

func (c *winjaClient) Users(ctx context.Context, filters UserFilters) ([]User, error) {
	resp, err := c.get(ctx, "/users"+filters.query())
	if err != nil {
		return nil, err
	}
	return decodeList[User](resp, "users")
}

func (c *winjaClient) User(ctx context.Context, id int64) (User, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/users/%d", id))
	if err != nil {
		return User{}, err
	}
	return decodeObject[User](resp)
}

func (c *winjaClient) UpdateUser(ctx context.Context, id int64, params UserParams) (User, error) {
	resp, err := c.putJSON(ctx, fmt.Sprintf("/users/%d", id), params)
	if err != nil {
		return User{}, err
	}
	return decodeObject[User](resp)
}

func (c *winjaClient) BanUser(ctx context.Context, id int64) error {
	_, err := c.postJSON(ctx, fmt.Sprintf("/users/%d/ban", id), nil)
	return err
}

func (c *winjaClient) DeactivateUser(ctx context.Context, id int64) error {
	_, err := c.postJSON(ctx, fmt.Sprintf("/users/%d/deactivate", id), nil)
	return err
}

func (c *winjaClient) ActivateUser(ctx context.Context, id int64) error {
	_, err := c.postJSON(ctx, fmt.Sprintf("/users/%d/activate", id), nil)
	return err
}
