package winja

import (
	"context"
	"encoding/json"
	"fmt"
)

// RegisterParams carries the fields of a registration request.
type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token       string    `json:"token"`
	AccessToken string    `json:"access_token"`
	User        AdminUser `json:"user"`
}

func (r authResponse) session() Session {
	token := r.Token
	if token == "" {
		token = r.AccessToken
	}
	return Session{Token: token, User: r.User}
}

func (c *winjaClient) Login(ctx context.Context, email, password string) (Session, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	resp, err := c.postJSON(ctx, "/login", body)
	if err != nil {
		return Session{}, err
	}

	var auth authResponse
	if err := json.Unmarshal(resp, &auth); err != nil {
		return Session{}, fmt.Errorf("failed to unmarshal login response: %w", err)
	}

	session := auth.session()
	if !session.Valid() {
		return Session{}, fmt.Errorf("login response carried no token")
	}
	return session, nil
}

func (c *winjaClient) Register(ctx context.Context, params RegisterParams) (Session, error) {
	resp, err := c.postJSON(ctx, "/register", params)
	if err != nil {
		return Session{}, err
	}

	var auth authResponse
	if err := json.Unmarshal(resp, &auth); err != nil {
		return Session{}, fmt.Errorf("failed to unmarshal register response: %w", err)
	}
	return auth.session(), nil
}
