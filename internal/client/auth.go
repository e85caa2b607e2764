package client

import (
	"context"

	"courtbook/internal/pkg/errs"
)

// User is the authenticated-user read model from /auth/me.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// Login authenticates and persists the returned token pair. The login
// endpoint may return only an access token; a previously stored refresh
// token is kept in that case.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var tokens tokenResponse
	if err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &tokens); err != nil {
		return err
	}
	if tokens.AccessToken == "" {
		return errs.Mark(errs.New("login response missing access_token"), errs.ErrTokenResponse)
	}
	return c.session.SetTokens(tokens.AccessToken, tokens.RefreshToken)
}

// Register creates an account. The backend does not log the new user in;
// callers follow up with Login.
func (c *Client) Register(ctx context.Context, name, email, phone, password string) (*User, error) {
	var user User
	if err := c.post(ctx, "/auth/register", registerRequest{Name: name, Email: email, Phone: phone, Password: password}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Me fetches the current authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout discards local credentials. Authentication is stateless on the
// backend, so there is nothing to revoke remotely.
func (c *Client) Logout() error {
	return c.session.Clear()
}
