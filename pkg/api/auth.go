package api

import (
	"context"

	"tableflip.dev/gorev/pkg/session"
)

// RegisterRequest is the account-creation payload. Registration never logs
// the user in; a successful call is an acknowledgement only.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, "POST", "/api/auth/register", req, nil)
}

// Login exchanges credentials for a session. The caller decides whether to
// persist it through the keeper.
func (c *Client) Login(ctx context.Context, username, password string) (session.Session, error) {
	var resp loginResponse
	if err := c.do(ctx, "POST", "/api/auth/login", loginRequest{Username: username, Password: password}, &resp); err != nil {
		return session.Session{}, err
	}
	return session.Session{
		User: &session.User{
			ID:       resp.ID,
			Email:    resp.Email,
			Username: resp.Username,
		},
		Token: resp.Token,
	}, nil
}
