package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Aswin-K5/nutriview/pkg/model"
)

// TokenResponse is the backend's token-issuance payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Login exchanges credentials for a bearer token. The token-issuance
// endpoint takes form-encoded data with the email under "username", not
// JSON; the shape is OAuth2 password-grant, not ours to change.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", "", &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the profile the given token resolves to. The token is always
// explicit: during login and registration the session store is not yet
// populated, so there is no ambient credential to fall back on.
func (c *Client) Me(ctx context.Context, token string) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, "", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterParams is the new-account request. Role defaults to patient.
type RegisterParams struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	FullName string     `json:"full_name"`
	Role     model.Role `json:"role"`
}

// Register creates an account and returns the created user.
func (c *Client) Register(ctx context.Context, p RegisterParams) (*model.User, error) {
	if p.Role == "" {
		p.Role = model.RolePatient
	}
	var out model.User
	if err := c.postJSON(ctx, "/auth/register", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword updates the current user's password (ambient token).
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	in := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return c.putJSON(ctx, "/auth/change-password", in, nil)
}

// DeactivateAccount deactivates the current user's account.
func (c *Client) DeactivateAccount(ctx context.Context) error {
	return c.delete(ctx, "/auth/account")
}

// ListUsers pages through all accounts; investigator only.
func (c *Client) ListUsers(ctx context.Context, skip, limit int) ([]model.User, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	var out []model.User
	if err := c.getJSON(ctx, "/auth/users", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
