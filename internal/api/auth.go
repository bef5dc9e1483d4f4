package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ukydev/fleet-logistics/internal/models"
)

// Login exchanges credentials for a bearer token. The token is returned to
// the caller, not stored on the client; threading it back in via SetToken is
// an explicit decision of the presentation layer.
func (c *Client) Login(ctx context.Context, creds models.LoginRequest) (string, error) {
	if err := c.validate.Struct(creds); err != nil {
		return "", fmt.Errorf("invalid credentials payload: %w", err)
	}
	data, err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds)
	if err != nil {
		return "", err
	}
	var resp models.LoginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decode /auth/login: %w", ErrMalformedResponse)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("/auth/login: missing token: %w", ErrMalformedResponse)
	}
	return resp.Token, nil
}

// Logout invalidates the current token server-side. Local token state is
// cleared regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.token = ""
	return err
}
