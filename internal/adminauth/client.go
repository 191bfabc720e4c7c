// Package adminauth is the client for the external admin login service.
// The service is an opaque collaborator: responses are checked for presence
// only, and failures are surfaced without retry.
package adminauth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Credentials is the identity returned by the admin login service.
type Credentials struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ErrLoginFailed is returned when the admin login service rejects the credentials.
var ErrLoginFailed = errors.New("admin login failed")

// Client calls the external admin login service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new admin login client. baseURL is the service root,
// without the /api suffix.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrLoginFailed, resp.StatusCode)
	}

	var creds Credentials
	if err := json.NewDecoder(resp.Body).Decode(&creds); err != nil {
		return nil, err
	}

	if creds.Token == "" {
		return nil, fmt.Errorf("%w: response missing token", ErrLoginFailed)
	}

	return &creds, nil
}
