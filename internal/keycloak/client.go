// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package keycloak

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
)

var ErrUserNotFound = fmt.Errorf("keycloak user not found")

type Config struct {
	// BaseURL is the Keycloak server root, e.g. https://auth.example.com
	BaseURL      string
	Realm        string
	ClientID     string
	ClientSecret string
}

// Client talks to the Keycloak Admin API using the client_credentials
// grant. The underlying oauth2 transport refreshes the admin token as it
// expires.
type Client struct {
	httpClient *http.Client
	baseURL    string
	realm      string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) usersURL(elem ...string) string {
	return c.baseURL + path.Join(append([]string{"/admin/realms", c.realm, "users"}, elem...)...)
}

// CreateUser creates the user and returns the Keycloak ID parsed from the
// Location header of the 201 response.
func (c *Client) CreateUser(ctx context.Context, user UserRepresentation) (string, error) {
	ctx, span := c.tracer.Start(ctx, "keycloak.Client.CreateUser")
	defer span.End()

	if user.Username == "" {
		user.Username = user.Email
	}

	body, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to encode user: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.usersURL(), body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", c.apiError("create user", resp)
	}

	location := resp.Header.Get("Location")
	id := location[strings.LastIndex(location, "/")+1:]
	if id == "" {
		return "", fmt.Errorf("create user response has no Location header")
	}

	c.logger.Infof("keycloak user created: %s (%s)", id, user.Email)
	return id, nil
}

func (c *Client) UpdateUser(ctx context.Context, keycloakID string, update UserUpdate) error {
	ctx, span := c.tracer.Start(ctx, "keycloak.Client.UpdateUser")
	defer span.End()

	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to encode user update: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPut, c.usersURL(keycloakID), body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrUserNotFound
	default:
		return c.apiError("update user", resp)
	}
}

func (c *Client) DeleteUser(ctx context.Context, keycloakID string) error {
	ctx, span := c.tracer.Start(ctx, "keycloak.Client.DeleteUser")
	defer span.End()

	resp, err := c.do(ctx, http.MethodDelete, c.usersURL(keycloakID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrUserNotFound
	default:
		return c.apiError("delete user", resp)
	}
}

// SendPasswordResetEmail asks Keycloak to email the user a link that
// forces a password update. The link is valid for twelve hours.
func (c *Client) SendPasswordResetEmail(ctx context.Context, keycloakID string) error {
	ctx, span := c.tracer.Start(ctx, "keycloak.Client.SendPasswordResetEmail")
	defer span.End()

	body, err := json.Marshal([]string{"UPDATE_PASSWORD"})
	if err != nil {
		return fmt.Errorf("failed to encode actions: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPut, c.usersURL(keycloakID, "execute-actions-email")+"?lifespan=43200", body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrUserNotFound
	default:
		return c.apiError("send password reset email", resp)
	}
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (*UserRepresentation, error) {
	ctx, span := c.tracer.Start(ctx, "keycloak.Client.GetUserByEmail")
	defer span.End()

	query := url.Values{"email": {email}, "exact": {"true"}}
	resp, err := c.do(ctx, http.MethodGet, c.usersURL()+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError("find user", resp)
	}

	var users []UserRepresentation
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("failed to decode users response: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}

	return &users[0], nil
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("keycloak admin request failed: %w", err)
	}

	return resp, nil
}

func (c *Client) apiError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("keycloak %s failed with status %d: %s", op, resp.StatusCode, string(body))
}

func NewClient(ctx context.Context, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	creds := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token", strings.TrimRight(cfg.BaseURL, "/"), cfg.Realm),
	}

	// Token refresh requests go through the instrumented transport too.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)})

	return &Client{
		httpClient: creds.Client(ctx),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		realm:      cfg.Realm,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
