// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package ar24

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
)

const (
	productionBaseURL = "https://ar24.fr/api"
	sandboxBaseURL    = "https://sandbox.ar24.fr/api"

	// AR24 rejects attachments above 256MB.
	maxAttachmentSize = 256 << 20
)

var (
	ErrMailNotFound      = fmt.Errorf("registered mail not found")
	ErrAttachmentTooBig  = fmt.Errorf("attachment exceeds the 256MB limit")
	ErrAuthentication    = fmt.Errorf("ar24 authentication failed")
	ErrRateLimitExceeded = fmt.Errorf("ar24 rate limit exceeded")
)

type Config struct {
	Token      string
	PrivateKey string
	// Environment selects production or sandbox; anything other than
	// "production" targets the sandbox.
	Environment string
	// BaseURL overrides the environment-derived URL. Used in tests.
	BaseURL string
}

// Client sends qualified registered mail through the AR24 API. Every
// request carries token, date and an HMAC-style signature computed from
// the date and the account private key.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	privateKey string
	now        func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) signature(date string) string {
	sum := sha256.Sum256([]byte(date + c.privateKey))
	return hex.EncodeToString(sum[:])
}

func (c *Client) authParams() url.Values {
	date := c.now().UTC().Format(time.RFC3339)
	return url.Values{
		"token":     {c.token},
		"date":      {date},
		"signature": {c.signature(date)},
	}
}

func (c *Client) SendMail(ctx context.Context, req SendMailRequest) (*Mail, error) {
	ctx, span := c.tracer.Start(ctx, "ar24.Client.SendMail")
	defer span.End()

	country := req.Recipient.Country
	if country == "" {
		country = "FR"
	}
	eidas := 0
	if req.Eidas {
		eidas = 1
	}

	payload := map[string]any{
		"id_user":        req.UserID,
		"to_firstname":   req.Recipient.FirstName,
		"to_lastname":    req.Recipient.LastName,
		"to_email":       req.Recipient.Email,
		"to_company":     req.Recipient.Company,
		"to_address":     req.Recipient.Address,
		"to_postal_code": req.Recipient.PostalCode,
		"to_city":        req.Recipient.City,
		"to_country":     country,
		"subject":        req.Subject,
		"content":        req.Message,
		"eidas":          eidas,
		"ref_dossier":    req.Reference,
		"attachment_ids": req.AttachmentIDs,
	}

	var mail Mail
	if err := c.postJSON(ctx, "/mail", payload, &mail); err != nil {
		return nil, err
	}

	c.logger.Infof("registered mail sent: %s", mail.ID)
	return &mail, nil
}

func (c *Client) GetMail(ctx context.Context, id string) (*Mail, error) {
	ctx, span := c.tracer.Start(ctx, "ar24.Client.GetMail")
	defer span.End()

	var mail Mail
	if err := c.getJSON(ctx, "/mail", url.Values{"id": {id}}, &mail); err != nil {
		return nil, err
	}
	if mail.ID == "" {
		return nil, ErrMailNotFound
	}

	return &mail, nil
}

func (c *Client) ListMails(ctx context.Context, req ListMailsRequest) ([]*Mail, error) {
	ctx, span := c.tracer.Start(ctx, "ar24.Client.ListMails")
	defer span.End()

	params := url.Values{"id_user": {req.UserID}}
	if req.Reference != "" {
		params.Set("ref_dossier", req.Reference)
	}

	var mails []*Mail
	if err := c.getJSON(ctx, "/user/mail", params, &mails); err != nil {
		return nil, err
	}

	return mails, nil
}

func (c *Client) UploadAttachment(ctx context.Context, userID, filename string, data []byte) (*Attachment, error) {
	ctx, span := c.tracer.Start(ctx, "ar24.Client.UploadAttachment")
	defer span.End()

	if len(data) > maxAttachmentSize {
		return nil, ErrAttachmentTooBig
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	_ = form.WriteField("id_user", userID)
	_ = form.WriteField("file_name", filename)
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/attachment?"+c.authParams().Encode(), &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var attachment Attachment
	if err := c.doJSON(req, &attachment); err != nil {
		return nil, err
	}

	c.logger.Infof("attachment uploaded: %s", filename)
	return &attachment, nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint+"?"+c.authParams().Encode(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "fr-FR")

	return c.doJSON(req, out)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	auth := c.authParams()
	for k, vs := range params {
		for _, v := range vs {
			auth.Add(k, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+auth.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept-Language", "fr-FR")

	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ar24 request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrAuthentication
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimitExceeded
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("ar24 API error (%d): %s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode ar24 response: %w", err)
	}

	return nil
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		if cfg.Environment == "production" {
			baseURL = productionBaseURL
		} else {
			baseURL = sandboxBaseURL
		}
	}

	return &Client{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
		baseURL:    baseURL,
		token:      cfg.Token,
		privateKey: cfg.PrivateKey,
		now:        time.Now,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
