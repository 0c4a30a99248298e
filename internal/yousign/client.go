// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package yousign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
)

const (
	productionBaseURL = "https://api.yousign.app/v3"
	sandboxBaseURL    = "https://api-sandbox.yousign.app/v3"
)

var (
	ErrSignatureRequestNotFound = fmt.Errorf("signature request not found")
	// ErrSignatureRequestNotReady means the request is not in "done" state
	// yet, so signed documents cannot be downloaded.
	ErrSignatureRequestNotReady = fmt.Errorf("signature request is not completed")
	ErrAuthentication           = fmt.Errorf("yousign authentication failed")
	ErrRateLimitExceeded        = fmt.Errorf("yousign rate limit exceeded")
)

type Config struct {
	APIKey      string
	Environment string
	// BaseURL overrides the environment-derived URL. Used in tests.
	BaseURL string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) CreateSignatureRequest(ctx context.Context, params CreateSignatureRequestParams) (*SignatureRequest, error) {
	ctx, span := c.tracer.Start(ctx, "yousign.Client.CreateSignatureRequest")
	defer span.End()

	deliveryMode := params.DeliveryMode
	if deliveryMode == "" {
		deliveryMode = "email"
	}
	timezone := params.Timezone
	if timezone == "" {
		timezone = "Europe/Paris"
	}

	payload := map[string]any{
		"name":          params.Name,
		"delivery_mode": deliveryMode,
		"timezone":      timezone,
	}

	var sr SignatureRequest
	if err := c.postJSON(ctx, "/signature_requests", payload, &sr); err != nil {
		return nil, err
	}

	c.logger.Infof("signature request created: %s", sr.ID)
	return &sr, nil
}

func (c *Client) UploadDocument(ctx context.Context, signatureRequestID, filename, nature string, data []byte) (*Document, error) {
	ctx, span := c.tracer.Start(ctx, "yousign.Client.UploadDocument")
	defer span.End()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	_ = form.WriteField("nature", nature)
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	url := fmt.Sprintf("%s/signature_requests/%s/documents", c.baseURL, signatureRequestID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var doc Document
	if err := c.doJSON(req, &doc); err != nil {
		return nil, err
	}

	c.logger.Infof("document uploaded: %s to signature request %s", doc.ID, signatureRequestID)
	return &doc, nil
}

func (c *Client) AddSigner(ctx context.Context, signatureRequestID string, params AddSignerParams) (*Signer, error) {
	ctx, span := c.tracer.Start(ctx, "yousign.Client.AddSigner")
	defer span.End()

	payload := map[string]any{
		"info":                          params.Info,
		"signature_level":               params.SignatureLevel,
		"signature_authentication_mode": params.AuthenticationMode,
		"fields":                        params.Fields,
	}

	var signer Signer
	endpoint := fmt.Sprintf("/signature_requests/%s/signers", signatureRequestID)
	if err := c.postJSON(ctx, endpoint, payload, &signer); err != nil {
		return nil, err
	}

	c.logger.Infof("signer added: %s (%s)", signer.ID, params.Info.Email)
	return &signer, nil
}

// ActivateSignatureRequest moves the request out of draft and triggers the
// signer notification emails.
func (c *Client) ActivateSignatureRequest(ctx context.Context, signatureRequestID string) (*SignatureRequest, error) {
	ctx, span := c.tracer.Start(ctx, "yousign.Client.ActivateSignatureRequest")
	defer span.End()

	var sr SignatureRequest
	endpoint := fmt.Sprintf("/signature_requests/%s/activate", signatureRequestID)
	if err := c.postJSON(ctx, endpoint, nil, &sr); err != nil {
		return nil, err
	}

	c.logger.Infof("signature request activated: %s", signatureRequestID)
	return &sr, nil
}

func (c *Client) GetSignatureRequest(ctx context.Context, signatureRequestID string) (*SignatureRequest, error) {
	ctx, span := c.tracer.Start(ctx, "yousign.Client.GetSignatureRequest")
	defer span.End()

	url := fmt.Sprintf("%s/signature_requests/%s", c.baseURL, signatureRequestID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	var sr SignatureRequest
	if err := c.doJSON(req, &sr); err != nil {
		return nil, err
	}

	return &sr, nil
}

func (c *Client) CancelSignatureRequest(ctx context.Context, signatureRequestID, reason string) error {
	ctx, span := c.tracer.Start(ctx, "yousign.Client.CancelSignatureRequest")
	defer span.End()

	payload := map[string]any{}
	if reason != "" {
		payload["reason"] = reason
	}

	endpoint := fmt.Sprintf("/signature_requests/%s/cancel", signatureRequestID)
	if err := c.postJSON(ctx, endpoint, payload, nil); err != nil {
		return err
	}

	c.logger.Infof("signature request canceled: %s", signatureRequestID)
	return nil
}

// DownloadSignedDocument fetches the signed PDF. The request must be in
// "done" state first.
func (c *Client) DownloadSignedDocument(ctx context.Context, signatureRequestID, documentID string) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "yousign.Client.DownloadSignedDocument")
	defer span.End()

	sr, err := c.GetSignatureRequest(ctx, signatureRequestID)
	if err != nil {
		return nil, err
	}
	if sr.Status != "done" {
		return nil, ErrSignatureRequestNotReady
	}

	url := fmt.Sprintf("%s/signature_requests/%s/documents/%s/download", c.baseURL, signatureRequestID, documentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yousign request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return data, nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any, out any) error {
	var reader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("yousign request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode yousign response: %w", err)
	}

	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrAuthentication
	case http.StatusNotFound:
		return ErrSignatureRequestNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimitExceeded
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("yousign API error (%d): %s", resp.StatusCode, string(body))
	}
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
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
