// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package ar24

import "context"

// NoopClient is used when AR24 is not configured. Reads return not found
// and sends succeed with a placeholder mail so development environments
// can exercise the flow without an AR24 account.
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (n *NoopClient) SendMail(ctx context.Context, req SendMailRequest) (*Mail, error) {
	return &Mail{ID: "noop", Status: "waiting", Reference: req.Reference}, nil
}

func (n *NoopClient) GetMail(ctx context.Context, id string) (*Mail, error) {
	return nil, ErrMailNotFound
}

func (n *NoopClient) ListMails(ctx context.Context, req ListMailsRequest) ([]*Mail, error) {
	return []*Mail{}, nil
}

func (n *NoopClient) UploadAttachment(ctx context.Context, userID, filename string, data []byte) (*Attachment, error) {
	return &Attachment{ID: "noop", Name: filename}, nil
}
