// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package yousign

import "context"

// NoopClient is used when Yousign is not configured. Mutations succeed
// with placeholder objects, reads return not found.
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (n *NoopClient) CreateSignatureRequest(ctx context.Context, params CreateSignatureRequestParams) (*SignatureRequest, error) {
	return &SignatureRequest{ID: "noop", Name: params.Name, Status: "draft"}, nil
}

func (n *NoopClient) UploadDocument(ctx context.Context, signatureRequestID, filename, nature string, data []byte) (*Document, error) {
	return &Document{ID: "noop", Nature: nature}, nil
}

func (n *NoopClient) AddSigner(ctx context.Context, signatureRequestID string, params AddSignerParams) (*Signer, error) {
	return &Signer{ID: "noop", Status: "initiated"}, nil
}

func (n *NoopClient) ActivateSignatureRequest(ctx context.Context, signatureRequestID string) (*SignatureRequest, error) {
	return &SignatureRequest{ID: signatureRequestID, Status: "ongoing"}, nil
}

func (n *NoopClient) GetSignatureRequest(ctx context.Context, signatureRequestID string) (*SignatureRequest, error) {
	return nil, ErrSignatureRequestNotFound
}

func (n *NoopClient) CancelSignatureRequest(ctx context.Context, signatureRequestID, reason string) error {
	return nil
}

func (n *NoopClient) DownloadSignedDocument(ctx context.Context, signatureRequestID, documentID string) ([]byte, error) {
	return nil, ErrSignatureRequestNotFound
}
