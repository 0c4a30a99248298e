// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package yousign

import "context"

type SignatureRequest struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	Documents []string `json:"documents,omitempty"`
}

type CreateSignatureRequestParams struct {
	Name         string
	DeliveryMode string
	Timezone     string
}

type Document struct {
	ID     string `json:"id"`
	Nature string `json:"nature"`
}

type SignerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Locale    string `json:"locale"`
}

type SignerField struct {
	DocumentID string `json:"document_id"`
	Type       string `json:"type"`
	Page       int    `json:"page"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

type AddSignerParams struct {
	Info               SignerInfo
	SignatureLevel     string
	AuthenticationMode string
	Fields             []SignerField
}

type Signer struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ClientInterface interface {
	CreateSignatureRequest(ctx context.Context, params CreateSignatureRequestParams) (*SignatureRequest, error)
	UploadDocument(ctx context.Context, signatureRequestID, filename, nature string, data []byte) (*Document, error)
	AddSigner(ctx context.Context, signatureRequestID string, params AddSignerParams) (*Signer, error)
	ActivateSignatureRequest(ctx context.Context, signatureRequestID string) (*SignatureRequest, error)
	GetSignatureRequest(ctx context.Context, signatureRequestID string) (*SignatureRequest, error)
	CancelSignatureRequest(ctx context.Context, signatureRequestID, reason string) error
	DownloadSignedDocument(ctx context.Context, signatureRequestID, documentID string) ([]byte, error)
}
