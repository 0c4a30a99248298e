// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"

	"github.com/mylegitech/api/internal/ar24"
	"github.com/mylegitech/api/internal/yousign"
)

// AttachmentPayload is a file carried inline in the request body,
// base64-decoded by the handler before it reaches the service.
type AttachmentPayload struct {
	Filename string
	Data     []byte
}

// RegisteredMailParams describes one qualified registered mail (LRE) to
// dispatch through AR24.
type RegisteredMailParams struct {
	Recipient   ar24.Recipient
	Subject     string
	Message     string
	Eidas       bool
	Reference   string
	Attachments []AttachmentPayload
}

// SignerParams describes one signer of a signature request.
type SignerParams struct {
	FirstName string
	LastName  string
	Email     string
	Locale    string
}

// SignatureParams describes a Yousign signature request over a single
// document with one or more signers.
type SignatureParams struct {
	Name         string
	DeliveryMode string
	Document     AttachmentPayload
	Signers      []SignerParams
}

type ServiceInterface interface {
	SendRegisteredMail(ctx context.Context, userID, tenantID string, params RegisteredMailParams) (*ar24.Mail, error)
	GetRegisteredMail(ctx context.Context, userID, tenantID, mailID string) (*ar24.Mail, error)
	ListRegisteredMails(ctx context.Context, userID, tenantID, reference string) ([]*ar24.Mail, error)

	CreateSignatureRequest(ctx context.Context, userID, tenantID string, params SignatureParams) (*yousign.SignatureRequest, error)
	GetSignatureRequest(ctx context.Context, userID, tenantID, requestID string) (*yousign.SignatureRequest, error)
	CancelSignatureRequest(ctx context.Context, userID, tenantID, requestID, reason string) error
	DownloadSignedDocument(ctx context.Context, userID, tenantID, requestID, documentID string) ([]byte, error)
}
