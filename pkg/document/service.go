// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/mylegitech/api/internal/ar24"
	"github.com/mylegitech/api/internal/authorization"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/yousign"
)

var (
	ErrNoSigners   = errors.New("at least one signer is required")
	ErrNoAddressee = errors.New("recipient email is required")
)

type Service struct {
	ar24    ar24.ClientInterface
	yousign yousign.ClientInterface
	authz   authorization.AuthorizerInterface

	// ar24UserID is the AR24 sender account all registered mail is
	// dispatched from.
	ar24UserID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	ar24Client ar24.ClientInterface,
	yousignClient yousign.ClientInterface,
	authz authorization.AuthorizerInterface,
	ar24UserID string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		ar24:       ar24Client,
		yousign:    yousignClient,
		authz:      authz,
		ar24UserID: ar24UserID,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// SendRegisteredMail uploads the attachments and dispatches one AR24
// registered mail. Uploads happen before the send call because AR24 binds
// attachments by ID.
func (s *Service) SendRegisteredMail(ctx context.Context, userID, tenantID string, params RegisteredMailParams) (*ar24.Mail, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.SendRegisteredMail")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpDocumentSend); err != nil {
		return nil, err
	}

	if params.Recipient.Email == "" {
		return nil, ErrNoAddressee
	}

	attachmentIDs := make([]string, 0, len(params.Attachments))
	for _, att := range params.Attachments {
		uploaded, err := s.ar24.UploadAttachment(ctx, s.ar24UserID, att.Filename, att.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to upload attachment %q: %w", att.Filename, err)
		}
		attachmentIDs = append(attachmentIDs, uploaded.ID)
	}

	mail, err := s.ar24.SendMail(ctx, ar24.SendMailRequest{
		UserID:        s.ar24UserID,
		Recipient:     params.Recipient,
		Subject:       params.Subject,
		Message:       params.Message,
		Eidas:         params.Eidas,
		Reference:     params.Reference,
		AttachmentIDs: attachmentIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send registered mail: %w", err)
	}

	s.logger.Infof("registered mail %s sent for tenant %s (ref %q)", mail.ID, tenantID, params.Reference)
	return mail, nil
}

func (s *Service) GetRegisteredMail(ctx context.Context, userID, tenantID, mailID string) (*ar24.Mail, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.GetRegisteredMail")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpDocumentSend); err != nil {
		return nil, err
	}

	return s.ar24.GetMail(ctx, mailID)
}

func (s *Service) ListRegisteredMails(ctx context.Context, userID, tenantID, reference string) ([]*ar24.Mail, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.ListRegisteredMails")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpDocumentSend); err != nil {
		return nil, err
	}

	return s.ar24.ListMails(ctx, ar24.ListMailsRequest{
		UserID:    s.ar24UserID,
		Reference: reference,
	})
}

// CreateSignatureRequest drives the full Yousign setup sequence: create
// the draft, upload the document, attach the signers, then activate so
// Yousign notifies them. A failure after creation leaves the draft behind
// on the Yousign side; drafts are inert and can be cancelled there.
func (s *Service) CreateSignatureRequest(ctx context.Context, userID, tenantID string, params SignatureParams) (*yousign.SignatureRequest, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.CreateSignatureRequest")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpDocumentSend); err != nil {
		return nil, err
	}

	if len(params.Signers) == 0 {
		return nil, ErrNoSigners
	}

	request, err := s.yousign.CreateSignatureRequest(ctx, yousign.CreateSignatureRequestParams{
		Name:         params.Name,
		DeliveryMode: params.DeliveryMode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create signature request: %w", err)
	}

	doc, err := s.yousign.UploadDocument(ctx, request.ID, params.Document.Filename, "signable_document", params.Document.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	for _, signer := range params.Signers {
		_, err := s.yousign.AddSigner(ctx, request.ID, yousign.AddSignerParams{
			Info: yousign.SignerInfo{
				FirstName: signer.FirstName,
				LastName:  signer.LastName,
				Email:     signer.Email,
				Locale:    signer.Locale,
			},
			SignatureLevel:     "electronic_signature",
			AuthenticationMode: "otp_email",
			Fields: []yousign.SignerField{{
				DocumentID: doc.ID,
				Type:       "signature",
				Page:       1,
				X:          77,
				Y:          581,
			}},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to add signer %q: %w", signer.Email, err)
		}
	}

	activated, err := s.yousign.ActivateSignatureRequest(ctx, request.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to activate signature request: %w", err)
	}

	s.logger.Infof("signature request %s activated for tenant %s", activated.ID, tenantID)
	return activated, nil
}

func (s *Service) GetSignatureRequest(ctx context.Context, userID, tenantID, requestID string) (*yousign.SignatureRequest, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.GetSignatureRequest")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpDocumentSend); err != nil {
		return nil, err
	}

	return s.yousign.GetSignatureRequest(ctx, requestID)
}

func (s *Service) CancelSignatureRequest(ctx context.Context, userID, tenantID, requestID, reason string) error {
	ctx, span := s.tracer.Start(ctx, "document.Service.CancelSignatureRequest")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpDocumentSend); err != nil {
		return err
	}

	return s.yousign.CancelSignatureRequest(ctx, requestID, reason)
}

func (s *Service) DownloadSignedDocument(ctx context.Context, userID, tenantID, requestID, documentID string) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.DownloadSignedDocument")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpDocumentSend); err != nil {
		return nil, err
	}

	return s.yousign.DownloadSignedDocument(ctx, requestID, documentID)
}
