// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package ar24

import "context"

// Recipient identifies the registered-mail addressee. Country defaults
// to FR.
type Recipient struct {
	FirstName  string
	LastName   string
	Email      string
	Company    string
	Address    string
	PostalCode string
	City       string
	Country    string
}

type SendMailRequest struct {
	UserID        string
	Recipient     Recipient
	Subject       string
	Message       string
	Eidas         bool
	Reference     string
	AttachmentIDs []string
}

type Mail struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Reference string `json:"ref_dossier"`
	ProofURL  string `json:"proof_url"`
	SentAt    string `json:"date"`
}

type ListMailsRequest struct {
	UserID    string
	Reference string
}

type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"file_name"`
}

type ClientInterface interface {
	SendMail(ctx context.Context, req SendMailRequest) (*Mail, error)
	GetMail(ctx context.Context, id string) (*Mail, error)
	ListMails(ctx context.Context, req ListMailsRequest) ([]*Mail, error)
	UploadAttachment(ctx context.Context, userID, filename string, data []byte) (*Attachment, error)
}
