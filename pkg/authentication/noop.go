// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package authentication

import (
	"context"
	"strings"
)

type NoopVerifier struct{}

// NewNoopVerifier returns a no-op token verifier that allows all requests.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

// VerifyToken treats the token as "subject:email" for development purposes.
func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (*Identity, error) {
	subject, email, _ := strings.Cut(rawToken, ":")
	return &Identity{Subject: subject, Email: email}, nil
}
