// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package authentication

// Identity carries the claims extracted from a verified token.
type Identity struct {
	Subject   string
	Email     string
	FirstName string
	LastName  string
}

// Principal is the authenticated caller as seen by request handlers. UserID
// is the local user record, not the identity provider subject. TenantID is
// empty when the request carries no tenant selection.
type Principal struct {
	UserID   string
	Email    string
	TenantID string
}
