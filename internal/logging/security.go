// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits structured audit events for authentication and
// authorization decisions, kept separate from regular application logs so
// they can be routed to an audit sink.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnSuccess(subject string) {
	s.l.Info("authentication succeeded",
		zap.String("security_event", "authn_success"),
		zap.String("subject", subject),
	)
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn("authentication failed",
		zap.String("security_event", "authn_failure"),
		zap.String("subject", subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, policy string) {
	s.l.Warn("authorization denied",
		zap.String("security_event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("policy", policy),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("security_event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("security_event", "system_shutdown"))
}
