// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("NewLogger(debug) panicked: %v", r)
		}
	}()
	NewLogger("debug")
}

func TestInvalidLevel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid log level")
		}
	}()
	NewLogger("invalid")
}

func TestNoopLoggerSecurity(t *testing.T) {
	l := NewNoopLogger()
	if l.Security() == nil {
		t.Error("expected security logger")
	}
	l.Security().AuthzFailure("user-1", "tenant_admin")
	l.Security().SystemStartup()
	l.Security().SystemShutdown()
}
