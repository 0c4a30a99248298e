// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: pgErrCodeUniqueViolation}
	if !IsDuplicateKeyError(dup) {
		t.Error("expected unique violation to be detected")
	}
	if !IsDuplicateKeyError(fmt.Errorf("insert failed: %w", dup)) {
		t.Error("expected wrapped unique violation to be detected")
	}
	if IsDuplicateKeyError(errors.New("other")) {
		t.Error("expected plain error not to be detected")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: pgErrCodeForeignKeyViolation}
	if !IsForeignKeyViolation(fk) {
		t.Error("expected foreign key violation to be detected")
	}
	if IsForeignKeyViolation(&pgconn.PgError{Code: pgErrCodeUniqueViolation}) {
		t.Error("expected unique violation not to be detected as fk violation")
	}
}

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name     string
		in       error
		expected error
	}{
		{"unique violation", &pgconn.PgError{Code: pgErrCodeUniqueViolation}, ErrDuplicateKey},
		{"fk violation", &pgconn.PgError{Code: pgErrCodeForeignKeyViolation}, ErrForeignKeyViolation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapWriteError(tc.in); !errors.Is(got, tc.expected) {
				t.Errorf("mapWriteError() = %v, want %v", got, tc.expected)
			}
		})
	}

	plain := errors.New("boom")
	if got := mapWriteError(plain); got != plain {
		t.Errorf("expected unrelated error to pass through, got %v", got)
	}
}
