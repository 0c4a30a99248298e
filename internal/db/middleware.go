// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mylegitech/api/internal/logging"
)

// TransactionMiddleware wraps each mutating request in a database
// transaction. The transaction is committed when the handler responds with
// a status below 400 and rolled back otherwise, so multi-statement writes
// (membership upsert + invitation flag, tenant + owner row) are atomic at
// the request boundary.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			err := db.WithTx(ctx, func(txCtx context.Context) error {
				rw := &txResponseWriter{
					ResponseWriter: w,
					statusCode:     http.StatusOK,
				}

				next.ServeHTTP(rw, r.WithContext(txCtx))

				if rw.statusCode >= 400 {
					return fmt.Errorf("request failed with status %d", rw.statusCode)
				}

				return nil
			})
			if err != nil {
				logger.Debugf("transaction rolled back: %v", err)
			}
		})
	}
}

type txResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *txResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
