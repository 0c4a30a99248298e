// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package monitoring

type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(map[string]string, float64) error
	SetDependencyAvailability(map[string]string, float64) error
}
