// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package version

// Version is set at build time via -ldflags.
var Version = "dev"
