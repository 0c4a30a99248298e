// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/mylegitech/api/cmd"

func main() {
	cmd.Execute()
}
