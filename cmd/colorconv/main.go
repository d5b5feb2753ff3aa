// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorconv converts colors between models and profiles,
// and measures the differences between them.
package main

import (
	"os"

	"cogentcore.org/colorspace/cmd/colorconv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
