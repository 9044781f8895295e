// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the release version stamped at build time.
package version

// Version is overridden by the release build via -ldflags.
var Version = "dev"
