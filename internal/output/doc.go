// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package output provides sorting, transforming, and emission utilities used
// by commands to present results in various formats.
package output
