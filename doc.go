// Copyright © 2026 Carlos Gonzalez carlos.gonzalez.dev@gmail.com
// SPDX-License-Identifier: Apache-2.0

// craftboard is the main package for the craftboard command line tool. It
// wires the CLI, delegates to internal packages, and serves as the entry
// point.
package main
