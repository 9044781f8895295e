// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package driller resolves dotted attribute paths against raw JSON records,
// with array indexing and single-element array drill-through. It backs the
// --attrs and --filter machinery.
package driller
