// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package command defines the CLI command set for craftboard. It wires
// flags, validators, actions, and shell completion for subcommands.
package command
