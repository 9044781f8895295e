// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/fetch"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/meta"
)

// NotesCommandAction is the action handler for the "notes" subcommand. It
// lists documents across the configured notes collections, serving from the
// cache when fresh, and emits results according to common output/attr flags.
func NotesCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &ViewActionRunner{
		CommandName:  "notes",
		DefaultAttrs: []string{".id", ".title", ".tags", ".edited::r"},
		Parent:       "documents",
		PlanFn: func(_ context.Context, _ *cli.Command, client *api.Client) (fetch.Plan, error) {
			return NotesPlan(client), nil
		},
	}
	return runner.Run(ctx, cmd)
}

// NotesCommandBuilder constructs the cli.Command definition for the "notes"
// command, wiring flags, metadata, and the action handler.
func NotesCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "notes",
		Usage:     "notes query",
		UsageText: `craftboard notes [options]`,
		Flags: []cli.Flag{
			NewURLFlag("notes", meta.Config.Source),
			NewTokenFlag("notes", meta.Config.Source),
		},
		Action: NotesCommandAction,
		Meta:   meta,
	}).Build()
}
