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

// TasksCommandAction is the action handler for the "tasks" subcommand. The
// default sort puts open tasks first, then earliest due date, priority, and
// title; --open narrows to not-done tasks.
func TasksCommandAction(ctx context.Context, cmd *cli.Command) error {
	// --open is sugar for a done=false filter.
	if cmd.Bool("open") {
		filter := cmd.String("filter")
		if filter != "" {
			filter += ","
		}
		_ = cmd.Set("filter", filter+"done=false")
	}

	runner := &ViewActionRunner{
		CommandName:  "tasks",
		// due stays raw ISO so the default sort compares real dates, not
		// humanized strings.
		DefaultAttrs: []string{".id", ".title", "done", "due", "priority"},
		Parent:       "documents",
		PlanFn: func(_ context.Context, _ *cli.Command, client *api.Client) (fetch.Plan, error) {
			return TasksPlan(client), nil
		},
	}
	return runner.Run(ctx, cmd)
}

// TasksCommandBuilder constructs the cli.Command definition for the "tasks"
// command, wiring flags, metadata, and the action handler.
func TasksCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	c := (&QueryCommandBuilder{
		Name:      "tasks",
		Usage:     "tasks query",
		UsageText: `craftboard tasks [options]`,
		Flags: []cli.Flag{
			NewURLFlag("tasks", meta.Config.Source),
			NewTokenFlag("tasks", meta.Config.Source),
			&cli.BoolFlag{
				Name:        "open",
				Usage:       "only tasks that are not done",
				HideDefault: true,
			},
		},
		Action: TasksCommandAction,
		Meta:   meta,
	}).Build()

	// Default multi-key sort; an explicit --sort overrides it.
	for _, f := range c.Flags {
		if sf, ok := f.(*cli.StringFlag); ok && sf.Name == "sort" {
			sf.Value = "done,due,priority,title"
		}
	}

	return c
}
