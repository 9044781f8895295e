// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/dashboard"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/fetch"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/meta"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/state"
)

// boardFetcher adapts the orchestrator to the dashboard's widget-addressed
// fetch interface.
type boardFetcher struct {
	client *api.Client
	orch   *fetch.Orchestrator
}

func (f *boardFetcher) Fetch(ctx context.Context, widget string, force bool) ([]byte, bool, error) {
	plan, err := PlanFor(widget, f.client)
	if err != nil {
		return nil, false, err
	}
	plan.Force = force

	res, err := f.orch.Fetch(ctx, plan)
	if err != nil {
		return nil, false, err
	}
	return res.Data, res.FromCache, nil
}

func (f *boardFetcher) Fraction() float64 {
	return f.orch.Progress.Fraction()
}

// BoardCommandAction is the action handler for the "board" subcommand. It
// runs the full-screen dashboard until the user quits.
func BoardCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "board") {
		return nil
	}

	client, err := NewAPIClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	dir, err := state.DefaultDir()
	if err != nil {
		return err
	}

	fetcher := &boardFetcher{client: client, orch: NewOrchestrator()}
	model := dashboard.NewModel(fetcher, state.NewFileStore(dir))

	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// BoardCommandBuilder constructs the cli.Command definition for the "board"
// command, wiring flags, metadata, and the action handler.
func BoardCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "board",
		Usage:     "interactive dashboard",
		UsageText: `craftboard board [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewURLFlag("board", meta.Config.Source),
			NewTokenFlag("board", meta.Config.Source),
		},
		Action: BoardCommandAction,
	}
}
