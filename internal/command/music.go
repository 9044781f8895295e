// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/attrs"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/fetch"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/meta"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/output"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/views/music"
)

// MusicCommandAction is the action handler for the "music" subcommand. The
// three library collections are fetched in parallel and cached as one
// payload; --rollup summarizes track counts by artist or genre instead of
// listing tracks.
func MusicCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &ViewActionRunner{
		CommandName:  "music",
		DefaultAttrs: []string{".id", ".title", "artist", "genre"},
		PlanFn: func(_ context.Context, _ *cli.Command, client *api.Client) (fetch.Plan, error) {
			return MusicPlan(client), nil
		},
		EmitFn: emitMusic,
	}
	return runner.Run(ctx, cmd)
}

func emitMusic(_ context.Context, cmd *cli.Command, al attrs.AttrList, payload []byte) error {
	if rollup := cmd.String("rollup"); rollup != "" {
		lib, err := music.ParseLibrary(payload)
		if err != nil {
			return err
		}

		var rollups []music.Rollup
		if rollup == "artist" {
			rollups = lib.ByArtist()
		} else {
			rollups = lib.ByGenre()
		}

		for _, r := range rollups {
			fmt.Fprintf(os.Stdout, "%-30s %d\n", r.Name, r.Count)
		}
		return nil
	}

	// The tracks member carries the table rows; artists and genres ride
	// along in the cached payload for the rollups and the board.
	output.SliceDiceSpit(*bytes.NewBuffer(payload), al, cmd, "music.documents", os.Stdout)
	return nil
}

// MusicCommandBuilder constructs the cli.Command definition for the "music"
// command, wiring flags, metadata, and the action handler.
func MusicCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "music",
		Usage:     "music library query",
		UsageText: `craftboard music [options]`,
		Flags: []cli.Flag{
			NewURLFlag("music", meta.Config.Source),
			NewTokenFlag("music", meta.Config.Source),
			&cli.StringFlag{
				Name:  "rollup",
				Usage: "summarize track counts by artist or genre",
				Validator: func(value string) error {
					if value != "" && value != "artist" && value != "genre" {
						return fmt.Errorf("must be one of [artist genre]")
					}
					return nil
				},
			},
		},
		Action: MusicCommandAction,
		Meta:   meta,
	}).Build()
}
