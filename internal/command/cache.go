// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/cachestore"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/differ"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/meta"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/output"
)

// CacheStatsCommandAction lists the current cache entries with their size
// and age.
func CacheStatsCommandAction(_ context.Context, _ *cli.Command) error {
	entries, err := NewOrchestrator().Store.Entries()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "cache is empty")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-40s %10s  %s\n",
			e.Key, humanize.Bytes(uint64(e.Size)), humanize.Time(e.Timestamp))
	}
	return nil
}

// CacheClearCommandAction removes one cache entry by key, or every entry
// when no key is given.
func CacheClearCommandAction(_ context.Context, cmd *cli.Command) error {
	store := NewOrchestrator().Store

	if key := cmd.Args().First(); key != "" {
		return store.Clear(key)
	}
	return store.ClearAll()
}

// CachePurgeCommandAction removes cache entries older than --older.
func CachePurgeCommandAction(_ context.Context, cmd *cli.Command) error {
	older, err := time.ParseDuration(cmd.String("older"))
	if err != nil {
		return err
	}
	return cachestore.Purge(older)
}

// CacheDiffCommandAction compares the cached payload of a view against a
// fresh fetch. The fetch leaves the cache untouched unless --write is set.
func CacheDiffCommandAction(ctx context.Context, cmd *cli.Command) error {
	view := cmd.Args().First()
	if view == "" {
		return fmt.Errorf("usage: craftboard cache diff <view>")
	}

	client, err := NewAPIClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	orch := NewOrchestrator()

	plan, err := PlanFor(view, client)
	if err != nil {
		return err
	}

	cached, ok := orch.Store.Get(plan.Key)
	if !ok {
		return fmt.Errorf("no cached payload for %s, run the view first", view)
	}

	plan.Force = true
	plan.Dry = !cmd.Bool("write")
	fresh, err := orch.Fetch(ctx, plan)
	if err != nil {
		return err
	}

	var out string
	var changed bool
	if cmd.Bool("delta") {
		out, changed, err = differ.DiffDelta(cached, fresh.Data)
	} else {
		out, changed, err = differ.Diff(cached, fresh.Data, cmd.Bool("color"))
	}
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintf(os.Stdout, "%s is up to date\n", view)
		return nil
	}

	fmt.Fprint(os.Stdout, out)
	return nil
}

// CacheCommandBuilder constructs the cli.Command definition for the "cache"
// command and its subcommands.
func CacheCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "cache",
		Usage:     "cache administration",
		UsageText: `craftboard cache <stats|clear|purge|diff> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			output.DumpExamples(ctx, c, [][2]string{
				{"craftboard cache stats", "list cache entries with size and age"},
				{"craftboard cache clear notes-cache-notes", "remove one entry"},
				{"craftboard cache purge --older 24h", "drop entries older than a day"},
				{"craftboard cache diff notes", "compare cached against fresh"},
			})
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "list cache entries with size and age",
				Action: CacheStatsCommandAction,
			},
			{
				Name:      "clear",
				Usage:     "remove one cache entry, or all of them",
				UsageText: `craftboard cache clear [key]`,
				Action:    CacheClearCommandAction,
			},
			{
				Name:  "purge",
				Usage: "remove cache entries older than a duration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "older",
						Usage:    "age threshold, e.g. 24h",
						Required: true,
						Validator: func(value string) error {
							return FlagValidators(value, DurationValidator)
						},
					},
				},
				Action: CachePurgeCommandAction,
			},
			{
				Name:      "diff",
				Usage:     "compare a view's cached payload against a fresh fetch",
				UsageText: `craftboard cache diff <view> [options]`,
				Flags: []cli.Flag{
					NewURLFlag("cache", meta.Config.Source),
					NewTokenFlag("cache", meta.Config.Source),
					&cli.BoolFlag{
						Name:        "write",
						Usage:       "store the fresh payload in the cache after diffing",
						HideDefault: true,
					},
					&cli.BoolFlag{
						Name:        "delta",
						Usage:       "emit the diff in compact delta format",
						HideDefault: true,
					},
					&cli.BoolFlag{
						Name:        "color",
						Aliases:     []string{"c"},
						Usage:       "colorize the diff",
						HideDefault: true,
					},
				},
				Action: CacheDiffCommandAction,
			},
		},
	}
}
