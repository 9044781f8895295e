// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/cachestore"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/fetch"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/meta"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/views/graph"
)

const graphCachePrefix = "graph-blocks-cache"

// GraphCommandAction is the action handler for the "graph" subcommand. It
// fetches the notes documents, then their blocks, builds the link graph, and
// emits it as JSON or, with --dot, in Graphviz dot format.
func GraphCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "graph") {
		return nil
	}

	client, err := NewAPIClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	orch := NewOrchestrator()
	force := cmd.Bool("refresh")

	plan := NotesPlan(client)
	plan.Force = force
	res, err := orch.Fetch(ctx, plan)
	if err != nil {
		return err
	}

	merged := MergeDocuments(res.Data)
	var envelope struct {
		Documents []api.Document `json:"documents"`
	}
	if err := json.Unmarshal(merged.Bytes(), &envelope); err != nil {
		return fmt.Errorf("failed to parse notes payload: %w", err)
	}
	docs := envelope.Documents

	opts := graph.Options{
		IncludeOrphans: cmd.Bool("orphans"),
		TagNodes:       cmd.Bool("tag-nodes"),
	}

	// An empty workspace yields an empty graph; there are no blocks to
	// fetch and a zero-sub plan would be rejected.
	if len(docs) == 0 {
		return emitGraph(graph.Build(nil, nil, opts), cmd.Bool("dot"), os.Stdout)
	}

	blocksPlan := BlocksPlan(client, docs)
	blocksPlan.Force = force
	blocksRes, err := orch.Fetch(ctx, blocksPlan)
	if err != nil {
		return err
	}

	var blocks map[string][]api.Block
	if err := json.Unmarshal(blocksRes.Data, &blocks); err != nil {
		return fmt.Errorf("failed to parse blocks payload: %w", err)
	}

	return emitGraph(graph.Build(docs, blocks, opts), cmd.Bool("dot"), os.Stdout)
}

func emitGraph(g graph.Graph, dot bool, w io.Writer) error {
	if dot {
		fmt.Fprint(w, g.DOT())
		return nil
	}

	out, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(out))
	return nil
}

// BlocksPlan fans out one blocks call per document. The cache key covers the
// document ID set, so adding or removing a note invalidates the payload.
func BlocksPlan(client *api.Client, docs []api.Document) fetch.Plan {
	ids := make([]string, 0, len(docs))
	subs := make([]fetch.Sub, 0, len(docs))
	for _, doc := range docs {
		id := doc.ID
		ids = append(ids, id)
		subs = append(subs, fetch.Sub{
			Name: id,
			Run: func(ctx context.Context) (json.RawMessage, error) {
				blocks, err := client.GetBlocks(ctx, id)
				if err != nil {
					return nil, err
				}
				return json.Marshal(blocks)
			},
		})
	}
	return fetch.Plan{
		Key:  cachestore.Key(graphCachePrefix, ids...),
		Subs: subs,
	}
}

// GraphCommandBuilder constructs the cli.Command definition for the "graph"
// command, wiring flags, metadata, and the action handler.
func GraphCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "graph",
		Usage:     "note link graph",
		UsageText: `craftboard graph [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			refreshFlag,
			NewURLFlag("graph", meta.Config.Source),
			NewTokenFlag("graph", meta.Config.Source),
			&cli.BoolFlag{
				Name:        "orphans",
				Usage:       "keep notes with no links in the graph",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:        "tag-nodes",
				Usage:       "add a node per tag with edges from tagged notes",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:        "dot",
				Usage:       "emit Graphviz dot instead of JSON",
				HideDefault: true,
			},
		},
		Action: GraphCommandAction,
	}
}
