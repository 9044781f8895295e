// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/attrs"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/fetch"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/meta"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/output"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/views/tags"
)

// TagsCommandAction is the action handler for the "tags" subcommand. It spans
// the notes, tasks, and cards collections and emits the tag index as rows of
// tag and document count. With --with it lists the documents carrying a tag
// instead.
func TagsCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &ViewActionRunner{
		CommandName:  "tags",
		DefaultAttrs: []string{".tag", ".count"},
		Parent:       "tags",
		PlanFn: func(_ context.Context, _ *cli.Command, client *api.Client) (fetch.Plan, error) {
			return TagsPlan(client), nil
		},
		EmitFn: emitTags,
	}
	return runner.Run(ctx, cmd)
}

func emitTags(_ context.Context, cmd *cli.Command, al attrs.AttrList, payload []byte) error {
	merged := MergeDocuments(payload)
	var envelope struct {
		Documents []api.Document `json:"documents"`
	}
	if err := json.Unmarshal(merged.Bytes(), &envelope); err != nil {
		return fmt.Errorf("failed to parse tags payload: %w", err)
	}

	if with := cmd.String("with"); with != "" {
		for _, doc := range tags.WithTag(envelope.Documents, with) {
			fmt.Fprintf(os.Stdout, "%-20s %s\n", doc.Collection, doc.Title)
		}
		return nil
	}

	index, err := json.Marshal(map[string][]tags.Entry{"tags": tags.Index(envelope.Documents)})
	if err != nil {
		return fmt.Errorf("failed to marshal tag index: %w", err)
	}

	output.SliceDiceSpit(*bytes.NewBuffer(index), al, cmd, "tags", os.Stdout)
	return nil
}

// TagsCommandBuilder constructs the cli.Command definition for the "tags"
// command, wiring flags, metadata, and the action handler.
func TagsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "tags",
		Usage:     "tag index across notes, tasks, and cards",
		UsageText: `craftboard tags [options]`,
		Flags: []cli.Flag{
			NewURLFlag("tags", meta.Config.Source),
			NewTokenFlag("tags", meta.Config.Source),
			&cli.StringFlag{
				Name:  "with",
				Usage: "list the documents tagged with `TAG` instead of the index",
			},
		},
		Action: TagsCommandAction,
		Meta:   meta,
	}).Build()
}
