// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/attrs"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/fetch"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/meta"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/state"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/views/cards"
)

// CardsCommandAction is the action handler for the "cards" subcommand. The
// default listing shows the cards themselves; --decks summarizes per-deck
// counts and --log prints the recorded study sessions.
func CardsCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("log") {
		return printStudyLog()
	}

	runner := &ViewActionRunner{
		CommandName:  "cards",
		DefaultAttrs: []string{".id", "deck", "front", "back"},
		Parent:       "documents",
		PlanFn: func(_ context.Context, _ *cli.Command, client *api.Client) (fetch.Plan, error) {
			return CardsPlan(client), nil
		},
	}

	if cmd.Bool("decks") {
		runner.EmitFn = emitDecks
	}

	return runner.Run(ctx, cmd)
}

func emitDecks(_ context.Context, _ *cli.Command, _ attrs.AttrList, payload []byte) error {
	merged := MergeDocuments(payload)
	var envelope struct {
		Documents []api.Document `json:"documents"`
	}
	if err := json.Unmarshal(merged.Bytes(), &envelope); err != nil {
		return fmt.Errorf("failed to parse cards payload: %w", err)
	}

	for _, summary := range cards.Decks(cards.FromDocuments(envelope.Documents)) {
		fmt.Fprintf(os.Stdout, "%-20s %d\n", summary.Name, summary.Count)
	}
	return nil
}

func printStudyLog() error {
	dir, err := state.DefaultDir()
	if err != nil {
		return err
	}

	sessions, err := state.NewFileStore(dir).Sessions()
	if err != nil {
		return err
	}

	for _, s := range sessions {
		fmt.Fprintf(os.Stdout, "%s  %-15s seen %-3d again %-3d good %-3d\n",
			s.StartedAt.Format("2006-01-02 15:04"), s.Deck, s.Seen, s.Again, s.Good)
	}
	return nil
}

// CardsCommandBuilder constructs the cli.Command definition for the "cards"
// command, wiring flags, metadata, and the action handler.
func CardsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "cards",
		Usage:     "flashcards query",
		UsageText: `craftboard cards [options]`,
		Flags: []cli.Flag{
			NewURLFlag("cards", meta.Config.Source),
			NewTokenFlag("cards", meta.Config.Source),
			&cli.BoolFlag{
				Name:        "decks",
				Usage:       "summarize card counts per deck",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:        "log",
				Usage:       "show the recorded study sessions",
				HideDefault: true,
			},
		},
		Action: CardsCommandAction,
		Meta:   meta,
	}).Build()
}
