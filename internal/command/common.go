// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"time"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/attrs"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/cachestore"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/config"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/fetch"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/meta"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/output"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr craftboard <subcmd>` and returns true so the caller can exit
// early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "craftboard", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewAPIClient resolves the connection config, preferring explicit flags,
// and returns a ready client.
func NewAPIClient(cmd *cli.Command) (*api.Client, error) {
	cfg := api.ResolveConfig()
	if u := cmd.String("url"); u != "" {
		cfg.BaseURL = u
	}
	if t := cmd.String("token"); t != "" {
		cfg.Token = t
	}
	return api.New(cfg)
}

// NewOrchestrator builds the fetch orchestrator over a store whose expiry
// window comes from cache.expiry (hours, 0 = never expire).
func NewOrchestrator() *fetch.Orchestrator {
	hours, _ := config.GetInt("cache.expiry", 0)
	return fetch.New(cachestore.New(time.Duration(hours) * time.Hour))
}

// CollectionIDs returns the configured collection IDs for a config key,
// falling back to the provided defaults.
func CollectionIDs(key string, defaults ...string) []string {
	ids, err := config.GetStringSlice(key)
	if err != nil || len(ids) == 0 {
		return defaults
	}
	return ids
}

// ListSub wraps a collection list call as a fetch plan sub-request. The
// payload is the documents envelope keyed by the collection ID.
func ListSub(client *api.Client, collectionID string) fetch.Sub {
	return fetch.Sub{
		Name: collectionID,
		Run: func(ctx context.Context) (json.RawMessage, error) {
			docs, err := client.ListCollection(ctx, collectionID)
			if err != nil {
				return nil, err
			}
			return json.Marshal(struct {
				Documents []api.Document `json:"documents"`
			}{Documents: docs})
		},
	}
}

// MergeDocuments flattens an aggregate payload's per-collection document
// envelopes into a single {"documents": [...]} buffer for the output
// pipeline.
func MergeDocuments(payload []byte) bytes.Buffer {
	var docs []json.RawMessage

	gjson.ParseBytes(payload).ForEach(func(_, member gjson.Result) bool {
		arr := member.Get("documents")
		if !arr.Exists() {
			return true
		}
		for _, doc := range arr.Array() {
			docs = append(docs, json.RawMessage(doc.Raw))
		}
		return true
	})

	merged, err := json.Marshal(map[string][]json.RawMessage{"documents": docs})
	if err != nil {
		log.WithError(err).Error("failed to merge documents")
		return *bytes.NewBuffer([]byte(`{"documents":[]}`))
	}
	return *bytes.NewBuffer(merged)
}

// QueryCommandBuilder constructs a cli.Command for the view query
// subcommands using a consistent pattern. It accepts the command name, usage
// text, optional UsageText, custom flags, the action handler, and meta. The
// builder automatically wires metadata, adds the tldr/refresh flags, applies
// global flags, and sets up validators.
type QueryCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: append(qcb.Flags, append([]cli.Flag{
			tldrFlag,
			refreshFlag,
		}, NewGlobalFlags(qcb.Name)...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: qcb.Action,
	}
}

// ViewActionRunner encapsulates the common view query pattern: consult the
// cache via the orchestrator, fetch on miss or --refresh, and emit through
// the slice/dice pipeline.
type ViewActionRunner struct {
	CommandName  string
	DefaultAttrs []string
	// Parent is the gjson path into the emitted buffer handed to the output
	// pipeline. Empty means the buffer root.
	Parent string
	// PlanFn builds the fetch plan from the configured collections.
	PlanFn func(context.Context, *cli.Command, *api.Client) (fetch.Plan, error)
	// EmitFn overrides the default merge-documents emission when a view
	// needs a different shape.
	EmitFn func(context.Context, *cli.Command, attrs.AttrList, []byte) error
}

// Run executes the view query with the provided context and command.
func (vr *ViewActionRunner) Run(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, vr.CommandName) {
		return nil
	}

	al := BuildAttrs(cmd, vr.DefaultAttrs...)
	log.Debugf("attrs: %v", al)

	client, err := NewAPIClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	plan, err := vr.PlanFn(ctx, cmd, client)
	if err != nil {
		return err
	}
	plan.Force = cmd.Bool("refresh")

	res, err := NewOrchestrator().Fetch(ctx, plan)
	if err != nil {
		return err
	}

	if vr.EmitFn != nil {
		return vr.EmitFn(ctx, cmd, al, res.Data)
	}

	raw := MergeDocuments(res.Data)
	output.SliceDiceSpit(raw, al, cmd, vr.Parent, os.Stdout)
	return nil
}
