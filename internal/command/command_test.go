// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/views/graph"
)

func TestMergeDocuments_FlattensMembers(t *testing.T) {
	payload := []byte(`{
		"notes": {"documents": [{"id": "n1", "title": "Amp repair"}]},
		"journal": {"documents": [{"id": "j1", "title": "Bread log"}]}
	}`)

	buf := MergeDocuments(payload)
	merged := buf.String()
	assert.Contains(t, merged, `"id":"n1"`)
	assert.Contains(t, merged, `"id":"j1"`)
}

func TestMergeDocuments_EmptyPayload(t *testing.T) {
	buf := MergeDocuments([]byte(`{}`))
	assert.Equal(t, `{"documents":null}`, buf.String())
}

func TestMergeDocuments_SkipsMembersWithoutDocuments(t *testing.T) {
	payload := []byte(`{
		"notes": {"documents": [{"id": "n1"}]},
		"stats": {"count": 3}
	}`)

	buf := MergeDocuments(payload)
	merged := buf.String()
	assert.Contains(t, merged, `"id":"n1"`)
	assert.NotContains(t, merged, "count")
}

func TestPlanFor_KnownViews(t *testing.T) {
	for _, view := range []string{"notes", "tasks", "music", "cards", "tags"} {
		plan, err := PlanFor(view, nil)
		require.NoError(t, err, view)
		assert.NotEmpty(t, plan.Key, view)
		assert.NotEmpty(t, plan.Subs, view)
	}
}

func TestPlanFor_UnknownView(t *testing.T) {
	_, err := PlanFor("calendar", nil)
	assert.Error(t, err)
}

func TestMusicPlan_FixedSubNames(t *testing.T) {
	plan := MusicPlan(nil)
	require.Len(t, plan.Subs, 3)
	assert.Equal(t, "music", plan.Subs[0].Name)
	assert.Equal(t, "artists", plan.Subs[1].Name)
	assert.Equal(t, "genres", plan.Subs[2].Name)
}

func TestTagsPlan_SpansCollections(t *testing.T) {
	plan := TagsPlan(nil)
	names := make([]string, 0, len(plan.Subs))
	for _, sub := range plan.Subs {
		names = append(names, sub.Name)
	}
	assert.Contains(t, names, "notes")
	assert.Contains(t, names, "tasks")
	assert.Contains(t, names, "cards")
}

func TestBlocksPlan_OneSubPerDocument(t *testing.T) {
	docs := []api.Document{{ID: "d1"}, {ID: "d2"}}
	plan := BlocksPlan(nil, docs)

	require.Len(t, plan.Subs, 2)
	assert.Equal(t, "d1", plan.Subs[0].Name)
	assert.Equal(t, "d2", plan.Subs[1].Name)

	other := BlocksPlan(nil, docs[:1])
	assert.NotEqual(t, plan.Key, other.Key)
}

func TestBlocksPlan_NoDocuments(t *testing.T) {
	// A zero-sub plan is rejected by the orchestrator; the graph action
	// must emit the empty graph without fetching blocks.
	plan := BlocksPlan(nil, nil)
	assert.Empty(t, plan.Subs)
}

func TestEmitGraph_EmptyWorkspace(t *testing.T) {
	g := graph.Build(nil, nil, graph.Options{})

	var buf bytes.Buffer
	require.NoError(t, emitGraph(g, false, &buf))
	assert.Contains(t, buf.String(), `"nodes"`)
	assert.Contains(t, buf.String(), `"edges"`)

	buf.Reset()
	require.NoError(t, emitGraph(g, true, &buf))
	assert.Contains(t, buf.String(), "digraph craftboard")
}

func TestInitApp_RegistersCommands(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"craftboard", "notes"})
	require.NoError(t, err)

	names := make([]string, 0, len(app.Commands))
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	for _, want := range []string{"notes", "tasks", "music", "cards", "tags", "graph", "board", "cache", "completion"} {
		assert.Contains(t, names, want)
	}
}

func TestCacheDiffFlags(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"craftboard", "cache"})
	require.NoError(t, err)

	var diff *cli.Command
	for _, cmd := range app.Commands {
		if cmd.Name != "cache" {
			continue
		}
		for _, sub := range cmd.Commands {
			if sub.Name == "diff" {
				diff = sub
			}
		}
	}
	require.NotNil(t, diff)

	var names []string
	for _, f := range diff.Flags {
		names = append(names, f.Names()...)
	}
	assert.Contains(t, names, "write")
	assert.Contains(t, names, "delta")
	assert.Contains(t, names, "color")
}
