// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/attrs"
)

const dataset = `{"documents":[
	{"id":"doc-1","title":"Sourdough Basics","tags":["bread","kitchen"],
	 "fields":{"status":"open","priority":1,"words":420}},
	{"id":"doc-2","title":"Gig Archive 2019","tags":["music"],
	 "fields":{"status":"done","priority":3,"words":1800}},
	{"id":"doc-3","title":"Bike Maintenance","tags":["garage","bike"],
	 "fields":{"status":"open","priority":2,"words":95}}
]}`

func testAttrs(t *testing.T) attrs.AttrList {
	t.Helper()
	var al attrs.AttrList
	require.NoError(t, al.Set(".id,.title,.tags,status,priority,words"))
	return al
}

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []Filter
	}{
		{
			name: "empty spec",
			spec: "",
			want: nil,
		},
		{
			name: "single equality",
			spec: "status=open",
			want: []Filter{{Key: "status", Operand: "=", Target: "open"}},
		},
		{
			name: "negated equality",
			spec: "status!=done",
			want: []Filter{{Key: "status", Negate: true, Operand: "=", Target: "done"}},
		},
		{
			name: "multiple filters",
			spec: "status=open,title^Bike",
			want: []Filter{
				{Key: "status", Operand: "=", Target: "open"},
				{Key: "title", Operand: "^", Target: "Bike"},
			},
		},
		{
			name: "invalid filter skipped",
			spec: "status=open,bogus",
			want: []Filter{{Key: "status", Operand: "=", Target: "open"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFilters(tt.spec)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildFiltersDelimOverride(t *testing.T) {
	t.Setenv("CRAFTBOARD_FILTER_DELIM", ";")

	got := BuildFilters("title@Archive,2019;status=done")
	require.Len(t, got, 2)
	assert.Equal(t, "Archive,2019", got[0].Target)
	assert.Equal(t, "done", got[1].Target)
}

func TestFilterDataset(t *testing.T) {
	candidates := gjson.Get(dataset, "documents")

	tests := []struct {
		name    string
		spec    string
		wantIDs []string
	}{
		{
			name:    "no filters returns all",
			spec:    "",
			wantIDs: []string{"doc-1", "doc-2", "doc-3"},
		},
		{
			name:    "string equality",
			spec:    "status=open",
			wantIDs: []string{"doc-1", "doc-3"},
		},
		{
			name:    "negated equality",
			spec:    "status!=open",
			wantIDs: []string{"doc-2"},
		},
		{
			name:    "prefix",
			spec:    "title^Gig",
			wantIDs: []string{"doc-2"},
		},
		{
			name:    "case insensitive equality",
			spec:    "status~OPEN",
			wantIDs: []string{"doc-1", "doc-3"},
		},
		{
			name:    "substring",
			spec:    "title@Main",
			wantIDs: []string{"doc-3"},
		},
		{
			name:    "regex",
			spec:    "title/[0-9]{4}",
			wantIDs: []string{"doc-2"},
		},
		{
			name:    "numeric greater than",
			spec:    "words>400",
			wantIDs: []string{"doc-1", "doc-2"},
		},
		{
			name:    "numeric less than",
			spec:    "priority<2",
			wantIDs: []string{"doc-1"},
		},
		{
			name:    "numeric equality negated",
			spec:    "priority!=3",
			wantIDs: []string{"doc-1", "doc-3"},
		},
		{
			name:    "tag membership",
			spec:    "tags@music",
			wantIDs: []string{"doc-2"},
		},
		{
			name:    "tag membership negated",
			spec:    "tags!@music",
			wantIDs: []string{"doc-1", "doc-3"},
		},
		{
			name:    "conjunction",
			spec:    "status=open,words>100",
			wantIDs: []string{"doc-1"},
		},
		{
			name:    "no matches",
			spec:    "status=archived",
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDataset(candidates, testAttrs(t), tt.spec)

			var ids []string
			for _, row := range got {
				ids = append(ids, row["id"].(string))
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterDatasetMissingKeyRejectsRow(t *testing.T) {
	candidates := gjson.Get(dataset, "documents")
	var al attrs.AttrList
	require.NoError(t, al.Set(".id,due"))

	// No row carries fields.due so every row drills to nil and is rejected.
	got := FilterDataset(candidates, al, "due=2026-01-01")
	assert.Empty(t, got)
}

func TestFilterDatasetUnknownFilterKeyIgnored(t *testing.T) {
	candidates := gjson.Get(dataset, "documents")

	// A filter key that maps to no attribute is reported and skipped, not
	// treated as rejecting the row.
	got := FilterDataset(candidates, testAttrs(t), "nonesuch=42,status=done")
	require.Len(t, got, 1)
	assert.Equal(t, "doc-2", got[0]["id"])
}
