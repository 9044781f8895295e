// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"title": "zine layout", "words": 300.0, "status": "open"},
		{"title": "Amp repair", "words": 100.0, "status": "done"},
		{"title": "bread log", "words": 200.0, "status": "open"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{
			name:      "ascending by title",
			spec:      "title",
			wantOrder: []string{"Amp repair", "bread log", "zine layout"},
		},
		{
			name:      "descending by title",
			spec:      "-title",
			wantOrder: []string{"zine layout", "bread log", "Amp repair"},
		},
		{
			name:      "ascending by words",
			spec:      "words",
			wantOrder: []string{"Amp repair", "bread log", "zine layout"},
		},
		{
			name:      "descending by words",
			spec:      "-words",
			wantOrder: []string{"zine layout", "bread log", "Amp repair"},
		},
		{
			name: "case sensitive puts uppercase first",
			spec: "!title",
			// 'A' < 'b' < 'z' in a byte-wise compare.
			wantOrder: []string{"Amp repair", "bread log", "zine layout"},
		},
		{
			name:      "multiple fields",
			spec:      "status,words",
			wantOrder: []string{"Amp repair", "bread log", "zine layout"},
		},
		{
			name:      "descending with tie break",
			spec:      "-status,title",
			wantOrder: []string{"bread log", "zine layout", "Amp repair"},
		},
		{
			name:      "empty spec keeps incoming order",
			spec:      "",
			wantOrder: []string{"zine layout", "Amp repair", "bread log"},
		},
		{
			name:      "unknown key keeps incoming order",
			spec:      "nonesuch",
			wantOrder: []string{"zine layout", "Amp repair", "bread log"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, expectedTitle := range tt.wantOrder {
				assert.Equal(t, expectedTitle, data[i]["title"], "at index %d", i)
			}
		})
	}
}

func TestSortDatasetNilSortsLast(t *testing.T) {
	data := []map[string]interface{}{
		{"title": "beta", "due": nil},
		{"title": "alpha", "due": "2026-03-01"},
	}

	SortDataset(data, "due")
	assert.Equal(t, "alpha", data[0]["title"])
	assert.Equal(t, "beta", data[1]["title"])
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{
			name:  "string",
			value: "hello",
			want:  "hello",
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "float64",
			value: 42.5,
			want:  "42",
		},
		{
			name:  "float64 with decimal",
			value: 42.7,
			want:  "43",
		},
		{
			name:  "bool true",
			value: true,
			want:  "true",
		},
		{
			name:  "bool false is zero value",
			value: false,
			want:  "",
		},
		{
			name:  "nil default",
			value: nil,
			want:  "",
		},
		{
			name:     "nil custom",
			value:    nil,
			emptyVal: "-",
			want:     "-",
		},
		{
			name:  "slice",
			value: []string{"bread", "kitchen"},
			want:  `["bread","kitchen"]`,
		},
		{
			name:  "map",
			value: map[string]int{"x": 1},
			want:  `{"x":1}`,
		},
		{
			name:  "zero value int",
			value: 0,
			want:  "",
		},
		{
			name:     "zero value with custom empty",
			value:    0,
			emptyVal: "N/A",
			want:     "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetColors(t *testing.T) {
	header, even, odd := getColors("colors")

	// Should return strings (may be empty or defaults)
	assert.IsType(t, "", header)
	assert.IsType(t, "", even)
	assert.IsType(t, "", odd)
}

func BenchmarkSortDataset(b *testing.B) {
	testData := []map[string]interface{}{
		{"title": "zine layout", "words": 300.0},
		{"title": "amp repair", "words": 100.0},
		{"title": "bread log", "words": 200.0},
	}

	spec := "title"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data := make([]map[string]interface{}, len(testData))
		copy(data, testData)
		SortDataset(data, spec)
	}
}
