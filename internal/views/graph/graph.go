// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package graph builds the document link graph from wiki-style links in
// block text.
package graph

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/api"
)

// linkRegex matches [[Some Title]] style links in block text. The capture
// excludes the brackets.
var linkRegex = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)

// Node is a vertex in the link graph.
type Node struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Kind   string `json:"kind"` // "document" or "tag"
	Degree int    `json:"degree"`
}

// Edge is a directed link between two nodes.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is the assembled link graph.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Options controls graph assembly.
type Options struct {
	// IncludeOrphans keeps documents with no edges in the graph.
	IncludeOrphans bool
	// TagNodes adds a node per tag with an edge from each tagged document.
	TagNodes bool
}

// ExtractLinks returns the link targets in a block of text, deduplicated,
// in order of first appearance.
func ExtractLinks(text string) []string {
	//nolint:prealloc
	var links []string
	seen := make(map[string]bool)

	for _, match := range linkRegex.FindAllStringSubmatch(text, -1) {
		target := strings.TrimSpace(match[1])
		if target == "" || seen[target] {
			continue
		}
		seen[target] = true
		links = append(links, target)
	}
	return links
}

// Build assembles the link graph. Links resolve to documents by title,
// case-insensitively; links to titles that match no document are dropped.
func Build(docs []api.Document, blocks map[string][]api.Block, opts Options) Graph {
	byTitle := make(map[string]string, len(docs))
	for _, doc := range docs {
		byTitle[strings.ToLower(doc.Title)] = doc.ID
	}

	degrees := make(map[string]int)
	edgeSeen := make(map[Edge]bool)

	//nolint:prealloc
	var edges []Edge
	addEdge := func(from, to string) {
		e := Edge{From: from, To: to}
		if from == to || edgeSeen[e] {
			return
		}
		edgeSeen[e] = true
		edges = append(edges, e)
		degrees[from]++
		degrees[to]++
	}

	for _, doc := range docs {
		for _, block := range blocks[doc.ID] {
			for _, target := range ExtractLinks(block.Text) {
				if targetID, ok := byTitle[strings.ToLower(target)]; ok {
					addEdge(doc.ID, targetID)
				}
			}
		}

		if opts.TagNodes {
			for _, tag := range doc.Tags {
				if tag != "" {
					addEdge(doc.ID, "tag:"+tag)
				}
			}
		}
	}

	//nolint:prealloc
	var nodes []Node
	for _, doc := range docs {
		degree := degrees[doc.ID]
		if degree == 0 && !opts.IncludeOrphans {
			continue
		}
		nodes = append(nodes, Node{
			ID:     doc.ID,
			Title:  doc.Title,
			Kind:   "document",
			Degree: degree,
		})
	}

	if opts.TagNodes {
		//nolint:prealloc
		var tagNodes []Node
		for id, degree := range degrees {
			if !strings.HasPrefix(id, "tag:") {
				continue
			}
			tagNodes = append(tagNodes, Node{
				ID:     id,
				Title:  strings.TrimPrefix(id, "tag:"),
				Kind:   "tag",
				Degree: degree,
			})
		}
		sort.Slice(tagNodes, func(i, j int) bool { return tagNodes[i].ID < tagNodes[j].ID })
		nodes = append(nodes, tagNodes...)
	}

	return Graph{Nodes: nodes, Edges: edges}
}

// DOT renders the graph in Graphviz dot format.
func (g Graph) DOT() string {
	var b strings.Builder
	b.WriteString("digraph craftboard {\n")

	for _, node := range g.Nodes {
		shape := "box"
		if node.Kind == "tag" {
			shape = "ellipse"
		}
		fmt.Fprintf(&b, "  %q [label=%q shape=%s];\n", node.ID, node.Title, shape)
	}

	for _, edge := range g.Edges {
		fmt.Fprintf(&b, "  %q -> %q;\n", edge.From, edge.To)
	}

	b.WriteString("}\n")
	return b.String()
}
