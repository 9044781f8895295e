// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package fetch coordinates the cache-and-refresh cycle every view uses: on
// activation consult the cache, and on miss or forced refresh fan out the
// view's sub-requests, aggregate, and write through.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/cachestore"
)

// Sub is one named network call of a fetch plan. The payload it returns
// appears under Name in the aggregated object.
type Sub struct {
	Name string
	Run  func(ctx context.Context) (json.RawMessage, error)
}

// Plan describes one fetch cycle for a view.
type Plan struct {
	// Key is the cache key, derived from the view prefix and the collection
	// IDs in use.
	Key string
	// Force bypasses the cache consult and always refetches.
	Force bool
	// Dry runs the network fetch but leaves the cache untouched. Used by
	// cache diff to compare fresh against cached.
	Dry  bool
	Subs []Sub
}

// Result carries the aggregated payload and whether it was served from the
// cache.
type Result struct {
	Data      json.RawMessage
	FromCache bool
}

// Orchestrator runs fetch plans against a cache store, reporting progress as
// sub-requests complete.
type Orchestrator struct {
	Store    *cachestore.Store
	Progress *Progress
}

// New returns an Orchestrator over the given store.
func New(store *cachestore.Store) *Orchestrator {
	return &Orchestrator{Store: store, Progress: &Progress{}}
}

// Fetch executes plan. All-or-nothing semantics: the first sub-request
// failure cancels the rest, fails the fetch, and leaves the cache exactly as
// it was. No partial-success caching.
func (o *Orchestrator) Fetch(ctx context.Context, plan Plan) (Result, error) {
	if !plan.Force {
		if data, ok := o.Store.Get(plan.Key); ok {
			log.Debugf("cache hit: %s", plan.Key)
			return Result{Data: data, FromCache: true}, nil
		}
	}

	if len(plan.Subs) == 0 {
		return Result{}, fmt.Errorf("fetch plan %s has no sub-requests", plan.Key)
	}

	if o.Progress != nil {
		o.Progress.Begin(len(plan.Subs))
	}

	parts := make([]json.RawMessage, len(plan.Subs))
	g, gctx := errgroup.WithContext(ctx)
	for i, sub := range plan.Subs {
		g.Go(func() error {
			data, err := sub.Run(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", sub.Name, err)
			}
			parts[i] = data
			if o.Progress != nil {
				o.Progress.Step()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Cache stays at its last good state.
		return Result{}, err
	}

	agg := make(map[string]json.RawMessage, len(plan.Subs))
	for i, sub := range plan.Subs {
		agg[sub.Name] = parts[i]
	}
	data, err := json.Marshal(agg)
	if err != nil {
		return Result{}, fmt.Errorf("failed to aggregate fetch results: %w", err)
	}

	if !plan.Dry {
		if err := o.Store.Set(plan.Key, data); err != nil {
			log.WithError(err).Warnf("failed to write cache entry %s", plan.Key)
		}
	}

	return Result{Data: data}, nil
}
