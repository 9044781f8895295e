// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fetch

import "sync/atomic"

// Progress tracks total vs completed sub-requests for a fetch cycle. It is
// safe to read from another goroutine while a fetch is in flight, which is
// how the TUI drives its progress bar.
type Progress struct {
	total atomic.Int64
	done  atomic.Int64
}

// Begin resets the counters for a new fetch cycle of n sub-requests.
func (p *Progress) Begin(n int) {
	p.total.Store(int64(n))
	p.done.Store(0)
}

// Step records one completed sub-request.
func (p *Progress) Step() {
	p.done.Add(1)
}

// Counts returns completed and total sub-requests.
func (p *Progress) Counts() (done, total int64) {
	return p.done.Load(), p.total.Load()
}

// Fraction returns completion in [0,1]. A cycle with no sub-requests
// reports 1.
func (p *Progress) Fraction() float64 {
	total := p.total.Load()
	if total == 0 {
		return 1
	}
	return float64(p.done.Load()) / float64(total)
}
