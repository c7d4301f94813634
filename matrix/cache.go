// SPDX-License-Identifier: MIT
// Package matrix: race-free memoization primitive for derived views.
// Matrices are immutable, so a derived view (the transpose) can be computed
// at most once and shared by every reader. lazyCell publishes that view with
// a single CompareAndSwap: concurrent first calls may both compute, exactly
// one result wins, and all callers converge on the winner. No locks, no
// double-checked flags, no torn reads.

package matrix

import "sync/atomic"

// lazyCell is a compute-once, publish-atomically slot for *V.
// The zero value is ready to use.
type lazyCell[V any] struct {
	p atomic.Pointer[V]
}

// get returns the memoized value, computing it on first use. compute MUST be
// a pure function of the owner's immutable state; losers of the publish race
// discard their result and adopt the winner's.
func (c *lazyCell[V]) get(compute func() *V) *V {
	if v := c.p.Load(); v != nil {
		return v
	}
	v := compute()
	if c.p.CompareAndSwap(nil, v) {
		return v
	}

	return c.p.Load()
}

// seed pre-populates the cell; it never overwrites an already published
// value. Construction paths use it to back-link a fresh transpose to its
// source so the involution returns the original instance.
func (c *lazyCell[V]) seed(v *V) {
	c.p.CompareAndSwap(nil, v)
}
