// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering. This file
// defines:
//   - Option / formatOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: formatOptions fields are unexported; Format consumes ...Option.

package matrix

import "fmt"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxRows caps how many leading rows Format renders before
	// eliding the remainder with an ellipsis line.
	DefaultMaxRows = 10

	// DefaultMaxCols caps how many leading columns Format renders per row
	// before eliding the remainder with a trailing ellipsis.
	DefaultMaxCols = 10
)

// Option mutates rendering options. Safe to apply repeatedly (last-writer-wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*formatOptions)

// formatOptions stores the effective rendering configuration after applying
// Option setters. Unexported to prevent external mutation; Format accepts
// ...Option and resolves them via gatherOptions.
type formatOptions struct {
	maxRows int // >= 1; DefaultMaxRows
	maxCols int // >= 1; DefaultMaxCols
}

// WithMaxRows caps the number of rendered rows at n.
//
// Inputs:
//   - n: row cap, must be >= 1.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when n < 1 (programmer error).
func WithMaxRows(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("matrix: WithMaxRows(%d): cap must be >= 1", n))
	}

	return func(o *formatOptions) { o.maxRows = n }
}

// WithMaxCols caps the number of rendered columns at n.
//
// Inputs:
//   - n: column cap, must be >= 1.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when n < 1 (programmer error).
func WithMaxCols(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("matrix: WithMaxCols(%d): cap must be >= 1", n))
	}

	return func(o *formatOptions) { o.maxCols = n }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for every rendering path.
//
// Determinism: stable for a given sequence of setters (last-writer-wins).
// Complexity: Time O(k), Space O(1) for k = len(user).
func gatherOptions(user ...Option) formatOptions {
	o := formatOptions{
		maxRows: DefaultMaxRows,
		maxCols: DefaultMaxCols,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
