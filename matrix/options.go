// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of Dense
// matrices. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX policy toggles,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - validateNaNInf controls whether Set()/Fill() reject NaN/Inf at all.
//   - allowInfDistances is a narrow exception for +Inf as “no path” in
//     distance matrices (neighbor graphs, APSP). Under validation, NaN and
//     -Inf remain rejected even when allowInfDistances=true.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance for structural checks (ValidateSymmetric).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and Fill.
	DefaultValidateNaNInf = true

	// DefaultAllowInfDistances permits +Inf values to represent “no path” in
	// distance-policy matrices.
	DefaultAllowInfDistances = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf    bool // DefaultValidateNaNInf
	allowInfDistances bool // DefaultAllowInfDistances (+Inf as “no path”)
}

// WithNoValidateNaNInf disables finite-value validation on Set/Fill.
// Use only for scratch buffers whose contents are produced by trusted kernels.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowInfDistances permits +Inf as the “no edge / no path” sentinel.
// Required for neighbor-graph and APSP buffers.
func WithAllowInfDistances() Option {
	return func(o *Options) { o.allowInfDistances = true }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf:    DefaultValidateNaNInf,
		allowInfDistances: DefaultAllowInfDistances,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
