// SPDX-License-Identifier: MIT

// Package summa: functional configuration for the multiply facade.
// This file defines:
//   - Mode (serial/distributed execution selector),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package summa

import "runtime"

// Mode selects the execution strategy of a multiply. It is chosen once per
// call (and, in the solver, once per solve) and held fixed for its lifetime.
type Mode uint8

const (
	// Serial runs a single thread of control with all panels co-located;
	// no communication step exists.
	Serial Mode = iota

	// Distributed fans panel-row ownership out across in-process workers
	// with a synchronous broadcast per shared-dimension step.
	Distributed
)

// String returns the mode name for diagnostics.
func (m Mode) String() string {
	if m == Distributed {
		return "distributed"
	}

	return "serial"
}

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultMode runs multiplications serially.
	DefaultMode = Serial

	// DefaultWorkers of 0 resolves to runtime.GOMAXPROCS(0) at call time
	// in distributed mode; serial mode ignores the worker count.
	DefaultWorkers = 0
)

// Internal panic messages (no magic strings).
const panicWorkersInvalid = "summa: WithWorkers: workers must be >= 1"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-field-only to prevent external mutation;
// public entry points accept ...Option and resolve them via gatherOptions.
type Options struct {
	mode    Mode // DefaultMode
	workers int  // DefaultWorkers; resolved against GOMAXPROCS when 0
	transA  bool // multiply with op(A) = Aᴴ
	transB  bool // multiply with op(B) = Bᴴ
}

// WithMode selects serial or distributed execution.
// Complexity: O(1).
func WithMode(m Mode) Option {
	return func(o *Options) { o.mode = m }
}

// WithWorkers fixes the distributed worker count. Ignored in serial mode.
// Panics with a stable message when n < 1 (programmer error); use the
// default (GOMAXPROCS) by not calling this option at all.
// Complexity: O(1).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithTransposeA multiplies with op(A) = Aᴴ (conjugate transpose; plain
// transpose for real dtypes). Intended for AᴴB symmetric updates.
// Complexity: O(1).
func WithTransposeA() Option {
	return func(o *Options) { o.transA = true }
}

// WithTransposeB multiplies with op(B) = Bᴴ (conjugate transpose; plain
// transpose for real dtypes). Intended for ABᴴ symmetric updates.
// Complexity: O(1).
func WithTransposeB() Option {
	return func(o *Options) { o.transB = true }
}

// gatherOptions applies user-provided setters on top of defaults and
// resolves derived values (worker count) in exactly one place.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{
		mode:    DefaultMode,
		workers: DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	// Resolve the default worker count once, here, so engines never
	// consult global state themselves.
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
