// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for display formatting and
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state; precision travels with each call.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the maximum number of fraction digits printed by Format.
	DefaultPrecision = 2

	// DefaultColumnSeparator joins the values of one row in Format.
	DefaultColumnSeparator = " "

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 0, got %d"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; read them
// through the accessor methods.
type Options struct {
	precision      int    // max fraction digits in Format
	columnSep      string // separator between values of one row
	validateNaNInf bool   // reject NaN/±Inf on ingestion
}

// WithPrecision sets the maximum number of fraction digits used by Format.
// Panics if p < 0.
//
// AI-Hints: WithPrecision(0) prints integers only (values are rounded half-to-even).
func WithPrecision(p int) Option {
	if p < 0 {
		panic(fmt.Sprintf(panicPrecisionInvalid, p))
	}

	return func(o *Options) { o.precision = p }
}

// WithColumnSeparator sets the string placed between values of one row.
func WithColumnSeparator(sep string) Option {
	return func(o *Options) { o.columnSep = sep }
}

// WithValidateNaNInf enables rejection of NaN/±Inf on ingestion (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables rejection of NaN/±Inf on ingestion.
// Use only for controlled data flows; kernels then propagate IEEE-754 values.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// Precision returns the resolved fraction-digit limit.
func (o Options) Precision() int { return o.precision }

// ColumnSeparator returns the resolved value separator.
func (o Options) ColumnSeparator() string { return o.columnSep }

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// NewMatrixOptions resolves opts on top of the documented defaults.
// Nil options are skipped.
// Complexity: O(len(opts)).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions mirrors the Default* constants exactly.
func defaultOptions() Options {
	return Options{
		precision:      DefaultPrecision,
		columnSep:      DefaultColumnSeparator,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options in order (last write wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	return o
}
