// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for textual output.
// This file defines:
//   - PrintOption / printOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherPrintOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Zero options reproduce the canonical layout:
//     "[\n" + per row "\t" + values joined by "\t" + "\n" + "]\n".
package matrix

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVerb formats one element (fmt verb). "%v" prints floats as 1, 0.5, 1e+06.
	DefaultVerb = "%v"

	// DefaultSeparator goes between two elements of one row (never after the last).
	DefaultSeparator = "\t"

	// DefaultIndent opens every row line.
	DefaultIndent = "\t"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVerbInvalid = "matrix: WithVerb: verb must start with '%'"
)

// PrintOption mutates internal print options. Safe to apply repeatedly.
type PrintOption func(*printOptions)

// printOptions stores the effective configuration after applying PrintOption setters.
type printOptions struct {
	verb      string // DefaultVerb
	separator string // DefaultSeparator
	indent    string // DefaultIndent
}

// WithVerb sets the fmt verb used per element (e.g. "%.3f", "%g", "%d").
// Panics when verb does not start with '%'.
func WithVerb(verb string) PrintOption {
	if !strings.HasPrefix(verb, "%") {
		panic(panicVerbInvalid)
	}

	return func(o *printOptions) { o.verb = verb }
}

// WithSeparator sets the string placed between elements of one row.
func WithSeparator(sep string) PrintOption {
	return func(o *printOptions) { o.separator = sep }
}

// WithIndent sets the prefix of every row line ("" for none).
func WithIndent(indent string) PrintOption {
	return func(o *printOptions) { o.indent = indent }
}

// gatherPrintOptions resolves defaults then applies opts in order (last wins).
func gatherPrintOptions(opts ...PrintOption) printOptions {
	o := printOptions{
		verb:      DefaultVerb,
		separator: DefaultSeparator,
		indent:    DefaultIndent,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
