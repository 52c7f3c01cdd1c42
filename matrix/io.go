// SPDX-License-Identifier: MIT

// Package matrix - textual input/output.
//
// Output is for human inspection only: there is no guarantee that Fscan can
// rebuild a matrix of unknown shape from Fprint output.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen    = "[\n"
	_fmtClose   = "]\n"
	_fmtRowTerm = "\n"
)

const (
	opFprint = "Fprint"
	opFscan  = "Fscan"
)

// Fprint writes m to w:
//
//	[
//		1	2	3
//		4	5	6
//	]
//
// Rows are opened by the indent and elements separated by the separator, with
// no separator after the last element of a row.
// Errors: ErrNilMatrix, or the first write error from w.
// Complexity: O(r*c).
func Fprint[T Number](w io.Writer, m *Dense[T], opts ...PrintOption) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFprint, err)
	}
	o := gatherPrintOptions(opts...)
	bw := bufio.NewWriter(w)

	bw.WriteString(_fmtOpen)
	for r := m.FirstRow(); !r.IsEnd(); r.Advance() {
		bw.WriteString(o.indent)
		first := true
		for e := r.Elements(); !e.IsEnd(); e.Advance() {
			if !first {
				bw.WriteString(o.separator)
			}
			fmt.Fprintf(bw, o.verb, e.Value())
			first = false
		}
		bw.WriteString(_fmtRowTerm)
	}
	bw.WriteString(_fmtClose)

	if err := bw.Flush(); err != nil { // bufio keeps the first write error
		return matrixErrorf(opFprint, err)
	}

	return nil
}

// String renders m with the default layout; intended for logs and debugging.
// A nil or zero-value m renders as "<nil>".
func (m *Dense[T]) String() string {
	var b strings.Builder
	if err := Fprint(&b, m); err != nil { // strings.Builder never fails; only ErrNilMatrix remains
		return "<nil>"
	}

	return b.String()
}

// Fscan reads Rows()*Cols() whitespace-separated values from r into m in
// logical row-major order. m must be pre-sized; dimensions are not inferred.
// MAIN DESCRIPTION:
//   - All-or-nothing: values are buffered and written only after the last one
//     parsed, so a short or malformed input leaves m untouched.
//
// Notes:
//   - r is read without extra buffering, so input after the last value is
//     left unread for the caller.
//
// Errors:
//   - ErrNilMatrix; a *Error wrapping the scan error (io.EOF,
//     io.ErrUnexpectedEOF, or a fmt parse error) with the failing element index.
func Fscan[T Number](r io.Reader, m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFscan, err)
	}
	buf := make([]T, m.Rows()*m.Cols())
	for idx := range buf {
		if _, err := fmt.Fscan(r, &buf[idx]); err != nil {
			return matrixErrorf(opFscan, fmt.Errorf("element %d: %w", idx, err))
		}
	}

	idx := 0
	for it := m.Begin(); !it.IsEnd(); it.Advance() {
		_ = it.Set(buf[idx]) // it is never End() inside the loop
		idx++
	}

	return nil
}
