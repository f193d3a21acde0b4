// Package table loads the input file into an ordered, typed Table.
//
// Parse(r, opts) reads a delimited header + records stream with encoding/csv,
// resolves the six required columns (firstname, lastname, division, points,
// date, summary) by name, and coerces division and points to integers.
// Extra columns are ignored and column order does not matter.
//
// Loading is all-or-nothing: a missing column, a ragged record or a single
// non-integer division/points value fails the whole table.
//
// Error kinds are exposed as sentinels for errors.Is:
//   - ErrFileNotFound   - the path does not resolve
//   - ErrMalformedInput - no header, missing columns, unparsable record
//   - ErrTypeCoercion   - non-integer numeric cell (see CoercionError)
//   - ErrNoRecords      - valid header but zero data rows (checked by callers)
package table
