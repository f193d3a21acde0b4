// Package rank orders a table and keeps its leading entries.
//
// Top(t, n) is a pure function: it copies t, stable-sorts the copy by
// division descending then points descending, and truncates to n rows.
// Rows with equal (division, points) keep their input order.
//
// TopThree(t) is Top(t, DefaultLimit).
package rank
