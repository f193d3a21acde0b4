package rank

import (
	"cmp"
	"slices"

	"github.com/obsidianstack/topthree/internal/table"
)

// DefaultLimit is the number of rows kept by TopThree.
const DefaultLimit = 3

// TopThree returns the three highest-ranked rows of t.
func TopThree(t table.Table) table.Table {
	return Top(t, DefaultLimit)
}

// Top returns at most n rows of t in ranking order. t is not modified.
// When t has fewer than n rows every row is returned; n <= 0 yields an
// empty table.
func Top(t table.Table, n int) table.Table {
	if n <= 0 {
		return table.Table{}
	}

	sorted := slices.Clone(t)
	slices.SortStableFunc(sorted, Compare)

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return slices.Clip(sorted)
}

// Compare orders a before b when it ranks higher: larger division first,
// then larger points. It returns 0 for rows that tie on both keys.
func Compare(a, b table.Row) int {
	if c := cmp.Compare(b.Division, a.Division); c != 0 {
		return c
	}
	return cmp.Compare(b.Points, a.Points)
}
