package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Column names that must be present in the header row.
const (
	ColFirstName = "firstname"
	ColLastName  = "lastname"
	ColDivision  = "division"
	ColPoints    = "points"
	ColDate      = "date"
	ColSummary   = "summary"
)

// requiredColumns is the header contract, in reporting order.
var requiredColumns = []string{ColFirstName, ColLastName, ColDivision, ColPoints, ColDate, ColSummary}

// Row is one parsed record.
type Row struct {
	FirstName string
	LastName  string
	Division  int
	Points    int

	// Date is carried verbatim; it is never parsed as a calendar value.
	Date    string
	Summary string
}

// Table is an ordered sequence of rows in file order.
type Table []Row

// Options controls how the delimited input is tokenised.
type Options struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune

	// Comment, if non-zero, marks lines to skip when it is the first character.
	Comment rune
}

// DefaultOptions returns comma-separated parsing with no comment character.
func DefaultOptions() Options {
	return Options{Delimiter: ','}
}

// Load opens the file at path and parses it with Parse.
func Load(path string, opts Options) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse reads a header row followed by data records from r.
// The whole table is rejected on the first structural or coercion error.
func Parse(r io.Reader, opts Options) (Table, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.Comment = opts.Comment

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedInput)
	}
	if err != nil {
		return nil, readError(err)
	}

	idx, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var t Table
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(err)
		}
		line, _ := reader.FieldPos(0)

		row, err := idx.row(rec, line)
		if err != nil {
			return nil, err
		}
		t = append(t, row)
	}

	return t, nil
}

// headerIndex maps each required column to its position in a record.
type headerIndex map[string]int

// indexHeader resolves the required columns by name.
// The first occurrence wins when a name is repeated.
func indexHeader(header []string) (headerIndex, error) {
	idx := make(headerIndex, len(requiredColumns))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns: %s",
			ErrMalformedInput, strings.Join(missing, ", "))
	}
	return idx, nil
}

// row builds a Row from rec. line is used for error reporting only.
func (idx headerIndex) row(rec []string, line int) (Row, error) {
	division, err := toInt(rec[idx[ColDivision]], ColDivision, line)
	if err != nil {
		return Row{}, err
	}
	points, err := toInt(rec[idx[ColPoints]], ColPoints, line)
	if err != nil {
		return Row{}, err
	}
	return Row{
		FirstName: rec[idx[ColFirstName]],
		LastName:  rec[idx[ColLastName]],
		Division:  division,
		Points:    points,
		Date:      rec[idx[ColDate]],
		Summary:   rec[idx[ColSummary]],
	}, nil
}

// toInt converts a numeric cell. Only base-10 integers are accepted;
// fractional or empty values are rejected rather than rounded.
func toInt(raw, column string, line int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &CoercionError{Line: line, Column: column, Value: raw}
	}
	return n, nil
}

// readError classifies a reader failure. csv parse errors are malformed
// input; anything else (I/O) is passed through with its message.
func readError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return fmt.Errorf("read: %w", err)
}
