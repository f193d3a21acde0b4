package report

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v2"

	"github.com/obsidianstack/topthree/internal/table"
)

// Document is the top-level YAML mapping.
type Document struct {
	Records []Entry `yaml:"records"`
}

// Entry is the display form of one row.
type Entry struct {
	Name    string `yaml:"name"`
	Details string `yaml:"details"`
}

// NewEntry maps a row to its display form. Date and summary are copied
// verbatim.
func NewEntry(r table.Row) Entry {
	return Entry{
		Name:    r.FirstName + " " + r.LastName,
		Details: fmt.Sprintf("In division %d from %s performing %s", r.Division, r.Date, r.Summary),
	}
}

// Build maps rows to a Document, preserving order.
func Build(rows table.Table) Document {
	doc := Document{Records: make([]Entry, 0, len(rows))}
	for _, r := range rows {
		doc.Records = append(doc.Records, NewEntry(r))
	}
	return doc
}

// Render returns the YAML text for rows.
func Render(rows table.Table) ([]byte, error) {
	out, err := yaml.Marshal(Build(rows))
	if err != nil {
		return nil, fmt.Errorf("report: marshal yaml: %w", err)
	}
	return out, nil
}

// Write renders rows to w.
func Write(w io.Writer, rows table.Table) error {
	out, err := Render(rows)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}
