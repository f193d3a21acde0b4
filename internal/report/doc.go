// Package report renders ranked rows as a YAML document.
//
// Build(rows) maps each row to an Entry{Name, Details}; Render/Write serialise
// the Document with go.yaml.in/yaml/v2, whose default block style puts the
// sequence dash flush with its parent key:
//
//	records:
//	- name: Alice Brown
//	  details: In division 3 from 2024-11-11 performing Task C
//
// Keys are emitted in struct field order (records; name, details), never
// sorted. An empty row set renders as "records: []".
package report
