// Package pipeline wires one load → rank → render pass.
//
// Pipeline.Run(path) loads the table, rejects an empty one with
// table.ErrNoRecords, keeps the configured number of top rows, renders the
// YAML document and writes it to stdout or report.output. The document is
// rendered fully before anything is written, so failures never produce
// partial output. Repeated runs on one Pipeline (watch mode) separate their
// stdout documents with "---". When metrics.textfile is set, run statistics are written
// after every pass, failed or not.
//
// Errors are returned unchanged in kind (errors.Is against the table
// sentinels still works); turning them into exit codes is the caller's job.
package pipeline
