// Package metrics writes run statistics in the Prometheus text exposition
// format, for collection through node_exporter's textfile collector.
//
// Families (all gauges):
//   - topthree_rows_loaded                - rows read from the input
//   - topthree_rows_selected              - rows kept after ranking
//   - topthree_last_run_success           - 1 on success, 0 on failure
//   - topthree_last_run_timestamp_seconds - run start, unix seconds
//   - topthree_run_duration_seconds       - wall time of the run
//
// WriteFile renders to a temp file beside the destination and renames it
// into place so the collector never reads a partial file.
package metrics
