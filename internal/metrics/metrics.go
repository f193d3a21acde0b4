package metrics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

const namespace = "topthree"

// Run holds the statistics of one pipeline pass.
type Run struct {
	RowsLoaded   int
	RowsSelected int
	Success      bool
	Started      time.Time
	Duration     time.Duration
}

// Families converts r to metric families in a fixed order.
func Families(r Run) []*dto.MetricFamily {
	success := 0.0
	if r.Success {
		success = 1
	}
	return []*dto.MetricFamily{
		gauge("rows_loaded", "Rows read from the input file.", float64(r.RowsLoaded)),
		gauge("rows_selected", "Rows kept after ranking.", float64(r.RowsSelected)),
		gauge("last_run_success", "Whether the last run succeeded (1) or failed (0).", success),
		gauge("last_run_timestamp_seconds", "Start time of the last run in unix seconds.",
			float64(r.Started.UnixNano())/float64(time.Second)),
		gauge("run_duration_seconds", "Wall time of the last run.", r.Duration.Seconds()),
	}
}

// Write encodes r to w in the text exposition format.
func Write(w io.Writer, r Run) error {
	for _, mf := range Families(r) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteFile atomically replaces path with the exposition of r.
func WriteFile(path string, r Run) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".topthree-*.prom")
	if err != nil {
		return fmt.Errorf("metrics: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if err := Write(tmp, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("metrics: close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("metrics: chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("metrics: rename into place: %w", err)
	}
	return nil
}

// gauge builds a single-sample, unlabelled gauge family.
func gauge(name, help string, v float64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(namespace + "_" + name),
		Help: proto.String(help),
		Type: dto.MetricType_GAUGE.Enum(),
		Metric: []*dto.Metric{
			{Gauge: &dto.Gauge{Value: proto.Float64(v)}},
		},
	}
}
