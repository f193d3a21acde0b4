package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/obsidianstack/topthree/internal/config"
	"github.com/obsidianstack/topthree/internal/logging"
	"github.com/obsidianstack/topthree/internal/metrics"
	"github.com/obsidianstack/topthree/internal/rank"
	"github.com/obsidianstack/topthree/internal/report"
	"github.com/obsidianstack/topthree/internal/table"
)

// Pipeline runs report passes with a fixed configuration.
type Pipeline struct {
	cfg    *config.Config
	stdout io.Writer
	now    func() time.Time // injectable for deterministic tests

	// emitted is set once a document has gone to stdout; later documents
	// are preceded by a "---" separator so the stream stays valid YAML.
	emitted bool
}

// New returns a Pipeline writing documents to stdout unless cfg names an
// output file.
func New(cfg *config.Config, stdout io.Writer) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		stdout: stdout,
		now:    time.Now,
	}
}

// Run performs one pass over the input at path.
func (p *Pipeline) Run(path string) error {
	logger := logging.ForRun().With("input", path)
	stats := metrics.Run{Started: p.now()}

	err := p.run(path, &stats)

	stats.Success = err == nil
	stats.Duration = p.now().Sub(stats.Started)
	if err != nil {
		logger.Debug("run failed", "err", err, "duration", stats.Duration)
	} else {
		logger.Info("run complete",
			"rows_loaded", stats.RowsLoaded,
			"rows_selected", stats.RowsSelected,
			"duration", stats.Duration,
		)
	}

	if p.cfg.Metrics.Textfile != "" {
		if merr := metrics.WriteFile(p.cfg.Metrics.Textfile, stats); merr != nil {
			logger.Error("failed to write metrics textfile",
				"path", p.cfg.Metrics.Textfile, "err", merr)
		}
	}
	return err
}

func (p *Pipeline) run(path string, stats *metrics.Run) error {
	tbl, err := table.Load(path, p.cfg.Input.TableOptions())
	if err != nil {
		return err
	}
	stats.RowsLoaded = len(tbl)
	if len(tbl) == 0 {
		return fmt.Errorf("%w in %s", table.ErrNoRecords, path)
	}

	top := rank.Top(tbl, p.cfg.Report.Limit)
	stats.RowsSelected = len(top)

	var buf bytes.Buffer
	if err := report.Write(&buf, top); err != nil {
		return err
	}
	return p.emit(buf.Bytes())
}

// emit writes the rendered document to the configured destination.
func (p *Pipeline) emit(doc []byte) error {
	if p.cfg.Report.Output == "" {
		if p.emitted {
			doc = append([]byte("---\n"), doc...)
		}
		if _, err := p.stdout.Write(doc); err != nil {
			return fmt.Errorf("pipeline: write stdout: %w", err)
		}
		p.emitted = true
		return nil
	}
	if err := os.WriteFile(p.cfg.Report.Output, doc, 0o644); err != nil {
		return fmt.Errorf("pipeline: write %q: %w", p.cfg.Report.Output, err)
	}
	return nil
}
