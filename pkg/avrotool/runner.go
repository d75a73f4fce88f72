// Package avrotool runs the read and write passes of the avrotool CLI. A pass
// compiles the container schema once and then streams records through the
// codec one at a time.
package avrotool

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ssargent/avrotool/pkg/config"
	"github.com/ssargent/avrotool/pkg/jsontree"
	"github.com/ssargent/avrotool/pkg/metrics"
	"github.com/ssargent/avrotool/pkg/schema"
)

// Options configures a Runner. Zero values fall back to defaults.
type Options struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Stdout  io.Writer
	Stderr  io.Writer
}

// Runner executes read and write passes for one CLI invocation
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	stdout  io.Writer
	stderr  io.Writer
}

// NewRunner creates a runner from opts
func NewRunner(opts Options) *Runner {
	r := &Runner{
		cfg:     opts.Config,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
	}
	if r.cfg == nil {
		r.cfg = config.DefaultConfig()
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.metrics == nil {
		r.metrics = metrics.NewMetrics()
	}
	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}
	return r
}

// Config returns the configuration the runner was built with
func (r *Runner) Config() *config.Config {
	return r.cfg
}

// Metrics returns the runner's collectors
func (r *Runner) Metrics() *metrics.Metrics {
	return r.metrics
}

// FlushMetrics writes the metrics textfile when one is configured
func (r *Runner) FlushMetrics() error {
	if r.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := r.metrics.WriteTextfile(r.cfg.Metrics.Textfile); err != nil {
		return err
	}
	r.logger.Debug("metrics written", "path", r.cfg.Metrics.Textfile)
	return nil
}

// compileSchema parses schemaJSON into a field table. With debug logging
// enabled the parsed tree is dumped to stderr first.
func (r *Runner) compileSchema(schemaJSON string) (*schema.FieldTable, error) {
	root, err := jsontree.Parse([]byte(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if r.logger.Enabled(context.Background(), slog.LevelDebug) {
		fmt.Fprintln(r.stderr, "*** Schema parsed:")
		if err := jsontree.Dump(r.stderr, root); err != nil {
			return nil, fmt.Errorf("failed to dump schema tree: %w", err)
		}
	}

	table, err := schema.NewCompiler(r.logger).Compile(root)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	for _, w := range table.Warnings() {
		r.logger.Warn("field skipped", "record", table.Name(), "error", w)
	}
	return table, nil
}
