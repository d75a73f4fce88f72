package avrotool

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ssargent/avrotool/pkg/codec"
	"github.com/ssargent/avrotool/pkg/container"
	"github.com/ssargent/avrotool/pkg/metrics"
)

// WriteSummary describes a finished write pass
type WriteSummary struct {
	Path          string
	RunID         string
	Written       int
	Failed        int
	Ignored       int
	SkippedFields int
}

// Write encodes every non-blank line of the data file at dataPath against the
// schema at schemaPath and appends the records to a new container at outPath.
// An existing file at outPath is replaced. Records the container rejects are
// logged as *AppendError and counted; they do not stop the pass.
func (r *Runner) Write(outPath, schemaPath, dataPath string) (*WriteSummary, error) {
	start := time.Now()
	defer func() {
		r.metrics.ObserveRun(metrics.DirectionWrite, time.Since(start))
	}()

	schemaJSON, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	avroSchema, err := container.JSONToSchema(string(schemaJSON))
	if err != nil {
		return nil, err
	}

	table, err := r.compileSchema(string(schemaJSON))
	if err != nil {
		return nil, err
	}

	data, err := os.Open(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer data.Close()

	writer, err := container.Create(outPath, avroSchema, container.WriterOptions{
		Compression: r.cfg.Writer.Codec,
		StampRunID:  r.cfg.Writer.RunMetadata,
	})
	if err != nil {
		return nil, err
	}

	summary := &WriteSummary{Path: outPath, RunID: writer.RunID()}
	if err := r.appendLines(writer, codec.NewEncoder(table), data, summary); err != nil {
		writer.Close()
		return summary, err
	}

	if err := writer.Close(); err != nil {
		return summary, fmt.Errorf("failed to close %s: %w", outPath, err)
	}

	r.logger.Info("write complete",
		"path", outPath,
		"written", summary.Written,
		"failed", summary.Failed,
		"ignored", summary.Ignored,
	)
	fmt.Fprintln(r.stdout)
	fmt.Fprintln(r.stdout, "Success!")
	return summary, nil
}

func (r *Runner) appendLines(writer *container.Writer, encoder *codec.Encoder, data io.Reader, summary *WriteSummary) error {
	br := bufio.NewReader(data)
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read data line %d: %w", lineNo, err)
		}
		if line == "" && err != nil {
			return nil
		}

		r.appendLine(writer, encoder, lineNo, line, summary)

		if err != nil {
			return nil
		}
	}
}

func (r *Runner) appendLine(writer *container.Writer, encoder *codec.Encoder, lineNo int, line string, summary *WriteSummary) {
	if strings.TrimRight(line, "\r\n") == "" {
		summary.Ignored++
		r.metrics.RecordIgnoredLine()
		return
	}

	rec, skipped := encoder.EncodeLine(line)
	if skipped > 0 {
		summary.SkippedFields += skipped
		r.metrics.RecordSkippedFields(metrics.DirectionWrite, skipped)
		r.logger.Debug("fields skipped", "line", lineNo, "count", skipped)
	}

	if err := writer.AppendRecord(rec); err != nil {
		appendErr := &AppendError{Line: lineNo, Err: err}
		summary.Failed++
		r.metrics.RecordRecord(metrics.DirectionWrite, false)
		r.logger.Warn("record skipped", "error", appendErr)
		return
	}

	summary.Written++
	r.metrics.RecordRecord(metrics.DirectionWrite, true)
}
