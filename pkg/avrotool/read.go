package avrotool

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ssargent/avrotool/pkg/codec"
	"github.com/ssargent/avrotool/pkg/config"
	"github.com/ssargent/avrotool/pkg/container"
	"github.com/ssargent/avrotool/pkg/metrics"
)

// ReadSummary describes a finished read pass
type ReadSummary struct {
	Schema  string
	RunID   string
	Records int
}

// Read prints the schema of the container at path followed by one line per
// record. With schemaOnly set the records are not visited.
func (r *Runner) Read(path string, schemaOnly bool) (*ReadSummary, error) {
	start := time.Now()
	defer func() {
		r.metrics.ObserveRun(metrics.DirectionRead, time.Since(start))
	}()

	reader, err := container.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	summary := &ReadSummary{
		Schema: reader.Schema(),
		RunID:  reader.RunID(),
	}
	r.logger.Debug("container opened", "path", path, "codec", reader.CompressionName(), "run_id", summary.RunID)

	fmt.Fprintln(r.stdout, "*** Schema:")
	fmt.Fprintln(r.stdout, summary.Schema)
	if summary.RunID != "" {
		fmt.Fprintf(r.stdout, "*** Run ID: %s\n", summary.RunID)
	}

	table, err := r.compileSchema(summary.Schema)
	if err != nil {
		return nil, err
	}

	if schemaOnly {
		return summary, nil
	}

	fmt.Fprintln(r.stdout)
	fmt.Fprintln(r.stdout, "*** Records:")

	out := r.cfg.Output
	decoder := codec.NewDecoder(table, out.Separator)
	skippedPerRecord := len(table.Warnings())

	for out.Count == 0 || uint64(summary.Records) < out.Count {
		rec, err := reader.ReadNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			r.metrics.RecordRecord(metrics.DirectionRead, false)
			return summary, err
		}

		line, err := r.render(reader, decoder, rec)
		if err != nil {
			r.metrics.RecordRecord(metrics.DirectionRead, false)
			return summary, err
		}
		fmt.Fprintln(r.stdout, line)

		summary.Records++
		r.metrics.RecordRecord(metrics.DirectionRead, true)
		r.metrics.RecordSkippedFields(metrics.DirectionRead, skippedPerRecord)
	}

	fmt.Fprintln(r.stdout)
	r.logger.Debug("read complete", "path", path, "records", summary.Records)
	return summary, nil
}

func (r *Runner) render(reader *container.Reader, decoder *codec.Decoder, rec codec.Record) (string, error) {
	if r.cfg.Output.Format == config.FormatJSON {
		text, err := reader.Textual(rec)
		if err != nil {
			return "", err
		}
		return string(text), nil
	}
	return decoder.DecodeLine(rec), nil
}
