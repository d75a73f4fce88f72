package container

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/linkedin/goavro/v2"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/avrotool/pkg/codec"
)

// Block compression codecs accepted by WriterOptions.Compression.
const (
	CompressionNull    = goavro.CompressionNullLabel
	CompressionDeflate = goavro.CompressionDeflateLabel
	CompressionSnappy  = goavro.CompressionSnappyLabel
)

// ValidCompression reports whether name is a supported block codec.
func ValidCompression(name string) bool {
	switch name {
	case CompressionNull, CompressionDeflate, CompressionSnappy:
		return true
	}
	return false
}

// WriterOptions configures a Writer.
type WriterOptions struct {
	Compression string // defaults to CompressionNull
	StampRunID  bool   // store a fresh KSUID under RunIDKey
}

// Writer appends records to an object container file.
type Writer struct {
	ocf    *goavro.OCFWriter
	closer io.Closer
	runID  string
}

// Create replaces the file at path with an empty container for schema.
func Create(path string, schema *goavro.Codec, opts WriterOptions) (*Writer, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to remove existing %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("unable to create %s: %w", path, err)
	}

	w, err := NewWriter(f, schema, opts)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("there was an error creating %s: %w", path, err)
	}
	w.closer = f
	return w, nil
}

// NewWriter writes a container header for schema to out.
func NewWriter(out io.Writer, schema *goavro.Codec, opts WriterOptions) (*Writer, error) {
	if schema == nil {
		return nil, errors.New("container schema is nil")
	}

	compression := opts.Compression
	if compression == "" {
		compression = CompressionNull
	}
	if !ValidCompression(compression) {
		return nil, fmt.Errorf("unsupported compression codec %q", compression)
	}

	w := &Writer{}
	var meta map[string][]byte
	if opts.StampRunID {
		w.runID = ksuid.New().String()
		meta = map[string][]byte{RunIDKey: []byte(w.runID)}
	}

	var err error
	w.ocf, err = goavro.NewOCFWriter(goavro.OCFConfig{
		W:               out,
		Codec:           schema,
		CompressionName: compression,
		MetaData:        meta,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to write container header: %w", err)
	}
	return w, nil
}

// RunID returns the identifier stamped into the header, or "".
func (w *Writer) RunID() string {
	return w.runID
}

// AppendRecord encodes rec and writes it as one block. A record that does
// not match the schema is rejected and nothing is written.
func (w *Writer) AppendRecord(rec codec.Record) error {
	if err := w.ocf.Append([]interface{}{rec}); err != nil {
		return fmt.Errorf("unable to write record to file: %w", err)
	}
	return nil
}

// Close closes the underlying file, if Create opened it.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
