package container

import (
	"fmt"
	"io"
	"os"

	"github.com/linkedin/goavro/v2"

	"github.com/ssargent/avrotool/pkg/codec"
)

// RunIDKey is the metadata key under which Writer stores its run identifier.
const RunIDKey = "avrotool.run_id"

// Reader yields the records of an object container file in order.
type Reader struct {
	ocf    *goavro.OCFReader
	closer io.Closer
}

// Open opens the container file at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open avro file %s: %w", path, err)
	}

	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to open avro file %s: %w", path, err)
	}
	r.closer = f
	return r, nil
}

// NewReader reads the container header from r.
func NewReader(r io.Reader) (*Reader, error) {
	ocf, err := goavro.NewOCFReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid object container header: %w", err)
	}
	return &Reader{ocf: ocf}, nil
}

// Codec returns the writer schema codec from the header.
func (r *Reader) Codec() *goavro.Codec {
	return r.ocf.Codec()
}

// Schema returns the writer schema as JSON text.
func (r *Reader) Schema() string {
	return SchemaToJSON(r.ocf.Codec())
}

// CompressionName returns the block codec name from the header.
func (r *Reader) CompressionName() string {
	return r.ocf.CompressionName()
}

// RunID returns the run identifier stored by Writer, or "".
func (r *Reader) RunID() string {
	return string(r.ocf.MetaData()[RunIDKey])
}

// ReadNext returns the next record, or io.EOF after the last one.
func (r *Reader) ReadNext() (codec.Record, error) {
	if !r.ocf.Scan() {
		if err := r.ocf.Err(); err != nil {
			return nil, fmt.Errorf("unable to read block: %w", err)
		}
		return nil, io.EOF
	}

	datum, err := r.ocf.Read()
	if err != nil {
		return nil, fmt.Errorf("unable to read record: %w", err)
	}

	rec, ok := datum.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("container holds %T values, not records", datum)
	}
	return rec, nil
}

// Textual renders rec as Avro JSON text using the writer schema.
func (r *Reader) Textual(rec codec.Record) ([]byte, error) {
	buf, err := r.ocf.Codec().TextualFromNative(nil, rec)
	if err != nil {
		return nil, fmt.Errorf("unable to render record as JSON: %w", err)
	}
	return buf, nil
}

// Close closes the underlying file, if Open created it.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
