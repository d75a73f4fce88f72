package schema

import "fmt"

// SchemaError reports a schema document whose structure cannot describe a
// record. No FieldTable is produced.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "invalid record schema: " + e.Reason
}

func schemaErrorf(format string, args ...interface{}) *SchemaError {
	return &SchemaError{Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedTypeError describes a field whose type expression did not
// resolve to a primitive or array type the codecs understand. It is a
// warning: the field stays in the table and is skipped on decode and encode.
type UnsupportedTypeError struct {
	Field  string
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("field %q: unsupported type: %s", e.Field, e.Reason)
}
