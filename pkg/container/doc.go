// Package container reads and writes Avro object container files.
//
// It is a thin layer over github.com/linkedin/goavro/v2 that speaks in
// codec.Record values: Reader.ReadNext yields one record at a time and
// Writer.AppendRecord appends one. Schema text travels through SchemaToJSON
// and JSONToSchema.
package container
