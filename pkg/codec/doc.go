// Package codec converts Avro records to printable lines and delimited text
// lines to Avro records, driven by a compiled schema.FieldTable.
//
// The package works on the native record form produced and consumed by the
// object container: a map from field name to value, where nullable fields
// hold either nil (the null branch) or a single-entry map keyed by the
// branch type name.
//
// # Decoding
//
// DecodeLine renders one record as a single line, visiting fields in table
// order and joining the rendered values with the separator (" |\t" by
// default):
//
//	42 |	hello |	true |	3.500000
//
// Rendering rules per field type:
//   - int, long: decimal. An int holding math.MinInt32 prints as null.
//   - float, double: fixed notation with six decimals.
//   - string, bytes: the raw text.
//   - boolean: true or false.
//   - array of int or long: the sum of all elements, accumulated as an
//     unsigned 32 or 64 bit integer.
//   - nullable fields in the null branch: null.
//
// Fields missing from the record, fields holding a value of an unexpected Go
// type and fields with an unsupported type are left out of the line.
//
// # Encoding
//
// EncodeLine splits a line on commas and assigns token i to field i. Extra
// tokens are ignored and fields without a token are not written. There is no
// quoting, so a comma always ends a value.
//
// Token conversion per field type:
//   - string, bytes: the raw token.
//   - int, long: leading decimal integer, 0 when there is none.
//   - float, double: leading decimal number, 0 when there is none.
//   - boolean: true when the leading integer is nonzero.
//   - array of int: the token is read as an unsigned integer n and written as
//     the two elements n-math.MaxInt32 and math.MaxInt32, so that decoding
//     sums back to n. Arrays of long use math.MaxInt64 the same way.
//   - nullable fields: the token "null" selects the null branch, anything
//     else is converted as above and wrapped in the value branch.
//
// # Usage
//
//	table, err := schema.CompileJSON(schemaText)
//	if err != nil {
//	    return err
//	}
//
//	rec, _ := codec.EncodeLine("42,hello", table)
//	fmt.Println(codec.DecodeLine(rec, table))
//
// # Thread Safety
//
// Decoder and Encoder hold no mutable state. A FieldTable is read-only after
// compilation, so both may be shared between goroutines.
package codec
