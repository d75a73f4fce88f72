package codec_test

import (
	"fmt"
	"log"

	"github.com/ssargent/avrotool/pkg/codec"
	"github.com/ssargent/avrotool/pkg/schema"
)

// ExampleEncodeLine demonstrates encoding a text line into a record
func ExampleEncodeLine() {
	table, err := schema.CompileJSON([]byte(`{
		"name": "T",
		"fields": [
			{"name": "a", "type": "int"},
			{"name": "b", "type": ["null", "string"]}
		]
	}`))
	if err != nil {
		log.Fatal(err)
	}

	rec, _ := codec.EncodeLine("42,hello", table)
	fmt.Printf("a: %v\n", rec["a"])
	fmt.Printf("b: %v\n", rec["b"])

	rec, _ = codec.EncodeLine("7,null", table)
	fmt.Printf("b is null: %t\n", rec["b"] == nil)

	// Output:
	// a: 42
	// b: map[string:hello]
	// b is null: true
}

// ExampleDecoder demonstrates rendering records as text
func ExampleDecoder() {
	table, err := schema.CompileJSON([]byte(`{
		"name": "T",
		"fields": [
			{"name": "id", "type": "long"},
			{"name": "tag", "type": ["null", "string"]},
			{"name": "hits", "type": {"type": "array", "items": "int"}}
		]
	}`))
	if err != nil {
		log.Fatal(err)
	}

	dec := codec.NewDecoder(table, " | ")
	fmt.Println(dec.DecodeLine(codec.Record{
		"id":   int64(1),
		"tag":  map[string]interface{}{"string": "blue"},
		"hits": []interface{}{int32(2), int32(3), int32(5)},
	}))
	fmt.Println(dec.DecodeLine(codec.Record{
		"id":   int64(2),
		"tag":  nil,
		"hits": []interface{}{},
	}))

	// Output:
	// 1 | blue | 10
	// 2 | null | 0
}

// ExampleDecodeLine demonstrates the round trip of the two-element array encoding
func ExampleDecodeLine() {
	table, err := schema.CompileJSON([]byte(`{
		"name": "T",
		"fields": [{"name": "n", "type": {"type": "array", "items": "int"}}]
	}`))
	if err != nil {
		log.Fatal(err)
	}

	rec, _ := codec.EncodeLine("7", table)
	fmt.Println(rec["n"])
	fmt.Println(codec.DecodeLine(rec, table))

	// Output:
	// [-2147483640 2147483647]
	// 7
}
