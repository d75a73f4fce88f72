//go:build bench
// +build bench

package codec

import (
	"strings"
	"testing"
)

const benchSchema = `{"name": "B", "fields": [
	{"name": "id", "type": "long"},
	{"name": "name", "type": ["null", "string"]},
	{"name": "score", "type": "float"},
	{"name": "active", "type": "boolean"},
	{"name": "payload", "type": "bytes"},
	{"name": "hits", "type": {"type": "array", "items": "int"}}
]}`

func BenchmarkEncoder_EncodeLine(b *testing.B) {
	table := mustCompile(b, benchSchema)
	enc := NewEncoder(table)

	benchmarks := []struct {
		name string
		line string
	}{
		{name: "small", line: "1,john,1.5,1,x,3"},
		{name: "null", line: "2,null,0,0,,0"},
		{name: "large payload", line: "3,jane,2.5,1," + strings.Repeat("v", 10000) + ",9"},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				enc.EncodeLine(bm.line)
			}
		})
	}
}

func BenchmarkDecoder_DecodeLine(b *testing.B) {
	table := mustCompile(b, benchSchema)
	dec := NewDecoder(table, "")

	benchmarks := []struct {
		name string
		line string
	}{
		{name: "small", line: "1,john,1.5,1,x,3"},
		{name: "null", line: "2,null,0,0,,0"},
		{name: "large payload", line: "3,jane,2.5,1," + strings.Repeat("v", 10000) + ",9"},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			// Pre-encode the record
			rec, _ := EncodeLine(bm.line, table)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = dec.DecodeLine(rec)
			}
		})
	}
}
