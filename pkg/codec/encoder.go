package codec

import (
	"math"
	"strings"

	"github.com/ssargent/avrotool/pkg/schema"
)

// Encoder turns delimited text lines into records.
type Encoder struct {
	table *schema.FieldTable
}

// NewEncoder creates an encoder for table.
func NewEncoder(table *schema.FieldTable) *Encoder {
	return &Encoder{table: table}
}

// EncodeLine encodes line with a throwaway encoder.
func EncodeLine(line string, table *schema.FieldTable) (Record, int) {
	return NewEncoder(table).EncodeLine(line)
}

// EncodeLine maps the comma separated tokens of line onto the table fields by
// position. It returns the record and the number of fields left unset, either
// because their type is unsupported or because the line ran out of tokens.
// A trailing line terminator is ignored.
func (e *Encoder) EncodeLine(line string) (Record, int) {
	line = strings.TrimRight(line, "\r\n")
	tokens := strings.Split(line, Delimiter)

	rec := make(Record, e.table.Len())
	skipped := 0
	for i := 0; i < e.table.Len(); i++ {
		if i >= len(tokens) {
			skipped += e.table.Len() - i
			break
		}

		fd := e.table.Field(i)
		datum, ok := encodeField(fd, tokens[i])
		if !ok {
			skipped++
			continue
		}
		rec[fd.Name] = datum
	}
	return rec, skipped
}

func encodeField(fd schema.FieldDescriptor, token string) (interface{}, bool) {
	if !fd.Supported() {
		return nil, false
	}

	if fd.Nullable && fd.Union && token == NullText {
		return nil, true
	}

	var v interface{}
	switch fd.Type {
	case schema.TypeString:
		v = token
	case schema.TypeBytes:
		v = []byte(token)
	case schema.TypeInt:
		v = int32(parseInteger(token))
	case schema.TypeLong:
		v = parseInteger(token)
	case schema.TypeFloat:
		v = float32(parseFloat(token))
	case schema.TypeDouble:
		v = parseFloat(token)
	case schema.TypeBoolean:
		v = parseInteger(token) != 0
	case schema.TypeArray:
		v = encodeArray(fd.ItemType, parseUnsigned(token))
	default:
		return nil, false
	}

	if fd.Union {
		return wrapUnion(fd.UnionBranch(), v), true
	}
	return v, true
}

// encodeArray writes n as two elements whose unsigned sum is n.
func encodeArray(itemType schema.PrimitiveType, n uint64) []interface{} {
	if itemType == schema.TypeInt {
		return []interface{}{
			int32(uint32(n) - math.MaxInt32),
			int32(math.MaxInt32),
		}
	}
	return []interface{}{
		int64(n - math.MaxInt64),
		int64(math.MaxInt64),
	}
}
