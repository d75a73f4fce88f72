package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ssargent/avrotool/pkg/schema"
)

// Decoder renders records as text lines.
type Decoder struct {
	table     *schema.FieldTable
	separator string
}

// NewDecoder creates a decoder for table. An empty separator selects
// DefaultSeparator.
func NewDecoder(table *schema.FieldTable, separator string) *Decoder {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Decoder{table: table, separator: separator}
}

// DecodeLine renders rec with the default separator.
func DecodeLine(rec Record, table *schema.FieldTable) string {
	return NewDecoder(table, "").DecodeLine(rec)
}

// DecodeLine renders the fields of rec in table order. The result carries no
// line terminator.
func (d *Decoder) DecodeLine(rec Record) string {
	parts := make([]string, 0, d.table.Len())
	for i := 0; i < d.table.Len(); i++ {
		fd := d.table.Field(i)
		datum, ok := rec[fd.Name]
		if !ok {
			continue
		}
		if text, ok := decodeField(fd, datum); ok {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, d.separator)
}

func decodeField(fd schema.FieldDescriptor, datum interface{}) (string, bool) {
	if !fd.Supported() {
		return "", false
	}

	v := datum
	if fd.Nullable || fd.Union {
		var present bool
		if v, present = unwrapUnion(datum); !present {
			return NullText, true
		}
	}

	switch fd.Type {
	case schema.TypeInt:
		n, ok := toInt64(v)
		if !ok {
			return "", false
		}
		if int32(n) == math.MinInt32 {
			return NullText, true
		}
		return strconv.FormatInt(int64(int32(n)), 10), true
	case schema.TypeLong:
		n, ok := toInt64(v)
		if !ok {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	case schema.TypeFloat, schema.TypeDouble:
		f, ok := toFloat64(v)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("%f", f), true
	case schema.TypeString, schema.TypeBytes:
		switch s := v.(type) {
		case string:
			return s, true
		case []byte:
			return string(s), true
		}
		return "", false
	case schema.TypeBoolean:
		b, ok := v.(bool)
		if !ok {
			return "", false
		}
		return strconv.FormatBool(b), true
	case schema.TypeArray:
		return sumArray(fd.ItemType, v)
	}
	return "", false
}

// sumArray adds up the elements of an array datum with unsigned wraparound.
func sumArray(itemType schema.PrimitiveType, v interface{}) (string, bool) {
	items, ok := v.([]interface{})
	if !ok {
		return "", false
	}

	switch itemType {
	case schema.TypeInt:
		var sum uint32
		for _, item := range items {
			n, _ := toInt64(item)
			sum += uint32(int32(n))
		}
		return strconv.FormatUint(uint64(sum), 10), true
	case schema.TypeLong:
		var sum uint64
		for _, item := range items {
			n, _ := toInt64(item)
			sum += uint64(n)
		}
		return strconv.FormatUint(sum, 10), true
	}
	return "", false
}
