// Package schema compiles JSON record schemas into field tables.
//
// The accepted dialect is a subset of Avro schema syntax:
//
//	{"name": "T", "fields": [
//	    {"name": "a", "type": "int"},
//	    {"name": "b", "type": ["null", "string"]},
//	    {"name": "c", "type": {"type": "array", "items": "long"}}
//	]}
//
// Enums, maps, fixed, nested records and logical types are not resolved.
// Fields using them compile to unsupported descriptors that the record codecs
// skip, and a warning is attached to the table.
package schema

import (
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/ssargent/avrotool/pkg/jsontree"
)

// MaxNameLength bounds record and field names. Longer names are truncated.
const MaxNameLength = 62

// Compiler turns a parsed schema document into a FieldTable.
type Compiler struct {
	logger *slog.Logger
}

// NewCompiler creates a compiler. A nil logger discards output.
func NewCompiler(logger *slog.Logger) *Compiler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Compiler{logger: logger}
}

// Compile builds a FieldTable with the default compiler.
func Compile(root *jsontree.Value) (*FieldTable, error) {
	return NewCompiler(nil).Compile(root)
}

// CompileJSON parses data and compiles it with the default compiler.
func CompileJSON(data []byte) (*FieldTable, error) {
	root, err := jsontree.Parse(data)
	if err != nil {
		return nil, err
	}
	return Compile(root)
}

// Compile walks root, which must be a record object, and returns its fields
// in declaration order. It fails with *SchemaError when root is not an object,
// when "fields" is not an array, or when two fields share a name. Entries that
// are not objects or have no name are kept as unsupported fields so later
// fields stay in position.
func (c *Compiler) Compile(root *jsontree.Value) (*FieldTable, error) {
	if root.Kind() != jsontree.Object {
		return nil, schemaErrorf("document is a JSON %s, not an object", root.Kind())
	}

	table := &FieldTable{index: make(map[string]int)}
	if v, ok := root.Get("name"); ok {
		name, _ := v.Str()
		table.name = truncateName(name)
	}

	fields, ok := root.Get("fields")
	if !ok || fields.Kind() != jsontree.Array {
		return nil, schemaErrorf("\"fields\" is not an array")
	}

	for i, entry := range fields.Items() {
		fd := FieldDescriptor{}
		if entry.Kind() == jsontree.Object {
			if v, ok := entry.Get("name"); ok {
				name, _ := v.Str()
				fd.Name = truncateName(name)
			}
			if typ, ok := entry.Get("type"); ok {
				resolveType(&fd, typ)
			}
		}

		if fd.Name != "" {
			if _, dup := table.index[fd.Name]; dup {
				return nil, schemaErrorf("fields[%d]: duplicate field name %q", i, fd.Name)
			}
			table.index[fd.Name] = len(table.fields)
		}

		if !fd.Supported() {
			w := &UnsupportedTypeError{Field: fd.Name, Reason: unsupportedReason(fd, entry)}
			if w.Field == "" {
				w.Field = fmt.Sprintf("fields[%d]", i)
			}
			table.warnings = append(table.warnings, w)
			c.logger.Debug("field will be skipped", "field", w.Field, "reason", w.Reason)
		}

		table.fields = append(table.fields, fd)
	}

	c.logger.Debug("compiled record schema", "record", table.name, "fields", len(table.fields))
	return table, nil
}

// resolveType fills fd from a type expression: a type name, a union array or
// a type object.
func resolveType(fd *FieldDescriptor, v *jsontree.Value) {
	switch v.Kind() {
	case jsontree.String:
		s, _ := v.Str()
		fd.Type = PrimitiveType(s)
	case jsontree.Array:
		// With more than one non-null branch the last one wins.
		fd.Union = true
		for _, branch := range v.Items() {
			if s, ok := branch.Str(); ok && PrimitiveType(s) == TypeNull {
				fd.Nullable = true
				continue
			}
			fd.Type, fd.IsArray, fd.ItemType = "", false, ""
			resolveType(fd, branch)
		}
	case jsontree.Object:
		resolveObject(fd, v, false)
	}
}

// resolveObject handles {"type": ...}. A type object nested directly inside
// another marks the field nullable; only one level of nesting is followed.
func resolveObject(fd *FieldDescriptor, obj *jsontree.Value, nested bool) {
	typ, ok := obj.Get("type")
	if !ok {
		return
	}

	switch typ.Kind() {
	case jsontree.String:
		s, _ := typ.Str()
		if PrimitiveType(s) != TypeArray {
			fd.Type = PrimitiveType(s)
			return
		}
		fd.Type = TypeArray
		fd.IsArray = true
		if items, ok := obj.Get("items"); ok {
			fd.ItemType = resolveItems(items)
		}
	case jsontree.Object:
		if nested {
			return
		}
		fd.Nullable = true
		resolveObject(fd, typ, true)
	case jsontree.Array:
		resolveType(fd, typ)
	}
}

func resolveItems(v *jsontree.Value) PrimitiveType {
	switch v.Kind() {
	case jsontree.String:
		s, _ := v.Str()
		return PrimitiveType(s)
	case jsontree.Object:
		typ, _ := v.Get("type")
		s, _ := typ.Str()
		return PrimitiveType(s)
	}
	return ""
}

func unsupportedReason(fd FieldDescriptor, entry *jsontree.Value) string {
	switch {
	case entry.Kind() != jsontree.Object:
		return "entry is a JSON " + entry.Kind().String() + ", not an object"
	case fd.Name == "":
		return "field has no name"
	case fd.Type == "":
		return "type expression did not resolve"
	case fd.Type == TypeArray && !fd.IsArray:
		return "array type without items"
	case fd.Type == TypeArray:
		if fd.ItemType == "" {
			return "array items did not resolve"
		}
		return "array items must be int or long, got " + string(fd.ItemType)
	default:
		return "unknown type " + string(fd.Type)
	}
}

func truncateName(name string) string {
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	runes := []rune(name)
	return string(runes[:MaxNameLength])
}
