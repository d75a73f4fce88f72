package schema

import "fmt"

// PrimitiveType is the type name a field resolves to. Unknown names are kept
// verbatim so they can be reported, but codecs skip them.
type PrimitiveType string

const (
	TypeInt     PrimitiveType = "int"
	TypeLong    PrimitiveType = "long"
	TypeFloat   PrimitiveType = "float"
	TypeDouble  PrimitiveType = "double"
	TypeString  PrimitiveType = "string"
	TypeBytes   PrimitiveType = "bytes"
	TypeBoolean PrimitiveType = "boolean"
	TypeArray   PrimitiveType = "array"
	TypeNull    PrimitiveType = "null"
)

// Known reports whether p is one of the types the record codecs handle.
func (p PrimitiveType) Known() bool {
	switch p {
	case TypeInt, TypeLong, TypeFloat, TypeDouble,
		TypeString, TypeBytes, TypeBoolean, TypeArray:
		return true
	}
	return false
}

// FieldDescriptor is the compiled description of one record field.
type FieldDescriptor struct {
	Name     string
	Type     PrimitiveType
	Nullable bool // a ["null", T] union, or a doubly nested type object

	// Union is set when the type is spelled as a JSON array, so values carry
	// a branch tag. Nullability inferred from nesting leaves it unset.
	Union bool

	// Set only when Type is TypeArray.
	IsArray  bool
	ItemType PrimitiveType
}

// Supported reports whether the codecs can read and write this field.
func (f FieldDescriptor) Supported() bool {
	if f.Name == "" || !f.Type.Known() {
		return false
	}
	if f.Type == TypeArray {
		return f.IsArray && (f.ItemType == TypeInt || f.ItemType == TypeLong)
	}
	return true
}

// UnionBranch returns the branch name used to tag a present value of a
// nullable field.
func (f FieldDescriptor) UnionBranch() string {
	return string(f.Type)
}

func (f FieldDescriptor) String() string {
	typ := string(f.Type)
	if f.IsArray {
		typ = fmt.Sprintf("array<%s>", f.ItemType)
	}
	if f.Nullable {
		typ = "null|" + typ
	}
	return f.Name + ":" + typ
}

// FieldTable is the ordered set of fields compiled from one record schema.
// It is read-only once Compile returns and may be shared between readers.
type FieldTable struct {
	name     string
	fields   []FieldDescriptor
	index    map[string]int
	warnings []error
}

// Name returns the record name declared by the schema.
func (t *FieldTable) Name() string {
	return t.name
}

// Len returns the number of fields.
func (t *FieldTable) Len() int {
	return len(t.fields)
}

// Field returns the i'th field in declaration order.
func (t *FieldTable) Field(i int) FieldDescriptor {
	return t.fields[i]
}

// Fields returns a copy of all fields in declaration order.
func (t *FieldTable) Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, len(t.fields))
	copy(out, t.fields)
	return out
}

// Lookup finds a field by name.
func (t *FieldTable) Lookup(name string) (FieldDescriptor, bool) {
	i, ok := t.index[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return t.fields[i], true
}

// Warnings returns one *UnsupportedTypeError per field the codecs will skip.
func (t *FieldTable) Warnings() []error {
	return t.warnings
}
