// Package jsontree wraps the JSON syntax tree of github.com/creachadair/jtree
// with the small accessor set a schema walk needs.
//
// Unlike decoding into interface{}, the tree keeps object members in the order
// they appear in the source document and distinguishes integers from reals, so
// callers can walk a document the way it was written.
package jsontree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/creachadair/jtree"
	"github.com/creachadair/jtree/ast"
)

// Kind identifies the shape of a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Integer
	Real
	String
	Array
	Object
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Integer:
		return "integer"
	case Real:
		return "real"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

// Value is a node of the tree.
type Value struct {
	node ast.Value
}

// FromAST wraps a syntax tree node. A nil node reads as null.
func FromAST(node ast.Value) *Value {
	return &Value{node: node}
}

// AST returns the underlying syntax tree node.
func (v *Value) AST() ast.Value {
	if v == nil || v.node == nil {
		return ast.Null
	}
	return v.node
}

// Kind returns the kind of v. A nil Value reports Null.
func (v *Value) Kind() Kind {
	switch n := v.AST().(type) {
	case ast.Object:
		return Object
	case ast.Array:
		return Array
	case ast.Bool:
		return Bool
	case ast.Text:
		return String
	case ast.Int:
		return Integer
	case ast.Float:
		return Real
	case ast.Number:
		if _, ok := intValue(n); ok {
			return Integer
		}
		return Real
	}
	return Null
}

// intValue reports a number lexed as an integer that fits in an int64.
// Larger integers are treated as reals.
func intValue(n ast.Number) (int64, bool) {
	if !n.IsInt() {
		return 0, false
	}
	i, err := jtree.ParseInt([]byte(n.JSON()), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Str returns the string payload and whether v is a string.
func (v *Value) Str() (string, bool) {
	t, ok := v.AST().(ast.Text)
	if !ok {
		return "", false
	}
	return t.String(), true
}

// Int returns the integer payload and whether v is an integer.
func (v *Value) Int() (int64, bool) {
	switch n := v.AST().(type) {
	case ast.Int:
		return int64(n), true
	case ast.Float:
		return 0, false
	case ast.Number:
		return intValue(n)
	}
	return 0, false
}

// Float returns the numeric payload of an integer or real.
func (v *Value) Float() (float64, bool) {
	switch n := v.AST().(type) {
	case ast.Int:
		return float64(n), true
	case ast.Float:
		return float64(n), true
	case ast.Number:
		f, err := jtree.ParseFloat([]byte(n.JSON()), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Bool returns the boolean payload and whether v is a boolean.
func (v *Value) Bool() (bool, bool) {
	b, ok := v.AST().(ast.Bool)
	return bool(b), ok
}

// Items returns the elements of an array, or nil.
func (v *Value) Items() []*Value {
	arr, ok := v.AST().(ast.Array)
	if !ok {
		return nil
	}
	items := make([]*Value, len(arr))
	for i, elt := range arr {
		items[i] = FromAST(elt)
	}
	return items
}

// Members returns the members of an object in document order, or nil.
func (v *Value) Members() []Member {
	obj, ok := v.AST().(ast.Object)
	if !ok {
		return nil
	}
	members := make([]Member, len(obj))
	for i, m := range obj {
		members[i] = Member{Key: m.Key.String(), Value: FromAST(m.Value)}
	}
	return members
}

// Get looks up key in an object. When a key repeats, the last one wins.
func (v *Value) Get(key string) (*Value, bool) {
	obj, ok := v.AST().(ast.Object)
	if !ok {
		return nil, false
	}
	match := ast.TextEqual(key)
	for i := len(obj) - 1; i >= 0; i-- {
		if match(obj[i].Key) {
			return FromAST(obj[i].Value), true
		}
	}
	return nil, false
}

// Len returns the number of members or elements of a container, 0 otherwise.
func (v *Value) Len() int {
	switch n := v.AST().(type) {
	case ast.Array:
		return n.Len()
	case ast.Object:
		return n.Len()
	}
	return 0
}

// Constructors for building trees by hand.

func NewNull() *Value { return FromAST(ast.Null) }
func NewBool(b bool) *Value { return FromAST(ast.Bool(b)) }
func NewInt(n int64) *Value { return FromAST(ast.Int(n)) }
func NewReal(f float64) *Value { return FromAST(ast.Float(f)) }
func NewString(s string) *Value { return FromAST(ast.String(s)) }

func NewArray(items ...*Value) *Value {
	arr := make(ast.Array, len(items))
	for i, item := range items {
		arr[i] = item.AST()
	}
	return FromAST(arr)
}

func NewObject(members ...Member) *Value {
	obj := make(ast.Object, len(members))
	for i, m := range members {
		obj[i] = &ast.Member{Key: ast.String(m.Key), Value: m.Value.AST()}
	}
	return FromAST(obj)
}

// Parse parses a single JSON document. Trailing non-whitespace is an error.
func Parse(data []byte) (*Value, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader parses the single JSON document read from r.
func ParseReader(r io.Reader) (*Value, error) {
	node, err := ast.ParseSingle(r)
	if err != nil {
		return nil, fmt.Errorf("jsontree: %w", err)
	}
	return FromAST(node), nil
}
