package jsontree

import (
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/jtree/ast"
)

// Dump writes an indented, human-readable description of v to w, one node
// per line:
//
//	JSON Object of 2 pairs:
//	  JSON Key: "name"
//	  JSON String: "T"
//	  ...
func Dump(w io.Writer, v *Value) error {
	d := &dumper{w: w}
	d.node(v.AST(), 0)
	return d.err
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) printf(indent int, format string, args ...interface{}) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, strings.Repeat(" ", indent)+format+"\n", args...)
}

func (d *dumper) node(n ast.Value, indent int) {
	switch t := n.(type) {
	case ast.Object:
		d.printf(indent, "JSON Object of %d pair%s:", t.Len(), plural(t.Len()))
		for _, m := range t {
			d.printf(indent+2, "JSON Key: %q", m.Key.String())
			d.node(m.Value, indent+2)
		}
	case ast.Array:
		d.printf(indent, "JSON Array of %d element%s:", t.Len(), plural(t.Len()))
		for _, elt := range t {
			d.node(elt, indent+2)
		}
	case ast.Text:
		d.printf(indent, "JSON String: %q", t.String())
	case ast.Bool:
		if t {
			d.printf(indent, "JSON True")
		} else {
			d.printf(indent, "JSON False")
		}
	case ast.Number:
		v := FromAST(t)
		if i, ok := v.Int(); ok {
			d.printf(indent, "JSON Integer: \"%d\"", i)
		} else {
			f, _ := v.Float()
			d.printf(indent, "JSON Real: %f", f)
		}
	default:
		d.printf(indent, "JSON Null")
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
