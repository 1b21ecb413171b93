package boolexpr

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// dumpConfig disables method rendering so node internals (identity, flags,
// reference counts) stay visible in dumps instead of the String form.
var dumpConfig = spew.ConfigState{
	Indent:         "  ",
	DisableMethods: true,
	MaxDepth:       64,
}

// Dump writes a deep diagnostic dump of the node graph rooted at x to w.
func Dump(w io.Writer, x *BoolExpr) {
	dumpConfig.Fdump(w, x)
}

// Sdump returns the deep diagnostic dump of x as a string.
func Sdump(x *BoolExpr) string {
	return dumpConfig.Sdump(x)
}
