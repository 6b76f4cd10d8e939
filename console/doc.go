/*
Package console prints binary search trees to a terminal, level by level.

Every level of a tree is printed on a line of its own, centered to the width
of the terminal. Levels are colored from a palette, which makes it easier to
spot the depth of an element in larger trees. Widths of element labels are
measured in fixed-width positions (“en”s) following Unicode UAX#11, so
labels containing wide East Asian characters center correctly.

Colors are suppressed automatically if output is not a terminal
(see package github.com/fatih/color).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}
