package taglist

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DebugLayout prints the placement of every child to stdout.
func DebugLayout(tl *TagList) {
	FprintLayout(os.Stdout, tl)
}

// SprintLayout returns the placement of every child as a string.
func SprintLayout(tl *TagList) string {
	var sb strings.Builder
	FprintLayout(&sb, tl)
	return sb.String()
}

// FprintLayout writes the container bounds followed by one line per
// child with its bounds, row and spacing. Gone children are marked.
func FprintLayout(w io.Writer, tl *TagList) {
	b := tl.Bounds()
	fmt.Fprintf(w, "taglist x=%d y=%d w=%d h=%d rows=%d\n", b.Left, b.Top, b.Width(), b.Height(), tl.Rows())

	for i, c := range tl.children {
		name := fmt.Sprintf("%T", c)
		if tv, ok := c.(*TagView); ok {
			name = fmt.Sprintf("tag %q", tv.Text())
		}
		if c.Visibility() == Gone {
			fmt.Fprintf(w, "  [%d] %s gone\n", i, name)
			continue
		}

		r := c.Bounds()
		line := fmt.Sprintf("  [%d] %s x=%d y=%d w=%d h=%d", i, name, r.Left, r.Top, r.Width(), r.Height())
		if i < len(tl.arrangement.Placements) {
			line += fmt.Sprintf(" row=%d", tl.arrangement.Placements[i].Row)
		}
		if sp := spacingOf(c); sp != (SpacingParams{}) {
			line += fmt.Sprintf(" spacing=%d,%d", sp.HorizontalSpacing, sp.VerticalSpacing)
		}
		fmt.Fprintln(w, line)
	}
}
