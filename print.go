package taglist

import (
	"io"
	"os"
	"strings"
)

// PrintOptions configures Fprint.
type PrintOptions struct {
	Width int // 0 = auto-detect terminal width (default 80)
}

// Print renders tl to stdout with ANSI styling.
func Print(tl *TagList) error {
	return Fprint(os.Stdout, tl, PrintOptions{})
}

// Sprint renders tl to a string with ANSI styling.
func Sprint(tl *TagList, opts PrintOptions) (string, error) {
	var sb strings.Builder
	if err := Fprint(&sb, tl, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Fprint measures tl at the given width with an unbounded height, lays
// it out at the origin and writes the rendered rows to w.
func Fprint(w io.Writer, tl *TagList, opts PrintOptions) error {
	width := opts.Width
	if width == 0 {
		if tw, err := TerminalWidth(int(os.Stdout.Fd())); err == nil {
			width = tw
		}
	}
	if width == 0 {
		width = 80
	}

	if err := tl.MeasureChecked(Exactly(width), Unbounded()); err != nil {
		return err
	}
	mw, mh := tl.MeasuredSize()
	tl.Layout(0, 0, mw, mh)

	buf := NewCellBuffer(mw, mh)
	tl.Render(buf)

	lastRow := buf.LastUsedRow()
	if lastRow < 0 {
		return nil
	}
	if _, err := io.WriteString(w, bufferToAnsiLines(buf, lastRow)+"\n"); err != nil {
		return err
	}
	return nil
}
