package taglist

import "strings"

const (
	resetStr  = "\x1b[0m"
	boldStr   = "\x1b[1m"
	dimStr    = "\x1b[2m"
	italicStr = "\x1b[3m"
	underStr  = "\x1b[4m"
	invStr    = "\x1b[7m"
)

var fgCodes = [...]string{
	ColorNone:    "",
	ColorDefault: "\x1b[39m",
	ColorBlack:   "\x1b[30m",
	ColorRed:     "\x1b[31m",
	ColorGreen:   "\x1b[32m",
	ColorYellow:  "\x1b[33m",
	ColorBlue:    "\x1b[34m",
	ColorMagenta: "\x1b[35m",
	ColorCyan:    "\x1b[36m",
	ColorWhite:   "\x1b[37m",
}

var bgCodes = [...]string{
	ColorNone:    "",
	ColorDefault: "\x1b[49m",
	ColorBlack:   "\x1b[40m",
	ColorRed:     "\x1b[41m",
	ColorGreen:   "\x1b[42m",
	ColorYellow:  "\x1b[43m",
	ColorBlue:    "\x1b[44m",
	ColorMagenta: "\x1b[45m",
	ColorCyan:    "\x1b[46m",
	ColorWhite:   "\x1b[47m",
}

// StyleToAnsi writes the escape codes selecting style to sb.
func StyleToAnsi(style Style, sb *strings.Builder) {
	if style.Bold {
		sb.WriteString(boldStr)
	}
	if style.Dim {
		sb.WriteString(dimStr)
	}
	if style.Italic {
		sb.WriteString(italicStr)
	}
	if style.Underline {
		sb.WriteString(underStr)
	}
	if style.Inverse {
		sb.WriteString(invStr)
	}
	if int(style.Color) < len(fgCodes) {
		sb.WriteString(fgCodes[style.Color])
	}
	if int(style.Background) < len(bgCodes) {
		sb.WriteString(bgCodes[style.Background])
	}
}

// bufferToAnsiLines renders rows [0, lastRow] of buf as newline separated
// lines, emitting escape codes only where the style changes.
func bufferToAnsiLines(buf *CellBuffer, lastRow int) string {
	var sb strings.Builder
	sb.Grow((lastRow + 1) * (buf.Width() + 8))

	for y := 0; y <= lastRow; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		current := EmptyStyle
		for x := 0; x < buf.Width(); x++ {
			c := buf.Get(x, y)
			if c.Char == continuation {
				continue
			}
			if c.Style != current {
				sb.WriteString(resetStr)
				StyleToAnsi(c.Style, &sb)
				current = c.Style
			}
			sb.WriteRune(c.Char)
		}
		if current != EmptyStyle {
			sb.WriteString(resetStr)
		}
	}
	return sb.String()
}
