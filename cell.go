package taglist

// Color is a named terminal color.
type Color uint8

const (
	ColorNone    Color = iota // No color set (transparent)
	ColorDefault              // Terminal default
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// NameToColor converts a color name as used in template props to a Color.
var NameToColor = map[string]Color{
	"default": ColorDefault,
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
}

// Style holds text styling attributes for a cell.
type Style struct {
	Color      Color
	Background Color
	Bold       bool
	Dim        bool
	Italic     bool
	Underline  bool
	Inverse    bool
}

// Cell is one terminal column of one row.
type Cell struct {
	Char  rune
	Style Style
}

// continuation marks the cell covered by the right half of a wide rune.
const continuation rune = 0

// EmptyStyle is a Style with no attributes set.
var EmptyStyle = Style{}

// EmptyCell is a blank unstyled cell.
var EmptyCell = Cell{Char: ' '}

// HasBackground reports whether s sets a background color.
func (s Style) HasBackground() bool {
	return s.Background != ColorNone
}

// Merge overlays the non-zero attributes of overlay onto s.
func (s Style) Merge(overlay Style) Style {
	out := s
	if overlay.Color != ColorNone {
		out.Color = overlay.Color
	}
	if overlay.Background != ColorNone {
		out.Background = overlay.Background
	}
	out.Bold = out.Bold || overlay.Bold
	out.Dim = out.Dim || overlay.Dim
	out.Italic = out.Italic || overlay.Italic
	out.Underline = out.Underline || overlay.Underline
	out.Inverse = out.Inverse || overlay.Inverse
	return out
}
