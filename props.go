package taglist

import "github.com/germtb/gox"

// BorderStyle specifies the border drawn around a tag.
type BorderStyle string

const (
	BorderNone    BorderStyle = "none"
	BorderSingle  BorderStyle = "single"
	BorderDouble  BorderStyle = "double"
	BorderRounded BorderStyle = "rounded"
	BorderBold    BorderStyle = "bold"
)

// BorderChars holds the characters for drawing a border.
type BorderChars struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// BorderCharSets maps each drawable border style to its characters.
var BorderCharSets = map[BorderStyle]BorderChars{
	BorderSingle:  {'┌', '┐', '└', '┘', '─', '│'},
	BorderDouble:  {'╔', '╗', '╚', '╝', '═', '║'},
	BorderRounded: {'╭', '╮', '╰', '╯', '─', '│'},
	BorderBold:    {'┏', '┓', '┗', '┛', '━', '┃'},
}

// GetBorderStyle normalizes a border prop. true means BorderSingle and
// unknown styles mean BorderNone.
func GetBorderStyle(border any) BorderStyle {
	var s BorderStyle
	switch v := border.(type) {
	case bool:
		if v {
			return BorderSingle
		}
		return BorderNone
	case string:
		s = BorderStyle(v)
	case BorderStyle:
		s = v
	default:
		return BorderNone
	}
	if _, ok := BorderCharSets[s]; !ok {
		return BorderNone
	}
	return s
}

// NormalizeSpacing converts an int, a Spacing or a map with top/right/
// bottom/left keys to a Spacing.
func NormalizeSpacing(value any) Spacing {
	switch v := value.(type) {
	case int:
		return Spacing{Top: v, Right: v, Bottom: v, Left: v}
	case float64:
		i := int(v)
		return Spacing{Top: i, Right: i, Bottom: i, Left: i}
	case Spacing:
		return v
	case map[string]any:
		return Spacing{
			Top:    intOf(v["top"], 0),
			Right:  intOf(v["right"], 0),
			Bottom: intOf(v["bottom"], 0),
			Left:   intOf(v["left"], 0),
		}
	default:
		return Spacing{}
	}
}

func intOf(v any, defaultVal int) int {
	switch i := v.(type) {
	case int:
		return i
	case float64:
		return int(i)
	default:
		return defaultVal
	}
}

// GetStyle extracts a Style from the "style" prop, which may be a Style
// or a map of attribute names.
func GetStyle(props gox.Props) Style {
	switch s := props["style"].(type) {
	case Style:
		return s
	case map[string]any:
		return mapToStyle(s)
	default:
		return EmptyStyle
	}
}

func mapToStyle(m map[string]any) Style {
	style := Style{
		Color:      toColor(m["color"]),
		Background: toColor(m["background"]),
	}
	style.Bold, _ = m["bold"].(bool)
	style.Dim, _ = m["dim"].(bool)
	style.Italic, _ = m["italic"].(bool)
	style.Underline, _ = m["underline"].(bool)
	style.Inverse, _ = m["inverse"].(bool)
	return style
}

func toColor(v any) Color {
	switch c := v.(type) {
	case string:
		return NameToColor[c]
	case Color:
		return c
	default:
		return ColorNone
	}
}
