package taglist

import "github.com/mattn/go-runewidth"

// TagView is the child view a TagList inflates for each tag: one line of
// text inside optional padding and border.
type TagView struct {
	ViewBase
	text    string
	padding Spacing
	border  BorderStyle
	style   Style
}

// NewTagView creates a bare tag view with no padding or border.
func NewTagView(text string) *TagView {
	return &TagView{text: text, border: BorderNone}
}

func (v *TagView) Text() string { return v.text }

func (v *TagView) SetText(s string) { v.text = s }

func (v *TagView) Padding() Spacing { return v.padding }

func (v *TagView) Border() BorderStyle { return v.border }

func (v *TagView) Style() Style { return v.style }

func (v *TagView) borderSize() int {
	if v.border == BorderNone {
		return 0
	}
	return 1
}

// NaturalSize is the size the view wants: the display width of its text,
// one line high, plus padding and border.
func (v *TagView) NaturalSize() (width, height int) {
	b := v.borderSize()
	width = runewidth.StringWidth(v.text) + v.padding.Left + v.padding.Right + 2*b
	height = 1 + v.padding.Top + v.padding.Bottom + 2*b
	return width, height
}

// Measure resolves the natural size against the specs.
func (v *TagView) Measure(width, height MeasureSpec) {
	w, h := v.NaturalSize()
	v.SetMeasuredSize(width.Resolve(w), height.Resolve(h))
}

// Render draws the view at its bounds shifted by (dx, dy). Text that no
// longer fits is truncated with an ellipsis.
func (v *TagView) Render(buf *CellBuffer, dx, dy int) {
	r := v.Bounds()
	x, y, width, height := r.Left+dx, r.Top+dy, r.Width(), r.Height()
	if width <= 0 || height <= 0 {
		return
	}

	if v.style.HasBackground() {
		bg := Style{Background: v.style.Background}
		for row := y; row < y+height; row++ {
			for col := x; col < x+width; col++ {
				buf.Set(col, row, Cell{Char: ' ', Style: bg})
			}
		}
	}

	b := v.borderSize()
	if b > 0 {
		drawBorder(buf, x, y, width, height, BorderCharSets[v.border], Style{Color: v.style.Color})
	}

	innerX := x + b + v.padding.Left
	innerY := y + b + v.padding.Top
	innerW := width - 2*b - v.padding.Left - v.padding.Right
	if innerW <= 0 || innerY >= y+height-b {
		return
	}
	text := runewidth.Truncate(v.text, innerW, "…")
	buf.WriteString(innerX, innerY, innerX+innerW, text, v.style)
}

func drawBorder(buf *CellBuffer, x, y, width, height int, chars BorderChars, style Style) {
	right, bottom := x+width-1, y+height-1
	for col := x + 1; col < right; col++ {
		buf.SetCharMerge(col, y, chars.Horizontal, style)
		buf.SetCharMerge(col, bottom, chars.Horizontal, style)
	}
	for row := y + 1; row < bottom; row++ {
		buf.SetCharMerge(x, row, chars.Vertical, style)
		buf.SetCharMerge(right, row, chars.Vertical, style)
	}
	buf.SetCharMerge(x, y, chars.TopLeft, style)
	buf.SetCharMerge(right, y, chars.TopRight, style)
	buf.SetCharMerge(x, bottom, chars.BottomLeft, style)
	buf.SetCharMerge(right, bottom, chars.BottomRight, style)
}
