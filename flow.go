package taglist

// Item is one child as the flow engine sees it: its measured size and
// the spacing it leaves after itself.
type Item struct {
	Width   int
	Height  int
	Spacing SpacingParams
	Gone    bool
}

// Placement is where Arrange put an item. Gone items have no rectangle
// and a Row of -1.
type Placement struct {
	Rect Rect
	Row  int
	Gone bool
}

// Arrangement is the result of one flow pass.
type Arrangement struct {
	Placements []Placement
	// Bottom is the cursor row plus the tracked line height after the
	// last item, padding top included.
	Bottom int
	// Rows is the number of rows holding at least one item.
	Rows int
}

// Flow packs items left to right and starts a new row whenever the next
// item would cross the wrap width.
//
// The height of a row is taken from the last item placed on it, vertical
// spacing included. Set MaxRowHeight to use the tallest item instead;
// with the default, rows of mixed heights can overlap.
type Flow struct {
	Padding      Spacing
	MaxRowHeight bool
}

// Arrange places items against wrapWidth. Measurement wraps against the
// inner width and layout against the container width, so both passes
// share this function and make the same wrap decisions for equal widths.
func (f Flow) Arrange(items []Item, wrapWidth int) Arrangement {
	arr := Arrangement{Placements: make([]Placement, len(items))}

	x, y := f.Padding.Left, f.Padding.Top
	lineHeight := 0
	row, onRow := 0, 0

	for i, it := range items {
		if it.Gone {
			arr.Placements[i] = Placement{Row: -1, Gone: true}
			continue
		}

		if x+it.Width > wrapWidth {
			x = f.Padding.Left
			y += lineHeight
			if onRow > 0 {
				row++
				onRow = 0
			}
			if f.MaxRowHeight {
				lineHeight = 0
			}
		}

		cell := it.Height + it.Spacing.VerticalSpacing
		if f.MaxRowHeight {
			lineHeight = max(lineHeight, cell)
		} else {
			lineHeight = cell
		}

		arr.Placements[i] = Placement{
			Rect: Rect{Left: x, Top: y, Right: x + it.Width, Bottom: y + it.Height},
			Row:  row,
		}
		x += it.Width + it.Spacing.HorizontalSpacing
		onRow++
	}

	arr.Bottom = y + lineHeight
	if onRow > 0 {
		arr.Rows = row + 1
	}
	return arr
}

// Measure runs the measurement pass: every visible child is measured
// against the inner width, then the container size is resolved from the
// specs. The reported width is always the width spec size.
func (f Flow) Measure(children []View, width, height MeasureSpec) (Size, Arrangement, error) {
	if width.Mode == ModeUnspecified {
		return Size{}, Arrangement{}, ErrUnspecifiedWidth
	}

	innerW := width.Size - f.Padding.Left - f.Padding.Right
	innerH := height.Size - f.Padding.Top - f.Padding.Bottom

	var childHeight MeasureSpec
	switch height.Mode {
	case ModeAtMost:
		childHeight = AtMost(max(innerH, 0))
	case ModeExactly:
		childHeight = Exactly(max(innerH, 0))
	default:
		childHeight = Unbounded()
	}
	childWidth := AtMost(max(innerW, 0))

	items := make([]Item, len(children))
	for i, c := range children {
		if c.Visibility() == Gone {
			items[i].Gone = true
			continue
		}
		c.Measure(childWidth, childHeight)
		items[i] = itemOf(c)
	}

	arr := f.Arrange(items, innerW)

	h := height.Size
	switch height.Mode {
	case ModeUnspecified:
		h = arr.Bottom
	case ModeAtMost:
		if arr.Bottom < innerH {
			h = arr.Bottom
		}
	}
	return Size{Width: width.Size, Height: h}, arr, nil
}

// Place runs the layout pass over already measured children.
func (f Flow) Place(children []View, containerWidth int) Arrangement {
	return f.Arrange(Items(children), containerWidth)
}

// Items converts measured views to flow items.
func Items(children []View) []Item {
	items := make([]Item, len(children))
	for i, c := range children {
		if c.Visibility() == Gone {
			items[i].Gone = true
			continue
		}
		items[i] = itemOf(c)
	}
	return items
}

func itemOf(v View) Item {
	w, h := v.MeasuredSize()
	return Item{Width: w, Height: h, Spacing: spacingOf(v)}
}
