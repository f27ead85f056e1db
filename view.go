package taglist

import "fmt"

// Visibility controls whether a view is drawn and whether it takes space.
type Visibility uint8

const (
	Visible Visibility = iota
	// Invisible views are measured and placed but not drawn.
	Invisible
	// Gone views are neither measured nor placed and take no space.
	Gone
)

// Spacing represents padding on all sides, in cells.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Size is a measured width and height.
type Size struct {
	Width  int
	Height int
}

// Rect is a placed rectangle. Right and Bottom are exclusive.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns the horizontal extent of r.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.Right <= r.Left || r.Bottom <= r.Top }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// View is a node the host measures and places. Measurement stores the
// result so that the following layout pass can read it back.
type View interface {
	// Measure computes and stores the view's size under the given specs.
	Measure(width, height MeasureSpec)
	// MeasuredSize returns the size stored by the last Measure call.
	MeasuredSize() (width, height int)
	// Layout assigns the view its rectangle relative to its parent.
	Layout(left, top, right, bottom int)
	// Bounds returns the rectangle assigned by the last Layout call.
	Bounds() Rect
	Visibility() Visibility
	LayoutParams() LayoutParams
	SetLayoutParams(p LayoutParams)
}

// ViewBase carries the bookkeeping shared by every View. Embed it and
// implement Measure.
type ViewBase struct {
	measured   Size
	bounds     Rect
	visibility Visibility
	params     LayoutParams
}

// SetMeasuredSize records the result of a measurement.
func (v *ViewBase) SetMeasuredSize(width, height int) {
	v.measured = Size{Width: width, Height: height}
}

func (v *ViewBase) MeasuredSize() (int, int) {
	return v.measured.Width, v.measured.Height
}

func (v *ViewBase) Layout(left, top, right, bottom int) {
	v.bounds = Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func (v *ViewBase) Bounds() Rect { return v.bounds }

func (v *ViewBase) Visibility() Visibility { return v.visibility }

func (v *ViewBase) SetVisibility(vis Visibility) { v.visibility = vis }

func (v *ViewBase) LayoutParams() LayoutParams { return v.params }

func (v *ViewBase) SetLayoutParams(p LayoutParams) { v.params = p }
