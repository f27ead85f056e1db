// Package taglist provides a flow-layout container for short text tags.
//
// A TagList holds an ordered list of tags and one TagView child per tag.
// Children are packed left to right and wrap onto a new row when the next
// one would cross the available width. Listeners hear about every tag
// view attached to or detached from the container.
//
// A TagList is a View and follows the host protocol: Measure (or
// OnMeasure) with a bounded width spec, then Layout (or OnLayout). All
// methods must be called from the goroutine that owns the view tree.
package taglist

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TagList is the flow-layout tag container.
type TagList struct {
	ViewBase
	*Group

	hSpacing int
	vSpacing int

	tags      []string
	listeners []TagListener

	attrs        Attributes
	template     string
	maxRowHeight bool
	replaceOnSet bool

	arrangement Arrangement
	log         *zap.SugaredLogger
}

// New creates an empty TagList. Spacing defaults are read from the
// horizontal_spacing and vertical_spacing attributes, falling back to 1.
func New(opts ...Option) (*TagList, error) {
	tl := &TagList{template: DefaultTemplate}
	tl.Group = NewGroup(tl, tl, tl)
	for _, opt := range opts {
		opt(tl)
	}
	if tl.log == nil {
		tl.log = Log.Named("taglist")
	}

	var err error
	if tl.hSpacing, err = DimensionPixelSize(tl.attrs, AttrHorizontalSpacing, defaultSpacing); err != nil {
		return nil, err
	}
	if tl.vSpacing, err = DimensionPixelSize(tl.attrs, AttrVerticalSpacing, defaultSpacing); err != nil {
		return nil, err
	}
	if _, err := Inflate(tl.template); err != nil {
		return nil, err
	}
	return tl, nil
}

// AddTag appends tag and attaches a view for it. Listeners hear about it
// before AddTag returns.
func (tl *TagList) AddTag(tag string) error {
	if tag == "" {
		return ErrEmptyTag
	}
	v, err := tl.inflate(tag)
	if err != nil {
		return err
	}
	tl.tags = append(tl.tags, tag)
	tl.log.Debugw("add tag", "tag", tag, "count", len(tl.tags))
	tl.AddView(v)
	return nil
}

// SetTags replaces the tag list with tags and attaches one view per tag.
// Views attached earlier stay attached unless the list was created with
// WithReplaceOnSetTags; detach them first to replace the whole set.
func (tl *TagList) SetTags(tags []string) error {
	views := make([]*TagView, len(tags))
	for i, tag := range tags {
		if tag == "" {
			return errors.Wrapf(ErrEmptyTag, "tag %d", i)
		}
		v, err := tl.inflate(tag)
		if err != nil {
			return err
		}
		views[i] = v
	}

	if tl.replaceOnSet {
		tl.RemoveAllViews()
	}
	tl.tags = append(tl.tags[:0], tags...)
	tl.log.Debugw("set tags", "count", len(tags), "children", tl.ChildCount()+len(views))
	for _, v := range views {
		tl.AddView(v)
	}
	return nil
}

// Tags returns a copy of the tag list.
func (tl *TagList) Tags() []string {
	out := make([]string, len(tl.tags))
	copy(out, tl.tags)
	return out
}

func (tl *TagList) inflate(tag string) (*TagView, error) {
	v, err := Inflate(tl.template)
	if err != nil {
		return nil, err
	}
	v.SetText(tag)
	return v, nil
}

// AddTagListener registers l. Registering a listener twice has no effect.
func (tl *TagList) AddTagListener(l TagListener) {
	for _, existing := range tl.listeners {
		if existing == l {
			return
		}
	}
	tl.listeners = append(tl.listeners, l)
	tl.log.Debugw("add listener", "listeners", len(tl.listeners))
}

// RemoveTagListener deregisters l. Unknown listeners are ignored.
func (tl *TagList) RemoveTagListener(l TagListener) {
	for i, existing := range tl.listeners {
		if existing == l {
			tl.listeners = append(tl.listeners[:i], tl.listeners[i+1:]...)
			return
		}
	}
}

// ChildAdded tells listeners about an attached TagView. Other views are
// ignored.
func (tl *TagList) ChildAdded(parent, child View) {
	tv, ok := child.(*TagView)
	if !ok {
		return
	}
	text := tv.Text()
	for _, l := range tl.snapshotListeners() {
		l.OnAddedTag(text)
	}
}

// ChildRemoved tells listeners about a detached TagView. Other views are
// ignored.
func (tl *TagList) ChildRemoved(parent, child View) {
	tv, ok := child.(*TagView)
	if !ok {
		return
	}
	text := tv.Text()
	for _, l := range tl.snapshotListeners() {
		l.OnRemovedTag(text)
	}
}

func (tl *TagList) snapshotListeners() []TagListener {
	out := make([]TagListener, len(tl.listeners))
	copy(out, tl.listeners)
	return out
}

// GenerateDefaultLayoutParams returns fresh params carrying the
// container's spacing defaults.
func (tl *TagList) GenerateDefaultLayoutParams() LayoutParams {
	return &SpacingParams{HorizontalSpacing: tl.hSpacing, VerticalSpacing: tl.vSpacing}
}

// CheckLayoutParams reports whether p carries tag spacing.
func (tl *TagList) CheckLayoutParams(p LayoutParams) bool {
	sp, ok := p.(*SpacingParams)
	return ok && sp != nil
}

func (tl *TagList) flow() Flow {
	return Flow{Padding: tl.Padding(), MaxRowHeight: tl.maxRowHeight}
}

// Measure measures the children and stores the container size. The
// width spec must be bounded.
func (tl *TagList) Measure(width, height MeasureSpec) {
	tl.OnMeasure(width, height)
}

// OnMeasure is the measurement pass. It panics with ErrUnspecifiedWidth
// when the width spec is unbounded; use MeasureChecked to get an error.
func (tl *TagList) OnMeasure(width, height MeasureSpec) {
	if err := tl.MeasureChecked(width, height); err != nil {
		panic(err)
	}
}

// MeasureChecked is OnMeasure returning precondition failures as errors.
func (tl *TagList) MeasureChecked(width, height MeasureSpec) error {
	size, arr, err := tl.flow().Measure(tl.children, width, height)
	if err != nil {
		return errors.Wrapf(err, "measure %v x %v", width, height)
	}
	tl.SetMeasuredSize(size.Width, size.Height)
	tl.log.Debugw("measure",
		"width", width.String(), "height", height.String(),
		"measured", size, "rows", arr.Rows)
	return nil
}

// Layout assigns the container its rectangle and places the children.
func (tl *TagList) Layout(left, top, right, bottom int) {
	changed := tl.Bounds() != Rect{Left: left, Top: top, Right: right, Bottom: bottom}
	tl.ViewBase.Layout(left, top, right, bottom)
	tl.OnLayout(changed, left, top, right, bottom)
}

// OnLayout is the layout pass. Children are placed relative to the
// container, wrapping against its full width.
func (tl *TagList) OnLayout(changed bool, left, top, right, bottom int) {
	arr := tl.flow().Place(tl.children, right-left)
	for i, c := range tl.children {
		p := arr.Placements[i]
		if p.Gone {
			continue
		}
		c.Layout(p.Rect.Left, p.Rect.Top, p.Rect.Right, p.Rect.Bottom)
	}
	tl.arrangement = arr
	tl.log.Debugw("layout", "changed", changed, "children", len(tl.children), "rows", arr.Rows)
}

// Rows returns the number of rows used by the last layout pass.
func (tl *TagList) Rows() int { return tl.arrangement.Rows }

// Renderer is a child view that can draw itself into a CellBuffer.
type Renderer interface {
	Render(buf *CellBuffer, dx, dy int)
}

// Render draws every visible child that can render itself, offset by the
// container's own position.
func (tl *TagList) Render(buf *CellBuffer) {
	origin := tl.Bounds()
	for _, c := range tl.children {
		if c.Visibility() != Visible {
			continue
		}
		if r, ok := c.(Renderer); ok {
			r.Render(buf, origin.Left, origin.Top)
		}
	}
}
