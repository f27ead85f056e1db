package taglist

import (
	"testing"

	"go.uber.org/zap"
)

// box is a fixed-size view that records the specs it was measured with.
type box struct {
	ViewBase
	w, h int

	measures   int
	lastWidth  MeasureSpec
	lastHeight MeasureSpec
}

func newBox(w, h int) *box {
	return &box{w: w, h: h}
}

func (b *box) Measure(width, height MeasureSpec) {
	b.measures++
	b.lastWidth, b.lastHeight = width, height
	b.SetMeasuredSize(b.w, b.h)
}

// recorder logs every event it receives into a shared slice.
type recorder struct {
	name   string
	events *[]string
}

func (r *recorder) OnAddedTag(tag string) {
	*r.events = append(*r.events, r.name+" +"+tag)
}

func (r *recorder) OnRemovedTag(tag string) {
	*r.events = append(*r.events, r.name+" -"+tag)
}

func spacingAttrs(h, v int) Option {
	return WithAttributes(Attributes{AttrHorizontalSpacing: h, AttrVerticalSpacing: v})
}

func newTestList(t *testing.T, opts ...Option) *TagList {
	t.Helper()
	opts = append([]Option{WithLogger(zap.NewNop().Sugar())}, opts...)
	tl, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return tl
}

func boundsOf(views ...View) []Rect {
	out := make([]Rect, len(views))
	for i, v := range views {
		out[i] = v.Bounds()
	}
	return out
}

func textsOf(tl *TagList) []string {
	var out []string
	for _, c := range tl.Children() {
		if tv, ok := c.(*TagView); ok {
			out = append(out, tv.Text())
		}
	}
	return out
}
