package taglist

import (
	"strings"
	"testing"
)

func TestSprintLayout(t *testing.T) {
	tl := newTestList(t)
	if err := tl.SetTags([]string{"go", "rust"}); err != nil {
		t.Fatalf("SetTags() error = %v", err)
	}
	gone := newBox(4, 4)
	gone.SetVisibility(Gone)
	tl.AddView(gone)

	tl.Measure(Exactly(10), Unbounded())
	w, h := tl.MeasuredSize()
	tl.Layout(0, 0, w, h)

	got := SprintLayout(tl)
	for _, want := range []string{
		"taglist x=0 y=0 w=10 h=8 rows=2",
		`[0] tag "go" x=0 y=0 w=6 h=3 row=0 spacing=1,1`,
		`[1] tag "rust" x=0 y=4 w=8 h=3 row=1 spacing=1,1`,
		"[2] *taglist.box gone",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SprintLayout() missing %q in:\n%s", want, got)
		}
	}
}
