package taglist

import (
	"strings"
	"testing"

	"github.com/germtb/gox"
)

func TestSprint(t *testing.T) {
	tl := newTestList(t)
	if err := tl.SetTags([]string{"go", "rust"}); err != nil {
		t.Fatalf("SetTags() error = %v", err)
	}

	got, err := Sprint(tl, PrintOptions{Width: 20})
	if err != nil {
		t.Fatalf("Sprint() error = %v", err)
	}

	want := "╭────╮ ╭──────╮     \n" +
		"│ go │ │ rust │     \n" +
		"╰────╯ ╰──────╯     \n"
	if got != want {
		t.Errorf("Sprint() =\n%s\nwant:\n%s", got, want)
	}
}

func TestSprintWraps(t *testing.T) {
	tl := newTestList(t, spacingAttrs(1, 0))
	if err := tl.SetTags([]string{"alpha", "beta", "gamma"}); err != nil {
		t.Fatalf("SetTags() error = %v", err)
	}

	got, err := Sprint(tl, PrintOptions{Width: 18})
	if err != nil {
		t.Fatalf("Sprint() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("Sprint() has %d lines, want 6:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[1], "alpha") || !strings.Contains(lines[1], "beta") {
		t.Errorf("first row = %q, want alpha and beta", lines[1])
	}
	if !strings.Contains(lines[4], "gamma") {
		t.Errorf("second row = %q, want gamma", lines[4])
	}
}

func TestSprintStyles(t *testing.T) {
	RegisterTemplate("test-red", func(gox.Props) gox.VNode {
		return gox.VNode{Type: "tag", Props: gox.Props{"style": map[string]any{"color": "red"}}}
	})
	tl := newTestList(t, WithTemplate("test-red"))
	if err := tl.AddTag("hot"); err != nil {
		t.Fatalf("AddTag() error = %v", err)
	}

	got, err := Sprint(tl, PrintOptions{Width: 10})
	if err != nil {
		t.Fatalf("Sprint() error = %v", err)
	}
	if !strings.Contains(got, "\x1b[31mhot") {
		t.Errorf("Sprint() = %q, want red escape before text", got)
	}
	if !strings.Contains(got, resetStr) {
		t.Errorf("Sprint() = %q, want a reset after styled text", got)
	}
}

func TestSprintEmpty(t *testing.T) {
	tl := newTestList(t)
	got, err := Sprint(tl, PrintOptions{Width: 10})
	if err != nil {
		t.Fatalf("Sprint() error = %v", err)
	}
	if got != "" {
		t.Errorf("Sprint() = %q, want empty", got)
	}
}
