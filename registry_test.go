package taglist

import (
	"testing"

	"github.com/germtb/gox"
	"github.com/pkg/errors"
)

func TestInflateDefaultTemplate(t *testing.T) {
	v, err := Inflate(DefaultTemplate)
	if err != nil {
		t.Fatalf("Inflate() error = %v", err)
	}
	if v.Border() != BorderRounded {
		t.Errorf("Border() = %q, want %q", v.Border(), BorderRounded)
	}
	if got, want := v.Padding(), (Spacing{Left: 1, Right: 1}); got != want {
		t.Errorf("Padding() = %+v, want %+v", got, want)
	}
	if v.Text() != "" {
		t.Errorf("Text() = %q, want empty", v.Text())
	}
}

func TestInflateThroughComponents(t *testing.T) {
	pill := func(props gox.Props) gox.VNode {
		return gox.VNode{
			Type: "tag",
			Props: gox.Props{
				"padding": map[string]any{"left": 2, "right": 2},
				"border":  "single",
				"style":   map[string]any{"color": "red", "bold": true},
			},
		}
	}
	RegisterTemplate("test-pill", func(gox.Props) gox.VNode {
		return gox.VNode{Type: gox.Component(pill)}
	})

	if !HasTemplate("test-pill") {
		t.Fatal("HasTemplate(\"test-pill\") = false after RegisterTemplate")
	}
	v, err := Inflate("test-pill")
	if err != nil {
		t.Fatalf("Inflate() error = %v", err)
	}
	if v.Border() != BorderSingle {
		t.Errorf("Border() = %q, want %q", v.Border(), BorderSingle)
	}
	if got, want := v.Padding(), (Spacing{Left: 2, Right: 2}); got != want {
		t.Errorf("Padding() = %+v, want %+v", got, want)
	}
	if got, want := v.Style(), (Style{Color: ColorRed, Bold: true}); got != want {
		t.Errorf("Style() = %+v, want %+v", got, want)
	}
}

func TestInflateErrors(t *testing.T) {
	RegisterTemplate("test-box", func(gox.Props) gox.VNode {
		return gox.VNode{Type: "box"}
	})

	tests := []struct {
		name     string
		template string
		want     error
	}{
		{"unknown", "test-missing", ErrUnknownTemplate},
		{"not a tag", "test-box", ErrNotTagTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Inflate(tt.template)
			if errors.Cause(err) != tt.want {
				t.Errorf("Inflate(%q) error = %v, want %v", tt.template, err, tt.want)
			}
		})
	}
}

func TestWithTemplate(t *testing.T) {
	RegisterTemplate("test-plain", func(gox.Props) gox.VNode {
		return gox.VNode{Type: "tag"}
	})
	tl := newTestList(t, WithTemplate("test-plain"))
	if err := tl.AddTag("go"); err != nil {
		t.Fatalf("AddTag() error = %v", err)
	}

	tv := tl.ChildAt(0).(*TagView)
	if w, h := tv.NaturalSize(); w != 2 || h != 1 {
		t.Errorf("NaturalSize() = (%d, %d), want (2, 1)", w, h)
	}
}
