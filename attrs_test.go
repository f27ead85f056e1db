package taglist

import (
	"testing"

	"github.com/pkg/errors"
)

func TestDimensionPixelSize(t *testing.T) {
	tests := []struct {
		name    string
		attrs   Attributes
		want    int
		wantErr bool
	}{
		{name: "absent", attrs: Attributes{}, want: 1},
		{name: "nil attributes", attrs: nil, want: 1},
		{name: "nil value", attrs: Attributes{"k": nil}, want: 1},
		{name: "int", attrs: Attributes{"k": 4}, want: 4},
		{name: "zero", attrs: Attributes{"k": 0}, want: 0},
		{name: "float truncated", attrs: Attributes{"k": 2.9}, want: 2},
		{name: "plain string", attrs: Attributes{"k": "3"}, want: 3},
		{name: "px string", attrs: Attributes{"k": " 5px "}, want: 5},
		{name: "dp string", attrs: Attributes{"k": "6dp"}, want: 6},
		{name: "garbage", attrs: Attributes{"k": "wide"}, wantErr: true},
		{name: "negative", attrs: Attributes{"k": -2}, wantErr: true},
		{name: "negative string", attrs: Attributes{"k": "-2px"}, wantErr: true},
		{name: "wrong type", attrs: Attributes{"k": true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DimensionPixelSize(tt.attrs, "k", 1)
			if tt.wantErr {
				if errors.Cause(err) != ErrInvalidDimension {
					t.Errorf("DimensionPixelSize() error = %v, want ErrInvalidDimension", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DimensionPixelSize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DimensionPixelSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewReadsSpacingAttributes(t *testing.T) {
	tl := newTestList(t, WithAttributes(Attributes{AttrHorizontalSpacing: "3px"}))
	p := tl.GenerateDefaultLayoutParams().(*SpacingParams)
	if got, want := *p, (SpacingParams{HorizontalSpacing: 3, VerticalSpacing: 1}); got != want {
		t.Errorf("default params = %+v, want %+v", got, want)
	}
}
