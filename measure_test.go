package taglist

import "testing"

func TestMeasureSpecResolve(t *testing.T) {
	tests := []struct {
		spec    MeasureSpec
		desired int
		want    int
	}{
		{Unbounded(), 12, 12},
		{AtMost(10), 12, 10},
		{AtMost(10), 4, 4},
		{Exactly(10), 4, 10},
		{Exactly(10), 12, 10},
	}

	for _, tt := range tests {
		t.Run(tt.spec.String(), func(t *testing.T) {
			if got := tt.spec.Resolve(tt.desired); got != tt.want {
				t.Errorf("%v.Resolve(%d) = %d, want %d", tt.spec, tt.desired, got, tt.want)
			}
		})
	}
}

func TestMeasureSpecString(t *testing.T) {
	tests := []struct {
		spec MeasureSpec
		want string
	}{
		{Unbounded(), "UNSPECIFIED"},
		{AtMost(3), "AT_MOST(3)"},
		{Exactly(0), "EXACTLY(0)"},
		{MeasureSpec{Mode: 9, Size: 1}, "MeasureMode(9)(1)"},
	}

	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
