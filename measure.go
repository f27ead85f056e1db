package taglist

import "strconv"

// MeasureMode says how a parent constrains one dimension of a child.
type MeasureMode uint8

const (
	// ModeUnspecified lets the child pick whatever size it wants.
	ModeUnspecified MeasureMode = iota
	// ModeAtMost bounds the child by the spec size.
	ModeAtMost
	// ModeExactly forces the child to the spec size.
	ModeExactly
)

func (m MeasureMode) String() string {
	switch m {
	case ModeUnspecified:
		return "UNSPECIFIED"
	case ModeAtMost:
		return "AT_MOST"
	case ModeExactly:
		return "EXACTLY"
	default:
		return "MeasureMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// MeasureSpec is a (mode, size) pair handed from a parent to a child
// during measurement.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// Unbounded returns a spec that places no constraint on the child.
func Unbounded() MeasureSpec {
	return MeasureSpec{Mode: ModeUnspecified}
}

// AtMost returns a spec bounding the child by size.
func AtMost(size int) MeasureSpec {
	return MeasureSpec{Mode: ModeAtMost, Size: size}
}

// Exactly returns a spec forcing the child to size.
func Exactly(size int) MeasureSpec {
	return MeasureSpec{Mode: ModeExactly, Size: size}
}

// Resolve reconciles a desired size with the spec.
func (s MeasureSpec) Resolve(desired int) int {
	switch s.Mode {
	case ModeExactly:
		return s.Size
	case ModeAtMost:
		return min(desired, s.Size)
	default:
		return desired
	}
}

func (s MeasureSpec) String() string {
	if s.Mode == ModeUnspecified {
		return s.Mode.String()
	}
	return s.Mode.String() + "(" + strconv.Itoa(s.Size) + ")"
}
