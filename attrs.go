package taglist

import (
	"strconv"
	"strings"

	"github.com/germtb/gox"
	"github.com/pkg/errors"
)

// Attributes are the theme attributes a TagList is created with.
type Attributes = gox.Props

// Attribute keys read by New.
const (
	AttrHorizontalSpacing = "horizontal_spacing"
	AttrVerticalSpacing   = "vertical_spacing"
)

// defaultSpacing applies when a spacing attribute is absent.
const defaultSpacing = 1

// DimensionPixelSize reads a non-negative dimension from attrs, returning
// def when key is absent. Values may be ints, floats (truncated) or
// strings such as "4", "4px" or "4dp".
func DimensionPixelSize(attrs Attributes, key string, def int) (int, error) {
	v, ok := attrs[key]
	if !ok || v == nil {
		return def, nil
	}

	var n int
	switch d := v.(type) {
	case int:
		n = d
	case float64:
		n = int(d)
	case string:
		s := strings.TrimSpace(d)
		s = strings.TrimSuffix(strings.TrimSuffix(s, "px"), "dp")
		i, err := strconv.Atoi(s)
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidDimension, "attribute %s = %q", key, d)
		}
		n = i
	default:
		return 0, errors.Wrapf(ErrInvalidDimension, "attribute %s has type %T", key, v)
	}

	if n < 0 {
		return 0, errors.Wrapf(ErrInvalidDimension, "attribute %s = %d is negative", key, n)
	}
	return n, nil
}
