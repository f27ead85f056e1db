package taglist

import "github.com/pkg/errors"

var (
	// ErrUnspecifiedWidth is returned when a flow is measured without a
	// width bound. Wrapping needs one.
	ErrUnspecifiedWidth = errors.New("taglist: width measure spec must not be UNSPECIFIED")
	ErrEmptyTag         = errors.New("taglist: empty tag")
	ErrUnknownTemplate  = errors.New("taglist: unknown template")
	ErrNotTagTemplate   = errors.New("taglist: template does not render a tag element")
	ErrInvalidDimension = errors.New("taglist: invalid dimension")
)
