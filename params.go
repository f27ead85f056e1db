package taglist

// LayoutParams is per-child layout metadata stored on a view by its
// parent. Each container decides which concrete types it accepts.
type LayoutParams interface{}

// SizeParams is the generic shape a host attaches to a view that was
// built outside any particular container.
type SizeParams struct {
	Width  int
	Height int
}

// SpacingParams are the layout params of a TagList child: the gap left
// after the child horizontally and below its row vertically.
type SpacingParams struct {
	HorizontalSpacing int
	VerticalSpacing   int
}

// ParamsPolicy decides which layout params a Group accepts and supplies
// defaults for the rest.
type ParamsPolicy interface {
	CheckLayoutParams(p LayoutParams) bool
	GenerateDefaultLayoutParams() LayoutParams
}

func spacingOf(v View) SpacingParams {
	if p, ok := v.LayoutParams().(*SpacingParams); ok && p != nil {
		return *p
	}
	return SpacingParams{}
}
