package taglist

import "go.uber.org/zap"

// Option configures a TagList.
type Option func(*TagList)

// WithAttributes sets the theme attributes spacing defaults are read from.
func WithAttributes(attrs Attributes) Option {
	return func(tl *TagList) {
		tl.attrs = attrs
	}
}

// WithPadding sets the container padding.
func WithPadding(p Spacing) Option {
	return func(tl *TagList) {
		tl.SetPadding(p)
	}
}

// WithTemplate selects the registered template tag views are inflated from.
func WithTemplate(name string) Option {
	return func(tl *TagList) {
		tl.template = name
	}
}

// WithMaxRowHeight makes each row as tall as its tallest tag instead of
// its last one.
func WithMaxRowHeight() Option {
	return func(tl *TagList) {
		tl.maxRowHeight = true
	}
}

// WithReplaceOnSetTags makes SetTags detach every child before attaching
// the new tags. By default old children stay attached.
func WithReplaceOnSetTags() Option {
	return func(tl *TagList) {
		tl.replaceOnSet = true
	}
}

// WithLogger sets the logger used instead of Log.Named("taglist").
func WithLogger(log *zap.SugaredLogger) Option {
	return func(tl *TagList) {
		tl.log = log
	}
}
