package taglist

// TagListener is told about tags whose views are attached to or detached
// from a TagList. Listeners are compared by identity, so implementations
// must be comparable; pointer types are.
type TagListener interface {
	OnAddedTag(tag string)
	OnRemovedTag(tag string)
}

// TagListenerFuncs adapts a pair of functions to TagListener. Register it
// by pointer; nil fields are skipped.
type TagListenerFuncs struct {
	Added   func(tag string)
	Removed func(tag string)
}

func (f *TagListenerFuncs) OnAddedTag(tag string) {
	if f.Added != nil {
		f.Added(tag)
	}
}

func (f *TagListenerFuncs) OnRemovedTag(tag string) {
	if f.Removed != nil {
		f.Removed(tag)
	}
}
