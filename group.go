package taglist

// HierarchyObserver is told about every child attached to or detached
// from a Group.
type HierarchyObserver interface {
	ChildAdded(parent, child View)
	ChildRemoved(parent, child View)
}

// Group is an ordered set of child views owned by a container view. It
// enforces the owner's layout params policy on attach and reports every
// attach and detach to its observer.
type Group struct {
	owner    View
	policy   ParamsPolicy
	observer HierarchyObserver
	padding  Spacing
	children []View
}

// NewGroup creates an empty group for owner. Either policy or observer
// may be nil.
func NewGroup(owner View, policy ParamsPolicy, observer HierarchyObserver) *Group {
	return &Group{
		owner:    owner,
		policy:   policy,
		observer: observer,
	}
}

// AddView attaches v as the last child. Views whose params the policy
// rejects get the policy's defaults first. Attaching a view that is
// already a child panics.
func (g *Group) AddView(v View) {
	if v == nil {
		panic("taglist: nil view")
	}
	if g.indexOf(v) >= 0 {
		panic("taglist: view already attached")
	}
	if g.policy != nil && !g.policy.CheckLayoutParams(v.LayoutParams()) {
		v.SetLayoutParams(g.policy.GenerateDefaultLayoutParams())
	}
	g.children = append(g.children, v)
	if g.observer != nil {
		g.observer.ChildAdded(g.owner, v)
	}
}

// RemoveView detaches v. It returns false when v is not a child.
func (g *Group) RemoveView(v View) bool {
	i := g.indexOf(v)
	if i < 0 {
		return false
	}
	g.RemoveViewAt(i)
	return true
}

// RemoveViewAt detaches the child at index i.
func (g *Group) RemoveViewAt(i int) {
	v := g.children[i]
	g.children = append(g.children[:i], g.children[i+1:]...)
	if g.observer != nil {
		g.observer.ChildRemoved(g.owner, v)
	}
}

// RemoveAllViews detaches every child, last to first.
func (g *Group) RemoveAllViews() {
	for i := len(g.children) - 1; i >= 0; i-- {
		g.RemoveViewAt(i)
	}
}

// ChildCount returns the number of attached children.
func (g *Group) ChildCount() int { return len(g.children) }

// ChildAt returns the child at index i.
func (g *Group) ChildAt(i int) View { return g.children[i] }

// Children returns a copy of the attached children in order.
func (g *Group) Children() []View {
	out := make([]View, len(g.children))
	copy(out, g.children)
	return out
}

// SetPadding sets the space kept free inside the owner's edges.
func (g *Group) SetPadding(p Spacing) { g.padding = p }

// Padding returns the owner's padding.
func (g *Group) Padding() Spacing { return g.padding }

func (g *Group) indexOf(v View) int {
	for i, c := range g.children {
		if c == v {
			return i
		}
	}
	return -1
}
