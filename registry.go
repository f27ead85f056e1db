package taglist

import (
	"sync"

	"github.com/germtb/gox"
	"github.com/pkg/errors"
)

// DefaultTemplate is the template a TagList inflates unless configured
// otherwise.
const DefaultTemplate = "tag"

// tagElement is the element type a template must render at its root.
const tagElement = "tag"

var (
	templateRegistry = make(map[string]gox.Component)
	registryMu       sync.RWMutex
)

func init() {
	RegisterTemplate(DefaultTemplate, func(gox.Props) gox.VNode {
		return gox.VNode{
			Type: tagElement,
			Props: gox.Props{
				"padding": Spacing{Left: 1, Right: 1},
				"border":  BorderRounded,
			},
		}
	})
}

// RegisterTemplate registers a named tag template, replacing any previous
// one with that name. The template must render a "tag" element, possibly
// through other components. Recognized props are "padding" (see
// NormalizeSpacing), "border" and "style".
func RegisterTemplate(name string, tmpl gox.Component) {
	registryMu.Lock()
	defer registryMu.Unlock()
	templateRegistry[name] = tmpl
}

// HasTemplate reports whether a template is registered under name.
func HasTemplate(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := templateRegistry[name]
	return ok
}

// Inflate builds a new, empty TagView from the named template.
func Inflate(name string) (*TagView, error) {
	registryMu.RLock()
	tmpl, ok := templateRegistry[name]
	registryMu.RUnlock()
	if !ok || tmpl == nil {
		return nil, errors.Wrapf(ErrUnknownTemplate, "inflate %q", name)
	}

	node := expand(tmpl(gox.Props{}))
	if typ, _ := node.Type.(string); typ != tagElement {
		return nil, errors.Wrapf(ErrNotTagTemplate, "inflate %q: root is %v", name, node.Type)
	}

	return &TagView{
		padding: NormalizeSpacing(node.Props["padding"]),
		border:  GetBorderStyle(node.Props["border"]),
		style:   GetStyle(node.Props),
	}, nil
}

// expand calls functional components until an intrinsic element is left.
func expand(v gox.VNode) gox.VNode {
	for {
		comp, ok := v.Type.(gox.Component)
		if !ok {
			return v
		}
		props := gox.Props{}
		for k, val := range v.Props {
			props[k] = val
		}
		props["children"] = v.Children
		v = comp(props)
	}
}
