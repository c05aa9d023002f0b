package trmarkup

// RendererFactory creates renderers for a concrete output technology. Every
// transpiler in this package builds its output through a factory only.
type RendererFactory interface {
	// TextRenderer returns a renderer for a fixed text node.
	TextRenderer(text string) Renderer
	// DynamicTextRenderer returns a renderer for a text node whose content
	// is computed from the parameters.
	DynamicTextRenderer(text func(params Parameters) string) Renderer
	// ElementRenderer returns a renderer for an element named tag that
	// contains the output of children. Decorators run in order on every
	// render and set the element attributes.
	ElementRenderer(tag string, children []Renderer, decorators ...Decorator) Renderer
}

// Decorator sets attributes on an element at render time.
type Decorator func(params Parameters, attrs *Attributes)

// Attribute is a single element attribute.
type Attribute struct {
	Key, Val string
}

// Attributes is an ordered attribute set.
type Attributes struct {
	list []Attribute
}

// Set assigns val to key, keeping the position of an existing key.
func (a *Attributes) Set(key, val string) {
	for i := range a.list {
		if a.list[i].Key == key {
			a.list[i].Val = val
			return
		}
	}
	a.list = append(a.list, Attribute{Key: key, Val: val})
}

// Get returns the value of key.
func (a *Attributes) Get(key string) (string, bool) {
	for _, attr := range a.list {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// Delete removes key.
func (a *Attributes) Delete(key string) {
	for i := range a.list {
		if a.list[i].Key == key {
			a.list = append(a.list[:i], a.list[i+1:]...)
			return
		}
	}
}

// Len returns the number of attributes.
func (a *Attributes) Len() int { return len(a.list) }

// All returns the attributes in insertion order.
func (a *Attributes) All() []Attribute {
	out := make([]Attribute, len(a.list))
	copy(out, a.list)
	return out
}

// Decorate runs decorators over a fresh attribute set.
func Decorate(params Parameters, decorators []Decorator) *Attributes {
	attrs := &Attributes{}
	for _, decorate := range decorators {
		if decorate != nil {
			decorate(params, attrs)
		}
	}
	return attrs
}
