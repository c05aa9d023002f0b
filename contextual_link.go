package trmarkup

import "fmt"

// LinkSpec resolves the link value of a contextual link at render time.
type LinkSpec interface {
	resolveLink(params Parameters) any
}

// LabelSpec resolves the label text of a contextual link at render time.
type LabelSpec interface {
	resolveLabel(params Parameters) string
}

type staticLink struct{ link any }

func (s staticLink) resolveLink(Parameters) any { return s.link }

type parameterLink struct{ key string }

func (p parameterLink) resolveLink(params Parameters) any { return params[p.key] }

type resolvedLink func(params Parameters) any

func (r resolvedLink) resolveLink(params Parameters) any { return r(params) }

// StaticLink always resolves to link.
func StaticLink(link any) LinkSpec { return staticLink{link: link} }

// ParameterLink resolves to the parameter named key.
func ParameterLink(key string) LinkSpec { return parameterLink{key: key} }

// ResolvedLink resolves by calling fn with the render parameters.
func ResolvedLink(fn func(params Parameters) any) LinkSpec { return resolvedLink(fn) }

type staticLabel string

func (s staticLabel) resolveLabel(Parameters) string { return string(s) }

type parameterLabel struct{ key string }

func (p parameterLabel) resolveLabel(params Parameters) string { return labelText(params[p.key]) }

type resolvedLabel func(params Parameters) string

func (r resolvedLabel) resolveLabel(params Parameters) string { return r(params) }

// StaticLabel always resolves to label.
func StaticLabel(label string) LabelSpec { return staticLabel(label) }

// ParameterLabel resolves to the parameter named key, or "" when it is unset.
func ParameterLabel(key string) LabelSpec { return parameterLabel{key: key} }

// ResolvedLabel resolves by calling fn with the render parameters.
func ResolvedLabel(fn func(params Parameters) string) LabelSpec { return resolvedLabel(fn) }

func labelText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

// LabeledLink is a parameter value carrying both the label and the link of a
// contextual link substitution.
type LabeledLink struct {
	Label string
	Link  any
}

// labeledLinkOf extracts the label and link from a parameter value. Maps with
// "label" and "link" entries are accepted alongside LabeledLink.
func labeledLinkOf(v any) (string, any) {
	switch l := v.(type) {
	case LabeledLink:
		return l.Label, l.Link
	case *LabeledLink:
		if l != nil {
			return l.Label, l.Link
		}
	case map[string]any:
		return labelText(l["label"]), l["link"]
	case Parameters:
		return labelText(l["label"]), l["link"]
	}
	return "", nil
}

// ContextualLinkOptions configures a contextual link substitution.
type ContextualLinkOptions struct {
	Label LabelSpec
	Link  LinkSpec
}

// ContextualLinkBlockTranspiler renders a block as an anchor whose link value
// is resolved from the render parameters.
type ContextualLinkBlockTranspiler struct {
	*BlockTranspiler
}

// NewContextualLinkBlockTranspiler returns a block transpiler delimited by
// start and end that renders an anchor linked through spec.
func NewContextualLinkBlockTranspiler(factory RendererFactory, start, end string, spec LinkSpec, renderers []LinkRenderer) *ContextualLinkBlockTranspiler {
	decorate := linkDecorator(spec.resolveLink, renderers)
	return &ContextualLinkBlockTranspiler{
		BlockTranspiler: NewBlockTranspiler(start, end, func(children []Renderer) Renderer {
			return factory.ElementRenderer("a", children, decorate)
		}),
	}
}

// ContextualLinkSubstitutionTranspiler substitutes a fixed marker with an
// anchor whose label and link are resolved from the render parameters.
type ContextualLinkSubstitutionTranspiler struct {
	*SubstitutionTranspiler
}

// NewContextualLinkSubstitutionTranspiler returns a substitution transpiler
// for token configured by options. A nil label renders an empty anchor text.
func NewContextualLinkSubstitutionTranspiler(factory RendererFactory, token string, options ContextualLinkOptions, renderers []LinkRenderer) *ContextualLinkSubstitutionTranspiler {
	label := options.Label
	if label == nil {
		label = StaticLabel("")
	}
	link := options.Link
	if link == nil {
		link = StaticLink(nil)
	}
	return &ContextualLinkSubstitutionTranspiler{
		SubstitutionTranspiler: NewSubstitutionTranspiler(token, func() Renderer {
			text := factory.DynamicTextRenderer(label.resolveLabel)
			return factory.ElementRenderer("a", []Renderer{text}, linkDecorator(link.resolveLink, renderers))
		}),
	}
}

// ContextualLinkTranspilerFactory creates contextual link transpilers sharing
// a renderer factory and a set of link renderers.
type ContextualLinkTranspilerFactory struct {
	factory   RendererFactory
	renderers []LinkRenderer
}

// NewContextualLinkTranspilerFactory returns a factory using renderers, tried
// in order, to apply link values.
func NewContextualLinkTranspilerFactory(factory RendererFactory, renderers ...LinkRenderer) *ContextualLinkTranspilerFactory {
	return &ContextualLinkTranspilerFactory{factory: factory, renderers: renderers}
}

// BlockTranspiler returns a transpiler for [key]...[/key] linked to the
// parameter named key.
func (f *ContextualLinkTranspilerFactory) BlockTranspiler(key string) *ContextualLinkBlockTranspiler {
	return f.BlockTranspilerFor("["+key+"]", "[/"+key+"]", ParameterLink(key))
}

// BlockTranspilerFor returns a transpiler for start...end linked through spec.
func (f *ContextualLinkTranspilerFactory) BlockTranspilerFor(start, end string, spec LinkSpec) *ContextualLinkBlockTranspiler {
	return NewContextualLinkBlockTranspiler(f.factory, start, end, spec, f.renderers)
}

// SubstitutionTranspiler returns a transpiler for [key] whose label and link
// come from the parameter named key, a LabeledLink or a map with "label" and
// "link" entries.
func (f *ContextualLinkTranspilerFactory) SubstitutionTranspiler(key string) *ContextualLinkSubstitutionTranspiler {
	return f.SubstitutionTranspilerFor("["+key+"]", ContextualLinkOptions{
		Label: ResolvedLabel(func(params Parameters) string {
			label, _ := labeledLinkOf(params[key])
			return label
		}),
		Link: ResolvedLink(func(params Parameters) any {
			_, link := labeledLinkOf(params[key])
			return link
		}),
	})
}

// SubstitutionTranspilerFor returns a transpiler substituting token according
// to options.
func (f *ContextualLinkTranspilerFactory) SubstitutionTranspilerFor(token string, options ContextualLinkOptions) *ContextualLinkSubstitutionTranspiler {
	return NewContextualLinkSubstitutionTranspiler(f.factory, token, options, f.renderers)
}
