package trmarkup

// Emoticon maps a text emoticon to the glyph it renders as.
type Emoticon struct {
	Text  string
	Glyph string
}

// DefaultEmoticons returns the built-in emoticon set.
func DefaultEmoticons() []Emoticon {
	return []Emoticon{
		{Text: ":)", Glyph: "\U0001F642"},
		{Text: ":D", Glyph: "\U0001F600"},
		{Text: ";)", Glyph: "\U0001F609"},
		{Text: "xD", Glyph: "\U0001F606"},
		{Text: "XD", Glyph: "\U0001F606"},
		{Text: "B)", Glyph: "\U0001F60E"},
		{Text: ":|", Glyph: "\U0001F610"},
		{Text: ":(", Glyph: "\U0001F641"},
		{Text: ">:(", Glyph: "\U0001F620"},
	}
}

// EmoticonTranspiler replaces emoticons with glyphs. Each emoticon is a
// substitution whose glyph renderer is shared by all of its occurrences. When
// several emoticons match at the same offset the first one in the list wins.
type EmoticonTranspiler struct {
	substitutions []*SubstitutionTranspiler
}

// NewEmoticonTranspiler returns an emoticon transpiler for emoticons, or for
// DefaultEmoticons when none are given.
func NewEmoticonTranspiler(factory RendererFactory, emoticons ...Emoticon) *EmoticonTranspiler {
	if len(emoticons) == 0 {
		emoticons = DefaultEmoticons()
	}
	e := &EmoticonTranspiler{}
	for _, em := range emoticons {
		if em.Text == "" {
			continue
		}
		glyph := em.Glyph
		e.substitutions = append(e.substitutions, NewSubstitutionTranspiler(em.Text, func() Renderer {
			return factory.TextRenderer(glyph)
		}))
	}
	return e
}

func (e *EmoticonTranspiler) Tokenize(source string, offset int) (TokenizeResult, bool) {
	for _, s := range e.substitutions {
		if res, ok := s.Tokenize(source, offset); ok {
			return res, true
		}
	}
	return TokenizeResult{}, false
}

func (e *EmoticonTranspiler) Transpile(offset int, ctx *Context) (TranspileResult, bool) {
	for _, s := range e.substitutions {
		if res, ok := s.Transpile(offset, ctx); ok {
			return res, true
		}
	}
	return TranspileResult{}, false
}
