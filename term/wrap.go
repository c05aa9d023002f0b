package term

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

func fitURL(url string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return truncateWithEllipsis(url, limit)
}

// fragment is a run of text printed with one style.
type fragment struct {
	text  string
	style Style
	link  string
	width int
}

// layout lays out words into lines no wider than width. A width of zero or less
// disables wrapping.
type layout struct {
	width    int
	softWrap bool

	lines     [][]fragment
	line      []fragment
	lineWidth int

	word      []fragment
	wordWidth int
	space     *fragment
}

func (l *layout) addText(text string, style Style, link string) {
	start := 0
	flushPart := func(end int) {
		if end > start {
			part := text[start:end]
			w := ansi.PrintableRuneWidth(part)
			l.word = append(l.word, fragment{text: part, style: style, link: link, width: w})
			l.wordWidth += w
		}
	}
	for i, r := range text {
		switch r {
		case '\n':
			flushPart(i)
			l.flushWord()
			l.breakLine()
			l.space = nil
			start = i + 1
		case ' ', '\t', '\r':
			flushPart(i)
			l.flushWord()
			if len(l.line) > 0 && l.space == nil {
				l.space = &fragment{text: " ", style: style, link: link, width: 1}
			}
			start = i + 1
		}
	}
	flushPart(len(text))
}

func (l *layout) flushWord() {
	if len(l.word) == 0 {
		return
	}
	spaceWidth := 0
	if l.space != nil {
		spaceWidth = l.space.width
	}
	if l.width > 0 && len(l.line) > 0 && l.lineWidth+spaceWidth+l.wordWidth > l.width {
		l.breakLine()
	} else if l.space != nil && len(l.line) > 0 {
		l.line = append(l.line, *l.space)
		l.lineWidth += spaceWidth
	}
	l.space = nil
	if l.softWrap && l.width > 0 && l.wordWidth > l.width {
		l.placeSplit()
	} else {
		l.line = append(l.line, l.word...)
		l.lineWidth += l.wordWidth
	}
	l.word = nil
	l.wordWidth = 0
}

// placeSplit places a word longer than the width, breaking it between runes.
func (l *layout) placeSplit() {
	for _, f := range l.word {
		var b strings.Builder
		w := 0
		for _, r := range f.text {
			rw := ansi.PrintableRuneWidth(string(r))
			if l.lineWidth+w+rw > l.width && (l.lineWidth+w) > 0 {
				if b.Len() > 0 {
					l.line = append(l.line, fragment{text: b.String(), style: f.style, link: f.link, width: w})
					l.lineWidth += w
				}
				l.breakLine()
				b.Reset()
				w = 0
			}
			b.WriteRune(r)
			w += rw
		}
		if b.Len() > 0 {
			l.line = append(l.line, fragment{text: b.String(), style: f.style, link: f.link, width: w})
			l.lineWidth += w
		}
	}
}

func (l *layout) breakLine() {
	l.lines = append(l.lines, l.line)
	l.line = nil
	l.lineWidth = 0
}

// finish flushes pending content and returns the lines.
func (l *layout) finish() [][]fragment {
	l.flushWord()
	if len(l.line) > 0 {
		l.breakLine()
	}
	return l.lines
}
