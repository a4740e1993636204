// Package pagination splits text into pages of word-wrapped lines for a
// fixed-width text box.
//
// The engine is a pure function of its inputs. Callers that display pages
// one at a time keep their own page index (see entity.Dialog).
package pagination

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidLayout is returned when a layout cannot hold a single character.
var ErrInvalidLayout = errors.New("invalid layout")

// Layout holds the character and line budget of a text box
type Layout struct {
	MaxCharsPerLine int
	MaxLinesPerPage int
}

// Validate checks that both budgets are at least 1
func (l Layout) Validate() error {
	if l.MaxCharsPerLine < 1 || l.MaxLinesPerPage < 1 {
		return fmt.Errorf("%w: %d chars per line, %d lines per page",
			ErrInvalidLayout, l.MaxCharsPerLine, l.MaxLinesPerPage)
	}
	return nil
}

// Paginate splits text using this layout
func (l Layout) Paginate(text string) ([]string, error) {
	return Paginate(text, l.MaxCharsPerLine, l.MaxLinesPerPage)
}

// LayoutForArea derives a Layout from a box size and a fixed glyph size (pixels).
func LayoutForArea(width, height, glyphWidth, glyphHeight int) (Layout, error) {
	if glyphWidth < 1 || glyphHeight < 1 {
		return Layout{}, fmt.Errorf("%w: glyph size %dx%d", ErrInvalidLayout, glyphWidth, glyphHeight)
	}
	l := Layout{
		MaxCharsPerLine: width / glyphWidth,
		MaxLinesPerPage: height / glyphHeight,
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Paginate wraps text into lines of at most maxCharsPerLine runes and groups
// them into pages of at most maxLinesPerPage lines. Lines within a page are
// joined with '\n'.
//
// A word keeps its trailing whitespace, which counts toward the line length.
// Words are never split: a word longer than the budget gets a line of its
// own. An explicit '\n' ends the current line but not the current page.
// Empty text yields a single page holding one empty line.
func Paginate(text string, maxCharsPerLine, maxLinesPerPage int) ([]string, error) {
	layout := Layout{MaxCharsPerLine: maxCharsPerLine, MaxLinesPerPage: maxLinesPerPage}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	runes := []rune(strings.ReplaceAll(text, "\r\n", "\n"))
	if len(runes) == 0 {
		return []string{""}, nil
	}

	p := paginator{layout: layout}
	last := len(runes) - 1
	for i, r := range runes {
		p.word = append(p.word, r)
		if !unicode.IsSpace(r) && i != last {
			continue
		}
		p.closeWord(r == '\n', i == last)
	}
	return p.pages, nil
}

// paginator holds the three buffers threaded through one scan of the text.
type paginator struct {
	layout Layout
	word   []rune
	line   []rune
	lines  []string
	pages  []string
}

func (p *paginator) closeWord(explicitBreak, last bool) {
	if explicitBreak {
		// the break itself becomes the line separator
		p.word = p.word[:len(p.word)-1]
	}

	// soft wrap, never on an empty line
	if len(p.line) > 0 && len(p.line)+len(p.word) > p.layout.MaxCharsPerLine {
		p.flushLine()
	}

	p.line = append(p.line, p.word...)
	p.word = p.word[:0]

	if explicitBreak || last {
		p.flushLine()
	}
	if last && len(p.lines) > 0 {
		p.flushPage()
	}
}

func (p *paginator) flushLine() {
	p.lines = append(p.lines, string(p.line))
	p.line = p.line[:0]
	if len(p.lines) >= p.layout.MaxLinesPerPage {
		p.flushPage()
	}
}

func (p *paginator) flushPage() {
	p.pages = append(p.pages, strings.Join(p.lines, "\n"))
	p.lines = p.lines[:0]
}

// Lines splits a page produced by Paginate back into its lines
func Lines(page string) []string {
	return strings.Split(page, "\n")
}
