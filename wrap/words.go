package wrap

import (
	"strings"
	"unicode/utf8"
)

// Words is a fluent builder over []Word for assembling sequences by hand:
//
//	words := wrap.Words{}.
//	    Add(12, 3, 4).
//	    Add(18, 3, 6).
//	    Add(9, 3, 3)
//
// A Words value is a plain []Word and can be passed to Wrap and FirstFit
// directly.
type Words []Word

// Add appends a word of the given width, trailing space width and size.
func (ws Words) Add(width, spaceWidth float64, size int) Words {
	return append(ws, Word{Width: width, SpaceWidth: spaceWidth, Size: size})
}

// AddKeepSpace appends a word whose trailing space is charged even when the
// word ends a line.
func (ws Words) AddKeepSpace(width, spaceWidth float64, size int) Words {
	return append(ws, Word{Width: width, SpaceWidth: spaceWidth, Size: size, KeepSpace: true})
}

// MonospaceWords splits text on whitespace and measures every word as rune
// count times unit, with a single unit-wide space after each word. It is a
// convenience for fixed-pitch output and for experiments; proportional text
// needs caller-side shaping and the Word type directly.
func MonospaceWords(text string, unit float64) []Word {
	fields := strings.Fields(text)
	words := make([]Word, len(fields))
	for i, f := range fields {
		n := utf8.RuneCountInString(f)
		words[i] = Word{
			Width:      float64(n) * unit,
			SpaceWidth: unit,
			Size:       n,
		}
	}

	return words
}
