package wrap

import "math"

// badnessScale is the classical factor applied to the slack ratio penalty,
// matching the 100·r³ badness of TeX-style paragraph breaking.
const badnessScale = 100.0

// SpanBadness computes the badness of placing the non-empty word span on a
// single line with geometry g, treating the span as an interior line. Pure
// function; opts may be nil for defaults.
//
// Rules, in order:
//  1. An empty span, a non-positive available width, or an available width
//     below opts.MinWidth is Unfit.
//  2. Content width is the sum of word widths plus the spaces between them;
//     the trailing word's space is excluded unless its KeepSpace is set.
//  3. Content wider than the line: Unfit for two or more words. A lone word
//     is tolerated when opts.AllowOverflow, at
//     OverflowScale·(1+excess/available)^SlackExponent — strictly increasing
//     in the excess and invariant under uniform scaling of all widths.
//  4. Otherwise the slack penalty 100·(slack/available)^SlackExponent: zero
//     at exact fit, strictly increasing in slack, scale-invariant.
func SpanBadness(span []Word, g Geometry, opts *Options) float64 {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}

	return spanBadness(span, g, &cfg, false)
}

// LayoutBadness recomputes the total badness of an existing breakpoint
// sequence over words and geom, using the same per-line accounting as Wrap
// (including the free final line unless WithStrictLastLine is set). The
// total is Unfit (+Inf) when any line is unfit; that is a value, not an
// error. ErrBadBreaks is returned for a malformed breakpoint sequence and
// input validation matches Wrap.
//
// LayoutBadness is the independent cross-check for Wrap results: for any
// res returned by Wrap, LayoutBadness(words, geom, res.Breaks) == res.Badness.
func LayoutBadness(words []Word, geom []Geometry, breaks []int, opts ...Option) (float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateInput(words, geom, &cfg); err != nil {
		return 0, err
	}
	if len(breaks) == 0 || breaks[len(breaks)-1] != len(words) {
		return 0, ErrBadBreaks
	}

	var total float64
	start := 0
	for line, end := range breaks {
		if end <= start {
			return 0, ErrBadBreaks
		}
		last := end == len(words)
		total += spanBadness(words[start:end], geometryAt(geom, line), &cfg, last)
		start = end
	}

	return total, nil
}

// spanBadness is the shared per-line model; last marks the terminal line of
// the layout, whose slack is free unless cfg.PenalizeLastLine.
func spanBadness(span []Word, g Geometry, cfg *Options, last bool) float64 {
	if len(span) == 0 {
		return Unfit
	}

	return contentBadness(contentWidth(span), len(span) == 1, g, cfg, last)
}

// contentBadness scores a line of known content width. single marks a
// one-word span, the only shape allowed to overflow.
func contentBadness(content float64, single bool, g Geometry, cfg *Options, last bool) float64 {
	avail := g.Available()
	if avail <= 0 || avail < cfg.MinWidth {
		return Unfit
	}

	if content > avail {
		if !single || !cfg.AllowOverflow {
			return Unfit
		}
		excess := content - avail

		return cfg.OverflowScale * math.Pow(1+excess/avail, cfg.SlackExponent)
	}

	if last && !cfg.PenalizeLastLine {
		return 0
	}
	slack := avail - content

	return badnessScale * math.Pow(slack/avail, cfg.SlackExponent)
}

// contentWidth sums word widths and the inter-word spaces of the span. The
// trailing word's own space disappears at end of line unless KeepSpace.
func contentWidth(span []Word) float64 {
	var w float64
	for i, word := range span {
		w += word.Width
		if i < len(span)-1 || word.KeepSpace {
			w += word.SpaceWidth
		}
	}

	return w
}

// geometryAt returns the geometry for the given line index, repeating the
// last entry beyond the end of the sequence.
func geometryAt(geom []Geometry, line int) Geometry {
	if line >= len(geom) {
		return geom[len(geom)-1]
	}

	return geom[line]
}
