// Package wrap defines core types and configuration options
// for optimal paragraph line breaking over measured word sequences.
//
// The optimizer places an ordered list of words onto lines whose available
// width may vary per line index, minimizing the total badness of the layout.
// Words carry pre-measured widths (text shaping and font metrics are the
// caller's concern); geometry carries per-line width constraints.
//
// Complexity:
//
//	– Time:  O(N·W·G) where N = |words|, W = the widest line measured in
//	   words (the feasibility window) and G = the varying geometry head
//	   (1 for constant geometry). Content width grows strictly as a
//	   candidate line absorbs more words, so once a span overflows every
//	   geometry no earlier start needs to be tried — near-linear on prose.
//	– Space: O(N·G) for the badness, predecessor and line-count tables.
//
// Options:
//
//	– SlackExponent: growth exponent of the slack (raggedness) penalty.
//	– OverflowScale: scale of the penalty for a lone word wider than its line.
//	– MinWidth:      lines narrower than this are unusable (unfit).
//	– AllowOverflow: tolerate a single word wider than its line (default on).
//	– PenalizeLastLine: charge slack badness on the final line too (default off;
//	   a short closing line is the normal shape of a paragraph).
//
// Errors (sentinel):
//
//	– ErrNoWords          if the word sequence is empty.
//	– ErrNoGeometry       if the geometry sequence is empty.
//	– ErrNegativeWidth    if any word, space or geometry dimension is negative.
//	– ErrBadOptions       if option values are out of range.
//	– ErrBadBreaks        if a breakpoint sequence handed to LayoutBadness is malformed.
//	– ErrNoFeasibleLayout if no admissible layout exists for the input.
//
// Example usage:
//
//	res, err := wrap.Wrap(words, geom, wrap.WithSlackExponent(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("lines=%d badness=%.2f breaks=%v\n", res.Lines, res.Badness, res.Breaks)
package wrap

import (
	"errors"
	"math"
)

// Sentinel errors returned by the wrap package.
var (
	// ErrNoWords indicates that the word sequence is empty.
	ErrNoWords = errors.New("wrap: word sequence must be non-empty")

	// ErrNoGeometry indicates that the geometry sequence is empty.
	ErrNoGeometry = errors.New("wrap: geometry sequence must be non-empty")

	// ErrNegativeWidth indicates that a word width, space width, geometry
	// width or indent is negative.
	ErrNegativeWidth = errors.New("wrap: negative width")

	// ErrBadOptions indicates that an Options value is out of range
	// (SlackExponent < 1, OverflowScale <= 0, or MinWidth < 0).
	ErrBadOptions = errors.New("wrap: invalid options")

	// ErrBadBreaks indicates a breakpoint sequence that is not strictly
	// increasing, or does not end at the word count.
	ErrBadBreaks = errors.New("wrap: breakpoints must be strictly increasing and end at the word count")

	// ErrNoFeasibleLayout indicates that every candidate layout contains at
	// least one unfit line. This is a legitimate semantic outcome, not a
	// programming error: the caller may widen the geometry and retry.
	ErrNoFeasibleLayout = errors.New("wrap: no feasible layout")
)

// Unfit is the badness of a line configuration that cannot legally occur,
// such as two or more words wider than their line. Any layout containing an
// unfit line is inadmissible.
var Unfit = math.Inf(1)

// Word is one immutable, pre-measured unit of line content.
//
// Width is the word's own width and SpaceWidth the width of the space that
// follows it if the line continues; both are in the caller's abstract length
// units and must be non-negative. Size counts the underlying atomic units
// (runes, glyphs) the word stands for; the optimizer carries it for callers
// and reporting but does not consult it when comparing layouts.
//
// KeepSpace, when set, charges the word's trailing space even when the word
// ends a line. By default a line-final space disappears, as it does in
// rendered text.
type Word struct {
	Width      float64 // width of the word itself
	SpaceWidth float64 // width of the space following the word, if any
	Size       int     // number of atomic units represented by the word
	KeepSpace  bool    // charge SpaceWidth even at end of line
}

// Geometry is the immutable width constraint for one line index.
//
// Width is the raw line width and Indent a leading constraint subtracted
// from it; the usable width of the line is Width - Indent. A geometry
// sequence shorter than the number of lines produced repeats its last entry
// indefinitely, so arbitrarily long word sequences always have a defined
// geometry.
type Geometry struct {
	Width  float64 // raw available width for the line
	Indent float64 // leading offset consumed before content starts
}

// Available returns the usable content width of the line, Width - Indent.
func (g Geometry) Available() float64 { return g.Width - g.Indent }

// Result holds the outcome of a line-breaking run.
type Result struct {
	// Badness is the total badness of the chosen layout, the sum of the
	// per-line badness values.
	Badness float64

	// Breaks is the strictly increasing list of word indices at which each
	// line ends (exclusive). The last entry always equals the word count, so
	// line i covers words[Breaks[i-1]:Breaks[i]] with Breaks[-1] taken as 0.
	Breaks []int

	// Lines is the number of lines in the layout, len(Breaks).
	Lines int
}

// Options configures the badness model shared by Wrap and FirstFit.
//
// SlackExponent    – exponent of the slack penalty: a line with unused width
//
//	s out of available width a costs 100·(s/a)^SlackExponent.
//	Must be ≥ 1. Default 3 (the classical cube law).
//
// OverflowScale    – scale of the penalty for a lone word of excess width e:
//
//	OverflowScale·(1+e/a)^SlackExponent. Must be > 0. Default 1000.
//
// MinWidth         – lines whose available width falls below this are unfit.
//
//	Must be ≥ 0. Default 0 (only non-positive widths are unfit).
//
// AllowOverflow    – tolerate a single word wider than its line, at a steep
//
//	penalty. Default true; when false such a word makes the layout infeasible.
//
// PenalizeLastLine – charge slack badness on the terminal line. Default
//
//	false: trailing slack on the closing line of a paragraph is free.
type Options struct {
	SlackExponent    float64 // slack penalty growth exponent
	OverflowScale    float64 // scale of the single-word overflow penalty
	MinWidth         float64 // minimum usable line width
	AllowOverflow    bool    // tolerate lone oversized words
	PenalizeLastLine bool    // charge slack on the final line
}

// Option represents a functional option for configuring Wrap and FirstFit.
type Option func(*Options)

// WithSlackExponent sets the slack penalty growth exponent.
// Must pass a value ≥ 1; smaller values cause a panic with ErrBadOptions.
func WithSlackExponent(exp float64) Option {
	return func(o *Options) {
		if exp < 1 {
			// Panic to signal invalid configuration early, before any layout runs.
			panic(ErrBadOptions.Error())
		}
		o.SlackExponent = exp
	}
}

// WithOverflowScale sets the scale of the single-word overflow penalty.
// Must pass a positive value; zero or negative cause a panic with ErrBadOptions.
func WithOverflowScale(scale float64) Option {
	return func(o *Options) {
		if scale <= 0 {
			panic(ErrBadOptions.Error())
		}
		o.OverflowScale = scale
	}
}

// WithMinWidth marks lines narrower than w as unfit. The check affects only
// the badness model's numeric output; infeasibility still surfaces through
// the regular ErrNoFeasibleLayout path.
// Must pass a non-negative value; negative values cause a panic with ErrBadOptions.
func WithMinWidth(w float64) Option {
	return func(o *Options) {
		if w < 0 {
			panic(ErrBadOptions.Error())
		}
		o.MinWidth = w
	}
}

// WithoutOverflow disables the single-word overflow tolerance. A word wider
// than every line then has no legal placement and Wrap reports
// ErrNoFeasibleLayout instead of an overflowing layout.
func WithoutOverflow() Option {
	return func(o *Options) {
		o.AllowOverflow = false
	}
}

// WithStrictLastLine charges slack badness on the terminal line exactly like
// any interior line. By default the last line's trailing slack is free.
func WithStrictLastLine() Option {
	return func(o *Options) {
		o.PenalizeLastLine = true
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - SlackExponent:    3 (cube-law raggedness penalty).
//   - OverflowScale:    1000 (dominates any fit line's badness).
//   - MinWidth:         0 (only non-positive widths are unfit).
//   - AllowOverflow:    true (lone oversized words are placed, steeply penalized).
//   - PenalizeLastLine: false (trailing slack on the final line is free).
func DefaultOptions() Options {
	return Options{
		SlackExponent:    3,
		OverflowScale:    1000,
		MinWidth:         0,
		AllowOverflow:    true,
		PenalizeLastLine: false,
	}
}
