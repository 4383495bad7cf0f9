// Package wrap implements minimum-badness line breaking over a measured
// word sequence, in the spirit of Knuth and Plass, "Breaking Paragraphs
// into Lines" (1981), reduced to whole-word breakpoints.
//
// The optimizer is a dynamic program over (word-prefix, line-index) states,
// equivalent to a shortest path over the DAG of legal breakpoints:
//
//	D[0][0]   = 0
//	D[k][l+1] = min over i < k of D[i][l] + badness(words[i:k], geom[l])
//
// The line index is part of the state because the geometry may vary per
// line: the same prefix can be reached in different line counts, and which
// of those is cheapest overall depends on the geometry the next line gets.
// Beyond the geometry sequence its last entry repeats, so line indices past
// the end collapse into one state and the table stays O(N) wide for the
// common constant-geometry case.
//
// Notes on implementation choices:
//
//   - Content width grows strictly as a candidate span extends left, so the
//     scan over span starts stops as soon as the span overflows the widest
//     geometry — an effective sliding window, near-linear on typical prose.
//   - Predecessors are plain index tables walked backwards once at the end;
//     no linked nodes, no pointer chasing.
//   - Ties on badness prefer the layout with fewer lines.
package wrap

import (
	"fmt"
	"math"
)

// Wrap computes the minimum-badness layout of words onto lines shaped by
// geom. It accepts functional options to customize the badness model
// (WithSlackExponent, WithoutOverflow, WithMinWidth, ...).
//
// Returns the optimal Result, or an error:
//
//   - ErrNoWords / ErrNoGeometry / ErrNegativeWidth for invalid input,
//     rejected before any layout work;
//   - ErrNoFeasibleLayout when every candidate layout contains an unfit
//     line (for example a multi-word overflow everywhere, or a lone
//     oversized word with WithoutOverflow in effect).
//
// Optimality is over total badness: no breakpoint sequence scores strictly
// lower under the same options. Note that the optimum is not monotone in
// the line width in general: widening every line usually lowers it, but
// when the wider measure still forces the same breakpoints the surviving
// lines simply carry more slack and the total can rise. The default model
// softens this by leaving the final line's slack free; WithStrictLastLine
// trades that away for uniform accounting.
//
// Wrap is pure and synchronous: all mutable state lives in the invocation,
// so independent calls may run concurrently without sharing.
//
// Complexity:
//
//   - Time:  O(N·W·G), N = len(words), W = words on the widest possible
//     line, G = length of the varying geometry head (1 for constant
//     geometry, at most min(len(geom), N)).
//   - Space: O(N·G).
func Wrap(words []Word, geom []Geometry, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate input before touching any DP state.
	if err := validateInput(words, geom, &cfg); err != nil {
		return Result{}, err
	}

	// 3) Fill the DP tables.
	r := newRunner(words, geom, &cfg)
	r.fill()

	// 4) The answer is the cheapest terminal state over all line indices;
	//    none reachable means no admissible layout exists.
	n := len(words)
	bestL := -1
	for l := 0; l <= r.top; l++ {
		if math.IsInf(r.dist[n][l], 1) {
			continue
		}
		if bestL < 0 || r.dist[n][l] < r.dist[n][bestL] ||
			(r.dist[n][l] == r.dist[n][bestL] && r.lines[n][l] < r.lines[n][bestL]) {
			bestL = l
		}
	}
	if bestL < 0 {
		return Result{}, ErrNoFeasibleLayout
	}

	// 5) Reconstruct breakpoints by walking the predecessor tables.
	breaks := r.backtrack(bestL)

	return Result{Badness: r.dist[n][bestL], Breaks: breaks, Lines: len(breaks)}, nil
}

// validateInput applies the invalid-input taxonomy shared by Wrap, FirstFit
// and LayoutBadness. Option constructors already panic on bad values; the
// ErrBadOptions check here guards hand-built Options reaching the model
// through SpanBadness-style calls.
func validateInput(words []Word, geom []Geometry, cfg *Options) error {
	if len(words) == 0 {
		return ErrNoWords
	}
	if len(geom) == 0 {
		return ErrNoGeometry
	}
	for i, w := range words {
		if w.Width < 0 || w.SpaceWidth < 0 {
			return fmt.Errorf("%w: word %d (width=%v, space=%v)", ErrNegativeWidth, i, w.Width, w.SpaceWidth)
		}
	}
	for i, g := range geom {
		if g.Width < 0 || g.Indent < 0 {
			return fmt.Errorf("%w: geometry %d (width=%v, indent=%v)", ErrNegativeWidth, i, g.Width, g.Indent)
		}
	}
	if cfg.SlackExponent < 1 || cfg.OverflowScale <= 0 || cfg.MinWidth < 0 {
		return fmt.Errorf("%w: exponent=%v scale=%v minWidth=%v",
			ErrBadOptions, cfg.SlackExponent, cfg.OverflowScale, cfg.MinWidth)
	}

	return nil
}

// runner holds the mutable state of a single Wrap execution.
//
// The DP state is (prefix length k, line index l): dist[k][l] is the best
// total badness of laying out words[:k] so that the next line would be line
// l. Line indices are capped at top, past which the geometry repeats its
// last entry and further indices are indistinguishable.
type runner struct {
	words []Word     // input words; read-only here
	geom  []Geometry // input geometry; read-only here
	cfg   *Options   // badness model configuration

	top      int         // highest distinct line-index state
	dist     [][]float64 // dist[k][l] = min badness into state (k, l)
	parent   [][]int     // parent[k][l] = line start preceding k on the best path
	fromLine [][]int     // fromLine[k][l] = line-index state at that predecessor
	lines    [][]int     // lines[k][l] = line count of the best path into (k, l)
	maxAvail float64     // widest available width over all geometry entries
}

// newRunner allocates the DP tables for one invocation.
func newRunner(words []Word, geom []Geometry, cfg *Options) *runner {
	n := len(words)

	// A layout of n words has at most n lines, so line-index states beyond n
	// are unreachable even when the geometry sequence is longer.
	top := len(geom) - 1
	if top > n {
		top = n
	}

	r := &runner{
		words:    words,
		geom:     geom,
		cfg:      cfg,
		top:      top,
		dist:     make([][]float64, n+1),
		parent:   make([][]int, n+1),
		fromLine: make([][]int, n+1),
		lines:    make([][]int, n+1),
		maxAvail: math.Inf(-1),
	}

	// dist[0][0] = 0 is the empty-prefix base case; everything else starts at +∞.
	for k := 0; k <= n; k++ {
		r.dist[k] = make([]float64, top+1)
		r.parent[k] = make([]int, top+1)
		r.fromLine[k] = make([]int, top+1)
		r.lines[k] = make([]int, top+1)
		for l := 0; l <= top; l++ {
			r.dist[k][l] = math.Inf(1)
			r.parent[k][l] = -1
			r.fromLine[k][l] = -1
		}
	}
	r.dist[0][0] = 0

	// The widest usable line bounds the feasibility window for every span.
	for _, g := range geom {
		if a := g.Available(); a > r.maxAvail {
			r.maxAvail = a
		}
	}

	return r
}

// fill runs the DP from k=1 to k=N. For each prefix k it scans candidate
// line starts i from k-1 downwards, growing the candidate last line one
// word to the left per step, and relaxes every reachable line-index state
// at i.
func (r *runner) fill() {
	n := len(r.words)
	var content float64
	for k := 1; k <= n; k++ {
		// A transition into k == n closes the layout; its line is terminal.
		last := k == n

		for i := k - 1; i >= 0; i-- {
			// 1) Extend the span [i,k) leftwards, keeping a running content
			//    width. The first step seeds the trailing word (whose space
			//    disappears at end of line unless KeepSpace); every further
			//    step adds an interior word plus its space.
			if i == k-1 {
				content = r.words[i].Width
				if r.words[i].KeepSpace {
					content += r.words[i].SpaceWidth
				}
			} else {
				content += r.words[i].Width + r.words[i].SpaceWidth
			}

			// 2) Feasibility window: a multi-word span wider than the widest
			//    geometry can never fit, and content only grows leftwards.
			//    The single-word span (i == k-1) was already considered, so
			//    the overflow tolerance is preserved.
			if k-i > 1 && content > r.maxAvail {
				break
			}

			// 3) Relax every line-index state that can reach prefix i: the
			//    span becomes line l of the layout, scored under geom[l].
			for l := 0; l <= r.top; l++ {
				if math.IsInf(r.dist[i][l], 1) {
					continue
				}

				b := contentBadness(content, k-i == 1, r.geom[l], r.cfg, last)
				if math.IsInf(b, 1) {
					continue
				}

				// 4) Relax dist[k][next]. Line indices cap at top, where the
				//    geometry has become constant. Ties on badness prefer
				//    fewer lines.
				next := l + 1
				if next > r.top {
					next = r.top
				}
				total := r.dist[i][l] + b
				if total < r.dist[k][next] ||
					(total == r.dist[k][next] && r.lines[i][l]+1 < r.lines[k][next]) {
					r.dist[k][next] = total
					r.parent[k][next] = i
					r.fromLine[k][next] = l
					r.lines[k][next] = r.lines[i][l] + 1
				}
			}
		}
	}
}

// backtrack walks the predecessor tables from state (N, l) to (0, 0) and
// reverses the visited prefixes into the strictly increasing breakpoint
// sequence.
func (r *runner) backtrack(l int) []int {
	n := len(r.words)
	breaks := make([]int, 0, r.lines[n][l])
	for k := n; k > 0; {
		breaks = append(breaks, k)
		k, l = r.parent[k][l], r.fromLine[k][l]
	}
	for lo, hi := 0, len(breaks)-1; lo < hi; lo, hi = lo+1, hi-1 {
		breaks[lo], breaks[hi] = breaks[hi], breaks[lo]
	}

	return breaks
}
