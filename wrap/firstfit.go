package wrap

import "math"

// FirstFit computes a greedy first-fit layout of words onto lines shaped by
// geom: each line absorbs words until the next word would no longer fit.
// This is the classical fast wrap — O(N) time, O(1) extra space beyond the
// result — and an upper bound for Wrap: FirstFit never produces a layout
// with lower total badness than Wrap on the same input.
//
// Validation, the badness accounting and the Result shape match Wrap
// exactly, so the two are interchangeable at the call site. Use FirstFit
// when speed matters more than evenness; use Wrap for paragraph-quality
// raggedness.
//
// Errors mirror Wrap: ErrNoWords, ErrNoGeometry, ErrNegativeWidth for
// invalid input, ErrNoFeasibleLayout when a produced line is unfit (a lone
// oversized word with WithoutOverflow in effect, or a line narrower than
// WithMinWidth).
func FirstFit(words []Word, geom []Geometry, opts ...Option) (Result, error) {
	// 1) Build options and validate input, identically to Wrap.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if err := validateInput(words, geom, &cfg); err != nil {
		return Result{}, err
	}

	n := len(words)
	breaks := make([]int, 0, 8)
	var badness float64

	// 2) Fill lines left to right. Each line takes at least one word.
	start, line := 0, 0
	for start < n {
		g := geometryAt(geom, line)
		avail := g.Available()

		// base tracks widths plus interior spaces of words[start:end].
		base := words[start].Width
		end := start + 1
		for end < n {
			nextBase := base + words[end-1].SpaceWidth + words[end].Width
			candidate := nextBase
			if words[end].KeepSpace {
				candidate += words[end].SpaceWidth
			}
			if candidate > avail {
				break
			}
			base = nextBase
			end++
		}

		// 3) Score the produced line with the shared model. The terminal
		//    line's slack follows the same rule as in Wrap.
		span := words[start:end]
		b := spanBadness(span, g, &cfg, end == n)
		if math.IsInf(b, 1) {
			return Result{}, ErrNoFeasibleLayout
		}
		badness += b

		breaks = append(breaks, end)
		start = end
		line++
	}

	return Result{Badness: badness, Breaks: breaks, Lines: len(breaks)}, nil
}
