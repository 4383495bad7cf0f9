// Package wrap breaks a measured word sequence into lines with minimum
// total badness, with per-line geometry, a configurable raggedness model
// and a greedy fallback.
//
// 🚀 What is optimal line breaking?
//
//	Instead of filling each line greedily and hoping, the optimizer looks at
//	the paragraph as a whole and picks the breakpoint sequence whose lines
//	are, in total, the least ragged. It is the whole-paragraph approach of
//	TeX (Knuth–Plass), reduced to whole-word breakpoints:
//	  • Even right margins in ragged-right text
//	  • First-line indents and hanging indents via per-line geometry
//	  • Deterministic, reproducible breaks for diffable output
//
// ✨ Key features:
//   - exact dynamic program with an effective sliding window (near-linear on prose)
//   - per-line-index geometry, last entry repeating forever
//   - scale-invariant badness: 100·(slack/width)^exponent, exponent configurable
//   - lone oversized words placed at a steep penalty, or rejected (WithoutOverflow)
//   - FirstFit greedy companion with the identical API and accounting
//   - LayoutBadness to re-score any breakpoint sequence independently
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linewrap/wrap"
//
//	words := wrap.MonospaceWords("in olden times when wishing still helped", 1)
//	geom := []wrap.Geometry{{Width: 16}}
//
//	res, err := wrap.Wrap(words, geom)
//	if err != nil {
//	  // handle ErrNoFeasibleLayout or invalid input
//	}
//	// res.Breaks partitions the words; res.Badness scores the layout.
//
// Performance:
//
//   - Time:   O(N·W·G), W = words on the widest possible line, G = the
//     varying geometry head (1 for constant geometry)
//   - Memory: O(N·G)
//
// See example_test.go for worked scenarios, including varying first-line
// geometry and overflow handling.
package wrap
