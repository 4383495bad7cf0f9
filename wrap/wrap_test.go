package wrap_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/linewrap/wrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrap_EmptyInput verifies the invalid-input sentinels for empty word
// and geometry sequences.
func TestWrap_EmptyInput(t *testing.T) {
	_, err := wrap.Wrap(nil, []wrap.Geometry{{Width: 10}})
	assert.ErrorIs(t, err, wrap.ErrNoWords, "empty word sequence should error")

	_, err = wrap.Wrap([]wrap.Word{{Width: 5}}, nil)
	assert.ErrorIs(t, err, wrap.ErrNoGeometry, "empty geometry sequence should error")
}

// TestWrap_NegativeWidth ensures negative word or space widths are rejected
// before any layout work, never silently coerced.
func TestWrap_NegativeWidth(t *testing.T) {
	geom := []wrap.Geometry{{Width: 10}}

	_, err := wrap.Wrap([]wrap.Word{{Width: -1}}, geom)
	assert.ErrorIs(t, err, wrap.ErrNegativeWidth, "negative word width must error")

	_, err = wrap.Wrap([]wrap.Word{{Width: 1, SpaceWidth: -2}}, geom)
	assert.ErrorIs(t, err, wrap.ErrNegativeWidth, "negative space width must error")
}

// TestWrap_NegativeGeometry ensures negative geometry dimensions are invalid
// input, distinct from the zero-width case that is merely infeasible.
func TestWrap_NegativeGeometry(t *testing.T) {
	words := []wrap.Word{{Width: 5, SpaceWidth: 1}}

	_, err := wrap.Wrap(words, []wrap.Geometry{{Width: -3}})
	assert.ErrorIs(t, err, wrap.ErrNegativeWidth, "negative geometry width must error")

	_, err = wrap.Wrap(words, []wrap.Geometry{{Width: 10, Indent: -1}})
	assert.ErrorIs(t, err, wrap.ErrNegativeWidth, "negative indent must error")
}

// TestWrap_OptionPanics ensures option constructors reject out-of-range
// values immediately.
func TestWrap_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { wrap.WithSlackExponent(0.5)(&wrap.Options{}) }, "exponent < 1 must panic")
	assert.Panics(t, func() { wrap.WithOverflowScale(0)(&wrap.Options{}) }, "scale <= 0 must panic")
	assert.Panics(t, func() { wrap.WithMinWidth(-1)(&wrap.Options{}) }, "negative min width must panic")
}

// TestWrap_ExactFitSingleLine checks the tight three-word fit: content
// 10+2+10+2+10 = 34 exactly fills the 34-wide line, one line, zero badness.
func TestWrap_ExactFitSingleLine(t *testing.T) {
	words := wrap.Words{}.Add(10, 2, 1).Add(10, 2, 1).Add(10, 2, 1)
	geom := []wrap.Geometry{{Width: 34}}

	res, err := wrap.Wrap(words, geom)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, res.Breaks, "all three words fit on one line")
	assert.Equal(t, 1, res.Lines)
	assert.Equal(t, 0.0, res.Badness, "exact fit must cost nothing")
}

// TestWrap_LoneOversizedWord verifies the single-word overflow tolerance: a
// word of width 50 on a 10-wide line is placed, with a finite steep penalty.
func TestWrap_LoneOversizedWord(t *testing.T) {
	words := []wrap.Word{{Width: 50}}
	geom := []wrap.Geometry{{Width: 10}}

	res, err := wrap.Wrap(words, geom)
	require.NoError(t, err, "overflow tolerance must rescue the lone word")
	assert.Equal(t, []int{1}, res.Breaks)
	// OverflowScale·(1+excess/available)^3 = 1000·(1+40/10)³ = 125000.
	assert.InDelta(t, 125000, res.Badness, 1e-9)
}

// TestWrap_OverflowDisabled ensures WithoutOverflow turns the same input
// into a no-feasible-layout outcome instead of an overflowing layout.
func TestWrap_OverflowDisabled(t *testing.T) {
	words := []wrap.Word{{Width: 50}}
	geom := []wrap.Geometry{{Width: 10}}

	_, err := wrap.Wrap(words, geom, wrap.WithoutOverflow())
	assert.ErrorIs(t, err, wrap.ErrNoFeasibleLayout)
}

// TestWrap_ZeroWidthGeometry checks that an unusable line width flows into
// the infeasible-layout path, not a crash, even with overflow tolerance on.
func TestWrap_ZeroWidthGeometry(t *testing.T) {
	words := []wrap.Word{{Width: 5, SpaceWidth: 1}}

	_, err := wrap.Wrap(words, []wrap.Geometry{{Width: 0}})
	assert.ErrorIs(t, err, wrap.ErrNoFeasibleLayout, "zero width line fits nothing")

	_, err = wrap.Wrap(words, []wrap.Geometry{{Width: 10, Indent: 12}})
	assert.ErrorIs(t, err, wrap.ErrNoFeasibleLayout, "indent beyond width fits nothing")
}

// TestWrap_MinWidth verifies that lines narrower than WithMinWidth are
// unfit, routing the input into the infeasible path.
func TestWrap_MinWidth(t *testing.T) {
	words := []wrap.Word{{Width: 5, SpaceWidth: 1}}
	geom := []wrap.Geometry{{Width: 20}}

	_, err := wrap.Wrap(words, geom, wrap.WithMinWidth(25))
	assert.ErrorIs(t, err, wrap.ErrNoFeasibleLayout)

	res, err := wrap.Wrap(words, geom, wrap.WithMinWidth(15))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Breaks)
}

// TestWrap_VaryingFirstLine exercises a narrow first line followed by wide
// continuation lines: the optimizer must put fewer words on line one.
func TestWrap_VaryingFirstLine(t *testing.T) {
	words := wrap.Words{}.Add(18, 2, 1).Add(18, 2, 1).Add(18, 2, 1)
	geom := []wrap.Geometry{{Width: 20}, {Width: 40}}

	res, err := wrap.Wrap(words, geom)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, res.Breaks, "one word on the narrow first line, two on the wide second")
	// Line 0: slack 2 of 20 → 100·(0.1)³; line 1 is terminal, slack free.
	assert.InDelta(t, 0.1, res.Badness, 1e-9)
}

// TestWrap_IndentEquivalence checks that Geometry.Indent reduces the usable
// width exactly like a narrower Width.
func TestWrap_IndentEquivalence(t *testing.T) {
	words := wrap.Words{}.Add(8, 2, 1).Add(8, 2, 1).Add(8, 2, 1)

	plain, err := wrap.Wrap(words, []wrap.Geometry{{Width: 20}})
	require.NoError(t, err)
	indented, err := wrap.Wrap(words, []wrap.Geometry{{Width: 30, Indent: 10}})
	require.NoError(t, err)

	assert.Equal(t, plain.Breaks, indented.Breaks)
	assert.InDelta(t, plain.Badness, indented.Badness, 1e-9)
}

// TestWrap_KeepSpace verifies trailing-space accounting: a KeepSpace word
// at end of line charges its space and can force an extra break.
func TestWrap_KeepSpace(t *testing.T) {
	geom := []wrap.Geometry{{Width: 22}}

	// Without KeepSpace the trailing space disappears: 10+2+10 = 22 fits.
	plain := wrap.Words{}.Add(10, 2, 1).Add(10, 2, 1)
	res, err := wrap.Wrap(plain, geom)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, res.Breaks)

	// With KeepSpace on the second word the line costs 24 and must split.
	sticky := wrap.Words{}.Add(10, 2, 1).AddKeepSpace(10, 2, 1)
	res, err = wrap.Wrap(sticky, geom)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Breaks)
}

// TestWrap_TieBreakFewerLines verifies the tie-break policy: among layouts
// of equal badness the optimizer returns the one with fewer lines.
func TestWrap_TieBreakFewerLines(t *testing.T) {
	// Both [2] and [1 2] cost exactly zero here: the single line fills the
	// width completely, and the two-line variant ends each line at an exact
	// fit with the terminal line free.
	words := []wrap.Word{{Width: 40}, {Width: 0}}
	geom := []wrap.Geometry{{Width: 40}}

	alt, err := wrap.LayoutBadness(words, geom, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, 0.0, alt, "fixture must make the two-line layout cost zero too")

	res, err := wrap.Wrap(words, geom)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, res.Breaks, "equal badness must prefer fewer lines")
	assert.Equal(t, 0.0, res.Badness)
}

// TestWrap_ConsistencyWithLayoutBadness re-scores the optimizer's own
// breakpoints independently and expects the identical total.
func TestWrap_ConsistencyWithLayoutBadness(t *testing.T) {
	words := wrap.MonospaceWords("the quick brown fox jumps over the lazy dog", 1)
	geom := []wrap.Geometry{{Width: 13}}

	res, err := wrap.Wrap(words, geom)
	require.NoError(t, err)
	require.Equal(t, len(words), res.Breaks[len(res.Breaks)-1], "breaks must end at the word count")
	for i := 1; i < len(res.Breaks); i++ {
		assert.Greater(t, res.Breaks[i], res.Breaks[i-1], "breaks must be strictly increasing")
	}

	total, err := wrap.LayoutBadness(words, geom, res.Breaks)
	require.NoError(t, err)
	assert.InDelta(t, res.Badness, total, 1e-9, "reported badness must equal the recomputed sum")
}

// TestWrap_StrictLastLineBeatsGreedy pins a case where the whole-paragraph
// optimum differs from first-fit: greedy fills the first line completely
// and pays for a very short second line.
func TestWrap_StrictLastLineBeatsGreedy(t *testing.T) {
	words := wrap.Words{}.Add(10, 1, 1).Add(8, 1, 1).Add(9, 1, 1)
	geom := []wrap.Geometry{{Width: 19}}

	opt, err := wrap.Wrap(words, geom, wrap.WithStrictLastLine())
	require.NoError(t, err)
	greedy, err := wrap.FirstFit(words, geom, wrap.WithStrictLastLine())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, opt.Breaks, "optimizer balances both lines")
	assert.Equal(t, []int{2, 3}, greedy.Breaks, "first-fit fills the first line")
	assert.Less(t, opt.Badness, greedy.Badness)
}

// TestWrap_ConcurrentInvocations runs independent optimizations in parallel
// and expects every result to match the serial reference.
func TestWrap_ConcurrentInvocations(t *testing.T) {
	words := wrap.MonospaceWords("close by the castle lay a great dark forest and under an old lime tree was a well", 1)
	geom := []wrap.Geometry{{Width: 14}, {Width: 22}}

	ref, err := wrap.Wrap(words, geom)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				res, err := wrap.Wrap(words, geom)
				assert.NoError(t, err)
				assert.Equal(t, ref.Breaks, res.Breaks)
				assert.Equal(t, ref.Badness, res.Badness)
			}
		}()
	}
	wg.Wait()
}
