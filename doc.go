// Package linewrap is a paragraph line-breaking toolkit: it splits a
// sequence of measured words into lines of minimal total badness, the
// way high-quality typesetters do.
//
// 🚀 What is linewrap?
//
//	A small, thread-safe, pure-Go library that brings together:
//		• Measured words: width, inter-word space, rune count, sticky spaces
//		• Per-line geometry: width and indent, varying line by line
//		• Optimal breaking: dynamic programming over every breakpoint set
//		• Greedy breaking: a first-fit companion for speed comparisons
//		• Layout scoring: re-score any externally chosen breakpoint set
//
// ✨ Why choose linewrap?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same input, same breaks, every run
//   - Pure Go – no cgo, no hidden deps
//   - Tunable – slack exponent, overflow scale, minimum usable width
//
// Under the hood, everything lives in one subpackage:
//
//	wrap/ — Word, Geometry, Wrap, FirstFit, LayoutBadness and options
//
// Quick ASCII example:
//
//	the quick brown│        the quick│
//	fox jumps      │      brown fox  │
//	               │          jumps  │
//
//	the same words flowed into two different geometries.
//
// Dive into README.md and examples/ for full scenarios.
//
//	go get github.com/katalvlaran/linewrap/wrap
package linewrap
