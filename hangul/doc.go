// Package hangul decomposes, classifies and recomposes modern Korean
// Hangul.
//
// The package works on two Unicode ranges only: precomposed syllable
// blocks (U+AC00..U+D7A3) and compatibility jamo letters (U+3131..U+3163).
// A syllable block is treated as 2 or 3 letters: a lead consonant, a
// vowel, and an optional trail, where a two-consonant cluster such as ㄺ
// counts as a single trail letter. Decompose, Compose and Combine convert
// between the two representations with plain block arithmetic; Linearize
// and Syllabify lift them to whole strings, with Syllabify running a
// greedy left-to-right automaton that never drops or reorders letters.
//
// Conjoining jamo (U+1100..), Jamo Extended-A/B, halfwidth forms and
// archaic letters are out of scope and pass through every function
// untouched.
package hangul

//go:generate go run github.com/jusunglee/kre/cmd/genjamo --out tables.go
