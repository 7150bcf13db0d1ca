// Package kre provides regular expression matching over Korean text at
// the letter (jamo) level.
//
// A Hangul syllable like 한 is one rune but three letters (ㅎ, ㅏ, ㄴ).
// Ordinary regexp packages see only the rune, so a pattern like ㅎ never
// matches 한글. kre decomposes both pattern and input into letter
// sequences, runs a stock regexp engine over the letters, and maps every
// result back to positions in the original string:
//
//	m, _ := kre.Search("ㅎ", "한글")
//	m.Span(0) // kre.Span{0, 1}, i.e. the syllable 한
//
// Positions always refer to runes of the original input. A span covers
// whole syllables whenever the underlying letter match touches any part
// of them.
//
// Matching by letters alone erases syllable boundaries: ㅁ자 and 므하
// linearize to the same four letters. WithBoundaries inserts a delimiter
// rune (default ;) between syllables so patterns can anchor on the
// boundary, e.g. ㄹ; matches a syllable-final ㄹ only.
//
// Sub and Subn splice replacement letters into the letter stream and
// recompose the result into syllables. WithSyllabify selects how far
// recomposition reaches beyond the replaced region; the default rebuilds
// only the affected part.
//
// Compound trailing consonants such as ㄺ are treated as single letters.
// Decomposing 닭 yields ㄷ, ㅏ, ㄺ, so the pattern ㄱ does not match it,
// while recomposition still merges an adjacent ㄹ and ㄱ into ㄺ when they
// form a valid final.
package kre
