package kre

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/jusunglee/kre/hangul"
)

// Span is a half-open [Start, End) range of rune indices. The zero-width
// span (k, k) marks a boundary; (-1, -1) marks an absent group.
type Span struct {
	Start, End int
}

// IsEmpty reports whether the span has zero width.
func (s Span) IsEmpty() bool { return s.Start == s.End }

// IsAbsent reports whether the span marks a group that did not
// participate in the match.
func (s Span) IsAbsent() bool { return s.Start < 0 }

func (s Span) String() string { return fmt.Sprintf("(%d, %d)", s.Start, s.End) }

// Mapping aligns one input string across three levels: the original text,
// the delimited text (boundary markers injected around Hangul), and the
// linear jamo stream the engine searches. It is built once per operation
// and never shared; all coordinates are rune indices, with byte offsets
// kept for the linear form so engine results convert exactly.
type Mapping struct {
	boundaries bool
	delimiter  rune

	original  string
	origRunes []rune

	delimited []rune
	del2orig  []int // -1 at injected delimiters

	linear    string
	linRunes  []rune
	linStarts []int // byte offset of linRunes[i]; one extra sentinel entry
	lin2del   []int
	lin2orig  []int // -1 at injected delimiters

	del2linSpan  []Span // letters of each delimited rune
	orig2linSpan []Span // letters of each original rune, delimiters excluded
	lin2origSpan []Span // (k, k+1) at letters, zero-width boundary at delimiters
}

// NewMapping builds the alignment for s under the compile-scope options,
// mainly for inspection and tooling; the match operations build their own.
func NewMapping(s string, opts ...Option) (*Mapping, error) {
	o := buildOptions(opts)
	if err := validateDelimiter(o.delimiter); err != nil {
		return nil, err
	}
	return newMapping(s, o.boundaries, o.delimiter), nil
}

func newMapping(s string, boundaries bool, delimiter rune) *Mapping {
	m := &Mapping{
		boundaries: boundaries,
		delimiter:  delimiter,
		original:   s,
		origRunes:  []rune(s),
	}
	m.delimit()
	m.linearize()
	m.buildSpans()
	return m
}

// delimit injects the delimiter around every maximal Hangul run and
// between its characters; adjacent Hangul share exactly one delimiter.
// With boundaries off the delimited form is the original.
func (m *Mapping) delimit() {
	if !m.boundaries {
		m.delimited = m.origRunes
		m.del2orig = lo.RangeFrom(0, len(m.origRunes))
		return
	}
	del := make([]rune, 0, 2*len(m.origRunes)+1)
	d2o := make([]int, 0, cap(del))
	for i, r := range m.origRunes {
		if !hangul.IsHangul(r) {
			del = append(del, r)
			d2o = append(d2o, i)
			continue
		}
		if len(del) == 0 || del[len(del)-1] != m.delimiter {
			del = append(del, m.delimiter)
			d2o = append(d2o, -1)
		}
		del = append(del, r, m.delimiter)
		d2o = append(d2o, i, -1)
	}
	m.delimited = del
	m.del2orig = d2o
}

// linearize expands each syllable of the delimited form into its letters.
func (m *Mapping) linearize() {
	lin := make([]rune, 0, 2*len(m.delimited))
	l2d := make([]int, 0, cap(lin))
	for j, r := range m.delimited {
		if !hangul.IsSyllable(r) {
			lin = append(lin, r)
			l2d = append(l2d, j)
			continue
		}
		letters, _ := hangul.Split(r)
		for _, letter := range letters {
			lin = append(lin, letter)
			l2d = append(l2d, j)
		}
	}
	m.linRunes = lin
	m.lin2del = l2d
	m.lin2orig = lo.Map(l2d, func(j, _ int) int { return m.del2orig[j] })

	var b strings.Builder
	m.linStarts = make([]int, len(lin)+1)
	for i, r := range lin {
		m.linStarts[i] = b.Len()
		b.WriteRune(r)
	}
	m.linStarts[len(lin)] = b.Len()
	m.linear = b.String()
}

func (m *Mapping) buildSpans() {
	m.del2linSpan = forwardSpans(m.lin2del, len(m.delimited))
	m.orig2linSpan = forwardSpans(m.lin2orig, len(m.origRunes))

	m.lin2origSpan = make([]Span, len(m.linRunes))
	prevEnd := 0
	for i, k := range m.lin2orig {
		if k >= 0 {
			m.lin2origSpan[i] = Span{k, k + 1}
			prevEnd = k + 1
		} else {
			m.lin2origSpan[i] = Span{prevEnd, prevEnd}
		}
	}
}

// forwardSpans inverts an index map into per-target half-open ranges.
// Negative entries (delimiters) belong to no target.
func forwardSpans(idx []int, n int) []Span {
	spans := make([]Span, n)
	for i := range spans {
		spans[i] = Span{-1, -1}
	}
	for i, k := range idx {
		if k < 0 {
			continue
		}
		if spans[k].Start < 0 {
			spans[k].Start = i
		}
		spans[k].End = i + 1
	}
	return spans
}

// Original returns the input string.
func (m *Mapping) Original() string { return m.original }

// Delimited returns the boundary-injected form; with boundaries off it
// equals the original.
func (m *Mapping) Delimited() string { return string(m.delimited) }

// Linear returns the jamo stream the engine searches.
func (m *Mapping) Linear() string { return m.linear }

// LinearSpan returns the linear range holding the letters of original
// rune k, surrounding delimiters excluded.
func (m *Mapping) LinearSpan(k int) Span { return m.orig2linSpan[k] }

// OriginalSpan translates a linear rune span to original coordinates. A
// span properly inside a syllable widens to that syllable; zero-width
// spans land on the nearest boundary, or on the enclosing syllable's
// (k, k+1) when they fall between its letters.
func (m *Mapping) OriginalSpan(sp Span) Span {
	return m.originalSpan(sp.Start, sp.End)
}

func (m *Mapping) originalSpan(i, j int) Span {
	switch {
	case i == j && i == 0:
		return Span{0, 0}
	case i == j && i == len(m.linRunes):
		n := len(m.origRunes)
		return Span{n, n}
	case i == j:
		return Span{m.lin2origSpan[i].Start, m.lin2origSpan[i-1].End}
	default:
		return Span{m.lin2origSpan[i].Start, m.lin2origSpan[j-1].End}
	}
}

// linRuneIndex converts an engine byte offset into a linear rune index.
// Engine offsets always land on rune boundaries, so the search is exact.
func (m *Mapping) linRuneIndex(byteOff int) int {
	i, _ := slices.BinarySearch(m.linStarts, byteOff)
	return i
}

// byteAt converts a linear rune index to its byte offset.
func (m *Mapping) byteAt(runeIdx int) int { return m.linStarts[runeIdx] }

// sliceRunes returns the linear text between two rune indices.
func (m *Mapping) sliceRunes(i, j int) string {
	return m.linear[m.linStarts[i]:m.linStarts[j]]
}

// linPos maps original rune index k to the linear index where a window
// starting at k opens: the first letter of k, widened to take in an
// immediately preceding delimiter so boundary patterns can anchor there.
// k == len(original) maps to the end of the stream.
func (m *Mapping) linPos(k int) int {
	if k >= len(m.origRunes) {
		return len(m.linRunes)
	}
	i := m.orig2linSpan[k].Start
	if i > 0 && m.lin2orig[i-1] < 0 {
		i--
	}
	return i
}

// linEnd maps original rune index k to the linear index where a window
// ending before k closes: the first letter of k, which keeps the shared
// delimiter before k inside the window.
func (m *Mapping) linEnd(k int) int {
	if k >= len(m.origRunes) {
		return len(m.linRunes)
	}
	return m.orig2linSpan[k].Start
}

// retryOffsets lists the anchored attempt positions for an explicit pos:
// the widened window start, then each further letter of the syllable
// holding pos.
func (m *Mapping) retryOffsets(pos int) []int {
	if pos >= len(m.origRunes) {
		return []int{len(m.linRunes)}
	}
	start := m.linPos(pos)
	sp := m.orig2linSpan[pos]
	offs := make([]int, 0, sp.End-start)
	for i := start; i < sp.End; i++ {
		offs = append(offs, i)
	}
	return offs
}
