package kre

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/jusunglee/kre/hangul"
)

// region is a maximal run of matches whose delimited-level spans touch
// the same characters. Matches inside one syllable must be rebuilt
// together: the syllable's unmatched letters and the text between the
// matches all belong to the replaced stretch.
type region struct {
	delSpan Span    // delimited rune coordinates
	linSpan Span    // linear rune coordinates, merged bounds
	locs    [][]int // engine byte locations, in order
}

func (p *Pattern) substitute(repl, s string, o options) (string, int, error) {
	m := newMapping(s, o.boundaries, o.delimiter)
	limit := -1
	if o.count > 0 {
		limit = o.count
	}
	locs := p.re.FindAll(m.linear, 0, len(m.linear), limit)
	if len(locs) == 0 {
		return s, 0, nil
	}

	regions := mergeRegions(m, locs)
	texts := lo.Map(regions, func(r *region, _ int) string {
		return p.regionText(m, r, repl)
	})
	return rebuild(m, regions, texts, o), len(locs), nil
}

func mergeRegions(m *Mapping, locs [][]int) []*region {
	var regions []*region
	for _, loc := range locs {
		i, j := m.linRuneIndex(loc[0]), m.linRuneIndex(loc[1])
		ds := delSpanOf(m, i, j)
		if len(regions) > 0 {
			if last := regions[len(regions)-1]; last.delSpan.End > ds.Start {
				last.delSpan.End = max(last.delSpan.End, ds.End)
				last.linSpan.End = max(last.linSpan.End, j)
				last.locs = append(last.locs, loc)
				continue
			}
		}
		regions = append(regions, &region{
			delSpan: ds,
			linSpan: Span{i, j},
			locs:    [][]int{loc},
		})
	}
	return regions
}

// delSpanOf maps a linear rune span to the delimited characters it
// affects. A zero-width span between two characters affects neither; one
// that falls between the letters of a syllable affects that syllable.
func delSpanOf(m *Mapping, i, j int) Span {
	if i == j {
		switch {
		case i == 0:
			return Span{0, 0}
		case i == len(m.linRunes):
			return Span{len(m.delimited), len(m.delimited)}
		}
		if a, b := m.lin2del[i], m.lin2del[i-1]; a == b {
			return Span{a, a + 1}
		}
		return Span{m.lin2del[i], m.lin2del[i]}
	}
	return Span{m.lin2del[i], m.lin2del[j-1] + 1}
}

// regionText assembles the replaced stretch: the outlying letters of
// partially matched syllables, each match's template expansion, and the
// untouched linear text between matches.
func (p *Pattern) regionText(m *Mapping, r *region, repl string) string {
	pre, post := m.outlyingLetters(r)
	var b strings.Builder
	b.WriteString(pre)
	prev := m.byteAt(r.linSpan.Start)
	for _, loc := range r.locs {
		b.WriteString(m.linear[prev:loc[0]])
		b.WriteString(p.re.Expand(repl, m.linear, loc))
		prev = loc[1]
	}
	b.WriteString(post)
	return b.String()
}

// outlyingLetters returns the letters of the region's first and last
// syllables that sit outside the matched span. Zero-width boundary
// regions own no letters; a zero-width span inside a syllable owns the
// whole syllable.
func (m *Mapping) outlyingLetters(r *region) (pre, post string) {
	if r.delSpan.IsEmpty() {
		return "", ""
	}
	i, j := r.linSpan.Start, r.linSpan.End
	if i == j {
		syl := m.del2linSpan[m.lin2del[i]]
		return m.sliceRunes(syl.Start, i), m.sliceRunes(i, syl.End)
	}
	start := m.del2linSpan[m.lin2del[i]].Start
	end := m.del2linSpan[m.lin2del[j-1]].End
	return m.sliceRunes(start, i), m.sliceRunes(j, end)
}

// rebuild stitches unchanged delimited-level text and region texts back
// together under the syllabify policy, then strips injected delimiters.
func rebuild(m *Mapping, regions []*region, texts []string, o options) string {
	pieces := make([]string, 0, len(regions)+1)
	prev := 0
	for _, r := range regions {
		pieces = append(pieces, string(m.delimited[prev:r.delSpan.Start]))
		prev = r.delSpan.End
	}
	pieces = append(pieces, string(m.delimited[prev:]))

	var out []rune
	for n, text := range texts {
		out = append(out, []rune(pieces[n])...)
		switch o.syllabify {
		case SyllabifyMinimal:
			text = hangul.Syllabify(text)
		case SyllabifyExtended:
			pre, post := "", ""
			if next := pieces[n+1]; next != "" {
				r, size := utf8.DecodeRuneInString(next)
				pieces[n+1] = next[size:]
				post = string(r)
			}
			if len(out) > 0 {
				pre = string(out[len(out)-1])
				out = out[:len(out)-1]
			}
			text = hangul.Syllabify(pre + text + post)
		}
		out = append(out, []rune(text)...)
	}
	out = append(out, []rune(pieces[len(regions)])...)

	s := string(out)
	if m.boundaries {
		s = strings.ReplaceAll(s, string(m.delimiter), "")
	}
	if o.syllabify == SyllabifyFull {
		s = hangul.Syllabify(s)
	}
	return s
}
