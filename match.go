package kre

import (
	"fmt"

	"github.com/samber/lo"
)

// Match is one result reported in original-string coordinates. It is
// immutable once built; the untranslated linear-coordinate spans stay
// available through LinearSpan and LinearText for callers that need to
// see what the engine actually matched.
type Match struct {
	pattern *Pattern
	mapping *Mapping
	pos     int
	endpos  int

	regs    []Span // original coordinates per group
	linRegs []Span // linear rune coordinates per group
	literal bool   // zero-width groups report "" content
}

func newMatch(p *Pattern, m *Mapping, loc []int, o options, pos, endpos int) *Match {
	n := len(loc) / 2
	mt := &Match{
		pattern: p,
		mapping: m,
		pos:     pos,
		endpos:  endpos,
		regs:    make([]Span, n),
		linRegs: make([]Span, n),
		literal: o.literalEmpty,
	}
	for g := 0; g < n; g++ {
		bs, be := loc[2*g], loc[2*g+1]
		if bs < 0 {
			mt.regs[g] = Span{-1, -1}
			mt.linRegs[g] = Span{-1, -1}
			continue
		}
		i, j := m.linRuneIndex(bs), m.linRuneIndex(be)
		mt.linRegs[g] = Span{i, j}
		sp := m.originalSpan(i, j)
		if i == j && !sp.IsEmpty() {
			switch o.emptySpan {
			case EmptySpanStart:
				sp.End = sp.Start
			case EmptySpanEnd:
				sp.Start = sp.End
			}
		}
		mt.regs[g] = sp
	}
	return mt
}

// Group returns the text of group n in original coordinates; group 0 is
// the whole match. Absent groups return "".
func (m *Match) Group(n int) string {
	s, _ := m.GroupOK(n)
	return s
}

// GroupOK returns the text of group n and whether the group participated
// in the match, telling an absent group apart from a matched-but-empty
// one.
func (m *Match) GroupOK(n int) (string, bool) {
	sp := m.regs[n]
	if sp.IsAbsent() {
		return "", false
	}
	if m.linRegs[n].IsEmpty() && m.literal {
		return "", true
	}
	return string(m.mapping.origRunes[sp.Start:sp.End]), true
}

// GroupByName returns the text of a named group.
func (m *Match) GroupByName(name string) (string, bool) {
	n, ok := m.pattern.nameIdx[name]
	if !ok {
		return "", false
	}
	return m.GroupOK(n)
}

// Groups returns the texts of groups 1..N; absent groups are "".
func (m *Match) Groups() []string {
	return lo.Map(m.regs[1:], func(_ Span, i int) string {
		return m.Group(i + 1)
	})
}

// GroupMap returns named group texts keyed by name.
func (m *Match) GroupMap() map[string]string {
	out := make(map[string]string, len(m.pattern.nameIdx))
	for name, n := range m.pattern.nameIdx {
		out[name] = m.Group(n)
	}
	return out
}

// Span returns the original-coordinate span of group n; (-1, -1) when the
// group is absent.
func (m *Match) Span(n int) Span { return m.regs[n] }

// SpanOK returns the span of group n and whether the group participated
// in the match.
func (m *Match) SpanOK(n int) (Span, bool) {
	sp := m.regs[n]
	return sp, !sp.IsAbsent()
}

// Start returns the span start of group n.
func (m *Match) Start(n int) int { return m.regs[n].Start }

// End returns the span end of group n.
func (m *Match) End(n int) int { return m.regs[n].End }

// Regs returns all group spans, the whole match first.
func (m *Match) Regs() []Span {
	return append([]Span(nil), m.regs...)
}

// LinearSpan returns the untranslated linear rune span of group n.
func (m *Match) LinearSpan(n int) Span { return m.linRegs[n] }

// LinearText returns the engine-level matched text of group n.
func (m *Match) LinearText(n int) string {
	sp := m.linRegs[n]
	if sp.IsAbsent() {
		return ""
	}
	return m.mapping.sliceRunes(sp.Start, sp.End)
}

// Input returns the original string the match was found in.
func (m *Match) Input() string { return m.mapping.original }

// Pos returns the window start the match was produced under.
func (m *Match) Pos() int { return m.pos }

// Endpos returns the window end the match was produced under.
func (m *Match) Endpos() int { return m.endpos }

func (m *Match) String() string {
	return fmt.Sprintf("kre.Match(span=%v, match=%q)", m.regs[0], m.Group(0))
}
