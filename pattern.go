package kre

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/jusunglee/kre/hangul"
)

// Pattern is a compiled jamo-level pattern. The pattern text is
// linearized once at compile time; every operation builds a fresh Mapping
// for its input, runs the engine over the linear stream and translates
// the result back. A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	source  string
	linear  string
	opts    options
	re      Regexp
	names   []string
	nameIdx map[string]int
}

func compilePattern(pattern string, o options) (*Pattern, error) {
	o = o.compileScope()
	if err := validateDelimiter(o.delimiter); err != nil {
		return nil, err
	}
	eng := o.engine
	if eng == nil {
		eng = DefaultEngine
	}
	linear := hangul.Linearize(pattern)
	re, err := eng.Compile(linear, o.flags)
	if err != nil {
		return nil, fmt.Errorf("kre: compile %q: %w", pattern, err)
	}
	names := re.GroupNames()
	nameIdx := make(map[string]int)
	for i, name := range names {
		if name != "" {
			nameIdx[name] = i
		}
	}
	return &Pattern{
		source:  pattern,
		linear:  linear,
		opts:    o,
		re:      re,
		names:   names,
		nameIdx: nameIdx,
	}, nil
}

// String returns the pattern text as given, syllables uncracked.
func (p *Pattern) String() string { return p.source }

// LinearSource returns the linearized pattern handed to the engine.
func (p *Pattern) LinearSource() string { return p.linear }

// Flags returns the flags the pattern was compiled with.
func (p *Pattern) Flags() Flags { return p.opts.flags }

// Boundaries reports whether the pattern matches against a
// boundary-injected stream, and with which delimiter.
func (p *Pattern) Boundaries() (bool, rune) {
	return p.opts.boundaries, p.opts.delimiter
}

// NumGroups counts capturing groups.
func (p *Pattern) NumGroups() int { return p.re.NumGroups() }

// GroupIndex maps group names to group numbers.
func (p *Pattern) GroupIndex() map[string]int {
	return lo.Assign(map[string]int{}, p.nameIdx)
}

// callOptions merges per-call options onto the pattern's own, with the
// compile-scope fields pinned to their compiled values.
func (p *Pattern) callOptions(opts []Option) options {
	o := p.opts
	for _, opt := range opts {
		opt(&o)
	}
	o.flags = p.opts.flags
	o.boundaries = p.opts.boundaries
	o.delimiter = p.opts.delimiter
	o.engine = p.opts.engine
	return o
}

// window is a resolved search range over one mapping.
type window struct {
	pos, endpos int   // original rune coordinates
	start, end  int   // linear byte offsets
	trials      []int // linear byte offsets for anchored attempts
}

// resolveWindow validates pos/endpos against the input and translates
// them to the linear stream. With an explicit pos the anchored trials
// walk the letters of the syllable holding pos; otherwise there is a
// single attempt at the window start.
func resolveWindow(m *Mapping, o options) (window, error) {
	n := len(m.origRunes)
	w := window{pos: 0, endpos: n}
	if o.hasPos {
		if o.pos < 0 || o.pos > n {
			return w, fmt.Errorf("pos %d with %d runes: %w", o.pos, n, ErrIndexOutOfRange)
		}
		w.pos = o.pos
	}
	if o.hasEndpos {
		if o.endpos < 0 || o.endpos > n {
			return w, fmt.Errorf("endpos %d with %d runes: %w", o.endpos, n, ErrIndexOutOfRange)
		}
		w.endpos = o.endpos
	}

	w.start = m.byteAt(m.linPos(w.pos))
	w.end = m.byteAt(m.linEnd(w.endpos))
	if w.end < w.start {
		w.end = w.start
	}

	if o.hasPos {
		w.trials = lo.Map(m.retryOffsets(w.pos), func(i, _ int) int {
			return m.byteAt(i)
		})
	} else {
		w.trials = []int{w.start}
	}
	return w, nil
}

// Search returns the first match anywhere in s, or nil.
func (p *Pattern) Search(s string, opts ...Option) (*Match, error) {
	o := p.callOptions(opts)
	m := newMapping(s, o.boundaries, o.delimiter)
	w, err := resolveWindow(m, o)
	if err != nil {
		return nil, err
	}
	loc := p.re.Find(m.linear, w.start, w.end)
	if loc == nil {
		return nil, nil
	}
	return newMatch(p, m, loc, o, w.pos, w.endpos), nil
}

// Match returns a match anchored at the window start, or nil. With an
// explicit pos the anchor retries at each letter of the syllable holding
// pos and the first success wins.
func (p *Pattern) Match(s string, opts ...Option) (*Match, error) {
	return p.anchored(s, false, opts)
}

// FullMatch returns a match spanning the entire window, or nil.
func (p *Pattern) FullMatch(s string, opts ...Option) (*Match, error) {
	return p.anchored(s, true, opts)
}

func (p *Pattern) anchored(s string, full bool, opts []Option) (*Match, error) {
	o := p.callOptions(opts)
	m := newMapping(s, o.boundaries, o.delimiter)
	w, err := resolveWindow(m, o)
	if err != nil {
		return nil, err
	}
	for _, start := range w.trials {
		if start > w.end {
			break
		}
		var loc []int
		if full {
			loc = p.re.FullMatch(m.linear, start, w.end)
		} else {
			loc = p.re.Match(m.linear, start, w.end)
		}
		if loc != nil {
			return newMatch(p, m, loc, o, w.pos, w.endpos), nil
		}
	}
	return nil, nil
}

// FindIter returns every non-overlapping match in the window, leftmost
// first; nil when there are none.
func (p *Pattern) FindIter(s string, opts ...Option) ([]*Match, error) {
	o := p.callOptions(opts)
	m := newMapping(s, o.boundaries, o.delimiter)
	w, err := resolveWindow(m, o)
	if err != nil {
		return nil, err
	}
	locs := p.re.FindAll(m.linear, w.start, w.end, -1)
	if len(locs) == 0 {
		return nil, nil
	}
	return lo.Map(locs, func(loc []int, _ int) *Match {
		return newMatch(p, m, loc, o, w.pos, w.endpos)
	}), nil
}

// FindAll returns the whole-match texts of every non-overlapping match,
// in original coordinates; nil when there are none.
func (p *Pattern) FindAll(s string, opts ...Option) ([]string, error) {
	ms, err := p.FindIter(s, opts...)
	if err != nil || ms == nil {
		return nil, err
	}
	return lo.Map(ms, func(m *Match, _ int) string {
		return m.Group(0)
	}), nil
}

// Sub replaces matches of the pattern in s with the expansion of repl,
// recomposing per the syllabify policy.
func (p *Pattern) Sub(repl, s string, opts ...Option) (string, error) {
	out, _, err := p.Subn(repl, s, opts...)
	return out, err
}

// Subn is Sub plus the number of replacements made.
func (p *Pattern) Subn(repl, s string, opts ...Option) (string, int, error) {
	o := p.callOptions(opts)
	return p.substitute(repl, s, o)
}

// windowOpts rebuilds the option list with the window bounds appended;
// endpos < 0 means the end of s.
func windowOpts(opts []Option, pos, endpos int) []Option {
	out := make([]Option, 0, len(opts)+2)
	out = append(out, opts...)
	out = append(out, WithPos(pos))
	if endpos >= 0 {
		out = append(out, WithEndpos(endpos))
	}
	return out
}

// SearchAt is Search over the window [pos, endpos); endpos < 0 means the
// end of s.
func (p *Pattern) SearchAt(s string, pos, endpos int, opts ...Option) (*Match, error) {
	return p.Search(s, windowOpts(opts, pos, endpos)...)
}

// MatchAt is Match over the window [pos, endpos) with in-syllable retry.
func (p *Pattern) MatchAt(s string, pos, endpos int, opts ...Option) (*Match, error) {
	return p.Match(s, windowOpts(opts, pos, endpos)...)
}

// FullMatchAt is FullMatch over the window [pos, endpos).
func (p *Pattern) FullMatchAt(s string, pos, endpos int, opts ...Option) (*Match, error) {
	return p.FullMatch(s, windowOpts(opts, pos, endpos)...)
}

// FindIterAt is FindIter over the window [pos, endpos).
func (p *Pattern) FindIterAt(s string, pos, endpos int, opts ...Option) ([]*Match, error) {
	return p.FindIter(s, windowOpts(opts, pos, endpos)...)
}
