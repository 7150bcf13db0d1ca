package kre

import (
	"regexp"

	"github.com/samber/lo"
)

// Engine compiles expressions for the linear jamo stream. The mapping
// layer never inspects how matching happens, so any conventional regex
// facility can sit behind this interface. Implementations must be safe
// for concurrent use.
type Engine interface {
	// Compile builds a matcher for expr. flags are rendered in the
	// engine's native form; the default engine understands IgnoreCase,
	// Multiline, DotAll and Ungreedy.
	Compile(expr string, flags Flags) (Regexp, error)
	// Quote escapes s so it matches literally.
	Quote(s string) string
}

// Regexp is one compiled expression of an Engine. Spans are byte-offset
// pairs into the searched string in regexp.FindStringSubmatchIndex form:
// entries 2n and 2n+1 bound group n, -1 marks an absent group. Windowed
// calls must behave as if s[pos:end] were the whole subject, with offsets
// reported relative to s.
type Regexp interface {
	// Find reports the leftmost match in s[pos:end], nil when none.
	Find(s string, pos, end int) []int
	// FindAll reports successive non-overlapping matches, at most limit
	// of them when limit >= 0.
	FindAll(s string, pos, end, limit int) [][]int
	// Match is Find anchored at pos.
	Match(s string, pos, end int) []int
	// FullMatch is Find anchored at pos and end.
	FullMatch(s string, pos, end int) []int
	// Expand substitutes group references in template, engine-native
	// syntax, using a match previously reported for s.
	Expand(template, s string, match []int) string
	// NumGroups counts capturing groups, the whole match excluded.
	NumGroups() int
	// GroupNames lists group names by index; index 0 and unnamed groups
	// are empty strings.
	GroupNames() []string
}

// stdEngine adapts the regexp package. Anchored variants are compiled up
// front by wrapping the expression in \A(?:...) and \A(?:...)\z, which
// leaves group numbering untouched.
type stdEngine struct{}

// DefaultEngine backs every pattern not compiled with WithEngine.
var DefaultEngine Engine = stdEngine{}

func (stdEngine) Compile(expr string, flags Flags) (Regexp, error) {
	prefixed := flags.prefix() + expr
	re, err := regexp.Compile(prefixed)
	if err != nil {
		return nil, err
	}
	anchored, err := regexp.Compile(flags.prefix() + `\A(?:` + expr + `)`)
	if err != nil {
		return nil, err
	}
	full, err := regexp.Compile(flags.prefix() + `\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, err
	}
	return &stdRegexp{re: re, anchored: anchored, full: full}, nil
}

func (stdEngine) Quote(s string) string {
	return regexp.QuoteMeta(s)
}

type stdRegexp struct {
	re       *regexp.Regexp
	anchored *regexp.Regexp
	full     *regexp.Regexp
}

func (r *stdRegexp) Find(s string, pos, end int) []int {
	return shift(r.re.FindStringSubmatchIndex(s[pos:end]), pos)
}

func (r *stdRegexp) FindAll(s string, pos, end, limit int) [][]int {
	if limit == 0 {
		return nil
	}
	if limit < 0 {
		limit = -1
	}
	locs := r.re.FindAllStringSubmatchIndex(s[pos:end], limit)
	return lo.Map(locs, func(loc []int, _ int) []int {
		return shift(loc, pos)
	})
}

func (r *stdRegexp) Match(s string, pos, end int) []int {
	return shift(r.anchored.FindStringSubmatchIndex(s[pos:end]), pos)
}

func (r *stdRegexp) FullMatch(s string, pos, end int) []int {
	return shift(r.full.FindStringSubmatchIndex(s[pos:end]), pos)
}

func (r *stdRegexp) Expand(template, s string, match []int) string {
	return string(r.re.ExpandString(nil, template, s, match))
}

func (r *stdRegexp) NumGroups() int {
	return r.re.NumSubexp()
}

func (r *stdRegexp) GroupNames() []string {
	return r.re.SubexpNames()
}

// shift rebases a window-relative location onto the full string.
func shift(loc []int, pos int) []int {
	if loc == nil || pos == 0 {
		return loc
	}
	return lo.Map(loc, func(v, _ int) int {
		if v < 0 {
			return v
		}
		return v + pos
	})
}
