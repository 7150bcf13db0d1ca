package kre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchGroupsAscii(t *testing.T) {
	// No Hangul anywhere, so spans coincide with plain regexp output:
	// a named group, an absent optional group and a zero-width group.
	p := MustCompile(`a(?P<f>f)(p)?(.*?)`)
	m, err := p.Search("sdaflkj")
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, []Span{{2, 4}, {3, 4}, {-1, -1}, {4, 4}}, m.Regs())
	assert.Equal(t, "af", m.Group(0))
	assert.Equal(t, "f", m.Group(1))
	assert.Equal(t, []string{"f", "", ""}, m.Groups())

	got, ok := m.GroupOK(2)
	assert.False(t, ok, "optional group that matched nothing is absent")
	assert.Empty(t, got)

	got, ok = m.GroupOK(3)
	assert.True(t, ok, "zero-width group still participates")
	assert.Empty(t, got)

	sp, ok := m.SpanOK(2)
	assert.False(t, ok)
	assert.Equal(t, Span{-1, -1}, sp)

	sp, ok = m.SpanOK(3)
	assert.True(t, ok)
	assert.Equal(t, Span{4, 4}, sp)
}

func TestMatchGroupsSubsyllable(t *testing.T) {
	// Each group matches letters inside syllables; reported spans widen
	// to the syllables the letters came from.
	p := MustCompile(`(?P<첫째>ㄱ).(ㅡ)(?P<h>h)?.*(?P<둘째>그)`)
	m, err := p.Search(nonsense)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, []Span{{1, 7}, {1, 2}, {2, 3}, {-1, -1}, {6, 7}}, m.Regs())
	assert.Equal(t, "ㄱ으하느늘근", m.Group(0))
	assert.Equal(t, []string{"ㄱ", "으", "", "근"}, m.Groups())
	assert.Equal(t, Span{2, 3}, m.Span(2))
	assert.Equal(t, 6, m.Start(4))
	assert.Equal(t, 7, m.End(4))

	got, ok := m.GroupByName("첫째")
	assert.True(t, ok)
	assert.Equal(t, "ㄱ", got)

	got, ok = m.GroupByName("둘째")
	assert.True(t, ok)
	assert.Equal(t, "근", got)

	_, ok = m.GroupByName("h")
	assert.False(t, ok)

	_, ok = m.GroupByName("없음")
	assert.False(t, ok)

	assert.Equal(t, map[string]string{"첫째": "ㄱ", "h": "", "둘째": "근"}, m.GroupMap())

	assert.Equal(t, nonsense, m.Input())
	assert.Equal(t, 0, m.Pos())
	assert.Equal(t, 8, m.Endpos())
}

func TestMatchGroupsAcrossSyllables(t *testing.T) {
	p := MustCompile(`(?P<첫째>ㄱ.ㅡ)(?P<h>h)?.*(?P<둘째>그)`)
	m, err := p.Search(nonsense)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, []Span{{1, 7}, {1, 3}, {-1, -1}, {6, 7}}, m.Regs())
	assert.Equal(t, "ㄱ으", m.Group(1))
}

func TestMatchGroupsWithBoundaries(t *testing.T) {
	// The delimiter inside the group is bookkeeping; spans come out in
	// original coordinates all the same.
	p := MustCompile(`(?P<첫째>ㄱ;.ㅡ)(?P<h>h)?.*(?P<둘째>그)`, WithBoundaries())
	m, err := p.Search(nonsense)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, []Span{{1, 7}, {1, 3}, {-1, -1}, {6, 7}}, m.Regs())
	assert.Equal(t, "ㄱ으", m.Group(1))
	assert.Equal(t, "근", m.Group(3))
}

func TestMatchTrailingOptionalGroup(t *testing.T) {
	p := MustCompile(`(?P<첫째>ㄱ)(.ㅡ).*(?P<둘째>그)(?P<h>h)?`)
	m, err := p.Search(nonsense)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, []Span{{1, 7}, {1, 2}, {2, 3}, {6, 7}, {-1, -1}}, m.Regs())
}

func TestMatchLinearView(t *testing.T) {
	p := MustCompile("ㅏㄹ")
	m, err := p.Search("아리랑")
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, Span{0, 2}, m.Span(0))
	assert.Equal(t, "아리", m.Group(0))
	assert.Equal(t, Span{1, 3}, m.LinearSpan(0))
	assert.Equal(t, "ㅏㄹ", m.LinearText(0))
}

func TestMatchEmptySpanPolicies(t *testing.T) {
	accurate := []Span{{0, 0}, {0, 1}, {0, 1}, {1, 1}, {1, 2}, {1, 2}, {2, 2}}
	starts := []Span{{0, 0}, {0, 0}, {0, 0}, {1, 1}, {1, 1}, {1, 1}, {2, 2}}
	ends := []Span{{0, 0}, {1, 1}, {1, 1}, {1, 1}, {2, 2}, {2, 2}, {2, 2}}

	tests := []struct {
		name string
		opts []Option
		want []Span
	}{
		{"accurate", nil, accurate},
		{"start", []Option{WithEmptySpan(EmptySpanStart)}, starts},
		{"end", []Option{WithEmptySpan(EmptySpanEnd)}, ends},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := FindIter("ㄷ?", "한글", tt.opts...)
			require.NoError(t, err)
			require.Len(t, ms, len(tt.want))
			for i, m := range ms {
				assert.Equal(t, tt.want[i], m.Span(0), "match %d", i)
			}
		})
	}
}

func TestMatchLiteralEmpty(t *testing.T) {
	ms, err := FindIter("ㄷ?", "한글")
	require.NoError(t, err)
	require.Len(t, ms, 7)
	assert.Empty(t, ms[1].Group(0), "zero-width match reports empty text")

	ms, err = FindIter("ㄷ?", "한글", WithLiteralEmpty(false))
	require.NoError(t, err)
	require.Len(t, ms, 7)
	assert.Equal(t, "한", ms[1].Group(0), "mapped span text on request")
	assert.Empty(t, ms[0].Group(0), "boundary matches have no mapped text either way")
}

func TestMatchString(t *testing.T) {
	m, err := Search("ㅏㄹ", "아리랑")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, `kre.Match(span=(0, 2), match="아리")`, m.String())
}

func TestMatchWindowAttributes(t *testing.T) {
	p := MustCompile("ㄴ")
	m, err := p.SearchAt(nonsense, 2, 7)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 2, m.Pos())
	assert.Equal(t, 7, m.Endpos())
}
