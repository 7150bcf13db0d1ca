package kre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubnBoundariesInPatternAndRepl(t *testing.T) {
	p := MustCompile(";느", WithBoundaries())
	got, n, err := p.Subn(";나가", nonsense, WithSyllabify(SyllabifyExtended))
	require.NoError(t, err)
	assert.Equal(t, "할ㄱ으하나가나갈근ㅡ", got)
	assert.Equal(t, 2, n, "근 has no syllable-initial ㄴ so only 느 and 늘 rewrite")
}

func TestSubnSyllableFinalBoundary(t *testing.T) {
	p := MustCompile("[ㄱ|ㄴ];", WithBoundaries())

	// Replacement keeps the boundary, so the new letter stays in the
	// syllable it replaced.
	got, n, err := p.Subn("ㅁ;", nonsense, WithSyllabify(SyllabifyExtended))
	require.NoError(t, err)
	assert.Equal(t, "할ㅁ으하느늘금ㅡ", got)
	assert.Equal(t, 2, n)

	// Replacement drops the boundary and the new letter re-leads with
	// whatever follows.
	got, n, err = p.Subn("ㅁ", nonsense, WithSyllabify(SyllabifyExtended))
	require.NoError(t, err)
	assert.Equal(t, "할ㅁ으하느늘그므", got)
	assert.Equal(t, 2, n)
}

func TestSubnPoliciesWithBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		policy Syllabify
		want   string
	}{
		{"none", SyllabifyNone, "할ㄱㅇㅓ하ㄴㅓㄴㅓㄹㄱㅓㄴㅓ"},
		{"minimal", SyllabifyMinimal, "할ㄱ어하너널건ㅓ"},
		{"extended", SyllabifyExtended, "할ㄱ어하너널건ㅓ"},
		{"full", SyllabifyFull, "핡어하너널거너"},
	}
	p := MustCompile("ㅡ", WithBoundaries())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := p.Subn("ㅓ", nonsense, WithSyllabify(tt.policy))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 5, n)
		})
	}
}

func TestSubnCrossSyllablePattern(t *testing.T) {
	// ㅡㄴ only spans a syllable break in the plain stream; with
	// boundaries the delimiter sits between ㅡ and ㄴ and the 근-internal
	// occurrence is the sole match.
	tests := []struct {
		name       string
		boundaries bool
		policy     Syllabify
		want       string
		wantN      int
	}{
		{"minimal", false, SyllabifyMinimal, "할ㄱ으하너늘건ㅡ", 2},
		{"minimal boundaries", true, SyllabifyMinimal, "할ㄱ으하느늘건ㅡ", 1},
		{"extended", false, SyllabifyExtended, "할ㄱ으하너늘거느", 2},
		{"extended boundaries", true, SyllabifyExtended, "할ㄱ으하느늘건ㅡ", 1},
		{"full", false, SyllabifyFull, "핡으하너늘거느", 2},
		{"full boundaries", true, SyllabifyFull, "핡으하느늘거느", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var copts []Option
			if tt.boundaries {
				copts = append(copts, WithBoundaries())
			}
			p := MustCompile("ㅡㄴ", copts...)
			got, n, err := p.Subn("ㅓㄴ", nonsense, WithSyllabify(tt.policy))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantN, n)
		})
	}
}

func TestSubnPatternConsumesDelimiter(t *testing.T) {
	// When the pattern matches a delimiter the replacement does not
	// restore, the syllable break disappears from the output stream and
	// extended recomposition is free to merge across it.
	final := MustCompile("ㅡㄴ;", WithBoundaries())
	initial := MustCompile(";ㅡ", WithBoundaries())

	got, n, err := final.Subn("ㅓㄴ", nonsense, WithSyllabify(SyllabifyMinimal))
	require.NoError(t, err)
	assert.Equal(t, "할ㄱ으하느늘건ㅡ", got)
	assert.Equal(t, 1, n)

	got, n, err = final.Subn("ㅓㄴ", nonsense, WithSyllabify(SyllabifyExtended))
	require.NoError(t, err)
	assert.Equal(t, "할ㄱ으하느늘거느", got)
	assert.Equal(t, 1, n)

	got, n, err = initial.Subn("ㅓ", nonsense, WithSyllabify(SyllabifyMinimal))
	require.NoError(t, err)
	assert.Equal(t, "할ㄱ으하느늘근ㅓ", got)
	assert.Equal(t, 1, n)

	got, n, err = initial.Subn("ㅓ", nonsense, WithSyllabify(SyllabifyExtended))
	require.NoError(t, err)
	assert.Equal(t, "할ㄱ으하느늘그너", got)
	assert.Equal(t, 1, n)
}

func TestSubExtendedReach(t *testing.T) {
	// Extended recomposition takes in at most one syllable on either
	// side of a replacement, and only when the replacement edge can
	// combine with it.
	tests := []struct {
		pattern, repl, input, want string
	}{
		{"ㅡㄴ", "ㅏㅂ", "하느늘ㅏ근", "하나브라갑"},
		{"ㅡㄴ", "ㅂ", "하느늘ㅏ근", "한브락ㅂ"},
		{"ㅡㄴ", "ㅂ", "ㄱㅏ근ㅏ", "ㄱㅏㄱ바"},
		{"ㄱ", "ㅂ", "ㄱㅏㅁ", "바ㅁ"},
	}
	for _, tt := range tests {
		got, err := Sub(tt.pattern, tt.repl, tt.input, WithSyllabify(SyllabifyExtended))
		require.NoError(t, err)
		assert.Equalf(t, tt.want, got, "sub(%q, %q, %q)", tt.pattern, tt.repl, tt.input)
	}
}

func TestDelSpanOf(t *testing.T) {
	m := newMapping(nonsense, true, ';')

	tests := []struct {
		name string
		i, j int
		want Span
	}{
		{"empty at stream start", 0, 0, Span{0, 0}},
		{"empty at stream end", 26, 26, Span{17, 17}},
		{"empty inside syllable", 2, 2, Span{1, 2}},
		{"empty at syllable break", 4, 4, Span{2, 2}},
		{"letters of one syllable", 1, 4, Span{1, 2}},
		{"letters across delimiter", 5, 8, Span{3, 6}},
		{"letters spanning break", 3, 6, Span{1, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, delSpanOf(m, tt.i, tt.j))
		})
	}
}

func TestMergeRegionsOverlap(t *testing.T) {
	// Two matches inside the same syllable collapse into one region so
	// the syllable is rebuilt exactly once.
	p := MustCompile("[ㅇ|ㅏ]")
	m := newMapping("앙", false, ';')
	locs := p.re.FindAll(m.linear, 0, len(m.linear), -1)
	require.Len(t, locs, 3)

	regions := mergeRegions(m, locs)
	require.Len(t, regions, 1)
	assert.Equal(t, 3, len(regions[0].locs))
	assert.Equal(t, Span{0, 3}, regions[0].linSpan)
}
