package hangul

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		in    rune
		lead  rune
		vowel rune
		trail rune
	}{
		{"no trail", '다', 'ㄷ', 'ㅏ', 0},
		{"simple trail", '한', 'ㅎ', 'ㅏ', 'ㄴ'},
		{"cluster trail", '흙', 'ㅎ', 'ㅡ', 'ㄺ'},
		{"first block", '가', 'ㄱ', 'ㅏ', 0},
		{"last block", '힣', 'ㅎ', 'ㅣ', 'ㅎ'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead, vowel, trail, err := Decompose(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.lead, lead)
			assert.Equal(t, tt.vowel, vowel)
			assert.Equal(t, tt.trail, trail)
		})
	}
}

func TestDecomposeRejectsNonSyllables(t *testing.T) {
	for _, r := range []rune{'ㄱ', 'ㅏ', 'a', ' ', 0xABFF, 0xD7A4} {
		_, _, _, err := Decompose(r)
		assert.ErrorIs(t, err, ErrNotSyllable, "rune %q", r)
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name  string
		lead  rune
		vowel rune
		trail rune
		want  rune
	}{
		{"no trail", 'ㄷ', 'ㅏ', 0, '다'},
		{"simple trail", 'ㅎ', 'ㅏ', 'ㄴ', '한'},
		{"cluster trail", 'ㅎ', 'ㅡ', 'ㄺ', '흙'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compose(tt.lead, tt.vowel, tt.trail)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComposeRejectsBadSlots(t *testing.T) {
	tests := []struct {
		name  string
		lead  rune
		vowel rune
		trail rune
	}{
		{"vowel as lead", 'ㅏ', 'ㅏ', 0},
		{"cluster as lead", 'ㄺ', 'ㅏ', 0},
		{"consonant as vowel", 'ㄱ', 'ㄴ', 0},
		{"tense lead as trail", 'ㄱ', 'ㅏ', 'ㄸ'},
		{"latin lead", 'g', 'ㅏ', 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compose(tt.lead, tt.vowel, tt.trail)
			assert.ErrorIs(t, err, ErrUnsupportedCombination)
		})
	}
}

func TestComposeDecomposeRoundTrip(t *testing.T) {
	for r := rune(0xAC00); r <= 0xD7A3; r++ {
		lead, vowel, trail, err := Decompose(r)
		require.NoError(t, err)
		back, err := Compose(lead, vowel, trail)
		require.NoError(t, err)
		require.Equal(t, r, back)
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want rune
	}{
		{"two letters", "ㄷㅏ", '다'},
		{"three letters", "ㄷㅏㄹ", '달'},
		{"four letters merge", "ㄷㅏㄹㄱ", '닭'},
		{"cluster given whole", "ㄷㅏㄺ", '닭'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Combine([]rune(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombineErrors(t *testing.T) {
	for _, in := range []string{"", "ㄷ", "ㄷㅏㄱㄴ", "ㄷㅏㄹㄱㅅ"} {
		_, err := Combine([]rune(in))
		assert.ErrorIs(t, err, ErrUnsupportedCombination, "input %q", in)
	}
}

func TestSplit(t *testing.T) {
	got, err := Split('닭')
	require.NoError(t, err)
	assert.Equal(t, []rune{'ㄷ', 'ㅏ', 'ㄺ'}, got)

	got, err = Split('다')
	require.NoError(t, err)
	assert.Equal(t, []rune{'ㄷ', 'ㅏ'}, got)

	_, err = Split('ㄷ')
	assert.ErrorIs(t, err, ErrNotSyllable)
}

func TestTrailClusters(t *testing.T) {
	r, ok := CombineTrail('ㄹ', 'ㄱ')
	require.True(t, ok)
	assert.Equal(t, 'ㄺ', r)

	_, ok = CombineTrail('ㄴ', 'ㄱ')
	assert.False(t, ok)

	a, b, ok := SplitTrail('ㅄ')
	require.True(t, ok)
	assert.Equal(t, 'ㅂ', a)
	assert.Equal(t, 'ㅅ', b)

	_, _, ok = SplitTrail('ㄱ')
	assert.False(t, ok)
}
