package hangul

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSyllable is returned when decomposition is asked of a rune
	// outside the precomposed syllable block.
	ErrNotSyllable = errors.New("hangul: not a syllable block")

	// ErrUnsupportedCombination is returned when letters cannot form a
	// syllable: a wrong letter class for a slot, or consonants that do
	// not merge into a legal cluster.
	ErrUnsupportedCombination = errors.New("hangul: unsupported jamo combination")
)

// Decompose splits a syllable block into its lead, vowel and trail letters.
// trail is 0 when the syllable has none. A cluster trail comes back as the
// single cluster jamo; SplitTrail breaks it further.
func Decompose(r rune) (lead, vowel, trail rune, err error) {
	if !IsSyllable(r) {
		return 0, 0, 0, fmt.Errorf("decompose %q: %w", r, ErrNotSyllable)
	}
	code := int(r) - syllableBase
	t := code % trailN
	v := (code / trailN) % vowelN
	l := code / (trailN * vowelN)
	lead, vowel = leads[l], vowels[v]
	if t > 0 {
		trail = trails[t]
	}
	return lead, vowel, trail, nil
}

// Compose builds a syllable block from a lead, a vowel and an optional
// trail (0 for none).
func Compose(lead, vowel, trail rune) (rune, error) {
	l, ok := leadIndex[lead]
	if !ok {
		return 0, fmt.Errorf("compose %q %q %q: %w", lead, vowel, trail, ErrUnsupportedCombination)
	}
	v, ok := vowelIndex[vowel]
	if !ok {
		return 0, fmt.Errorf("compose %q %q %q: %w", lead, vowel, trail, ErrUnsupportedCombination)
	}
	t := 0
	if trail != 0 {
		if t, ok = trailIndex[trail]; !ok {
			return 0, fmt.Errorf("compose %q %q %q: %w", lead, vowel, trail, ErrUnsupportedCombination)
		}
	}
	return rune(syllableBase + (l*vowelN+v)*trailN + t), nil
}

// Combine composes 2 to 4 letters into one syllable block. Four letters
// are accepted only when the last two merge into a cluster trail, so
// ㄷㅏㄹㄱ and ㄷㅏㄺ both compose 닭.
func Combine(letters []rune) (rune, error) {
	switch len(letters) {
	case 2:
		return Compose(letters[0], letters[1], 0)
	case 3:
		return Compose(letters[0], letters[1], letters[2])
	case 4:
		t, ok := CombineTrail(letters[2], letters[3])
		if !ok {
			return 0, fmt.Errorf("combine %q: %w", string(letters), ErrUnsupportedCombination)
		}
		return Compose(letters[0], letters[1], t)
	default:
		return 0, fmt.Errorf("combine %q: want 2 to 4 letters, got %d: %w",
			string(letters), len(letters), ErrUnsupportedCombination)
	}
}

// Split returns the letters of a syllable block: 2 or 3 runes, the trail
// cluster kept whole.
func Split(r rune) ([]rune, error) {
	lead, vowel, trail, err := Decompose(r)
	if err != nil {
		return nil, err
	}
	if trail == 0 {
		return []rune{lead, vowel}, nil
	}
	return []rune{lead, vowel, trail}, nil
}

// CombineTrail merges two simple trail consonants into their cluster,
// reporting whether the pair is legal (ㄹ,ㄱ → ㄺ).
func CombineTrail(a, b rune) (rune, bool) {
	r, ok := clusterOf[[2]rune{a, b}]
	return r, ok
}

// SplitTrail breaks a cluster trail into its two consonants.
func SplitTrail(r rune) (a, b rune, ok bool) {
	parts, ok := clusterParts[r]
	if !ok {
		return 0, 0, false
	}
	return parts[0], parts[1], true
}
