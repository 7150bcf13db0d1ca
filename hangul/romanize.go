package hangul

import "strings"

// Romanize renders s in Revised Romanization. Syllable blocks romanize by
// table lookup; anything else, standalone jamo included, passes through.
func Romanize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !IsSyllable(r) {
			b.WriteRune(r)
			continue
		}
		code := int(r) - syllableBase
		t := code % trailN
		v := (code / trailN) % vowelN
		l := code / (trailN * vowelN)
		b.WriteString(romanLeads[l])
		b.WriteString(romanVowels[v])
		b.WriteString(romanTrails[t])
	}
	return b.String()
}

// YaleOptions controls Yale output.
type YaleOptions struct {
	// Syllables inserts Separator between adjacent syllable blocks.
	Syllables bool
	// Separator defaults to ".".
	Separator string
}

// labials are the leads after which Yale writes ㅜ as u rather than wu.
var labials = map[rune]bool{'ㅁ': true, 'ㅂ': true, 'ㅃ': true, 'ㅍ': true}

// Yale renders s in Yale romanization. Standalone consonants use their
// trail form, standalone vowels their vowel form; other runes pass
// through.
func Yale(s string, opts YaleOptions) string {
	sep := opts.Separator
	if sep == "" {
		sep = "."
	}
	var b strings.Builder
	b.Grow(len(s))
	prevSyllable := false
	for _, r := range s {
		switch {
		case IsSyllable(r):
			if opts.Syllables && prevSyllable {
				b.WriteString(sep)
			}
			code := int(r) - syllableBase
			t := code % trailN
			v := (code / trailN) % vowelN
			l := code / (trailN * vowelN)
			b.WriteString(yaleLeads[l])
			if vowels[v] == 'ㅜ' && labials[leads[l]] {
				b.WriteString("u")
			} else {
				b.WriteString(yaleVowels[v])
			}
			b.WriteString(yaleTrails[t])
			prevSyllable = true
			continue
		case IsVowel(r):
			b.WriteString(yaleVowels[vowelIndex[r]])
		case IsTrail(r):
			b.WriteString(yaleTrails[trailIndex[r]])
		case IsLead(r):
			b.WriteString(yaleLeads[leadIndex[r]])
		default:
			b.WriteRune(r)
		}
		prevSyllable = false
	}
	return b.String()
}
