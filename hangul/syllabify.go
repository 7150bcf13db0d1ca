package hangul

import "strings"

// Linearize expands every syllable block in s into its letter sequence.
// All other runes, jamo included, pass through unchanged, so the output
// contains no syllable blocks.
func Linearize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !IsSyllable(r) {
			b.WriteRune(r)
			continue
		}
		lead, vowel, trail, _ := Decompose(r)
		b.WriteRune(lead)
		b.WriteRune(vowel)
		if trail != 0 {
			b.WriteRune(trail)
		}
	}
	return b.String()
}

// Syllabify recomposes the letters of s into syllable blocks, greedily and
// left to right. Composed syllables in the input are linearized first, so
// 가ㄱ and ㄱㅏㄱ both come back as 각. A letter that cannot open or extend
// a syllable is emitted standalone; any other rune flushes the pending
// syllable and passes through. Letter content is never dropped or
// reordered.
func Syllabify(s string) string {
	return recompose(Linearize(s))
}

// recompose runs the greedy automaton over a pure letter stream. The
// buffer always holds a valid syllable prefix: lead, lead+vowel or
// lead+vowel+trail.
func recompose(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	buf := make([]rune, 0, 3)

	flush := func() {
		switch len(buf) {
		case 1:
			out.WriteRune(buf[0])
		case 2:
			r, _ := Compose(buf[0], buf[1], 0)
			out.WriteRune(r)
		case 3:
			r, _ := Compose(buf[0], buf[1], buf[2])
			out.WriteRune(r)
		}
		buf = buf[:0]
	}

	// push extends the buffer with c, reporting whether c was consumed.
	push := func(c rune) bool {
		switch len(buf) {
		case 0:
			if IsLead(c) {
				buf = append(buf, c)
				return true
			}
			return false
		case 1:
			if IsVowel(c) {
				buf = append(buf, c)
				return true
			}
			return false
		case 2:
			if IsTrail(c) {
				buf = append(buf, c)
				return true
			}
			return false
		default:
			if cl, ok := CombineTrail(buf[2], c); ok {
				buf[2] = cl
				return true
			}
			if IsVowel(c) {
				// The trail turns into the next syllable's lead; a
				// cluster leaves its first consonant behind.
				lead := buf[2]
				keep := rune(0)
				if a, b, ok := SplitTrail(lead); ok {
					keep, lead = a, b
				}
				r, _ := Compose(buf[0], buf[1], keep)
				out.WriteRune(r)
				buf = append(buf[:0], lead, c)
				return true
			}
			return false
		}
	}

	for _, c := range s {
		if push(c) {
			continue
		}
		flush()
		if !push(c) {
			out.WriteRune(c)
		}
	}
	flush()
	return out.String()
}
