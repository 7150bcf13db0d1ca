package hangul

import "strings"

const (
	syllableBase = 0xAC00 // 가
	syllableEnd  = 0xD7A3 // 힣
	jamoBase     = 0x3131 // ㄱ, first compatibility consonant
	vowelBase    = 0x314F // ㅏ, first compatibility vowel
	jamoEnd      = 0x3163 // ㅣ
	vowelN       = 21
	trailN       = 28
)

var (
	leadIndex  = indexTable(leads[:])
	vowelIndex = indexTable(vowels[:])
	trailIndex = trailIndexTable()

	clusterParts = clusterPartsTable()
	clusterOf    = clusterOfTable()
)

func indexTable(rs []rune) map[rune]int {
	m := make(map[rune]int, len(rs))
	for i, r := range rs {
		m[r] = i
	}
	return m
}

// trailIndexTable maps each non-empty trail to its block slot, 1..27.
func trailIndexTable() map[rune]int {
	m := make(map[rune]int, trailN-1)
	for i, r := range trails[1:] {
		m[r] = i + 1
	}
	return m
}

func clusterPartsTable() map[rune][2]rune {
	m := make(map[rune][2]rune, len(clusterTable))
	for _, row := range clusterTable {
		m[row[0]] = [2]rune{row[1], row[2]}
	}
	return m
}

func clusterOfTable() map[[2]rune]rune {
	m := make(map[[2]rune]rune, len(clusterTable))
	for _, row := range clusterTable {
		m[[2]rune{row[1], row[2]}] = row[0]
	}
	return m
}

// IsSyllable reports whether r is a precomposed syllable block (가..힣).
func IsSyllable(r rune) bool {
	return r >= syllableBase && r <= syllableEnd
}

// IsJamo reports whether r is a compatibility jamo letter, consonant
// clusters included.
func IsJamo(r rune) bool {
	return r >= jamoBase && r <= jamoEnd
}

// IsLead reports whether r can open a syllable.
func IsLead(r rune) bool {
	_, ok := leadIndex[r]
	return ok
}

// IsVowel reports whether r is a vowel jamo.
func IsVowel(r rune) bool {
	return r >= vowelBase && r <= jamoEnd
}

// IsTrail reports whether r can close a syllable.
func IsTrail(r rune) bool {
	_, ok := trailIndex[r]
	return ok
}

// IsCluster reports whether r is a two-consonant trail such as ㄺ.
func IsCluster(r rune) bool {
	_, ok := clusterParts[r]
	return ok
}

// IsHangul reports whether r is a syllable block or a jamo letter.
func IsHangul(r rune) bool {
	return IsSyllable(r) || IsJamo(r)
}

// HasHangul reports whether s contains any Hangul rune.
func HasHangul(s string) bool {
	return strings.ContainsFunc(s, IsHangul)
}
