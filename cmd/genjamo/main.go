// genjamo regenerates hangul/tables.go from the jamo inventory below.
// The rows here keep each jamo next to its romanized forms so the
// inventory stays reviewable; the emitted file holds the parallel
// column arrays the block arithmetic indexes into.
package main

import (
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"

	"github.com/jusunglee/kre/internal/logger"
)

type jamoRow struct {
	jamo rune
	rr   string // Revised Romanization
	yale string
}

var leadRows = [19]jamoRow{
	{'ㄱ', "g", "k"},
	{'ㄲ', "kk", "kk"},
	{'ㄴ', "n", "n"},
	{'ㄷ', "d", "t"},
	{'ㄸ', "tt", "tt"},
	{'ㄹ', "r", "l"},
	{'ㅁ', "m", "m"},
	{'ㅂ', "b", "p"},
	{'ㅃ', "pp", "pp"},
	{'ㅅ', "s", "s"},
	{'ㅆ', "ss", "ss"},
	{'ㅇ', "", ""},
	{'ㅈ', "j", "c"},
	{'ㅉ', "jj", "cc"},
	{'ㅊ', "ch", "ch"},
	{'ㅋ', "k", "kh"},
	{'ㅌ', "t", "th"},
	{'ㅍ', "p", "ph"},
	{'ㅎ', "h", "h"},
}

var vowelRows = [21]jamoRow{
	{'ㅏ', "a", "a"},
	{'ㅐ', "ae", "ay"},
	{'ㅑ', "ya", "ya"},
	{'ㅒ', "yae", "yay"},
	{'ㅓ', "eo", "e"},
	{'ㅔ', "e", "ey"},
	{'ㅕ', "yeo", "ye"},
	{'ㅖ', "ye", "yey"},
	{'ㅗ', "o", "o"},
	{'ㅘ', "wa", "wa"},
	{'ㅙ', "wae", "way"},
	{'ㅚ', "oe", "oy"},
	{'ㅛ', "yo", "yo"},
	{'ㅜ', "u", "wu"},
	{'ㅝ', "wo", "we"},
	{'ㅞ', "we", "wey"},
	{'ㅟ', "wi", "wi"},
	{'ㅠ', "yu", "yu"},
	{'ㅡ', "eu", "u"},
	{'ㅢ', "ui", "uy"},
	{'ㅣ', "i", "i"},
}

// trailRows covers slots 1..27; slot 0, the empty trail, is added at
// emission.
var trailRows = [27]jamoRow{
	{'ㄱ', "g", "k"},
	{'ㄲ', "kk", "kk"},
	{'ㄳ', "gs", "ks"},
	{'ㄴ', "n", "n"},
	{'ㄵ', "nj", "nc"},
	{'ㄶ', "nh", "nh"},
	{'ㄷ', "d", "t"},
	{'ㄹ', "l", "l"},
	{'ㄺ', "lg", "lk"},
	{'ㄻ', "lm", "lm"},
	{'ㄼ', "lb", "lp"},
	{'ㄽ', "ls", "ls"},
	{'ㄾ', "lt", "lth"},
	{'ㄿ', "lp", "lph"},
	{'ㅀ', "lh", "lh"},
	{'ㅁ', "m", "m"},
	{'ㅂ', "b", "p"},
	{'ㅄ', "bs", "ps"},
	{'ㅅ', "s", "s"},
	{'ㅆ', "ss", "ss"},
	{'ㅇ', "ng", "ng"},
	{'ㅈ', "j", "c"},
	{'ㅊ', "ch", "ch"},
	{'ㅋ', "k", "kh"},
	{'ㅌ', "t", "th"},
	{'ㅍ', "p", "ph"},
	{'ㅎ', "h", "h"},
}

type clusterRow struct {
	cluster, first, second rune
}

var clusterRows = [11]clusterRow{
	{'ㄳ', 'ㄱ', 'ㅅ'},
	{'ㄵ', 'ㄴ', 'ㅈ'},
	{'ㄶ', 'ㄴ', 'ㅎ'},
	{'ㄺ', 'ㄹ', 'ㄱ'},
	{'ㄻ', 'ㄹ', 'ㅁ'},
	{'ㄼ', 'ㄹ', 'ㅂ'},
	{'ㄽ', 'ㄹ', 'ㅅ'},
	{'ㄾ', 'ㄹ', 'ㅌ'},
	{'ㄿ', 'ㄹ', 'ㅍ'},
	{'ㅀ', 'ㄹ', 'ㅎ'},
	{'ㅄ', 'ㅂ', 'ㅅ'},
}

func main() {
	if err := mainE(); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	fs := ff.NewFlagSet("genjamo")
	out := fs.StringLong("out", "hangul/tables.go", "output file")

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if err := validate(); err != nil {
		return fmt.Errorf("validating jamo inventory: %w", err)
	}

	f := emit()
	if err := f.Save(*out); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	logger.Info("generated", "file", *out)
	return nil
}

// validate cross-checks the inventory before anything is written: the
// orders must be strictly ascending (they mirror the syllable block),
// every cluster and both of its parts must be trail letters, and the
// slot arithmetic must land on the block corners.
func validate() error {
	for _, rows := range [][]jamoRow{leadRows[:], vowelRows[:], trailRows[:]} {
		for i := 1; i < len(rows); i++ {
			if rows[i].jamo <= rows[i-1].jamo {
				return fmt.Errorf("%q out of order", rows[i].jamo)
			}
		}
	}

	trailSet := lo.SliceToMap(trailRows[:], func(r jamoRow) (rune, bool) {
		return r.jamo, true
	})
	for _, c := range clusterRows {
		for _, r := range []rune{c.cluster, c.first, c.second} {
			if !trailSet[r] {
				return fmt.Errorf("cluster %q: %q is not a trail letter", c.cluster, r)
			}
		}
	}

	if first := compose(0, 0, 0); first != '가' {
		return fmt.Errorf("block start arithmetic is off: got %q", first)
	}
	if last := compose(18, 20, 27); last != '힣' {
		return fmt.Errorf("block end arithmetic is off: got %q", last)
	}
	return nil
}

func compose(lead, vowel, trail int) rune {
	return rune(0xAC00 + (lead*21+vowel)*28 + trail)
}

func emit() *jen.File {
	f := jen.NewFile("hangul")
	f.HeaderComment("Code generated by genjamo. DO NOT EDIT.")

	jamoOf := func(r jamoRow, _ int) jen.Code { return jen.LitRune(r.jamo) }
	rrOf := func(r jamoRow, _ int) jen.Code { return jen.Lit(r.rr) }
	yaleOf := func(r jamoRow, _ int) jen.Code { return jen.Lit(r.yale) }

	withEmptySlot := func(codes []jen.Code, zero jen.Code) []jen.Code {
		return append([]jen.Code{zero}, codes...)
	}

	f.Comment("leads holds the 19 lead consonants in block order.")
	f.Var().Id("leads").Op("=").Index(jen.Lit(19)).Rune().
		Values(lo.Map(leadRows[:], jamoOf)...)

	f.Comment("vowels holds the 21 vowels in block order.")
	f.Var().Id("vowels").Op("=").Index(jen.Lit(21)).Rune().
		Values(lo.Map(vowelRows[:], jamoOf)...)

	f.Comment("trails holds the 28 trail slots in block order; index 0 is the empty trail.")
	f.Var().Id("trails").Op("=").Index(jen.Lit(28)).Rune().
		Values(withEmptySlot(lo.Map(trailRows[:], jamoOf), jen.Lit(0))...)

	f.Comment("clusterTable lists each two-consonant trail with its parts, block order.")
	f.Var().Id("clusterTable").Op("=").Index(jen.Lit(11)).Index(jen.Lit(3)).Rune().
		Values(lo.Map(clusterRows[:], func(c clusterRow, _ int) jen.Code {
			return jen.Values(jen.LitRune(c.cluster), jen.LitRune(c.first), jen.LitRune(c.second))
		})...)

	f.Comment("romanLeads holds Revised Romanization forms per lead.")
	f.Var().Id("romanLeads").Op("=").Index(jen.Lit(19)).String().
		Values(lo.Map(leadRows[:], rrOf)...)

	f.Comment("romanVowels holds Revised Romanization forms per vowel.")
	f.Var().Id("romanVowels").Op("=").Index(jen.Lit(21)).String().
		Values(lo.Map(vowelRows[:], rrOf)...)

	f.Comment("romanTrails holds Revised Romanization forms per trail slot.")
	f.Var().Id("romanTrails").Op("=").Index(jen.Lit(28)).String().
		Values(withEmptySlot(lo.Map(trailRows[:], rrOf), jen.Lit(""))...)

	f.Comment("yaleLeads holds Yale romanization forms per lead.")
	f.Var().Id("yaleLeads").Op("=").Index(jen.Lit(19)).String().
		Values(lo.Map(leadRows[:], yaleOf)...)

	f.Comment("yaleVowels holds Yale romanization forms per vowel.")
	f.Var().Id("yaleVowels").Op("=").Index(jen.Lit(21)).String().
		Values(lo.Map(vowelRows[:], yaleOf)...)

	f.Comment("yaleTrails holds Yale romanization forms per trail slot.")
	f.Var().Id("yaleTrails").Op("=").Index(jen.Lit(28)).String().
		Values(withEmptySlot(lo.Map(trailRows[:], yaleOf), jen.Lit(""))...)

	return f
}
