package kre

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jusunglee/kre/hangul"
)

// Flags select engine behaviors. They are forwarded to the engine as its
// native inline flags; the default engine understands all four.
type Flags uint32

const (
	// IgnoreCase makes matching case-insensitive ((?i)).
	IgnoreCase Flags = 1 << iota
	// Multiline lets ^ and $ match at line breaks ((?m)).
	Multiline
	// DotAll lets . match newlines ((?s)).
	DotAll
	// Ungreedy swaps the greediness of repetition operators ((?U)).
	Ungreedy
)

// prefix renders the inline flag group, empty when no flags are set.
func (f Flags) prefix() string {
	if f == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("(?")
	if f&IgnoreCase != 0 {
		b.WriteByte('i')
	}
	if f&Multiline != 0 {
		b.WriteByte('m')
	}
	if f&DotAll != 0 {
		b.WriteByte('s')
	}
	if f&Ungreedy != 0 {
		b.WriteByte('U')
	}
	b.WriteByte(')')
	return b.String()
}

// Syllabify selects how substitution output is recomposed into syllable
// blocks.
type Syllabify int

const (
	// SyllabifyMinimal recomposes only the replaced regions, letters of
	// partially affected syllables included. The default.
	SyllabifyMinimal Syllabify = iota
	// SyllabifyExtended widens each region by one character on both sides
	// so recomposition can bridge region edges, minimizing standalone
	// jamo in the output.
	SyllabifyExtended
	// SyllabifyFull linearizes and recomposes the entire output.
	SyllabifyFull
	// SyllabifyNone inserts replacement text verbatim.
	SyllabifyNone
)

func (s Syllabify) String() string {
	switch s {
	case SyllabifyMinimal:
		return "minimal"
	case SyllabifyExtended:
		return "extended"
	case SyllabifyFull:
		return "full"
	case SyllabifyNone:
		return "none"
	}
	return fmt.Sprintf("Syllabify(%d)", int(s))
}

// EmptySpan selects how a zero-width match inside a syllable reports its
// original-coordinate span.
type EmptySpan int

const (
	// EmptySpanAccurate reports the enclosing syllable's (k, k+1).
	EmptySpanAccurate EmptySpan = iota
	// EmptySpanStart collapses the span to (k, k).
	EmptySpanStart
	// EmptySpanEnd collapses the span to (k+1, k+1).
	EmptySpanEnd
)

func (e EmptySpan) String() string {
	switch e {
	case EmptySpanAccurate:
		return "accurate"
	case EmptySpanStart:
		return "start"
	case EmptySpanEnd:
		return "end"
	}
	return fmt.Sprintf("EmptySpan(%d)", int(e))
}

// DefaultDelimiter is the boundary marker used unless WithDelimiter
// overrides it.
const DefaultDelimiter = ';'

// options carries both compile-scope settings (fixed when a Pattern is
// built) and call-scope settings (read per operation).
type options struct {
	// compile scope
	flags      Flags
	boundaries bool
	delimiter  rune
	engine     Engine

	// call scope
	syllabify    Syllabify
	emptySpan    EmptySpan
	literalEmpty bool
	count        int
	pos          int
	endpos       int
	hasPos       bool
	hasEndpos    bool
}

func defaultOptions() options {
	return options{
		delimiter:    DefaultDelimiter,
		literalEmpty: true,
	}
}

// Option configures compilation or a single operation. Compile-scope
// options (WithFlags, WithBoundaries, WithDelimiter, WithEngine) are fixed
// when the pattern is compiled and ignored if passed to an operation on an
// existing Pattern.
type Option func(*options)

// WithFlags sets the engine flags.
func WithFlags(f Flags) Option {
	return func(o *options) { o.flags = f }
}

// WithBoundaries injects the boundary delimiter around every syllable in
// the linear stream, letting patterns anchor on syllable edges.
func WithBoundaries() Option {
	return func(o *options) { o.boundaries = true }
}

// WithDelimiter sets the boundary delimiter rune. The delimiter is
// validated at compile time.
func WithDelimiter(d rune) Option {
	return func(o *options) { o.delimiter = d }
}

// WithEngine substitutes the regex engine backing the pattern. Patterns
// compiled with a custom engine bypass the shared cache.
func WithEngine(e Engine) Option {
	return func(o *options) { o.engine = e }
}

// WithSyllabify selects the recomposition policy for a substitution call.
func WithSyllabify(s Syllabify) Option {
	return func(o *options) { o.syllabify = s }
}

// WithEmptySpan selects the span policy for zero-width matches inside a
// syllable.
func WithEmptySpan(e EmptySpan) Option {
	return func(o *options) { o.emptySpan = e }
}

// WithLiteralEmpty controls the content reported for zero-width matches:
// on (the default) reports the empty string, off reports the text of the
// mapped original span.
func WithLiteralEmpty(on bool) Option {
	return func(o *options) { o.literalEmpty = on }
}

// WithCount caps the number of replacements made by Sub and Subn.
// Zero or negative means unlimited.
func WithCount(n int) Option {
	return func(o *options) { o.count = n }
}

// WithPos starts the search window at rune index pos of the original
// string. For the anchored operations an explicit pos also enables
// in-syllable retry: the match may begin at any letter of the syllable
// holding pos.
func WithPos(pos int) Option {
	return func(o *options) {
		o.pos = pos
		o.hasPos = true
	}
}

// WithEndpos ends the search window before rune index endpos of the
// original string.
func WithEndpos(endpos int) Option {
	return func(o *options) {
		o.endpos = endpos
		o.hasEndpos = true
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// compileScope returns a copy with every call-scope field back at its
// default. Compiled patterns store only this form, so cache entries keyed
// by compile-scope fields cannot leak per-call settings between callers.
func (o options) compileScope() options {
	d := defaultOptions()
	d.flags = o.flags
	d.boundaries = o.boundaries
	d.delimiter = o.delimiter
	d.engine = o.engine
	return d
}

// metaRunes are the regex metacharacters a delimiter must avoid.
const metaRunes = `\.+*?()|[]{}^$-`

func validateDelimiter(d rune) error {
	switch {
	case d == 0:
		return fmt.Errorf("empty delimiter: %w", ErrInvalidDelimiter)
	case strings.ContainsRune(metaRunes, d):
		return fmt.Errorf("delimiter %q is a regex metacharacter: %w", d, ErrInvalidDelimiter)
	case hangul.IsHangul(d):
		return fmt.Errorf("delimiter %q is Hangul: %w", d, ErrInvalidDelimiter)
	case unicode.IsSpace(d), unicode.IsLetter(d), unicode.IsDigit(d):
		return fmt.Errorf("delimiter %q collides with text: %w", d, ErrInvalidDelimiter)
	}
	return nil
}
