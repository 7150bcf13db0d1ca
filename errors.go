package kre

import "errors"

var (
	// ErrInvalidDelimiter is returned at compile time when the configured
	// boundary delimiter cannot be injected safely: a regex metacharacter,
	// a Hangul rune, whitespace, or a letter or digit.
	ErrInvalidDelimiter = errors.New("kre: invalid boundary delimiter")

	// ErrIndexOutOfRange is returned when pos or endpos falls outside
	// [0, len] of the searched string, in rune terms.
	ErrIndexOutOfRange = errors.New("kre: position out of range")
)

// IsInvalidDelimiter reports whether err stems from a rejected delimiter.
func IsInvalidDelimiter(err error) bool {
	return errors.Is(err, ErrInvalidDelimiter)
}

// IsIndexOutOfRange reports whether err stems from an out-of-range pos or
// endpos.
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}
