package kre

// Compile builds a Pattern. The pattern text is linearized, so syllables
// in it match at the letter level; flags, boundaries, the delimiter and
// the engine are fixed at compile time. Patterns built on the default
// engine are cached process-wide by (pattern, flags, boundaries,
// delimiter); a custom engine bypasses the cache.
func Compile(pattern string, opts ...Option) (*Pattern, error) {
	o := buildOptions(opts)
	if o.engine != nil {
		return compilePattern(pattern, o)
	}
	return cache.get(pattern, o)
}

// MustCompile is Compile that panics on error, for package-level pattern
// variables.
func MustCompile(pattern string, opts ...Option) *Pattern {
	p, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Search returns the first match of pattern anywhere in s, or nil.
func Search(pattern, s string, opts ...Option) (*Match, error) {
	p, err := Compile(pattern, opts...)
	if err != nil {
		return nil, err
	}
	return p.Search(s, opts...)
}

// MatchString returns a match of pattern anchored at the start of s, or nil.
func MatchString(pattern, s string, opts ...Option) (*Match, error) {
	p, err := Compile(pattern, opts...)
	if err != nil {
		return nil, err
	}
	return p.Match(s, opts...)
}

// FullMatch returns a match of pattern spanning all of s, or nil.
func FullMatch(pattern, s string, opts ...Option) (*Match, error) {
	p, err := Compile(pattern, opts...)
	if err != nil {
		return nil, err
	}
	return p.FullMatch(s, opts...)
}

// FindAll returns the texts of every non-overlapping match of pattern in
// s, in original coordinates; nil when there are none.
func FindAll(pattern, s string, opts ...Option) ([]string, error) {
	p, err := Compile(pattern, opts...)
	if err != nil {
		return nil, err
	}
	return p.FindAll(s, opts...)
}

// FindIter returns every non-overlapping match of pattern in s as Match
// values; nil when there are none.
func FindIter(pattern, s string, opts ...Option) ([]*Match, error) {
	p, err := Compile(pattern, opts...)
	if err != nil {
		return nil, err
	}
	return p.FindIter(s, opts...)
}

// Sub replaces matches of pattern in s with the expansion of repl,
// recomposing syllables per the WithSyllabify policy.
func Sub(pattern, repl, s string, opts ...Option) (string, error) {
	p, err := Compile(pattern, opts...)
	if err != nil {
		return "", err
	}
	return p.Sub(repl, s, opts...)
}

// Subn is Sub plus the number of replacements made.
func Subn(pattern, repl, s string, opts ...Option) (string, int, error) {
	p, err := Compile(pattern, opts...)
	if err != nil {
		return "", 0, err
	}
	return p.Subn(repl, s, opts...)
}

// Escape quotes s so the default engine matches it literally.
func Escape(s string) string {
	return DefaultEngine.Quote(s)
}

// Purge empties the process-wide pattern cache.
func Purge() {
	cache.purge()
}
