// kgrep searches files for Korean regex patterns at the letter level.
// Patterns see the jamo stream (so ㄱ matches inside 한), while output
// stays in whole syllables. With --replace it rewrites matches instead,
// recomposing syllables per --syllabify.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/jusunglee/kre"
	"github.com/jusunglee/kre/internal/logger"
)

var errNoMatch = errors.New("no matches")

var (
	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99"))

	numStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

func main() {
	if err := mainE(); err != nil {
		if errors.Is(err, errNoMatch) {
			os.Exit(1)
		}
		logger.Error("fatal", "error", err)
		os.Exit(2)
	}
}

type config struct {
	pattern     *kre.Pattern
	replace     string
	hasReplace  bool
	syllabify   kre.Syllabify
	onlyMatches bool
	countOnly   bool
	lineNumbers bool
	maxCount    int
	decode      func(io.Reader) io.Reader
}

func mainE() error {
	_ = godotenv.Load()
	logger.Init()

	fs := ff.NewFlagSet("kgrep")
	var (
		boundaries  = fs.Bool('b', "boundaries", "expose syllable boundaries to the pattern")
		delimiter   = fs.StringLong("delimiter", ";", "boundary marker character")
		ignoreCase  = fs.Bool('i', "ignore-case", "case-insensitive matching of non-Hangul text")
		countOnly   = fs.Bool('c', "count", "print only a count of matching lines per file")
		onlyMatches = fs.Bool('o', "only-matching", "print each match on its own line")
		lineNumbers = fs.Bool('n', "line-number", "prefix output with line numbers")
		maxCount    = fs.Int('m', "max-count", 0, "stop after this many matching lines per file")
		replace     = fs.String('r', "replace", "", "rewrite matches with this template instead of printing them")
		syllabify   = fs.StringLong("syllabify", "minimal", "recomposition policy for --replace: none, minimal, extended, full")
		encoding    = fs.StringLong("encoding", "utf-8", "input encoding: utf-8 or euc-kr")
		workers     = fs.IntLong("workers", 4, "files scanned concurrently")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	args := fs.GetArgs()
	if len(args) == 0 {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return errors.New("usage: kgrep [flags] pattern [file ...]")
	}
	pattern, files := args[0], args[1:]

	var opts []kre.Option
	if *boundaries {
		opts = append(opts, kre.WithBoundaries())
	}
	if *delimiter != ";" {
		d, size := utf8.DecodeRuneInString(*delimiter)
		if size != len(*delimiter) {
			return fmt.Errorf("delimiter %q is not a single character", *delimiter)
		}
		opts = append(opts, kre.WithDelimiter(d))
	}
	if *ignoreCase {
		opts = append(opts, kre.WithFlags(kre.IgnoreCase))
	}

	p, err := kre.Compile(pattern, opts...)
	if err != nil {
		return fmt.Errorf("compiling pattern: %w", err)
	}

	cfg := config{
		pattern:     p,
		replace:     *replace,
		hasReplace:  *replace != "",
		onlyMatches: *onlyMatches,
		countOnly:   *countOnly,
		lineNumbers: *lineNumbers,
		maxCount:    *maxCount,
	}
	if cfg.syllabify, err = parseSyllabify(*syllabify); err != nil {
		return err
	}
	if cfg.decode, err = parseEncoding(*encoding); err != nil {
		return err
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Warn("interrupted", "signal", sig)
		cancel(errors.New("signal received"))
	}()

	if len(files) == 0 {
		res := scanReader(ctx, cfg, "(stdin)", os.Stdin)
		printResult(cfg, res, false)
		if res.err != nil {
			return res.err
		}
		if res.matched == 0 {
			return errNoMatch
		}
		return nil
	}

	results := make([]*fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			results[i] = scanFile(gctx, cfg, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	matched := 0
	withNames := len(files) > 1
	for _, res := range results {
		if res.err != nil {
			logger.Warn("skipping file", "file", res.name, "error", res.err)
			continue
		}
		printResult(cfg, res, withNames)
		matched += res.matched
	}
	if err := context.Cause(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if matched == 0 {
		return errNoMatch
	}
	return nil
}

func parseSyllabify(s string) (kre.Syllabify, error) {
	switch s {
	case "none":
		return kre.SyllabifyNone, nil
	case "minimal":
		return kre.SyllabifyMinimal, nil
	case "extended":
		return kre.SyllabifyExtended, nil
	case "full":
		return kre.SyllabifyFull, nil
	}
	return 0, fmt.Errorf("unknown syllabify policy %q", s)
}

func parseEncoding(s string) (func(io.Reader) io.Reader, error) {
	switch strings.ToLower(s) {
	case "utf-8", "utf8":
		return func(r io.Reader) io.Reader { return r }, nil
	case "euc-kr", "euckr", "cp949":
		return func(r io.Reader) io.Reader {
			return transform.NewReader(r, korean.EUCKR.NewDecoder())
		}, nil
	}
	return nil, fmt.Errorf("unknown encoding %q", s)
}

// outputLine is one line that matched, already rendered for printing.
type outputLine struct {
	num  int
	text string
}

type fileResult struct {
	name    string
	lines   []outputLine
	matched int // matching line count, the -c number
	err     error
}

func scanFile(ctx context.Context, cfg config, name string) *fileResult {
	f, err := os.Open(name)
	if err != nil {
		return &fileResult{name: name, err: err}
	}
	defer f.Close()
	return scanReader(ctx, cfg, name, f)
}

func scanReader(ctx context.Context, cfg config, name string, r io.Reader) *fileResult {
	res := &fileResult{name: name}
	sc := bufio.NewScanner(cfg.decode(r))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	num := 0
	for sc.Scan() {
		if ctx.Err() != nil {
			res.err = context.Cause(ctx)
			return res
		}
		num++
		line := sc.Text()

		if cfg.hasReplace {
			out, n, err := cfg.pattern.Subn(cfg.replace, line, kre.WithSyllabify(cfg.syllabify))
			if err != nil {
				res.err = fmt.Errorf("line %d: %w", num, err)
				return res
			}
			if n == 0 {
				continue
			}
			res.matched++
			res.lines = append(res.lines, outputLine{num: num, text: out})
		} else {
			ms, err := cfg.pattern.FindIter(line)
			if err != nil {
				res.err = fmt.Errorf("line %d: %w", num, err)
				return res
			}
			if ms == nil {
				continue
			}
			res.matched++
			if cfg.onlyMatches {
				for _, m := range ms {
					if text := m.Group(0); text != "" {
						res.lines = append(res.lines, outputLine{num: num, text: matchStyle.Render(text)})
					}
				}
			} else {
				res.lines = append(res.lines, outputLine{num: num, text: highlight(line, ms)})
			}
		}
		if cfg.maxCount > 0 && res.matched >= cfg.maxCount {
			break
		}
	}
	if err := sc.Err(); err != nil && res.err == nil {
		res.err = err
	}
	return res
}

// highlight styles the matched syllables of a line. Zero-width matches
// report the enclosing syllable, so consecutive spans may share it; the
// stretch already written is never rewritten.
func highlight(line string, ms []*kre.Match) string {
	runes := []rune(line)
	var b strings.Builder
	prev := 0
	for _, m := range ms {
		sp := m.Span(0)
		if sp.End <= prev {
			continue
		}
		start := max(sp.Start, prev)
		b.WriteString(string(runes[prev:start]))
		b.WriteString(matchStyle.Render(string(runes[start:sp.End])))
		prev = sp.End
	}
	b.WriteString(string(runes[prev:]))
	return b.String()
}

func printResult(cfg config, res *fileResult, withName bool) {
	prefix := ""
	if withName {
		prefix = fileStyle.Render(res.name) + ":"
	}
	if cfg.countOnly {
		fmt.Printf("%s%d\n", prefix, res.matched)
		return
	}
	for _, line := range res.lines {
		if cfg.lineNumbers {
			fmt.Printf("%s%s:%s\n", prefix, numStyle.Render(fmt.Sprintf("%d", line.num)), line.text)
		} else {
			fmt.Printf("%s%s\n", prefix, line.text)
		}
	}
}
