// kreplay is an interactive pattern playground. Type a pattern, sample
// text, and optionally a replacement template; matches, captures, and the
// substitution preview update on every keystroke. Compiled patterns come
// out of the package cache, so retyping a recent pattern is instant.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/jusunglee/kre"
	"github.com/jusunglee/kre/internal/logger"
)

const (
	fieldPattern = iota
	fieldText
	fieldRepl
	fieldCount
)

const defaultText = "아리랑 아리랑 아라리요. 아리랑 고개로 넘어간다."

const maxShown = 8

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	spanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

type model struct {
	inputs     []textinput.Model
	focus      int
	boundaries bool
	syllabify  kre.Syllabify

	pattern *kre.Pattern
	matches []*kre.Match
	subbed  string
	subN    int
	err     error

	width  int
	height int
}

func initialModel() model {
	labels := []string{"pattern", "text", "replacement"}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 60
		ti.Placeholder = labels[i]
		inputs[i] = ti
	}
	inputs[fieldPattern].SetValue("ㅏㄹ")
	inputs[fieldPattern].Focus()

	text := defaultText
	if env := os.Getenv("KREPLAY_TEXT"); env != "" {
		text = env
	}
	inputs[fieldText].SetValue(text)

	m := model{inputs: inputs}
	m.recompute()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % fieldCount
			m.inputs[m.focus].Focus()
			return m, nil
		case "shift+tab":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + fieldCount - 1) % fieldCount
			m.inputs[m.focus].Focus()
			return m, nil
		case "ctrl+b":
			m.boundaries = !m.boundaries
			m.recompute()
			return m, nil
		case "ctrl+s":
			m.syllabify = (m.syllabify + 1) % 4
			m.recompute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}

func (m *model) recompute() {
	m.pattern = nil
	m.matches = nil
	m.subbed = ""
	m.subN = 0
	m.err = nil

	pattern := m.inputs[fieldPattern].Value()
	text := m.inputs[fieldText].Value()
	if pattern == "" || text == "" {
		return
	}

	var opts []kre.Option
	if m.boundaries {
		opts = append(opts, kre.WithBoundaries())
	}
	p, err := kre.Compile(pattern, opts...)
	if err != nil {
		m.err = err
		return
	}
	m.pattern = p

	if m.matches, err = p.FindIter(text); err != nil {
		m.err = err
		return
	}

	if repl := m.inputs[fieldRepl].Value(); repl != "" {
		if m.subbed, m.subN, err = p.Subn(repl, text, kre.WithSyllabify(m.syllabify)); err != nil {
			m.err = err
		}
	}
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("kre playground"))
	s.WriteString("\n\n")

	labels := []string{"Pattern", "Text   ", "Replace"}
	for i, in := range m.inputs {
		s.WriteString(labelStyle.Render(labels[i]))
		s.WriteString(" ")
		s.WriteString(in.View())
		s.WriteString("\n")
	}
	s.WriteString("\n")

	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render(m.err.Error()))
		s.WriteString("\n")
	case m.matches == nil:
		s.WriteString(dimStyle.Render("no matches"))
		s.WriteString("\n")
	default:
		s.WriteString(highlight(m.inputs[fieldText].Value(), m.matches))
		s.WriteString("\n\n")
		s.WriteString(m.matchList())
	}

	if m.subbed != "" {
		s.WriteString("\n")
		s.WriteString(labelStyle.Render(fmt.Sprintf("Substituted (%d):", m.subN)))
		s.WriteString(" ")
		s.WriteString(m.subbed)
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(dimStyle.Render(fmt.Sprintf(
		"tab=next field • ctrl+b=boundaries:%s • ctrl+s=syllabify:%s • esc=quit",
		onOff(m.boundaries), m.syllabify,
	)))

	return boxStyle.Render(s.String())
}

func (m model) matchList() string {
	var s strings.Builder
	for i, match := range m.matches {
		if i == maxShown {
			s.WriteString(dimStyle.Render(fmt.Sprintf("… and %d more", len(m.matches)-maxShown)))
			s.WriteString("\n")
			break
		}
		s.WriteString(fmt.Sprintf("%2d. %s %s",
			i+1, spanStyle.Render(match.Span(0).String()), match.Group(0)))
		if m.pattern.NumGroups() > 0 {
			groups := lo.Map(match.Groups(), func(g string, n int) string {
				return fmt.Sprintf("%d:%q", n+1, g)
			})
			s.WriteString(dimStyle.Render("  " + strings.Join(groups, " ")))
		}
		s.WriteString("\n")
	}
	return s.String()
}

// highlight styles the matched syllables of the sample text. Zero-width
// matches report the enclosing syllable, so spans may share characters;
// each character is styled at most once.
func highlight(text string, ms []*kre.Match) string {
	runes := []rune(text)
	var b strings.Builder
	prev := 0
	for _, match := range ms {
		sp := match.Span(0)
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

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func main() {
	_ = godotenv.Load()
	logger.Init()

	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}
