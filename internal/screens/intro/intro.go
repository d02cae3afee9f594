// Package intro is the landing screen shown before the form.
package intro

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerform/internal/form"
	"github.com/abhisek/careerform/internal/router"
	"github.com/abhisek/careerform/internal/screen"
	"github.com/abhisek/careerform/internal/ui/components"
	"github.com/abhisek/careerform/internal/ui/layout"
	"github.com/abhisek/careerform/internal/ui/theme"
)

// Config holds the intro screen's collaborators.
type Config struct {
	// Restored reports whether saved answers were loaded.
	Restored bool

	// Form builds the form screen.
	Form func() screen.Screen

	// History builds the submission history screen. Nil hides the entry.
	History func() screen.Screen

	// Clear discards saved answers. Nil disables the entry.
	Clear func() error
}

// IntroScreen explains the survey and offers to start or resume it.
type IntroScreen struct {
	formFactory    func() screen.Screen
	historyFactory func() screen.Screen
	onClear        func() error

	restored bool
	note     string
	menu     components.Menu
	started  bool
}

var _ screen.Screen = (*IntroScreen)(nil)

// New creates the intro screen.
func New(cfg Config) *IntroScreen {
	s := &IntroScreen{
		formFactory:    cfg.Form,
		historyFactory: cfg.History,
		onClear:        cfg.Clear,
		restored:       cfg.Restored,
	}
	s.buildMenu()
	return s
}

func (s *IntroScreen) buildMenu() {
	start := "Start survey"
	if s.restored {
		start = "Continue survey"
	}
	items := []components.MenuItem{
		{Label: start, Hint: fmt.Sprintf("%d short steps", form.TotalSteps), Action: s.start},
		{Label: "Clear saved answers", Action: s.clear, Disabled: !s.restored || s.onClear == nil},
	}
	if s.historyFactory != nil {
		items = append(items, components.MenuItem{Label: "Submission history", Action: s.history})
	}
	items = append(items, components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }})
	s.menu = components.NewMenu(items)
}

func (s *IntroScreen) history() tea.Cmd {
	next := s.historyFactory()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) start() tea.Cmd {
	if s.started {
		return nil
	}
	s.started = true
	next := s.formFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) clear() tea.Cmd {
	if err := s.onClear(); err != nil {
		s.note = "Could not clear saved answers: " + err.Error()
		return nil
	}
	s.restored = false
	s.note = "Saved answers cleared."
	s.buildMenu()
	return nil
}

func (s *IntroScreen) Title() string {
	return "Welcome"
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *IntroScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Tell us about yourself and where you want your career to go."),
		"",
	}

	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		for i := 1; i <= form.TotalSteps; i++ {
			sections = append(sections, theme.Hint.Render(fmt.Sprintf("%d. %s", i, form.StepTitle(i))))
		}
		sections = append(sections, "")
	}

	if s.restored {
		sections = append(sections, theme.Checked.Render("Your saved answers were restored."), "")
	}
	if s.note != "" {
		sections = append(sections, theme.Hint.Render(s.note), "")
	}

	sections = append(sections, s.menu.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
