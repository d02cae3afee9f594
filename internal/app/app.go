package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerform/internal/record"
	"github.com/abhisek/careerform/internal/router"
	"github.com/abhisek/careerform/internal/screen"
	"github.com/abhisek/careerform/internal/screens/done"
	"github.com/abhisek/careerform/internal/screens/history"
	"github.com/abhisek/careerform/internal/screens/intro"
	"github.com/abhisek/careerform/internal/screens/survey"
	"github.com/abhisek/careerform/internal/session"
	"github.com/abhisek/careerform/internal/store"
	"github.com/abhisek/careerform/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Session *session.Session
	Logger  *zap.Logger

	// Restored reports whether a saved draft was loaded at startup.
	Restored bool

	// History backs the submission history screen. Nil hides it.
	History store.SubmissionRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx    context.Context
	sess   *session.Session
	logger *zap.Logger
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model starting on the intro screen.
func newAppModel(ctx context.Context, opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sess := opts.Session
	m := AppModel{
		ctx:    ctx,
		sess:   sess,
		logger: logger,
	}

	var formScreen func() screen.Screen
	formScreen = func() screen.Screen {
		return survey.New(ctx, sess, logger, func(rec record.FormRecord) screen.Screen {
			return done.New(rec, formScreen)
		})
	}
	clearDraft := func() error {
		return sess.Clear(ctx)
	}

	cfg := intro.Config{
		Restored: opts.Restored,
		Form:     formScreen,
		Clear:    clearDraft,
	}
	if opts.History != nil {
		cfg.History = func() screen.Screen { return history.New(opts.History) }
	}
	m.router = router.New(intro.New(cfg))
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			if err := m.sess.FlushPending(m.ctx); err != nil {
				m.logger.Warn("save draft on quit", zap.Error(err))
			}
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
