// Package tui provides the Bubble Tea frontend: one key press is one turn.
package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/render"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// ID is the registry identifier of this frontend.
const ID = "tui"

// invalidKeyMessage replaces the line frontend's token hint.
const invalidKeyMessage = "Invalid move! Use the arrow keys or w, a, s, d."

func init() {
	registry.Register(ID, "Terminal UI", func(env registry.Env) registry.Frontend {
		return New(env)
	})
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game     *game.Game
	renderer *render.Renderer
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	message  string // Hint shown under the board until the next move
	quitting bool   // Player quit before the game ended
	finished bool   // Game reached Won or Lost
}

// NewModel creates a model for g.
func NewModel(g *game.Game, renderer *render.Renderer, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:     g,
		renderer: renderer,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		finished: g.Status().Terminal(),
	}
}

// Init quits immediately when the game is already over.
func (m Model) Init() tea.Cmd {
	if m.finished {
		return tea.Quit
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.finished || m.quitting {
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("player quit")
		return m, tea.Quit
	}

	dir, ok := game.DirectionFor(action)
	if !ok {
		m.logger.Debug("invalid key", "key", msg.String())
		m.message = invalidKeyMessage
		return m, nil
	}

	res := m.game.Play(dir)
	m.logger.Debug("move", "dir", dir, "changed", res.Changed, "gained", res.Gained, "status", res.Status)

	if !res.Changed {
		m.message = render.NoChangeMessage
		return m, nil
	}

	m.message = ""
	if res.Status.Terminal() {
		m.finished = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the board, score and either a hint, the outcome or help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderer.Board(m.game.Board()))
	b.WriteString(m.renderer.Score(m.game.Score()))
	b.WriteString("\n")

	if m.finished {
		b.WriteString(m.renderer.Outcome(m.game.Status()))
		b.WriteString("\n")
		return b.String()
	}

	if m.message != "" {
		b.WriteString(m.renderer.Notice(m.message))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Finished returns true once the game reached Won or Lost.
func (m Model) Finished() bool {
	return m.finished
}

// Quitting returns true if the player quit early.
func (m Model) Quitting() bool {
	return m.quitting
}

// Frontend runs a Bubble Tea program per session.
type Frontend struct {
	env      registry.Env
	renderer *render.Renderer
	logger   *log.Logger
}

// New creates a TUI frontend bound to env.
func New(env registry.Env) *Frontend {
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Frontend{
		env:      env,
		renderer: render.New(env.Out, env.Config.ColorEnabled),
		logger:   logger.WithPrefix("t2048/" + ID),
	}
}

// ID returns the frontend identifier.
func (f *Frontend) ID() string {
	return ID
}

// Title returns the display name.
func (f *Frontend) Title() string {
	return "Terminal UI"
}

// Run starts the program without the alternate screen so the final board
// stays visible after exit. Cancelling ctx stops the program without error.
func (f *Frontend) Run(ctx context.Context, g *game.Game) error {
	f.logger.Info("session started", "color", f.renderer.ColorEnabled())

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if f.env.In != nil {
		opts = append(opts, tea.WithInput(f.env.In))
	}
	if f.env.Out != nil {
		opts = append(opts, tea.WithOutput(f.env.Out))
	}

	p := tea.NewProgram(NewModel(g, f.renderer, f.logger), opts...)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			f.logger.Info("interrupted", "reason", ctx.Err())
			return nil
		}
		return err
	}
	return nil
}
