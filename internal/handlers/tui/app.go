package tui

import (
	"context"
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/tenzies/internal/assets"
	"github.com/KirkDiggler/tenzies/internal/services/game"
)

var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilGameService = errors.New("game service cannot be nil")
	ErrNilSurface     = errors.New("surface cannot be nil")
	ErrNilScheduler   = errors.New("scheduler cannot be nil")
	ErrNilFaceSource  = errors.New("face source cannot be nil")
)

// Config holds the dependencies of the terminal app
type Config struct {
	GameService game.Service
	Surface     *Surface
	Scheduler   *Scheduler
	Faces       assets.FaceSource
}

// App is the bubbletea model for the dice table
type App struct {
	ctx       context.Context
	game      game.Service
	surface   *Surface
	scheduler *Scheduler
	faces     assets.FaceSource
	keys      keyMap
	help      help.Model
	width     int

	// face values already reported missing
	missing map[int]bool
}

// New creates the terminal app
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.Surface == nil {
		return nil, ErrNilSurface
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if cfg.Faces == nil {
		return nil, ErrNilFaceSource
	}

	return &App{
		ctx:       context.Background(),
		game:      cfg.GameService,
		surface:   cfg.Surface,
		scheduler: cfg.Scheduler,
		faces:     cfg.Faces,
		keys:      newKeyMap(),
		help:      help.New(),
		missing:   make(map[int]bool),
	}, nil
}

// Init draws the opening table
func (a *App) Init() tea.Cmd {
	if _, err := a.game.Refresh(a.ctx, &game.RefreshInput{}); err != nil {
		log.Printf("Error refreshing table: %v", err)
	}
	a.syncKeys()
	return a.scheduler.Flush()
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		return a, nil

	case stepMsg:
		msg.fn()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Roll):
			a.roll()
		case key.Matches(msg, a.keys.Reset):
			a.reset()
		case key.Matches(msg, a.keys.Hold):
			if index, ok := dieIndex(msg.String()); ok {
				a.toggleHold(index)
			}
		}
	}

	a.syncKeys()
	return a, a.scheduler.Flush()
}

func (a *App) roll() {
	output, err := a.game.Roll(a.ctx, &game.RollInput{})
	if err != nil {
		log.Printf("Error rolling dice: %v", err)
		return
	}
	if !output.Status.Accepted() {
		log.Printf("Roll rejected: %s", output.Status)
	}
}

func (a *App) toggleHold(index int) {
	if _, err := a.game.ToggleHold(a.ctx, &game.ToggleHoldInput{Index: index}); err != nil {
		log.Printf("Error holding die %d: %v", index, err)
	}
}

func (a *App) reset() {
	if _, err := a.game.Reset(a.ctx, &game.ResetInput{}); err != nil {
		log.Printf("Error resetting game: %v", err)
	}
}

// syncKeys hides the actions the game has hidden
func (a *App) syncKeys() {
	state := a.surface.snapshot()
	a.keys.Roll.SetEnabled(state.rollVisible)
	a.keys.Reset.SetEnabled(state.resetVisible)
}
