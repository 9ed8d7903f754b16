package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pingpongcat/sky-over-kharkov/internal/config"
	"github.com/pingpongcat/sky-over-kharkov/internal/core"
	"github.com/pingpongcat/sky-over-kharkov/internal/game"
	"github.com/pingpongcat/sky-over-kharkov/internal/storage"
)

// bannerSecs is how long the target-destroyed banner stays up.
const bannerSecs = 1.0

// Options carries the runtime parameters of one play session.
type Options struct {
	TickRate int    // simulation ticks per second
	Seed     int64  // 0 means time-based
	Player   string // name recorded with scores
	ScreenW  int    // initial screen size, replaced by the first resize
	ScreenH  int
}

// normalize fills unset options with defaults.
func (o Options) normalize() Options {
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.ScreenW <= 0 {
		o.ScreenW = 80
	}
	if o.ScreenH <= 0 {
		o.ScreenH = 24
	}
	return o
}

// Model is the Bubble Tea model that runs one match. It owns the
// simulation, translates terminal input to field intents, and persists
// results on game over.
type Model struct {
	match  *game.Match
	cfg    *config.Config
	screen *core.Screen
	store  *storage.Store
	opts   Options

	frame  core.InputFrame
	status game.Status

	// Crosshair position in screen cells, for keyboard aiming.
	crossX, crossY int

	shots       int
	hits        int
	startedAt   time.Time
	saved       bool
	bannerTicks int
	quitting    bool
}

// NewModel creates a model for a fresh match.
func NewModel(cfg *config.Config, store *storage.Store, opts Options) Model {
	opts = opts.normalize()

	return Model{
		match:  game.NewMatch(cfg, opts.Seed),
		cfg:    cfg,
		screen: core.NewScreen(opts.ScreenW, opts.ScreenH),
		store:  store,
		opts:   opts,
		frame:  core.NewInputFrame(),
		crossX: opts.ScreenW / 2,
		crossY: opts.ScreenH / 2,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// projection maps the play field onto the current screen.
func (m Model) projection() core.Projection {
	return core.NewProjection(
		m.cfg.Field.Width, m.cfg.Field.Height,
		m.screen.Width(), m.screen.Height(),
	)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := MapKey(msg)

	if cmd.Quit {
		m.persistResult("quit")
		m.quitting = true
		return m, tea.Quit
	}
	if cmd.Action != core.ActionNone {
		m.frame.Set(cmd.Action)
	}
	if cmd.Level != 0 {
		m.frame.Level = cmd.Level
	}
	if cmd.MoveX != 0 || cmd.MoveY != 0 {
		m.crossX = core.Clamp(m.crossX+cmd.MoveX, 0, m.screen.Width()-1)
		m.crossY = core.Clamp(m.crossY+cmd.MoveY, 0, m.screen.Height()-1)
		pt := m.projection().Field(m.crossX, m.crossY)
		m.frame.PointerMoved = true
		m.frame.PointerX, m.frame.PointerY = pt.X, pt.Y
	}
	if cmd.Fire {
		pt := m.projection().Field(m.crossX, m.crossY)
		m.frame.FirePressed = true
		m.frame.FireX, m.frame.FireY = pt.X, pt.Y
	}

	return m, nil
}

// handleMouse aims with pointer motion and fires on left press.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.crossX = core.Clamp(msg.X, 0, m.screen.Width()-1)
	m.crossY = core.Clamp(msg.Y, 0, m.screen.Height()-1)
	pt := m.projection().Field(m.crossX, m.crossY)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.frame.PointerMoved = true
		m.frame.PointerX, m.frame.PointerY = pt.X, pt.Y
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.frame.PointerMoved = true
			m.frame.PointerX, m.frame.PointerY = pt.X, pt.Y
			m.frame.FirePressed = true
			m.frame.FireX, m.frame.FireY = pt.X, pt.Y
		}
	}

	return m, nil
}

// handleResize adjusts the screen buffer. The simulation itself is
// resolution independent, so the match keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.crossX = core.Clamp(m.crossX, 0, m.screen.Width()-1)
	m.crossY = core.Clamp(m.crossY, 0, m.screen.Height()-1)
	return m, nil
}

// handleTick advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.opts.TickRate)
	res := m.match.Step(m.frame, dt)

	for _, e := range res.Events {
		switch e {
		case game.EventShotFired:
			m.shots++
		case game.EventTargetDestroyed:
			m.hits++
			m.bannerTicks = int(bannerSecs * float64(m.opts.TickRate))
		}
	}
	if m.bannerTicks > 0 {
		m.bannerTicks--
	}

	// A level selection starts a new recorded match.
	if res.Status.Started && !m.status.Started {
		m.startedAt = time.Now()
		m.shots, m.hits = 0, 0
		m.saved = false
	}
	m.status = res.Status

	if m.status.GameOver {
		m.persistResult("gameover")
	}

	m.frame.Clear()
	return m, tickCmd(m.opts.TickRate)
}

// persistResult saves the score and match record once per match.
func (m *Model) persistResult(reason string) {
	if m.store == nil || m.saved || !m.status.Started {
		return
	}
	m.saved = true

	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveScore(m.status.Level, m.opts.Player, m.status.Score)
	//nolint:errcheck // Best-effort save
	m.store.SaveMatch(storage.MatchRecord{
		Level:        m.status.Level,
		Player:       m.opts.Player,
		Score:        m.status.Score,
		ShotsFired:   m.shots,
		TargetsHit:   m.hits,
		EndReason:    reason,
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
	})
}

// idle reports whether the match is at a point where leaving the game
// view loses nothing (level select, paused, or game over).
func (m Model) idle() bool {
	return !m.status.Started || m.status.Paused || m.status.GameOver
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.match.Render(m.screen)
	if m.bannerTicks > 0 && m.status.Started && !m.status.GameOver {
		m.screen.DrawTextCenteredColored(2, "TARGET DOWN", core.ColorBrightGreen)
	}
	return RenderScreen(m.screen)
}

// SessionModel manages the full session flow: the match view plus the
// scoreboard view, toggled with tab while the match is idle.
type SessionModel struct {
	game     Model
	scores   ScoreboardModel
	store    *storage.Store
	inScores bool
	tickDead bool
	quitting bool
	width    int
	height   int
}

// NewSessionModel creates a session around a fresh match.
func NewSessionModel(cfg *config.Config, store *storage.Store, opts Options) SessionModel {
	opts = opts.normalize()
	return SessionModel{
		game:   NewModel(cfg, store, opts),
		store:  store,
		width:  opts.ScreenW,
		height: opts.ScreenH,
	}
}

// Init starts the session.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the active view.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
	}

	if m.inScores {
		return m.updateScores(msg)
	}
	return m.updateGame(msg)
}

// updateGame handles messages while the match view is active.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if MapKey(key).Scores && m.game.idle() {
			m.inScores = true
			m.scores = NewScoreboardModel(m.store, m.width, m.height)
			return m, m.scores.Init()
		}
	}

	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}
	if m.game.quitting {
		m.quitting = true
	}
	return m, cmd
}

// updateScores handles messages while the scoreboard is active. Ticks
// are swallowed so the paused match does not advance behind the board.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		m.tickDead = true
		return m, nil
	}

	newModel, cmd := m.scores.Update(msg)
	if scoreModel, ok := newModel.(ScoreboardModel); ok {
		m.scores = scoreModel
	}

	if m.scores.IsQuitting() {
		m.game.persistResult("quit")
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.inScores = false
		if m.tickDead {
			m.tickDead = false
			return m, tickCmd(m.game.opts.TickRate)
		}
		return m, nil
	}

	return m, cmd
}

// View renders the active view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inScores {
		return m.scores.View()
	}
	return m.game.View()
}

// Run starts the interactive session in the local terminal.
func Run(cfg *config.Config, store *storage.Store, opts Options) error {
	model := NewSessionModel(cfg, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse aiming
	)

	_, err := p.Run()
	return err
}
