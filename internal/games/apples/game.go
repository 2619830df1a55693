package apples

import (
	"fmt"

	"github.com/vovakirdan/apple-picking/internal/core"
	"github.com/vovakirdan/apple-picking/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeDaily   Mode = "daily"
)

// Game IDs used by the registry and score storage.
const (
	IDClassic = "apples"
	IDDaily   = "apples_daily"
)

// On-screen geometry.
const (
	cellW      = 3 // " 7 "
	hudRows    = 2 // title/score line + timer bar
	flashTicks = 12
)

// Game adapts a Session to the terminal frame loop: it turns frames into
// one-second countdown ticks, keys and mouse drags into selections, and the
// session into a screen.
type Game struct {
	mode    Mode
	session *Session
	cfg     core.RuntimeConfig

	tick     uint64
	frame    int // Frames since the last countdown tick
	screenW  int
	screenH  int
	layout   Layout
	drag     Drag
	missed   bool // Press landed off the grid; its release is a miss
	tooSmall bool
	paused   bool

	cursor    Coord
	anchor    Coord
	anchorSet bool

	flash      Rect
	flashOK    bool
	flashTicks int
	lastGain   int
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewDaily creates a daily-seed game: every player gets the same board today.
func NewDaily() *Game {
	return &Game{mode: ModeDaily}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDDaily, func() registry.Game {
		return NewDaily()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeDaily {
		return IDDaily
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDaily {
		return "Apple Picking (Daily Seed)"
	}
	return "Apple Picking"
}

// Reset starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.cfg = cfg

	g.session = NewSession(Options{
		Width:        cfg.GridW,
		Height:       cfg.GridH,
		RoundSeconds: cfg.RoundSeconds,
		Seed:         cfg.Seed,
		Daily:        g.mode == ModeDaily,
		PlayerName:   cfg.PlayerName,
		Submitter:    cfg.Submitter,
	})
	g.session.Subscribe(g.onEvent)

	g.tick = 0
	g.frame = 0
	g.paused = false
	g.anchorSet = false
	g.missed = false
	g.flashTicks = 0
	g.lastGain = 0

	g.session.Start()

	grid := g.session.Grid()
	g.cursor = Coord{Row: grid.Height() / 2, Col: grid.Width() / 2}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the on-screen layout. The round keeps running.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.session == nil {
		return
	}

	grid := g.session.Grid()
	gridW := grid.Width() * cellW
	// HUD, box border above and below, footer
	g.tooSmall = width < gridW+2 || height < hudRows+grid.Height()+3

	g.layout = Layout{
		OriginX: (width - gridW) / 2,
		OriginY: hudRows + 1,
		CellW:   cellW,
		CellH:   1,
		Rows:    grid.Height(),
		Cols:    grid.Width(),
	}
	g.drag = NewDrag(g.layout)
}

// onEvent turns session events into presentation state.
func (g *Game) onEvent(ev Event) {
	switch e := ev.(type) {
	case SelectionSucceededEvent:
		g.lastGain = e.Gained
		g.startFlash(e.Rect, true)
	case SelectionFailedEvent:
		g.startFlash(e.Rect, false)
	case RoundEndedEvent:
		g.anchorSet = false
		g.drag.Cancel()
	}
}

func (g *Game) startFlash(r Rect, ok bool) {
	if !g.cfg.Feedback || r.Empty() {
		return
	}
	g.flash = r
	g.flashOK = ok
	g.flashTicks = flashTicks
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if !g.session.IsActive() {
		// Restart is handled by the platform calling Reset
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.drag.Cancel()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleKeys(in)
	g.handlePointer(in.Pointer)

	// Countdown: one session tick per TickRate frames
	if g.session.IsActive() {
		g.frame++
		if g.frame >= g.cfg.TickRate {
			g.frame = 0
			//nolint:errcheck // Only fails when the round is over, checked above
			g.session.Tick()
		}
	}

	return core.StepResult{State: g.State()}
}

// handleKeys moves the cursor and commits anchor-to-cursor selections.
func (g *Game) handleKeys(in core.InputFrame) {
	grid := g.session.Grid()

	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, grid.Height()-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, grid.Width()-1)

	if in.Has(core.ActionCancel) {
		g.anchorSet = false
	}

	if in.Has(core.ActionSelect) {
		if !g.anchorSet {
			g.anchor = g.cursor
			g.anchorSet = true
			return
		}
		g.anchorSet = false
		g.selectRect(RectFrom(g.anchor, g.cursor))
	}
}

// handlePointer feeds mouse events through the drag adapter.
func (g *Game) handlePointer(events []core.PointerEvent) {
	for _, ev := range events {
		switch ev.Kind {
		case core.PointerPress:
			g.missed = !g.drag.Begin(ev.X, ev.Y)
			if !g.missed {
				g.anchorSet = false
			}
		case core.PointerMove:
			g.drag.Move(ev.X, ev.Y)
		case core.PointerRelease:
			if !g.drag.Active() {
				if g.missed {
					g.missed = false
					g.selectRect(NoSelection)
				}
				continue
			}
			r := g.drag.End(ev.X, ev.Y)
			g.cursor = Coord{Row: r.MaxRow, Col: r.MaxCol}
			g.selectRect(r)
		}
	}
}

func (g *Game) selectRect(r Rect) {
	if !g.session.IsActive() {
		return
	}
	//nolint:errcheck // Rectangles come from clamped cursors and drags
	g.session.Select(r)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateEnded,
		Paused:   g.paused || g.tooSmall,
	}
}

// Session exposes the underlying round, mainly for tests and tooling.
func (g *Game) Session() *Session {
	return g.session
}

// Layout returns the current screen layout of the grid.
func (g *Game) Layout() Layout {
	return g.layout
}

// selection returns the rectangle the player is currently building.
func (g *Game) selection() Rect {
	if g.drag.Active() {
		return g.drag.Current()
	}
	if g.anchorSet {
		return RectFrom(g.anchor, g.cursor)
	}
	return NoSelection
}

// Render draws the HUD, the timer bar and the grid.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorFlash)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d",
			g.layout.Cols*cellW+2, hudRows+g.layout.Rows+3), core.ColorMuted)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderFooter(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	b := g.layout.Bounds()

	title := "APPLE PICKING"
	if g.mode == ModeDaily {
		title = fmt.Sprintf("DAILY %d", g.session.Seed())
	}
	dst.DrawTextColored(b.X, 0, title, core.ColorLeaf)

	score := fmt.Sprintf("Score %d", g.session.Score())
	if g.lastGain > 0 && g.flashTicks > 0 {
		score = fmt.Sprintf("+%d  %s", g.lastGain, score)
	}
	remaining := g.session.TimeRemaining()
	clock := fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
	right := score + "  " + clock
	dst.DrawTextColored(b.Right()-len(right), 0, right, core.ColorHUD)

	// Timer bar
	width := b.W
	filled := int(g.session.Progress()*float64(width) + 0.5)
	color := core.ColorTimer
	if g.session.Progress() < 0.25 {
		color = core.ColorTimerLow
	}
	dst.DrawHLine(b.X, 1, filled, '█', color)
	dst.DrawHLine(b.X+filled, 1, width-filled, '░', core.ColorMuted)
}

func (g *Game) renderGrid(dst *core.Screen) {
	b := g.layout.Bounds()
	dst.DrawBox(core.NewRect(b.X-1, b.Y-1, b.W+2, b.H+2), core.ColorMuted)

	grid := g.session.Grid()
	sel := g.selection()
	showCursor := g.session.IsActive() && !g.drag.Active()

	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			c := Coord{Row: row, Col: col}
			cell, _ := grid.CellAt(row, col)
			x, y := g.layout.ScreenPos(c)

			glyph := '·'
			color := core.ColorCleared
			if cell.Occupied {
				glyph = rune('0' + cell.Value)
				color = core.ColorApple
			}

			switch {
			case g.flashTicks > 0 && g.flash.Contains(c):
				if g.flashOK {
					color = core.ColorSelection
				} else {
					color = core.ColorFlash
				}
			case sel.Contains(c):
				color = core.ColorSelection
			}

			left, right := ' ', ' '
			if showCursor && c == g.cursor {
				left, right = '[', ']'
				color = core.ColorCursor
			}

			dst.SetColored(x, y, left, color)
			dst.SetColored(x+1, y, glyph, color)
			dst.SetColored(x+2, y, right, color)
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	b := g.layout.Bounds()
	y := b.Bottom() + 1

	switch {
	case g.session.State() == StateEnded:
		mid := b.Y + b.H/2
		dst.DrawTextCentered(mid-1, "  TIME'S UP!  ", core.ColorFlash)
		dst.DrawTextCentered(mid, fmt.Sprintf("  Final score: %d  ", g.session.Score()), core.ColorHUD)
		dst.DrawTextCentered(y, "R: play again  B: menu  Q: quit", core.ColorMuted)
	case g.paused:
		dst.DrawTextCentered(y, "PAUSED - P to resume", core.ColorCursor)
	case g.anchorSet:
		sum := Evaluate(RectFrom(g.anchor, g.cursor), g.session.Grid()).Sum
		dst.DrawTextCentered(y, fmt.Sprintf("sum %d - space: pick  x: cancel", sum), core.ColorMuted)
	default:
		dst.DrawTextCentered(y, "drag or space+arrows to box in 10  P: pause  B: menu", core.ColorMuted)
	}
}
