package runner

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/folio-runner/internal/core"
)

// Sprite characters
const (
	GroundChar     = '═'
	GroundMarkChar = '╧'
	StarFarChar    = '·'
	StarNearChar   = '✦'
	HeadChar       = '◉'
	BodyChar       = '█'
	LegLeft        = '╱'
	LegRight       = '╲'
	LegStraight    = '│'
	LegTucked      = '▀'
	PoleChar       = '│'
	FlagChar       = '▶'
)

// hudRows is the number of screen rows above the play field.
const hudRows = 1

// viewport maps world units onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := max(dst.Height()-hudRows, 1)
	return viewport{
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(rows) / worldH,
		top: hudRows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// rect converts a world box into cells, at least one cell in each direction.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1, y1 := v.col(b.Right()), v.row(b.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)

	g.drawScenery(dst, vp)

	for _, o := range g.obstacles.Obstacles() {
		dst.FillRect(vp.rect(o.Box()), o.Kind.Glyph, o.Kind.Color)
	}

	if g.goal.Visible {
		g.drawGoal(dst, vp)
	}

	g.drawRunner(dst, vp)
	g.drawHUD(dst)

	switch {
	case g.state == StateIdle:
		drawCenteredMessage(dst, "FOLIO RUNNER",
			"Jump the bugs, reach the flag",
			"Space/Enter to start")
	case g.state == StateOver:
		drawCenteredMessage(dst, "GAME OVER",
			g.reason,
			fmt.Sprintf("Score: %d", g.score),
			"R to restart")
	case g.state == StateWon:
		drawCenteredMessage(dst, "SHIPPED IT!",
			"You reached the finish flag",
			fmt.Sprintf("Score: %d", g.score),
			"R to run again")
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "P to resume")
	}
}

func (g *Game) drawScenery(dst *core.Screen, vp viewport) {
	for _, s := range g.scenery.Stars {
		ch, color := StarFarChar, core.ColorGray
		if s.Depth > 0.3 {
			ch, color = StarNearChar, core.ColorViolet
		}
		dst.SetColor(vp.col(s.X), vp.row(s.Y), ch, color)
	}

	groundRow := vp.row(g.cfg.World.GroundY)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, groundRow, GroundChar, core.ColorAccent)
	}

	spacing := g.cfg.Scenery.GroundMarkSpacing
	if spacing <= 0 {
		return
	}
	for x := -g.scenery.GroundOffset; x < g.cfg.World.Width; x += spacing {
		if x >= 0 {
			dst.SetColor(vp.col(x), groundRow, GroundMarkChar, core.ColorGray)
		}
	}
}

// drawRunner renders the player: a head, a body and two leg poses
// alternating over the run cycle. Legs tuck while airborne.
func (g *Game) drawRunner(dst *core.Screen, vp viewport) {
	r := vp.rect(g.player.Box())
	color := core.ColorAccent

	cx := r.X + r.W/2
	dst.SetColor(cx, r.Y, HeadChar, color)
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColor(x, y, BodyChar, color)
		}
	}

	legs := r.Bottom() - 1
	if legs <= r.Y {
		return
	}
	switch {
	case g.player.Jumping:
		for x := r.X; x < r.Right(); x++ {
			dst.SetColor(x, legs, LegTucked, color)
		}
	case g.player.Phase < g.cfg.Player.RunCycle/2:
		dst.SetColor(r.X, legs, LegLeft, color)
		dst.SetColor(r.Right()-1, legs, LegRight, color)
	default:
		dst.SetColor(cx-1, legs, LegStraight, color)
		dst.SetColor(cx, legs, LegStraight, color)
	}
}

func (g *Game) drawGoal(dst *core.Screen, vp viewport) {
	r := vp.rect(g.goal.Box())
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetColor(r.X, y, PoleChar, core.ColorWhite)
	}
	flagRows := max(r.H/2, 1)
	for y := r.Y; y < r.Y+flagRows; y++ {
		for x := r.X + 1; x < r.Right(); x++ {
			dst.SetColor(x, y, FlagChar, core.ColorViolet)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorAccent)

	speed := fmt.Sprintf(" Spd: %.1f ", g.speed)
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(speed)-2, 0, speed, core.ColorGray)
}

// drawCenteredMessage draws a framed message box in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	// Coloured spaces keep the panel opaque to backdrop effects.
	dst.FillRect(box, ' ', core.ColorWhite)
	dst.DrawBox(box)

	centered := func(y int, text string, c core.Color) {
		x := boxX + (boxW-utf8.RuneCountInString(text))/2
		dst.DrawTextColor(x, y, text, c)
	}
	centered(boxY+1, title, core.ColorAccent)
	for i, l := range lines {
		centered(boxY+3+i, l, core.ColorDefault)
	}
}
