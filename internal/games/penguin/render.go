package penguin

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/penguin-ski/internal/core"
	"github.com/vovakirdan/penguin-ski/internal/ski"
)

// Glyphs for slope objects.
const (
	RockChar      = '#'
	TreeChar      = '^'
	RampChar      = '/'
	FishChar      = '>'
	IceChar       = '='
	CrevasseChar  = '|'
	MogulChar     = 'n'
	SnowdriftChar = '*'
	SnowChar      = '.'
	ShadowChar    = '_'
)

type glyph struct {
	r rune
	c core.Color
}

var objectGlyphs = map[ski.ObjectType]glyph{
	ski.Rock:      {RockChar, core.ColorGray},
	ski.Tree:      {TreeChar, core.ColorGreen},
	ski.Ramp:      {RampChar, core.ColorOrange},
	ski.Fish:      {FishChar, core.ColorYellow},
	ski.Ice:       {IceChar, core.ColorBrightCyan},
	ski.Crevasse:  {CrevasseChar, core.ColorBlue},
	ski.Mogul:     {MogulChar, core.ColorWhite},
	ski.Snowdrift: {SnowdriftChar, core.ColorBrightWhite},
}

// rotationGlyphs show the body turning through a flip, one per eighth turn.
var rotationGlyphs = []rune{'o', '/', '-', '\\'}

// viewport maps world coordinates onto the slope area of the screen.
// Row 0 is the HUD and the last row is the status bar.
type viewport struct {
	top    int
	rows   int
	sx, sy float64
}

func newViewport(dst *core.Screen) viewport {
	rows := max(dst.Height()-2, 1)
	return viewport{
		top:  1,
		rows: rows,
		sx:   float64(dst.Width()) / ski.ViewWidth,
		sy:   float64(rows) / ski.ViewHeight,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.run == nil {
		return
	}
	snap := g.run.Snapshot()
	vp := newViewport(dst)

	g.drawSnow(dst, vp, snap.State.Distance)
	for _, o := range snap.Objects {
		g.drawObject(dst, vp, o)
	}
	g.drawPenguin(dst, vp, snap.Player)
	g.drawHUD(dst, snap)
	g.drawStatusBar(dst, snap)

	if g.paused {
		g.drawCenteredMessage(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	}
	if snap.State.GameOver {
		g.drawCenteredMessage(dst, core.ColorRed, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Distance: %.0f", snap.State.Score, snap.State.Distance),
			"Press R to restart")
	}
}

// drawSnow scatters texture that scrolls with distance so motion reads on an
// empty slope.
func (g *Game) drawSnow(dst *core.Screen, vp viewport, distance float64) {
	w := dst.Width()
	if w == 0 {
		return
	}
	const spacing = 40.0
	for r := 0; r < vp.rows; r++ {
		y := float64(r)/vp.sy + distance
		next := math.Ceil(y/spacing) * spacing
		if next >= y+1/vp.sy {
			continue
		}
		band := int(next / spacing)
		dst.SetColored((band*37)%w, vp.top+r, SnowChar, core.ColorGray)
	}
}

func (g *Game) drawObject(dst *core.Screen, vp viewport, o ski.SlopeObject) {
	gl, ok := objectGlyphs[o.Type]
	if !ok {
		return
	}
	color := gl.c
	if o.Type == ski.Tree && o.Hit {
		color = core.ColorRed
	}

	x0, x1 := vp.col(o.X-o.Width/2), vp.col(o.X+o.Width/2)
	y0, y1 := vp.row(o.Y-o.Height/2), vp.row(o.Y+o.Height/2)
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	for y := y0; y < y1; y++ {
		if y < vp.top || y >= vp.top+vp.rows {
			continue
		}
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, gl.r, color)
		}
	}
}

func (g *Game) drawPenguin(dst *core.Screen, vp viewport, p ski.PlayerView) {
	cx := vp.col(p.X)
	ground := vp.row(p.Y)
	lift := int(math.Round((p.AirHeight + p.Bounce) * vp.sy))

	if p.Airborne {
		dst.SetColored(cx, ground, ShadowChar, core.ColorGray)
	}
	if !p.Visible {
		return
	}

	left, right := '(', ')'
	switch p.Posture {
	case ski.PostureTuck:
		left, right = '|', '|'
	case ski.PostureSpread:
		left, right = '<', '>'
	}

	body := rotationGlyphs[0]
	if p.Airborne {
		step := int(math.Round(p.Rotation / (math.Pi / 4)))
		n := len(rotationGlyphs)
		body = rotationGlyphs[((step%n)+n)%n]
	}

	y := ground - lift
	c := penguinColor(p)
	dst.SetColored(cx-1, y, left, c)
	dst.SetColored(cx, y, body, c)
	dst.SetColored(cx+1, y, right, c)
}

func penguinColor(p ski.PlayerView) core.Color {
	switch {
	case p.Crashed, p.Flinging:
		return core.ColorRed
	case p.Invincible:
		return core.ColorYellow
	case p.Slippery:
		return core.ColorBrightCyan
	case p.Snowdrifted:
		return core.ColorGray
	default:
		return core.ColorBrightWhite
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap ski.Snapshot) {
	s := snap.State
	left := fmt.Sprintf(" %s  Dist %.0f  Score %d", g.level.Title(), s.Distance, s.Score)
	if s.Combo > 1 {
		left += fmt.Sprintf("  x%d", s.Combo)
	}
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	lives := strings.Repeat("♥", s.Lives) + strings.Repeat("♡", max(ski.StartingLives-s.Lives, 0))
	right := fmt.Sprintf("Spd %3.0f  %s ", s.Speed, lives)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorRed)
}

func (g *Game) drawStatusBar(dst *core.Screen, snap ski.Snapshot) {
	y := dst.Height() - 1
	x := 1
	for _, e := range effects(snap) {
		dst.DrawTextColored(x, y, e.text, e.color)
		x += len(e.text) + 1
	}

	if g.status.active() {
		dst.DrawTextCenteredColored(y, g.status.text, g.status.color)
	}

	if g.hasBest {
		best := fmt.Sprintf("Best %d / %.0f ", g.best, g.bestDist)
		dst.DrawTextColored(dst.Width()-len(best), y, best, core.ColorGray)
	}
}

type effect struct {
	text  string
	color core.Color
}

// effects lists the active status effects for the bottom bar.
func effects(snap ski.Snapshot) []effect {
	p := snap.Player
	var out []effect
	if p.Airborne {
		out = append(out, effect{"AIR", core.ColorBrightCyan})
	}
	if p.Slippery {
		out = append(out, effect{"ICE", core.ColorCyan})
	}
	if p.Snowdrifted {
		out = append(out, effect{"SNOW", core.ColorWhite})
	}
	if p.Invincible {
		out = append(out, effect{"SAFE", core.ColorYellow})
	}
	if p.Crashed {
		out = append(out, effect{"DAZED", core.ColorRed})
	}
	return out
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := 4 + len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, c)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+3+i, l)
	}
}
