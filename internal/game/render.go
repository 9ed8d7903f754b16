package game

import (
	"fmt"

	"github.com/pingpongcat/sky-over-kharkov/internal/core"
)

// Presentation tuning. Falling drones shrink toward this fraction of
// full size and blink at this rate once they are close to the ground.
const (
	droneMinScale = 0.2
	blinkHz       = 10.0

	minScreenW = 40
	minScreenH = 12
)

// Render draws the current frame onto dst. The field is projected onto
// whatever cell grid dst provides.
func (m *Match) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	if !m.status.Started {
		m.renderLevelSelect(dst)
		return
	}

	p := core.NewProjection(m.cfg.Field.Width, m.cfg.Field.Height, dst.Width(), dst.Height())

	m.renderGround(dst, p)
	m.renderDrones(dst, p)
	m.renderTurret(dst, p)
	m.renderProjectiles(dst, p)
	m.renderHUD(dst)
	m.renderAmmo(dst)

	if m.status.Ammo < m.cfg.Scoring.ShotCost {
		dst.DrawTextCenteredColored(dst.Height()/2, "OUT OF AMMO", core.ColorBrightRed)
	}

	if !m.status.Paused && !m.status.GameOver {
		cx, cy := p.Cell(m.pointer)
		dst.SetColored(cx, cy, '+', core.ColorBrightYellow)
	}

	// Modal overlays go on top of everything.
	if m.status.Paused {
		drawCenteredBox(dst, "PAUSED", "Press p to resume")
	}
	if m.status.GameOver {
		rect := drawCenteredBox(dst, "GAME OVER",
			fmt.Sprintf("Final score: %d", m.status.Score),
			"Press r to restart")
		dst.DrawTextColored(rect.X+(rect.W-len("GAME OVER"))/2, rect.Y+1, "GAME OVER", core.ColorBrightRed)
	}
}

// renderLevelSelect draws the pre-game menu with the difficulty choices
// and the current option toggles.
func (m *Match) renderLevelSelect(dst *core.Screen) {
	lines := []string{
		"SELECT LEVEL",
		"",
		"1  Addition and subtraction",
		"2  Adds multiplication",
		"3  Adds division",
		"",
		fmt.Sprintf("b breakdown: %-3s  n negatives: %-3s", onOff(m.showBreakdown), onOff(m.allowNegative)),
	}
	rect := drawCenteredBox(dst, "SKY OVER KHARKIV", lines...)

	dst.DrawTextColored(rect.X+(rect.W-len("SKY OVER KHARKIV"))/2, rect.Y+1, "SKY OVER KHARKIV", core.ColorBrightYellow)
	inner := rect.X + 2
	dst.DrawTextColored(inner, rect.Y+5, lines[2], core.ColorGreen)
	dst.DrawTextColored(inner, rect.Y+6, lines[3], core.ColorYellow)
	dst.DrawTextColored(inner, rect.Y+7, lines[4], core.ColorRed)
	dst.DrawTextColored(inner, rect.Y+9, lines[6], core.ColorGray)
}

// renderGround draws the ground line under the battlefield.
func (m *Match) renderGround(dst *core.Screen, p core.Projection) {
	_, row := p.Cell(core.Vec2{X: 0, Y: m.cfg.Field.Height - m.cfg.Turret.GroundMargin})
	for x := range dst.Width() {
		dst.SetColored(x, row, '▀', core.ColorGray)
	}
	for y := row + 1; y < dst.Height(); y++ {
		for x := range dst.Width() {
			dst.SetColored(x, y, '░', core.ColorGray)
		}
	}
}

// renderDrones draws every live drone, then overlays the answer labels
// so numbers are never hidden behind another sprite.
func (m *Match) renderDrones(dst *core.Screen, p core.Projection) {
	for i := range m.drones.pool {
		d := &m.drones.pool[i]
		if !d.Active || d.State == DroneDead {
			continue
		}
		if d.State == DroneFalling && d.Pos.Y >= m.cfg.Drones.NearGroundY {
			if int(d.AnimTimer*blinkHz)%2 == 0 {
				continue
			}
		}

		rect := p.CellRect(m.droneRectF(d))
		switch d.State {
		case DroneExploding:
			fillRect(dst, rect, '*', core.ColorBrightYellow)
		case DroneFalling:
			drawWedge(dst, rect, core.ColorRed)
		default:
			drawWedge(dst, rect, core.ColorGray)
		}
	}

	if m.status.Paused {
		return
	}
	for i := range m.drones.pool {
		d := &m.drones.pool[i]
		if !d.Active || d.State != DroneFlying {
			continue
		}
		b := m.drones.Bounds(i)
		label := fmt.Sprintf("%d", d.Answer)
		cx, cy := p.Cell(core.Vec2{X: b.X + b.W/2, Y: b.Y + b.H*0.15})
		dst.DrawTextColored(cx-len(label)/2, cy, label, core.ColorBrightRed)
	}
}

// droneRectF returns the drone's visual rectangle in field units.
// Falling drones shrink as they dive; a ground explosion stays small.
func (m *Match) droneRectF(d *Drone) core.RectF {
	size := m.cfg.Drones.Size
	scale := 1.0
	switch {
	case d.State == DroneFalling:
		span := m.cfg.Drones.GroundY - m.cfg.Waves.SpawnYMin
		if span > 0 {
			progress := core.ClampF((d.Pos.Y-m.cfg.Waves.SpawnYMin)/span, 0, 1)
			scale = 1 - progress*(1-droneMinScale)
		}
	case d.State == DroneExploding && d.Pos.Y >= m.cfg.Drones.GroundY:
		scale = droneMinScale
	}
	return core.RectF{X: d.Pos.X, Y: d.Pos.Y, W: size * scale, H: size * scale}
}

// renderTurret draws the gun with its barrel at the current aim step.
func (m *Match) renderTurret(dst *core.Screen, p core.Projection) {
	pos := m.turretPos()
	size := m.cfg.Turret.Size
	rect := p.CellRect(core.RectF{X: pos.X, Y: pos.Y, W: size, H: size})

	hullH := core.Max(rect.H/4, 1)
	domeH := core.Max(rect.H/5, 1)
	baseY := rect.Y + rect.H

	for y := baseY - hullH; y < baseY; y++ {
		for x := rect.X + 1; x < rect.Right(); x++ {
			dst.SetColored(x, y, '█', core.ColorGreen)
		}
	}

	domeW := core.Max(rect.W/2, 1)
	domeX := rect.X + (rect.W-domeW)/2
	for y := baseY - hullH - domeH; y < baseY-hullH; y++ {
		for x := domeX; x < domeX+domeW; x++ {
			dst.SetColored(x, y, '▓', core.ColorGreen)
		}
	}

	// Barrel slope per aim step, from near-horizontal to near-vertical.
	dirs := [aimSteps]struct{ dx, dy float64 }{
		{2.0, 0.3},
		{1.5, 0.8},
		{1.0, 1.0},
		{0.6, 1.4},
		{0.2, 1.8},
	}
	glyphs := [aimSteps]rune{'─', '╱', '╱', '╱', '│'}

	idx := core.Clamp(m.turret.AimIndex, 0, aimSteps-1)
	dir := dirs[idx]
	sx := domeX + domeW/2
	sy := baseY - hullH - domeH - 1
	length := core.Max(rect.H/2, 3)

	tipX, tipY := sx, sy
	for i := 1; i <= length; i++ {
		tipX = sx + int(dir.dx*float64(i)+0.5)
		tipY = sy - int(dir.dy*float64(i)+0.5)
		dst.SetColored(tipX, tipY, glyphs[idx], core.ColorGreen)
	}

	if m.turret.Firing && m.turret.FireFrame > 0 {
		flash := '*'
		if m.turret.FireFrame > 1 {
			flash = '+'
		}
		fx := tipX + int(dir.dx+0.5)
		fy := tipY - int(dir.dy+0.5)
		dst.SetColored(fx, fy, flash, core.ColorBrightYellow)
	}
}

// renderProjectiles draws live shells as single tracer dots.
func (m *Match) renderProjectiles(dst *core.Screen, p core.Projection) {
	for i := range m.projectiles.pool {
		pr := &m.projectiles.pool[i]
		if !pr.Active {
			continue
		}
		x, y := p.Cell(pr.Pos)
		dst.SetColored(x, y, '•', core.ColorOrange)
	}
}

// renderHUD draws the equation, its optional breakdown, and the score
// and level counters.
func (m *Match) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, m.equation.String(), core.ColorBrightWhite)

	if m.showBreakdown && len(m.breakdown) > 1 {
		m.renderBreakdown(dst, 1, 1)
	}

	scoreText := fmt.Sprintf("Score: %d", m.status.Score)
	dst.DrawTextColored(dst.Width()-len(scoreText)-1, 0, scoreText, core.ColorBrightWhite)

	levelText := fmt.Sprintf("Level: %d", m.status.Level)
	dst.DrawTextColored(dst.Width()-len(levelText)-1, 1, levelText, core.ColorBlue)
}

// renderBreakdown writes the color-coded decomposition, tens
// highlighted and cancelled pairs marked in red.
func (m *Match) renderBreakdown(dst *core.Screen, x, y int) {
	for _, part := range m.breakdown {
		if part.OpBefore != 0 {
			dst.SetColored(x+1, y, part.OpBefore, core.ColorBlue)
			x += 3
		}
		color := core.ColorBlue
		switch part.State {
		case PartHighlight:
			color = core.ColorGreen
		case PartCancelled:
			color = core.ColorRed
		}
		text := fmt.Sprintf("%d", part.Value)
		dst.DrawTextColored(x, y, text, color)
		x += len(text)
	}
	dst.DrawTextColored(x+1, y, "= ?", core.ColorBlue)
}

// renderAmmo draws one box per shell in rows of ten, stacked upward
// from the bottom-right corner.
func (m *Match) renderAmmo(dst *core.Screen) {
	color := core.ColorGreen
	switch {
	case m.status.Ammo <= m.cfg.Scoring.StartAmmo/2:
		color = core.ColorRed
	case m.status.Ammo <= m.cfg.Scoring.StartAmmo:
		color = core.ColorOrange
	}

	for i := 0; i < m.status.Ammo; i++ {
		x := dst.Width() - 2 - (i%10)*2
		y := dst.Height() - 1 - i/10
		dst.SetColored(x, y, '▮', color)
	}
}

// drawWedge fills the rect with a delta wing pointing left, the drones'
// direction of travel.
func drawWedge(dst *core.Screen, rect core.Rect, color core.Color) {
	if rect.W < 1 || rect.H < 1 {
		return
	}
	if rect.W == 1 || rect.H == 1 {
		fillRect(dst, rect, '◄', color)
		return
	}
	mid := float64(rect.H-1) / 2
	for row := 0; row < rect.H; row++ {
		tilt := (float64(row) - mid) / mid
		if tilt < 0 {
			tilt = -tilt
		}
		inset := int(tilt * float64(rect.W) * 0.7)
		for x := rect.X + inset; x < rect.Right(); x++ {
			dst.SetColored(x, rect.Y+row, '█', color)
		}
	}
}

// fillRect fills a cell rectangle with one colored glyph.
func fillRect(dst *core.Screen, rect core.Rect, glyph rune, color core.Color) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}
}

// drawCenteredBox draws a bordered message box with a title row and
// body rows, and returns the box rect for callers that recolor lines.
func drawCenteredBox(dst *core.Screen, title string, body ...string) core.Rect {
	boxW := len(title)
	for _, line := range body {
		boxW = core.Max(boxW, len(line))
	}
	boxW += 4
	boxH := len(body) + 4

	rect := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(rect, ' ')
	dst.DrawBox(rect)

	dst.DrawText(rect.X+(boxW-len(title))/2, rect.Y+1, title)
	for i, line := range body {
		dst.DrawText(rect.X+2, rect.Y+3+i, line)
	}
	return rect
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
