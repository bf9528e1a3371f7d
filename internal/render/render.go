// Package render projects the simulation onto a core.Screen. It only reads
// the level and player; nothing here mutates simulation state.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/entity"
)

// Sprite runes.
const (
	PlatformChar    = '█'
	LiftChar        = '▀'
	PlayerChar      = '@'
	CrouchChar      = 'o'
	PatrollerChar   = 'M'
	ShooterChar     = 'T'
	BossChar        = 'B'
	FireballChar    = '*'
	HostileChar     = '~'
	CollectibleChar = '$'
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// View is everything a frame needs. Level and Player are nil while the game
// sits in the menu.
type View struct {
	Level  *entity.Level
	Player *entity.Player
	State  core.GameState
	Levels int // Total levels in a run
	Camera config.CameraConfig
}

// Frame draws one complete frame into dst.
func Frame(dst *core.Screen, v View) {
	dst.Clear()

	if v.Level != nil && v.Player != nil {
		vp := newViewport(dst, v.Level.CameraX, v.Camera)
		drawWorld(dst, vp, v)
		drawHUD(dst, v)
	}

	switch {
	case v.State.Mode == core.ModeMenu:
		drawCenteredMessage(dst, "PLATFORMER", "Enter to start  |  Q to quit")
	case v.State.Mode == core.ModeWin:
		drawCenteredMessage(dst, "YOU WIN", fmt.Sprintf("Defeated: %d  |  R to play again", v.State.Defeated))
	case v.State.Mode == core.ModeGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("%s  |  R to restart", v.State.LevelName))
	case v.State.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// viewport maps world pixels to screen cells.
type viewport struct {
	camX   float64
	sx, sy float64 // World pixels per cell
	top    int
}

func newViewport(dst *core.Screen, cameraX float64, cam config.CameraConfig) viewport {
	rows := max(dst.Height()-hudRows, 1)
	cols := max(dst.Width(), 1)
	return viewport{
		camX: cameraX,
		sx:   cam.ViewportWidth / float64(cols),
		sy:   cam.ViewportHeight / float64(rows),
		top:  hudRows,
	}
}

// cells returns the screen rectangle covered by a world box. Every visible
// box covers at least one cell.
func (vp viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor((b.X - vp.camX) / vp.sx))
	y0 := int(math.Floor(b.Y / vp.sy))
	x1 := int(math.Ceil((b.Right() - vp.camX) / vp.sx))
	y1 := int(math.Ceil(b.Bottom() / vp.sy))
	return core.NewRect(x0, y0+vp.top, max(x1-x0, 1), max(y1-y0, 1))
}

// fill draws a box clipped to the playfield so sprites never cover the HUD.
func (vp viewport) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	rect := vp.cells(b)
	top := max(rect.Y, vp.top)
	if top >= rect.Bottom() {
		return
	}
	dst.DrawRect(core.NewRect(rect.X, top, rect.W, rect.Bottom()-top), r, c)
}

func drawWorld(dst *core.Screen, vp viewport, v View) {
	l, p := v.Level, v.Player

	for _, pl := range l.Platforms {
		if pl.Kinematic {
			vp.fill(dst, pl.Box, LiftChar, core.ColorCyan)
		} else {
			vp.fill(dst, pl.Box, PlatformChar, core.ColorBrown)
		}
	}

	// Blinks on the level tick.
	c := core.ColorBrightYellow
	if (l.Tick/15)%2 == 1 {
		c = core.ColorYellow
	}
	vp.fill(dst, l.Collectible.Box, CollectibleChar, c)

	for _, e := range l.Enemies {
		if !e.Alive {
			continue
		}
		switch e.Kind {
		case entity.KindPatroller:
			vp.fill(dst, e.Box, PatrollerChar, core.ColorRed)
		case entity.KindShooter:
			vp.fill(dst, e.Box, ShooterChar, core.ColorMagenta)
		}
	}

	if l.BossAlive() {
		vp.fill(dst, l.Boss.Box, BossChar, core.ColorBrightRed)
	}

	for _, fb := range l.Fireballs {
		vp.fill(dst, fb.Box, FireballChar, core.ColorOrange)
	}
	for _, h := range l.Hostile {
		vp.fill(dst, h.Box, HostileChar, core.ColorWhite)
	}

	r := PlayerChar
	if p.Crouching {
		r = CrouchChar
	}
	vp.fill(dst, p.Box, r, core.ColorGreen)
}

func drawHUD(dst *core.Screen, v View) {
	left := fmt.Sprintf(" %d/%d %s  Defeated: %d ", v.State.LevelIndex+1, v.Levels, v.State.LevelName, v.State.Defeated)
	dst.DrawText(0, 0, left, core.ColorWhite)

	if b := v.Level.Boss; b != nil && b.Alive {
		hp := fmt.Sprintf(" Boss %s ", strings.Repeat("♥", max(b.HP, 0)))
		dst.DrawText(dst.Width()-len([]rune(hp)), 0, hp, core.ColorBrightRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorDefault)
}
