package entity

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestPlatformAdvanceReversesAtRangeEdge(t *testing.T) {
	p := NewMovingPlatform(308, 100, 34, 8, 0.3, 300, 360)

	reversedAt := -1.0
	for i := 0; i < 200; i++ {
		if p.Advance(1) {
			reversedAt = p.X
			break
		}
		if p.Right() > 360 {
			t.Fatalf("platform left its range without reversing at x=%v", p.X)
		}
	}

	if reversedAt < 0 {
		t.Fatal("platform never reversed")
	}
	if reversedAt > 326 {
		t.Errorf("platform reversed at x=%v, expected at or before 326", reversedAt)
	}
	if p.VX != -0.3 {
		t.Errorf("velocity after reversal = %v, expected -0.3", p.VX)
	}

	// Travel back to the left edge
	for i := 0; i < 400; i++ {
		if p.Advance(1) {
			break
		}
	}
	if p.X != 300 || p.VX != 0.3 {
		t.Errorf("left reversal should land on x=300 moving right, got x=%v vx=%v", p.X, p.VX)
	}
}

func TestStaticPlatformDoesNotMove(t *testing.T) {
	p := NewPlatform(10, 10, 50, 10)
	if p.Advance(1.5) {
		t.Error("static platform should never reverse")
	}
	if p.X != 10 {
		t.Errorf("static platform moved to x=%v", p.X)
	}
}

func TestEnemyKillIsTerminal(t *testing.T) {
	e := NewPatroller(0, 0, 10, 10, 1, 0, 100, 1)
	if !e.Kill() {
		t.Error("first Kill should report a transition")
	}
	if e.Kill() {
		t.Error("second Kill should be a no-op")
	}
	if e.Alive {
		t.Error("enemy should stay dead")
	}
}

func TestBossHitPoints(t *testing.T) {
	b := NewBoss(0, 0, 24, 24, 3)

	if b.Hit() || b.Hit() {
		t.Fatal("first two hits should not defeat a 3 hp boss")
	}
	if !b.Alive {
		t.Fatal("boss should still be alive at 1 hp")
	}
	if !b.Hit() {
		t.Error("third hit should defeat the boss")
	}
	if b.Alive || b.HP != 0 {
		t.Errorf("boss should be dead at 0 hp, got alive=%v hp=%d", b.Alive, b.HP)
	}
	if b.Hit() {
		t.Error("hitting a dead boss should not report a defeat")
	}
	if b.HP != 0 {
		t.Errorf("dead boss hp should not change, got %d", b.HP)
	}
}

func TestBossEnterResetsTimer(t *testing.T) {
	b := NewBoss(0, 0, 24, 24, 3)
	b.Timer = 42
	b.Enter(PhaseVolley)
	if b.Phase != PhaseVolley || b.Timer != 0 {
		t.Errorf("Enter should set phase and zero timer, got %v/%d", b.Phase, b.Timer)
	}
	if BossPhase(3).Valid() {
		t.Error("phase 3 should be invalid")
	}
}

func TestPlayerCapabilities(t *testing.T) {
	p := NewPlayer(5, 6, 12, 16)
	p.Rect().X = 20
	p.Velocity().Y = 3
	p.SetGrounded(true)

	if p.X != 20 || p.Vel.Y != 3 || !p.Grounded {
		t.Error("capability accessors should write through to the player")
	}
	if p.Facing != 1 {
		t.Errorf("new player should face right, got %d", p.Facing)
	}
	if p.StandHeight() != 16 {
		t.Errorf("StandHeight() = %v, expected 16", p.StandHeight())
	}
}

func validLevel() *Level {
	return &Level{
		Kind:        LevelIntro,
		Platforms:   []Platform{NewPlatform(0, 160, 320, 20)},
		Enemies:     []Enemy{NewPatroller(100, 148, 12, 12, 0.6, 80, 200, 1), NewShooter(220, 146, 12, 14, 120)},
		Collectible: Collectible{Box: core.NewBox(300, 140, 10, 10)},
		Width:       320,
		Height:      180,
	}
}

func TestLevelValidate(t *testing.T) {
	if err := validLevel().Validate(); err != nil {
		t.Fatalf("valid level rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(l *Level)
	}{
		{"zero world width", func(l *Level) { l.Width = 0 }},
		{"negative platform height", func(l *Level) { l.Platforms[0].H = -1 }},
		{"patrol range too narrow", func(l *Level) { l.Enemies[0].Patrol.MaxX = l.Enemies[0].Patrol.MinX + 5 }},
		{"zero patrol width", func(l *Level) { l.Enemies[0].Patrol.MaxX = l.Enemies[0].Patrol.MinX }},
		{"patroller without payload", func(l *Level) { l.Enemies[0].Patrol = nil }},
		{"shooter without fire rate", func(l *Level) { l.Enemies[1].Turret.FireRate = 0 }},
		{"kinematic range too narrow", func(l *Level) {
			l.Platforms = append(l.Platforms, NewMovingPlatform(10, 10, 40, 8, 1, 10, 30))
		}},
		{"collectible without area", func(l *Level) { l.Collectible.W = 0 }},
		{"boss with bad phase", func(l *Level) {
			l.Boss = NewBoss(0, 0, 24, 24, 3)
			l.Boss.Phase = 7
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := validLevel()
			tc.mutate(l)
			err := l.Validate()
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("Validate() = %v, expected ErrInvalidLevel", err)
			}
		})
	}
}

func TestLevelQueries(t *testing.T) {
	l := validLevel()
	if l.AliveEnemies() != 2 {
		t.Errorf("AliveEnemies() = %d, expected 2", l.AliveEnemies())
	}
	l.Enemies[0].Kill()
	if l.AliveEnemies() != 1 {
		t.Errorf("AliveEnemies() = %d after a kill, expected 1", l.AliveEnemies())
	}

	if l.BossAlive() {
		t.Error("a level without a boss has no live boss")
	}
	l.Boss = NewBoss(0, 0, 24, 24, 1)
	if !l.BossAlive() {
		t.Error("boss should be alive")
	}
	l.Boss.Hit()
	if l.BossAlive() {
		t.Error("boss should be down after its last hit point")
	}
}
