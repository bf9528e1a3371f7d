package levels

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/entity"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func TestAllLevelsRegisteredInOrder(t *testing.T) {
	want := []entity.LevelKind{
		entity.LevelIntro,
		entity.LevelStage1,
		entity.LevelStage2,
		entity.LevelStage3,
		entity.LevelBoss,
	}
	got := registry.Kinds()
	if len(got) != len(want) {
		t.Fatalf("registry.Kinds() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kind %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestLevelsValidate(t *testing.T) {
	factories := map[string]func() *entity.Level{
		"intro":  Intro,
		"stage1": Stage1,
		"stage2": Stage2,
		"stage3": Stage3,
		"boss":   Boss,
	}

	for name, f := range factories {
		t.Run(name, func(t *testing.T) {
			l := f()
			if err := l.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if l.Kind.String() != name {
				t.Errorf("Kind = %v, expected %s", l.Kind, name)
			}
			if l.Title == "" {
				t.Error("level should have a title")
			}
			if l.Spawn.X < 0 || l.Spawn.X > l.Width {
				t.Errorf("spawn x=%v outside the world", l.Spawn.X)
			}
			if l.Collectible.Right() > l.Width {
				t.Errorf("collectible at x=%v past world width %v", l.Collectible.X, l.Width)
			}
		})
	}
}

func TestFactoriesArePure(t *testing.T) {
	a := Stage1()
	b := Stage1()

	a.Platforms[0].X = 99
	a.Enemies[0].Patrol.Dir = -a.Enemies[0].Patrol.Dir
	a.Enemies[0].Kill()

	if b.Platforms[0].X == 99 || !b.Enemies[0].Alive {
		t.Error("factories must not share platform or enemy state")
	}
	if b.Enemies[0].Patrol.Dir == a.Enemies[0].Patrol.Dir {
		t.Error("factories must not share patrol payloads")
	}
}

func TestStage1MovingPlatform(t *testing.T) {
	l := Stage1()

	var found *entity.Platform
	for i := range l.Platforms {
		if l.Platforms[i].Kinematic {
			found = &l.Platforms[i]
			break
		}
	}
	if found == nil {
		t.Fatal("stage1 should have a moving platform")
	}
	if found.X != 308 || found.W != 34 || found.VX != 0.3 || found.MinX != 300 || found.MaxX != 360 {
		t.Errorf("moving platform = %+v, expected x=308 w=34 vx=0.3 range [300,360]", *found)
	}
}

func TestOnlyBossLevelHasBoss(t *testing.T) {
	for _, kind := range registry.Kinds() {
		l, err := registry.Create(kind)
		if err != nil {
			t.Fatalf("Create(%v) failed: %v", kind, err)
		}
		hasBoss := l.Boss != nil
		if hasBoss != (kind == entity.LevelBoss) {
			t.Errorf("%v: boss present = %v", kind, hasBoss)
		}
		if kind == entity.LevelBoss {
			if l.Boss.HP != 3 || l.Boss.Phase != entity.PhaseLeap {
				t.Errorf("boss should start with 3 hp in the leap phase, got %d/%v", l.Boss.HP, l.Boss.Phase)
			}
			if l.Collectible.X < l.Boss.Right() {
				t.Errorf("collectible at x=%v should sit behind the boss (right edge %v)", l.Collectible.X, l.Boss.Right())
			}
		}
	}
}

func TestEnemiesStartOnASurface(t *testing.T) {
	for _, kind := range registry.Kinds() {
		l, _ := registry.Create(kind)
		for i, e := range l.Enemies {
			supported := false
			for _, p := range l.Platforms {
				if e.CenterX() >= p.X && e.CenterX() <= p.Right() && e.Bottom() == p.Y {
					supported = true
					break
				}
			}
			if !supported {
				t.Errorf("%v enemy %d at (%v, %v) is not standing on a platform", kind, i, e.X, e.Y)
			}
		}
	}
}
