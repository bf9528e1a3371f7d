package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/entity"
)

// Kinds far outside the real range so the test never collides with levels
// registered by other packages.
const (
	testKindA entity.LevelKind = 900 + iota
	testKindB
	testKindBroken
)

func testLevel(kind entity.LevelKind, title string) Factory {
	return func() *entity.Level {
		return &entity.Level{
			Kind:        kind,
			Title:       title,
			Platforms:   []entity.Platform{entity.NewPlatform(0, 100, 200, 10)},
			Collectible: entity.Collectible{Box: core.NewBox(180, 80, 8, 8)},
			Width:       200,
			Height:      120,
		}
	}
}

func init() {
	Register(testKindB, testLevel(testKindB, "Second"))
	Register(testKindA, testLevel(testKindA, "First"))
	Register(testKindBroken, func() *entity.Level {
		l := testLevel(testKindBroken, "Broken")()
		l.Platforms[0].W = 0
		return l
	})
}

func TestListIsOrdered(t *testing.T) {
	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].Kind >= infos[i].Kind {
			t.Fatalf("List() not in play order: %v", infos)
		}
	}

	var titles []string
	for _, info := range infos {
		if info.Kind == testKindA || info.Kind == testKindB {
			titles = append(titles, info.Title)
		}
	}
	if len(titles) != 2 || titles[0] != "First" || titles[1] != "Second" {
		t.Errorf("titles = %v, expected [First Second]", titles)
	}
}

func TestCreateReturnsFreshLevels(t *testing.T) {
	a, err := Create(testKindA)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	b, err := Create(testKindA)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	a.Platforms[0].X = 55
	if b.Platforms[0].X == 55 {
		t.Error("two created levels should not share state")
	}
}

func TestCreateValidates(t *testing.T) {
	_, err := Create(testKindBroken)
	if !errors.Is(err, entity.ErrInvalidLevel) {
		t.Errorf("Create of broken level = %v, expected ErrInvalidLevel", err)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create(entity.LevelKind(-1)); err == nil {
		t.Error("unknown kind should be an error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register(testKindA, testLevel(testKindA, "Again"))
}

func TestLookup(t *testing.T) {
	kind, ok := Lookup(testKindA.String())
	if !ok || kind != testKindA {
		t.Errorf("Lookup(%q) = (%v, %v)", testKindA.String(), kind, ok)
	}
	if _, ok := Lookup("nowhere"); ok {
		t.Error("Lookup of an unknown name should fail")
	}
}
