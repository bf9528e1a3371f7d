package game

import "math"

// Snapshot is a flat copy of the simulation state used for replay checks and
// headless runs. Positions are stored as raw float bits so equal snapshots
// mean bit-identical simulations.
type Snapshot struct {
	Tick       int
	Mode       int
	LevelIndex int
	Defeated   int

	PlayerX, PlayerY   float64
	PlayerVX, PlayerVY float64
	Grounded           bool
	Crouching          bool

	AliveEnemies int
	Fireballs    int
	Hostile      int

	BossHP    int
	BossPhase int
	BossTimer int

	// Each platform contributes its X.
	PlatformX []float64
}

// Snapshot returns the current state. Before the first level starts only the
// mode is meaningful.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:       int(g.mode),
		LevelIndex: g.index,
		Defeated:   g.defeated,
	}
	if g.level == nil {
		return s
	}

	l, p := g.level, g.player
	s.Tick = l.Tick
	s.PlayerX, s.PlayerY = p.X, p.Y
	s.PlayerVX, s.PlayerVY = p.Vel.X, p.Vel.Y
	s.Grounded = p.Grounded
	s.Crouching = p.Crouching
	s.AliveEnemies = l.AliveEnemies()
	s.Fireballs = len(l.Fireballs)
	s.Hostile = len(l.Hostile)

	if l.Boss != nil {
		s.BossHP = l.Boss.HP
		s.BossPhase = int(l.Boss.Phase)
		s.BossTimer = l.Boss.Timer
	}

	s.PlatformX = make([]float64, len(l.Platforms))
	for i, pl := range l.Platforms {
		s.PlatformX[i] = pl.X
	}
	return s
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick) //#nosec G115 -- hash computation
	for _, v := range []int{s.Mode, s.LevelIndex, s.Defeated, s.AliveEnemies, s.Fireballs, s.Hostile, s.BossHP, s.BossPhase, s.BossTimer} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, f := range []float64{s.PlayerX, s.PlayerY, s.PlayerVX, s.PlayerVY} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + boolBit(s.Grounded)
	h = h*31 + boolBit(s.Crouching)
	for _, x := range s.PlatformX {
		h = h*31 + math.Float64bits(x)
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
