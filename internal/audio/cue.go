// Package audio turns simulation cues into sound. The simulation only ever
// asks for "cue X now" through the Sink interface; synthesis, mixing and
// output happen here, off the game loop.
package audio

// Cue identifies one fire-and-forget sound effect.
type Cue int

const (
	CueJump Cue = iota
	CueShoot
	CueHit
	CueCollect
	CueDeath
)

// Cues lists every cue in declaration order.
var Cues = []Cue{CueJump, CueShoot, CueHit, CueCollect, CueDeath}

// String returns the cue's config key.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	case CueCollect:
		return "collect"
	case CueDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Sink receives cues. Play must not block the caller.
type Sink interface {
	Play(c Cue)
}

// Nop discards every cue. It is the default sink and the fallback when no
// audio backend is available.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}
