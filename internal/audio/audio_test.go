package audio

import (
	"bytes"
	"encoding/binary"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// drain streams s to completion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var all [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			return all
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func peak(samples [][2]float64) float64 {
	p := 0.0
	for _, s := range samples {
		p = max(p, s[0], -s[0])
	}
	return p
}

func TestSynthesizeEveryCue(t *testing.T) {
	cfg := config.Default().Audio
	rate := beep.SampleRate(cfg.SampleRate)

	for _, c := range Cues {
		t.Run(c.String(), func(t *testing.T) {
			s := Synthesize(c, cfg)
			if s == nil {
				t.Fatal("Synthesize returned nil")
			}
			samples := drain(t, s)
			if len(samples) == 0 || len(samples) > rate.N(time.Second) {
				t.Errorf("cue length = %d samples", len(samples))
			}
			if p := peak(samples); p == 0 || p > 1 {
				t.Errorf("peak = %v, expected within (0, 1]", p)
			}
		})
	}

	if Synthesize(Cue(99), cfg) != nil {
		t.Error("unknown cue should synthesize nothing")
	}
}

func TestCollectIsStaggered(t *testing.T) {
	cfg := config.Default().Audio
	rate := beep.SampleRate(cfg.SampleRate)
	samples := drain(t, Synthesize(CueCollect, cfg))

	// 70ms note, 30ms gap, 160ms note
	gapStart, gapEnd := rate.N(70*time.Millisecond), rate.N(100*time.Millisecond)
	if want := gapEnd + rate.N(160*time.Millisecond); len(samples) != want {
		t.Errorf("length = %d, expected %d", len(samples), want)
	}
	if p := peak(samples[gapStart+1 : gapEnd-1]); p != 0 {
		t.Errorf("gap between notes has peak %v, expected silence", p)
	}
	if peak(samples[gapEnd:]) == 0 {
		t.Error("second note should be audible")
	}
}

func TestCueVolumeScales(t *testing.T) {
	loud := config.Default().Audio
	quiet := config.Default().Audio
	quiet.CueVolumes = map[string]float64{"jump": 0.1}

	pl := peak(drain(t, Synthesize(CueJump, loud)))
	pq := peak(drain(t, Synthesize(CueJump, quiet)))
	if pq >= pl {
		t.Errorf("quiet peak %v should be below loud peak %v", pq, pl)
	}

	silent := config.Default().Audio
	silent.MasterVolume = 0
	if p := peak(drain(t, Synthesize(CueShoot, silent))); p != 0 {
		t.Errorf("zero master volume should be silent, peak %v", p)
	}
}

func TestEngineMixesAndFinishes(t *testing.T) {
	e := NewEngine(config.Default().Audio)

	e.Play(CueJump)
	e.Play(CueHit)
	if e.Active() != 2 || e.Played() != 2 {
		t.Fatalf("active=%d played=%d, expected 2/2", e.Active(), e.Played())
	}

	buf := make([][2]float64, 1024)
	n, ok := e.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream() = (%d, %v), expected a full buffer", n, ok)
	}
	if peak(buf) == 0 {
		t.Error("mixed output should be audible")
	}

	for i := 0; i < 100 && e.Active() > 0; i++ {
		e.Stream(buf)
	}
	if e.Active() != 0 {
		t.Error("cues should finish")
	}
	e.Stream(buf)
	if peak(buf) != 0 {
		t.Error("an idle engine should stream silence")
	}
}

func TestEngineMute(t *testing.T) {
	e := NewEngine(config.Default().Audio)
	e.Play(CueDeath)
	e.SetMuted(true)
	if e.Active() != 0 {
		t.Error("muting should drop playing cues")
	}
	e.Play(CueJump)
	if e.Active() != 0 || e.Played() != 1 {
		t.Errorf("muted engine accepted a cue: active=%d played=%d", e.Active(), e.Played())
	}
}

func TestEngineSetConfigKeepsRate(t *testing.T) {
	e := NewEngine(config.Default().Audio)
	cfg := config.Default().Audio
	cfg.SampleRate = 8000
	cfg.MasterVolume = 0.2
	e.SetConfig(cfg)

	if e.cfg.SampleRate != 44100 || e.cfg.MasterVolume != 0.2 {
		t.Errorf("config = %+v", e.cfg)
	}
}

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Len()
}

func TestPumpWritesPCM(t *testing.T) {
	e := NewEngine(config.Default().Audio)
	var out syncBuffer
	e.run(&out)
	e.Play(CueShoot)

	deadline := time.Now().Add(2 * time.Second)
	for out.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if out.Len() == 0 {
		t.Fatal("pump wrote nothing")
	}
	if out.Len()%4 != 0 {
		t.Errorf("output length %d is not whole stereo frames", out.Len())
	}
	if e.Err() != nil {
		t.Errorf("unexpected pump error: %v", e.Err())
	}
}

func TestEncodePCM(t *testing.T) {
	in := [][2]float64{{0, 0.5}, {2, -2}}
	out := make([]byte, len(in)*4)
	encodePCM(in, out)

	sample := func(i int) int16 { return int16(binary.LittleEndian.Uint16(out[i*2:])) }
	half, knee := 0.5, 0.8

	if sample(0) != 0 {
		t.Errorf("silence encoded as %d", sample(0))
	}
	if sample(1) != int16(half*32767) {
		t.Errorf("0.5 encoded as %d", sample(1))
	}
	if sample(2) <= int16(knee*32767) {
		t.Errorf("over-range sample should be soft limited, got %d", sample(2))
	}
	if sample(3) != -sample(2) {
		t.Errorf("limiter should be symmetric: %d vs %d", sample(3), sample(2))
	}
}

func TestNopSink(t *testing.T) {
	var s Sink = Nop{}
	s.Play(CueCollect)
}
