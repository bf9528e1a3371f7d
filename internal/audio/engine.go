package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// BufferDuration is how much audio the pump writes per wake-up.
const BufferDuration = 20 * time.Millisecond

// Engine mixes cue streamers and pumps the result into a backend process.
// Play only appends to the mixer under a short lock, so the game loop never
// waits on synthesis or output.
type Engine struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	mixer  beep.Mixer
	muted  bool
	played uint64

	cmd   *exec.Cmd
	stdin io.WriteCloser

	stop chan struct{}
	done chan struct{}
	once sync.Once
	err  error
}

// NewEngine creates an idle engine. Cues played before Start are mixed but
// never heard.
func NewEngine(cfg config.AudioConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Start launches the detected backend and the pump goroutine.
func (e *Engine) Start() error {
	backend, err := DetectBackend(e.cfg.SampleRate)
	if err != nil {
		return err
	}

	cmd := exec.Command(backend.Path, backend.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("audio: failed to open %s stdin: %w", backend.Name, err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return fmt.Errorf("audio: failed to start %s: %w", backend.Name, err)
	}

	e.cmd = cmd
	e.stdin = stdin
	e.run(stdin)
	return nil
}

// run starts pumping mixed PCM into w until Close.
func (e *Engine) run(w io.Writer) {
	e.stop = make(chan struct{})
	e.done = make(chan struct{})
	go e.pump(w)
}

func (e *Engine) pump(w io.Writer) {
	defer close(e.done)

	rate := beep.SampleRate(e.cfg.SampleRate)
	frames := rate.N(BufferDuration)
	samples := make([][2]float64, frames)
	out := make([]byte, frames*4)

	ticker := time.NewTicker(BufferDuration)
	defer ticker.Stop()

	for {
		select {
		case <-e.stop:
			return
		case <-ticker.C:
			e.Stream(samples)
			encodePCM(samples, out)
			if _, err := w.Write(out); err != nil {
				e.mu.Lock()
				e.err = fmt.Errorf("audio: backend write failed: %w", err)
				e.mu.Unlock()
				return
			}
		}
	}
}

// Play starts a cue. It never blocks on output.
func (e *Engine) Play(c Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.muted {
		return
	}
	s := Synthesize(c, e.cfg)
	if s == nil {
		return
	}
	e.mixer.Add(s)
	e.played++
}

// Stream mixes every active cue into samples, padding with silence. It makes
// the engine itself a beep.Streamer.
func (e *Engine) Stream(samples [][2]float64) (n int, ok bool) {
	e.mu.Lock()
	n, _ = e.mixer.Stream(samples)
	e.mu.Unlock()

	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

// Err returns the first backend write error, if any.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Active returns the number of cues still sounding.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mixer.Len()
}

// Played returns the number of cues accepted since creation.
func (e *Engine) Played() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.played
}

// SetMuted silences new cues and drops the ones already playing.
func (e *Engine) SetMuted(m bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = m
	if m {
		e.mixer.Clear()
	}
}

// SetConfig replaces volumes for cues played from now on. The sample rate
// of a running engine does not change.
func (e *Engine) SetConfig(cfg config.AudioConfig) {
	e.mu.Lock()
	defer e.mu.Unlock()
	cfg.SampleRate = e.cfg.SampleRate
	e.cfg = cfg
}

// Close stops the pump and the backend process.
func (e *Engine) Close() error {
	var err error
	e.once.Do(func() {
		if e.stop != nil {
			close(e.stop)
			<-e.done
		}
		if e.stdin != nil {
			err = e.stdin.Close()
		}
		if e.cmd != nil {
			// The player exits once stdin closes; a killed process is fine too.
			if werr := e.cmd.Wait(); werr != nil && err == nil {
				var exitErr *exec.ExitError
				if !errors.As(werr, &exitErr) {
					err = werr
				}
			}
		}
	})
	return err
}

// encodePCM converts stereo float samples to interleaved int16 LE bytes,
// soft-limiting peaks before the hard clip.
func encodePCM(in [][2]float64, out []byte) {
	for i, frame := range in {
		for ch, v := range frame {
			if v > 0.8 {
				v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
			} else if v < -0.8 {
				v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
			}
			v = max(-1, min(1, v))
			binary.LittleEndian.PutUint16(out[i*4+ch*2:], uint16(int16(v*32767)))
		}
	}
}
