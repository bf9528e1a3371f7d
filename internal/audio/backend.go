package audio

import (
	"errors"
	"os/exec"
	"strconv"
)

// ErrNoBackend is returned when no PCM player is installed.
var ErrNoBackend = errors.New("audio: no playback backend found")

// Backend is an external player that reads raw s16le stereo PCM on stdin.
type Backend struct {
	Name string
	Path string
	Args []string
}

// DetectBackend searches PATH for a raw PCM player.
// Priority: pacat > pw-cat > aplay > play (sox).
func DetectBackend(sampleRate int) (*Backend, error) {
	rate := strconv.Itoa(sampleRate)

	candidates := []Backend{
		{Name: "pacat", Args: []string{
			"--raw", "--format=s16le", "--rate=" + rate, "--channels=2", "--latency-msec=50", "--playback",
		}},
		{Name: "pw-cat", Args: []string{
			"--playback", "--format=s16", "--rate=" + rate, "--channels=2", "--latency=50ms", "-",
		}},
		{Name: "aplay", Args: []string{
			"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "2", "-q",
		}},
		{Name: "play", Args: []string{
			"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", rate, "-", "-d", "-q",
		}},
	}

	for _, c := range candidates {
		if path, err := exec.LookPath(c.Name); err == nil {
			c.Path = path
			return &c, nil
		}
	}
	return nil, ErrNoBackend
}
