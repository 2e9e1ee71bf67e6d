// Package speech provides best-effort text-to-speech through a system engine.
package speech

import (
	"os/exec"
	"strings"
)

// Speaker speaks words through the first available system TTS engine.
// Without one, every call is a silent no-op. A new utterance replaces any
// in-flight one; speaking never blocks the caller and never returns errors.
type Speaker struct {
	engine  string
	current *exec.Cmd
}

var engines = []string{"say", "espeak-ng", "espeak", "spd-say"}

// New detects an available TTS engine.
func New() *Speaker {
	for _, engine := range engines {
		if _, err := exec.LookPath(engine); err == nil {
			return &Speaker{engine: engine}
		}
	}
	return &Speaker{}
}

// Available reports whether a TTS engine was found.
func (s *Speaker) Available() bool {
	return s.engine != ""
}

// Speak pronounces text in the given BCP-47 language tag. Last request
// wins: any in-flight utterance is cancelled first.
func (s *Speaker) Speak(text, lang string) {
	text = strings.TrimSpace(text)
	if s.engine == "" || text == "" {
		return
	}
	s.Stop()

	cmd := exec.Command(s.engine, s.args(text, lang)...)
	if err := cmd.Start(); err != nil {
		return
	}
	s.current = cmd
	go func() {
		// Reap the process; playback outcome is not observable by callers.
		_ = cmd.Wait()
	}()
}

// Stop cancels any in-flight utterance.
func (s *Speaker) Stop() {
	if s.current != nil && s.current.Process != nil {
		_ = s.current.Process.Kill()
	}
	s.current = nil
}

func (s *Speaker) args(text, lang string) []string {
	switch s.engine {
	case "espeak-ng", "espeak":
		return []string{"-v", strings.ToLower(lang), text}
	case "spd-say":
		return []string{"-l", primarySubtag(lang), "-w", text}
	default: // say
		return []string{text}
	}
}

func primarySubtag(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}
