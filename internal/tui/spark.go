package tui

import (
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Cosmetic celebration after a "known" answer. Rendering only; the drill
// state never waits on it.
const (
	sparkRows      = 3
	sparkFrames    = 14
	sparkInterval  = 65 * time.Millisecond
	sparkParticles = 18
)

var sparkColors = []lipgloss.Color{"#FF7AB6", "#7FE7D6", "#BFE8FF", "#FFE066", "#FFFFFF"}

var sparkGlyphs = []rune{'✦', '✧', '*', '·', '•'}

type sparkTickMsg struct {
	seed int
}

type sparkParticle struct {
	col   int
	delay int
	style lipgloss.Style
	glyph rune
}

type sparkBurst struct {
	seed      int
	frame     int
	width     int
	particles []sparkParticle
}

func newSparkBurst(rnd *rand.Rand, seed, width int) *sparkBurst {
	if width < 10 {
		width = 10
	}
	particles := make([]sparkParticle, sparkParticles)
	for i := range particles {
		particles[i] = sparkParticle{
			col:   rnd.Intn(width),
			delay: rnd.Intn(4),
			style: lipgloss.NewStyle().Foreground(sparkColors[rnd.Intn(len(sparkColors))]),
			glyph: sparkGlyphs[rnd.Intn(len(sparkGlyphs))],
		}
	}
	return &sparkBurst{seed: seed, width: width, particles: particles}
}

func (b *sparkBurst) tick() tea.Cmd {
	seed := b.seed
	return tea.Tick(sparkInterval, func(time.Time) tea.Msg {
		return sparkTickMsg{seed: seed}
	})
}

func (b *sparkBurst) advance() bool {
	b.frame++
	return b.frame < sparkFrames
}

// View renders the burst as sparkRows lines; particles rise bottom to top
// and fade out over the burst's lifetime.
func (b *sparkBurst) View() string {
	rows := make([][]rune, sparkRows)
	styles := make([][]*lipgloss.Style, sparkRows)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", b.width))
		styles[i] = make([]*lipgloss.Style, b.width)
	}
	for i := range b.particles {
		p := &b.particles[i]
		age := b.frame - p.delay
		if age < 0 {
			continue
		}
		// One row up every three frames, gone past the top.
		row := sparkRows - 1 - age/3
		if row < 0 || p.col >= b.width {
			continue
		}
		rows[row][p.col] = p.glyph
		styles[row][p.col] = &p.style
	}

	var out strings.Builder
	for r := 0; r < sparkRows; r++ {
		for c := 0; c < b.width; c++ {
			if style := styles[r][c]; style != nil {
				out.WriteString(style.Render(string(rows[r][c])))
			} else {
				out.WriteRune(rows[r][c])
			}
		}
		if r < sparkRows-1 {
			out.WriteRune('\n')
		}
	}
	return out.String()
}
