package app

import (
	"strings"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LogPanel keeps the last few log lines for the in-window HUD. It is an
// io.Writer so it can sit behind log.SetOutput next to stderr.
type LogPanel struct {
	mu      sync.Mutex
	lines   []string
	max     int
	partial string
}

func NewLogPanel(max int) *LogPanel {
	if max <= 0 {
		max = 8
	}
	return &LogPanel{max: max}
}

func (p *LogPanel) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	text := p.partial + string(b)
	parts := strings.Split(text, "\n")
	p.partial = parts[len(parts)-1]
	for _, line := range parts[:len(parts)-1] {
		p.lines = append(p.lines, line)
	}
	if over := len(p.lines) - p.max; over > 0 {
		p.lines = append(p.lines[:0], p.lines[over:]...)
	}
	return len(b), nil
}

// Lines returns a copy of the buffered lines, oldest first.
func (p *LogPanel) Lines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.lines))
	copy(out, p.lines)
	return out
}

func (p *LogPanel) Draw(x, y int32) {
	lines := p.Lines()
	if len(lines) == 0 {
		return
	}
	const lineH = 16
	h := int32(len(lines))*lineH + 8
	rl.DrawRectangle(x, y-h, 640, h, rl.NewColor(18, 18, 24, 200))
	for i, line := range lines {
		rl.DrawText(line, x+6, y-h+4+int32(i)*lineH, 14, rl.NewColor(200, 200, 208, 255))
	}
}
