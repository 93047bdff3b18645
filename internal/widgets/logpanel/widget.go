// Package logpanel provides a tail-style log view widget.
package logpanel

import (
	"strings"

	"github.com/vovakirdan/tui-canvas/internal/catalog"
	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
)

// Widget renders the tail of a log buffer, newest line at the bottom.
type Widget struct {
	lines []string
}

// New creates a log panel with placeholder content.
func New() *Widget {
	return &Widget{
		lines: []string{
			"12:00:01 INFO  server started",
			"12:00:04 INFO  listening on :8080",
			"12:00:09 WARN  slow request 412ms",
			"12:00:12 INFO  cache warmed",
			"12:00:15 ERROR upstream timeout",
			"12:00:15 INFO  retrying",
			"12:00:16 INFO  recovered",
		},
	}
}

func init() {
	catalog.Register(catalog.Definition{
		ID:    "logpanel",
		Title: "Log Panel",
		Prefs: core.SizePrefs{
			Default: core.Size{Width: 50, Height: 12},
			Min:     &core.Size{Width: 30, Height: 6},
		},
		New: func() catalog.Renderer { return New() },
	})
}

// Render draws the newest lines that fit the content area.
func (w *Widget) Render(s *render.Surface, r core.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}

	lines := w.lines
	if len(lines) > r.H {
		lines = lines[len(lines)-r.H:]
	}

	for i, line := range lines {
		color := render.ColorGray
		switch {
		case strings.Contains(line, "ERROR"):
			color = render.ColorRed
		case strings.Contains(line, "WARN"):
			color = render.ColorYellow
		}
		if len(line) > r.W {
			line = line[:r.W]
		}
		s.DrawTextColor(r.X, r.Y+i, line, color)
	}
}
