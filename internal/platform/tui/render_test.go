package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(4, 2)
	s.SetCell(0, 0, '█', core.ColorRed)
	s.SetCell(1, 0, '█', core.ColorRed)
	s.SetCell(2, 0, '.', core.ColorGray)
	s.DrawText(0, 1, "ok")

	assert.Equal(t, s.String(), RenderScreen(s))
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDim; c++ {
		_, ok := colorStyles[c]
		assert.True(t, ok, "no style for %s", c)
	}
}
