package blocks

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

const (
	cellWidth  = 2  // screen columns per board cell
	panelWidth = 16 // side panel width
	panelGap   = 2
	panelRows  = 14 // rows used by the side panel
)

const (
	blockRune = '█'
	ghostRune = '░'
	emptyRune = '.'
)

// layout returns the board frame and the side panel origin on the screen.
func (g *Game) layout() (frame core.Rect, panelX int) {
	boardW := g.cfg.Cols*cellWidth + 2
	boardH := g.cfg.Rows + 2
	totalW := boardW + panelGap + panelWidth
	totalH := max(boardH, panelRows)

	x := max(0, (g.screenW-totalW)/2)
	y := max(0, (g.screenH-totalH)/2)
	frame = core.NewRect(x, y, boardW, boardH)
	return frame, frame.Right() + panelGap
}

// minScreenSize returns the smallest screen that shows board and panel.
func (g *Game) minScreenSize() (w, h int) {
	boardW := g.cfg.Cols*cellWidth + 2
	boardH := g.cfg.Rows + 2
	return boardW + panelGap + panelWidth, max(boardH, panelRows)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	frame, panelX := g.layout()
	dst.DrawBox(frame)
	g.renderBoard(dst, frame)
	// After game over the piece that could not spawn stays visible under
	// the overlay, without a ghost.
	g.renderPiece(dst, frame, g.status != StatusGameOver)
	g.renderPanel(dst, panelX, frame.Y)

	switch g.status {
	case StatusGameOver:
		g.renderOverlay(dst, frame, "GAME OVER", "Press R to restart")
	case StatusPaused:
		g.renderOverlay(dst, frame, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Resize to continue")
}

// cellPos maps a board cell to the screen.
func cellPos(frame core.Rect, x, y int) (int, int) {
	return frame.X + 1 + x*cellWidth, frame.Y + 1 + y
}

func drawCell(dst *core.Screen, sx, sy int, r rune, c core.Color) {
	for i := range cellWidth {
		dst.SetCell(sx+i, sy, r, c)
	}
}

// renderBoard draws locked cells and empty-cell dots.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	for y := 0; y < g.board.Rows(); y++ {
		for x := 0; x < g.board.Cols(); x++ {
			sx, sy := cellPos(frame, x, y)
			c, _ := g.board.At(x, y)
			if c == Empty {
				dst.SetCell(sx, sy, ' ', core.ColorDefault)
				dst.SetCell(sx+1, sy, emptyRune, core.ColorGray)
				continue
			}
			drawCell(dst, sx, sy, blockRune, c)
		}
	}
}

// renderPiece draws the ghost and then the active piece over it.
// Cells above the top row are not drawn.
func (g *Game) renderPiece(dst *core.Screen, frame core.Rect, withGhost bool) {
	ghost := g.current
	ghost.Y = g.GhostRow()
	if withGhost && ghost.Y != g.current.Y {
		for _, p := range ghost.Cells() {
			if p.Y < 0 {
				continue
			}
			sx, sy := cellPos(frame, p.X, p.Y)
			drawCell(dst, sx, sy, ghostRune, core.ColorDim)
		}
	}

	for _, p := range g.current.Cells() {
		if p.Y < 0 {
			continue
		}
		sx, sy := cellPos(frame, p.X, p.Y)
		drawCell(dst, sx, sy, blockRune, g.current.Color())
	}
}

// renderPanel draws the next-piece preview and the counters.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "NEXT")
	preview := core.NewRect(x, y+1, panelWidth, 4)
	dst.DrawBox(preview)

	m := g.next.Shape.Matrix
	mx := x + (panelWidth-m.Width()*cellWidth)/2
	my := preview.Y + 1
	for _, p := range m.Cells() {
		drawCell(dst, mx+p.X*cellWidth, my+p.Y, blockRune, g.next.Color())
	}

	rows := []struct {
		label string
		value int
	}{
		{"SCORE", g.progress.Score},
		{"LEVEL", g.progress.Level},
		{"LINES", g.progress.Lines},
	}
	line := preview.Bottom() + 1
	for _, r := range rows {
		dst.DrawTextColor(x, line, r.label, core.ColorGray)
		dst.DrawText(x, line+1, strconv.Itoa(r.value))
		line += 3
	}
}

// renderOverlay draws a message box centered on the board frame.
func (g *Game) renderOverlay(dst *core.Screen, frame core.Rect, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	cx, cy := frame.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(boxW-len(line1))/2, box.Y+1, line1, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len(line2))/2, box.Y+3, line2)
}
