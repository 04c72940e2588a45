package pairs

import (
	"fmt"

	"github.com/mkovardin/tui-pairs/internal/core"
)

// Render draws the HUD, the card grid, and any overlay into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "P A U S E D")
	}
	if g.won {
		g.renderWin(dst)
	}
}

// renderTooSmall shows the minimum size needed for the current grid.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW := g.grid.Cols*(cardW+cardGapX) - cardGapX
	minH := g.grid.Rows*cardH + hudLines
	dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
	dst.DrawTextCentered(dst.Height()/2,
		fmt.Sprintf("Need %dx%d for a %s board", minW, minH, g.grid.Key()))
	dst.DrawTextCentered(dst.Height()/2+1, "Resize or pick a smaller grid")
}

// renderHUD draws the status line at the top of the screen.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	hud := fmt.Sprintf(" PAIRS %s  Moves: %d  Pairs: %d/%d  Time: %s",
		g.grid.Key(), st.Moves, st.MatchedPairs, st.TotalPairs,
		FormatTicks(st.ElapsedTicks, g.tickRate))
	dst.DrawText(0, 0, hud)
}

// renderBoard draws every card cell, centered below the HUD.
func (g *Game) renderBoard(dst *core.Screen) {
	boardW := g.grid.Cols*(cardW+cardGapX) - cardGapX
	boardH := g.grid.Rows * cardH
	offsetX := (dst.Width() - boardW) / 2
	offsetY := hudLines + (dst.Height()-hudLines-boardH)/2
	if offsetX < 0 {
		offsetX = 0
	}
	if offsetY < hudLines {
		offsetY = hudLines
	}

	for i := range g.board.Cards {
		row := i / g.grid.Cols
		col := i % g.grid.Cols
		rect := core.NewRect(
			offsetX+col*(cardW+cardGapX),
			offsetY+row*cardH,
			cardW, cardH,
		)
		g.renderCard(dst, i, rect)
	}
}

// renderCard draws one card cell, applying any in-flight flip animation.
func (g *Game) renderCard(dst *core.Screen, index int, rect core.Rect) {
	card := g.board.Card(index)
	if card == nil {
		return
	}

	// The flip collapses the box horizontally and expands it back; during
	// the first half the pre-transition face is still showing.
	scale := g.anim.WidthScale(index)
	w := int(float64(cardW) * scale)
	if w < 2 {
		w = 2
	}
	box := core.NewRect(rect.X+(cardW-w)/2, rect.Y, w, rect.H)

	showFace := card.State() != Hidden
	if effect, ok := g.anim.Effect(index); ok && g.anim.ShowsBack(index) {
		// Pre-transition face: a reveal still shows the back, a hide
		// still shows the glyph.
		switch effect {
		case FlipReveal:
			showFace = false
		case FlipHide:
			showFace = true
		}
	}

	borderColor := core.ColorGray
	switch {
	case index == g.cursor && !g.won:
		borderColor = core.ColorBrightYellow
	case card.State() == Matched:
		borderColor = core.ColorGreen
	case card.State() == Revealed:
		borderColor = core.ColorWhite
	}

	dst.DrawBox(box, borderColor)

	cx, cy := box.Center()
	if !showFace {
		// Face-down fill
		for y := box.Y + 1; y < box.Bottom()-1; y++ {
			for x := box.X + 1; x < box.Right()-1; x++ {
				dst.SetCell(x, y, '░', core.ColorGray)
			}
		}
		return
	}

	glyph := '?'
	if card.PairID < len(pairGlyphs) {
		glyph = pairGlyphs[card.PairID]
	}
	glyphColor := pairColors[card.PairID%len(pairColors)]
	if card.State() == Matched {
		glyphColor = core.ColorGreen
	}
	dst.SetCell(cx, cy, glyph, glyphColor)
}

// renderWin draws the solved-board overlay.
func (g *Game) renderWin(dst *core.Screen) {
	midY := dst.Height() / 2
	msg := fmt.Sprintf("Solved in %d moves, %s",
		g.finalMoves, FormatTicks(g.finalElapsed, g.tickRate))
	dst.DrawTextCentered(midY-1, "★ ALL PAIRS MATCHED ★")
	dst.DrawTextCentered(midY, msg)
	dst.DrawTextCentered(midY+1, "R: redeal  |  B: back  |  Q: quit")
}
