package overlay

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/barcode/internal/renderer/core"
)

// PromptWidth is the width of the input box.
const PromptWidth = 70

// Painter receives the cells of a box.
type Painter interface {
	SetCell(x, y int, cell core.Cell)
}

// BoxLines returns the three rows of a rounded box of the given width with
// title centered in the top border and body after a "> " mark.
func BoxLines(width int, title, body string) [3]string {
	inner := max(width-2, 0)

	heading := " " + title + " "
	if runewidth.StringWidth(heading) > inner {
		heading = runewidth.Truncate(heading, inner, "")
	}
	free := inner - runewidth.StringWidth(heading)
	left := free / 2
	top := "╭" + strings.Repeat("─", left) + heading + strings.Repeat("─", free-left) + "╮"

	field := max(width-5, 0)
	text := runewidth.FillRight(runewidth.Truncate(body, field, ""), field)
	mid := "│ > " + text + "│"

	bottom := "╰" + strings.Repeat("─", inner) + "╯"
	return [3]string{top, mid, bottom}
}

// DrawBox paints a box with its top-left corner at (x, y).
func DrawBox(p Painter, x, y, width int, title, body string, style core.Style) {
	for row, line := range BoxLines(width, title, body) {
		for i, c := range core.CellsFromString(line, style) {
			if c.IsContinuation() {
				continue
			}
			p.SetCell(x+i, y+row, c)
		}
	}
}

// MessageOrigin returns where a message box for text sits on a screen of
// the given width, and the box width.
func MessageOrigin(screenWidth int, text string) (x, y, width int) {
	width = runewidth.StringWidth(text) + 6
	return max(screenWidth-width, 0), 2, width
}

// PromptOrigin returns where the input box sits: centered horizontally at
// 80% of the screen height, kept fully on screen.
func PromptOrigin(screenWidth, screenHeight int) (x, y, width int) {
	width = min(PromptWidth, screenWidth)
	x = max(screenWidth/2-width/2, 0)
	y = int(math.Round(float64(screenHeight) * 0.8))
	y = max(min(y, screenHeight-3), 0)
	return x, y, width
}
