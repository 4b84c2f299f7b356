package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HelpText is shown in the bottom-right corner while a session is running.
const HelpText = "P: Pause, R: Resume, ENTER: Restart"

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// HUDFace is the font shared by the HUD and the overlay panels.
func HUDFace() ebtext.Face {
	return hudFace
}

// DrawHUD draws the score lines at the top left and the key help at the
// bottom right of a width x height screen.
func DrawHUD(screen *ebiten.Image, score, highScore int) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawText(screen, fmt.Sprintf("Score: %d", score), 16, 16, 2)
	drawText(screen, fmt.Sprintf("High Score: %d", highScore), 16, 48, 2)

	tw, _ := ebtext.Measure(HelpText, hudFace, 0)
	drawText(screen, HelpText, float64(w)-tw-16, float64(h)-32, 1)
}

func drawText(screen *ebiten.Image, s string, x, y, scale float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, s, hudFace, op)
}
