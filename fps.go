package showcase

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefresh = 0.5 // seconds

// NewFPSWidget returns a small sprite reporting ebiten's measured FPS and
// TPS. It sits on the top render layer.
func NewFPSWidget() *Node {
	img := ebiten.NewImage(100, 32)
	n := NewSprite("fps", img)
	n.RenderLayer = 255

	since := fpsRefresh
	n.OnUpdate = func(dt float64) {
		if since += dt; since < fpsRefresh {
			return
		}
		since = 0
		img.Fill(color.RGBA{A: 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return n
}
