// viewer shows a zoomable checkerboard inside a fixed container. Touch
// screens pinch and pan directly; on desktop, drag with the left mouse
// button to pan, press +/- to pinch around the container center, and press
// Z to auto-zoom to the cursor. An optional gesture script path replays on
// startup.
package main

import (
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/pinchzoom"
)

const (
	screenW = 640
	screenH = 720

	contentW = 1200
	contentH = 900
	cellSize = 50

	pinchFrames = 8
	pinchStep   = 40.0
)

var (
	cellLight = color.RGBA{R: 0xe8, G: 0xe4, B: 0xd8, A: 0xff}
	cellDark  = color.RGBA{R: 0x3a, G: 0x5a, B: 0x7a, A: 0xff}
)

type game struct {
	view     *pinchzoom.View
	dragging bool
}

func main() {
	cfg := pinchzoom.Config{
		MinZoomScale: 0.5,
		MaxZoomScale: 4,
		BoundSize:    pinchzoom.Size{Width: 560, Height: 640},
		ContentSize:  pinchzoom.Size{Width: contentW, Height: contentH},
		Debug:        os.Getenv("PINCHZOOM_DEBUG") != "",
		ClassName:    "checkerboard",
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	z := pinchzoom.NewZoomer(cfg)
	view := pinchzoom.NewView(z, newCheckerboard())
	view.SetBounds(pinchzoom.Rect{
		Origin: pinchzoom.Point{X: 40, Y: 40},
		Size:   cfg.BoundSize,
	})

	if len(os.Args) > 1 {
		script, err := pinchzoom.LoadGestureScript(os.Args[1])
		if err != nil {
			log.Fatalf("script: %v", err)
		}
		view.SetScriptRunner(pinchzoom.NewScriptRunner(script))
	}

	ebiten.SetWindowTitle("pinchzoom viewer")
	ebiten.SetWindowSize(screenW, screenH)
	if err := ebiten.RunGame(&game{view: view}); err != nil {
		log.Fatal(err)
	}
}

func (g *game) Update() error {
	g.mouseInput()
	return g.view.Update()
}

// mouseInput turns mouse and keyboard input into injected touches so the
// viewer is usable without a touch screen.
func (g *game) mouseInput() {
	mx, my := ebiten.CursorPosition()
	cursor := pinchzoom.Point{X: float64(mx), Y: float64(my)}
	bounds := g.view.Bounds

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && bounds.Contains(cursor):
		g.dragging = true
		g.view.InjectTouches(cursor)
	case g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.view.InjectTouches(cursor)
	case g.dragging:
		g.dragging = false
		g.view.InjectRelease()
	}

	if g.dragging || g.view.PendingInjections() > 0 {
		return
	}
	center := pinchzoom.Sum(bounds.Origin, bounds.Size.Half())
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.view.InjectPinch(center, pinchStep, 2*pinchStep, pinchFrames)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.view.InjectPinch(center, 2*pinchStep, pinchStep, pinchFrames)
	case inpututil.IsKeyJustPressed(ebiten.KeyZ) && bounds.Contains(cursor):
		g.view.Zoomer().AutoZoomToPosition(pinchzoom.NormalizePointInRect(cursor, bounds))
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.view.Screenshot("viewer")
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xff})
	g.view.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

// newCheckerboard builds the content image procedurally.
func newCheckerboard() *ebiten.Image {
	img := ebiten.NewImage(contentW, contentH)
	img.Fill(cellLight)
	cell := ebiten.NewImage(cellSize, cellSize)
	cell.Fill(cellDark)
	for y := 0; y < contentH/cellSize; y++ {
		for x := 0; x < contentW/cellSize; x++ {
			if (x+y)%2 == 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*cellSize), float64(y*cellSize))
			img.DrawImage(cell, op)
		}
	}
	return img
}
