package pinchzoom

import (
	"image"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugBackground is the container fill used in debug mode.
var debugBackground = color.RGBA{R: 255, A: 255}

// View presents a Zoomer on an Ebitengine screen. It reads touch input inside
// Update, feeds it to the zoomer, and draws Content clipped to Bounds with
// the current transform.
//
// Call Update from ebiten.Game.Update and Draw from ebiten.Game.Draw.
type View struct {
	// Bounds is the container rectangle in screen coordinates.
	Bounds Rect
	// Content is the image being zoomed. Nil draws nothing but the debug fill.
	Content *ebiten.Image
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	zoomer     *Zoomer
	transition *Transition
	handle     CallbackHandle
	tracker    touchTracker

	touchIDs   []ebiten.TouchID
	touchOrder []ebiten.TouchID
	touchBuf   []Point

	injectQueue     [][]Point
	screenshotQueue []string
	runner          *ScriptRunner
}

// NewView creates a View for z. The container starts at the origin with the
// zoomer's configured bound size.
func NewView(z *Zoomer, content *ebiten.Image) *View {
	v := &View{
		Bounds:        Rect{Size: z.Config().BoundSize},
		Content:       content,
		ScreenshotDir: "screenshots",
		zoomer:        z,
		transition:    NewTransition(z.Transform()),
	}
	v.handle = z.OnTransform(v.transition.Apply)
	return v
}

// Zoomer returns the zoomer driven by this view.
func (v *View) Zoomer() *Zoomer {
	return v.zoomer
}

// Transition returns the presentation transition.
func (v *View) Transition() *Transition {
	return v.transition
}

// Shown returns the transform currently on screen, which lags the zoomer's
// transform while a transition animates.
func (v *View) Shown() Transform {
	return v.transition.Current()
}

// SetBounds moves or resizes the container. A size change is pushed into
// the zoomer's config, which re-validates the view when the height changes.
func (v *View) SetBounds(r Rect) {
	v.Bounds = r
	cfg := v.zoomer.Config()
	if cfg.BoundSize != r.Size {
		cfg.BoundSize = r.Size
		v.zoomer.SetConfig(cfg)
	}
}

// Close detaches the view from its zoomer.
func (v *View) Close() {
	v.handle.Remove()
}

// Update processes one frame of input and advances the transition.
func (v *View) Update() error {
	if v.runner != nil {
		v.runner.step(v)
	}
	v.processFrame(v.nextTouches())
	v.transition.Update(float32(1 / float64(ebiten.TPS())))
	return nil
}

// processFrame feeds one frame's active touches to the zoomer.
func (v *View) processFrame(touches []Point) {
	v.tracker.feed(v.zoomer, v.Bounds, touches)
}

// nextTouches pops an injected frame, or reads the hardware touches when the
// inject queue is empty. Injected input replays an in-flight injected
// gesture, so hardware touches are ignored until the queue drains.
func (v *View) nextTouches() []Point {
	if len(v.injectQueue) > 0 {
		frame := v.injectQueue[0]
		copy(v.injectQueue, v.injectQueue[1:])
		v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]
		return frame
	}
	return v.readTouches()
}

// readTouches returns hardware touch positions ordered by arrival.
func (v *View) readTouches() []Point {
	v.touchIDs = ebiten.AppendTouchIDs(v.touchIDs[:0])

	v.touchOrder = slices.DeleteFunc(v.touchOrder, func(id ebiten.TouchID) bool {
		return !slices.Contains(v.touchIDs, id)
	})
	for _, id := range v.touchIDs {
		if !slices.Contains(v.touchOrder, id) {
			v.touchOrder = append(v.touchOrder, id)
		}
	}

	v.touchBuf = v.touchBuf[:0]
	for _, id := range v.touchOrder {
		x, y := ebiten.TouchPosition(id)
		v.touchBuf = append(v.touchBuf, Point{X: float64(x), Y: float64(y)})
	}
	return v.touchBuf
}

// Draw renders the container and its content onto screen.
func (v *View) Draw(screen *ebiten.Image) {
	b := v.Bounds
	clip := image.Rect(
		int(b.Origin.X), int(b.Origin.Y),
		int(b.Origin.X+b.Size.Width), int(b.Origin.Y+b.Size.Height),
	)
	container := screen.SubImage(clip).(*ebiten.Image)

	debug := v.zoomer.Config().Debug
	if debug {
		container.Fill(debugBackground)
	}
	if v.Content != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = v.Shown().GeoM(b.Origin)
		op.Filter = ebiten.FilterLinear
		container.DrawImage(v.Content, op)
	}
	if debug {
		ebitenutil.DebugPrintAt(screen, debugOverlayText(v.zoomer, v.Shown()), clip.Min.X+4, clip.Min.Y+4)
	}

	v.flushScreenshots(screen)
}
