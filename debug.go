package pinchzoom

import (
	"fmt"
	"strings"
)

// debugf writes a log line to the debug output. Only active when Config.Debug
// is true.
func (z *Zoomer) debugf(format string, args ...any) {
	if !z.cfg.Debug || z.debugOut == nil {
		return
	}
	_, _ = fmt.Fprintf(z.debugOut, "[pinchzoom] "+format+"\n", args...)
}

// debugOverlayText formats the transform and gesture state shown by the
// View debug overlay.
func debugOverlayText(z *Zoomer, shown Transform) string {
	var b strings.Builder
	t := z.Transform()
	fmt.Fprintf(&b, "zoom: %.4f (shown %.4f)\n", t.ZoomFactor, shown.ZoomFactor)
	fmt.Fprintf(&b, "translate: %.3f, %.3f\n", t.Translate.X, t.Translate.Y)
	fmt.Fprintf(&b, "gesture: %s", z.Gesture())
	if cls := z.Config().ClassName; cls != "" {
		fmt.Fprintf(&b, "\nclass: %s", cls)
	}
	return b.String()
}
