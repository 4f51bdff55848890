package tween

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugStats holds per-frame phase timings. Only populated when Driver.Debug
// is true.
type debugStats struct {
	fixedTime       time.Duration
	updateTime      time.Duration
	independentTime time.Duration
	lateTime        time.Duration
	fixedSteps      int
	tweens          int
}

// debugOut is where Driver.Debug timings go.
var debugOut io.Writer = os.Stderr

// debugLog prints phase timings and the scheduled tween count.
func (d *Driver) debugLog(stats debugStats) {
	if !d.Debug {
		return
	}
	total := stats.fixedTime + stats.updateTime + stats.independentTime + stats.lateTime
	_, _ = fmt.Fprintf(debugOut,
		"[tween] fixed: %v (%d steps) | update: %v | independent: %v | late: %v | total: %v\n",
		stats.fixedTime, stats.fixedSteps, stats.updateTime, stats.independentTime, stats.lateTime, total)
	_, _ = fmt.Fprintf(debugOut, "[tween] scheduled: %d\n", stats.tweens)
}

// debugMaxTweens is the scheduled count above which the driver warns once.
const debugMaxTweens = 10000

func (d *Driver) debugCheckTweenCount(n int) {
	if n > debugMaxTweens && !d.warnedCount {
		d.warnedCount = true
		_, _ = fmt.Fprintf(debugOut, "[tween] warning: %d tweens scheduled (threshold %d)\n", n, debugMaxTweens)
	}
}

// statsOverlay is refreshed every statsInterval seconds of unscaled time.
const statsInterval = 0.5

func statsText(fps, tps float64, tweens int) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTweens: %d", fps, tps, tweens)
}

// updateStats re-renders the overlay image when the refresh interval passes.
func (d *Driver) updateStats(dt float32) {
	if !d.ShowStats {
		return
	}
	d.statsElapsed += dt
	if d.statsImage != nil && d.statsElapsed < statsInterval {
		return
	}
	d.statsElapsed = 0
	if d.statsImage == nil {
		// 100x48 fits three DebugPrint lines.
		d.statsImage = ebiten.NewImage(100, 48)
	}
	d.statsImage.Clear()
	d.statsImage.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(d.statsImage, statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), d.Engine.Len()))
}

func (d *Driver) drawStats(screen *ebiten.Image) {
	if !d.ShowStats || d.statsImage == nil {
		return
	}
	screen.DrawImage(d.statsImage, nil)
}
