// Package splash runs the loading screen frame by frame without touching
// the graphics backend: it turns elapsed time and a quit flag into a Frame
// that a renderer can draw.
package splash

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"nights/internal/layout"
	"nights/internal/progress"
)

// Clock reports the current time. The driver measures frame deltas with it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Options configure a Driver.
type Options struct {
	Spec           layout.SceneSpec
	Rate           float64
	ExitOnComplete bool
	// Linger keeps the full bar on screen for a while before finishing.
	Linger    time.Duration
	CacheSize int
}

// Frame is everything the renderer needs for one frame.
type Frame struct {
	Scene    layout.Scene
	Fraction float64
	Percent  int
	Fill     layout.Rect
}

// Driver owns the progress animator and the scene cache. It is meant to be
// stepped from a single game loop.
type Driver struct {
	opts     Options
	spec     layout.PreparedSpec
	clock    Clock
	animator *progress.Animator
	scenes   *layout.SceneCache
	logger   *zap.Logger

	started     bool
	last        time.Time
	completedAt time.Time
}

func NewDriver(opts Options, clock Clock, logger *zap.Logger) (*Driver, error) {
	scenes, err := layout.NewSceneCache(opts.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Driver{
		opts:     opts,
		spec:     layout.Prepare(opts.Spec),
		clock:    clock,
		animator: progress.NewAnimator(),
		scenes:   scenes,
		logger:   logger.Named("loading"),
	}, nil
}

// Start marks the first frame. Time before Start does not count towards
// progress. Step calls Start itself if needed.
func (d *Driver) Start() {
	d.started = true
	d.last = d.clock.Now()
	d.logger.Debug("Loading started", zap.Float64("rate", d.opts.Rate))
}

// Animator exposes the progress state, mostly for inspection.
func (d *Driver) Animator() *progress.Animator {
	return d.animator
}

// Step advances the animation by the time elapsed since the previous step
// and lays out canvas. done is true when quit was requested or, with
// ExitOnComplete, once the bar has been full for Linger.
func (d *Driver) Step(canvas layout.CanvasSpec, quit bool) (frame Frame, done bool, err error) {
	if !d.started {
		d.Start()
	}

	now := d.clock.Now()
	dt := now.Sub(d.last).Seconds()
	d.last = now

	wasComplete := d.animator.IsComplete()
	if err := d.animator.Advance(dt, d.opts.Rate); err != nil {
		if !errors.Is(err, progress.ErrInvalidArgument) {
			return Frame{}, false, err
		}
		d.logger.Debug("Skipping frame delta", zap.Float64("dt", dt), zap.Error(err))
	}
	if !wasComplete && d.animator.IsComplete() {
		d.completedAt = now
		d.logger.Info("Loading complete")
	}

	scene, err := d.scenes.Prepared(canvas, d.spec)
	if err != nil {
		return Frame{}, false, err
	}

	filled := d.animator.FilledWidth(scene.Bar.Width)
	frame = Frame{
		Scene:    scene,
		Fraction: d.animator.CurrentFraction(),
		Percent:  d.animator.Percent(),
		Fill:     scene.BarFill(filled),
	}

	if quit {
		d.logger.Info("Quit requested", zap.Float64("fraction", frame.Fraction))
		return frame, true, nil
	}
	if d.opts.ExitOnComplete && d.animator.IsComplete() && now.Sub(d.completedAt) >= d.opts.Linger {
		return frame, true, nil
	}
	return frame, false, nil
}
