// Package animator interpolates a displayed integer toward a moving target
// so dashboard figures glide instead of jumping. Each displayed metric owns
// its own Animator instance; there is no package-level state.
package animator

import (
	"math"
	"sync"
	"time"
)

const (
	defaultDuration = 500 * time.Millisecond
	defaultFrame    = 16 * time.Millisecond
)

// Animator eases the displayed value toward the most recent target using a
// quartic ease-out curve. A new target pre-empts any in-flight interpolation
// via a generation counter: stale frames notice they lost and stop silently.
type Animator struct {
	mu         sync.Mutex
	generation uint64
	current    float64
	animating  bool
	duration   time.Duration
	frame      time.Duration
	callbacks  []func(value int)
}

// Option configures an Animator.
type Option func(*Animator)

// WithDuration overrides the interpolation duration.
func WithDuration(d time.Duration) Option {
	return func(a *Animator) {
		if d > 0 {
			a.duration = d
		}
	}
}

// WithFrameInterval overrides the step interval.
func WithFrameInterval(d time.Duration) Option {
	return func(a *Animator) {
		if d > 0 {
			a.frame = d
		}
	}
}

func New(opts ...Option) *Animator {
	a := &Animator{
		duration: defaultDuration,
		frame:    defaultFrame,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Subscribe registers a callback invoked with every displayed value,
// including the final settled target. Callbacks run on the animation
// goroutine and must not call back into the Animator.
func (a *Animator) Subscribe(fn func(value int)) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.callbacks = append(a.callbacks, fn)
}

// Current returns the value being displayed right now.
func (a *Animator) Current() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return int(math.Round(a.current))
}

// SetTarget starts interpolating from the currently displayed value toward
// target. Starting from the displayed value (not the previous target) keeps
// the sequence continuous when a new target arrives mid-animation. A target
// equal to an already settled value is a no-op.
func (a *Animator) SetTarget(target int) {
	a.mu.Lock()

	if !a.animating && int(math.Round(a.current)) == target {
		a.mu.Unlock()
		return
	}

	a.generation++
	generation := a.generation
	start := a.current
	a.animating = true
	a.mu.Unlock()

	go a.animate(generation, start, float64(target))
}

// Stop cancels any in-flight interpolation, freezing the displayed value.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.generation++
	a.animating = false
}

func (a *Animator) animate(generation uint64, start, target float64) {
	startTime := time.Now()
	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	for range ticker.C {
		t := float64(time.Since(startTime)) / float64(a.duration)
		if t > 1 {
			t = 1
		}

		// Quartic ease-out: fast start, gentle landing.
		eased := 1 - math.Pow(1-t, 4)
		value := start + (target-start)*eased

		if !a.emit(generation, value, t >= 1) {
			return
		}

		if t >= 1 {
			return
		}
	}
}

// emit publishes one frame unless the interpolation lost its generation.
// Callbacks are invoked while the lock is held so frames from a pre-empted
// run can never interleave with the run that replaced it.
func (a *Animator) emit(generation uint64, value float64, final bool) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if generation != a.generation {
		return false
	}

	a.current = value
	if final {
		a.animating = false
	}

	rounded := int(math.Round(value))
	for _, fn := range a.callbacks {
		fn(rounded)
	}

	return true
}
