package keyframes

import (
	"context"
	"math"
	"sync"
	"time"
)

// Animator drives an Evaluator through time.
//
// Playback is cooperative: the caller (a display loop, a ticker, Run)
// calls Tick whenever it wants a new frame, and Tick derives the frame
// progress from the Animator's Clock. Updates arriving sooner than the
// maximum frame rate allows are dropped.
//
// Animator methods may be called from several goroutines, but the
// Evaluator it owns must only be read from the goroutine that calls Tick,
// OnProgressUpdate or SetFrameProgress.
type Animator struct {
	ev    *Evaluator
	clock Clock

	mu           sync.Mutex
	maxFrameRate int
	lastUpdate   time.Duration
	updated      bool
	frame        float64 // last frame handed to the evaluator

	running   bool
	startedAt time.Duration
	loop      int

	stopAtEnd bool
	stopLoop  int
	listener  func()
}

// NewAnimator creates a stopped animator over a sealed animation. Options
// are shared with the underlying Evaluator.
func NewAnimator(a *Animation, opts ...Option) (*Animator, error) {
	ev, err := NewEvaluator(a, opts...)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	return &Animator{
		ev:           ev,
		clock:        o.clock,
		maxFrameRate: o.maxFrameRate,
	}, nil
}

// Frame returns the last frame handed to the evaluator. Unlike
// Evaluator().Frame it may be called from any goroutine.
func (an *Animator) Frame() float64 {
	an.mu.Lock()
	defer an.mu.Unlock()
	return an.frame
}

// Evaluator returns the evaluator holding the current feature states.
func (an *Animator) Evaluator() *Evaluator {
	return an.ev
}

// Running reports whether playback is active.
func (an *Animator) Running() bool {
	an.mu.Lock()
	defer an.mu.Unlock()
	return an.running
}

// Start begins playback from frame 0. Starting a running animator does
// nothing.
func (an *Animator) Start() {
	an.mu.Lock()
	defer an.mu.Unlock()
	if an.running {
		return
	}
	an.running = true
	an.startedAt = an.clock.Now()
	an.loop = 0
	an.stopAtEnd = false
	Logger().Info("animation started", "frames", an.ev.anim.FrameCount, "fps", an.ev.anim.FrameRate)
}

// Stop ends playback immediately. A pending end-of-animation listener is
// dropped without being called.
func (an *Animator) Stop() {
	an.mu.Lock()
	defer an.mu.Unlock()
	an.listener = nil
	an.stopAtEnd = false
	if !an.running {
		return
	}
	an.running = false
	Logger().Info("animation stopped", "frame", an.frame)
}

// StopAtLoopEnd lets the current play-through reach its final frame and
// then stops, notifying the animation listener once. It does nothing when
// the animator is not running.
func (an *Animator) StopAtLoopEnd() {
	an.mu.Lock()
	defer an.mu.Unlock()
	if !an.running || an.stopAtEnd {
		return
	}
	an.stopAtEnd = true
	an.stopLoop = an.loop
}

// SetAnimationListener sets the function called when a StopAtLoopEnd
// request completes. The listener is released after it fires or when Stop
// is called, so the animator never keeps it alive longer than needed.
func (an *Animator) SetAnimationListener(fn func()) {
	an.mu.Lock()
	defer an.mu.Unlock()
	an.listener = fn
}

// SetMaxFrameRate caps accepted progress updates to fps per second. Zero or
// negative removes the cap.
func (an *Animator) SetMaxFrameRate(fps int) {
	an.mu.Lock()
	defer an.mu.Unlock()
	an.maxFrameRate = fps
}

// SetFrameProgress evaluates frame directly, bypassing the throttle.
func (an *Animator) SetFrameProgress(frame float64) {
	an.mu.Lock()
	an.frame = frame
	an.mu.Unlock()
	an.ev.SetFrameProgress(frame)
}

// OnProgressUpdate evaluates frame unless the previous accepted update
// happened less than 1000/maxFrameRate milliseconds ago. It reports
// whether the frame was evaluated.
func (an *Animator) OnProgressUpdate(frame float64) bool {
	an.mu.Lock()
	if an.maxFrameRate > 0 {
		now := an.clock.Now()
		minFrameTime := time.Duration(1000/an.maxFrameRate) * time.Millisecond
		if an.updated && now-an.lastUpdate < minFrameTime {
			an.mu.Unlock()
			return false
		}
		an.lastUpdate = now
		an.updated = true
	}
	an.frame = frame
	an.mu.Unlock()
	an.ev.SetFrameProgress(frame)
	return true
}

// Tick advances playback to the clock's current time. It reports whether
// a frame was evaluated. Playback loops over the animation until stopped.
func (an *Animator) Tick() bool {
	an.mu.Lock()
	if !an.running {
		an.mu.Unlock()
		return false
	}
	a := an.ev.anim
	elapsed := an.clock.Now() - an.startedAt
	progress := elapsed.Seconds() * float64(a.FrameRate)
	frames := float64(a.FrameCount)
	loop := int(math.Floor(progress / frames))

	if an.stopAtEnd && loop > an.stopLoop {
		an.running = false
		an.stopAtEnd = false
		listener := an.listener
		an.listener = nil
		an.frame = frames
		an.mu.Unlock()

		an.ev.SetFrameProgress(frames)
		Logger().Info("animation stopped at loop end", "loops", loop)
		if listener != nil {
			listener()
		}
		return true
	}
	an.loop = loop
	an.mu.Unlock()

	return an.OnProgressUpdate(math.Mod(progress, frames))
}

// Run ticks the animator at interval until it stops or ctx is done. frame
// is called after every evaluated frame; a non-nil error stops playback and
// is returned.
func (an *Animator) Run(ctx context.Context, interval time.Duration, frame func(*Evaluator) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	an.Start()
	for {
		select {
		case <-ctx.Done():
			an.Stop()
			return ctx.Err()
		case <-ticker.C:
		}
		running := an.Running()
		if an.Tick() && frame != nil {
			if err := frame(an.ev); err != nil {
				an.Stop()
				return err
			}
		}
		if !running || !an.Running() {
			return nil
		}
	}
}
