package scene

// Animator owns the mutable animation state advanced once per tick. It is
// not safe for concurrent use; the UI event loop serializes ticks.
type Animator struct {
	frame   int
	stage   int
	running bool
}

// NewAnimator returns a running animator at frame 0, stage 0.
func NewAnimator() *Animator {
	return &Animator{running: true}
}

// Tick advances one frame, wrapping at FrameCount and flipping the stage.
// A stopped animator ignores ticks without losing its position.
func (a *Animator) Tick() {
	if !a.running {
		return
	}
	a.frame++
	if a.frame >= FrameCount {
		a.frame = 0
		a.stage = 1 - a.stage
	}
}

// Toggle flips between running and stopped and reports the new state.
func (a *Animator) Toggle() bool {
	a.running = !a.running
	return a.running
}

// Running reports whether ticks currently advance the animation.
func (a *Animator) Running() bool { return a.running }

// Frame returns the current frame index within the stage.
func (a *Animator) Frame() int { return a.frame }

// Stage returns the current travel stage (0 or 1).
func (a *Animator) Stage() int { return a.stage }

// Compose renders the current frame for the given terminal width.
func (a *Animator) Compose(termWidth int) string {
	return Compose(a.frame, a.stage, termWidth)
}
