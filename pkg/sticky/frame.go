package sticky

// FrameScheduler is the host's callback-before-next-paint primitive.
// RequestFrame must invoke fn exactly once, after the current call stack
// unwinds and before the next repaint.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// FrameSchedulerFunc adapts a function to the FrameScheduler interface.
type FrameSchedulerFunc func(fn func())

func (f FrameSchedulerFunc) RequestFrame(fn func()) {
	f(fn)
}

// ManualScheduler queues frame callbacks and runs them when stepped,
// giving tests and the CLIs deterministic, synchronous frames.
type ManualScheduler struct {
	queue []func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) RequestFrame(fn func()) {
	m.queue = append(m.queue, fn)
}

// Pending returns the number of queued callbacks.
func (m *ManualScheduler) Pending() int {
	return len(m.queue)
}

// Step runs all currently queued callbacks as one frame. Callbacks
// requested during Step land in the next frame, matching
// requestAnimationFrame semantics. Returns false if the queue was empty.
func (m *ManualScheduler) Step() bool {
	if len(m.queue) == 0 {
		return false
	}
	batch := m.queue
	m.queue = nil
	for _, fn := range batch {
		fn()
	}
	return true
}

// Run steps until the queue drains or maxFrames is reached. Returns the
// number of frames run.
func (m *ManualScheduler) Run(maxFrames int) int {
	frames := 0
	for frames < maxFrames && m.Step() {
		frames++
	}
	return frames
}
