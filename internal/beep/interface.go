package beep

// Beeper emits an audible alert. Ring is fire-and-forget: it blocks for at
// most the tone duration and never reports failure to the caller.
type Beeper interface {
	Ring(freqHz, durationMs int)
}
