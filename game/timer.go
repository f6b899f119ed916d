package game

import "time"

// Timer counts simulated time in fixed ticks rather than wall-clock time,
// so it pauses whenever the game loop does.
type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
	tick        time.Duration
}

func NewTimer(target, tick time.Duration) *Timer {
	return &Timer{
		currentTime: 0,
		targetTime:  target,
		tick:        tick,
	}
}

func (t *Timer) Update() {
	t.currentTime += t.tick
}

func (t *Timer) IsReady() bool {
	return t.targetTime > 0 && t.currentTime >= t.targetTime
}

func (t *Timer) Reset() {
	t.currentTime = 0
}
