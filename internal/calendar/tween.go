package calendar

import "time"

// DefaultAnimationDuration is the length of the month/week height transition.
const DefaultAnimationDuration = 300 * time.Millisecond

// HeightTween interpolates a height between two values over a fixed
// duration. The zero value is finished and reports a height of 0.
type HeightTween struct {
	from, to float64
	start    time.Time
	duration time.Duration
}

// NewHeightTween starts a transition from -> to at start.
func NewHeightTween(from, to float64, start time.Time, duration time.Duration) HeightTween {
	return HeightTween{from: from, to: to, start: start, duration: duration}
}

// Target returns the final height.
func (t HeightTween) Target() float64 {
	return t.to
}

// Done reports whether the transition has completed at now.
func (t HeightTween) Done(now time.Time) bool {
	return t.duration <= 0 || !now.Before(t.start.Add(t.duration))
}

// Value returns the eased height at now, clamped to [from, to].
func (t HeightTween) Value(now time.Time) float64 {
	if t.Done(now) {
		return t.to
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	if p < 0 {
		p = 0
	}
	return t.from + (t.to-t.from)*easeOutCubic(p)
}

func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}
