package calendar

// DecidePage applies the horizontal swipe rule of the paged calendar: a
// leftward drag past threshold shows the next month (+1), a rightward drag
// the previous one (-1), anything shorter stays (0).
func DecidePage(dx, threshold float64) int {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	switch {
	case dx < -threshold:
		return 1
	case dx > threshold:
		return -1
	default:
		return 0
	}
}

// Page moves the state by the result of DecidePage.
func (s *State) Page(delta int) {
	for ; delta > 0; delta-- {
		s.GoToNextMonth()
	}
	for ; delta < 0; delta++ {
		s.GoToPreviousMonth()
	}
}
