package calendar

// ViewMode selects between the full month grid and the single week row.
type ViewMode int

const (
	ModeMonth ViewMode = iota // Full grid
	ModeWeek                  // Single projected week
)

// String returns "month" or "week".
func (m ViewMode) String() string {
	if m == ModeWeek {
		return "week"
	}
	return "month"
}

// ParseViewMode maps "week" to ModeWeek and anything else to ModeMonth.
func ParseViewMode(s string) ViewMode {
	if s == "week" {
		return ModeWeek
	}
	return ModeMonth
}

// DefaultDragThreshold is the drag distance, in gesture units, that must be
// exceeded on release to switch modes.
const DefaultDragThreshold = 50.0

// DecideMode applies the release rule with the default threshold. Negative
// distances are upward drags.
func DecideMode(distance float64) (ViewMode, bool) {
	return DecideModeWithThreshold(distance, DefaultDragThreshold)
}

// DecideModeWithThreshold returns ModeMonth for an upward drag past
// threshold, ModeWeek for a downward drag past threshold, and false when
// neither was crossed.
func DecideModeWithThreshold(distance, threshold float64) (ViewMode, bool) {
	switch {
	case distance < -threshold:
		return ModeMonth, true
	case distance > threshold:
		return ModeWeek, true
	default:
		return ModeMonth, false
	}
}

// DragTracker follows one vertical drag gesture.
type DragTracker struct {
	threshold float64
	active    bool
	startY    float64
	distance  float64
}

// NewDragTracker creates a tracker with the given threshold. A non-positive
// threshold falls back to DefaultDragThreshold.
func NewDragTracker(threshold float64) *DragTracker {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &DragTracker{threshold: threshold}
}

// Start begins a gesture at vertical position y.
func (d *DragTracker) Start(y float64) {
	d.active = true
	d.startY = y
	d.distance = 0
}

// Move records the current vertical position of an active gesture.
func (d *DragTracker) Move(y float64) {
	if !d.active {
		return
	}
	d.distance = y - d.startY
}

// Active reports whether a gesture is in progress.
func (d *DragTracker) Active() bool {
	return d.active
}

// Distance returns the vertical distance since Start.
func (d *DragTracker) Distance() float64 {
	return d.distance
}

// End finishes the gesture at y and returns the mode decision.
func (d *DragTracker) End(y float64) (ViewMode, bool) {
	if !d.active {
		return ModeMonth, false
	}
	d.Move(y)
	d.active = false
	return DecideModeWithThreshold(d.distance, d.threshold)
}

// Cancel drops an interrupted gesture. It counts as no threshold crossed.
func (d *DragTracker) Cancel() {
	d.active = false
	d.distance = 0
}
