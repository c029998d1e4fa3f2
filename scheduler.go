package grid

import "time"

// DefaultThrottle is the window that coalesces high-frequency redraws
// (wheel, container resize) into one paint.
const DefaultThrottle = 16 * time.Millisecond

// redrawScheduler coalesces redraw requests. Frame is driven by the host
// once per animation frame, so any number of requests between two frames
// produce at most one paint. Throttled requests additionally wait until
// the window since the last paint has elapsed.
type redrawScheduler struct {
	window    time.Duration
	immediate bool
	throttled bool
	lastPaint time.Time
}

// request asks for a paint at the next frame.
func (s *redrawScheduler) request() {
	s.immediate = true
}

// requestThrottled asks for a paint no sooner than one window after the
// previous paint.
func (s *redrawScheduler) requestThrottled() {
	s.throttled = true
}

// due reports whether a paint should happen at now.
func (s *redrawScheduler) due(now time.Time) bool {
	if s.immediate {
		return true
	}
	return s.throttled && now.Sub(s.lastPaint) >= s.window
}

// painted records a paint at now and clears outstanding requests.
func (s *redrawScheduler) painted(now time.Time) {
	s.immediate = false
	s.throttled = false
	s.lastPaint = now
}
