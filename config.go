package tablegrid

import "time"

// Config controls editor behavior.
type Config struct {
	// EdgeThresholdPx is how close, in pixels, the pointer must be to a
	// bounding box edge for the insert affordance to appear (default: 10)
	EdgeThresholdPx float64

	// MinInsertGap is the smallest normalized gap between an edge and its
	// nearest parallel line that still accepts a new line (default: 0.01)
	MinInsertGap float64

	// AffordanceHideDelay is how long the insert affordance stays after the
	// pointer leaves the edge region (default: 3s)
	AffordanceHideDelay time.Duration

	// HistoryLimit caps the number of undo entries, evicting the oldest;
	// 0 keeps all (default: 0)
	HistoryLimit int

	// EnableEventLogging logs committed mutations and dropped gestures (default: false)
	EnableEventLogging bool

	// Scheduler runs the affordance hide timer (default: runtime timers)
	Scheduler Scheduler
}

// DefaultConfig returns the default editor configuration.
func DefaultConfig() Config {
	return Config{
		EdgeThresholdPx:     10,
		MinInsertGap:        0.01,
		AffordanceHideDelay: 3000 * time.Millisecond,
	}
}

func (c Config) scheduler() Scheduler {
	if c.Scheduler == nil {
		return realScheduler{}
	}
	return c.Scheduler
}
