package test

import "time"

// timerTickMsg is sent every second to drive the question countdown.
type timerTickMsg time.Time

// persistDoneMsg is sent when a progress snapshot save completes.
// RunID identifies which run issued the save, for warnings.
type persistDoneMsg struct {
	RunID string
	Err   error
}
