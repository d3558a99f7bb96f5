package commute

import (
	"fmt"
	"time"
)

// FormatTime renders milliseconds as mm:ss, with an h: prefix once the value
// reaches an hour.
func FormatTime(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	s := (ms / 1e3) % 60
	min := (ms / 60e3) % 60
	h := ms / 3600e3
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, s)
	}
	return fmt.Sprintf("%02d:%02d", min, s)
}

// FormatDuration is FormatTime for a time.Duration.
func FormatDuration(d time.Duration) string {
	return FormatTime(d.Milliseconds())
}
