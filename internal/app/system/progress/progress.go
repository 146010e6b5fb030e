// internal/app/system/progress/progress.go
package progress

import "math"

// Percent returns the rounded completion percentage for current out
// of total steps. A non-positive total yields 0 rather than NaN, and
// the result is clamped to 0..100 so over-counted steps never
// overflow a progress bar.
func Percent(current, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(current) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
