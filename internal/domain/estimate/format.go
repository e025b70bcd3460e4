package estimate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// secondEpsilon absorbs float noise so a value produced by ParseTime formats
// back to the same string.
const secondEpsilon = 1e-6

// FormatTime renders minutes as HH:MM:SS, or MM:SS when includeHours is
// false. Seconds are the fractional minute truncated to whole seconds; a
// value within 1e-6 s below a whole second counts as that second, so float
// noise from arithmetic or ParseTime does not drop a second.
// Without hours the minutes field carries every whole minute (e.g. 80
// minutes renders as "80:00"). Negative and NaN inputs render as zero.
func FormatTime(minutes float64, includeHours bool) string {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes < 0 {
		minutes = 0
	}
	totalSeconds := int64(math.Floor(minutes*secondsPerMinute + secondEpsilon))
	totalMinutes := totalSeconds / secondsPerMinute
	secs := totalSeconds % secondsPerMinute

	if !includeHours {
		return fmt.Sprintf("%02d:%02d", totalMinutes, secs)
	}
	return fmt.Sprintf("%02d:%02d:%02d", totalMinutes/minutesPerHour, totalMinutes%minutesPerHour, secs)
}

// ParseTime reads a string produced by FormatTime back into minutes.
// Both "HH:MM:SS" and "MM:SS" are accepted.
func ParseTime(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrTimeFormat, s)
	}

	nums := make([]int64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrTimeFormat, s)
		}
		nums[i] = n
	}

	var hours, mins, secs int64
	if len(nums) == 3 {
		hours, mins, secs = nums[0], nums[1], nums[2]
		if mins >= minutesPerHour {
			return 0, fmt.Errorf("%w: minutes out of range in %q", ErrTimeFormat, s)
		}
	} else {
		mins, secs = nums[0], nums[1]
	}
	if secs >= secondsPerMinute {
		return 0, fmt.Errorf("%w: seconds out of range in %q", ErrTimeFormat, s)
	}

	return float64(hours*minutesPerHour+mins) + float64(secs)/secondsPerMinute, nil
}
