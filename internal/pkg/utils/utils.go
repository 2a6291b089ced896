package utils

import (
	"fmt"
	"strconv"
)

const minutesPerDay = 24 * 60

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatClock formats minutes since midnight as a wall clock, wrapping past midnight
// and before it.
// Example: 1505 -> "01:05", -20 -> "23:40"
func FormatClock(minutesOfDay int) string {
	m := ((minutesOfDay % minutesPerDay) + minutesPerDay) % minutesPerDay

	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FormatUSD formats whole dollars with thousand separators.
// Example: 1234 -> "$1,234"
func FormatUSD(amount int64) string {
	if amount == 0 {
		return "$0"
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	var result []byte
	str := strconv.FormatInt(amount, 10)

	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		result = append([]byte{str[i]}, result...)
		count++
		if count%3 == 0 && i != 0 {
			result = append([]byte{','}, result...)
		}
	}

	if negative {
		return "-$" + string(result)
	}
	return "$" + string(result)
}
