// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatCalories formats a calorie count, e.g. 1245 -> "1,245 kcal".
func FormatCalories(n int) string {
	return FormatNumber(int64(n)) + " kcal"
}

// FormatCompact shortens large counts for chart axes and sparkline captions.
// e.g., 950 -> "950", 1250 -> "1.2K", 12000 -> "12K"
func FormatCompact(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 10_000:
		return fmt.Sprintf("%dK", n/1000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return strconv.Itoa(n)
	}
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatRemaining describes where today stands against the goal.
func FormatRemaining(goal, today int) string {
	if goal <= 0 {
		return "no goal set"
	}
	left := goal - today
	if left >= 0 {
		return FormatCalories(left) + " left"
	}
	return FormatCalories(-left) + " over"
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
