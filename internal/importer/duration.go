package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	durationHours   = regexp.MustCompile(`(\d+)H`)
	durationMinutes = regexp.MustCompile(`(\d+)M`)
)

// ParseISODurationMinutes converts an ISO 8601 duration such as PT1H30M to
// total minutes. Unparseable or empty input yields zero.
func ParseISODurationMinutes(duration string) int {
	duration = strings.TrimSpace(duration)
	if !strings.HasPrefix(duration, "PT") {
		return 0
	}
	duration = duration[2:]

	total := 0
	if m := durationHours.FindStringSubmatch(duration); m != nil {
		if hours, err := strconv.Atoi(m[1]); err == nil {
			total += hours * 60
		}
	}
	if m := durationMinutes.FindStringSubmatch(duration); m != nil {
		if minutes, err := strconv.Atoi(m[1]); err == nil {
			total += minutes
		}
	}
	return total
}

// HumanDuration renders minutes as "1 hour 30 minutes". Zero yields an
// empty string.
func HumanDuration(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	hours := minutes / 60
	minutes = minutes % 60

	parts := make([]string, 0, 2)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", hours, plural("hour", hours)))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", minutes, plural("minute", minutes)))
	}
	return strings.Join(parts, " ")
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
