package report

import (
	"strconv"
	"strings"
	"time"
)

func formatClock(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}

func formatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
