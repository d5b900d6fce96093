package model

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar days. Both bounds are stored
// as midnight UTC.
type DateRange struct {
	From time.Time `json:"start_date"`
	To   time.Time `json:"end_date"`
}

func NewDateRange(from, to time.Time) DateRange {
	return DateRange{From: Day(from), To: Day(to)}
}

func ParseDateRange(from, to string) (DateRange, error) {
	start, err := ParseDate(from)
	if err != nil {
		return DateRange{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := ParseDate(to)
	if err != nil {
		return DateRange{}, fmt.Errorf("end_date: %w", err)
	}
	return DateRange{From: start, To: end}, nil
}

func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// LastDays returns the range ending on the day of now and starting days
// earlier.
func LastDays(now time.Time, days int) DateRange {
	end := Day(now)
	return DateRange{From: end.AddDate(0, 0, -days), To: end}
}

func (r DateRange) Valid() bool {
	return !r.From.IsZero() && !r.To.IsZero() && !r.To.Before(r.From)
}

func (r DateRange) Contains(day time.Time) bool {
	day = Day(day)
	return !day.Before(r.From) && !day.After(r.To)
}

func (r DateRange) StartLabel() string {
	return r.From.Format(DateLayout)
}

func (r DateRange) EndLabel() string {
	return r.To.Format(DateLayout)
}

func (r DateRange) String() string {
	return r.StartLabel() + ".." + r.EndLabel()
}

// Day truncates t to its calendar date in t's own location and re-expresses
// it as midnight UTC so dates compare independently of zone.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
