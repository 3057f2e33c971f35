package stats

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts tried before falling back to the D/M/YYYY pattern. The calendar
// webhook usually hands back ISO timestamps; the spreadsheet columns use the
// localized "16/12/2025, 5:00 p.m." form.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var (
	dmyPattern  = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)
	timePattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*([ap]\.?m\.?)?`)
)

// ParseFecha converts a date string from either convention into a time in
// loc. The boolean is false when nothing parseable was found; callers treat
// that as "no date" and keep the record out of the calendar buckets.
func ParseFecha(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}

	m := dmyPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	hour, minute := 0, 0
	if tm := timePattern.FindStringSubmatch(s); tm != nil {
		hour, _ = strconv.Atoi(tm[1])
		minute, _ = strconv.Atoi(tm[2])
		period := strings.ToLower(tm[3])
		if strings.HasPrefix(period, "p") && hour < 12 {
			hour += 12
		} else if strings.HasPrefix(period, "a") && hour == 12 {
			hour = 0
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc), true
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday of t's week at local midnight. Sunday counts
// as the last day of the week, not the first.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	offset := int(d.Weekday()) - 1
	if offset < 0 {
		offset = 6
	}
	return d.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first day of t's month at local midnight.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether a and b fall on the same local calendar day.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsInWeek reports whether t falls inside the Monday-to-Friday window that
// starts at weekStart. Weekend appointments deliberately do not count toward
// "this week": the salon tracks workdays only.
func IsInWeek(t, weekStart time.Time) bool {
	return !t.Before(weekStart) && t.Before(weekStart.AddDate(0, 0, 5))
}

// IsInMonth reports whether t shares monthStart's local month and year.
func IsInMonth(t, monthStart time.Time) bool {
	return t.Year() == monthStart.Year() && t.Month() == monthStart.Month()
}
