package datemath

import "time"

const secondsPerDay = 24 * 60 * 60

// civilDays returns the number of calendar days from a to b, both taken as civil
// dates in the parser's timezone. Independent of DST shifts and of the
// ~292 year limit of time.Duration.
func (p *Parser) civilDays(a, b time.Time) int {
	a, b = a.In(p.location), b.In(p.location)
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int((ub.Unix() - ua.Unix()) / secondsPerDay)
}

// CalendarSpanInclusive counts the calendar days from start to end, both included.
// 01/01 to 10/01 is 10. Returns a value < 1 when end is before start.
func (p *Parser) CalendarSpanInclusive(start, end time.Time) int {
	return p.civilDays(start, end) + 1
}

// BusinessDaysBetween counts Monday-Friday days between from and to.
// When to is after from it counts weekdays d with from < d <= to; when to is before
// from the result is the negated count of weekdays d with to < d <= from.
// Same day gives 0. No holiday calendar is applied.
func (p *Parser) BusinessDaysBetween(from, to time.Time) int {
	days := p.civilDays(from, to)
	if days == 0 {
		return 0
	}

	sign := 1
	start := p.StartOfDay(from)
	if days < 0 {
		sign = -1
		days = -days
		start = p.StartOfDay(to)
	}

	count := (days / 7) * 5
	wd := start.Weekday()
	for i := 0; i < days%7; i++ {
		wd = (wd + 1) % 7
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return sign * count
}

// AddBusinessDays moves n weekdays forward (or backward for negative n) from t,
// returning the start of the resulting day. n == 0 returns the start of t's day.
func (p *Parser) AddBusinessDays(t time.Time, n int) time.Time {
	day := p.StartOfDay(t)
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for n > 0 {
		day = day.AddDate(0, 0, step)
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n--
		}
	}
	return day
}

// IsBusinessDay reports whether t falls on Monday-Friday in the parser's timezone.
func (p *Parser) IsBusinessDay(t time.Time) bool {
	wd := t.In(p.location).Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
