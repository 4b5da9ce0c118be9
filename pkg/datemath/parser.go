package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^em (\d+) (dias?|semanas?|m[eê]s|meses)$`)
	nextDayRe    = regexp.MustCompile(`^pr[oó]xim[oa] (\S+?)(?:-feira)?$`)
)

// Parser resolves Brazilian date strings and does calendar arithmetic in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Sao_Paulo"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts an absolute (dd/mm/yyyy, ISO) or relative Portuguese date string
// ("hoje", "amanhã", "em 3 dias", "próxima sexta") to the start of that day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	switch expr {
	case "hoje", "":
		return p.StartOfDay(baseTime), nil
	case "amanhã", "amanha":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "ontem":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if t, ok := p.ParseBR(expr); ok {
		return t, nil
	}

	if strings.HasPrefix(expr, "em ") {
		return p.parseInDuration(expr, baseTime)
	}

	if strings.HasPrefix(expr, "próxim") || strings.HasPrefix(expr, "proxim") {
		return p.parseNextWeekday(expr, baseTime)
	}

	return baseTime, fmt.Errorf("unrecognized date expression: %q", expr)
}

// ParseBR parses an absolute date. Impossible calendar dates (31/02) are rejected.
func (p *Parser) ParseBR(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range absoluteLayouts {
		t, err := time.ParseInLocation(layout, s, p.location)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseInDuration handles patterns like "em 3 dias", "em 2 semanas", "em 1 mês".
func (p *Parser) parseInDuration(expr string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", expr)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "dia"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "semana"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "próxima segunda", "proxima sexta-feira".
func (p *Parser) parseNextWeekday(expr string, baseTime time.Time) (time.Time, error) {
	matches := nextDayRe.FindStringSubmatch(expr)
	if len(matches) != 2 {
		return baseTime, fmt.Errorf("invalid weekday expression: %q", expr)
	}

	targetWeekday, ok := weekdaysPT[matches[1]]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", matches[1])
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
