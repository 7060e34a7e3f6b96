package period

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
)

type Mode string

const (
	Week   Mode = "week"
	Month  Mode = "month"
	All    Mode = "all"
	Custom Mode = "custom"
)

const (
	isoLayout = "2006-01-02"
	ruLayout  = "02.01.2006"
)

var ErrInvalidWindow = errors.New("invalid time window")

// Window is the active time range. Week, month and all windows are
// open-ended: they always end at the instant they are evaluated.
type Window struct {
	Mode  Mode
	Start time.Time
	End   time.Time
}

// Default is the window every new ledger starts with.
func Default() Window {
	return Window{Mode: Month}
}

func NewCustom(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() {
		return Window{}, errors.Wrap(ErrInvalidWindow, "custom window needs both dates")
	}
	w := Window{Mode: Custom, Start: start, End: end}
	from, to := w.Bounds(end)
	if from.After(to) {
		return Window{}, errors.Wrap(ErrInvalidWindow, "start is after end")
	}
	return w, nil
}

// Bounds returns the inclusive range of the window evaluated at current.
func (w Window) Bounds(current time.Time) (from, to time.Time) {
	switch w.Mode {
	case Custom:
		if w.Start.IsZero() || w.End.IsZero() {
			return time.Unix(0, 0).In(current.Location()), current
		}
		return now.With(w.Start).BeginningOfDay(), now.With(w.End).EndOfDay()
	case Week:
		cfg := &now.Config{WeekStartDay: time.Monday, TimeLocation: current.Location()}
		return cfg.With(current).BeginningOfWeek(), current
	case Month:
		return now.With(current).BeginningOfMonth(), current
	default:
		return time.Unix(0, 0).In(current.Location()), current
	}
}

func (w Window) Contains(t, current time.Time) bool {
	from, to := w.Bounds(current)
	return !t.Before(from) && !t.After(to)
}

func (w Window) String() string {
	if w.Mode == Custom {
		return fmt.Sprintf("%s..%s", w.Start.Format(isoLayout), w.End.Format(isoLayout))
	}
	if w.Mode == "" {
		return string(Month)
	}
	return string(w.Mode)
}

// Parse accepts week, month, all, YYYY-MM-DD..YYYY-MM-DD and
// dd.mm.yyyy-dd.mm.yyyy. An empty string means the default window.
func Parse(s string, loc *time.Location) (Window, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.ToLower(strings.TrimSpace(s))
	switch Mode(s) {
	case "":
		return Default(), nil
	case Week, Month, All:
		return Window{Mode: Mode(s)}, nil
	}

	if start, end, ok := strings.Cut(s, ".."); ok {
		return parseRange(start, end, isoLayout, loc)
	}
	if start, end, ok := strings.Cut(s, "-"); ok && strings.Contains(start, ".") {
		return parseRange(start, end, ruLayout, loc)
	}
	return Window{}, errors.Wrapf(ErrInvalidWindow, "unknown period %q", s)
}

// FromDates builds a window from optional custom dates in ISO layout, the
// way the dashboard query string carries them.
func FromDates(mode, start, end string, loc *time.Location) (Window, error) {
	if Mode(strings.ToLower(mode)) != Custom {
		return Parse(mode, loc)
	}
	return parseRange(start, end, isoLayout, loc)
}

func parseRange(start, end, layout string, loc *time.Location) (Window, error) {
	from, err := time.ParseInLocation(layout, strings.TrimSpace(start), loc)
	if err != nil {
		return Window{}, errors.Wrap(ErrInvalidWindow, err.Error())
	}
	to, err := time.ParseInLocation(layout, strings.TrimSpace(end), loc)
	if err != nil {
		return Window{}, errors.Wrap(ErrInvalidWindow, err.Error())
	}
	return NewCustom(from, to)
}

// MonthBounds returns the first and last instant of the calendar month that
// is monthsAgo months before current.
func MonthBounds(current time.Time, monthsAgo int) (from, to time.Time) {
	first := now.With(current).BeginningOfMonth().AddDate(0, -monthsAgo, 0)
	return first, now.With(first).EndOfMonth()
}
