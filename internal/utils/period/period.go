// Package period resolves the named reporting ranges used by list, dashboard and
// report endpoints into concrete date bounds.
package period

import (
	"time"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
)

// Range is a named reporting window.
type Range string

const (
	All       Range = "all"
	ThisMonth Range = "thisMonth"
	LastMonth Range = "lastMonth"
	ThisYear  Range = "thisYear"
	LastYear  Range = "lastYear"
	Custom    Range = "custom"
)

// Bounds is an inclusive date window. A nil side is unbounded.
type Bounds struct {
	From *time.Time
	To   *time.Time
}

// Resolve turns r into bounds relative to now. Custom ranges take from and to,
// with to extended to the end of its day. An empty range means All.
func Resolve(r Range, from, to *time.Time, now time.Time) (Bounds, error) {
	now = now.UTC()
	year, month, _ := now.Date()

	switch r {
	case "", All:
		return Bounds{}, nil
	case ThisMonth:
		return bounds(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), now), nil
	case LastMonth:
		start := time.Date(year, month-1, 1, 0, 0, 0, 0, time.UTC)
		return bounds(start, endOfDay(time.Date(year, month, 0, 0, 0, 0, 0, time.UTC))), nil
	case ThisYear:
		return bounds(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), now), nil
	case LastYear:
		start := time.Date(year-1, time.January, 1, 0, 0, 0, 0, time.UTC)
		return bounds(start, endOfDay(time.Date(year-1, time.December, 31, 0, 0, 0, 0, time.UTC))), nil
	case Custom:
		if from == nil || to == nil {
			return Bounds{}, apperrors.NewFieldError(apperrors.ErrValidation, "range", "custom range requires from and to")
		}
		start := startOfDay(from.UTC())
		end := endOfDay(to.UTC())
		if end.Before(start) {
			return Bounds{}, apperrors.NewFieldError(apperrors.ErrValidation, "to", "must not be before from")
		}
		return bounds(start, end), nil
	default:
		return Bounds{}, apperrors.NewFieldError(apperrors.ErrValidation, "range", "unknown range "+string(r))
	}
}

func bounds(from, to time.Time) Bounds {
	return Bounds{From: &from, To: &to}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Nanosecond)
}
