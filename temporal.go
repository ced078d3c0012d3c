package chartopts

import (
	"time"
)

// Wire layouts understood by the ECharts time axis.
const (
	DateLayout           = "2006-01-02"
	DateTimeLayout       = "2006-01-02T15:04:05.000"
	OffsetDateTimeLayout = "2006-01-02T15:04:05.000-07:00"
)

// Date is a calendar date without a time of day. The zero value is unset.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a DateLayout string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool { return d == Date{} }

// String formats d using DateLayout.
func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

// DateTime is a wall-clock date and time without an offset; the rendering
// side interprets it in its local zone. The zero value is unset.
type DateTime struct {
	wall time.Time
}

// NewDateTime returns the given wall-clock date and time.
func NewDateTime(year int, month time.Month, day, hour, min, sec, nsec int) DateTime {
	return DateTime{wall: time.Date(year, month, day, hour, min, sec, nsec, time.UTC)}
}

// DateTimeOf drops the location of t, keeping its wall clock reading.
func DateTimeOf(t time.Time) DateTime {
	return NewDateTime(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// ParseDateTime parses a DateTimeLayout string; fractional seconds are optional.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{wall: t}, nil
}

func (dt DateTime) IsZero() bool { return dt.wall.IsZero() }

// Time returns the wall clock reading as a UTC time.
func (dt DateTime) Time() time.Time { return dt.wall }

// String formats dt using DateTimeLayout.
func (dt DateTime) String() string { return dt.wall.Format(DateTimeLayout) }

// FormatOffsetDateTime formats t using OffsetDateTimeLayout, keeping its offset.
func FormatOffsetDateTime(t time.Time) string { return t.Format(OffsetDateTimeLayout) }

func encodeDate(e *Encoder, d Date) error { return e.String(d.String()) }

func encodeDateTime(e *Encoder, dt DateTime) error { return e.String(dt.String()) }

func encodeOffsetDateTime(e *Encoder, t time.Time) error {
	return e.String(FormatOffsetDateTime(t))
}
