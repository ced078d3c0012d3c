package codec

import (
	"time"

	"github.com/reoring/chartopts"
)

// TimeRFC3339 returns a Rule that encodes time.Time as a canonical UTC
// RFC3339 string, replacing the built-in offset-preserving format.
func TimeRFC3339() chartopts.Rule {
	return chartopts.RuleFor(func(e *chartopts.Encoder, t time.Time) error {
		return e.String(formatRFC3339Canonical(t))
	})
}

// TimeUnixMillis returns a Rule that encodes time.Time as milliseconds since
// the Unix epoch, the numeric form the time axis accepts.
func TimeUnixMillis() chartopts.Rule {
	return chartopts.RuleFor(func(e *chartopts.Encoder, t time.Time) error {
		return e.Number(float64(t.UnixMilli()))
	})
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
