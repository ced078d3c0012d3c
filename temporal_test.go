package chartopts_test

import (
	"testing"
	"time"

	chartopts "github.com/reoring/chartopts"
)

func TestTemporal_WireFormats(t *testing.T) {
	loc := time.FixedZone("", 2*3600)
	got := marshal(t, []any{
		chartopts.Date{Year: 2024, Month: time.March, Day: 5},
		chartopts.NewDateTime(2024, time.March, 5, 14, 30, 0, 250_000_000),
		time.Date(2024, time.March, 5, 14, 30, 0, 0, loc),
		time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC),
	})
	want := `["2024-03-05","2024-03-05T14:30:00.250","2024-03-05T14:30:00.000+02:00","2024-03-05T14:30:00.000+00:00"]`
	if got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestTemporal_RoundTrip(t *testing.T) {
	d := chartopts.Date{Year: 1999, Month: time.December, Day: 31}
	back, err := chartopts.ParseDate(d.String())
	if err != nil || back != d {
		t.Fatalf("date round trip: %v %v", back, err)
	}

	dt := chartopts.NewDateTime(2001, time.February, 3, 4, 5, 6, 7_000_000)
	back2, err := chartopts.ParseDateTime(dt.String())
	if err != nil || !back2.Time().Equal(dt.Time()) {
		t.Fatalf("date-time round trip: %v %v", back2, err)
	}

	ts := time.Date(2020, time.June, 1, 8, 0, 0, 123_000_000, time.FixedZone("", -5*3600))
	parsed, err := time.Parse(chartopts.OffsetDateTimeLayout, chartopts.FormatOffsetDateTime(ts))
	if err != nil || !parsed.Equal(ts) {
		t.Fatalf("offset round trip: %v %v", parsed, err)
	}
	if _, off := parsed.Zone(); off != -5*3600 {
		t.Fatalf("offset not preserved: %d", off)
	}
}

func TestTemporal_ZeroValuesUnset(t *testing.T) {
	type axis struct {
		Min  chartopts.Date
		Max  chartopts.DateTime
		Name string `json:"name,omitempty"`
	}
	if got := marshal(t, axis{}); got != `{}` {
		t.Fatalf("unexpected: %s", got)
	}
}

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	d := chartopts.DateOf(time.Date(2024, time.January, 2, 23, 59, 0, 0, time.UTC))
	if d.String() != "2024-01-02" {
		t.Fatalf("unexpected: %s", d)
	}
}
