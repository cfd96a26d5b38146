package timezone

import (
	"regexp"
	"strconv"
	"time"
)

// Timezones são armazenados no formato fixo GMT±HH:MM.

const DefaultTimezone = "GMT+00:00"

var gmtPattern = regexp.MustCompile(`^GMT([+-])(\d{2}):(\d{2})$`)

func IsValid(tz string) bool {
	return gmtPattern.MatchString(tz)
}

func Location(tz string) *time.Location {
	m := gmtPattern.FindStringSubmatch(tz)
	if m == nil {
		return time.UTC
	}

	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])

	offset := hours*3600 + minutes*60
	if m[1] == "-" {
		offset = -offset
	}

	return time.FixedZone(tz, offset)
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
