package util

import "time"

// ISODateLayout is the wire format for day keys (YYYY-MM-DD).
const ISODateLayout = "2006-01-02"

// ISODate formats a time as a day key.
func ISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// Today returns the current local day key.
func Today() string {
	return ISODate(time.Now())
}

// ParseISODate parses a day key. The zero time is returned on failure.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODateLayout, s)
}
