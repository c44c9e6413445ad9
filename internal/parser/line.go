package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// lineRe matches one Victory.log line:
// [2016.03.14-20.15.07:123][ 42]LogLevel: ActivateLevel ...
var lineRe = regexp.MustCompile(
	`^\[(\d{4})\.(\d\d)\.(\d\d)-(\d\d)\.(\d\d)\.(\d\d):(\d\d\d)\]\[[\s\d]+\](.*)$`,
)

// Line is a timestamped log line with its message text.
type Line struct {
	// Time is the line's timestamp in UTC, truncated to whole seconds.
	Time time.Time
	// Millis is the raw millisecond field. It is not folded into Time.
	Millis  int
	Message string
}

// ParseLine extracts the timestamp and message from a raw log line. It
// reports false for anything that does not carry the bracketed timestamp and
// sequence fields, including blank lines and continuation lines.
func ParseLine(raw string) (Line, bool) {
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")

	m := lineRe.FindStringSubmatch(raw)
	if m == nil {
		return Line{}, false
	}

	var f [5]int
	for i := range f {
		f[i], _ = strconv.Atoi(m[i+1])
	}
	year, month, day, hour, minute := f[0], f[1], f[2], f[3], f[4]

	// Seconds and milliseconds are read together as "SS.mmm" and the
	// fraction dropped.
	secs, err := strconv.ParseFloat(m[6]+"."+m[7], 64)
	if err != nil {
		return Line{}, false
	}
	sec := int(secs)
	millis, _ := strconv.Atoi(m[7])

	ts := time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.UTC)
	if !validFields(ts, year, month, day, hour, minute, sec) {
		return Line{}, false
	}

	return Line{Time: ts, Millis: millis, Message: m[8]}, true
}

// validFields rejects stamps like month 13 or 25:00 that time.Date would
// otherwise normalize into a different instant.
func validFields(ts time.Time, year, month, day, hour, minute, sec int) bool {
	return ts.Year() == year &&
		int(ts.Month()) == month &&
		ts.Day() == day &&
		ts.Hour() == hour &&
		ts.Minute() == minute &&
		ts.Second() == sec
}
