package service

import (
	"strings"
	"time"
)

var isoLayouts = []string{
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParsePublished parses ISO-8601 date or date-time text. A trailing "Z" is
// read as "+00:00" and times without an offset are taken as UTC. RFC 1123
// dates, which most RSS feeds use, are not ISO-8601 and do not parse.
func ParsePublished(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if len(v) < len("2006-01-02") {
		return time.Time{}, false
	}
	if strings.HasSuffix(v, "Z") {
		v = strings.TrimSuffix(v, "Z") + "+00:00"
	}
	if len(v) > 10 && v[10] == ' ' {
		v = v[:10] + "T" + v[11:]
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
