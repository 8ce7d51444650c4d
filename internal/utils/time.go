package utils

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "03:04:05 PM"
)

// DateTimeFromTimestamp splits a stored timestamp into display strings.
// The date is the UTC calendar date; the clock is 12-hour wall time in loc.
func DateTimeFromTimestamp(ts *time.Time, loc *time.Location) (string, string) {
	if ts == nil {
		return "", ""
	}
	if loc == nil {
		loc = time.Local
	}
	return ts.UTC().Format(dateLayout), ts.In(loc).Format(clockLayout)
}

// SafeTime decodes the timestamp representations different stores hand back.
func SafeTime(v interface{}) *time.Time {
	var t time.Time
	switch val := v.(type) {
	case time.Time:
		t = val
	case *time.Time:
		if val == nil {
			return nil
		}
		t = *val
	case primitive.DateTime:
		t = val.Time()
	case primitive.Timestamp:
		t = time.Unix(int64(val.T), 0)
	case map[string]interface{}:
		secs, ok := firstPresent(val, "_seconds", "seconds")
		if !ok {
			return nil
		}
		nanos, _ := firstPresent(val, "_nanoseconds", "nanoseconds")
		t = time.Unix(int64(SafeFloat64(secs)), int64(SafeFloat64(nanos)))
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, val)
		if err != nil {
			return nil
		}
		t = parsed
	default:
		return nil
	}
	return &t
}

func firstPresent(m map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}
