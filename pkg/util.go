package pkg

import (
	"os"
	"time"
	"unsafe"
)

// DateLayout is the calendar date format used in paths and query params.
const DateLayout = "2006-01-02"

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if (isDir && stat.IsDir()) || (!isDir && !stat.IsDir()) {
		return true, nil
	}
	return false, err
}

// ParseDate parses a YYYY-MM-DD date in the given location.
// An empty value yields today's date in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return StartOfDay(time.Now(), loc), nil
	}
	return time.ParseInLocation(DateLayout, value, loc)
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
