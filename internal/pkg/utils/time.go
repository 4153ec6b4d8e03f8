package utils

import "time"

const DateLayout = "2006-01-02"

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

func FormatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(DateLayout)
}
