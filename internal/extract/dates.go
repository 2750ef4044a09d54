package extract

import (
	"regexp"
	"time"
)

// dateLayouts are tried strictly in order; the first layout that fully parses
// the string wins.
var dateLayouts = []string{
	"02.01.2006",
	"2.1.2006",
	"02/01/2006",
	"2/1/2006",
	"2006-01-02",
}

// dateTokenRE locates date-shaped substrings in a transcript so the layout
// parser has concrete tokens to try.
var dateTokenRE, _ = regexp.Compile(`\d{1,2}\.\d{1,2}\.\d{4}|\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2}`)

// ParseDate parses a date-like string against the fixed layout list. The
// boolean is false when no layout matches; the caller keeps its own default,
// typically the current day.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FindDate scans the transcript, line by line, for the first token that
// parses under one of the accepted layouts. It returns the literal token, its
// parsed value, and whether anything was found.
func FindDate(raw string) (string, time.Time, bool) {
	if dateTokenRE == nil {
		return "", time.Time{}, false
	}
	for _, line := range Lines(raw) {
		for _, token := range dateTokenRE.FindAllString(line, -1) {
			if t, ok := ParseDate(token); ok {
				return token, t, true
			}
		}
	}
	return "", time.Time{}, false
}
