package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// referenceRe matches a Water.ie outage reference code embedded in free
	// text: three uppercase letters followed by eight digits,
	// e.g. "COR00098700" or "MAY00102991".
	referenceRe = regexp.MustCompile(`\b[A-Z]{3}\d{8}\b`)

	// lineBreakRe and divCloseRe convert the tags the feed uses for line
	// structure into newlines before the remaining markup is dropped.
	lineBreakRe = regexp.MustCompile(`(?i)<br\s*/?>`)
	divCloseRe  = regexp.MustCompile(`(?i)</div\s*>`)
	tagRe       = regexp.MustCompile(`<[^>]*>`)
)

// epochDisplayLayout renders feed timestamps in UTC, e.g. "2023-11-14 22:13:20 UTC".
const epochDisplayLayout = "2006-01-02 15:04:05 MST"

// NormalizeOutage converts a raw feature attribute map into an Outage.
// It is total: a field of unexpected type degrades to null or empty for
// that field, so one malformed record never fails a poll cycle.
func NormalizeOutage(rec RawRecord) Outage {
	desc := StripMarkup(stringField(rec, "DESCRIPTION"))

	ref := stringField(rec, "REFERENCENUM")
	if ref == "" {
		ref = ExtractReference(desc)
	}

	startRaw := floatField(rec, "STARTDATE")
	endRaw := floatField(rec, "ENDDATE")

	return Outage{
		ObjectID:    intField(rec, "OBJECTID"),
		GlobalID:    stringPtrField(rec, "GLOBALID"),
		Title:       stringField(rec, "TITLE"),
		Status:      stringField(rec, "STATUS"),
		Location:    stringField(rec, "LOCATION"),
		County:      stringField(rec, "COUNTY"),
		StartRaw:    startRaw,
		EndRaw:      endRaw,
		Start:       formatEpochPtr(startRaw),
		End:         formatEpochPtr(endRaw),
		Reference:   nilIfEmpty(ref),
		Description: desc,
	}
}

// StripMarkup reduces the feed's HTML-ish rich text to plain text lines.
// <br> variants and closing </div> tags become newlines, every remaining
// tag is removed, and each line is trimmed with blank lines dropped.
// Unmatched angle brackets pass through as literals; the function is
// idempotent.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}
	text := lineBreakRe.ReplaceAllString(s, "\n")
	text = divCloseRe.ReplaceAllString(text, "\n")
	text = tagRe.ReplaceAllString(text, "")

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return strings.Join(lines, "\n")
}

// ExtractReference returns the first outage reference code found in the
// cleaned description, or "" when none is present.
func ExtractReference(description string) string {
	return referenceRe.FindString(description)
}

// FormatEpoch converts a feed epoch to a human-readable UTC string.
// Values above 1e12 are taken as milliseconds, everything else as seconds,
// so "1700000000000" and "1700000000" render identically. The magnitude
// split is a heuristic: millisecond epochs before 2001-09-09 read as
// seconds.
func FormatEpoch(v float64) string {
	if v > 1e12 {
		v /= 1000
	}
	sec := int64(v)
	nsec := int64((v - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC().Format(epochDisplayLayout)
}

func formatEpochPtr(v *float64) *string {
	if v == nil {
		return nil
	}
	s := FormatEpoch(*v)
	return &s
}

// stringField returns the record's value for key when it is a string, "" otherwise.
func stringField(rec RawRecord, key string) string {
	s, _ := rec[key].(string)
	return s
}

// stringPtrField returns the record's value for key when it is a string, nil otherwise.
func stringPtrField(rec RawRecord, key string) *string {
	if s, ok := rec[key].(string); ok {
		return &s
	}
	return nil
}

// floatField coerces the record's value for key to a float64. JSON numbers,
// integer kinds, and numeric strings are accepted; NaN, infinities, and
// anything else yield nil.
func floatField(rec RawRecord, key string) *float64 {
	var f float64
	switch v := rec[key].(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// intField coerces the record's value for key to an int64, nil when absent
// or non-numeric.
func intField(rec RawRecord, key string) *int64 {
	f := floatField(rec, key)
	if f == nil {
		return nil
	}
	n := int64(*f)
	return &n
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
