package record

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// dateLayouts maps supported locales to their short numeric date layout.
//
//nolint:gochecknoglobals // Static lookup table.
var dateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "2/1/2006"},
	{language.Italian, "2/1/2006"},
	{language.Dutch, "2-1-2006"},
	{language.BrazilianPortuguese, "02/01/2006"},
	{language.Japanese, "2006/1/2"},
	{language.Chinese, "2006/1/2"},
	{language.Korean, "2006. 1. 2."},
	{language.Swedish, "2006-01-02"},
}

// inputLayouts are the timestamp shapes accepted from the backend, tried in order.
//
//nolint:gochecknoglobals // Static lookup table.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

//nolint:gochecknoglobals // Built once from dateLayouts.
var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLayouts))
	for i, l := range dateLayouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// DateFormatter renders backend timestamps as locale-specific short dates.
type DateFormatter struct {
	tag      language.Tag
	layout   string
	location *time.Location
	printer  *message.Printer
}

// NewDateFormatter returns a formatter for locale (a BCP 47 tag such as
// "en-US" or "de"). Unknown or malformed locales fall back to en-US.
func NewDateFormatter(locale string) DateFormatter {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		tag = language.AmericanEnglish
	}
	_, idx, confidence := dateMatcher.Match(tag)
	if confidence == language.No {
		idx = 0
	}
	return DateFormatter{
		tag:      dateLayouts[idx].tag,
		layout:   dateLayouts[idx].layout,
		location: time.Local,
		printer:  message.NewPrinter(dateLayouts[idx].tag),
	}
}

// WithLocation returns a copy of f that converts timestamps into loc before formatting.
func (f DateFormatter) WithLocation(loc *time.Location) DateFormatter {
	f.location = loc
	return f
}

// Tag returns the matched locale.
func (f DateFormatter) Tag() language.Tag {
	return f.tag
}

// Format renders v as a date. Strings in a known timestamp shape and numbers
// (milliseconds since the Unix epoch) are converted; anything else is
// returned formatted verbatim.
func (f DateFormatter) Format(v any) string {
	t, ok := parseTime(v)
	if !ok {
		return Format(v)
	}
	if f.layout == "" {
		f = NewDateFormatter("")
	}
	loc := f.location
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(f.layout)
}

// Count renders n with the locale's digit grouping.
func (f DateFormatter) Count(n int) string {
	if f.printer == nil {
		f = NewDateFormatter("")
	}
	return f.printer.Sprintf("%d", n)
}

func parseTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case string:
		s := strings.TrimSpace(val)
		for _, layout := range inputLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	case float64:
		return time.UnixMilli(int64(val)), true
	}
	return time.Time{}, false
}
