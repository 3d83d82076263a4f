// Package locale picks date and time layouts for a visitor's preferred
// language.
package locale

import (
	"time"

	"golang.org/x/text/language"
)

// Format renders timestamps the way a given locale expects.
type Format struct {
	Tag        language.Tag
	DateLayout string
	TimeLayout string
	Location   *time.Location
}

var formats = []Format{
	{Tag: language.AmericanEnglish, DateLayout: "1/2/2006", TimeLayout: "3:04:05 PM"},
	{Tag: language.BritishEnglish, DateLayout: "02/01/2006", TimeLayout: "15:04:05"},
	{Tag: language.German, DateLayout: "2.1.2006", TimeLayout: "15:04:05"},
	{Tag: language.French, DateLayout: "02/01/2006", TimeLayout: "15:04:05"},
	{Tag: language.Japanese, DateLayout: "2006/1/2", TimeLayout: "15:04:05"},
}

var matcher = language.NewMatcher(supported())

func supported() []language.Tag {
	tags := make([]language.Tag, len(formats))
	for i, f := range formats {
		tags[i] = f.Tag
	}
	return tags
}

// Default is used when no preference can be matched.
func Default() Format {
	return formats[0]
}

// Match returns the best format for an Accept-Language header value.
func Match(acceptLanguage string) Format {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, _ := matcher.Match(tags...)
	return formats[idx]
}

// In returns a copy of f that renders times in loc.
func (f Format) In(loc *time.Location) Format {
	f.Location = loc
	return f
}

func (f Format) localize(t time.Time) time.Time {
	if f.Location == nil {
		return t.UTC()
	}
	return t.In(f.Location)
}

// Date formats the calendar date of t.
func (f Format) Date(t time.Time) string {
	return f.localize(t).Format(f.DateLayout)
}

// Time formats the wall-clock time of t.
func (f Format) Time(t time.Time) string {
	return f.localize(t).Format(f.TimeLayout)
}
