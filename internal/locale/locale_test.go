package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   language.Tag
	}{
		{"", language.AmericanEnglish},
		{"en-US,en;q=0.9", language.AmericanEnglish},
		{"en-GB", language.BritishEnglish},
		{"de-DE,de;q=0.9,en;q=0.5", language.German},
		{"fr-CA", language.French},
		{"ja", language.Japanese},
		{"sw", language.AmericanEnglish},
		{"!!not a header", language.AmericanEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.header).Tag)
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 8, 19, 14, 5, 9, 0, time.UTC)

	us := Default()
	assert.Equal(t, "8/19/2024", us.Date(ts))
	assert.Equal(t, "2:05:09 PM", us.Time(ts))

	de := Match("de")
	assert.Equal(t, "19.8.2024", de.Date(ts))
	assert.Equal(t, "14:05:09", de.Time(ts))
}

func TestFormatIn(t *testing.T) {
	ts := time.Date(2024, 8, 19, 23, 30, 0, 0, time.UTC)
	loc := time.FixedZone("UTC+2", 2*60*60)

	f := Match("en-GB").In(loc)
	assert.Equal(t, "20/08/2024", f.Date(ts))
	assert.Equal(t, "01:30:00", f.Time(ts))
}
