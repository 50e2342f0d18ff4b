package record_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/octofit/octofit/internal/record"
)

func TestDateFormatter_Locales(t *testing.T) {
	const ts = "2024-01-15T10:30:00Z"

	tests := []struct {
		locale string
		want   string
	}{
		{"en-US", "1/15/2024"},
		{"en_US", "1/15/2024"},
		{"en-GB", "15/01/2024"},
		{"de-DE", "15.1.2024"},
		{"fr", "15/01/2024"},
		{"ja-JP", "2024/1/15"},
		{"", "1/15/2024"},
		{"not a locale!", "1/15/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			f := record.NewDateFormatter(tt.locale).WithLocation(time.UTC)
			assert.Equal(t, tt.want, f.Format(ts))
		})
	}
}

func TestDateFormatter_InputShapes(t *testing.T) {
	f := record.NewDateFormatter("en-US").WithLocation(time.UTC)

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"rfc3339 offset", "2024-03-05T23:30:00-02:00", "3/6/2024"},
		{"fractional seconds", "2024-03-05T08:00:00.123456Z", "3/5/2024"},
		{"naive datetime", "2024-03-05T08:00:00", "3/5/2024"},
		{"space separated", "2024-03-05 08:00:00", "3/5/2024"},
		{"date only", "2024-03-05", "3/5/2024"},
		{"epoch millis", 1705314600000.0, "1/15/2024"},
		{"unparseable", "yesterday", "yesterday"},
		{"bool verbatim", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.v))
		})
	}
}

func TestDateFormatter_ZeroValue(t *testing.T) {
	var f record.DateFormatter
	assert.NotEmpty(t, f.Format("2024-01-15"))
	assert.Equal(t, "1,234", f.Count(1234))
}

func TestDateFormatter_Tag(t *testing.T) {
	assert.Equal(t, language.BritishEnglish, record.NewDateFormatter("en-GB").Tag())
}

func TestDateFormatter_Count(t *testing.T) {
	f := record.NewDateFormatter("en-US")
	assert.Equal(t, "12,345", f.Count(12345))
	assert.Equal(t, "7", f.Count(7))
}
