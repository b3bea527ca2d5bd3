package locale

import (
	"strings"
	"time"
)

// TimeFormatter renders message timestamps as hour and two-digit minute,
// on a 12- or 24-hour clock depending on the language.
type TimeFormatter struct {
	twelveHour bool
	am, pm     string
	prefix     bool   // day period goes before the time, without a space
	digits     string // ten replacement digits, empty for ASCII
}

var timeFormatters = map[string]TimeFormatter{
	"en": {twelveHour: true, am: "AM", pm: "PM"},
	"hi": {twelveHour: true, am: "am", pm: "pm"},
	"ar": {twelveHour: true, am: "ص", pm: "م", digits: "٠١٢٣٤٥٦٧٨٩"},
	"zh": {twelveHour: true, am: "上午", pm: "下午", prefix: true},
}

// TimeFormatterFor returns the clock pattern for a language. Languages that
// conventionally use a 12-hour clock get their own day-period markers; the
// rest use a 24-hour clock.
func TimeFormatterFor(code string) TimeFormatter {
	return timeFormatters[code]
}

// Format renders t in the local time zone of t.
func (f TimeFormatter) Format(t time.Time) string {
	if !f.twelveHour {
		return f.localizeDigits(t.Format("15:04"))
	}

	period := f.am
	if t.Hour() >= 12 {
		period = f.pm
	}
	clock := f.localizeDigits(t.Format("3:04"))
	if f.prefix {
		return period + clock
	}
	return clock + " " + period
}

func (f TimeFormatter) localizeDigits(s string) string {
	if f.digits == "" {
		return s
	}
	digits := []rune(f.digits)
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return digits[r-'0']
		}
		return r
	}, s)
}
