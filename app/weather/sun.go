package weather

import (
	"fmt"
	"strings"
)

// FormatSunPhrase describes sunrise and sunset. It returns "" when neither is known.
func FormatSunPhrase(fields Fields) string {
	sunrise, hasSunrise := timeField(fields, "sunrise")
	sunset, hasSunset := timeField(fields, "sunset")

	switch {
	case hasSunrise && hasSunset:
		return fmt.Sprintf("Today, the sun rises at %s and sets at %s.", sunrise, sunset)
	case hasSunrise:
		return fmt.Sprintf("Today, the sun rises at %s.", sunrise)
	case hasSunset:
		return fmt.Sprintf("Today, the sun sets at %s.", sunset)
	default:
		return ""
	}
}

// timeField drops the trailing unit or zone, "06:12 +07" becomes "06:12".
func timeField(fields Fields, key string) (string, bool) {
	raw, ok := fields.Lookup(key)
	if !ok {
		return "", false
	}
	value, _, _ := strings.Cut(raw, " ")
	return value, true
}
