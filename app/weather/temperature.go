package weather

import (
	"math"
	"strconv"
	"strings"
)

// ResolveTemperature derives the display temperature in Celsius. The mean is used
// when both readings are positive, otherwise max is preferred over min.
func ResolveTemperature(fields Fields) float64 {
	minimum := temperatureField(fields, "minimum_temperature")
	maximum := temperatureField(fields, "maximum_temperature")

	switch {
	case minimum > 0 && maximum > 0:
		return (minimum + maximum) / 2
	case maximum > 0:
		return maximum
	default:
		return minimum
	}
}

func temperatureField(fields Fields, key string) float64 {
	raw, ok := fields.Lookup(key)
	if !ok {
		return 0
	}
	return parseTemperature(raw)
}

// parseTemperature reads "24°C (75°F)" as 24. Unparseable input reads as 0.
func parseTemperature(raw string) float64 {
	token, _, _ := strings.Cut(raw, " ")
	token, _, _ = strings.Cut(token, "°")

	token = strings.TrimSpace(token)
	if token == "" {
		return 0
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// FormatTemperature prints the shortest decimal form: 27.5, 31, 0.
func FormatTemperature(celsius float64) string {
	return strconv.FormatFloat(celsius, 'f', -1, 64)
}
