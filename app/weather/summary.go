package weather

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lysyi3m/rss-readme/app/feed"
	"github.com/lysyi3m/rss-readme/app/metrics"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrNoForecast = errors.New("forecast feed has no items")

// Report is the resolved weather for a single run.
type Report struct {
	TemperatureCelsius float64
	Descriptor         string // lowercased "today" or "tonight" text, may be empty
	Humidity           string // raw value such as "70%", may be empty
	SunPhrase          string
}

// Resolve derives a Report from extracted fields. Missing optional fields are
// logged and left empty.
func Resolve(fields Fields) Report {
	report := Report{
		TemperatureCelsius: ResolveTemperature(fields),
		SunPhrase:          FormatSunPhrase(fields),
	}

	if descriptor, ok := descriptorField(fields); ok {
		report.Descriptor = cases.Lower(language.Und).String(descriptor)
	} else {
		slog.Warn("Forecast has no today or tonight field, omitting descriptor")
		metrics.WeatherFieldsMissingTotal.WithLabelValues("descriptor").Inc()
	}

	if humidity, ok := fields.Lookup("humidity"); ok {
		report.Humidity = humidity
	} else {
		slog.Warn("Forecast has no humidity field, omitting humidity")
		metrics.WeatherFieldsMissingTotal.WithLabelValues("humidity").Inc()
	}

	return report
}

// ComposeSummary renders the weather sentence for an already resolved temperature and sun phrase.
func ComposeSummary(fields Fields, temperature float64, sunPhrase string) string {
	report := Resolve(fields)
	report.TemperatureCelsius = temperature
	report.SunPhrase = sunPhrase
	return report.Summary()
}

// Summary renders the report as an HTML fragment for the Markdown document.
func (r Report) Summary() string {
	var b strings.Builder

	b.WriteString("Currently, the weather is <b>")
	b.WriteString(FormatTemperature(r.TemperatureCelsius))
	b.WriteString("°C")
	if r.Descriptor != "" {
		b.WriteString(", ")
		b.WriteString(r.Descriptor)
	}
	b.WriteString("</b>")

	if r.Humidity != "" {
		fmt.Fprintf(&b, ", %s humidity", r.Humidity)
	}

	if r.SunPhrase != "" {
		b.WriteString(" \n")
		b.WriteString(r.SunPhrase)
	}

	return b.String()
}

// FromItems resolves the first forecast item, which is always today's forecast.
func FromItems(items []feed.Item, extractor Extractor) (Report, error) {
	if len(items) == 0 {
		return Report{}, ErrNoForecast
	}
	if extractor == nil {
		extractor = SplitExtractor{}
	}

	first := items[0]
	return Resolve(extractor.Extract(first.Title, first.Content)), nil
}

func descriptorField(fields Fields) (string, bool) {
	if today, ok := fields.Lookup("today"); ok {
		return today, true
	}
	return fields.Lookup("tonight")
}
