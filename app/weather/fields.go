// Package weather turns a forecast feed item into a short human summary.
package weather

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fields maps a normalized field name to its raw value. A nil value means the
// segment carried no ": " delimiter.
type Fields map[string]*string

// Lookup returns the raw value for key. Missing keys and nil values are both absent.
func (f Fields) Lookup(key string) (string, bool) {
	value, ok := f[key]
	if !ok || value == nil {
		return "", false
	}
	return *value, true
}

// Extractor builds Fields from a forecast item's title and content.
type Extractor interface {
	Extract(titleLine, contentLine string) Fields
}

// SplitExtractor splits the content on commas and each segment on its first colon.
type SplitExtractor struct{}

var _ Extractor = SplitExtractor{}

func (SplitExtractor) Extract(titleLine, contentLine string) Fields {
	return ExtractFields(titleLine, contentLine)
}

// ExtractFields keeps only the first comma segment of titleLine (the rest is the
// location name) and prepends it to the trimmed comma segments of contentLine.
// Duplicate keys are last-write-wins.
func ExtractFields(titleLine, contentLine string) Fields {
	title, _, _ := strings.Cut(titleLine, ",")

	segments := []string{title}
	for _, segment := range strings.Split(contentLine, ",") {
		segments = append(segments, strings.TrimSpace(segment))
	}

	lower := cases.Lower(language.Und)
	fields := make(Fields, len(segments))
	for _, segment := range segments {
		name, _, _ := strings.Cut(segment, ":")
		key := lower.String(strings.ReplaceAll(name, " ", "_"))
		if key == "" {
			continue
		}

		if _, value, found := strings.Cut(segment, ": "); found {
			fields[key] = &value
		} else {
			fields[key] = nil
		}
	}

	return fields
}
