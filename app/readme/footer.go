package readme

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/lysyi3m/rss-readme/app/feed"
)

const refreshDateLayout = "Monday 2 January at 15:04"

// FormatRefreshDate formats t like "Saturday 17 October at 14:05 GMT+7" in loc.
func FormatRefreshDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return local.Format(refreshDateLayout) + " " + zoneLabel(local)
}

// zoneLabel keeps named abbreviations (UTC, BST) and rewrites numeric ones
// such as "+07" as "GMT+7".
func zoneLabel(t time.Time) string {
	name, offset := t.Zone()
	if name != "" && strings.IndexFunc(name, func(r rune) bool { return !unicode.IsLetter(r) }) == -1 {
		return name
	}
	if offset == 0 {
		return "GMT"
	}

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("GMT%s%d", sign, hours)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, hours, minutes)
}

func buildFooter(profile *feed.Profile, refreshDate string) string {
	var b strings.Builder

	b.WriteString("------------\n")
	fmt.Fprintf(&b, `<p align="center">This <i>README</i> is generated <b>%s</b><br>Last refresh: %s`, profile.RefreshNote, refreshDate)
	if profile.BuildStatusBadge != "" {
		fmt.Fprintf(&b, "\n"+`<p align="center"><img src="%s" /></p>`, profile.BuildStatusBadge)
	}

	return b.String()
}
