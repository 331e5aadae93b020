package feed

import (
	"time"
)

// Feed processing types

type Metadata struct {
	Title       string
	Link        string
	Description string
	Language    string
	UpdatedAt   *time.Time
}

type Item struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Content     string // content:encoded, or the description when the feed carries none
	PublishedAt *time.Time
}

// Profile types

type Profile struct {
	Name             string  `yaml:"name"`
	Role             string  `yaml:"role"`
	Location         string  `yaml:"location"`
	City             string  `yaml:"city"`
	FlagIcon         string  `yaml:"flag_icon"`
	CityIcon         string  `yaml:"city_icon"`
	BadgeHeight      int     `yaml:"badge_height"`
	Badges           []Badge `yaml:"badges"`
	BuildStatusBadge string  `yaml:"build_status_badge"`
	RefreshNote      string  `yaml:"refresh_note"`
}

type Badge struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	URL   string `yaml:"url"`
}
