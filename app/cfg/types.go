package cfg

import (
	"fmt"
	"time"
)

const weatherFeedBaseURL = "https://weather-broker-cdn.api.bbci.co.uk/en/forecast/rss/3day"

type Cfg struct {
	// Feed sources
	WeatherLocationID string
	BlogFeedURL       string
	WebsiteURL        string
	BlogPostLimit     int

	// Output
	OutputPath  string
	ProfileFile string

	// Fetching
	FetchTimeout time.Duration
	UserAgent    string

	// Preview server
	Serve bool
	Port  string

	// Application metadata
	Timezone string
	Location *time.Location
	Debug    bool
	Version  string
}

// WeatherURL returns the three-day forecast feed for the configured location.
func (c *Cfg) WeatherURL() string {
	return fmt.Sprintf("%s/%s", weatherFeedBaseURL, c.WeatherLocationID)
}
