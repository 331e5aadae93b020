package cfg

import (
	"cmp"
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Feed sources
	WeatherLocationID string `long:"weather-location-id" env:"WEATHER_LOCATION_ID" default:"1609350" description:"BBC weather location identifier"`
	BlogFeedURL       string `long:"blog-feed-url" env:"BLOG_FEED_URL" default:"https://www.kitchenrai.com/feed" description:"Blog RSS/Atom feed URL"`
	WebsiteURL        string `long:"website-url" env:"WEBSITE_URL" default:"https://www.kitchenrai.com" description:"Website linked from the \"More posts\" anchor"`
	BlogPostLimit     int    `long:"blog-post-limit" env:"BLOG_POST_LIMIT" default:"5" description:"Number of blog posts to list"`

	// Output
	OutputPath  string `long:"output" env:"OUTPUT_PATH" default:"README.md" description:"Path of the generated document"`
	ProfileFile string `long:"profile" env:"PROFILE_FILE" default:"profile.yml" description:"Profile YAML file (optional)"`

	// Fetching
	FetchTimeout int    `long:"timeout" env:"FETCH_TIMEOUT" default:"30" description:"Per-feed fetch timeout in seconds"`
	UserAgent    string `long:"user-agent" env:"USER_AGENT" default:"RSS Readme/1.0" description:"User agent string for HTTP requests"`

	// Preview server
	Serve bool   `long:"serve" env:"SERVE" description:"Serve a live preview instead of writing the document"`
	Port  string `long:"port" env:"PORT" default:"8080" description:"Preview server port"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"Asia/Bangkok" description:"Timezone for the refresh timestamp"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses args and the environment. It returns nil, nil when help was requested.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		WeatherLocationID: raw.WeatherLocationID,
		BlogFeedURL:       raw.BlogFeedURL,
		WebsiteURL:        raw.WebsiteURL,
		BlogPostLimit:     raw.BlogPostLimit,
		OutputPath:        raw.OutputPath,
		ProfileFile:       raw.ProfileFile,
		FetchTimeout:      time.Duration(raw.FetchTimeout) * time.Second,
		UserAgent:         raw.UserAgent,
		Serve:             raw.Serve,
		Port:              raw.Port,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	loc, err := loadLocation(cfg.Timezone)
	if err != nil {
		slog.Warn("Invalid timezone, using UTC", "timezone", cfg.Timezone, "error", err)
		loc = time.UTC
	}
	cfg.Location = loc

	return cfg, nil
}

func validate(cfg *Cfg) error {
	if cfg.WeatherLocationID == "" {
		return fmt.Errorf("weather location id is required")
	}
	if cfg.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.BlogPostLimit < 0 {
		return fmt.Errorf("blog post limit must be non-negative")
	}
	if cfg.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive")
	}
	return nil
}

func loadLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(timezone)
}
