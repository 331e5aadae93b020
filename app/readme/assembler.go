package readme

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lysyi3m/rss-readme/app/feed"
	"github.com/lysyi3m/rss-readme/app/metrics"
	"github.com/lysyi3m/rss-readme/app/tasks"
	"github.com/lysyi3m/rss-readme/app/weather"
)

type Options struct {
	BlogFeedURL   string
	WeatherURL    string
	WebsiteURL    string
	BlogPostLimit int
	OutputPath    string
	Location      *time.Location
}

// Document is the output of one run.
type Document struct {
	Markdown    string
	HTML        string
	GeneratedAt time.Time
}

type Assembler struct {
	fetcher   feed.FeedFetcher
	extractor weather.Extractor
	renderer  Renderer
	writer    Writer
	profile   *feed.Profile
	opts      Options
	now       func() time.Time
}

func NewAssembler(fetcher feed.FeedFetcher, renderer Renderer, writer Writer, profile *feed.Profile, opts Options) *Assembler {
	if profile == nil {
		profile = feed.DefaultProfile()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Assembler{
		fetcher:   fetcher,
		extractor: weather.SplitExtractor{},
		renderer:  renderer,
		writer:    writer,
		profile:   profile,
		opts:      opts,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for the refresh timestamp.
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	a.now = now
	return a
}

// WithExtractor replaces the weather field extraction strategy.
func (a *Assembler) WithExtractor(extractor weather.Extractor) *Assembler {
	a.extractor = extractor
	return a
}

// Build fetches both feeds and renders the document. A failed fetch leaves its
// section empty; only a rendering failure is returned.
func (a *Assembler) Build(ctx context.Context) (*Document, error) {
	blogTask := tasks.NewFetchFeedTask(tasks.TaskTypeFetchBlog, "blog", a.opts.BlogFeedURL, a.fetcher)
	weatherTask := tasks.NewFetchFeedTask(tasks.TaskTypeFetchWeather, "weather", a.opts.WeatherURL, a.fetcher)

	tasks.RunConcurrently(ctx, blogTask, weatherTask)

	blogPosts := ""
	if blogTask.Err == nil {
		blogPosts = BuildBlogSummary(blogTask.Items, a.opts.BlogPostLimit, a.opts.WebsiteURL)
	}

	weatherDetail := ""
	if weatherTask.Err == nil {
		report, err := weather.FromItems(weatherTask.Items, a.extractor)
		if err != nil {
			slog.Error("Weather section skipped", "url", a.opts.WeatherURL, "error", err)
		} else {
			weatherDetail = report.Summary()
		}
	}

	generatedAt := a.now()
	markdown := a.compose(blogPosts, weatherDetail, generatedAt)

	html, err := a.renderer.Render(markdown)
	metrics.DocumentRendersTotal.WithLabelValues(metrics.Status(err)).Inc()
	if err != nil {
		return nil, err
	}

	return &Document{
		Markdown:    markdown,
		HTML:        html,
		GeneratedAt: generatedAt,
	}, nil
}

// Run builds the document and replaces the output file with its HTML.
func (a *Assembler) Run(ctx context.Context) (*Document, error) {
	doc, err := a.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}

	err = a.writer.Write(a.opts.OutputPath, []byte(doc.HTML))
	metrics.DocumentWritesTotal.WithLabelValues(metrics.Status(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	slog.Info("Document written", "path", a.opts.OutputPath, "bytes", len(doc.HTML))

	return doc, nil
}

func (a *Assembler) compose(blogPosts, weatherDetail string, generatedAt time.Time) string {
	p := a.profile

	flag := fmt.Sprintf(`<img src="%s" width="14"/>`, p.FlagIcon)
	cityIcon := fmt.Sprintf(`<img src="%s" width="20"/>`, p.CityIcon)

	badges := make([]string, 0, len(p.Badges))
	for _, badge := range p.Badges {
		badges = append(badges, fmt.Sprintf(`[<img src="%s" height=%d>](%s)`, badge.Image, p.BadgeHeight, badge.URL))
	}

	footer := buildFooter(p, FormatRefreshDate(generatedAt, a.opts.Location))

	return fmt.Sprintf("👋 Hi, I'm %s. I'm a %s from %s <b>%s</b>.\n\n %s\n\n## Latest Blog Posts\n%s\n\n## %s %s weather\n%s\n\n%s",
		p.Name, p.Role, flag, p.Location,
		strings.Join(badges, " "),
		blogPosts,
		cityIcon, p.City,
		weatherDetail,
		footer)
}
