package readme

import (
	"fmt"
	"strings"

	"github.com/lysyi3m/rss-readme/app/feed"
)

// BuildBlogSummary lists the first limit items in feed order followed by a link
// to the website. Titles and links are trusted and written verbatim.
func BuildBlogSummary(items []feed.Item, limit int, websiteURL string) string {
	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		items = items[:limit]
	}

	var b strings.Builder
	b.WriteString("<ul>")
	for _, item := range items {
		fmt.Fprintf(&b, "<li><a href=%s>%s</a></li>", item.Link, item.Title)
	}
	b.WriteString("</ul>\n")
	fmt.Fprintf(&b, `<a href=%s target="_blank">More posts</a>`, websiteURL)

	return b.String()
}
