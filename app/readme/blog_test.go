package readme

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lysyi3m/rss-readme/app/feed"
)

func makeItems(n int) []feed.Item {
	items := make([]feed.Item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, feed.Item{
			Title: fmt.Sprintf("Post %d", i),
			Link:  fmt.Sprintf("https://example.com/%d", i),
		})
	}
	return items
}

func TestBuildBlogSummaryLimit(t *testing.T) {
	summary := BuildBlogSummary(makeItems(8), 5, "https://example.com")

	if count := strings.Count(summary, "<li>"); count != 5 {
		t.Errorf("Expected 5 list items, got %d", count)
	}
	if count := strings.Count(summary, "More posts"); count != 1 {
		t.Errorf("Expected one 'More posts' link, got %d", count)
	}

	// Feed order is preserved
	last := -1
	for i := 1; i <= 5; i++ {
		idx := strings.Index(summary, fmt.Sprintf("<li><a href=https://example.com/%d>Post %d</a></li>", i, i))
		if idx == -1 {
			t.Fatalf("Expected post %d to be listed", i)
		}
		if idx < last {
			t.Errorf("Expected post %d after post %d", i, i-1)
		}
		last = idx
	}
	if strings.Contains(summary, "Post 6") {
		t.Error("Expected posts beyond the limit to be dropped")
	}
}

func TestBuildBlogSummaryFormat(t *testing.T) {
	summary := BuildBlogSummary(makeItems(1), 5, "https://www.kitchenrai.com")
	expected := "<ul><li><a href=https://example.com/1>Post 1</a></li></ul>\n<a href=https://www.kitchenrai.com target=\"_blank\">More posts</a>"

	if summary != expected {
		t.Errorf("Expected:\n%q\ngot:\n%q", expected, summary)
	}
}

func TestBuildBlogSummaryNoEscaping(t *testing.T) {
	items := []feed.Item{{Title: "Fish & <i>Chips</i>", Link: "https://example.com/?a=1&b=2"}}
	summary := BuildBlogSummary(items, 5, "https://example.com")

	if !strings.Contains(summary, "<li><a href=https://example.com/?a=1&b=2>Fish & <i>Chips</i></a></li>") {
		t.Errorf("Expected title and link verbatim, got %q", summary)
	}
}

func TestBuildBlogSummaryEmpty(t *testing.T) {
	summary := BuildBlogSummary(nil, 5, "https://example.com")

	if strings.Contains(summary, "<li>") {
		t.Error("Expected no list items")
	}
	if !strings.Contains(summary, "More posts") {
		t.Error("Expected 'More posts' link")
	}

	summary = BuildBlogSummary(makeItems(3), -1, "https://example.com")
	if strings.Contains(summary, "<li>") {
		t.Error("Expected no list items for negative limit")
	}
}
