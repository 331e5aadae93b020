package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/rss-readme/app/feed"
	"github.com/lysyi3m/rss-readme/app/metrics"
)

var _ TaskInterface = (*FetchFeedTask)(nil)

// FetchFeedTask fetches one feed and keeps its items for the caller.
type FetchFeedTask struct {
	Task
	URL     string
	fetcher feed.FeedFetcher

	Metadata *feed.Metadata
	Items    []feed.Item
	Err      error
}

func NewFetchFeedTask(taskType TaskType, name, url string, fetcher feed.FeedFetcher) *FetchFeedTask {
	return &FetchFeedTask{
		Task:    NewTask(taskType, name),
		URL:     url,
		fetcher: fetcher,
	}
}

func (t *FetchFeedTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		t.Err = ctx.Err()
		return t.Err
	default:
	}

	metadata, items, err := t.fetcher.Fetch(ctx, t.URL)
	metrics.FeedFetchesTotal.WithLabelValues(t.Name, metrics.Status(err)).Inc()
	metrics.FeedFetchDuration.WithLabelValues(t.Name).Observe(t.GetDuration().Seconds())
	if err != nil {
		t.Err = fmt.Errorf("%s: %w", t.Name, err)
		return t.Err
	}

	t.Metadata = metadata
	t.Items = items

	slog.Info("Task completed",
		"type", t.GetType(),
		"feed", t.Name,
		"duration", t.GetDuration(),
		"items", len(items))

	return nil
}
