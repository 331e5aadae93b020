package tasks

import (
	"context"
	"time"
)

// TaskInterface is a unit of work executed by RunConcurrently.
// Example usage:
//
//	blog := NewFetchFeedTask(TaskTypeFetchBlog, "blog", blogURL, fetcher)
//	weather := NewFetchFeedTask(TaskTypeFetchWeather, "weather", weatherURL, fetcher)
//	RunConcurrently(ctx, blog, weather)
type TaskInterface interface {
	Execute(ctx context.Context) error
	GetID() string
	GetType() TaskType
	GetName() string
	Start()
	GetDuration() time.Duration
}
