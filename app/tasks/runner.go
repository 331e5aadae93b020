package tasks

import (
	"context"
	"log/slog"
	"sync"
)

// RunConcurrently executes every task in its own goroutine and waits for all of
// them. A failing task is logged and never cancels the others; each task keeps
// its own error.
func RunConcurrently(ctx context.Context, tasks ...TaskInterface) {
	var wg sync.WaitGroup

	for _, task := range tasks {
		wg.Add(1)
		go func(task TaskInterface) {
			defer wg.Done()
			task.Start()

			if err := task.Execute(ctx); err != nil {
				slog.Error("Task execution failed",
					"type", string(task.GetType()),
					"id", task.GetID(),
					"name", task.GetName(),
					"duration", task.GetDuration(),
					"error", err)
			}
		}(task)
	}

	wg.Wait()
}
