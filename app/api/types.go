package api

import (
	"context"

	"github.com/lysyi3m/rss-readme/app/readme"
)

type DocumentBuilder interface {
	Build(ctx context.Context) (*readme.Document, error)
}

var _ DocumentBuilder = (*readme.Assembler)(nil)

type Handler struct {
	builder DocumentBuilder
	version string
}
