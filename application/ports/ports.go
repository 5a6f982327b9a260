package ports

import (
	"context"
	"io"

	"insightapi/domain/analysis"
	"insightapi/domain/events"
	"insightapi/domain/insight"
)

// InsightRepository is the per-user document store for saved analyses.
// Every operation is scoped to the owning user; a lookup or delete
// against a missing or foreign record fails with a NotFound error.
type InsightRepository interface {
	Save(ctx context.Context, ins *insight.Insight) error
	GetByID(ctx context.Context, userID, insightID string) (*insight.Insight, error)
	ListByUser(ctx context.Context, userID string) ([]*insight.Insight, error)
	Delete(ctx context.Context, userID, insightID string) error
}

// LanguageModel is the external text-completion backend. The response is
// untrusted free text with no guaranteed schema.
type LanguageModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// EventPublisher publishes domain events to the event bus
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// ChartRenderer rasterizes a chart series into PNG images
type ChartRenderer interface {
	RenderBar(series analysis.ChartSeries) ([]byte, error)
	RenderDonut(series analysis.ChartSeries) ([]byte, error)
}

// ReportAssembler lays a generated analysis out as a paginated document
// and writes it to w
type ReportAssembler interface {
	Assemble(ctx context.Context, w io.Writer, req analysis.Request, record analysis.Record, series analysis.ChartSeries) error
}
