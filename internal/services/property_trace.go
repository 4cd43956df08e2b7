package services

import (
	"context"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/repos"
	"github.com/yungbote/realista-backend/internal/results"
	"github.com/yungbote/realista-backend/internal/types"
)

// PropertyTraceDetail is one sale trace with its property resolved.
// Property is nil when the reference points at a removed record.
type PropertyTraceDetail struct {
	types.PropertyTrace
	Property *types.Property `json:"property,omitempty"`
}

type PropertyTraceService interface {
	Get(ctx context.Context, id string) results.Result[PropertyTraceDetail]
	ListByProperty(ctx context.Context, propertyID string) results.Result[[]types.PropertyTrace]
}

type propertyTraceService struct {
	traces     repos.PropertyTraceRepo
	properties repos.PropertyRepo
	log        *logger.Logger
}

func NewPropertyTraceService(traces repos.PropertyTraceRepo, properties repos.PropertyRepo, log *logger.Logger) PropertyTraceService {
	return &propertyTraceService{
		traces:     traces,
		properties: properties,
		log:        log.With("service", "PropertyTraceService"),
	}
}

func (s *propertyTraceService) Get(ctx context.Context, id string) results.Result[PropertyTraceDetail] {
	trace, err := s.traces.GetByID(ctx, id)
	if err != nil {
		s.log.Error("load property trace", "error", err)
		return results.Unexpected[PropertyTraceDetail]("could not load property trace")
	}
	if trace == nil {
		return results.NotFound[PropertyTraceDetail]("property trace not found")
	}
	prop, err := s.properties.GetByID(ctx, trace.IDProperty)
	if err != nil {
		s.log.Error("load trace property", "error", err, "id", id)
		return results.Unexpected[PropertyTraceDetail]("could not load property trace")
	}
	return results.Ok(PropertyTraceDetail{PropertyTrace: *trace, Property: prop})
}

func (s *propertyTraceService) ListByProperty(ctx context.Context, propertyID string) results.Result[[]types.PropertyTrace] {
	exists, err := s.properties.Exists(ctx, propertyID)
	if err != nil {
		s.log.Error("check property", "error", err, "id", propertyID)
		return results.Unexpected[[]types.PropertyTrace]("could not list property traces")
	}
	if !exists {
		return results.NotFound[[]types.PropertyTrace]("property not found")
	}
	traces, err := s.traces.TracesByProperty(ctx, propertyID)
	if err != nil {
		s.log.Error("list property traces", "error", err, "id", propertyID)
		return results.Unexpected[[]types.PropertyTrace]("could not list property traces")
	}
	if traces == nil {
		traces = []types.PropertyTrace{}
	}
	return results.Ok(traces)
}
