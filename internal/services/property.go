package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/repos"
	"github.com/yungbote/realista-backend/internal/results"
	"github.com/yungbote/realista-backend/internal/types"
)

// enrichConcurrency caps the fan-out of the per-row reference lookups
// a list read performs.
const enrichConcurrency = 8

// PropertyListItem is a property row enriched with its owner and main
// image. Owner is nil when the reference points at a removed record.
type PropertyListItem struct {
	types.Property
	Owner     *types.Owner `json:"owner,omitempty"`
	MainImage string       `json:"main_image,omitempty"`
}

// PropertyDetail is the full read model of one property.
type PropertyDetail struct {
	types.Property
	Owner  *types.Owner          `json:"owner,omitempty"`
	Images []types.PropertyImage `json:"images"`
	Traces []types.PropertyTrace `json:"traces"`
}

type PropertyService interface {
	List(ctx context.Context, p types.Pagination, f types.Filter) results.Paged[PropertyListItem]
	Get(ctx context.Context, id string) results.Result[PropertyDetail]
}

type propertyService struct {
	properties repos.PropertyRepo
	owners     repos.OwnerRepo
	images     repos.PropertyImageRepo
	traces     repos.PropertyTraceRepo
	log        *logger.Logger
}

func NewPropertyService(properties repos.PropertyRepo, owners repos.OwnerRepo, images repos.PropertyImageRepo, traces repos.PropertyTraceRepo, log *logger.Logger) PropertyService {
	return &propertyService{
		properties: properties,
		owners:     owners,
		images:     images,
		traces:     traces,
		log:        log.With("service", "PropertyService"),
	}
}

func (s *propertyService) List(ctx context.Context, p types.Pagination, f types.Filter) results.Paged[PropertyListItem] {
	p = p.Normalized()
	props, total, err := s.properties.GetPagedFiltered(ctx, p, f)
	if err != nil {
		s.log.Error("list properties", "error", err)
		return results.UnexpectedPage[PropertyListItem]("could not list properties")
	}

	items := make([]PropertyListItem, len(props))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, prop := range props {
		items[i] = PropertyListItem{Property: prop}
		g.Go(func() error {
			owner, err := s.owners.GetByID(gctx, prop.IDOwner)
			if err != nil {
				return err
			}
			items[i].Owner = owner
			main, err := s.images.MainImage(gctx, prop.ID)
			if err != nil {
				return err
			}
			if main != nil {
				items[i].MainImage = main.File
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("enrich properties", "error", err)
		return results.UnexpectedPage[PropertyListItem]("could not list properties")
	}
	return results.OkPage(items, types.NewPageMeta(p, total))
}

func (s *propertyService) Get(ctx context.Context, id string) results.Result[PropertyDetail] {
	prop, err := s.properties.GetByID(ctx, id)
	if err != nil {
		s.log.Error("load property", "error", err)
		return results.Unexpected[PropertyDetail]("could not load property")
	}
	if prop == nil {
		return results.NotFound[PropertyDetail]("property not found")
	}

	detail := PropertyDetail{
		Property: *prop,
		Images:   []types.PropertyImage{},
		Traces:   []types.PropertyTrace{},
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		owner, err := s.owners.GetByID(gctx, prop.IDOwner)
		if err != nil {
			return err
		}
		detail.Owner = owner
		return nil
	})
	g.Go(func() error {
		images, err := s.images.ImagesByProperty(gctx, prop.ID)
		if err != nil {
			return err
		}
		if images != nil {
			detail.Images = images
		}
		return nil
	})
	g.Go(func() error {
		traces, err := s.traces.TracesByProperty(gctx, prop.ID)
		if err != nil {
			return err
		}
		if traces != nil {
			detail.Traces = traces
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Error("enrich property", "error", err, "id", id)
		return results.Unexpected[PropertyDetail]("could not load property")
	}
	return results.Ok(detail)
}
