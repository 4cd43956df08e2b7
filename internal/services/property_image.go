package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/repos"
	"github.com/yungbote/realista-backend/internal/results"
	"github.com/yungbote/realista-backend/internal/types"
)

// PropertyImageListItem is an image row with its property resolved.
// Property is nil when the reference points at a removed record.
type PropertyImageListItem struct {
	types.PropertyImage
	Property *types.Property `json:"property,omitempty"`
}

type PropertyImageService interface {
	List(ctx context.Context, p types.Pagination, f types.Filter) results.Paged[PropertyImageListItem]
	ListByProperty(ctx context.Context, propertyID string) results.Result[[]types.PropertyImage]
}

type propertyImageService struct {
	images     repos.PropertyImageRepo
	properties repos.PropertyRepo
	log        *logger.Logger
}

func NewPropertyImageService(images repos.PropertyImageRepo, properties repos.PropertyRepo, log *logger.Logger) PropertyImageService {
	return &propertyImageService{
		images:     images,
		properties: properties,
		log:        log.With("service", "PropertyImageService"),
	}
}

func (s *propertyImageService) List(ctx context.Context, p types.Pagination, f types.Filter) results.Paged[PropertyImageListItem] {
	p = p.Normalized()
	images, total, err := s.images.GetPagedFiltered(ctx, p, f)
	if err != nil {
		s.log.Error("list property images", "error", err)
		return results.UnexpectedPage[PropertyImageListItem]("could not list property images")
	}

	items := make([]PropertyImageListItem, len(images))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, img := range images {
		items[i] = PropertyImageListItem{PropertyImage: img}
		g.Go(func() error {
			prop, err := s.properties.GetByID(gctx, img.IDProperty)
			if err != nil {
				return err
			}
			items[i].Property = prop
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("enrich property images", "error", err)
		return results.UnexpectedPage[PropertyImageListItem]("could not list property images")
	}
	return results.OkPage(items, types.NewPageMeta(p, total))
}

func (s *propertyImageService) ListByProperty(ctx context.Context, propertyID string) results.Result[[]types.PropertyImage] {
	exists, err := s.properties.Exists(ctx, propertyID)
	if err != nil {
		s.log.Error("check property", "error", err, "id", propertyID)
		return results.Unexpected[[]types.PropertyImage]("could not list property images")
	}
	if !exists {
		return results.NotFound[[]types.PropertyImage]("property not found")
	}
	images, err := s.images.ImagesByProperty(ctx, propertyID)
	if err != nil {
		s.log.Error("list property images", "error", err, "id", propertyID)
		return results.Unexpected[[]types.PropertyImage]("could not list property images")
	}
	if images == nil {
		images = []types.PropertyImage{}
	}
	return results.Ok(images)
}
