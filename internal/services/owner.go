package services

import (
	"context"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/repos"
	"github.com/yungbote/realista-backend/internal/results"
	"github.com/yungbote/realista-backend/internal/types"
)

// OwnerDetail is one owner plus every property that references them.
type OwnerDetail struct {
	types.Owner
	Properties []types.Property `json:"properties"`
}

type OwnerService interface {
	List(ctx context.Context, p types.Pagination, f types.Filter) results.Paged[types.Owner]
	Get(ctx context.Context, id string) results.Result[OwnerDetail]
}

type ownerService struct {
	owners     repos.OwnerRepo
	properties repos.PropertyRepo
	log        *logger.Logger
}

func NewOwnerService(owners repos.OwnerRepo, properties repos.PropertyRepo, log *logger.Logger) OwnerService {
	return &ownerService{
		owners:     owners,
		properties: properties,
		log:        log.With("service", "OwnerService"),
	}
}

func (s *ownerService) List(ctx context.Context, p types.Pagination, f types.Filter) results.Paged[types.Owner] {
	p = p.Normalized()
	owners, total, err := s.owners.GetPagedFiltered(ctx, p, f)
	if err != nil {
		s.log.Error("list owners", "error", err)
		return results.UnexpectedPage[types.Owner]("could not list owners")
	}
	return results.OkPage(owners, types.NewPageMeta(p, total))
}

func (s *ownerService) Get(ctx context.Context, id string) results.Result[OwnerDetail] {
	owner, err := s.owners.GetByID(ctx, id)
	if err != nil {
		s.log.Error("load owner", "error", err)
		return results.Unexpected[OwnerDetail]("could not load owner")
	}
	if owner == nil {
		return results.NotFound[OwnerDetail]("owner not found")
	}
	props, err := s.properties.PropertiesByOwner(ctx, owner.ID)
	if err != nil {
		s.log.Error("load owner properties", "error", err, "id", id)
		return results.Unexpected[OwnerDetail]("could not load owner")
	}
	if props == nil {
		props = []types.Property{}
	}
	return results.Ok(OwnerDetail{Owner: *owner, Properties: props})
}
