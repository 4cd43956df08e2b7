package repos

import (
	"context"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/store"
	"github.com/yungbote/realista-backend/internal/types"
)

type OwnerRepo interface {
	GetByID(ctx context.Context, id string) (*types.Owner, error)
	GetPaged(ctx context.Context, p types.Pagination) ([]types.Owner, int64, error)
	GetPagedFiltered(ctx context.Context, p types.Pagination, f types.Filter) ([]types.Owner, int64, error)
	Add(ctx context.Context, o types.Owner) (types.Owner, error)
	Update(ctx context.Context, o types.Owner) (types.Owner, error)
	Delete(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type ownerRepo struct {
	*Repo[types.Owner]
}

func NewOwnerRepo(st store.Store, baseLog *logger.Logger) OwnerRepo {
	return &ownerRepo{NewRepo[types.Owner](st, types.CollectionOwner, baseLog,
		WithSearchFields[types.Owner]("name", "address"),
		WithSortFields[types.Owner](map[string]string{
			"name":      "name",
			"birthdate": "birthdate",
		}),
		WithFilterCompiler[types.Owner](compileOwnerFilters),
	)}
}

func compileOwnerFilters(filters map[string]string, log *logger.Logger) []store.Condition {
	var conds []store.Condition
	for _, key := range sortedKeys(filters) {
		val := filters[key]
		switch key {
		case "name":
			conds = append(conds, store.Condition{Field: "name", Op: store.OpContainsFold, Value: val})
		case "address":
			conds = append(conds, store.Condition{Field: "address", Op: store.OpContainsFold, Value: val})
		default:
			log.Debug("ignoring unknown filter", "key", key)
		}
	}
	return conds
}
