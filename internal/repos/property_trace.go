package repos

import (
	"context"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/store"
	"github.com/yungbote/realista-backend/internal/types"
)

type PropertyTraceRepo interface {
	GetByID(ctx context.Context, id string) (*types.PropertyTrace, error)
	GetPagedFiltered(ctx context.Context, p types.Pagination, f types.Filter) ([]types.PropertyTrace, int64, error)
	Add(ctx context.Context, trace types.PropertyTrace) (types.PropertyTrace, error)
	Delete(ctx context.Context, id string) (bool, error)
	TracesByProperty(ctx context.Context, propertyID string) ([]types.PropertyTrace, error)
}

type propertyTraceRepo struct {
	*Repo[types.PropertyTrace]
}

func NewPropertyTraceRepo(st store.Store, baseLog *logger.Logger) PropertyTraceRepo {
	return &propertyTraceRepo{NewRepo[types.PropertyTrace](st, types.CollectionPropertyTrace, baseLog,
		WithSearchFields[types.PropertyTrace]("name"),
		WithSortFields[types.PropertyTrace](map[string]string{
			"dateSale": "date_sale",
			"value":    "value",
		}),
		WithFilterCompiler[types.PropertyTrace](compilePropertyTraceFilters),
	)}
}

func (r *propertyTraceRepo) TracesByProperty(ctx context.Context, propertyID string) ([]types.PropertyTrace, error) {
	return r.findWhere(ctx, []store.Condition{
		{Field: "id_property", Op: store.OpEq, Value: propertyID},
	}, &store.Sort{Field: "date_sale"}, 0)
}

func compilePropertyTraceFilters(filters map[string]string, log *logger.Logger) []store.Condition {
	var conds []store.Condition
	for _, key := range sortedKeys(filters) {
		val := filters[key]
		switch key {
		case "idProperty":
			conds = append(conds, store.Condition{Field: "id_property", Op: store.OpEq, Value: val})
		case "name":
			conds = append(conds, store.Condition{Field: "name", Op: store.OpContainsFold, Value: val})
		case "minValue":
			if v, ok := parseFloatFilter(key, val, log); ok {
				conds = append(conds, store.Condition{Field: "value", Op: store.OpGte, Value: v})
			}
		case "maxValue":
			if v, ok := parseFloatFilter(key, val, log); ok {
				conds = append(conds, store.Condition{Field: "value", Op: store.OpLte, Value: v})
			}
		default:
			log.Debug("ignoring unknown filter", "key", key)
		}
	}
	return conds
}
