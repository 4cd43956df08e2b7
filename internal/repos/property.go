package repos

import (
	"context"
	"strconv"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/store"
	"github.com/yungbote/realista-backend/internal/types"
)

type PropertyRepo interface {
	GetByID(ctx context.Context, id string) (*types.Property, error)
	GetPaged(ctx context.Context, p types.Pagination) ([]types.Property, int64, error)
	GetPagedFiltered(ctx context.Context, p types.Pagination, f types.Filter) ([]types.Property, int64, error)
	Add(ctx context.Context, prop types.Property) (types.Property, error)
	Update(ctx context.Context, prop types.Property) (types.Property, error)
	Delete(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	PropertiesByOwner(ctx context.Context, ownerID string) ([]types.Property, error)
}

type propertyRepo struct {
	*Repo[types.Property]
}

func NewPropertyRepo(st store.Store, baseLog *logger.Logger) PropertyRepo {
	return &propertyRepo{NewRepo[types.Property](st, types.CollectionProperty, baseLog,
		WithSearchFields[types.Property]("name", "address", "code_internal"),
		WithSortFields[types.Property](map[string]string{
			"name":         "name",
			"price":        "price",
			"year":         "year",
			"codeInternal": "code_internal",
		}),
		WithFilterCompiler[types.Property](compilePropertyFilters),
	)}
}

func (r *propertyRepo) PropertiesByOwner(ctx context.Context, ownerID string) ([]types.Property, error) {
	return r.findWhere(ctx, []store.Condition{
		{Field: "id_owner", Op: store.OpEq, Value: ownerID},
	}, &store.Sort{Field: "id"}, 0)
}

func compilePropertyFilters(filters map[string]string, log *logger.Logger) []store.Condition {
	var conds []store.Condition
	for _, key := range sortedKeys(filters) {
		val := filters[key]
		switch key {
		case "name":
			conds = append(conds, store.Condition{Field: "name", Op: store.OpContainsFold, Value: val})
		case "address":
			conds = append(conds, store.Condition{Field: "address", Op: store.OpContainsFold, Value: val})
		case "codeInternal":
			conds = append(conds, store.Condition{Field: "code_internal", Op: store.OpEq, Value: val})
		case "idOwner":
			conds = append(conds, store.Condition{Field: "id_owner", Op: store.OpEq, Value: val})
		case "minPrice":
			if price, ok := parseFloatFilter(key, val, log); ok {
				conds = append(conds, store.Condition{Field: "price", Op: store.OpGte, Value: price})
			}
		case "maxPrice":
			if price, ok := parseFloatFilter(key, val, log); ok {
				conds = append(conds, store.Condition{Field: "price", Op: store.OpLte, Value: price})
			}
		case "year":
			if year, err := strconv.Atoi(val); err == nil {
				conds = append(conds, store.Condition{Field: "year", Op: store.OpEq, Value: year})
			} else {
				log.Debug("ignoring unparsable filter value", "key", key, "value", val)
			}
		default:
			log.Debug("ignoring unknown filter", "key", key)
		}
	}
	return conds
}

func parseFloatFilter(key, val string, log *logger.Logger) (float64, bool) {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		log.Debug("ignoring unparsable filter value", "key", key, "value", val)
		return 0, false
	}
	return f, true
}
