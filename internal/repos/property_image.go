package repos

import (
	"context"
	"strconv"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/store"
	"github.com/yungbote/realista-backend/internal/types"
)

type PropertyImageRepo interface {
	GetByID(ctx context.Context, id string) (*types.PropertyImage, error)
	GetPagedFiltered(ctx context.Context, p types.Pagination, f types.Filter) ([]types.PropertyImage, int64, error)
	Add(ctx context.Context, img types.PropertyImage) (types.PropertyImage, error)
	Update(ctx context.Context, img types.PropertyImage) (types.PropertyImage, error)
	Delete(ctx context.Context, id string) (bool, error)
	ImagesByProperty(ctx context.Context, propertyID string) ([]types.PropertyImage, error)
	// MainImage is the first Enabled image for the property in natural
	// store order, or nil when none qualifies.
	MainImage(ctx context.Context, propertyID string) (*types.PropertyImage, error)
}

type propertyImageRepo struct {
	*Repo[types.PropertyImage]
}

func NewPropertyImageRepo(st store.Store, baseLog *logger.Logger) PropertyImageRepo {
	return &propertyImageRepo{NewRepo[types.PropertyImage](st, types.CollectionPropertyImage, baseLog,
		WithSearchFields[types.PropertyImage]("file"),
		WithFilterCompiler[types.PropertyImage](compilePropertyImageFilters),
	)}
}

func (r *propertyImageRepo) ImagesByProperty(ctx context.Context, propertyID string) ([]types.PropertyImage, error) {
	return r.findWhere(ctx, []store.Condition{
		{Field: "id_property", Op: store.OpEq, Value: propertyID},
	}, nil, 0)
}

func (r *propertyImageRepo) MainImage(ctx context.Context, propertyID string) (*types.PropertyImage, error) {
	imgs, err := r.findWhere(ctx, []store.Condition{
		{Field: "id_property", Op: store.OpEq, Value: propertyID},
		{Field: "enabled", Op: store.OpEq, Value: true},
	}, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(imgs) == 0 {
		return nil, nil
	}
	return &imgs[0], nil
}

func compilePropertyImageFilters(filters map[string]string, log *logger.Logger) []store.Condition {
	var conds []store.Condition
	for _, key := range sortedKeys(filters) {
		val := filters[key]
		switch key {
		case "idProperty":
			conds = append(conds, store.Condition{Field: "id_property", Op: store.OpEq, Value: val})
		case "enabled":
			if enabled, err := strconv.ParseBool(val); err == nil {
				conds = append(conds, store.Condition{Field: "enabled", Op: store.OpEq, Value: enabled})
			} else {
				log.Debug("ignoring unparsable filter value", "key", key, "value", val)
			}
		default:
			log.Debug("ignoring unknown filter", "key", key)
		}
	}
	return conds
}
