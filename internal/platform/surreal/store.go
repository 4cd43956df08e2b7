package surreal

import (
	"context"
	"fmt"
	"strings"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/contrib/surrealql"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/store"
)

// Store adapts SurrealDB to the store.Store contract. The neutral
// query model is compiled to SurrealQL through the surrealql builder,
// so every value rides in $param vars.
type Store struct {
	db  *surrealdb.DB
	log *logger.Logger
}

func NewStore(c *Client, log *logger.Logger) *Store {
	return &Store{db: c.DB, log: log.With("store", "surreal")}
}

var _ store.Store = (*Store)(nil)

func (s *Store) Find(ctx context.Context, collection string, q store.Query) ([]store.Document, error) {
	sel := surrealql.Select(collection)
	sel = applyConditions(sel, q.Conditions)
	sel = applySearch(sel, q.Search)
	if q.Sort != nil {
		if q.Sort.Desc {
			sel = sel.OrderByDesc(q.Sort.Field)
		} else {
			sel = sel.OrderBy(q.Sort.Field)
		}
	}
	if q.Limit > 0 {
		sel = sel.Limit(q.Limit)
	}
	if q.Skip > 0 {
		sel = sel.Start(q.Skip)
	}
	sql, vars := sel.Build()
	return s.run(ctx, sql, vars)
}

func (s *Store) Count(ctx context.Context, collection string, q store.Query) (int64, error) {
	sel := surrealql.Select(collection).Alias("total", "count()")
	sel = applyConditions(sel, q.Conditions)
	sel = applySearch(sel, q.Search)
	sel = sel.GroupAll()
	sql, vars := sel.Build()

	rows, err := s.run(ctx, sql, vars)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return toInt64(rows[0]["total"]), nil
}

func (s *Store) InsertOne(ctx context.Context, collection string, doc store.Document) (store.Document, error) {
	content := withoutID(doc)
	sql, vars := surrealql.Create(collection).Content(content).Build()
	rows, err := s.run(ctx, sql, vars)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("surreal: create in %q returned no record", collection)
	}
	return rows[0], nil
}

func (s *Store) ReplaceByID(ctx context.Context, collection, id string, doc store.Document) (store.Document, error) {
	rows, err := s.run(ctx, "UPDATE type::record($id) CONTENT $content", map[string]any{
		"id":      id,
		"content": withoutID(doc),
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, store.ErrNoDocument
	}
	return rows[0], nil
}

func (s *Store) DeleteByID(ctx context.Context, collection, id string) (bool, error) {
	rows, err := s.run(ctx, "DELETE type::record($id) RETURN BEFORE", map[string]any{
		"id": id,
	})
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func (s *Store) run(ctx context.Context, sql string, vars map[string]any) ([]store.Document, error) {
	res, err := surrealdb.Query[[]store.Document](ctx, s.db, sql, vars)
	if err != nil {
		return nil, fmt.Errorf("surreal: query: %w", err)
	}
	if res == nil || len(*res) == 0 {
		return nil, nil
	}
	rows := (*res)[len(*res)-1].Result
	for i := range rows {
		normalizeRecordID(rows[i])
	}
	return rows, nil
}

func applyConditions(sel *surrealql.SelectQuery, conds []store.Condition) *surrealql.SelectQuery {
	for _, c := range conds {
		if c.Field == "id" && c.Op == store.OpEq {
			sel = sel.Where("id = type::record(?)", c.Value)
			continue
		}
		switch c.Op {
		case store.OpEq:
			sel = sel.WhereEq(c.Field, c.Value)
		case store.OpNe:
			sel = sel.Where(c.Field+" != ?", c.Value)
		case store.OpGte:
			sel = sel.Where(c.Field+" >= ?", c.Value)
		case store.OpLte:
			sel = sel.Where(c.Field+" <= ?", c.Value)
		case store.OpContainsFold:
			sel = sel.Where("string::lowercase("+c.Field+") CONTAINS ?", strings.ToLower(fmt.Sprint(c.Value)))
		}
	}
	return sel
}

func applySearch(sel *surrealql.SelectQuery, search *store.Search) *surrealql.SelectQuery {
	if search == nil || search.Term == "" || len(search.Fields) == 0 {
		return sel
	}
	term := strings.ToLower(search.Term)
	parts := make([]string, 0, len(search.Fields))
	args := make([]any, 0, len(search.Fields))
	for _, f := range search.Fields {
		parts = append(parts, "string::lowercase("+f+") CONTAINS ?")
		args = append(args, term)
	}
	return sel.Where("("+strings.Join(parts, " OR ")+")", args...)
}

// normalizeRecordID flattens the CBOR record id into the plain
// "collection:key" string the rest of the system works with.
func normalizeRecordID(doc store.Document) {
	switch rid := doc["id"].(type) {
	case models.RecordID:
		doc["id"] = rid.String()
	case *models.RecordID:
		doc["id"] = rid.String()
	}
}

func withoutID(doc store.Document) store.Document {
	out := make(store.Document, len(doc))
	for k, v := range doc {
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case uint64:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}
