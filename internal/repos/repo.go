package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yungbote/realista-backend/internal/pkg/errs"
	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/store"
	"github.com/yungbote/realista-backend/internal/types"
)

const (
	// allLimit caps GetAll. The helper exists for small reference
	// collections only.
	allLimit = 1000
	// scanLimit bounds the candidate fetch of the client-side
	// free-text fallback so an ad-hoc search never scans an unbounded
	// collection.
	scanLimit = 1000
)

// FilterCompiler turns the named filter map of a list request into
// store conditions. Unknown keys and unparsable values are skipped,
// not failed.
type FilterCompiler func(filters map[string]string, log *logger.Logger) []store.Condition

// Repo is the generic repository over one collection. Specialized
// repositories embed it with field-aware search, sort, and filter
// configuration.
type Repo[T types.Entity] struct {
	st           store.Store
	collection   string
	searchFields []string
	sortFields   map[string]string
	compile      FilterCompiler
	log          *logger.Logger
}

type Option[T types.Entity] func(*Repo[T])

// WithSearchFields pushes the free-text search down to the store over
// the given string fields. Without it the repository falls back to a
// bounded client-side scan.
func WithSearchFields[T types.Entity](fields ...string) Option[T] {
	return func(r *Repo[T]) { r.searchFields = fields }
}

// WithSortFields maps caller-visible sort names onto document fields.
// "id" is always available.
func WithSortFields[T types.Entity](fields map[string]string) Option[T] {
	return func(r *Repo[T]) {
		for name, field := range fields {
			r.sortFields[name] = field
		}
	}
}

func WithFilterCompiler[T types.Entity](fc FilterCompiler) Option[T] {
	return func(r *Repo[T]) { r.compile = fc }
}

func NewRepo[T types.Entity](st store.Store, collection string, baseLog *logger.Logger, opts ...Option[T]) *Repo[T] {
	r := &Repo[T]{
		st:         st,
		collection: collection,
		sortFields: map[string]string{"id": "id"},
		compile:    compileEqualityFilters,
		log:        baseLog.With("repo", collection),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repo[T]) GetAll(ctx context.Context) ([]T, error) {
	docs, err := r.st.Find(ctx, r.collection, store.Query{Limit: allLimit})
	if err != nil {
		return nil, fmt.Errorf("get all %s: %w", r.collection, err)
	}
	return decodeDocuments[T](docs)
}

// GetByID returns (nil, nil) when no record has the given id; callers
// decide whether that is an error.
func (r *Repo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if !store.ValidKey(id) {
		return nil, nil
	}
	docs, err := r.st.Find(ctx, r.collection, store.Query{
		Conditions: []store.Condition{{Field: "id", Op: store.OpEq, Value: id}},
		Limit:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("get %s by id: %w", r.collection, err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	e, err := decodeDocument[T](docs[0])
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetPaged returns one unfiltered page in natural store order plus the
// collection total.
func (r *Repo[T]) GetPaged(ctx context.Context, p types.Pagination) ([]T, int64, error) {
	p = p.Normalized()
	docs, err := r.st.Find(ctx, r.collection, store.Query{Skip: p.Skip(), Limit: p.PageSize})
	if err != nil {
		return nil, 0, fmt.Errorf("page %s: %w", r.collection, err)
	}
	total, err := r.st.Count(ctx, r.collection, store.Query{})
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", r.collection, err)
	}
	items, err := decodeDocuments[T](docs)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// GetPagedFiltered applies the search term AND every named filter AND
// the sort, then pages at the store. The one exception is a free-text
// search with no configured search fields, which scans a bounded
// candidate set client-side.
func (r *Repo[T]) GetPagedFiltered(ctx context.Context, p types.Pagination, f types.Filter) ([]T, int64, error) {
	p = p.Normalized()
	conds := r.compile(f.Filters, r.log)
	srt := r.compileSort(f)

	if f.SearchTerm != "" && len(r.searchFields) == 0 {
		return r.pagedScan(ctx, p, f.SearchTerm, conds, srt)
	}

	q := store.Query{Conditions: conds, Sort: srt, Skip: p.Skip(), Limit: p.PageSize}
	if f.SearchTerm != "" {
		q.Search = &store.Search{Term: f.SearchTerm, Fields: r.searchFields}
	}
	docs, err := r.st.Find(ctx, r.collection, q)
	if err != nil {
		return nil, 0, fmt.Errorf("page %s: %w", r.collection, err)
	}
	total, err := r.st.Count(ctx, r.collection, store.Query{Conditions: conds, Search: q.Search})
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", r.collection, err)
	}
	items, err := decodeDocuments[T](docs)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// pagedScan is the generic free-text fallback: fetch up to scanLimit
// candidates with everything else pushed down, then substring-match
// the serialized documents.
func (r *Repo[T]) pagedScan(ctx context.Context, p types.Pagination, term string, conds []store.Condition, srt *store.Sort) ([]T, int64, error) {
	docs, err := r.st.Find(ctx, r.collection, store.Query{Conditions: conds, Sort: srt, Limit: scanLimit})
	if err != nil {
		return nil, 0, fmt.Errorf("scan %s: %w", r.collection, err)
	}
	needle := strings.ToLower(term)
	var matched []store.Document
	for _, doc := range docs {
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", r.collection, err)
		}
		if strings.Contains(strings.ToLower(string(raw)), needle) {
			matched = append(matched, doc)
		}
	}
	total := int64(len(matched))
	skip := p.Skip()
	if skip >= len(matched) {
		return []T{}, total, nil
	}
	end := skip + p.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	items, err := decodeDocuments[T](matched[skip:end])
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Add inserts the entity and returns it with the store-assigned id.
// A rejected write is non-retryable.
func (r *Repo[T]) Add(ctx context.Context, e T) (T, error) {
	var zero T
	doc, err := encodeEntity(e)
	if err != nil {
		return zero, err
	}
	delete(doc, "id")
	inserted, err := r.st.InsertOne(ctx, r.collection, doc)
	if err != nil {
		return zero, fmt.Errorf("persist %s: %w", r.collection, err)
	}
	return decodeDocument[T](inserted)
}

// Update replaces the whole document by id. Returns errs.ErrNotFound
// when the record vanished between read and write.
func (r *Repo[T]) Update(ctx context.Context, e T) (T, error) {
	var zero T
	id := e.GetID()
	if !store.ValidKey(id) {
		return zero, fmt.Errorf("update %s: %w: invalid id %q", r.collection, errs.ErrInvalidArgument, id)
	}
	doc, err := encodeEntity(e)
	if err != nil {
		return zero, err
	}
	delete(doc, "id")
	replaced, err := r.st.ReplaceByID(ctx, r.collection, id, doc)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return zero, errs.ErrNotFound
		}
		return zero, fmt.Errorf("replace %s: %w", r.collection, err)
	}
	return decodeDocument[T](replaced)
}

// Delete reports whether a record was removed. Deleting an absent id
// returns (false, nil).
func (r *Repo[T]) Delete(ctx context.Context, id string) (bool, error) {
	if !store.ValidKey(id) {
		return false, nil
	}
	removed, err := r.st.DeleteByID(ctx, r.collection, id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", r.collection, err)
	}
	return removed, nil
}

func (r *Repo[T]) Exists(ctx context.Context, id string) (bool, error) {
	if !store.ValidKey(id) {
		return false, nil
	}
	n, err := r.st.Count(ctx, r.collection, store.Query{
		Conditions: []store.Condition{{Field: "id", Op: store.OpEq, Value: id}},
	})
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", r.collection, err)
	}
	return n > 0, nil
}

func (r *Repo[T]) Count(ctx context.Context, conds ...store.Condition) (int64, error) {
	n, err := r.st.Count(ctx, r.collection, store.Query{Conditions: conds})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r.collection, err)
	}
	return n, nil
}

func (r *Repo[T]) compileSort(f types.Filter) *store.Sort {
	if f.SortBy == "" {
		return &store.Sort{Field: "id"}
	}
	field, ok := r.sortFields[f.SortBy]
	if !ok {
		r.log.Debug("ignoring unknown sort field", "sort_by", f.SortBy)
		return &store.Sort{Field: "id"}
	}
	return &store.Sort{Field: field, Desc: f.SortDesc}
}

// findWhere is the relationship-query primitive for the specialized
// repositories. limit <= 0 means no limit; a nil sort keeps natural
// store order.
func (r *Repo[T]) findWhere(ctx context.Context, conds []store.Condition, srt *store.Sort, limit int) ([]T, error) {
	docs, err := r.st.Find(ctx, r.collection, store.Query{Conditions: conds, Sort: srt, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.collection, err)
	}
	return decodeDocuments[T](docs)
}

// compileEqualityFilters is the generic default: every named filter is
// an equality predicate on the field of the same name.
func compileEqualityFilters(filters map[string]string, _ *logger.Logger) []store.Condition {
	conds := make([]store.Condition, 0, len(filters))
	for _, key := range sortedKeys(filters) {
		conds = append(conds, store.Condition{Field: key, Op: store.OpEq, Value: filters[key]})
	}
	return conds
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func encodeEntity[T any](e T) (store.Document, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	var doc store.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	return doc, nil
}

func decodeDocument[T any](doc store.Document) (T, error) {
	var e T
	raw, err := json.Marshal(doc)
	if err != nil {
		return e, fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(raw, &e); err != nil {
		return e, fmt.Errorf("decode document: %w", err)
	}
	return e, nil
}

func decodeDocuments[T any](docs []store.Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		e, err := decodeDocument[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
