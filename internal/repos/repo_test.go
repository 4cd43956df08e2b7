package repos

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/realista-backend/internal/pkg/errs"
	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/store"
	"github.com/yungbote/realista-backend/internal/types"
)

func newOwnerFixture(t *testing.T) (OwnerRepo, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	return NewOwnerRepo(mem, logger.NewNop()), mem
}

func addOwner(t *testing.T, r OwnerRepo, name, address string) types.Owner {
	t.Helper()
	o, err := r.Add(context.Background(), types.Owner{
		Name:      name,
		Address:   address,
		Birthdate: time.Date(1980, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	return o
}

func TestOwnerLifecycle(t *testing.T) {
	r, _ := newOwnerFixture(t)
	ctx := context.Background()

	created := addOwner(t, r, "Ada Lovelace", "12 Analytical Way")
	if !strings.HasPrefix(created.ID, "owner:") {
		t.Fatalf("created.ID = %q, want owner: prefix", created.ID)
	}

	got, err := r.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Name != "Ada Lovelace" {
		t.Fatalf("GetByID = %+v, want the created owner", got)
	}
	if !got.Birthdate.Equal(created.Birthdate) {
		t.Fatalf("Birthdate = %v, want %v", got.Birthdate, created.Birthdate)
	}

	exists, err := r.Exists(ctx, created.ID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatal("Exists = false for a created owner")
	}

	got.Name = "Ada King"
	updated, err := r.Update(ctx, *got)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Ada King" || updated.ID != created.ID {
		t.Fatalf("Update = %+v", updated)
	}

	removed, err := r.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Fatal("Delete = false, want true")
	}

	got, err = r.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID after delete = %+v, want nil", got)
	}
}

func TestGetAll(t *testing.T) {
	mem := store.NewMemory()
	r := NewRepo[types.Owner](mem, types.CollectionOwner, logger.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := r.Add(ctx, types.Owner{Name: "N", Address: "A", Birthdate: time.Now().UTC()}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	all, err := r.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}
}

func TestGetByIDAbsentAndMalformed(t *testing.T) {
	r, _ := newOwnerFixture(t)
	ctx := context.Background()

	for _, id := range []string{"owner:missing", "not-a-key", ""} {
		got, err := r.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("GetByID(%q): %v", id, err)
		}
		if got != nil {
			t.Fatalf("GetByID(%q) = %+v, want nil", id, got)
		}
	}
}

func TestUpdateAbsentReturnsNotFound(t *testing.T) {
	r, _ := newOwnerFixture(t)
	_, err := r.Update(context.Background(), types.Owner{
		ID:        "owner:missing",
		Name:      "Nobody",
		Address:   "Nowhere",
		Birthdate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Update absent: err = %v, want errs.ErrNotFound", err)
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	r, _ := newOwnerFixture(t)
	for _, id := range []string{"owner:missing", "garbage"} {
		removed, err := r.Delete(context.Background(), id)
		if err != nil {
			t.Fatalf("Delete(%q): %v", id, err)
		}
		if removed {
			t.Fatalf("Delete(%q) = true, want false", id)
		}
	}
}

func TestGetPaged(t *testing.T) {
	r, _ := newOwnerFixture(t)
	for i := 0; i < 12; i++ {
		addOwner(t, r, "Owner "+string(rune('A'+i)), "Street")
	}

	items, total, err := r.GetPaged(context.Background(), types.Pagination{PageNumber: 2, PageSize: 5})
	if err != nil {
		t.Fatalf("GetPaged: %v", err)
	}
	if total != 12 {
		t.Fatalf("total = %d, want 12", total)
	}
	if len(items) != 5 {
		t.Fatalf("len(items) = %d, want 5", len(items))
	}
	if items[0].Name != "Owner F" {
		t.Fatalf("items[0].Name = %q, want the sixth insert", items[0].Name)
	}

	// a page past the end is empty but keeps the true total
	items, total, err = r.GetPaged(context.Background(), types.Pagination{PageNumber: 9, PageSize: 5})
	if err != nil {
		t.Fatalf("GetPaged: %v", err)
	}
	if len(items) != 0 || total != 12 {
		t.Fatalf("past-the-end page: len = %d total = %d", len(items), total)
	}
}

func TestGetPagedFilteredSearchAndSort(t *testing.T) {
	r, _ := newOwnerFixture(t)
	addOwner(t, r, "Carlos Sol", "Calle Mayor 1")
	addOwner(t, r, "Ana Luna", "Avenida del Sol 9")
	addOwner(t, r, "Berta Rio", "Paseo Verde 4")

	items, total, err := r.GetPagedFiltered(context.Background(),
		types.Pagination{PageNumber: 1, PageSize: 10},
		types.Filter{SearchTerm: "sol", SortBy: "name"},
	)
	if err != nil {
		t.Fatalf("GetPagedFiltered: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	if len(items) != 2 || items[0].Name != "Ana Luna" || items[1].Name != "Carlos Sol" {
		t.Fatalf("items = %+v, want the two sol matches sorted by name", items)
	}
}

func TestGetPagedFilteredNamedFilters(t *testing.T) {
	r, _ := newOwnerFixture(t)
	addOwner(t, r, "Carlos Sol", "Calle Mayor 1")
	addOwner(t, r, "Carla Soler", "Calle Menor 2")
	addOwner(t, r, "Ana Luna", "Calle Mayor 3")

	// name and address filters compose with AND
	items, total, err := r.GetPagedFiltered(context.Background(),
		types.Pagination{PageNumber: 1, PageSize: 10},
		types.Filter{Filters: map[string]string{"name": "carl", "address": "mayor"}},
	)
	if err != nil {
		t.Fatalf("GetPagedFiltered: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Name != "Carlos Sol" {
		t.Fatalf("items = %+v total = %d, want only Carlos Sol", items, total)
	}

	// unknown filter keys are ignored rather than failing the read
	_, total, err = r.GetPagedFiltered(context.Background(),
		types.Pagination{PageNumber: 1, PageSize: 10},
		types.Filter{Filters: map[string]string{"name": "carl", "bogus": "x"}},
	)
	if err != nil {
		t.Fatalf("GetPagedFiltered: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2 with the unknown key ignored", total)
	}
}

func TestGetPagedFilteredUnknownSortFallsBack(t *testing.T) {
	r, _ := newOwnerFixture(t)
	addOwner(t, r, "B", "x")
	addOwner(t, r, "A", "y")

	items, _, err := r.GetPagedFiltered(context.Background(),
		types.Pagination{PageNumber: 1, PageSize: 10},
		types.Filter{SortBy: "nonsense"},
	)
	if err != nil {
		t.Fatalf("GetPagedFiltered: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
}

// A repository without configured search fields serves the free-text
// term through the bounded client-side scan.
func TestSearchFallbackScan(t *testing.T) {
	mem := store.NewMemory()
	r := NewRepo[types.Owner](mem, types.CollectionOwner, logger.NewNop())

	ctx := context.Background()
	for _, name := range []string{"Carlos Sol", "Ana Luna", "Luis Solano"} {
		if _, err := r.Add(ctx, types.Owner{Name: name, Address: "x", Birthdate: time.Now().UTC()}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	items, total, err := r.GetPagedFiltered(ctx,
		types.Pagination{PageNumber: 1, PageSize: 1},
		types.Filter{SearchTerm: "SOL"},
	)
	if err != nil {
		t.Fatalf("GetPagedFiltered: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2 scan matches", total)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want the page size to bound the result", len(items))
	}

	items, _, err = r.GetPagedFiltered(ctx,
		types.Pagination{PageNumber: 2, PageSize: 1},
		types.Filter{SearchTerm: "SOL"},
	)
	if err != nil {
		t.Fatalf("GetPagedFiltered page 2: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("page 2: len(items) = %d, want 1", len(items))
	}
}

// Past scanLimit candidates the fallback stops looking, so the
// reported total is capped at the bound.
func TestSearchFallbackScanBounded(t *testing.T) {
	mem := store.NewMemory()
	r := NewRepo[types.Owner](mem, types.CollectionOwner, logger.NewNop())
	ctx := context.Background()

	birthdate := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < scanLimit+50; i++ {
		if _, err := r.Add(ctx, types.Owner{Name: "Sol Resident", Address: "x", Birthdate: birthdate}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	items, total, err := r.GetPagedFiltered(ctx,
		types.Pagination{PageNumber: 1, PageSize: 100},
		types.Filter{SearchTerm: "sol"},
	)
	if err != nil {
		t.Fatalf("GetPagedFiltered: %v", err)
	}
	if total != int64(scanLimit) {
		t.Fatalf("total = %d, want the scan bound %d", total, scanLimit)
	}
	if len(items) != 100 {
		t.Fatalf("len(items) = %d, want a full first page", len(items))
	}

	// the last page inside the bound is full
	items, _, err = r.GetPagedFiltered(ctx,
		types.Pagination{PageNumber: scanLimit / 100, PageSize: 100},
		types.Filter{SearchTerm: "sol"},
	)
	if err != nil {
		t.Fatalf("GetPagedFiltered last page: %v", err)
	}
	if len(items) != 100 {
		t.Fatalf("last page len = %d, want 100", len(items))
	}

	// a page past the bound is empty even though more records exist
	items, total, err = r.GetPagedFiltered(ctx,
		types.Pagination{PageNumber: scanLimit/100 + 1, PageSize: 100},
		types.Filter{SearchTerm: "sol"},
	)
	if err != nil {
		t.Fatalf("GetPagedFiltered past the bound: %v", err)
	}
	if len(items) != 0 || total != int64(scanLimit) {
		t.Fatalf("past the bound: len = %d total = %d", len(items), total)
	}
}

func TestAddStripsCallerID(t *testing.T) {
	r, _ := newOwnerFixture(t)
	created, err := r.Add(context.Background(), types.Owner{
		ID:        "owner:caller-picked",
		Name:      "N",
		Address:   "A",
		Birthdate: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created.ID == "owner:caller-picked" {
		t.Fatal("Add kept the caller-supplied id, want a store-assigned key")
	}
}
