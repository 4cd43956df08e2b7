package repos

import (
	"context"
	"testing"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/store"
	"github.com/yungbote/realista-backend/internal/types"
)

func TestMainImage(t *testing.T) {
	r := NewPropertyImageRepo(store.NewMemory(), logger.NewNop())
	ctx := context.Background()

	add := func(propertyID, file string, enabled bool) types.PropertyImage {
		t.Helper()
		img, err := r.Add(ctx, types.PropertyImage{IDProperty: propertyID, File: file, Enabled: enabled})
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		return img
	}

	add("property:a", "https://img.test/disabled.jpg", false)
	first := add("property:a", "https://img.test/first.jpg", true)
	add("property:a", "https://img.test/second.jpg", true)
	add("property:b", "https://img.test/other.jpg", true)

	main, err := r.MainImage(ctx, "property:a")
	if err != nil {
		t.Fatalf("MainImage: %v", err)
	}
	if main == nil || main.ID != first.ID {
		t.Fatalf("MainImage = %+v, want the first enabled image", main)
	}

	// no enabled image means no main image, not an error
	add("property:c", "https://img.test/off.jpg", false)
	main, err = r.MainImage(ctx, "property:c")
	if err != nil {
		t.Fatalf("MainImage: %v", err)
	}
	if main != nil {
		t.Fatalf("MainImage = %+v, want nil", main)
	}
}

func TestImagesByProperty(t *testing.T) {
	r := NewPropertyImageRepo(store.NewMemory(), logger.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := r.Add(ctx, types.PropertyImage{IDProperty: "property:a", File: "https://img.test/a.jpg", Enabled: true}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if _, err := r.Add(ctx, types.PropertyImage{IDProperty: "property:b", File: "https://img.test/b.jpg", Enabled: true}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	images, err := r.ImagesByProperty(ctx, "property:a")
	if err != nil {
		t.Fatalf("ImagesByProperty: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("len(images) = %d, want 3", len(images))
	}

	images, err = r.ImagesByProperty(ctx, "property:none")
	if err != nil {
		t.Fatalf("ImagesByProperty: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("len(images) = %d, want 0", len(images))
	}
}
