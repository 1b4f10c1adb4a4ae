package catalog_test

import (
	"errors"
	"testing"

	"github.com/noah-isme/backend-kasir/internal/catalog"
	"github.com/noah-isme/backend-kasir/internal/money"
)

func TestStoreAddGetList(t *testing.T) {
	t.Parallel()

	store := catalog.NewStore()
	first, err := catalog.NewStandard("TV", money.MustParse("300"), 7)
	if err != nil {
		t.Fatalf("new product: %v", err)
	}
	second, err := catalog.NewStandard("Mobile", money.MustParse("150"), 4)
	if err != nil {
		t.Fatalf("new product: %v", err)
	}

	if err := store.Add(first); err != nil {
		t.Fatalf("add first: %v", err)
	}
	if err := store.Add(second); err != nil {
		t.Fatalf("add second: %v", err)
	}
	if err := store.Add(first); !errors.Is(err, catalog.ErrInvalidInput) {
		t.Fatalf("expected duplicate add to fail, got %v", err)
	}
	if err := store.Add(nil); !errors.Is(err, catalog.ErrInvalidInput) {
		t.Fatalf("expected nil add to fail, got %v", err)
	}

	got, err := store.Get(first.ID())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != first {
		t.Fatalf("expected same product instance back")
	}

	if _, err := store.Get(catalog.ProductID("missing")); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list := store.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 products, got %d", len(list))
	}
	if list[0].Name() != "TV" || list[1].Name() != "Mobile" {
		t.Fatalf("expected registration order, got %s then %s", list[0].Name(), list[1].Name())
	}
}
