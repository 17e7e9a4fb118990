package store

import (
	"testing"

	"invcore/pkg/domain"
)

func TestAddComponentToProductIdempotent(t *testing.T) {
	s := openTestStore(t)

	if err := s.PutProduct(domain.Product{ProductID: "PROD-001", ProductName: "BP Watch"}); err != nil {
		t.Fatalf("put product: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := s.AddComponentToProduct("PROD-001", "COMP-001"); err != nil {
			t.Fatalf("link attempt %d: %v", i+1, err)
		}
	}

	product, _, err := s.GetProduct("PROD-001")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if len(product.Components) != 1 || product.Components[0] != "COMP-001" {
		t.Fatalf("expected exactly one COMP-001 link, got %v", product.Components)
	}

	// A second component appends without disturbing the first.
	if err := s.AddComponentToProduct("PROD-001", "COMP-002"); err != nil {
		t.Fatalf("link second component: %v", err)
	}
	product, _, _ = s.GetProduct("PROD-001")
	if len(product.Components) != 2 || product.Components[1] != "COMP-002" {
		t.Fatalf("unexpected component list: %v", product.Components)
	}
}

func TestAddComponentToMissingProductIsNoOp(t *testing.T) {
	s := openTestStore(t)

	if err := s.AddComponentToProduct("PROD-MISSING", "COMP-001"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if _, found, _ := s.GetProduct("PROD-MISSING"); found {
		t.Fatal("linking must not create the product")
	}
}

func TestProductComponentsResolvesRecords(t *testing.T) {
	s := openTestStore(t)

	if err := s.PutProduct(domain.Product{
		ProductID:   "PROD-001",
		ProductName: "BP Watch",
		Components:  []string{"COMP-001", "COMP-DANGLING", "COMP-002"},
	}); err != nil {
		t.Fatalf("put product: %v", err)
	}
	for _, id := range []string{"COMP-001", "COMP-002"} {
		if err := s.PutComponent(domain.Component{ComponentID: id, ComponentName: id}); err != nil {
			t.Fatalf("put component %s: %v", id, err)
		}
	}

	components, err := s.ProductComponents("PROD-001")
	if err != nil {
		t.Fatalf("product components: %v", err)
	}
	if len(components) != 2 {
		t.Fatalf("expected dangling id to be skipped, got %d records", len(components))
	}
	if components[0].ComponentID != "COMP-001" || components[1].ComponentID != "COMP-002" {
		t.Fatalf("unexpected components: %+v", components)
	}
}

func TestProductComponentsMissingAndEmptyLookAlike(t *testing.T) {
	s := openTestStore(t)

	if err := s.PutProduct(domain.Product{ProductID: "PROD-EMPTY", ProductName: "Bare"}); err != nil {
		t.Fatalf("put product: %v", err)
	}

	forMissing, err := s.ProductComponents("PROD-MISSING")
	if err != nil {
		t.Fatalf("components of missing product: %v", err)
	}
	forEmpty, err := s.ProductComponents("PROD-EMPTY")
	if err != nil {
		t.Fatalf("components of empty product: %v", err)
	}
	if len(forMissing) != 0 || len(forEmpty) != 0 {
		t.Fatalf("expected two empty lists, got %d and %d", len(forMissing), len(forEmpty))
	}
}
