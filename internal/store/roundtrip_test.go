package store_test

import (
	"reflect"
	"testing"

	"invcore/internal/seed"
	"invcore/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return s
}

// Every record in the sample dataset must survive a write and a read without
// any field changing, across all ten tables.
func TestSampleDatasetRoundTrips(t *testing.T) {
	s := openStore(t)

	sample := seed.Sample()
	if err := s.ImportSnapshot(sample); err != nil {
		t.Fatalf("import snapshot: %v", err)
	}

	exported, err := s.ExportSnapshot()
	if err != nil {
		t.Fatalf("export snapshot: %v", err)
	}
	if !reflect.DeepEqual(exported, sample) {
		t.Fatalf("exported snapshot differs from imported one:\ngot  %+v\nwant %+v", exported, sample)
	}
}

func TestSampleDatasetPerTableReads(t *testing.T) {
	s := openStore(t)
	if err := seed.Apply(s); err != nil {
		t.Fatalf("apply seed: %v", err)
	}

	sample := seed.Sample()

	product, found, err := s.GetProduct(sample.Products[0].ProductID)
	if err != nil || !found {
		t.Fatalf("get product: found=%v err=%v", found, err)
	}
	if !reflect.DeepEqual(product, sample.Products[0]) {
		t.Fatalf("product mismatch:\ngot  %+v\nwant %+v", product, sample.Products[0])
	}

	component, found, err := s.GetComponent(sample.Components[0].ComponentID)
	if err != nil || !found {
		t.Fatalf("get component: found=%v err=%v", found, err)
	}
	if !component.OrderedSurplus.Equal(sample.Components[0].OrderedSurplus) {
		t.Fatalf("ordered surplus mismatch: got %s want %s",
			component.OrderedSurplus, sample.Components[0].OrderedSurplus)
	}

	movement, found, err := s.GetMovement(sample.Movements[0].MovementID)
	if err != nil || !found {
		t.Fatalf("get movement: found=%v err=%v", found, err)
	}
	if !movement.Date.Equal(sample.Movements[0].Date) {
		t.Fatalf("movement date mismatch: got %s want %s", movement.Date, sample.Movements[0].Date)
	}

	reorder, found, err := s.GetReorderPoint(sample.ReorderPoints[0].ReorderPointID)
	if err != nil || !found {
		t.Fatalf("get reorder point: found=%v err=%v", found, err)
	}
	if !reorder.LeadTimeDemand.Equal(sample.ReorderPoints[0].LeadTimeDemand) {
		t.Fatalf("lead time demand mismatch: got %s want %s",
			reorder.LeadTimeDemand, sample.ReorderPoints[0].LeadTimeDemand)
	}
}

func TestSeedApplyIsIdempotent(t *testing.T) {
	s := openStore(t)

	for i := 0; i < 2; i++ {
		if err := seed.Apply(s); err != nil {
			t.Fatalf("apply seed (run %d): %v", i+1, err)
		}
	}

	sn, err := s.ExportSnapshot()
	if err != nil {
		t.Fatalf("export snapshot: %v", err)
	}
	counts := map[string]int{
		"products":           len(sn.Products),
		"components":         len(sn.Components),
		"movements":          len(sn.Movements),
		"supplier orders":    len(sn.SupplierOrders),
		"orders":             len(sn.Orders),
		"procurement groups": len(sn.ProcurementGroups),
		"assembly timelines": len(sn.AssemblyTimelines),
		"production rates":   len(sn.ProductionRates),
		"reorder points":     len(sn.ReorderPoints),
		"watches":            len(sn.Watches),
	}
	want := map[string]int{
		"products": 1, "components": 2, "movements": 1, "supplier orders": 1,
		"orders": 1, "procurement groups": 1, "assembly timelines": 1,
		"production rates": 1, "reorder points": 1, "watches": 1,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("unexpected record counts after reseeding: %v", counts)
	}
}

// Reseeding replaces prior contents rather than merging into them.
func TestSeedReplacesExistingRecords(t *testing.T) {
	s := openStore(t)
	if err := seed.Apply(s); err != nil {
		t.Fatalf("apply seed: %v", err)
	}

	product, _, err := s.GetProduct("PROD-001")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	product.ProductName = "Renamed"
	if err := s.PutProduct(product); err != nil {
		t.Fatalf("put product: %v", err)
	}

	if err := seed.Apply(s); err != nil {
		t.Fatalf("reapply seed: %v", err)
	}
	product, _, err = s.GetProduct("PROD-001")
	if err != nil {
		t.Fatalf("get product after reseed: %v", err)
	}
	if product.ProductName != "BP Watch" {
		t.Fatalf("expected reseed to restore the sample name, got %q", product.ProductName)
	}
}
