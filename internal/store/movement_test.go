package store

import (
	"errors"
	"testing"
	"time"

	"invcore/pkg/domain"
)

func testComponent(id string, levels domain.StockLevels) domain.Component {
	return domain.Component{
		ComponentID:   id,
		ComponentName: "Premium Dial",
		ProductID:     "PROD-001",
		ProductName:   "BP Watch",
		StockLevels:   levels,
	}
}

func testMovement(id, component string, from, to domain.Location, qty uint64) domain.Movement {
	return domain.Movement{
		MovementID:          id,
		TransactionID:       "TX-" + id,
		Date:                time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC),
		MovementType:        "Component",
		ComponentName:       component,
		SourceLocation:      from,
		DestinationLocation: to,
		Quantity:            qty,
		Status:              "Completed",
	}
}

func TestRecordMovementAdjustsBothLocations(t *testing.T) {
	s := openTestStore(t)

	if err := s.PutProduct(domain.Product{
		ProductID:   "PROD-001",
		ProductName: "BP Watch",
		StockLevels: domain.StockLevels{Wurenlos: 200},
	}); err != nil {
		t.Fatalf("put product: %v", err)
	}
	if err := s.PutComponent(testComponent("COMP-001", domain.StockLevels{Wurenlos: 80, CN: 40})); err != nil {
		t.Fatalf("put component: %v", err)
	}

	m := testMovement("MOVE-100", "COMP-001", domain.LocationCN, domain.LocationWurenlos, 10)
	if err := s.RecordMovement(m); err != nil {
		t.Fatalf("record movement: %v", err)
	}

	component, found, err := s.GetComponent("COMP-001")
	if err != nil || !found {
		t.Fatalf("get component: found=%v err=%v", found, err)
	}
	if component.CN != 30 {
		t.Fatalf("source not debited: cn=%d, want 30", component.CN)
	}
	if component.Wurenlos != 90 {
		t.Fatalf("destination not credited: wurenlos=%d, want 90", component.Wurenlos)
	}
	// Untouched fields stay untouched.
	if component.Kling != 0 || component.TotalAvailable != 0 {
		t.Fatalf("unrelated fields changed: %+v", component.StockLevels)
	}

	got, found, err := s.GetMovement("MOVE-100")
	if err != nil || !found {
		t.Fatalf("get movement: found=%v err=%v", found, err)
	}
	if got != m {
		t.Fatalf("movement altered on persist:\n got %+v\nwant %+v", got, m)
	}
}

func TestRecordMovementConservation(t *testing.T) {
	s := openTestStore(t)

	start := domain.StockLevels{CN: 100, Kling: 50, StJakob: 30, Wurenlos: 80, FLF: 60}
	if err := s.PutComponent(testComponent("COMP-010", start)); err != nil {
		t.Fatalf("put component: %v", err)
	}

	if err := s.RecordMovement(testMovement("MOVE-200", "COMP-010", domain.LocationKling, domain.LocationFLF, 25)); err != nil {
		t.Fatalf("record movement: %v", err)
	}

	component, _, err := s.GetComponent("COMP-010")
	if err != nil {
		t.Fatalf("get component: %v", err)
	}
	if component.Kling != start.Kling-25 {
		t.Fatalf("kling: got %d, want %d", component.Kling, start.Kling-25)
	}
	if component.FLF != start.FLF+25 {
		t.Fatalf("flf: got %d, want %d", component.FLF, start.FLF+25)
	}
	if component.CN != start.CN || component.StJakob != start.StJakob || component.Wurenlos != start.Wurenlos {
		t.Fatalf("other locations changed: %+v", component.StockLevels)
	}
}

func TestRecordMovementMissingComponent(t *testing.T) {
	s := openTestStore(t)

	m := testMovement("MOVE-300", "COMP-MISSING", domain.LocationCN, domain.LocationWurenlos, 5)
	if err := s.RecordMovement(m); err != nil {
		t.Fatalf("record movement: %v", err)
	}

	// The movement is persisted, and the component is not conjured up.
	if _, found, _ := s.GetMovement("MOVE-300"); !found {
		t.Fatal("expected movement record to persist")
	}
	if _, found, _ := s.GetComponent("COMP-MISSING"); found {
		t.Fatal("movement must not create the component")
	}
}

func TestRecordMovementStrictComponents(t *testing.T) {
	s := openTestStore(t, WithStrictComponents())

	err := s.RecordMovement(testMovement("MOVE-310", "COMP-MISSING", domain.LocationCN, domain.LocationWurenlos, 5))
	var unknown domain.UnknownComponentError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownComponentError, got %v", err)
	}
	if _, found, _ := s.GetMovement("MOVE-310"); found {
		t.Fatal("rejected movement must not be persisted")
	}
}

func TestRecordMovementWithoutComponentName(t *testing.T) {
	s := openTestStore(t)

	m := testMovement("MOVE-320", "", domain.LocationCN, domain.LocationWurenlos, 5)
	m.MovementType = "Product"
	m.ProductName = "BP Watch"
	if err := s.RecordMovement(m); err != nil {
		t.Fatalf("record movement: %v", err)
	}
	if _, found, _ := s.GetMovement("MOVE-320"); !found {
		t.Fatal("expected movement record to persist")
	}
}

func TestRecordMovementUnderflowRejectedAtomically(t *testing.T) {
	s := openTestStore(t)

	if err := s.PutComponent(testComponent("COMP-020", domain.StockLevels{CN: 5, Wurenlos: 80})); err != nil {
		t.Fatalf("put component: %v", err)
	}

	err := s.RecordMovement(testMovement("MOVE-400", "COMP-020", domain.LocationCN, domain.LocationWurenlos, 10))
	var insufficient domain.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.Available != 5 || insufficient.Requested != 10 || insufficient.Location != domain.LocationCN {
		t.Fatalf("unexpected error detail: %+v", insufficient)
	}

	// Nothing from the failed transaction is observable.
	component, _, err := s.GetComponent("COMP-020")
	if err != nil {
		t.Fatalf("get component: %v", err)
	}
	if component.CN != 5 || component.Wurenlos != 80 {
		t.Fatalf("partial adjustment leaked: %+v", component.StockLevels)
	}
	if _, found, _ := s.GetMovement("MOVE-400"); found {
		t.Fatal("movement from failed transaction must not exist")
	}
}

func TestRecordMovementUnknownLocation(t *testing.T) {
	s := openTestStore(t)

	if err := s.PutComponent(testComponent("COMP-030", domain.StockLevels{CN: 50})); err != nil {
		t.Fatalf("put component: %v", err)
	}

	m := testMovement("MOVE-500", "COMP-030", "Atlantis", domain.LocationCN, 5)
	err := s.RecordMovement(m)
	var unknown domain.UnknownLocationError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownLocationError, got %v", err)
	}
	if unknown.Tag != "Atlantis" {
		t.Fatalf("unexpected tag: %q", unknown.Tag)
	}

	m = testMovement("MOVE-501", "COMP-030", domain.LocationCN, "Nowhere", 5)
	if err := s.RecordMovement(m); !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownLocationError for destination, got %v", err)
	}

	if _, found, _ := s.GetMovement("MOVE-500"); found {
		t.Fatal("movement with invalid location must not be persisted")
	}
}

func TestRecordMovementRequiresID(t *testing.T) {
	s := openTestStore(t)

	m := testMovement("", "COMP-001", domain.LocationCN, domain.LocationWurenlos, 1)
	if err := s.RecordMovement(m); err == nil {
		t.Fatal("expected error for empty movement id")
	}
}
