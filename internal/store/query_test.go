package store

import (
	"errors"
	"testing"

	"invcore/pkg/domain"
)

func TestLevelsByLocation(t *testing.T) {
	s := openTestStore(t)

	dial := domain.Component{ComponentID: "COMP-001", ComponentName: "Premium Dial"}
	dial.CN = 40
	dial.Wurenlos = 80
	hands := domain.Component{ComponentID: "COMP-002", ComponentName: "Luminous Hands"}
	hands.CN = 15
	for _, c := range []domain.Component{dial, hands} {
		if err := s.PutComponent(c); err != nil {
			t.Fatalf("put component %s: %v", c.ComponentID, err)
		}
	}

	levels, err := s.LevelsByLocation(domain.LocationCN)
	if err != nil {
		t.Fatalf("levels by location: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("expected one entry per component, got %v", levels)
	}
	if levels["Premium Dial"] != 40 || levels["Luminous Hands"] != 15 {
		t.Fatalf("unexpected levels: %v", levels)
	}

	levels, err = s.LevelsByLocation(domain.LocationWurenlos)
	if err != nil {
		t.Fatalf("levels by location: %v", err)
	}
	if levels["Premium Dial"] != 80 || levels["Luminous Hands"] != 0 {
		t.Fatalf("unexpected levels: %v", levels)
	}
}

func TestLevelsByLocationRejectsUnknownTag(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LevelsByLocation(domain.Location("Atlantis"))
	var unknown domain.UnknownLocationError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownLocationError, got %v", err)
	}
	if unknown.Tag != "Atlantis" {
		t.Fatalf("unexpected tag in error: %q", unknown.Tag)
	}
}

func TestSummarySkipsCompletedOrders(t *testing.T) {
	s := openTestStore(t)

	if err := s.PutProduct(domain.Product{ProductID: "PROD-001", ProductName: "BP Watch"}); err != nil {
		t.Fatalf("put product: %v", err)
	}
	if err := s.PutComponent(domain.Component{ComponentID: "COMP-001", ComponentName: "Premium Dial"}); err != nil {
		t.Fatalf("put component: %v", err)
	}
	pending := domain.Order{OrderID: "ORD-001", OrderStatus: "Processing", Product: "BP Watch", QuantityOrdered: 150}
	done := domain.Order{OrderID: "ORD-002", OrderStatus: domain.OrderStatusCompleted, Product: "BP Watch", QuantityOrdered: 40}
	for _, o := range []domain.Order{pending, done} {
		if err := s.PutOrder(o); err != nil {
			t.Fatalf("put order %s: %v", o.OrderID, err)
		}
	}

	summary, err := s.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(summary.Products) != 1 || summary.Products[0].ProductID != "PROD-001" {
		t.Fatalf("unexpected product summaries: %+v", summary.Products)
	}
	if len(summary.Components) != 1 || summary.Components[0].ComponentName != "Premium Dial" {
		t.Fatalf("unexpected component summaries: %+v", summary.Components)
	}
	if len(summary.PendingOrders) != 1 {
		t.Fatalf("expected the completed order to be excluded, got %+v", summary.PendingOrders)
	}
	if got := summary.PendingOrders[0]; got.OrderID != "ORD-001" || got.QuantityOrdered != 150 {
		t.Fatalf("unexpected pending order: %+v", got)
	}
}

func TestSummaryOnEmptyStore(t *testing.T) {
	s := openTestStore(t)

	summary, err := s.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Products == nil || summary.Components == nil || summary.PendingOrders == nil {
		t.Fatal("summary slices must be non-nil so JSON encodes empty arrays")
	}
	if len(summary.Products)+len(summary.Components)+len(summary.PendingOrders) != 0 {
		t.Fatalf("expected an empty summary, got %+v", summary)
	}
}
