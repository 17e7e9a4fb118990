// Package domain defines the persistent record types, the closed location
// enumeration, and the typed errors shared by the storage core and the HTTP
// boundary of invcore.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevels carries the per-location quantities and aggregate counters shared
// by products and components. The five location fields are addressed through
// the Location enumeration; the aggregate counters (total available, reserved,
// waste, in transit, sold, customer) are caller-maintained and never recomputed
// by the store.
type StockLevels struct {
	CN                uint64 `json:"cn"`
	Kling             uint64 `json:"kling"`
	StJakob           uint64 `json:"st_jakob"`
	Wurenlos          uint64 `json:"wurenlos"`
	WurenlosSold      uint64 `json:"wurenlos_sold"`
	FLF               uint64 `json:"flf"`
	InTransit         uint64 `json:"in_transit"`
	TotalAvailable    uint64 `json:"total_available"`
	ReservedForOrders uint64 `json:"reserved_for_orders"`
	Waste             uint64 `json:"waste"`
	Customer          uint64 `json:"customer"`
}

// Product is a finished good. Components holds weak references to Component ids;
// the list, when present, contains no duplicates (maintained by the relationship
// manager, not enforced by storage).
type Product struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	Components  []string `json:"components,omitempty"`
	StockLevels
}

// Component is a constituent part of a product. The product back-reference is
// informational only; no referential integrity is enforced.
type Component struct {
	ComponentID   string `json:"component_id"`
	ComponentName string `json:"component_name"`
	ProductID     string `json:"product_id,omitempty"`
	ProductName   string `json:"product_name,omitempty"`
	StockLevels
	OrderedSurplus decimal.Decimal `json:"ordered_surplus"`
	AssemblyLine   uint64          `json:"assembly_line"`
}

// Movement is the audit record of one atomic stock transfer. It is created once
// by the movement processor and immutable thereafter.
type Movement struct {
	MovementID          string    `json:"movement_id"`
	TransactionID       string    `json:"transaction_id"`
	Date                time.Time `json:"date"`
	MovementType        string    `json:"movement_type"`
	ComponentName       string    `json:"component_name,omitempty"`
	ProductName         string    `json:"product_name,omitempty"`
	SourceLocation      Location  `json:"source_location"`
	DestinationLocation Location  `json:"destination_location"`
	Quantity            uint64    `json:"quantity"`
	Notes               string    `json:"notes,omitempty"`
	Status              string    `json:"status"`
	SupplierOrderID     string    `json:"supplier_order_id,omitempty"`
}

// SupplierOrder records a purchase from a supplier, linked to a procurement.
type SupplierOrder struct {
	OrderID                 string    `json:"order_id"`
	SupplierID              string    `json:"supplier_id"`
	ComponentName           string    `json:"component_name"`
	ProcurementID           string    `json:"procurement_id"`
	TotalComponentsRequired uint64    `json:"total_components_required"`
	ComponentsRoundoff      uint64    `json:"components_roundoff"`
	Status                  string    `json:"status"`
	OrderDate               time.Time `json:"order_date"`
	ExpectedDeliveryDate    time.Time `json:"expected_delivery_date"`
}

// Order is a customer order for a product. All linked ids are plain strings
// with no cascade or validation; keeping dangling references consistent is a
// caller responsibility.
type Order struct {
	OrderID               string    `json:"order_id"`
	Procurements          []string  `json:"procurements,omitempty"`
	SupplierOrders        []string  `json:"supplier_orders,omitempty"`
	QuantityOrdered       uint64    `json:"quantity_ordered"`
	ProductID             string    `json:"product_id"`
	Product               string    `json:"product"`
	QuantityRequired      uint64    `json:"quantity_required"`
	ExpectedDeliveryDate  time.Time `json:"expected_delivery_date"`
	ProductionStartDate   time.Time `json:"production_start_date"`
	ExpectedShipDate      time.Time `json:"expected_ship_date"`
	RecID                 string    `json:"rec_id"`
	OrderStatus           string    `json:"order_status"`
	TotalComponentsBooked uint64    `json:"total_components_booked"`
	ComponentsNotes       string    `json:"components_notes,omitempty"`
	ComponentsRequired    uint64    `json:"components_required"`
	TotalGapComponents    []uint64  `json:"total_gap_components,omitempty"`
	Components            []string  `json:"components,omitempty"`
}

// Procurement is one procurement line owned by a ProcurementGroup. It has no
// independent table of its own.
type Procurement struct {
	ProcurementID string   `json:"procurement_id"`
	OrderID       string   `json:"order_id"`
	Components    []string `json:"components,omitempty"`
	Quantity      uint64   `json:"quantity"`
	Status        string   `json:"status"`
	Product       string   `json:"product"`
}

// ProcurementGroup bundles the procurement lines raised for one order. The
// group exclusively owns its Procurement list.
type ProcurementGroup struct {
	ProcurementID string        `json:"procurement_id"`
	OrderID       string        `json:"order_id"`
	Procurements  []Procurement `json:"procurements"`
}

// AssemblyTimeline tracks the assembly schedule for one order.
type AssemblyTimeline struct {
	AssemblyID             string    `json:"assembly_id"`
	Order                  string    `json:"order"`
	Product                string    `json:"product"`
	Movements              []string  `json:"movements"`
	ComponentsRequired     uint64    `json:"components_required"`
	TotalComponentsBooked  uint64    `json:"total_components_booked"`
	Components             []string  `json:"components"`
	TotalGapComponents     []uint64  `json:"total_gap_components,omitempty"`
	AssemblyLocation       string    `json:"assembly_location"`
	ComponentsReceivedDate time.Time `json:"components_received_date"`
	AssemblyStartDate      time.Time `json:"assembly_start_date"`
	AssemblyEndDate        time.Time `json:"assembly_end_date"`
	AssemblyStatus         string    `json:"assembly_status"`
	TotalDuration          uint64    `json:"total_duration"`
	AssemblyNotes          string    `json:"assembly_notes,omitempty"`
}

// ProductionRate is pure reference data: how fast a watch model can be built.
type ProductionRate struct {
	ProductionRateID        string `json:"production_rate_id"`
	WatchModelID            string `json:"watch_model_id"`
	AssemblyTimePerWatch    uint64 `json:"assembly_time_per_watch"`
	DailyProductionCapacity uint64 `json:"daily_production_capacity"`
}

// ReorderPoint stores an externally computed reprocurement threshold for a
// component. None of the numeric fields are derived by this system.
type ReorderPoint struct {
	ReorderPointID    string          `json:"reorder_point_id"`
	ComponentName     string          `json:"component_name"`
	SupplierLeadTime  uint64          `json:"supplier_lead_time"`
	AssumedDailyUsage decimal.Decimal `json:"assumed_daily_usage"`
	LeadTimeDemand    decimal.Decimal `json:"lead_time_demand"`
	SafetyStock       decimal.Decimal `json:"safety_stock"`
	ReorderPoint      uint64          `json:"reorder_point"`
	NeedToOrder       bool            `json:"need_to_order"`
}

// Watch maps a watch model to one required component and its per-unit quantity.
type Watch struct {
	WatchID          string `json:"watch_id"`
	WatchModelID     string `json:"watch_model_id"`
	Brand            string `json:"brand"`
	ComponentID      string `json:"component_id"`
	RequiredQuantity uint64 `json:"required_quantity"`
}
