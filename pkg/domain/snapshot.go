package domain

import "github.com/shopspring/decimal"

// Snapshot is a full copy of every table, used for seeding and export. Slices
// are in table (key-sorted) order when produced by the store.
type Snapshot struct {
	Products          []Product          `json:"products"`
	Components        []Component        `json:"components"`
	Movements         []Movement         `json:"movements"`
	SupplierOrders    []SupplierOrder    `json:"supplier_orders"`
	Orders            []Order            `json:"orders"`
	ProcurementGroups []ProcurementGroup `json:"procurement_groups"`
	AssemblyTimelines []AssemblyTimeline `json:"assembly_timelines"`
	ProductionRates   []ProductionRate   `json:"production_rates"`
	ReorderPoints     []ReorderPoint     `json:"reorder_points"`
	Watches           []Watch            `json:"watches"`
}

// ProductSummary is the condensed product view reported by the inventory
// summary.
type ProductSummary struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	TotalAvailable    uint64 `json:"total_available"`
	ReservedForOrders uint64 `json:"reserved_for_orders"`
}

// ComponentSummary is the condensed component view reported by the inventory
// summary.
type ComponentSummary struct {
	ComponentID    string          `json:"component_id"`
	ComponentName  string          `json:"component_name"`
	TotalAvailable uint64          `json:"total_available"`
	OrderedSurplus decimal.Decimal `json:"ordered_surplus"`
}

// PendingOrder is an order that has not reached the completed status.
type PendingOrder struct {
	OrderID         string `json:"order_id"`
	OrderStatus     string `json:"order_status"`
	Product         string `json:"product"`
	QuantityOrdered uint64 `json:"quantity_ordered"`
}

// InventorySummary aggregates the views above for the summary endpoint and the
// bootstrap log.
type InventorySummary struct {
	Products      []ProductSummary   `json:"products"`
	Components    []ComponentSummary `json:"components"`
	PendingOrders []PendingOrder     `json:"pending_orders"`
}

// OrderStatusCompleted marks orders excluded from the pending-order summary.
const OrderStatusCompleted = "Completed"
