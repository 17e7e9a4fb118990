// Package seed provides the development sample dataset. Applying it replaces
// the entire contents of the store, so it is guarded by a config flag and
// never used in production deployments.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"invcore/internal/store"
	"invcore/pkg/domain"
)

// Apply clears every table and loads the sample dataset in one transaction.
func Apply(s *store.Store) error {
	return s.ImportSnapshot(Sample())
}

// Sample returns the canonical demo dataset: one product with two linked
// components, plus one record for each remaining table.
func Sample() domain.Snapshot {
	day := time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC)

	return domain.Snapshot{
		Products: []domain.Product{{
			ProductID:   "PROD-001",
			ProductName: "BP Watch",
			Components:  []string{"COMP-001", "COMP-002"},
			StockLevels: domain.StockLevels{
				CN:                100,
				Kling:             50,
				StJakob:           75,
				Wurenlos:          200,
				WurenlosSold:      25,
				FLF:               150,
				InTransit:         30,
				TotalAvailable:    600,
				ReservedForOrders: 150,
				Waste:             5,
			},
		}},
		Components: []domain.Component{
			{
				ComponentID:   "COMP-001",
				ComponentName: "Premium Dial",
				ProductID:     "PROD-001",
				ProductName:   "BP Watch",
				StockLevels: domain.StockLevels{
					CN:                40,
					Kling:             20,
					StJakob:           30,
					Wurenlos:          80,
					WurenlosSold:      10,
					FLF:               60,
					InTransit:         15,
					TotalAvailable:    245,
					ReservedForOrders: 60,
					Waste:             2,
				},
				OrderedSurplus: decimal.NewFromFloat(25.5),
			},
			{
				ComponentID:   "COMP-002",
				ComponentName: "Luminous Hands",
				ProductID:     "PROD-001",
				ProductName:   "BP Watch",
				StockLevels: domain.StockLevels{
					CN:                35,
					Kling:             15,
					StJakob:           25,
					Wurenlos:          70,
					WurenlosSold:      8,
					FLF:               50,
					InTransit:         12,
					TotalAvailable:    215,
					ReservedForOrders: 45,
					Waste:             1,
				},
				OrderedSurplus: decimal.NewFromFloat(18.0),
			},
		},
		Movements: []domain.Movement{{
			MovementID:          "MOVE-001",
			TransactionID:       "TRANS-001",
			Date:                day,
			MovementType:        "Component",
			ComponentName:       "Premium Dial",
			SourceLocation:      domain.LocationCN,
			DestinationLocation: domain.LocationWurenlos,
			Quantity:            10,
			Notes:               "Regular stock transfer",
			Status:              "Completed",
		}},
		SupplierOrders: []domain.SupplierOrder{{
			OrderID:                 "SUPP-ORD-001",
			SupplierID:              "SUPP-001",
			ComponentName:           "Sapphire Crystal",
			ProcurementID:           "PROC-001",
			TotalComponentsRequired: 50,
			ComponentsRoundoff:      50,
			Status:                  "Pending",
			OrderDate:               day,
			ExpectedDeliveryDate:    day,
		}},
		Orders: []domain.Order{{
			OrderID:               "ORD-001",
			Procurements:          []string{"PROC-001"},
			SupplierOrders:        []string{"SUPP-ORD-001"},
			QuantityOrdered:       50,
			ProductID:             "PROD-001",
			Product:               "BP Watch",
			QuantityRequired:      50,
			ExpectedDeliveryDate:  day,
			ProductionStartDate:   day,
			ExpectedShipDate:      day,
			RecID:                 "REC-001",
			OrderStatus:           "Processing",
			TotalComponentsBooked: 100,
			ComponentsNotes:       "Need expedited shipping",
			ComponentsRequired:    100,
			TotalGapComponents:    []uint64{20, 30},
			Components:            []string{"COMP-001", "COMP-002"},
		}},
		ProcurementGroups: []domain.ProcurementGroup{{
			ProcurementID: "PROC-GROUP-001",
			OrderID:       "ORD-001",
			Procurements: []domain.Procurement{{
				ProcurementID: "PROC-001",
				OrderID:       "ORD-001",
				Components:    []string{"COMP-001"},
				Quantity:      20,
				Status:        "Pending",
				Product:       "BP Watch",
			}},
		}},
		AssemblyTimelines: []domain.AssemblyTimeline{{
			AssemblyID:             "ASSEM-001",
			Order:                  "ORD-001",
			Product:                "BP Watch",
			Movements:              []string{"MOVE-001"},
			ComponentsRequired:     100,
			TotalComponentsBooked:  80,
			Components:             []string{"COMP-001", "COMP-002"},
			TotalGapComponents:     []uint64{20},
			AssemblyLocation:       string(domain.LocationWurenlos),
			ComponentsReceivedDate: day,
			AssemblyStartDate:      day,
			AssemblyEndDate:        day,
			AssemblyStatus:         "Scheduled",
			TotalDuration:          5,
			AssemblyNotes:          "Priority order",
		}},
		ProductionRates: []domain.ProductionRate{{
			ProductionRateID:        "RATE-001",
			WatchModelID:            "BP-2023",
			AssemblyTimePerWatch:    30,
			DailyProductionCapacity: 40,
		}},
		ReorderPoints: []domain.ReorderPoint{{
			ReorderPointID:    "REORD-001",
			ComponentName:     "Premium Dial",
			SupplierLeadTime:  14,
			AssumedDailyUsage: decimal.NewFromFloat(5.2),
			LeadTimeDemand:    decimal.NewFromFloat(72.8),
			SafetyStock:       decimal.NewFromFloat(36.4),
			ReorderPoint:      110,
			NeedToOrder:       true,
		}},
		Watches: []domain.Watch{{
			WatchID:          "WATCH-001",
			WatchModelID:     "BP-2023-001",
			Brand:            "BrandX",
			ComponentID:      "COMP-001",
			RequiredQuantity: 1,
		}},
	}
}
