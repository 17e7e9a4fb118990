package store

import (
	bolt "go.etcd.io/bbolt"

	"invcore/pkg/domain"
)

// LevelsByLocation maps component name to the quantity held at loc, scanning
// the components table in one read snapshot.
func (s *Store) LevelsByLocation(loc domain.Location) (map[string]uint64, error) {
	if _, err := domain.ParseLocation(string(loc)); err != nil {
		return nil, err
	}
	levels := make(map[string]uint64)
	err := s.view(func(tx *bolt.Tx) error {
		components, err := listRecords[domain.Component](tx, bucketComponents)
		if err != nil {
			return err
		}
		for _, c := range components {
			qty, err := c.Level(loc)
			if err != nil {
				return err
			}
			levels[c.ComponentName] = qty
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return levels, nil
}

// Summary condenses products, components and not-yet-completed orders into the
// view served by the summary endpoint and logged at startup. All three tables
// are read from the same snapshot.
func (s *Store) Summary() (domain.InventorySummary, error) {
	summary := domain.InventorySummary{
		Products:      make([]domain.ProductSummary, 0),
		Components:    make([]domain.ComponentSummary, 0),
		PendingOrders: make([]domain.PendingOrder, 0),
	}
	err := s.view(func(tx *bolt.Tx) error {
		products, err := listRecords[domain.Product](tx, bucketProducts)
		if err != nil {
			return err
		}
		for _, p := range products {
			summary.Products = append(summary.Products, domain.ProductSummary{
				ProductID:         p.ProductID,
				ProductName:       p.ProductName,
				TotalAvailable:    p.TotalAvailable,
				ReservedForOrders: p.ReservedForOrders,
			})
		}

		components, err := listRecords[domain.Component](tx, bucketComponents)
		if err != nil {
			return err
		}
		for _, c := range components {
			summary.Components = append(summary.Components, domain.ComponentSummary{
				ComponentID:    c.ComponentID,
				ComponentName:  c.ComponentName,
				TotalAvailable: c.TotalAvailable,
				OrderedSurplus: c.OrderedSurplus,
			})
		}

		orders, err := listRecords[domain.Order](tx, bucketOrders)
		if err != nil {
			return err
		}
		for _, o := range orders {
			if o.OrderStatus == domain.OrderStatusCompleted {
				continue
			}
			summary.PendingOrders = append(summary.PendingOrders, domain.PendingOrder{
				OrderID:         o.OrderID,
				OrderStatus:     o.OrderStatus,
				Product:         o.Product,
				QuantityOrdered: o.QuantityOrdered,
			})
		}
		return nil
	})
	if err != nil {
		return domain.InventorySummary{}, err
	}
	return summary, nil
}
