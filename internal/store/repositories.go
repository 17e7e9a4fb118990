package store

import (
	bolt "go.etcd.io/bbolt"

	"invcore/pkg/domain"
)

// Per-table repository operations. Put is an unconditional overwrite keyed by
// the record's own id field, so create and update are the same operation. Get
// reports absence through its bool, not an error. Delete reports whether a
// record existed. List returns the table in key order. None of these enforce
// cross-table referential integrity: deleting a product does not cascade to
// its components, and dangling id references are accepted without validation.

// Products ------------------------------------------------------------------

func (s *Store) PutProduct(p domain.Product) error {
	return s.update(func(tx *bolt.Tx) error {
		return putRecord(tx, bucketProducts, p.ProductID, p)
	})
}

func (s *Store) GetProduct(id string) (domain.Product, bool, error) {
	var (
		rec   domain.Product
		found bool
	)
	err := s.view(func(tx *bolt.Tx) (err error) {
		rec, found, err = getRecord[domain.Product](tx, bucketProducts, id)
		return err
	})
	return rec, found, err
}

func (s *Store) DeleteProduct(id string) (bool, error) {
	var existed bool
	err := s.update(func(tx *bolt.Tx) (err error) {
		existed, err = deleteRecord(tx, bucketProducts, id)
		return err
	})
	return existed, err
}

func (s *Store) ListProducts() ([]domain.Product, error) {
	var recs []domain.Product
	err := s.view(func(tx *bolt.Tx) (err error) {
		recs, err = listRecords[domain.Product](tx, bucketProducts)
		return err
	})
	return recs, err
}

// Components ----------------------------------------------------------------

func (s *Store) PutComponent(c domain.Component) error {
	return s.update(func(tx *bolt.Tx) error {
		return putRecord(tx, bucketComponents, c.ComponentID, c)
	})
}

func (s *Store) GetComponent(id string) (domain.Component, bool, error) {
	var (
		rec   domain.Component
		found bool
	)
	err := s.view(func(tx *bolt.Tx) (err error) {
		rec, found, err = getRecord[domain.Component](tx, bucketComponents, id)
		return err
	})
	return rec, found, err
}

func (s *Store) DeleteComponent(id string) (bool, error) {
	var existed bool
	err := s.update(func(tx *bolt.Tx) (err error) {
		existed, err = deleteRecord(tx, bucketComponents, id)
		return err
	})
	return existed, err
}

func (s *Store) ListComponents() ([]domain.Component, error) {
	var recs []domain.Component
	err := s.view(func(tx *bolt.Tx) (err error) {
		recs, err = listRecords[domain.Component](tx, bucketComponents)
		return err
	})
	return recs, err
}

// Movements -----------------------------------------------------------------
// Movements are written by RecordMovement and immutable thereafter: no update
// or delete operation exists for them.

func (s *Store) GetMovement(id string) (domain.Movement, bool, error) {
	var (
		rec   domain.Movement
		found bool
	)
	err := s.view(func(tx *bolt.Tx) (err error) {
		rec, found, err = getRecord[domain.Movement](tx, bucketMovements, id)
		return err
	})
	return rec, found, err
}

func (s *Store) ListMovements() ([]domain.Movement, error) {
	var recs []domain.Movement
	err := s.view(func(tx *bolt.Tx) (err error) {
		recs, err = listRecords[domain.Movement](tx, bucketMovements)
		return err
	})
	return recs, err
}

// Supplier orders -----------------------------------------------------------

func (s *Store) PutSupplierOrder(o domain.SupplierOrder) error {
	return s.update(func(tx *bolt.Tx) error {
		return putRecord(tx, bucketSupplierOrders, o.OrderID, o)
	})
}

func (s *Store) GetSupplierOrder(id string) (domain.SupplierOrder, bool, error) {
	var (
		rec   domain.SupplierOrder
		found bool
	)
	err := s.view(func(tx *bolt.Tx) (err error) {
		rec, found, err = getRecord[domain.SupplierOrder](tx, bucketSupplierOrders, id)
		return err
	})
	return rec, found, err
}

func (s *Store) DeleteSupplierOrder(id string) (bool, error) {
	var existed bool
	err := s.update(func(tx *bolt.Tx) (err error) {
		existed, err = deleteRecord(tx, bucketSupplierOrders, id)
		return err
	})
	return existed, err
}

func (s *Store) ListSupplierOrders() ([]domain.SupplierOrder, error) {
	var recs []domain.SupplierOrder
	err := s.view(func(tx *bolt.Tx) (err error) {
		recs, err = listRecords[domain.SupplierOrder](tx, bucketSupplierOrders)
		return err
	})
	return recs, err
}

// Orders --------------------------------------------------------------------

func (s *Store) PutOrder(o domain.Order) error {
	return s.update(func(tx *bolt.Tx) error {
		return putRecord(tx, bucketOrders, o.OrderID, o)
	})
}

func (s *Store) GetOrder(id string) (domain.Order, bool, error) {
	var (
		rec   domain.Order
		found bool
	)
	err := s.view(func(tx *bolt.Tx) (err error) {
		rec, found, err = getRecord[domain.Order](tx, bucketOrders, id)
		return err
	})
	return rec, found, err
}

func (s *Store) DeleteOrder(id string) (bool, error) {
	var existed bool
	err := s.update(func(tx *bolt.Tx) (err error) {
		existed, err = deleteRecord(tx, bucketOrders, id)
		return err
	})
	return existed, err
}

func (s *Store) ListOrders() ([]domain.Order, error) {
	var recs []domain.Order
	err := s.view(func(tx *bolt.Tx) (err error) {
		recs, err = listRecords[domain.Order](tx, bucketOrders)
		return err
	})
	return recs, err
}

// Procurement groups --------------------------------------------------------

func (s *Store) PutProcurementGroup(g domain.ProcurementGroup) error {
	return s.update(func(tx *bolt.Tx) error {
		return putRecord(tx, bucketProcurementGroups, g.ProcurementID, g)
	})
}

func (s *Store) GetProcurementGroup(id string) (domain.ProcurementGroup, bool, error) {
	var (
		rec   domain.ProcurementGroup
		found bool
	)
	err := s.view(func(tx *bolt.Tx) (err error) {
		rec, found, err = getRecord[domain.ProcurementGroup](tx, bucketProcurementGroups, id)
		return err
	})
	return rec, found, err
}

func (s *Store) DeleteProcurementGroup(id string) (bool, error) {
	var existed bool
	err := s.update(func(tx *bolt.Tx) (err error) {
		existed, err = deleteRecord(tx, bucketProcurementGroups, id)
		return err
	})
	return existed, err
}

func (s *Store) ListProcurementGroups() ([]domain.ProcurementGroup, error) {
	var recs []domain.ProcurementGroup
	err := s.view(func(tx *bolt.Tx) (err error) {
		recs, err = listRecords[domain.ProcurementGroup](tx, bucketProcurementGroups)
		return err
	})
	return recs, err
}

// Assembly timelines --------------------------------------------------------

func (s *Store) PutAssemblyTimeline(a domain.AssemblyTimeline) error {
	return s.update(func(tx *bolt.Tx) error {
		return putRecord(tx, bucketAssemblyTimelines, a.AssemblyID, a)
	})
}

func (s *Store) GetAssemblyTimeline(id string) (domain.AssemblyTimeline, bool, error) {
	var (
		rec   domain.AssemblyTimeline
		found bool
	)
	err := s.view(func(tx *bolt.Tx) (err error) {
		rec, found, err = getRecord[domain.AssemblyTimeline](tx, bucketAssemblyTimelines, id)
		return err
	})
	return rec, found, err
}

func (s *Store) DeleteAssemblyTimeline(id string) (bool, error) {
	var existed bool
	err := s.update(func(tx *bolt.Tx) (err error) {
		existed, err = deleteRecord(tx, bucketAssemblyTimelines, id)
		return err
	})
	return existed, err
}

func (s *Store) ListAssemblyTimelines() ([]domain.AssemblyTimeline, error) {
	var recs []domain.AssemblyTimeline
	err := s.view(func(tx *bolt.Tx) (err error) {
		recs, err = listRecords[domain.AssemblyTimeline](tx, bucketAssemblyTimelines)
		return err
	})
	return recs, err
}

// Production rates ----------------------------------------------------------

func (s *Store) PutProductionRate(r domain.ProductionRate) error {
	return s.update(func(tx *bolt.Tx) error {
		return putRecord(tx, bucketProductionRates, r.ProductionRateID, r)
	})
}

func (s *Store) GetProductionRate(id string) (domain.ProductionRate, bool, error) {
	var (
		rec   domain.ProductionRate
		found bool
	)
	err := s.view(func(tx *bolt.Tx) (err error) {
		rec, found, err = getRecord[domain.ProductionRate](tx, bucketProductionRates, id)
		return err
	})
	return rec, found, err
}

func (s *Store) DeleteProductionRate(id string) (bool, error) {
	var existed bool
	err := s.update(func(tx *bolt.Tx) (err error) {
		existed, err = deleteRecord(tx, bucketProductionRates, id)
		return err
	})
	return existed, err
}

func (s *Store) ListProductionRates() ([]domain.ProductionRate, error) {
	var recs []domain.ProductionRate
	err := s.view(func(tx *bolt.Tx) (err error) {
		recs, err = listRecords[domain.ProductionRate](tx, bucketProductionRates)
		return err
	})
	return recs, err
}

// Reorder points ------------------------------------------------------------

func (s *Store) PutReorderPoint(r domain.ReorderPoint) error {
	return s.update(func(tx *bolt.Tx) error {
		return putRecord(tx, bucketReorderPoints, r.ReorderPointID, r)
	})
}

func (s *Store) GetReorderPoint(id string) (domain.ReorderPoint, bool, error) {
	var (
		rec   domain.ReorderPoint
		found bool
	)
	err := s.view(func(tx *bolt.Tx) (err error) {
		rec, found, err = getRecord[domain.ReorderPoint](tx, bucketReorderPoints, id)
		return err
	})
	return rec, found, err
}

func (s *Store) DeleteReorderPoint(id string) (bool, error) {
	var existed bool
	err := s.update(func(tx *bolt.Tx) (err error) {
		existed, err = deleteRecord(tx, bucketReorderPoints, id)
		return err
	})
	return existed, err
}

func (s *Store) ListReorderPoints() ([]domain.ReorderPoint, error) {
	var recs []domain.ReorderPoint
	err := s.view(func(tx *bolt.Tx) (err error) {
		recs, err = listRecords[domain.ReorderPoint](tx, bucketReorderPoints)
		return err
	})
	return recs, err
}

// Watches -------------------------------------------------------------------

func (s *Store) PutWatch(w domain.Watch) error {
	return s.update(func(tx *bolt.Tx) error {
		return putRecord(tx, bucketWatches, w.WatchID, w)
	})
}

func (s *Store) GetWatch(id string) (domain.Watch, bool, error) {
	var (
		rec   domain.Watch
		found bool
	)
	err := s.view(func(tx *bolt.Tx) (err error) {
		rec, found, err = getRecord[domain.Watch](tx, bucketWatches, id)
		return err
	})
	return rec, found, err
}

func (s *Store) DeleteWatch(id string) (bool, error) {
	var existed bool
	err := s.update(func(tx *bolt.Tx) (err error) {
		existed, err = deleteRecord(tx, bucketWatches, id)
		return err
	})
	return existed, err
}

func (s *Store) ListWatches() ([]domain.Watch, error) {
	var recs []domain.Watch
	err := s.view(func(tx *bolt.Tx) (err error) {
		recs, err = listRecords[domain.Watch](tx, bucketWatches)
		return err
	})
	return recs, err
}
