package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"invcore/pkg/domain"
)

// ImportSnapshot replaces the entire contents of every table with the records
// in sn, inside one write transaction. Used by the sample-data seeder; a
// failed import leaves the previous contents intact.
func (s *Store) ImportSnapshot(sn domain.Snapshot) error {
	return s.update(func(tx *bolt.Tx) error {
		for _, name := range tableBuckets() {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("clear table %s: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("recreate table %s: %w", name, err)
			}
		}
		for _, rec := range sn.Products {
			if err := putRecord(tx, bucketProducts, rec.ProductID, rec); err != nil {
				return err
			}
		}
		for _, rec := range sn.Components {
			if err := putRecord(tx, bucketComponents, rec.ComponentID, rec); err != nil {
				return err
			}
		}
		for _, rec := range sn.Movements {
			if err := putRecord(tx, bucketMovements, rec.MovementID, rec); err != nil {
				return err
			}
		}
		for _, rec := range sn.SupplierOrders {
			if err := putRecord(tx, bucketSupplierOrders, rec.OrderID, rec); err != nil {
				return err
			}
		}
		for _, rec := range sn.Orders {
			if err := putRecord(tx, bucketOrders, rec.OrderID, rec); err != nil {
				return err
			}
		}
		for _, rec := range sn.ProcurementGroups {
			if err := putRecord(tx, bucketProcurementGroups, rec.ProcurementID, rec); err != nil {
				return err
			}
		}
		for _, rec := range sn.AssemblyTimelines {
			if err := putRecord(tx, bucketAssemblyTimelines, rec.AssemblyID, rec); err != nil {
				return err
			}
		}
		for _, rec := range sn.ProductionRates {
			if err := putRecord(tx, bucketProductionRates, rec.ProductionRateID, rec); err != nil {
				return err
			}
		}
		for _, rec := range sn.ReorderPoints {
			if err := putRecord(tx, bucketReorderPoints, rec.ReorderPointID, rec); err != nil {
				return err
			}
		}
		for _, rec := range sn.Watches {
			if err := putRecord(tx, bucketWatches, rec.WatchID, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// ExportSnapshot copies every table out of one read snapshot, in key order.
func (s *Store) ExportSnapshot() (domain.Snapshot, error) {
	var sn domain.Snapshot
	err := s.view(func(tx *bolt.Tx) (err error) {
		if sn.Products, err = listRecords[domain.Product](tx, bucketProducts); err != nil {
			return err
		}
		if sn.Components, err = listRecords[domain.Component](tx, bucketComponents); err != nil {
			return err
		}
		if sn.Movements, err = listRecords[domain.Movement](tx, bucketMovements); err != nil {
			return err
		}
		if sn.SupplierOrders, err = listRecords[domain.SupplierOrder](tx, bucketSupplierOrders); err != nil {
			return err
		}
		if sn.Orders, err = listRecords[domain.Order](tx, bucketOrders); err != nil {
			return err
		}
		if sn.ProcurementGroups, err = listRecords[domain.ProcurementGroup](tx, bucketProcurementGroups); err != nil {
			return err
		}
		if sn.AssemblyTimelines, err = listRecords[domain.AssemblyTimeline](tx, bucketAssemblyTimelines); err != nil {
			return err
		}
		if sn.ProductionRates, err = listRecords[domain.ProductionRate](tx, bucketProductionRates); err != nil {
			return err
		}
		if sn.ReorderPoints, err = listRecords[domain.ReorderPoint](tx, bucketReorderPoints); err != nil {
			return err
		}
		sn.Watches, err = listRecords[domain.Watch](tx, bucketWatches)
		return err
	})
	if err != nil {
		return domain.Snapshot{}, err
	}
	return sn, nil
}
