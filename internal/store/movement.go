package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"invcore/pkg/domain"
)

// RecordMovement applies a stock movement as one atomic unit: the source
// location of the named component is debited, the destination credited, the
// updated component persisted, and the movement record itself stored keyed by
// its movement id. Either every write commits or none do.
//
// Both location tags are validated up front against the closed enumeration. A
// debit exceeding the source quantity fails the whole transaction with
// InsufficientStockError; there is no wraparound and no partial adjustment.
//
// A movement naming no component adjusts nothing and is recorded as-is. A
// movement naming a component that does not exist is, by default, recorded
// without an adjustment (movements may reference not-yet-provisioned
// components) and never creates the component as a side effect; a store opened
// with WithStrictComponents rejects it with UnknownComponentError instead.
func (s *Store) RecordMovement(m domain.Movement) error {
	if m.MovementID == "" {
		return fmt.Errorf("movement id must not be empty")
	}
	src, err := domain.ParseLocation(string(m.SourceLocation))
	if err != nil {
		return err
	}
	dst, err := domain.ParseLocation(string(m.DestinationLocation))
	if err != nil {
		return err
	}

	return s.update(func(tx *bolt.Tx) error {
		if m.ComponentName != "" {
			component, found, err := getRecord[domain.Component](tx, bucketComponents, m.ComponentName)
			switch {
			case err != nil:
				return err
			case found:
				if err := component.Debit(src, m.Quantity); err != nil {
					return fmt.Errorf("movement %s: %w", m.MovementID, err)
				}
				if err := component.Credit(dst, m.Quantity); err != nil {
					return fmt.Errorf("movement %s: %w", m.MovementID, err)
				}
				if err := putRecord(tx, bucketComponents, m.ComponentName, component); err != nil {
					return err
				}
			case s.strictComponents:
				return domain.UnknownComponentError{Component: m.ComponentName}
			}
		}
		return putRecord(tx, bucketMovements, m.MovementID, m)
	})
}
