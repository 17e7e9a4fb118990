package store

import (
	"slices"

	bolt "go.etcd.io/bbolt"

	"invcore/pkg/domain"
)

// AddComponentToProduct links componentID into the product's component list
// inside one write transaction. The operation is idempotent: a component
// already present in the list is left untouched. A nonexistent product is a
// silent no-op, matching the permissive linking model of the rest of the
// store.
func (s *Store) AddComponentToProduct(productID, componentID string) error {
	return s.update(func(tx *bolt.Tx) error {
		product, found, err := getRecord[domain.Product](tx, bucketProducts, productID)
		if err != nil || !found {
			return err
		}
		if slices.Contains(product.Components, componentID) {
			return nil
		}
		product.Components = append(product.Components, componentID)
		return putRecord(tx, bucketProducts, productID, product)
	})
}

// ProductComponents resolves the product's linked component ids to full
// component records within one read snapshot. A missing product and a product
// with no linked components both yield an empty slice; the two cases are not
// distinguishable by the caller. Dangling component ids are skipped.
func (s *Store) ProductComponents(productID string) ([]domain.Component, error) {
	out := make([]domain.Component, 0)
	err := s.view(func(tx *bolt.Tx) error {
		product, found, err := getRecord[domain.Product](tx, bucketProducts, productID)
		if err != nil || !found {
			return err
		}
		for _, id := range product.Components {
			component, ok, err := getRecord[domain.Component](tx, bucketComponents, id)
			if err != nil {
				return err
			}
			if ok {
				out = append(out, component)
			}
		}
		return nil
	})
	return out, err
}
