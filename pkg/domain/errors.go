package domain

import "fmt"

// UnknownLocationError reports a location tag outside the closed enumeration.
type UnknownLocationError struct {
	Tag string
}

func (e UnknownLocationError) Error() string {
	return fmt.Sprintf("unknown location %q", e.Tag)
}

// InsufficientStockError reports a debit exceeding the quantity held at the
// source location. The enclosing transaction does not commit.
type InsufficientStockError struct {
	Location  Location
	Available uint64
	Requested uint64
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock at %s: have %d, need %d", e.Location, e.Available, e.Requested)
}

// UnknownComponentError reports a movement naming a component that does not
// exist, when the store is configured to reject such movements.
type UnknownComponentError struct {
	Component string
}

func (e UnknownComponentError) Error() string {
	return fmt.Sprintf("unknown component %q", e.Component)
}
