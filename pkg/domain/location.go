package domain

// Location identifies one of the five fixed stock-holding sites. It is a closed
// enumeration: every operation that takes a Location validates it through
// ParseLocation and rejects anything outside the set, rather than silently
// ignoring unrecognized tags.
type Location string

// The five stock-holding sites.
const (
	LocationCN       Location = "CN"
	LocationKling    Location = "Kling"
	LocationStJakob  Location = "St Jakob"
	LocationWurenlos Location = "Wurenlos"
	LocationFLF      Location = "FLF"
)

// Locations returns the closed set of valid locations in declaration order.
func Locations() []Location {
	return []Location{LocationCN, LocationKling, LocationStJakob, LocationWurenlos, LocationFLF}
}

// ParseLocation validates a free-form location tag against the closed set.
func ParseLocation(tag string) (Location, error) {
	switch loc := Location(tag); loc {
	case LocationCN, LocationKling, LocationStJakob, LocationWurenlos, LocationFLF:
		return loc, nil
	default:
		return "", UnknownLocationError{Tag: tag}
	}
}

// slot maps a location to the quantity field backing it. Callers hold a write
// reference to the StockLevels value for the duration of the transaction.
func (s *StockLevels) slot(loc Location) (*uint64, error) {
	switch loc {
	case LocationCN:
		return &s.CN, nil
	case LocationKling:
		return &s.Kling, nil
	case LocationStJakob:
		return &s.StJakob, nil
	case LocationWurenlos:
		return &s.Wurenlos, nil
	case LocationFLF:
		return &s.FLF, nil
	default:
		return nil, UnknownLocationError{Tag: string(loc)}
	}
}

// Level reports the quantity held at loc.
func (s StockLevels) Level(loc Location) (uint64, error) {
	slot, err := s.slot(loc)
	if err != nil {
		return 0, err
	}
	return *slot, nil
}

// Credit adds qty to the quantity held at loc.
func (s *StockLevels) Credit(loc Location, qty uint64) error {
	slot, err := s.slot(loc)
	if err != nil {
		return err
	}
	*slot += qty
	return nil
}

// Debit subtracts qty from the quantity held at loc. A debit larger than the
// held quantity fails with InsufficientStockError instead of wrapping around.
func (s *StockLevels) Debit(loc Location, qty uint64) error {
	slot, err := s.slot(loc)
	if err != nil {
		return err
	}
	if *slot < qty {
		return InsufficientStockError{Location: loc, Available: *slot, Requested: qty}
	}
	*slot -= qty
	return nil
}
