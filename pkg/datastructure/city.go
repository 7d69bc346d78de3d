package datastructure

import (
	"math"

	"github.com/lintang-b-s/citynet/pkg/util"
)

type Index uint32

const INVALID_INDEX Index = math.MaxUint32

type StreetID Index
type CrossroadID Index

const (
	INVALID_STREET    StreetID    = StreetID(INVALID_INDEX)
	INVALID_CROSSROAD CrossroadID = CrossroadID(INVALID_INDEX)
)

// SlotState tells which of the two crossroad slots of a street are taken.
type SlotState uint8

const (
	SlotUnset SlotState = iota // both empty
	Slot0                      // only slot 0 taken
	Slot1                      // only slot 1 taken
	SlotFull                   // both taken
)

// BuildingRef identifies a building by its owner street and its position in that street.
type BuildingRef struct {
	Street StreetID
	Pos    Index
}

func NewBuildingRef(street StreetID, pos Index) BuildingRef {
	return BuildingRef{Street: street, Pos: pos}
}

type Building struct {
	street                  StreetID
	distanceFromStreetStart uint32 // meter, always < street length
	cost                    uint32
}

func (b *Building) GetStreet() StreetID {
	return b.street
}

func (b *Building) GetDistanceFromStreetStart() uint32 {
	return b.distanceFromStreetStart
}

func (b *Building) GetCost() uint32 {
	return b.cost
}

type Street struct {
	id         StreetID
	length     uint32 // meter
	buildings  []Building
	crossroads [2]CrossroadID
}

func newStreet(id StreetID, length uint32) *Street {
	return &Street{
		id:         id,
		length:     length,
		buildings:  make([]Building, 0),
		crossroads: [2]CrossroadID{INVALID_CROSSROAD, INVALID_CROSSROAD},
	}
}

func (s *Street) GetID() StreetID {
	return s.id
}

func (s *Street) GetLength() uint32 {
	return s.length
}

func (s *Street) NumberOfBuildings() int {
	return len(s.buildings)
}

func (s *Street) GetBuilding(pos Index) (*Building, bool) {
	if int(pos) >= len(s.buildings) {
		return nil, false
	}
	return &s.buildings[pos], true
}

func (s *Street) ForBuildings(handle func(pos Index, b *Building)) {
	for i := range s.buildings {
		handle(Index(i), &s.buildings[i])
	}
}

// HasBuilding reports whether ref points to a building owned by this street.
func (s *Street) HasBuilding(ref BuildingRef) bool {
	return ref.Street == s.id && int(ref.Pos) < len(s.buildings)
}

// GetCrossroads returns both slots, unset slots hold INVALID_CROSSROAD.
func (s *Street) GetCrossroads() [2]CrossroadID {
	return s.crossroads
}

func (s *Street) SlotState() SlotState {
	first := s.crossroads[0] != INVALID_CROSSROAD
	second := s.crossroads[1] != INVALID_CROSSROAD
	switch {
	case first && second:
		return SlotFull
	case first:
		return Slot0
	case second:
		return Slot1
	default:
		return SlotUnset
	}
}

// takeSlot fills the first free slot. false when both slots are already taken.
func (s *Street) takeSlot(c CrossroadID) bool {
	switch s.SlotState() {
	case SlotUnset, Slot1:
		s.crossroads[0] = c
	case Slot0:
		s.crossroads[1] = c
	case SlotFull:
		return false
	}
	return true
}

type Crossroad struct {
	id      CrossroadID
	streets []StreetID
}

func (c *Crossroad) GetID() CrossroadID {
	return c.id
}

func (c *Crossroad) GetStreets() []StreetID {
	return c.streets
}

func (c *Crossroad) Degree() int {
	return len(c.streets)
}

// City owns every street and crossroad; all cross references are indices into its slices.
type City struct {
	streets    []*Street
	crossroads []*Crossroad
}

func NewCity() *City {
	return &City{
		streets:    make([]*Street, 0),
		crossroads: make([]*Crossroad, 0),
	}
}

func (c *City) NumberOfStreets() int {
	return len(c.streets)
}

func (c *City) NumberOfCrossroads() int {
	return len(c.crossroads)
}

func (c *City) NumberOfBuildings() int {
	n := 0
	for _, s := range c.streets {
		n += len(s.buildings)
	}
	return n
}

// AddStreet appends an empty street. A zero length is rejected since building offsets are reduced modulo length.
func (c *City) AddStreet(length uint32) (StreetID, error) {
	if length == 0 {
		return INVALID_STREET, util.WrapErrorf(nil, util.ErrInvariantViolation, "street length must be positive")
	}
	if len(c.streets) >= int(INVALID_INDEX) {
		return INVALID_STREET, util.WrapErrorf(nil, util.ErrInvariantViolation, "too many streets")
	}
	id := StreetID(len(c.streets))
	c.streets = append(c.streets, newStreet(id, length))
	return id, nil
}

// AddBuilding appends a building to street. The offset wraps around the street length.
func (c *City) AddBuilding(street StreetID, distanceFromStart, cost uint32) (BuildingRef, error) {
	s, ok := c.GetStreet(street)
	if !ok {
		return BuildingRef{}, util.WrapErrorf(nil, util.ErrInvariantViolation, "street %d does not exist", street)
	}
	pos := Index(len(s.buildings))
	s.buildings = append(s.buildings, Building{
		street:                  street,
		distanceFromStreetStart: distanceFromStart % s.length,
		cost:                    cost,
	})
	return NewBuildingRef(street, pos), nil
}

func (c *City) AddCrossroad() CrossroadID {
	id := CrossroadID(len(c.crossroads))
	c.crossroads = append(c.crossroads, &Crossroad{id: id, streets: make([]StreetID, 0, 2)})
	return id
}

// Attach links crossroad and street both ways. A street holding two crossroads already is left untouched
// and ErrInvariantViolation is returned.
func (c *City) Attach(crossroad CrossroadID, street StreetID) error {
	cr, ok := c.GetCrossroad(crossroad)
	if !ok {
		return util.WrapErrorf(nil, util.ErrInvariantViolation, "crossroad %d does not exist", crossroad)
	}
	s, ok := c.GetStreet(street)
	if !ok {
		return util.WrapErrorf(nil, util.ErrInvariantViolation, "street %d does not exist", street)
	}
	if !s.takeSlot(crossroad) {
		return util.WrapErrorf(nil, util.ErrInvariantViolation,
			"street %d already has two crossroads (%d, %d)", street, s.crossroads[0], s.crossroads[1])
	}
	cr.streets = append(cr.streets, street)
	return nil
}

func (c *City) GetStreet(id StreetID) (*Street, bool) {
	if int(id) >= len(c.streets) {
		return nil, false
	}
	return c.streets[id], true
}

func (c *City) GetCrossroad(id CrossroadID) (*Crossroad, bool) {
	if int(id) >= len(c.crossroads) {
		return nil, false
	}
	return c.crossroads[id], true
}

func (c *City) GetBuilding(ref BuildingRef) (*Building, bool) {
	s, ok := c.GetStreet(ref.Street)
	if !ok {
		return nil, false
	}
	return s.GetBuilding(ref.Pos)
}

func (c *City) ForStreets(handle func(s *Street)) {
	for _, s := range c.streets {
		handle(s)
	}
}

func (c *City) ForCrossroads(handle func(cr *Crossroad)) {
	for _, cr := range c.crossroads {
		handle(cr)
	}
}

// ForNeighborStreets calls handle for every street sharing a crossroad with street, skipping street itself
// and unset slots. A neighbor reachable through both slots is reported twice.
func (c *City) ForNeighborStreets(street StreetID, handle func(next StreetID)) {
	s, ok := c.GetStreet(street)
	if !ok {
		return
	}
	for _, crossroadID := range s.crossroads {
		if crossroadID == INVALID_CROSSROAD {
			continue
		}
		cr, ok := c.GetCrossroad(crossroadID)
		if !ok {
			continue
		}
		for _, next := range cr.streets {
			if next == street || next == INVALID_STREET {
				continue
			}
			handle(next)
		}
	}
}
