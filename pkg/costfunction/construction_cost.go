package costfunction

import (
	"github.com/lintang-b-s/citynet/pkg"
	"github.com/lintang-b-s/citynet/pkg/datastructure"
)

// ConstructionCost prices a city as road length, buildings and crossroad junctions.
// All sums are uint32 and wrap on overflow; stored city totals depend on that.
type ConstructionCost struct {
	roadUnitCost        uint32
	streetMultiplier    uint32
	crossroadMultiplier uint32
}

func NewConstructionCost() *ConstructionCost {
	return NewConstructionCostWithRates(pkg.ROAD_UNIT_COST, pkg.STREET_MULTIPLIER, pkg.CROSSROAD_MULTIPLIER)
}

func NewConstructionCostWithRates(roadUnitCost, streetMultiplier, crossroadMultiplier uint32) *ConstructionCost {
	return &ConstructionCost{
		roadUnitCost:        roadUnitCost,
		streetMultiplier:    streetMultiplier,
		crossroadMultiplier: crossroadMultiplier,
	}
}

// StreetCost = length*roadUnitCost + number of buildings + sum of building costs.
func (cc *ConstructionCost) StreetCost(s *datastructure.Street) uint32 {
	cost := s.GetLength()*cc.roadUnitCost + uint32(s.NumberOfBuildings())

	s.ForBuildings(func(_ datastructure.Index, b *datastructure.Building) {
		cost += b.GetCost()
	})
	return cost
}

func (cc *ConstructionCost) CrossroadCost(cr *datastructure.Crossroad) uint32 {
	return uint32(cr.Degree()) * cc.crossroadMultiplier
}

func (cc *ConstructionCost) CityCost(c *datastructure.City) uint32 {
	var cost uint32

	c.ForStreets(func(s *datastructure.Street) {
		cost += cc.StreetCost(s) * cc.streetMultiplier
	})
	c.ForCrossroads(func(cr *datastructure.Crossroad) {
		cost += cc.CrossroadCost(cr)
	})
	return cost
}
