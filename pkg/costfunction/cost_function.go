package costfunction

import (
	"github.com/lintang-b-s/citynet/pkg/datastructure"
)

type CostFunction interface {
	StreetCost(s *datastructure.Street) uint32
	CrossroadCost(cr *datastructure.Crossroad) uint32
	CityCost(c *datastructure.City) uint32
}
