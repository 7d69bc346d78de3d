package routing

import (
	da "github.com/lintang-b-s/citynet/pkg/datastructure"
	"go.uber.org/zap"
)

// CityRoutingEngine holds a read-only city shared by every route query.
type CityRoutingEngine struct {
	city   *da.City
	logger *zap.Logger
}

func NewCityRoutingEngine(city *da.City, logger *zap.Logger) *CityRoutingEngine {
	return &CityRoutingEngine{
		city:   city,
		logger: logger,
	}
}

func (e *CityRoutingEngine) GetCity() *da.City {
	return e.city
}
