package usecases

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/citynet/pkg/concurrent"
	"github.com/lintang-b-s/citynet/pkg/datastructure"
	"github.com/lintang-b-s/citynet/pkg/engine/routing"
	"github.com/lintang-b-s/citynet/pkg/util"
	"go.uber.org/zap"
)

type routeCacheKey struct {
	route       datastructure.Route
	startStreet datastructure.StreetID
}

type CityService struct {
	log        *zap.Logger
	engine     CityEngine
	numWorkers int

	// guards reload against cache writes from queries running on the previous city
	mu         sync.RWMutex
	routeCache *lru.Cache[routeCacheKey, bool]
}

func NewCityService(log *zap.Logger, engine CityEngine, numWorkers, routeCacheSize int) (*CityService, error) {
	cache, err := lru.New[routeCacheKey, bool](routeCacheSize)
	if err != nil {
		return nil, err
	}
	return &CityService{
		log:        log,
		engine:     engine,
		numWorkers: numWorkers,
		routeCache: cache,
	}, nil
}

type CitySummary struct {
	CityCost      uint32
	NumStreets    int
	NumCrossroads int
	NumBuildings  int
}

func (cs *CityService) CityCost() CitySummary {
	city := cs.engine.GetRoutingEngine().GetCity()
	return CitySummary{
		CityCost:      cs.engine.GetCostFunction().CityCost(city),
		NumStreets:    city.NumberOfStreets(),
		NumCrossroads: city.NumberOfCrossroads(),
		NumBuildings:  city.NumberOfBuildings(),
	}
}

func (cs *CityService) StreetCost(street datastructure.StreetID) (uint32, error) {
	s, ok := cs.engine.GetRoutingEngine().GetCity().GetStreet(street)
	if !ok {
		return 0, util.WrapErrorf(nil, util.ErrNotFound, "street %d does not exist", street)
	}
	return cs.engine.GetCostFunction().StreetCost(s), nil
}

func (cs *CityService) RouteExists(route datastructure.Route, startStreet datastructure.StreetID) (bool, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	key := routeCacheKey{route: route, startStreet: startStreet}
	if found, ok := cs.routeCache.Get(key); ok {
		return found, nil
	}

	search := routing.NewRouteSearch(cs.engine.GetRoutingEngine())
	found, err := search.RouteExists(route, startStreet)
	if err != nil {
		return false, err
	}
	cs.routeCache.Add(key, found)
	return found, nil
}

type RouteQuery struct {
	Route       datastructure.Route
	StartStreet datastructure.StreetID
}

type RouteAnswer struct {
	Exists bool
	Err    error
}

// RouteExistsBatch answers every query concurrently, answers keep the query order.
func (cs *CityService) RouteExistsBatch(queries []RouteQuery) []RouteAnswer {
	answers := concurrent.RunAll(cs.numWorkers, queries, func(q RouteQuery) RouteAnswer {
		found, err := cs.RouteExists(q.Route, q.StartStreet)
		return RouteAnswer{Exists: found, Err: err}
	})
	cs.log.Debug("route batch done", zap.Int("queries", len(queries)), zap.Int("workers", cs.numWorkers))
	return answers
}

func (cs *CityService) StreetComponents() ([]datastructure.Index, int) {
	return cs.engine.GetRoutingEngine().GetCity().StreetComponents()
}

func (cs *CityService) Reload() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err := cs.engine.Reload(); err != nil {
		return err
	}
	cs.routeCache.Purge()
	cs.log.Info("city reloaded, route cache purged")
	return nil
}
