package routing

import (
	da "github.com/lintang-b-s/citynet/pkg/datastructure"
	"github.com/lintang-b-s/citynet/pkg/util"
	"go.uber.org/zap"
)

// RouteSearch answers whether some chain of streets joins two buildings. Not safe for concurrent use,
// create one per query.
type RouteSearch struct {
	engine  *CityRoutingEngine
	visited []bool // shared by the whole search, never reset between branches

	numVisitedStreets int
}

func NewRouteSearch(engine *CityRoutingEngine) *RouteSearch {
	return &RouteSearch{
		engine: engine,
	}
}

// RouteExists runs a depth-first search starting at startStreet. startStreet must hold one of the route
// endpoints, otherwise no search is made and false is returned. The endpoint found on startStreet fixes the
// search target: the other endpoint.
func (rs *RouteSearch) RouteExists(route da.Route, startStreet da.StreetID) (bool, error) {
	city := rs.engine.city
	start, ok := city.GetStreet(startStreet)
	if !ok {
		return false, util.WrapErrorf(nil, util.ErrNotFound, "start street %d does not exist", startStreet)
	}
	if _, ok := city.GetBuilding(route.From); !ok {
		return false, util.WrapErrorf(nil, util.ErrNotFound, "building %d on street %d does not exist",
			route.From.Pos, route.From.Street)
	}
	if _, ok := city.GetBuilding(route.To); !ok {
		return false, util.WrapErrorf(nil, util.ErrNotFound, "building %d on street %d does not exist",
			route.To.Pos, route.To.Street)
	}

	var target da.BuildingRef
	switch {
	case start.HasBuilding(route.From):
		target = route.To
	case start.HasBuilding(route.To):
		target = route.From
	default:
		return false, nil
	}

	rs.visited = make([]bool, city.NumberOfStreets())
	rs.numVisitedStreets = 0
	found := rs.dfs(startStreet, target)

	rs.engine.logger.Debug("route search done",
		zap.Uint32("start_street", uint32(startStreet)),
		zap.Bool("found", found),
		zap.Int("visited_streets", rs.numVisitedStreets))
	return found, nil
}

// FindRoute searches from the street of the route's origin.
func (rs *RouteSearch) FindRoute(route da.Route) (bool, error) {
	return rs.RouteExists(route, route.From.Street)
}

func (rs *RouteSearch) dfs(s da.StreetID, target da.BuildingRef) bool {
	street, _ := rs.engine.city.GetStreet(s)
	if street.HasBuilding(target) {
		return true
	}

	rs.visited[s] = true
	rs.numVisitedStreets++

	found := false
	rs.engine.city.ForNeighborStreets(s, func(next da.StreetID) {
		if found || int(next) >= len(rs.visited) || rs.visited[next] {
			return
		}
		found = rs.dfs(next, target)
	})
	return found
}

func (rs *RouteSearch) GetNumVisitedStreets() int {
	return rs.numVisitedStreets
}
