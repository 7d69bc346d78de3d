package controllers

import (
	"github.com/lintang-b-s/citynet/pkg/datastructure"
	"github.com/lintang-b-s/citynet/pkg/http/usecases"
)

type routeExistsRequest struct {
	FromStreet   *uint32 `json:"from_street" validate:"required"`
	FromBuilding *uint32 `json:"from_building" validate:"required"`
	ToStreet     *uint32 `json:"to_street" validate:"required"`
	ToBuilding   *uint32 `json:"to_building" validate:"required"`
	// defaults to from_street
	StartStreet *uint32 `json:"start_street" validate:"omitempty"`
}

func (req routeExistsRequest) ToRouteQuery() usecases.RouteQuery {
	route := datastructure.NewRoute(
		datastructure.NewBuildingRef(datastructure.StreetID(*req.FromStreet), datastructure.Index(*req.FromBuilding)),
		datastructure.NewBuildingRef(datastructure.StreetID(*req.ToStreet), datastructure.Index(*req.ToBuilding)),
	)
	startStreet := route.From.Street
	if req.StartStreet != nil {
		startStreet = datastructure.StreetID(*req.StartStreet)
	}
	return usecases.RouteQuery{Route: route, StartStreet: startStreet}
}

type routeExistsBatchRequest struct {
	Queries []routeExistsRequest `json:"queries" validate:"required,min=1,max=1000,dive"`
}

type routeExistsResponse struct {
	Exists bool   `json:"exists"`
	Error  string `json:"error,omitempty"`
}

func NewRouteExistsResponse(exists bool) routeExistsResponse {
	return routeExistsResponse{Exists: exists}
}

func NewRouteExistsBatchResponse(answers []usecases.RouteAnswer) []routeExistsResponse {
	resp := make([]routeExistsResponse, len(answers))
	for i, a := range answers {
		resp[i] = routeExistsResponse{Exists: a.Exists}
		if a.Err != nil {
			resp[i].Error = a.Err.Error()
		}
	}
	return resp
}

type cityCostResponse struct {
	CityCost      uint32 `json:"city_cost"`
	NumStreets    int    `json:"streets"`
	NumCrossroads int    `json:"crossroads"`
	NumBuildings  int    `json:"buildings"`
}

func NewCityCostResponse(summary usecases.CitySummary) cityCostResponse {
	return cityCostResponse{
		CityCost:      summary.CityCost,
		NumStreets:    summary.NumStreets,
		NumCrossroads: summary.NumCrossroads,
		NumBuildings:  summary.NumBuildings,
	}
}

type streetCostResponse struct {
	Street uint32 `json:"street"`
	Cost   uint32 `json:"cost"`
}

func NewStreetCostResponse(street datastructure.StreetID, cost uint32) streetCostResponse {
	return streetCostResponse{Street: uint32(street), Cost: cost}
}

type componentsResponse struct {
	NumComponents int                   `json:"num_components"`
	Labels        []datastructure.Index `json:"labels"`
}

func NewComponentsResponse(labels []datastructure.Index, n int) componentsResponse {
	return componentsResponse{NumComponents: n, Labels: labels}
}
