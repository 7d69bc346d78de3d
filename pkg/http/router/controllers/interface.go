package controllers

import (
	"github.com/lintang-b-s/citynet/pkg/datastructure"
	"github.com/lintang-b-s/citynet/pkg/http/usecases"
)

type CityService interface {
	CityCost() usecases.CitySummary
	StreetCost(street datastructure.StreetID) (uint32, error)
	RouteExists(route datastructure.Route, startStreet datastructure.StreetID) (bool, error)
	RouteExistsBatch(queries []usecases.RouteQuery) []usecases.RouteAnswer
	StreetComponents() ([]datastructure.Index, int)
	Reload() error
}
