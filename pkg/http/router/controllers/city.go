package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/citynet/pkg/datastructure"
	helper "github.com/lintang-b-s/citynet/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/citynet/pkg/http/usecases"
	"go.uber.org/zap"
)

type cityAPI struct {
	cityService CityService
	log         *zap.Logger
}

func New(cityService CityService, log *zap.Logger) *cityAPI {
	return &cityAPI{
		cityService: cityService,
		log:         log,
	}
}

func (api *cityAPI) Routes(group *helper.RouteGroup) {
	group.GET("/cost", api.cityCost)
	group.GET("/streets/:id/cost", api.streetCost)
	group.GET("/routeExists", api.routeExists)
	group.POST("/routeExists", api.routeExistsBatch)
	group.GET("/components", api.components)
	group.POST("/reload", api.reload)
}

// cityCost
//
//	@Summary		construction cost of the whole city
//	@Tags			city
//	@Produce		application/json
//	@Router			/api/cost [get]
func (api *cityAPI) cityCost(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	summary := api.cityService.CityCost()

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewCityCostResponse(summary)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// streetCost
//
//	@Summary		construction cost of one street, before the street multiplier
//	@Tags			city
//	@Param			id	path	int	true	"street id"
//	@Produce		application/json
//	@Router			/api/streets/{id}/cost [get]
func (api *cityAPI) streetCost(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	id, err := strconv.ParseUint(p.ByName("id"), 10, 32)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("street id must be a valid unsigned int"))
		return
	}

	cost, err := api.cityService.StreetCost(datastructure.StreetID(id))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewStreetCostResponse(datastructure.StreetID(id), cost)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func parseUintParam(query url.Values, name string) (*uint32, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid unsigned int", name)
	}
	v32 := uint32(v)
	return &v32, nil
}

// routeExists
//
//	@Summary		whether a chain of streets joins two buildings
//	@Tags			routing
//	@Param			from_street		query	int	true	"street of the origin building"
//	@Param			from_building	query	int	true	"position of the origin building in its street"
//	@Param			to_street		query	int	true	"street of the destination building"
//	@Param			to_building		query	int	true	"position of the destination building in its street"
//	@Param			start_street	query	int	false	"street the search starts from, defaults to from_street"
//	@Produce		application/json
//	@Router			/api/routeExists [get]
func (api *cityAPI) routeExists(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request routeExistsRequest
		err     error
	)

	query := r.URL.Query()
	params := []struct {
		name string
		dst  **uint32
	}{
		{"from_street", &request.FromStreet},
		{"from_building", &request.FromBuilding},
		{"to_street", &request.ToStreet},
		{"to_building", &request.ToBuilding},
		{"start_street", &request.StartStreet},
	}
	for _, param := range params {
		*param.dst, err = parseUintParam(query, param.name)
		if err != nil {
			api.BadRequestResponse(w, r, err)
			return
		}
	}

	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	q := request.ToRouteQuery()
	exists, err := api.cityService.RouteExists(q.Route, q.StartStreet)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteExistsResponse(exists)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// routeExistsBatch
//
//	@Summary		answers many route queries at once
//	@Tags			routing
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/api/routeExists [post]
func (api *cityAPI) routeExistsBatch(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request routeExistsBatchRequest

	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	queries := make([]usecases.RouteQuery, len(request.Queries))
	for i, q := range request.Queries {
		queries[i] = q.ToRouteQuery()
	}
	answers := api.cityService.RouteExistsBatch(queries)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteExistsBatchResponse(answers)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// components
//
//	@Summary		connected component label of every street
//	@Tags			routing
//	@Produce		application/json
//	@Router			/api/components [get]
func (api *cityAPI) components(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	labels, n := api.cityService.StreetComponents()

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewComponentsResponse(labels, n)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// reload
//
//	@Summary		reads the city file again
//	@Tags			city
//	@Produce		application/json
//	@Router			/api/reload [post]
func (api *cityAPI) reload(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.cityService.Reload(); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	summary := api.cityService.CityCost()
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewCityCostResponse(summary)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
