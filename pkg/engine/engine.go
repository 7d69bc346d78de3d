package engine

import (
	"sync/atomic"

	"github.com/lintang-b-s/citynet/pkg/costfunction"
	"github.com/lintang-b-s/citynet/pkg/datastructure"
	"github.com/lintang-b-s/citynet/pkg/engine/routing"
	"go.uber.org/zap"
)

type Engine struct {
	cityFilePath  string
	routingEngine atomic.Pointer[routing.CityRoutingEngine]
	costFunction  costfunction.CostFunction
	logger        *zap.Logger
}

func (e *Engine) GetRoutingEngine() *routing.CityRoutingEngine {
	return e.routingEngine.Load()
}

func (e *Engine) GetCostFunction() costfunction.CostFunction {
	return e.costFunction
}

func (e *Engine) GetCityFilePath() string {
	return e.cityFilePath
}

func NewEngine(cityFilePath string, costFunction costfunction.CostFunction, logger *zap.Logger) (*Engine, error) {
	e := &Engine{
		cityFilePath: cityFilePath,
		costFunction: costFunction,
		logger:       logger,
	}
	if err := e.Reload(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewEngineFromCity serves an in-memory city. Save writes it to cityFilePath.
func NewEngineFromCity(city *datastructure.City, cityFilePath string, costFunction costfunction.CostFunction,
	logger *zap.Logger) *Engine {
	e := &Engine{
		cityFilePath: cityFilePath,
		costFunction: costFunction,
		logger:       logger,
	}
	e.routingEngine.Store(routing.NewCityRoutingEngine(city, logger))
	return e
}

// Reload reads the city file again. Queries keep seeing the previous city until the new one is fully loaded.
func (e *Engine) Reload() error {
	e.logger.Info("Reading city from ", zap.String("cityFilePath", e.cityFilePath))
	city, err := datastructure.LoadCity(e.cityFilePath)
	if err != nil {
		e.logger.Error("failed to read city", zap.String("cityFilePath", e.cityFilePath), zap.Error(err))
		return err
	}

	e.routingEngine.Store(routing.NewCityRoutingEngine(city, e.logger))
	e.logger.Info("City loaded",
		zap.Int("streets", city.NumberOfStreets()),
		zap.Int("crossroads", city.NumberOfCrossroads()),
		zap.Int("buildings", city.NumberOfBuildings()))
	return nil
}

func (e *Engine) Save() error {
	city := e.GetRoutingEngine().GetCity()
	e.logger.Info("Writing city to ", zap.String("cityFilePath", e.cityFilePath))
	return city.SaveCity(e.cityFilePath)
}
