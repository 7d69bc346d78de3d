package usecases

import (
	"github.com/lintang-b-s/citynet/pkg/costfunction"
	"github.com/lintang-b-s/citynet/pkg/engine/routing"
)

type CityEngine interface {
	GetRoutingEngine() *routing.CityRoutingEngine
	GetCostFunction() costfunction.CostFunction
	Reload() error
}
