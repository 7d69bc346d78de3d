package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/citynet/pkg/costfunction"
	"github.com/lintang-b-s/citynet/pkg/engine"
	"github.com/lintang-b-s/citynet/pkg/http"
	"github.com/lintang-b-s/citynet/pkg/http/usecases"
	"github.com/lintang-b-s/citynet/pkg/logger"
	"github.com/lintang-b-s/citynet/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "enable the global request rate limiter")
	cityFile     = flag.String("city", "", "city file, overrides CITY_FILE")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}

	cityFilePath := viper.GetString("CITY_FILE")
	if *cityFile != "" {
		cityFilePath = *cityFile
	}

	costFunction := costfunction.NewConstructionCostWithRates(
		viper.GetUint32("COST_ROAD_UNIT"),
		viper.GetUint32("COST_STREET_MULTIPLIER"),
		viper.GetUint32("COST_CROSSROAD_MULTIPLIER"))

	cityEngine, err := engine.NewEngine(cityFilePath, costFunction, logger)
	if err != nil {
		panic(err)
	}

	cityService, err := usecases.NewCityService(logger, cityEngine,
		viper.GetInt("ROUTE_WORKERS"), viper.GetInt("ROUTE_CACHE_SIZE"))
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	if _, err := api.Use(ctx, logger, *useRateLimit, cityService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	logger.Info("citynet Server Stopped", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil && err != context.Canceled {
		logger.Error("server exited with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
