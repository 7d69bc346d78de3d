package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lintang-b-s/citynet/pkg"
	"github.com/lintang-b-s/citynet/pkg/costfunction"
	"github.com/lintang-b-s/citynet/pkg/datastructure"
	"github.com/lintang-b-s/citynet/pkg/engine/routing"
	"github.com/lintang-b-s/citynet/pkg/logger"
	"github.com/lintang-b-s/citynet/pkg/metrics"
	"go.uber.org/zap"
)

var (
	cityFile     = flag.String("city", "./data/city.cty", "city file, a .bz2 suffix means bzip2 compressed")
	reportFile   = flag.String("report", "./data/cost_report.txt", "cost report output file")
	fromStreet   = flag.Uint("from_street", 0, "street of the origin building")
	fromBuilding = flag.Uint("from_building", 0, "position of the origin building in its street")
	toStreet     = flag.Uint("to_street", 0, "street of the destination building")
	toBuilding   = flag.Uint("to_building", 0, "position of the destination building in its street")
	startStreet  = flag.Int("start_street", -1, "street the search starts from, defaults to from_street")
)

const usage = `usage: citytool [flags] <seed|cost|route|report>

  seed    write the four street sample city to -city
  cost    print the construction cost of -city
  route   check whether a route joins two buildings of -city
  report  write the per street cost breakdown of -city to -report
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(flag.Arg(0), log); err != nil {
		log.Error("citytool failed", zap.String("command", flag.Arg(0)), zap.Error(err))
		os.Exit(1)
	}
}

func run(command string, log *zap.Logger) error {
	if command == "seed" {
		city, err := datastructure.BuildSampleCity()
		if err != nil {
			return err
		}
		if err := city.SaveCity(*cityFile); err != nil {
			return err
		}
		log.Info("sample city written", zap.String("city", *cityFile))
		return nil
	}

	city, err := datastructure.LoadCity(*cityFile)
	if err != nil {
		return err
	}
	costFunction := costfunction.NewConstructionCost()

	switch command {
	case "cost":
		fmt.Println(costFunction.CityCost(city))
	case "route":
		route := datastructure.NewRoute(
			datastructure.NewBuildingRef(datastructure.StreetID(*fromStreet), datastructure.Index(*fromBuilding)),
			datastructure.NewBuildingRef(datastructure.StreetID(*toStreet), datastructure.Index(*toBuilding)),
		)
		start := route.From.Street
		if *startStreet >= 0 {
			start = datastructure.StreetID(*startStreet)
		}
		found, err := routing.NewRouteSearch(routing.NewCityRoutingEngine(city, log)).RouteExists(route, start)
		if err != nil {
			return err
		}
		fmt.Println(found)
	case "report":
		report := metrics.NewCostReport(city, costFunction, pkg.STREET_MULTIPLIER)
		if err := report.WriteToFile(*reportFile); err != nil {
			return err
		}
		if street, cost, ok := report.MostExpensiveStreet(); ok {
			log.Info("most expensive street", zap.Uint32("street", uint32(street)), zap.Uint32("cost", cost))
		}
		log.Info("cost report written", zap.String("report", *reportFile), zap.Uint32("total", report.GetTotal()))
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
