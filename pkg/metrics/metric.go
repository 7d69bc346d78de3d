package metrics

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lintang-b-s/citynet/pkg/costfunction"
	da "github.com/lintang-b-s/citynet/pkg/datastructure"
	"github.com/lintang-b-s/citynet/pkg/util"
)

// CostReport is the per street and per crossroad breakdown of a city cost.
// streetCosts are before the street multiplier, crossroadCosts already include theirs.
type CostReport struct {
	streetCosts      []uint32
	crossroadCosts   []uint32
	streetMultiplier uint32
	total            uint32
}

func NewCostReport(city *da.City, costFunction costfunction.CostFunction, streetMultiplier uint32) *CostReport {
	report := &CostReport{
		streetCosts:      make([]uint32, 0, city.NumberOfStreets()),
		crossroadCosts:   make([]uint32, 0, city.NumberOfCrossroads()),
		streetMultiplier: streetMultiplier,
	}

	city.ForStreets(func(s *da.Street) {
		report.streetCosts = append(report.streetCosts, costFunction.StreetCost(s))
	})
	city.ForCrossroads(func(cr *da.Crossroad) {
		report.crossroadCosts = append(report.crossroadCosts, costFunction.CrossroadCost(cr))
	})
	report.total = report.sum()
	return report
}

func (rep *CostReport) sum() uint32 {
	var total uint32
	for _, c := range rep.streetCosts {
		total += c * rep.streetMultiplier
	}
	for _, c := range rep.crossroadCosts {
		total += c
	}
	return total
}

func (rep *CostReport) GetStreetCosts() []uint32 {
	return rep.streetCosts
}

func (rep *CostReport) GetCrossroadCosts() []uint32 {
	return rep.crossroadCosts
}

func (rep *CostReport) GetTotal() uint32 {
	return rep.total
}

// MostExpensiveStreet returns the street with the highest cost, ties go to the lower id.
func (rep *CostReport) MostExpensiveStreet() (da.StreetID, uint32, bool) {
	if len(rep.streetCosts) == 0 {
		return da.INVALID_STREET, 0, false
	}
	best := 0
	for i, c := range rep.streetCosts {
		if c > rep.streetCosts[best] {
			best = i
		}
	}
	return da.StreetID(best), rep.streetCosts[best], true
}

/*
WriteToFile layout:

	<num streets> <num crossroads> <street multiplier> <total>
	<street costs>
	<crossroad costs>
*/
func (rep *CostReport) WriteToFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return util.WrapErrorf(err, util.ErrIO, "create report %s", filename)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "%d %d %d %d\n", len(rep.streetCosts), len(rep.crossroadCosts), rep.streetMultiplier, rep.total)
	writeCosts(w, rep.streetCosts)
	writeCosts(w, rep.crossroadCosts)

	if err := w.Flush(); err != nil {
		return util.WrapErrorf(err, util.ErrIO, "write report %s", filename)
	}
	return nil
}

func writeCosts(w *bufio.Writer, costs []uint32) {
	for i, c := range costs {
		fmt.Fprintf(w, "%d", c)
		if i < len(costs)-1 {
			fmt.Fprintf(w, " ")
		}
	}
	fmt.Fprintf(w, "\n")
}

func ReadFromFile(filename string) (*CostReport, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrIO, "open report %s", filename)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	line, err := util.ReadLine(r)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrCorruptData, "read report header")
	}
	parts := fields(line)
	if len(parts) != 4 {
		return nil, util.WrapErrorf(nil, util.ErrCorruptData, "invalid report header %q", line)
	}
	header := make([]uint32, 4)
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrCorruptData, "invalid report header %q", line)
		}
		header[i] = uint32(v)
	}

	streetCosts, err := readCosts(r, int(header[0]))
	if err != nil {
		return nil, err
	}
	crossroadCosts, err := readCosts(r, int(header[1]))
	if err != nil {
		return nil, err
	}

	report := &CostReport{
		streetCosts:      streetCosts,
		crossroadCosts:   crossroadCosts,
		streetMultiplier: header[2],
		total:            header[3],
	}
	if report.sum() != report.total {
		return nil, util.WrapErrorf(nil, util.ErrCorruptData, "report total %d does not match its costs (%d)",
			report.total, report.sum())
	}
	return report, nil
}

func readCosts(r *bufio.Reader, n int) ([]uint32, error) {
	line, err := util.ReadLine(r)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrCorruptData, "read report costs")
	}
	parts := fields(line)
	if len(parts) != n {
		return nil, util.WrapErrorf(nil, util.ErrCorruptData, "expected %d costs, got %d", n, len(parts))
	}
	costs := make([]uint32, n)
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrCorruptData, "invalid cost %q", p)
		}
		costs[i] = uint32(v)
	}
	return costs, nil
}

func fields(s string) []string {
	return strings.Fields(s)
}
