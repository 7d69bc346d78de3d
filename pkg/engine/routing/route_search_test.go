package routing

import (
	"math/rand"
	"testing"

	da "github.com/lintang-b-s/citynet/pkg/datastructure"
	"github.com/lintang-b-s/citynet/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// sampleWithIsland is the sample city plus an unconnected fifth street holding one building.
func sampleWithIsland(t *testing.T) *da.City {
	t.Helper()
	city, err := da.BuildSampleCity()
	require.NoError(t, err)
	island, err := city.AddStreet(6)
	require.NoError(t, err)
	_, err = city.AddBuilding(island, 2, 11)
	require.NoError(t, err)
	return city
}

// triangle: street 0 meets streets 1 and 2 at c0, streets 1 and 2 meet again at c1.
// street 3 is attached to nothing.
func triangle(t *testing.T) *da.City {
	t.Helper()
	city, err := da.NewCityBuilder().
		Streets(4, 4, 4, 4).
		Crossroads(2).
		Buildings(0, da.BuildingDef{DistanceFromStart: 1, Cost: 1}).
		Buildings(1, da.BuildingDef{DistanceFromStart: 1, Cost: 1}).
		Buildings(2, da.BuildingDef{DistanceFromStart: 1, Cost: 1}).
		Buildings(3, da.BuildingDef{DistanceFromStart: 1, Cost: 1}).
		Attach(0, 0, 1, 2).
		Attach(1, 1, 2).
		Build()
	require.NoError(t, err)
	return city
}

// ring of four streets, every street has both slots filled, plus a fifth isolated street.
func ring(t *testing.T) *da.City {
	t.Helper()
	city, err := da.NewCityBuilder().
		Streets(3, 3, 3, 3, 3).
		Crossroads(4).
		Buildings(0, da.BuildingDef{DistanceFromStart: 0, Cost: 1}).
		Buildings(2, da.BuildingDef{DistanceFromStart: 0, Cost: 1}).
		Buildings(4, da.BuildingDef{DistanceFromStart: 0, Cost: 1}).
		Attach(0, 0, 1).
		Attach(1, 1, 2).
		Attach(2, 2, 3).
		Attach(3, 3, 0).
		Build()
	require.NoError(t, err)
	return city
}

func ref(street da.StreetID, pos da.Index) da.BuildingRef {
	return da.NewBuildingRef(street, pos)
}

func TestRouteExists(t *testing.T) {
	sample := sampleWithIsland(t)
	tri := triangle(t)
	rng := ring(t)

	testCases := []struct {
		name        string
		city        *da.City
		route       da.Route
		startStreet da.StreetID
		want        bool
	}{
		{name: "same building", city: sample, route: da.NewRoute(ref(0, 1), ref(0, 1)), startStreet: 0, want: true},
		{name: "same street", city: sample, route: da.NewRoute(ref(3, 0), ref(3, 4)), startStreet: 3, want: true},
		{name: "both endpoints on start street, searched from to", city: sample, route: da.NewRoute(ref(3, 4), ref(3, 0)), startStreet: 3, want: true},
		{name: "street 0 to street 3", city: sample, route: da.NewRoute(ref(0, 0), ref(3, 2)), startStreet: 0, want: true},
		{name: "street 3 to street 0", city: sample, route: da.NewRoute(ref(3, 2), ref(0, 0)), startStreet: 3, want: true},
		{name: "start street holds the destination", city: sample, route: da.NewRoute(ref(0, 0), ref(3, 2)), startStreet: 3, want: true},
		{name: "start street holds neither endpoint", city: sample, route: da.NewRoute(ref(0, 0), ref(3, 2)), startStreet: 1, want: false},
		{name: "disconnected island", city: sample, route: da.NewRoute(ref(0, 0), ref(4, 0)), startStreet: 0, want: false},
		{name: "from disconnected island", city: sample, route: da.NewRoute(ref(4, 0), ref(0, 0)), startStreet: 4, want: false},
		{name: "triangle two hops", city: tri, route: da.NewRoute(ref(0, 0), ref(2, 0)), startStreet: 0, want: true},
		{name: "triangle to isolated street", city: tri, route: da.NewRoute(ref(1, 0), ref(3, 0)), startStreet: 1, want: false},
		{name: "ring across", city: rng, route: da.NewRoute(ref(0, 0), ref(2, 0)), startStreet: 0, want: true},
		{name: "ring to isolated street", city: rng, route: da.NewRoute(ref(2, 0), ref(4, 0)), startStreet: 2, want: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			search := NewRouteSearch(NewCityRoutingEngine(tt.city, zap.NewNop()))
			got, err := search.RouteExists(tt.route, tt.startStreet)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouteExistsVisitsEachStreetOnce(t *testing.T) {
	city := ring(t)
	search := NewRouteSearch(NewCityRoutingEngine(city, zap.NewNop()))

	found, err := search.RouteExists(da.NewRoute(ref(0, 0), ref(4, 0)), 0)
	require.NoError(t, err)
	assert.False(t, found)
	// the four ring streets, each once
	assert.Equal(t, 4, search.GetNumVisitedStreets())
}

func TestRouteExistsUnknownReferences(t *testing.T) {
	city := sampleWithIsland(t)
	search := NewRouteSearch(NewCityRoutingEngine(city, zap.NewNop()))

	testCases := []struct {
		name        string
		route       da.Route
		startStreet da.StreetID
	}{
		{name: "unknown start street", route: da.NewRoute(ref(0, 0), ref(3, 0)), startStreet: 42},
		{name: "unknown from building", route: da.NewRoute(ref(0, 9), ref(3, 0)), startStreet: 0},
		{name: "unknown to street", route: da.NewRoute(ref(0, 0), ref(42, 0)), startStreet: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := search.RouteExists(tt.route, tt.startStreet)
			require.ErrorIs(t, err, util.ErrNotFound)
		})
	}
}

func TestFindRoute(t *testing.T) {
	city := sampleWithIsland(t)
	search := NewRouteSearch(NewCityRoutingEngine(city, zap.NewNop()))

	found, err := search.FindRoute(da.NewRoute(ref(1, 1), ref(2, 0)))
	require.NoError(t, err)
	assert.True(t, found)

	found, err = search.FindRoute(da.NewRoute(ref(1, 1), ref(4, 0)).Reverse())
	require.NoError(t, err)
	assert.False(t, found)
}

// RouteExists must agree with the connected components on random networks full of cycles.
func TestRouteExistsMatchesComponents(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for round := 0; round < 20; round++ {
		numStreets := 5 + r.Intn(25)
		numCrossroads := 1 + r.Intn(numStreets)

		city := da.NewCity()
		for i := 0; i < numStreets; i++ {
			s, err := city.AddStreet(uint32(1 + r.Intn(20)))
			require.NoError(t, err)
			_, err = city.AddBuilding(s, uint32(r.Intn(50)), uint32(r.Intn(100)))
			require.NoError(t, err)
		}
		for i := 0; i < numCrossroads; i++ {
			city.AddCrossroad()
		}
		for i := 0; i < numStreets*2; i++ {
			// a full street rejects the attach, which is fine here
			_ = city.Attach(da.CrossroadID(r.Intn(numCrossroads)), da.StreetID(r.Intn(numStreets)))
		}

		labels, _ := city.StreetComponents()
		engine := NewCityRoutingEngine(city, zap.NewNop())
		for u := 0; u < numStreets; u++ {
			for v := 0; v < numStreets; v++ {
				found, err := NewRouteSearch(engine).RouteExists(da.NewRoute(ref(da.StreetID(u), 0), ref(da.StreetID(v), 0)), da.StreetID(u))
				require.NoError(t, err)
				require.Equal(t, labels[u] == labels[v], found, "round %d, street %d to %d", round, u, v)
			}
		}
	}
}
