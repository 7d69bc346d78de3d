package costfunction

import (
	"math"
	"testing"

	"github.com/lintang-b-s/citynet/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreetCost(t *testing.T) {
	city, err := datastructure.BuildSampleCity()
	require.NoError(t, err)
	cc := NewConstructionCost()

	testCases := []struct {
		name   string
		street datastructure.StreetID
		want   uint32
	}{
		{name: "street 0", street: 0, want: 7*5 + 4 + 34 + 64 + 65 + 23},
		{name: "street 1", street: 1, want: 5*5 + 2 + 75 + 43},
		{name: "street 2", street: 2, want: 8*5 + 1 + 43},
		{name: "street 3", street: 3, want: 12*5 + 5 + 53 + 76 + 23 + 23 + 32},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := city.GetStreet(tt.street)
			require.True(t, ok)
			assert.Equal(t, tt.want, cc.StreetCost(s))
		})
	}
}

func TestCityCost(t *testing.T) {
	city, err := datastructure.BuildSampleCity()
	require.NoError(t, err)
	cc := NewConstructionCost()

	// (225+145+84+272)*2 + (3+2+2)*15
	assert.Equal(t, uint32(1557), cc.CityCost(city))
	// no mutation in between, same answer
	assert.Equal(t, cc.CityCost(city), cc.CityCost(city))

	assert.Equal(t, uint32(0), cc.CityCost(datastructure.NewCity()))
}

func TestCityCostWraps(t *testing.T) {
	city := datastructure.NewCity()
	s, err := city.AddStreet(1)
	require.NoError(t, err)
	_, err = city.AddBuilding(s, 0, math.MaxUint32)
	require.NoError(t, err)

	cc := NewConstructionCost()
	st, _ := city.GetStreet(s)

	// 5 + 1 + (2^32-1) wraps to 5
	assert.Equal(t, uint32(5), cc.StreetCost(st))
	assert.Equal(t, uint32(10), cc.CityCost(city))
}

func TestCityCostCustomRates(t *testing.T) {
	city, err := datastructure.BuildSampleCity()
	require.NoError(t, err)

	cc := NewConstructionCostWithRates(1, 1, 0)
	// 32 meters, 12 buildings, 554 building cost
	assert.Equal(t, uint32(32+12+186+118+43+207), cc.CityCost(city))
}
