package pkg

import "math"

// construction cost policy
const (
	ROAD_UNIT_COST       uint32 = 5  // per meter of street
	STREET_MULTIPLIER    uint32 = 2  // applied to every street cost
	CROSSROAD_MULTIPLIER uint32 = 15 // per street meeting at a crossroad
)

const (
	// INVALID_STREET_INDEX is written in place of a street index that cannot be resolved on save.
	INVALID_STREET_INDEX uint64 = math.MaxUint64
)
