package datastructure

// BuildingDef is a raw (distance from street start, cost) pair, the distance is reduced on insert.
type BuildingDef struct {
	DistanceFromStart uint32
	Cost              uint32
}

// CityBuilder builds a city from plain slices. The first error stops every later step.
type CityBuilder struct {
	city *City
	err  error
}

func NewCityBuilder() *CityBuilder {
	return &CityBuilder{city: NewCity()}
}

func (cb *CityBuilder) Streets(lengths ...uint32) *CityBuilder {
	for _, length := range lengths {
		if cb.err != nil {
			return cb
		}
		_, cb.err = cb.city.AddStreet(length)
	}
	return cb
}

func (cb *CityBuilder) Crossroads(n int) *CityBuilder {
	for i := 0; i < n; i++ {
		cb.city.AddCrossroad()
	}
	return cb
}

func (cb *CityBuilder) Buildings(street StreetID, buildings ...BuildingDef) *CityBuilder {
	for _, b := range buildings {
		if cb.err != nil {
			return cb
		}
		_, cb.err = cb.city.AddBuilding(street, b.DistanceFromStart, b.Cost)
	}
	return cb
}

func (cb *CityBuilder) Attach(crossroad CrossroadID, streets ...StreetID) *CityBuilder {
	for _, s := range streets {
		if cb.err != nil {
			return cb
		}
		cb.err = cb.city.Attach(crossroad, s)
	}
	return cb
}

func (cb *CityBuilder) Build() (*City, error) {
	if cb.err != nil {
		return nil, cb.err
	}
	return cb.city, nil
}

/*
BuildSampleCity builds the four street sample network:

	 ---0--- c0
	        /|
	       / |
	      1  2
	     /   |
	   c1--3-c2
*/
func BuildSampleCity() (*City, error) {
	return NewCityBuilder().
		Streets(7, 5, 8, 12).
		Crossroads(3).
		Buildings(0, BuildingDef{1, 34}, BuildingDef{3, 64}, BuildingDef{5, 65}, BuildingDef{6, 23}).
		Buildings(1, BuildingDef{0, 75}, BuildingDef{4, 43}).
		Buildings(2, BuildingDef{6, 43}).
		Buildings(3, BuildingDef{0, 53}, BuildingDef{1, 76}, BuildingDef{1, 23}, BuildingDef{4, 23}, BuildingDef{5, 32}).
		Attach(0, 0, 1, 2).
		Attach(1, 1, 3).
		Attach(2, 3, 2).
		Build()
}
