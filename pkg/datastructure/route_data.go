package datastructure

// Route is a query pairing two buildings. It is never stored in a City.
type Route struct {
	From BuildingRef
	To   BuildingRef
}

func NewRoute(from, to BuildingRef) Route {
	return Route{From: from, To: to}
}

// Reverse swaps both endpoints.
func (r Route) Reverse() Route {
	return Route{From: r.To, To: r.From}
}
