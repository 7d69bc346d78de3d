package datastructure

// StreetComponents labels every street with the id of its connected component. Two streets share a
// component iff a chain of shared crossroads joins them. Component ids follow street order: the
// component of street 0 is 0, the next unseen street opens component 1, and so on.
func (c *City) StreetComponents() ([]Index, int) {
	m := len(c.streets)
	labels := make([]Index, m)
	visited := make([]bool, m)

	numComponents := 0
	for s := 0; s < m; s++ {
		if !visited[s] {
			component := make([]StreetID, 0, 4)
			c.dfs(StreetID(s), &component, visited)
			for _, street := range component {
				labels[street] = Index(numComponents)
			}
			numComponents++
		}
	}
	return labels, numComponents
}

func (c *City) dfs(s StreetID, output *[]StreetID, visited []bool) {
	visited[s] = true

	c.ForNeighborStreets(s, func(next StreetID) {
		if int(next) < len(visited) && !visited[next] {
			c.dfs(next, output, visited)
		}
	})

	*output = append(*output, s)
}
