package tablegrid

import (
	"math"
	"sort"
)

// mergeEdges snaps nearly aligned edges onto a shared position and joins
// collinear pieces into single edges.
func mergeEdges(edges []Edge, settings SeedSettings) []Edge {
	if settings.SnapXTolerance > 0 || settings.SnapYTolerance > 0 {
		edges = snapEdges(edges, settings.SnapXTolerance, settings.SnapYTolerance)
	}

	// Edges sharing an orientation and a snapped position form one rule;
	// keys keep first-seen order so output does not depend on map order.
	type edgeGroup struct {
		orientation string
		position    float64
	}

	grouped := make(map[edgeGroup][]Edge)
	var keys []edgeGroup
	for _, edge := range edges {
		key := edgeGroup{orientation: edge.Orientation}
		if edge.Orientation == "h" {
			key.position = edge.Top
		} else {
			key.position = edge.X0
		}
		if _, ok := grouped[key]; !ok {
			keys = append(keys, key)
		}
		grouped[key] = append(grouped[key], edge)
	}

	// Join the pieces of each rule
	var result []Edge
	for _, key := range keys {
		result = append(result, joinEdgeGroup(grouped[key], key.orientation, settings)...)
	}
	return result
}

func snapEdges(edges []Edge, xTol, yTol float64) []Edge {
	// Vertical rules snap on x, horizontal rules on y
	var vEdges, hEdges []Edge
	for _, e := range edges {
		if e.Orientation == "v" {
			vEdges = append(vEdges, e)
		} else {
			hEdges = append(hEdges, e)
		}
	}
	return append(snapObjects(vEdges, "v", xTol), snapObjects(hEdges, "h", yTol)...)
}

// snapObjects clusters edges whose position lies within tolerance of a
// running cluster mean and moves every member onto that mean.
func snapObjects(edges []Edge, orientation string, tolerance float64) []Edge {
	if len(edges) == 0 {
		return edges
	}

	position := func(e Edge) float64 {
		if orientation == "v" {
			return e.X0
		}
		return e.Top
	}

	type cluster struct {
		value float64
		edges []int
	}

	var clusters []cluster
	for i, edge := range edges {
		val := position(edge)
		found := false
		for j := range clusters {
			// Compared against the running mean, so a cluster can drift
			// as members join; the first cluster in range wins.
			if math.Abs(clusters[j].value-val) <= tolerance {
				clusters[j].edges = append(clusters[j].edges, i)
				// Fold val into the mean of the previous members
				sum := clusters[j].value * float64(len(clusters[j].edges)-1)
				clusters[j].value = (sum + val) / float64(len(clusters[j].edges))
				found = true
				break
			}
		}
		if !found {
			clusters = append(clusters, cluster{value: val, edges: []int{i}})
		}
	}

	// Move every member onto its cluster mean, shifting the far end by
	// the same amount so the edge keeps its length
	result := make([]Edge, len(edges))
	copy(result, edges)
	for _, c := range clusters {
		for _, idx := range c.edges {
			if orientation == "v" {
				diff := c.value - result[idx].X0
				result[idx].X0 = c.value
				result[idx].X1 += diff
			} else {
				diff := c.value - result[idx].Top
				result[idx].Top = c.value
				result[idx].Bottom += diff
			}
		}
	}
	return result
}

// joinEdgeGroup merges edges sharing a position when they overlap or the
// gap between them is within the join tolerance.
func joinEdgeGroup(edges []Edge, orientation string, settings SeedSettings) []Edge {
	if len(edges) == 0 {
		return edges
	}

	// Horizontal rules join along x, vertical rules along y
	tolerance := settings.JoinYTolerance
	lo := func(e Edge) float64 { return e.Top }
	hi := func(e Edge) float64 { return e.Bottom }
	if orientation == "h" {
		tolerance = settings.JoinXTolerance
		lo = func(e Edge) float64 { return e.X0 }
		hi = func(e Edge) float64 { return e.X1 }
	}

	// Sort a copy by start so each piece only needs checking against the
	// last joined edge
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool {
		return lo(sorted[i]) < lo(sorted[j])
	})

	joined := []Edge{sorted[0]}
	for _, current := range sorted[1:] {
		last := &joined[len(joined)-1]
		// A gap wider than the tolerance starts a separate rule
		if lo(current) > hi(*last)+tolerance {
			joined = append(joined, current)
			continue
		}
		// Overlapping or close enough: extend only if current reaches further
		if hi(current) > hi(*last) {
			if orientation == "h" {
				last.X1 = current.X1
				last.Width = last.X1 - last.X0
			} else {
				last.Bottom = current.Bottom
				last.Height = last.Bottom - last.Top
			}
		}
	}
	return joined
}

// filterEdgesByLength drops edges shorter than minLength along their
// orientation.
func filterEdgesByLength(edges []Edge, minLength float64) []Edge {
	if minLength <= 0 {
		return edges
	}

	result := make([]Edge, 0, len(edges))
	for _, edge := range edges {
		length := edge.Width
		if edge.Orientation == "v" {
			length = edge.Height
		}
		if length >= minLength {
			result = append(result, edge)
		}
	}
	return result
}
