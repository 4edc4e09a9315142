// Package genetics computes relatedness over a pedigree: ancestor-path
// discovery, autosomal coefficients, sex-linked sharing tables, and
// consanguinity adjustments.
package genetics

import (
	"sort"

	"github.com/kindredlab/kindred/internal/models"
	"github.com/kindredlab/kindred/internal/pedigree"
)

// maxWalkDepth caps the upward walk. Sessions seed at most four
// generations, so anything deeper indicates a degenerate graph.
const maxWalkDepth = 64

// ancestorWalk is the result of one upward walk: minimal depth per
// reachable ancestor and, per ancestor, the node the walk arrived from
// (one step closer to the origin), for route reconstruction. The origin
// itself is included at depth zero.
type ancestorWalk struct {
	depth map[string]int
	pred  map[string]string
}

// walkAncestors climbs parent edges breadth-first from origin using an
// explicit queue. Breadth-first order makes the recorded depth minimal
// even when the graph reaches an ancestor along routes of different
// lengths.
func walkAncestors(st *pedigree.Store, origin string) ancestorWalk {
	w := ancestorWalk{
		depth: map[string]int{origin: 0},
		pred:  map[string]string{},
	}

	queue := []string{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if w.depth[cur] >= maxWalkDepth {
			continue
		}

		for _, parent := range st.ParentsOf(cur) {
			if _, seen := w.depth[parent]; seen {
				continue
			}
			w.depth[parent] = w.depth[cur] + 1
			w.pred[parent] = cur
			queue = append(queue, parent)
		}
	}

	return w
}

// FindPaths returns one independent genetic path per common ancestor of
// the two persons. A common ancestor whose shortest route to either
// person passes through another common ancestor is excluded, so the
// surviving paths never double-count a lineage. Targets count as their
// own ancestors at depth zero, which covers direct ancestor-descendant
// pairs. A missing person yields an empty result.
func FindPaths(st *pedigree.Store, aID, bID string) []models.AncestorPath {
	a, b := st.Resolve(aID), st.Resolve(bID)
	if !st.Exists(a) || !st.Exists(b) {
		return nil
	}

	wa := walkAncestors(st, a)
	wb := walkAncestors(st, b)

	common := make(map[string]bool)
	for anc := range wa.depth {
		if _, ok := wb.depth[anc]; ok {
			common[anc] = true
		}
	}

	paths := make([]models.AncestorPath, 0, len(common))
	for anc := range common {
		if dominated(anc, wa, common) || dominated(anc, wb, common) {
			continue
		}
		paths = append(paths, models.AncestorPath{
			CommonAncestor: anc,
			Steps:          wa.depth[anc] + wb.depth[anc],
			Route:          buildRoute(anc, wa, wb),
		})
	}

	sort.Slice(paths, func(i, j int) bool {
		if paths[i].Steps != paths[j].Steps {
			return paths[i].Steps < paths[j].Steps
		}
		return paths[i].CommonAncestor < paths[j].CommonAncestor
	})

	return paths
}

// dominated reports whether the walk's route from anc back to its
// origin touches another common ancestor (the origin included).
func dominated(anc string, w ancestorWalk, common map[string]bool) bool {
	for cur := w.pred[anc]; cur != ""; cur = w.pred[cur] {
		if common[cur] {
			return true
		}
	}

	return false
}

// buildRoute assembles the full chain from walk A's origin up to anc
// and down walk B to its origin, endpoints included.
func buildRoute(anc string, wa, wb ancestorWalk) []string {
	var up []string
	for cur := anc; cur != ""; cur = wa.pred[cur] {
		up = append(up, cur)
	}

	// up currently runs anc -> ... -> a; reverse into route order.
	route := make([]string, 0, len(up)+4)
	for i := len(up) - 1; i >= 0; i-- {
		route = append(route, up[i])
	}

	for cur := wb.pred[anc]; cur != ""; cur = wb.pred[cur] {
		route = append(route, cur)
	}

	return route
}
