// Package path finds shortest walkable paths over tile graphs.
package path

import "github.com/zyedidia/generic/heap"

// MaxSteps bounds the number of node expansions of a single search.
const MaxSteps = 65536

// Exit is a reachable neighbour of a tile and the cost of stepping onto it.
type Exit struct {
	Idx  int
	Cost float64
}

// Graph describes a walkable tile graph.
type Graph interface {
	// Exits returns the tiles reachable in one step from idx.
	Exits(idx int) []Exit
	// Distance is the heuristic distance between two tiles.
	Distance(a, b int) float64
}

// Result is the outcome of a search. On success Steps starts with the start
// tile and ends with the goal tile.
type Result struct {
	Success bool
	Steps   []int
}

type node struct {
	idx int
	f   float64
	g   float64
	seq int
}

// Find runs A* from start to goal.
func Find(g Graph, start, goal int) Result {
	if start == goal {
		return Result{Success: true, Steps: []int{start}}
	}

	open := heap.New[node](func(a, b node) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})
	seq := 0
	open.Push(node{idx: start, f: g.Distance(start, goal)})

	cost := map[int]float64{start: 0}
	parent := map[int]int{}
	closed := map[int]bool{}

	for steps := 0; open.Size() > 0 && steps < MaxSteps; steps++ {
		current, _ := open.Pop()
		if closed[current.idx] {
			continue
		}
		if current.idx == goal {
			return Result{Success: true, Steps: reconstruct(parent, start, goal)}
		}
		closed[current.idx] = true

		for _, exit := range g.Exits(current.idx) {
			if closed[exit.Idx] {
				continue
			}
			tentative := current.g + exit.Cost
			if known, ok := cost[exit.Idx]; ok && known <= tentative {
				continue
			}
			cost[exit.Idx] = tentative
			parent[exit.Idx] = current.idx
			seq++
			open.Push(node{
				idx: exit.Idx,
				g:   tentative,
				f:   tentative + g.Distance(exit.Idx, goal),
				seq: seq,
			})
		}
	}

	return Result{Success: false}
}

// reconstruct walks parent links back from goal.
func reconstruct(parent map[int]int, start, goal int) []int {
	steps := []int{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		steps = append(steps, cur)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
