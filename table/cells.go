// seehuhn.de/go/pdf - a library for reading and writing PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package table

import "sort"

// Cell is a single rectangular cell bounded by four rulings, in the
// top-left frame.
type Cell struct {
	X0, X1      float64
	Top, Bottom float64
}

// FindCells derives cells from intersection points: for each point P it
// looks for the next point Q below it sharing P's vertical edge, and the
// next point R to its right sharing P's horizontal edge. If the fourth
// corner S = (R.X, Q.Y), closing the rectangle via Q's horizontal edge
// and R's vertical edge, is also present among the intersections, the
// four points bound a cell.
func FindCells(points []Intersection) []Cell {
	byVEdge := make(map[int][]Intersection)
	byHEdge := make(map[int][]Intersection)
	for _, p := range points {
		byVEdge[p.VEdgeID] = append(byVEdge[p.VEdgeID], p)
		byHEdge[p.HEdgeID] = append(byHEdge[p.HEdgeID], p)
	}
	for id := range byVEdge {
		sort.Slice(byVEdge[id], func(i, j int) bool { return byVEdge[id][i].Y < byVEdge[id][j].Y })
	}
	for id := range byHEdge {
		sort.Slice(byHEdge[id], func(i, j int) bool { return byHEdge[id][i].X < byHEdge[id][j].X })
	}

	index := make(map[[2]int]Intersection) // keyed by (X*1e4, Y*1e4), truncated to int
	key := func(x, y float64) [2]int { return [2]int{int(x * 1e4), int(y * 1e4)} }
	for _, p := range points {
		index[key(p.X, p.Y)] = p
	}

	below := func(p Intersection) (Intersection, bool) {
		col := byVEdge[p.VEdgeID]
		for _, q := range col {
			if q.Y > p.Y {
				return q, true
			}
		}
		return Intersection{}, false
	}
	right := func(p Intersection) (Intersection, bool) {
		row := byHEdge[p.HEdgeID]
		for _, r := range row {
			if r.X > p.X {
				return r, true
			}
		}
		return Intersection{}, false
	}

	var cells []Cell
	for _, p := range points {
		q, ok := below(p)
		if !ok {
			continue
		}
		r, ok := right(p)
		if !ok {
			continue
		}
		s, ok := index[key(r.X, q.Y)]
		if !ok {
			continue
		}
		if s.VEdgeID != r.VEdgeID || s.HEdgeID != q.HEdgeID {
			continue
		}
		cells = append(cells, Cell{X0: p.X, X1: r.X, Top: p.Y, Bottom: q.Y})
	}
	return cells
}
