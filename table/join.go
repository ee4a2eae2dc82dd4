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

// JoinEdgeGroups merges collinear edges (same orientation and position,
// already snapped by [SnapEdges]) whose gap along their own axis is at
// most tolerance into a single longer edge — e.g. a dashed ruling drawn
// as many short strokes becomes one edge spanning the whole dash run.
func JoinEdgeGroups(edges []Edge, tolerance float64) []Edge {
	type groupKey struct {
		orientation Orientation
		pos         float64
	}
	groups := make(map[groupKey][]Edge)
	var order []groupKey
	for _, e := range edges {
		k := groupKey{orientation: e.Orientation, pos: e.Top}
		if e.Orientation == Vertical {
			k.pos = e.X0
		}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e)
	}

	var out []Edge
	for _, k := range order {
		out = append(out, joinOneGroup(groups[k], tolerance)...)
	}
	for i := range out {
		out[i].ID = i
	}
	return out
}

func joinOneGroup(group []Edge, tolerance float64) []Edge {
	if len(group) == 0 {
		return nil
	}
	orientation := group[0].Orientation
	if orientation == Vertical {
		sort.Slice(group, func(i, j int) bool { return group[i].Top < group[j].Top })
	} else {
		sort.Slice(group, func(i, j int) bool { return group[i].X0 < group[j].X0 })
	}

	var out []Edge
	cur := group[0]
	for _, e := range group[1:] {
		if orientation == Vertical {
			if e.Top-cur.Bottom <= tolerance {
				if e.Bottom > cur.Bottom {
					cur.Bottom = e.Bottom
				}
				continue
			}
		} else {
			if e.X0-cur.X1 <= tolerance {
				if e.X1 > cur.X1 {
					cur.X1 = e.X1
				}
				continue
			}
		}
		out = append(out, cur)
		cur = e
	}
	out = append(out, cur)
	return out
}
