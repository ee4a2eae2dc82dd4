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

// SnapEdges clusters near-collinear edges and replaces each cluster with
// a single shared coordinate: vertical edges whose X0 values lie within
// xTolerance of each other are snapped to their cluster's mean X0;
// horizontal edges are snapped the same way on Top, within yTolerance.
// This is what lets two rulings drawn a fraction of a point apart (a
// common PDF-generator artifact) register as one table line rather than
// two near-miss lines that never quite intersect anything.
func SnapEdges(edges []Edge, xTolerance, yTolerance float64) []Edge {
	var verticals, horizontals []int
	for i, e := range edges {
		if e.Orientation == Vertical {
			verticals = append(verticals, i)
		} else {
			horizontals = append(horizontals, i)
		}
	}

	out := append([]Edge(nil), edges...)
	snapClusters(out, verticals, xTolerance, func(e *Edge) float64 { return e.X0 }, func(e *Edge, v float64) { e.X0, e.X1 = v, v })
	snapClusters(out, horizontals, yTolerance, func(e *Edge) float64 { return e.Top }, func(e *Edge, v float64) { e.Top, e.Bottom = v, v })
	return out
}

// snapClusters groups idxs by a 1-D chain on key(e) in which each key is
// within tolerance of the previous one (unlike bandAxis in the extract
// package, which compares against a running average), then overwrites
// each cluster's coordinate with its mean.
func snapClusters(edges []Edge, idxs []int, tolerance float64, key func(*Edge) float64, set func(*Edge, float64)) {
	if len(idxs) == 0 {
		return
	}
	sort.Slice(idxs, func(a, b int) bool { return key(&edges[idxs[a]]) < key(&edges[idxs[b]]) })

	var cluster []int
	flush := func() {
		if len(cluster) == 0 {
			return
		}
		var sum float64
		for _, i := range cluster {
			sum += key(&edges[i])
		}
		mean := sum / float64(len(cluster))
		for _, i := range cluster {
			set(&edges[i], mean)
		}
		cluster = nil
	}
	var running float64
	for _, i := range idxs {
		k := key(&edges[i])
		if len(cluster) == 0 || k-running <= tolerance {
			cluster = append(cluster, i)
			running = k
		} else {
			flush()
			cluster = append(cluster, i)
			running = k
		}
	}
	flush()
}
