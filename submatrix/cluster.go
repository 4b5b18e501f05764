// SPDX-License-Identifier: MIT

package submatrix

// unitSteps are the four position offsets that make two corners adjacent:
// up, down, left, right. Rectangle size plays no part.
var unitSteps = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Clusters partitions corners into connected components, where two corners
// are adjacent iff they differ by exactly one unit step in row or column.
//
// Clusters are emitted in the order their seed corner first appears in
// corners; within a cluster, corners appear in BFS dequeue order. Every
// distinct corner lands in exactly one cluster; repeated corners are
// treated as one. Isolated corners form singleton clusters.
//
// Time:   O(n) with the dense index, O(n) expected with the sparse fallback.
// Memory: O(n) plus the bounding box when dense.
func Clusters(corners []Coord) [][]Coord {
	if len(corners) == 0 {
		return nil
	}
	idx := newPositionIndex(corners)
	seen := make([]bool, idx.size())
	queue := make([]Coord, 0, len(corners))
	var out [][]Coord

	for _, p := range corners {
		s, _ := idx.lookup(p)
		if seen[s] {
			continue
		}
		seen[s] = true
		queue = append(queue[:0], p)
		var cluster []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			cluster = append(cluster, u)
			for _, step := range unitSteps {
				v := Coord{Row: u.Row + step.Row, Col: u.Col + step.Col}
				vs, ok := idx.lookup(v)
				if !ok || seen[vs] {
					continue
				}
				seen[vs] = true
				queue = append(queue, v)
			}
		}
		out = append(out, cluster)
	}
	return out
}

// denseSlack bounds how much larger than the corner count the bounding box
// may be before positionIndex falls back to a map.
const (
	denseSlack = 8
	denseFloor = 1024
)

// positionIndex answers "is this corner present, and what is its slot".
// Slots are dense integers in [0, size()) used to address the visited set.
// Candidate sets from Locate are bounded by the grid, so the dense
// bounding-box layout is the common case.
type positionIndex struct {
	minRow, minCol int
	height, width  int
	present        []bool        // dense mode, row-major over the bounding box
	sparse         map[Coord]int // sparse mode, slot = first-seen ordinal
}

func newPositionIndex(corners []Coord) positionIndex {
	minR, maxR := corners[0].Row, corners[0].Row
	minC, maxC := corners[0].Col, corners[0].Col
	for _, p := range corners[1:] {
		minR, maxR = min(minR, p.Row), max(maxR, p.Row)
		minC, maxC = min(minC, p.Col), max(maxC, p.Col)
	}
	h, w := int64(maxR)-int64(minR)+1, int64(maxC)-int64(minC)+1
	limit := int64(denseSlack*len(corners) + denseFloor)

	if h <= limit && w <= limit && h*w <= limit {
		idx := positionIndex{
			minRow: minR, minCol: minC,
			height: int(h), width: int(w),
			present: make([]bool, h*w),
		}
		for _, p := range corners {
			idx.present[idx.denseSlot(p)] = true
		}
		return idx
	}

	sparse := make(map[Coord]int, len(corners))
	for _, p := range corners {
		if _, ok := sparse[p]; !ok {
			sparse[p] = len(sparse)
		}
	}
	return positionIndex{sparse: sparse}
}

func (x positionIndex) size() int {
	if x.sparse != nil {
		return len(x.sparse)
	}
	return len(x.present)
}

func (x positionIndex) denseSlot(p Coord) int {
	return (p.Row-x.minRow)*x.width + (p.Col - x.minCol)
}

// lookup returns p's slot and whether p is one of the indexed corners.
func (x positionIndex) lookup(p Coord) (int, bool) {
	if x.sparse != nil {
		s, ok := x.sparse[p]
		return s, ok
	}
	r, c := p.Row-x.minRow, p.Col-x.minCol
	if r < 0 || r >= x.height || c < 0 || c >= x.width {
		return 0, false
	}
	s := r*x.width + c
	return s, x.present[s]
}
