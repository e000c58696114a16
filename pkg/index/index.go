// Package index provides an R-tree of hyper-rectangles for intersection,
// containment and nearest-box queries.
//
// The tree only selects candidates; every result is checked against the
// exact geometry with the hyperrect predicates, so intersection stays strict
// (boxes sharing only a face do not match) and containment stays inclusive.
//
// Example:
//
//	idx, err := index.New(2, index.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	box, _ := hyperrect.FromCorners([]float64{0, 0}, []float64{1, 1})
//	id, err := idx.Insert(box)
//
//	query, _ := hyperrect.FromCorners([]float64{0.5, 0.5}, []float64{3, 3})
//	hits, err := idx.SearchIntersect(query)
package index

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/beetlebugorg/hyperrect/pkg/hyperrect"
)

var (
	ErrUnbounded      = errors.New("box has infinite bounds")
	ErrInvalidOptions = errors.New("invalid index options")
	ErrInvalidPoint   = errors.New("query point must be finite")
)

// Index stores hyper-rectangles of a fixed dimension.
//
// Stored boxes are private copies: mutating a box after Insert does not
// affect the index, and boxes returned by queries are fresh copies.
// An Index is not safe for concurrent use.
type Index struct {
	dim    int
	opts   Options
	logger *zap.Logger
	rtree  *rtreego.Rtree
	items  map[uuid.UUID]*item
}

// Entry is a stored box and its ID.
type Entry struct {
	ID   uuid.UUID
	Rect *hyperrect.HyperRect
}

// item wraps a box for R-tree storage.
type item struct {
	id     uuid.UUID
	rect   *hyperrect.HyperRect
	bounds rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (it *item) Bounds() rtreego.Rect {
	return it.bounds
}

func (it *item) entry() Entry {
	return Entry{ID: it.id, Rect: it.rect.Clone()}
}

// New creates an empty index for boxes of dimension dim.
func New(dim int, opts Options) (*Index, error) {
	if dim <= 0 {
		return nil, &hyperrect.DimensionError{Got: dim}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Index{
		dim:    dim,
		opts:   opts,
		logger: logger.With(zap.Int("dimension", dim)),
		rtree:  rtreego.NewTree(dim, opts.MinChildren, opts.MaxChildren),
		items:  make(map[uuid.UUID]*item),
	}, nil
}

// Dimension returns the dimension of boxes in the index.
func (idx *Index) Dimension() int {
	return idx.dim
}

// Len returns the number of stored boxes.
func (idx *Index) Len() int {
	return len(idx.items)
}

// Insert stores a copy of r and returns its ID.
// Boxes with infinite coordinates cannot be indexed.
func (idx *Index) Insert(r *hyperrect.HyperRect) (uuid.UUID, error) {
	if r.Dimension() != idx.dim {
		err := &hyperrect.MismatchError{Got: r.Dimension(), Want: idx.dim}
		idx.logger.Warn("rejected box", zap.Error(err))
		return uuid.Nil, err
	}
	if !r.IsBounded() {
		idx.logger.Warn("rejected box", zap.Stringer("rect", r), zap.Error(ErrUnbounded))
		return uuid.Nil, fmt.Errorf("insert %s: %w", r, ErrUnbounded)
	}

	stored := r.Clone()
	bounds, err := idx.treeRect(stored)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert %s: %w", r, err)
	}

	it := &item{id: uuid.New(), rect: stored, bounds: bounds}
	idx.rtree.Insert(it)
	idx.items[it.id] = it

	idx.logger.Debug("inserted box", zap.Stringer("id", it.id), zap.Stringer("rect", stored))
	return it.id, nil
}

// Delete removes the box with the given ID. It reports whether it was present.
func (idx *Index) Delete(id uuid.UUID) bool {
	it, ok := idx.items[id]
	if !ok {
		return false
	}
	idx.rtree.Delete(it)
	delete(idx.items, id)

	idx.logger.Debug("deleted box", zap.Stringer("id", id))
	return true
}

// Get returns a copy of the box with the given ID.
func (idx *Index) Get(id uuid.UUID) (*hyperrect.HyperRect, bool) {
	it, ok := idx.items[id]
	if !ok {
		return nil, false
	}
	return it.rect.Clone(), true
}

// All returns every stored box, ordered by ID.
func (idx *Index) All() []Entry {
	result := make([]Entry, 0, len(idx.items))
	for _, it := range idx.items {
		result = append(result, it.entry())
	}
	sortByID(result)
	return result
}

// Bounds returns the smallest box covering every stored box, or nil when
// the index is empty.
func (idx *Index) Bounds() *hyperrect.HyperRect {
	if len(idx.items) == 0 {
		return nil
	}

	lo := make([]float64, idx.dim)
	hi := make([]float64, idx.dim)
	for i := range lo {
		lo[i] = math.Inf(1)
		hi[i] = math.Inf(-1)
	}
	for _, it := range idx.items {
		for i := 0; i < idx.dim; i++ {
			lo[i] = math.Min(lo[i], mustCoord(it.rect.MinCornerCoord(i)))
			hi[i] = math.Max(hi[i], mustCoord(it.rect.MaxCornerCoord(i)))
		}
	}

	bounds, err := hyperrect.FromCorners(lo, hi)
	if err != nil {
		// lo and hi have idx.dim finite entries
		panic(err)
	}
	return bounds
}

// SearchIntersect returns the boxes that intersect q, ordered by ID.
// Intersection is strict: boxes touching q only along a face are excluded.
func (idx *Index) SearchIntersect(q *hyperrect.HyperRect) ([]Entry, error) {
	if q.Dimension() != idx.dim {
		return nil, &hyperrect.MismatchError{Got: q.Dimension(), Want: idx.dim}
	}

	// Unbounded queries cannot be expressed as a tree rectangle.
	if !q.IsBounded() {
		return idx.searchIntersectLinear(q)
	}

	queryRect, err := idx.treeRect(q)
	if err != nil {
		return nil, err
	}

	var result []Entry
	for _, spatial := range idx.rtree.SearchIntersect(queryRect) {
		it := spatial.(*item)
		ok, err := it.rect.IntersectsWith(q)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, it.entry())
		}
	}
	sortByID(result)
	return result, nil
}

// searchIntersectLinear performs a full scan when no tree query is possible.
func (idx *Index) searchIntersectLinear(q *hyperrect.HyperRect) ([]Entry, error) {
	var result []Entry
	for _, it := range idx.items {
		ok, err := it.rect.IntersectsWith(q)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, it.entry())
		}
	}
	sortByID(result)
	return result, nil
}

// SearchContaining returns the boxes that contain point, boundary included,
// ordered by ID.
func (idx *Index) SearchContaining(point []float64) ([]Entry, error) {
	if err := idx.checkPoint(point); err != nil {
		return nil, err
	}

	queryRect, err := idx.cubeAround(point, 0)
	if err != nil {
		return nil, err
	}

	var result []Entry
	for _, spatial := range idx.rtree.SearchIntersect(queryRect) {
		it := spatial.(*item)
		ok, err := it.rect.Contains(point)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, it.entry())
		}
	}
	sortByID(result)
	return result, nil
}

// NearestNeighbors returns up to k boxes closest to point, nearest first.
// Distance is measured to the closest point of each box, so every box
// containing point is at distance zero. Ties are ordered by ID.
func (idx *Index) NearestNeighbors(k int, point []float64) ([]Entry, error) {
	if err := idx.checkPoint(point); err != nil {
		return nil, err
	}
	if k <= 0 || len(idx.items) == 0 {
		return nil, nil
	}

	// The tree ranks candidates against padded rectangles. The farthest of
	// its k candidates bounds the true k-th distance; rank everything within
	// that reach exactly.
	var reach float64
	for _, spatial := range idx.rtree.NearestNeighbors(k, rtreego.Point(point)) {
		if spatial == nil {
			continue
		}
		d, err := spatial.(*item).rect.DistanceSquared(point)
		if err != nil {
			return nil, err
		}
		reach = math.Max(reach, d)
	}

	queryRect, err := idx.cubeAround(point, math.Sqrt(reach))
	if err != nil {
		return nil, err
	}

	type ranked struct {
		it   *item
		dist float64
	}
	var candidates []ranked
	for _, spatial := range idx.rtree.SearchIntersect(queryRect) {
		it := spatial.(*item)
		d, err := it.rect.DistanceSquared(point)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, ranked{it: it, dist: d})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].it.id.String() < candidates[j].it.id.String()
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	result := make([]Entry, len(candidates))
	for i, c := range candidates {
		result[i] = c.it.entry()
	}
	return result, nil
}

func (idx *Index) checkPoint(point []float64) error {
	if len(point) != idx.dim {
		return &hyperrect.MismatchError{Got: len(point), Want: idx.dim}
	}
	for _, v := range point {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidPoint, point)
		}
	}
	return nil
}

// treeRect converts a bounded box to an R-tree rectangle. The tree needs
// positive lengths and recomputes the far corner as origin+length, so every
// dimension is widened by the point padding; the exact predicates filter
// the extra candidates.
func (idx *Index) treeRect(r *hyperrect.HyperRect) (rtreego.Rect, error) {
	origin, far := r.MinCorner(), r.MaxCorner()
	lengths := make([]float64, idx.dim)
	for i := range lengths {
		lengths[i] = far[i] - origin[i] + idx.pad(math.Max(math.Abs(origin[i]), math.Abs(far[i])))
	}
	return rtreego.NewRect(rtreego.Point(origin), lengths)
}

// cubeAround returns the cube centred on point with half-side radius,
// widened by the point padding.
func (idx *Index) cubeAround(point []float64, radius float64) (rtreego.Rect, error) {
	origin := make(rtreego.Point, idx.dim)
	lengths := make([]float64, idx.dim)
	for i, v := range point {
		half := radius + idx.pad(v)
		origin[i] = v - half
		lengths[i] = 2 * half
	}
	return rtreego.NewRect(origin, lengths)
}

// pad returns the padding for coordinate v: PointTolerance, or a few ulps
// of v when that is larger.
func (idx *Index) pad(v float64) float64 {
	return math.Max(idx.opts.PointTolerance, math.Abs(v)*1e-12)
}

func sortByID(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID.String() < entries[j].ID.String()
	})
}

// mustCoord unwraps accessor results for indices known to be in range.
func mustCoord(v float64, err error) float64 {
	if err != nil {
		panic(err)
	}
	return v
}
