// File: methods_vertices.go
// Role: Point insertion & lookup.
//
// Determinism:
//   - Points() returns points in insertion order.
//
// Concurrency:
//   - All methods take g.mu (write lock for AddPoint, read lock otherwise).
package core

import "fmt"

// AddPoint stores p.
//
// Implementation:
//   - Stage 1: Reject an invalid identifier (ErrInvalidPointID).
//   - Stage 2: Under the write lock, reject a duplicate (ErrDuplicatePoint).
//   - Stage 3: Append to the ordered catalog and index the position.
//
// Errors:
//   - ErrInvalidPointID, ErrDuplicatePoint (wrapped with the identifier).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddPoint(p Point) error {
	if !p.Valid() {
		return fmt.Errorf("AddPoint(%q): %w", p.ID, ErrInvalidPointID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.pointIdx[p.ID]; exists {
		return fmt.Errorf("AddPoint(%s): %w", p.ID, ErrDuplicatePoint)
	}
	g.pointIdx[p.ID] = len(g.points)
	g.points = append(g.points, p)

	return nil
}

// HasPoint reports whether a point with the given ID is stored.
// Invalid IDs are never stored, so they report false.
// Complexity: O(1)
func (g *Graph) HasPoint(id PointID) bool {
	if !id.Valid() {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pointIdx[id]

	return ok
}

// Point returns the stored point with the given ID.
// ok is false if id is invalid or absent; p is then the zero Point.
// Complexity: O(1)
func (g *Graph) Point(id PointID) (Point, bool) {
	if !id.Valid() {
		return Point{}, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.pointIdx[id]
	if !ok {
		return Point{}, false
	}

	return g.points[i], true
}
