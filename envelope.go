package spatial

import (
	"fmt"
	"math"
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Pt is a shortcut for creating a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Envelope returns the degenerate envelope (x,x,y,y) of p.
func (p Point) Envelope() Envelope {
	return Envelope{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Bounded is implemented by everything able to report its own bounding box,
// usually geometries of the surrounding application.
type Bounded interface {
	Envelope() Envelope
}

// Envelope is an axis-aligned bounding rectangle (sometimes called MBR).
//
// An envelope is a value type; all operations return new envelopes and never
// modify the receiver. The zero value is the degenerate envelope at the
// origin, which is a valid (non-null) envelope. A null envelope, created by
// NullEnvelope, stands for "no extent at all": it is the neutral element of
// Union and intersects nothing.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewEnvelope creates an envelope spanning x1…x2 and y1…y2. The coordinates
// may be given in any order.
func NewEnvelope(x1, x2, y1, y2 float64) Envelope {
	return Envelope{
		MinX: math.Min(x1, x2),
		MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2),
		MaxY: math.Max(y1, y2),
	}
}

// Rect creates an envelope from its lower left and upper right corner, in the
// order a map client usually writes it down: [minx, miny, maxx, maxy].
func Rect(minx, miny, maxx, maxy float64) Envelope {
	return NewEnvelope(minx, maxx, miny, maxy)
}

// NullEnvelope returns an envelope without extent.
func NullEnvelope() Envelope {
	return Envelope{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// EnvelopeOf returns the smallest envelope containing all points. For an
// empty argument list, a null envelope is returned.
func EnvelopeOf(points ...Point) Envelope {
	e := NullEnvelope()
	for _, p := range points {
		e = e.Union(p.Envelope())
	}
	return e
}

// IsNull is true for envelopes without extent.
func (e Envelope) IsNull() bool {
	return e.MaxX < e.MinX || e.MaxY < e.MinY
}

// Check returns an error if e is not usable as an index key, i.e. if it is
// null or one of its coordinates is NaN.
func (e Envelope) Check() error {
	if math.IsNaN(e.MinX) || math.IsNaN(e.MinY) || math.IsNaN(e.MaxX) || math.IsNaN(e.MaxY) {
		return fmt.Errorf("%w: envelope has NaN coordinate", ErrIllegalArguments)
	}
	if e.IsNull() {
		return ErrNullEnvelope
	}
	return nil
}

// Width is MaxX-MinX, or 0 for a null envelope.
func (e Envelope) Width() float64 {
	if e.IsNull() {
		return 0
	}
	return e.MaxX - e.MinX
}

// Height is MaxY-MinY, or 0 for a null envelope.
func (e Envelope) Height() float64 {
	if e.IsNull() {
		return 0
	}
	return e.MaxY - e.MinY
}

// Area returns the area of e. Null envelopes have no area and report 0.
func (e Envelope) Area() float64 {
	return e.Width() * e.Height()
}

// Centroid returns the center point of e. The centroid of a null envelope
// is undefined (NaN coordinates).
func (e Envelope) Centroid() Point {
	if e.IsNull() {
		return Point{X: math.NaN(), Y: math.NaN()}
	}
	return Point{X: (e.MinX + e.MaxX) / 2, Y: (e.MinY + e.MaxY) / 2}
}

// Union returns the smallest envelope containing both e and other.
func (e Envelope) Union(other Envelope) Envelope {
	if e.IsNull() {
		return other
	}
	if other.IsNull() {
		return e
	}
	return Envelope{
		MinX: math.Min(e.MinX, other.MinX),
		MinY: math.Min(e.MinY, other.MinY),
		MaxX: math.Max(e.MaxX, other.MaxX),
		MaxY: math.Max(e.MaxY, other.MaxY),
	}
}

// Enlargement returns how much area e would have to grow to accommodate other.
func (e Envelope) Enlargement(other Envelope) float64 {
	return e.Union(other).Area() - e.Area()
}

// Intersects is true if e and other share at least one point. Touching
// borders count as intersection.
func (e Envelope) Intersects(other Envelope) bool {
	if e.IsNull() || other.IsNull() {
		return false
	}
	return e.MinX <= other.MaxX && e.MaxX >= other.MinX &&
		e.MinY <= other.MaxY && e.MaxY >= other.MinY
}

// Contains is true if other lies completely inside e (borders included).
func (e Envelope) Contains(other Envelope) bool {
	if e.IsNull() || other.IsNull() {
		return false
	}
	return e.MinX <= other.MinX && e.MaxX >= other.MaxX &&
		e.MinY <= other.MinY && e.MaxY >= other.MaxY
}

// ContainsPoint is true if p lies inside e (borders included).
func (e Envelope) ContainsPoint(p Point) bool {
	return e.Contains(p.Envelope())
}

// Expand returns e grown by dx to the left and right, and by dy to the bottom
// and top. Negative deltas shrink the envelope, possibly down to null.
func (e Envelope) Expand(dx, dy float64) Envelope {
	if e.IsNull() {
		return e
	}
	x := Envelope{MinX: e.MinX - dx, MinY: e.MinY - dy, MaxX: e.MaxX + dx, MaxY: e.MaxY + dy}
	if x.IsNull() {
		return NullEnvelope()
	}
	return x
}

// Envelope lets an envelope be used wherever a Bounded is expected.
func (e Envelope) Envelope() Envelope {
	return e
}

func (e Envelope) String() string {
	if e.IsNull() {
		return "[null]"
	}
	return fmt.Sprintf("[%g,%g,%g,%g]", e.MinX, e.MinY, e.MaxX, e.MaxY)
}
