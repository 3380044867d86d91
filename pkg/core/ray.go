package core

// Ray represents a ray with an origin, a normalized direction, and an
// optional maximum length. MaxLength <= 0 means the ray is unbounded.
type Ray struct {
	Origin    Vec2
	Direction Vec2
	MaxLength float64
}

// NewRay creates a new unbounded ray
func NewRay(origin, direction Vec2) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewBoundedRay creates a new ray clipped to maxLength
func NewBoundedRay(origin, direction Vec2, maxLength float64) Ray {
	return Ray{Origin: origin, Direction: direction, MaxLength: maxLength}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Segment is the visible portion of a traced ray, from its origin to its
// termination point (absorber hit or boundary clip)
type Segment struct {
	Start Vec2
	End   Vec2
}

// Length returns the segment's length
func (s Segment) Length() float64 {
	return s.End.Subtract(s.Start).Length()
}
