package geometry

import "github.com/zrygan/go-raycaster/pkg/core"

// HitRecord contains information about a ray-shape intersection
type HitRecord struct {
	Point  core.Vec2 // Point of intersection
	Normal core.Vec2 // Outward normal at intersection
	T      float64   // Parameter t along the ray
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}
