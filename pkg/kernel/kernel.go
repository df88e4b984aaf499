// Package kernel defines the abstract geometry kernel interface used to
// construct preview solids for the shape families. Implementations provide
// solid modeling and tessellation behind this interface so backends can be
// swapped without changing the rest of the system.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives. Dimensions in millimeters; solids are centered on the
	// origin with their axis of symmetry along Z.
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64) Solid
	Sphere(radius float64) Solid
	Cone(height, radius float64) Solid
	Pyramid(baseWidth, baseDepth, height float64) Solid
	Wedge(baseWidth, baseHeight, length float64) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
