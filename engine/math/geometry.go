package math

// ExtentsOf computes the bounding box of count points, fetched through at.
// An empty set yields zero extents.
func ExtentsOf(count int, at func(i int) Vec3) Extents3D {
	if count == 0 {
		return Extents3D{}
	}
	ext := Extents3D{
		Min: Vec3{K_INFINITY, K_INFINITY, K_INFINITY},
		Max: Vec3{-K_INFINITY, -K_INFINITY, -K_INFINITY},
	}
	for i := 0; i < count; i++ {
		p := at(i)
		ext.Min = ext.Min.Min(p)
		ext.Max = ext.Max.Max(p)
	}
	return ext
}

// Center returns the midpoint of the extents.
func (e Extents3D) Center() Vec3 {
	return e.Min.Add(e.Max).MulScalar(0.5)
}

// Size returns the length of each side of the extents.
func (e Extents3D) Size() Vec3 {
	return e.Max.Sub(e.Min)
}
