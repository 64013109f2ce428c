package core

// Material decides how a surface responds to an incoming ray
type Material interface {
	// Scatter returns the attenuation and outgoing ray, or false if the ray is absorbed
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Shader is implemented by materials that terminate a path with their own color
type Shader interface {
	Shade(hit HitRecord) Color
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation Color // Per-channel fraction of light carried by the scattered ray
	Scattered   Ray   // The outgoing ray
}

// HitRecord contains information about a ray-object intersection.
// It is a transient value; Material is shared with the shape that produced it.
type HitRecord struct {
	Point     Point    // Point of intersection
	Normal    Vec3     // Unit normal facing against the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the outward-facing side
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
