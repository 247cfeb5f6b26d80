package quad

import "github.com/chewxy/math32"

// Mat4 represents a 4x4 transformation matrix stored in column-major
// order, matching the memory layout WGSL expects for mat4x4<f32>:
//
//	| m[0]  m[4]  m[8]   m[12] |
//	| m[1]  m[5]  m[9]   m[13] |
//	| m[2]  m[6]  m[10]  m[14] |
//	| m[3]  m[7]  m[11]  m[15] |
//
// Element (row r, column c) is m[c*4+r].
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies two matrices (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * other[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// TransformPoint applies the transformation to a point (w = 1) and
// performs the homogeneous divide.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 && w != 1 {
		return Vec3{X: x / w, Y: y / w, Z: z / w}
	}
	return Vec3{X: x, Y: y, Z: z}
}

// LookAt builds a right-handed view matrix for a camera at eye looking
// toward target, with up defining the vertical orientation.
func LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Orthographic builds a right-handed orthographic projection for a
// frustum centered on the view axis, spanning width x height, with
// depth mapped to the [-1, 1] range. Compose with DepthRangeAdjust to
// target WebGPU's [0, 1] depth convention.
func Orthographic(width, height, near, far float32) Mat4 {
	r := width / 2
	t := height / 2
	return Mat4{
		1 / r, 0, 0, 0,
		0, 1 / t, 0, 0,
		0, 0, -2 / (far - near), 0,
		0, 0, -(far + near) / (far - near), 1,
	}
}

// DepthRangeAdjust returns the fixed clip-space adjustment matrix that
// remaps depth from the [-1, 1] convention produced by Orthographic to
// the [0, 1] range WebGPU expects. X and Y pass through unchanged.
func DepthRangeAdjust() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0.5, 0,
		0, 0, 0.5, 1,
	}
}

// ApproxEqual returns true if every element of the two matrices is
// within epsilon.
func (m Mat4) ApproxEqual(other Mat4, epsilon float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) >= epsilon {
			return false
		}
	}
	return true
}
