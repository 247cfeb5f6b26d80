package quad

import (
	"encoding/binary"
	"math"
)

// Near and far plane distances of the orthographic frustum, in
// view-space units along the look direction. The negative near plane
// keeps geometry at z=0 visible even when the eye sits on the plane
// of the scene.
const (
	CameraNear float32 = -5
	CameraFar  float32 = 100
)

// CameraUniformSize is the byte size of the packed camera uniform:
// one column-major 4x4 float32 matrix.
const CameraUniformSize = 64

// Camera specifies the view: an eye position looking at a target with
// a given up vector, projected through an orthographic frustum of the
// given width and height. Camera is a plain value owned by the host;
// move it freely between frames and re-derive the projection.
type Camera struct {
	Eye    Vec3
	Target Vec3
	Up     Vec3
	Width  float32
	Height float32
}

// Projection computes the combined view-projection matrix:
//
//	depth_adjust * ortho * view
//
// applied to world-space positions as M * position. The result is
// recomputed from the current field values on every call; callers that
// move the camera should re-derive once per frame and push the result
// through CameraUniform.
func (c Camera) Projection() Mat4 {
	view := LookAt(c.Eye, c.Target, c.Up)
	proj := Orthographic(c.Width, c.Height, CameraNear, CameraFar)
	return DepthRangeAdjust().Mul(proj).Mul(view)
}

// CameraUniform is the GPU-facing mirror of a Camera: the 4x4
// view-projection matrix in the exact form copied into the uniform
// buffer bound to the vertex stage. The host re-uploads it (via
// render.Pipeline.WriteCamera or queue.WriteBuffer) after every
// update; nothing here tracks dirtiness.
type CameraUniform struct {
	ViewProj Mat4
}

// NewCameraUniform returns a uniform holding the identity matrix.
func NewCameraUniform() CameraUniform {
	return CameraUniform{ViewProj: Mat4Identity()}
}

// UpdateProjection overwrites the stored matrix with the camera's
// current view-projection.
func (u *CameraUniform) UpdateProjection(c Camera) {
	u.ViewProj = c.Projection()
}

// Bytes packs the matrix into its 64-byte little-endian column-major
// wire form for queue.WriteBuffer.
func (u CameraUniform) Bytes() []byte {
	data := make([]byte, CameraUniformSize)
	for i, f := range u.ViewProj {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(f))
	}
	return data
}
