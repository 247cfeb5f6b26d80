package quad

import (
	"encoding/binary"
	"math"
	"testing"
)

func testCamera() Camera {
	return Camera{
		Eye:    V3(0, 0, -10),
		Target: V3(0, 0, 0),
		Up:     V3(0, 1, 0),
		Width:  8,
		Height: 8,
	}
}

func TestCameraProjectionIdempotent(t *testing.T) {
	c := testCamera()

	first := c.Projection()
	second := c.Projection()
	if first != second {
		t.Error("Projection() of an unchanged camera is not bit-identical across calls")
	}

	u1 := NewCameraUniform()
	u1.UpdateProjection(c)
	u2 := NewCameraUniform()
	u2.UpdateProjection(c)
	if u1.ViewProj != u2.ViewProj {
		t.Error("UpdateProjection twice with an unchanged camera differs")
	}
}

func TestCameraProjectionOriginOnAxis(t *testing.T) {
	vp := testCamera().Projection()

	got := vp.TransformPoint(V3(0, 0, 0))
	if math.Abs(float64(got.X)) > 1e-5 || math.Abs(float64(got.Y)) > 1e-5 {
		t.Errorf("world origin projects to (%v,%v), want on-axis (0,0)", got.X, got.Y)
	}
	if got.Z < 0 || got.Z > 1 {
		t.Errorf("world origin depth = %v, want inside [0,1]", got.Z)
	}
}

func TestCameraProjectionDepthRange(t *testing.T) {
	vp := testCamera().Projection()

	// The eye sits at z=-10 looking toward +z. With near=-5 the near
	// plane lies 5 units behind the eye (world z=-15); the far plane
	// 100 units ahead (world z=90).
	const epsilon = 1e-4
	nearDepth := vp.TransformPoint(V3(0, 0, -15)).Z
	if math.Abs(float64(nearDepth)) > epsilon {
		t.Errorf("near plane depth = %v, want 0", nearDepth)
	}
	farDepth := vp.TransformPoint(V3(0, 0, 90)).Z
	if math.Abs(float64(farDepth-1)) > epsilon {
		t.Errorf("far plane depth = %v, want 1", farDepth)
	}
}

func TestCameraProjectionFrustumEdges(t *testing.T) {
	vp := testCamera().Projection()

	// Points on the frustum's X/Y extents land on the clip cube edges.
	for _, p := range []Vec3{V3(4, 0, 0), V3(-4, 0, 0)} {
		got := vp.TransformPoint(p)
		if math.Abs(math.Abs(float64(got.X))-1) > 1e-5 {
			t.Errorf("projected |x| of %v = %v, want 1", p, got.X)
		}
	}
	for _, p := range []Vec3{V3(0, 4, 0), V3(0, -4, 0)} {
		got := vp.TransformPoint(p)
		if math.Abs(math.Abs(float64(got.Y))-1) > 1e-5 {
			t.Errorf("projected |y| of %v = %v, want 1", p, got.Y)
		}
	}
}

func TestNewCameraUniformIdentity(t *testing.T) {
	u := NewCameraUniform()
	if u.ViewProj != Mat4Identity() {
		t.Errorf("NewCameraUniform matrix = %v, want identity", u.ViewProj)
	}
}

func TestCameraUniformBytes(t *testing.T) {
	c := testCamera()
	u := NewCameraUniform()
	u.UpdateProjection(c)

	data := u.Bytes()
	if len(data) != CameraUniformSize {
		t.Fatalf("len = %d, want %d", len(data), CameraUniformSize)
	}
	// The blob is the matrix in memory order, little-endian.
	for i, f := range u.ViewProj {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		if got != f {
			t.Errorf("element %d = %v, want %v", i, got, f)
		}
	}
}
