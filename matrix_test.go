package quad

import "testing"

const matEpsilon = 1e-5

func TestMat4IdentityMul(t *testing.T) {
	m := Orthographic(8, 6, -5, 100)
	if got := m.Mul(Mat4Identity()); !got.ApproxEqual(m, matEpsilon) {
		t.Errorf("M * I = %v, want %v", got, m)
	}
	if got := Mat4Identity().Mul(m); !got.ApproxEqual(m, matEpsilon) {
		t.Errorf("I * M = %v, want %v", got, m)
	}
}

func TestMat4MulMatchesComposedTransform(t *testing.T) {
	view := LookAt(V3(0, 0, -10), V3(0, 0, 0), V3(0, 1, 0))
	proj := Orthographic(8, 8, -5, 100)
	combined := proj.Mul(view)

	points := []Vec3{
		V3(0, 0, 0),
		V3(1, 2, 3),
		V3(-4, 0.5, 7),
	}
	for _, p := range points {
		want := proj.TransformPoint(view.TransformPoint(p))
		got := combined.TransformPoint(p)
		if !got.Approx(want, matEpsilon) {
			t.Errorf("(P*V)(%v) = %v, want P(V(%v)) = %v", p, got, p, want)
		}
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := V3(0, 0, -10)
	view := LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))

	// The eye maps to the view-space origin.
	if got := view.TransformPoint(eye); !got.Approx(V3(0, 0, 0), matEpsilon) {
		t.Errorf("view(eye) = %v, want origin", got)
	}
	// The target sits 10 units down the negative view-space z axis.
	if got := view.TransformPoint(V3(0, 0, 0)); !got.Approx(V3(0, 0, -10), matEpsilon) {
		t.Errorf("view(target) = %v, want (0,0,-10)", got)
	}
}

func TestOrthographicMapsFrustumCorners(t *testing.T) {
	proj := Orthographic(8, 8, -5, 100)

	// X/Y extremes map to the edges of the [-1,1] cube.
	if got := proj.TransformPoint(V3(4, 4, 0)); !got.Approx(V3(1, 1, got.Z), matEpsilon) {
		t.Errorf("proj(4,4,0) = %v, want x=y=1", got)
	}
	if got := proj.TransformPoint(V3(-4, -4, 0)); !got.Approx(V3(-1, -1, got.Z), matEpsilon) {
		t.Errorf("proj(-4,-4,0) = %v, want x=y=-1", got)
	}

	// Depth: view-space z = -near is the near plane (-1), z = -far the
	// far plane (+1) under the right-handed convention.
	if got := proj.TransformPoint(V3(0, 0, 5)).Z; got < -1-matEpsilon || got > -1+matEpsilon {
		t.Errorf("near plane depth = %v, want -1", got)
	}
	if got := proj.TransformPoint(V3(0, 0, -100)).Z; got < 1-matEpsilon || got > 1+matEpsilon {
		t.Errorf("far plane depth = %v, want 1", got)
	}
}

func TestDepthRangeAdjust(t *testing.T) {
	adjust := DepthRangeAdjust()

	tests := []struct {
		in   Vec3
		want Vec3
	}{
		{V3(0, 0, -1), V3(0, 0, 0)},
		{V3(0, 0, 0), V3(0, 0, 0.5)},
		{V3(0, 0, 1), V3(0, 0, 1)},
		{V3(0.25, -0.75, -1), V3(0.25, -0.75, 0)},
	}
	for _, tt := range tests {
		if got := adjust.TransformPoint(tt.in); !got.Approx(tt.want, matEpsilon) {
			t.Errorf("adjust(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
