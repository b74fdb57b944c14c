package mathutil

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestMat4Compose(t *testing.T) {
	m := Mat4Mul(Translate4(Vec3{1, 2, 3}), Scale4(Vec3{2, 3, 4}))
	p := m.MulPoint(Vec3{1, 1, 1})
	test.That(t, p.ApproxEqual(Vec3{3, 5, 7}, 1e-12), test.ShouldBeTrue)

	// Directions ignore translation.
	d := m.MulDir(Vec3{1, 0, 0})
	test.That(t, d.ApproxEqual(Vec3{2, 0, 0}, 1e-12), test.ShouldBeTrue)

	test.That(t, Mat4Mul(m, Mat4Identity()), test.ShouldResemble, m)
	test.That(t, Mat4Identity().IsIdentity(), test.ShouldBeTrue)
	test.That(t, m.IsIdentity(), test.ShouldBeFalse)
}

func TestRotate4(t *testing.T) {
	for _, tc := range []struct {
		name string
		axis Vec3
		in   Vec3
		want Vec3
	}{
		{"x", Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y", Vec3{0, 1, 0}, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"z", Vec3{0, 0, 1}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"unnormalised z", Vec3{0, 0, 5}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := Rotate4(tc.axis, 90).MulPoint(tc.in)
			test.That(t, got.ApproxEqual(tc.want, 1e-12), test.ShouldBeTrue)
		})
	}

	t.Run("arbitrary axis matches principal", func(t *testing.T) {
		axis := Vec3{1, 1, 0}.Normalize()
		r := Rotate4(axis, 180)
		// A half turn about the diagonal swaps x and y.
		got := r.MulPoint(Vec3{1, 0, 0})
		test.That(t, got.ApproxEqual(Vec3{0, 1, 0}, 1e-9), test.ShouldBeTrue)
		// Points on the axis stay put.
		test.That(t, r.MulPoint(axis).ApproxEqual(axis, 1e-9), test.ShouldBeTrue)
	})
}

func TestTranslationAndLinear(t *testing.T) {
	m := Mat4Mul(Translate4(Vec3{4, 5, 6}), Rotate4(Vec3{0, 1, 0}, 30))
	test.That(t, m.Translation(), test.ShouldResemble, Vec3{4, 5, 6})
	test.That(t, m.Linear().Det(), test.ShouldAlmostEqual, 1.0, 1e-12)
}

func TestColumnMajor(t *testing.T) {
	m := Translate4(Vec3{7, 8, 9})
	cm := m.ColumnMajor()
	// OpenGL keeps the translation in elements 12..14.
	test.That(t, cm[12], test.ShouldEqual, 7.0)
	test.That(t, cm[13], test.ShouldEqual, 8.0)
	test.That(t, cm[14], test.ShouldEqual, 9.0)
	test.That(t, cm[3], test.ShouldEqual, 0.0)
}

func TestWrapDegrees(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{0, 0}, {359, 359}, {360, 0}, {365, 5}, {-5, 355}, {725, 5},
	} {
		test.That(t, WrapDegrees(tc.in), test.ShouldAlmostEqual, tc.want)
	}
}

func TestClamp(t *testing.T) {
	test.That(t, Clamp(5, -1, 1), test.ShouldEqual, 1.0)
	test.That(t, Clamp(-5, -1, 1), test.ShouldEqual, -1.0)
	test.That(t, Clamp(0.5, -1, 1), test.ShouldEqual, 0.5)
}

func TestNormalMatrix(t *testing.T) {
	// Non-uniform scale: the normal of the plane x+y=0 must stay
	// perpendicular after transforming by the normal matrix.
	s := Scale4(Vec3{2, 1, 1}).Linear()
	n := s.NormalMatrix().MulVec3(Vec3{1, 1, 0}).Normalize()
	tangent := s.MulVec3(Vec3{1, -1, 0})
	test.That(t, math.Abs(n.Dot(tangent)), test.ShouldBeLessThan, 1e-12)
}
