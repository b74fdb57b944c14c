package rig

import (
	"testing"

	"go.viam.com/test"

	"robot-rig/internal/mathutil"
	"robot-rig/internal/pose"
)

const eps = 1e-9

func defaultBuilder() *Builder {
	return NewBuilder(DefaultTable(DefaultDimensions()))
}

func TestBuildDefault(t *testing.T) {
	b := defaultBuilder()
	calls := b.Build(pose.Pose{})

	shapes := 0
	for _, p := range b.Table().Parts() {
		if p.Shape != ShapeNone {
			shapes++
		}
	}
	test.That(t, calls, test.ShouldHaveLength, shapes)

	// Depth-first in table order: the torso is drawn before anything that
	// hangs off it, and the legs come last.
	test.That(t, calls[0].Part, test.ShouldEqual, "torso")
	test.That(t, calls[len(calls)-1].Part, test.ShouldEqual, "foot_right")

	for _, c := range calls {
		test.That(t, c.Material, test.ShouldNotBeEmpty)
		part, ok := b.Table().Part(c.Part)
		test.That(t, ok, test.ShouldBeTrue)
		want := mathutil.Mat4Mul(c.Pivot, part.Visual())
		test.That(t, c.Model.ApproxEqual(want, eps), test.ShouldBeTrue)
	}

	// Reusing a buffer gives the same list.
	again := b.AppendBuild(calls[:0], pose.Pose{})
	test.That(t, again, test.ShouldResemble, b.Build(pose.Pose{}))
}

func TestScaleDoesNotPropagate(t *testing.T) {
	parts := DefaultParts(DefaultDimensions())
	for i := range parts {
		if parts[i].Name == "torso" {
			parts[i].Size = parts[i].Size.Scale(5)
		}
		if parts[i].Name == "upper_leg_left" {
			parts[i].Size = mathutil.Vec3{1, 1, 1}
		}
	}
	scaled, err := NewTable(parts, DefaultMaterials())
	test.That(t, err, test.ShouldBeNil)

	var p pose.Pose
	p[pose.HipLeft] = 12
	p[pose.BodyYaw] = 40

	want := defaultBuilder().Pivots(p)
	got := NewBuilder(scaled).Pivots(p)
	for _, name := range []string{"chest_plate", "lower_leg_left", "foot_left"} {
		test.That(t, got[name].ApproxEqual(want[name], eps), test.ShouldBeTrue)
	}
}

func TestYawLeavesLegsPlanted(t *testing.T) {
	b := defaultBuilder()
	rest := b.Pivots(pose.Pose{})
	legs := b.Table().Subtree("pelvis")
	test.That(t, legs, test.ShouldContain, "foot_left")
	test.That(t, legs, test.ShouldContain, "foot_right")

	for _, yaw := range []float64{-180, -45, 5, 90, 180} {
		var p pose.Pose
		p[pose.BodyYaw] = yaw
		got := b.Pivots(p)
		for _, name := range legs {
			test.That(t, got[name].ApproxEqual(rest[name], eps), test.ShouldBeTrue)
		}
		moved := got["upper_arm_left"].Translation().ApproxEqual(rest["upper_arm_left"].Translation(), 1e-6)
		test.That(t, moved, test.ShouldBeFalse)
	}
}

func TestCannonSpinStaysOnArm(t *testing.T) {
	b := defaultBuilder()

	var base pose.Pose
	base[pose.Shoulder] = -60
	base[pose.Gun] = 20
	ref := b.Pivots(base)
	refCalls := byPart(b.Build(base))

	for _, spin := range []float64{5, 90, 183, 355} {
		p := base
		p[pose.CannonSpin] = spin
		got := b.Pivots(p)
		calls := byPart(b.Build(p))

		// The spin axis runs through the barrel, so neither its pivot nor
		// its centre move.
		test.That(t, got["barrel"].Translation().ApproxEqual(ref["barrel"].Translation(), eps), test.ShouldBeTrue)
		test.That(t, calls["barrel"].Model.Translation().ApproxEqual(refCalls["barrel"].Model.Translation(), eps), test.ShouldBeTrue)
		test.That(t, got["cannon_mount"].ApproxEqual(ref["cannon_mount"], eps), test.ShouldBeTrue)

		// The rib rides around the barrel.
		test.That(t, got["barrel_rib"].Translation().ApproxEqual(ref["barrel_rib"].Translation(), 1e-6), test.ShouldBeFalse)
	}

	// The shoulder carries the whole cannon.
	raised := base
	raised[pose.Shoulder] = -120
	test.That(t, b.Pivots(raised)["barrel"].Translation().ApproxEqual(ref["barrel"].Translation(), 1e-6), test.ShouldBeFalse)
}

func TestRestLegZigZag(t *testing.T) {
	piv := defaultBuilder().Pivots(pose.Pose{})
	hip := piv["upper_leg_left"].Translation()
	knee := piv["lower_leg_left"].Translation()
	ankle := piv["foot_left"].Translation()

	// The thigh leans one way and the shin the other.
	test.That(t, (knee[2]-hip[2])*(ankle[2]-knee[2]), test.ShouldBeLessThan, 0.0)
	// Rakes cancel: the foot sits level.
	foot := piv["foot_left"].Linear().MulVec3(mathutil.Vec3{0, 1, 0})
	test.That(t, foot.ApproxEqual(mathutil.Vec3{0, 1, 0}, eps), test.ShouldBeTrue)
}

func TestPivotsIncludeShapeless(t *testing.T) {
	b := defaultBuilder()
	piv := b.Pivots(pose.Pose{})
	test.That(t, piv, test.ShouldHaveLength, b.Table().Len())
	test.That(t, piv[RootName].IsIdentity(), test.ShouldBeTrue)
	_, ok := piv["upper"]
	test.That(t, ok, test.ShouldBeTrue)
}

func byPart(calls []DrawCall) map[string]DrawCall {
	m := make(map[string]DrawCall, len(calls))
	for _, c := range calls {
		m[c.Part] = c
	}
	return m
}
