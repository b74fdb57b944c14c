package rig

import (
	"image/color"

	"robot-rig/internal/mathutil"
	"robot-rig/internal/pose"
)

// Dimensions fixes the size of every part for one robot scale.
type Dimensions struct {
	BodyWidth      float64 `json:"body_width" yaml:"body_width"`
	BodyHeight     float64 `json:"body_height" yaml:"body_height"`
	BodyDepth      float64 `json:"body_depth" yaml:"body_depth"`
	HeadWidth      float64 `json:"head_width" yaml:"head_width"`
	HeadHeight     float64 `json:"head_height" yaml:"head_height"`
	HeadDepth      float64 `json:"head_depth" yaml:"head_depth"`
	UpperArmLength float64 `json:"upper_arm_length" yaml:"upper_arm_length"`
	UpperArmWidth  float64 `json:"upper_arm_width" yaml:"upper_arm_width"`
	LowerArmLength float64 `json:"lower_arm_length" yaml:"lower_arm_length"`
	LowerArmWidth  float64 `json:"lower_arm_width" yaml:"lower_arm_width"`
	UpperLegLength float64 `json:"upper_leg_length" yaml:"upper_leg_length"`
	UpperLegWidth  float64 `json:"upper_leg_width" yaml:"upper_leg_width"`
	LowerLegLength float64 `json:"lower_leg_length" yaml:"lower_leg_length"`
	LowerLegWidth  float64 `json:"lower_leg_width" yaml:"lower_leg_width"`
	HandLength     float64 `json:"hand_length" yaml:"hand_length"`
	HandWidth      float64 `json:"hand_width" yaml:"hand_width"`
	FootLength     float64 `json:"foot_length" yaml:"foot_length"`
	FootWidth      float64 `json:"foot_width" yaml:"foot_width"`
	GunRadius      float64 `json:"gun_radius" yaml:"gun_radius"`
	GunLength      float64 `json:"gun_length" yaml:"gun_length"`
}

// DefaultDimensions returns the stock Bastion-style proportions.
func DefaultDimensions() Dimensions {
	return Dimensions{
		BodyWidth: 6, BodyHeight: 8, BodyDepth: 4,
		HeadWidth: 2, HeadHeight: 2, HeadDepth: 2,
		UpperArmLength: 4, UpperArmWidth: 1,
		LowerArmLength: 3, LowerArmWidth: 0.8,
		UpperLegLength: 5, UpperLegWidth: 1.2,
		LowerLegLength: 4, LowerLegWidth: 1,
		HandLength: 1, HandWidth: 0.8,
		FootLength: 1.5, FootWidth: 1,
		GunRadius: 0.7, GunLength: 3,
	}
}

// Fixed design angles of the reverse-jointed legs: the thigh leans back, the
// shin forward, the foot sits level at rest.
const (
	ThighRake  = 15.0
	ShinRake   = -30.0
	FootRake   = 15.0
	FingerRake = 15.0
)

var (
	axisX = mathutil.Vec3{1, 0, 0}
	axisY = mathutil.Vec3{0, 1, 0}
	axisZ = mathutil.Vec3{0, 0, 1}
)

// DefaultMaterials returns the stock palette.
func DefaultMaterials() []Material {
	return []Material{
		{Name: "armor", Color: color.NRGBA{R: 150, G: 158, B: 118, A: 255}, Specular: 0.35},
		{Name: "plate", Color: color.NRGBA{R: 204, G: 198, B: 178, A: 255}, Specular: 0.45},
		{Name: "joint", Color: color.NRGBA{R: 64, G: 64, B: 72, A: 255}, Specular: 0.2},
		{Name: "gunmetal", Color: color.NRGBA{R: 90, G: 92, B: 102, A: 255}, Specular: 0.8},
		{Name: "visor", Color: color.NRGBA{R: 60, G: 180, B: 255, A: 255}, Specular: 1.0},
	}
}

// DefaultParts lays out the robot for dimensions d.
//
// The upper body hangs off "upper", which only carries the body yaw; the
// pelvis and legs hang off the root, so yawing the torso leaves the legs
// planted.
func DefaultParts(d Dimensions) []Part {
	none := pose.NoJoint
	var parts []Part
	add := func(p Part) { parts = append(parts, p) }

	add(Part{Name: RootName, Joint: none})
	add(Part{Name: "upper", Parent: RootName, Axis: axisY, Joint: pose.BodyYaw})
	add(Part{
		Name: "torso", Parent: "upper", Joint: none,
		Shape: ShapeCube, Material: "armor",
		Size: mathutil.Vec3{d.BodyWidth, d.BodyHeight, d.BodyDepth},
	})
	add(Part{
		Name: "chest_plate", Parent: "torso", Joint: none,
		Pivot: mathutil.Vec3{0, d.BodyHeight / 8, d.BodyDepth / 2},
		Shape: ShapeCube, Material: "plate",
		Size:   mathutil.Vec3{d.BodyWidth * 0.7, d.BodyHeight * 0.45, 0.2},
		Center: mathutil.Vec3{0, 0, 0.1},
	})
	add(Part{
		Name: "head", Parent: "upper", Axis: axisY, Joint: pose.Neck,
		Pivot: mathutil.Vec3{0, d.BodyHeight / 2, 0},
		Shape: ShapeCube, Material: "plate",
		Size:   mathutil.Vec3{d.HeadWidth, d.HeadHeight, d.HeadDepth},
		Center: mathutil.Vec3{0, d.HeadHeight / 2, 0},
	})
	add(Part{
		Name: "visor", Parent: "head", Joint: none,
		Pivot: mathutil.Vec3{0, d.HeadHeight * 0.6, d.HeadDepth / 2},
		Shape: ShapeCube, Material: "visor",
		Size:   mathutil.Vec3{d.HeadWidth * 0.7, d.HeadHeight * 0.2, 0.1},
		Center: mathutil.Vec3{0, 0, 0.05},
	})

	// Left arm: shoulder, elbow, hand, two fingers.
	shoulderX := d.BodyWidth/2 + d.UpperArmWidth/2
	add(Part{
		Name: "upper_arm_left", Parent: "upper", Axis: axisX, Joint: pose.Shoulder,
		Pivot: mathutil.Vec3{shoulderX, d.BodyHeight / 2, 0},
		Shape: ShapeCube, Material: "armor",
		Size:   mathutil.Vec3{d.UpperArmWidth, d.UpperArmLength, d.UpperArmWidth},
		Center: mathutil.Vec3{0, -d.UpperArmLength / 2, 0},
	})
	add(Part{
		Name: "forearm_left", Parent: "upper_arm_left", Axis: axisX, Joint: pose.Elbow,
		Pivot: mathutil.Vec3{0, -d.UpperArmLength, 0},
		Shape: ShapeCube, Material: "plate",
		Size:   mathutil.Vec3{d.LowerArmWidth, d.LowerArmLength, d.LowerArmWidth},
		Center: mathutil.Vec3{0, -d.LowerArmLength / 2, 0},
	})
	add(Part{
		Name: "hand_left", Parent: "forearm_left", Joint: none,
		Pivot: mathutil.Vec3{0, -d.LowerArmLength, 0},
		Shape: ShapeCube, Material: "joint",
		Size:   mathutil.Vec3{d.HandWidth, d.HandLength, d.HandWidth},
		Center: mathutil.Vec3{0, -d.HandLength / 2, 0},
	})
	fingerSize := mathutil.Vec3{d.HandWidth / 4, d.HandLength * 0.6, d.HandWidth / 3}
	for _, f := range []struct {
		name string
		side float64
	}{{"finger_left_outer", 1}, {"finger_left_inner", -1}} {
		add(Part{
			Name: f.name, Parent: "hand_left", Axis: axisZ, Joint: none,
			Angle: f.side * FingerRake,
			Pivot: mathutil.Vec3{f.side * d.HandWidth / 4, -d.HandLength, 0},
			Shape: ShapeCube, Material: "joint",
			Size:   fingerSize,
			Center: mathutil.Vec3{0, -fingerSize[1] / 2, 0},
		})
	}

	// Right arm ends in the cannon: the gun pitches at the elbow, the barrel
	// spins about its own axis after both the shoulder and gun rotations.
	mountLen := d.GunRadius * 1.5
	add(Part{
		Name: "upper_arm_right", Parent: "upper", Axis: axisX, Joint: pose.Shoulder,
		Pivot: mathutil.Vec3{-shoulderX, d.BodyHeight / 2, 0},
		Shape: ShapeCube, Material: "armor",
		Size:   mathutil.Vec3{d.UpperArmWidth, d.UpperArmLength, d.UpperArmWidth},
		Center: mathutil.Vec3{0, -d.UpperArmLength / 2, 0},
	})
	add(Part{
		Name: "cannon_mount", Parent: "upper_arm_right", Axis: axisX, Joint: pose.Gun,
		Pivot: mathutil.Vec3{0, -d.UpperArmLength, 0},
		Shape: ShapeCube, Material: "joint",
		Size:   mathutil.Vec3{d.GunRadius * 2.4, mountLen, d.GunRadius * 2.4},
		Center: mathutil.Vec3{0, -mountLen / 2, 0},
	})
	add(Part{
		Name: "barrel", Parent: "cannon_mount", Axis: axisY, Joint: pose.CannonSpin,
		Pivot: mathutil.Vec3{0, -mountLen, 0},
		Shape: ShapeCylinder, Material: "gunmetal",
		Size:   mathutil.Vec3{d.GunRadius * 2, d.GunLength, d.GunRadius * 2},
		Center: mathutil.Vec3{0, -d.GunLength / 2, 0},
	})
	add(Part{
		Name: "barrel_rib", Parent: "barrel", Joint: none,
		Pivot: mathutil.Vec3{d.GunRadius, -d.GunLength / 2, 0},
		Shape: ShapeCube, Material: "plate",
		Size: mathutil.Vec3{d.GunRadius / 3, d.GunLength * 0.8, d.GunRadius / 3},
	})

	// Lower body.
	add(Part{
		Name: "pelvis", Parent: RootName, Joint: none,
		Pivot: mathutil.Vec3{0, -d.BodyHeight / 2, 0},
		Shape: ShapeCube, Material: "joint",
		Size: mathutil.Vec3{d.BodyWidth * 0.75, d.UpperLegWidth, d.BodyDepth * 0.6},
	})
	for _, leg := range []struct {
		suffix           string
		side             float64
		hip, knee, ankle pose.JointID
	}{
		{"left", 1, pose.HipLeft, pose.KneeLeft, pose.AnkleLeft},
		{"right", -1, pose.HipRight, pose.KneeRight, pose.AnkleRight},
	} {
		thigh := "upper_leg_" + leg.suffix
		shin := "lower_leg_" + leg.suffix
		add(Part{
			Name: thigh, Parent: "pelvis", Axis: axisX, Joint: leg.hip, Angle: ThighRake,
			Pivot: mathutil.Vec3{leg.side * d.BodyWidth / 4, 0, 0},
			Shape: ShapeCube, Material: "armor",
			Size:   mathutil.Vec3{d.UpperLegWidth, d.UpperLegLength, d.UpperLegWidth},
			Center: mathutil.Vec3{0, -d.UpperLegLength / 2, 0},
		})
		add(Part{
			Name: shin, Parent: thigh, Axis: axisX, Joint: leg.knee, Angle: ShinRake,
			Pivot: mathutil.Vec3{0, -d.UpperLegLength, 0},
			Shape: ShapeCube, Material: "plate",
			Size:   mathutil.Vec3{d.LowerLegWidth, d.LowerLegLength, d.LowerLegWidth},
			Center: mathutil.Vec3{0, -d.LowerLegLength / 2, 0},
		})
		footH := d.FootWidth / 2
		add(Part{
			Name: "foot_" + leg.suffix, Parent: shin, Axis: axisX, Joint: leg.ankle, Angle: FootRake,
			Pivot: mathutil.Vec3{0, -d.LowerLegLength, 0},
			Shape: ShapeCube, Material: "joint",
			Size:   mathutil.Vec3{d.FootWidth, footH, d.FootLength},
			Center: mathutil.Vec3{0, -footH / 2, d.FootLength / 4},
		})
	}

	return parts
}

// DefaultTable returns the validated stock robot for dimensions d.
func DefaultTable(d Dimensions) *Table {
	t, err := NewTable(DefaultParts(d), DefaultMaterials())
	if err != nil {
		// The stock layout is static; failing here is a programming error.
		panic(err)
	}
	return t
}
