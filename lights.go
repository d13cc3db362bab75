package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32
}

func (l PointLight) apply(u uniforms, name string) {
	u.setVec3(name+".position", l.Position)
	u.setVec3(name+".ambient", l.Ambient)
	u.setVec3(name+".diffuse", l.Diffuse)
	u.setVec3(name+".specular", l.Specular)
	u.setFloat(name+".constant", l.Constant)
	u.setFloat(name+".linear", l.Linear)
	u.setFloat(name+".quadratic", l.Quadratic)
}

type DirLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

func (l DirLight) apply(u uniforms, name string) {
	u.setVec3(name+".direction", l.Direction)
	u.setVec3(name+".ambient", l.Ambient)
	u.setVec3(name+".diffuse", l.Diffuse)
	u.setVec3(name+".specular", l.Specular)
}

// SpotLight cut-offs are angles in degrees; the shader receives their cosines.
type SpotLight struct {
	Position    mgl32.Vec3
	Direction   mgl32.Vec3
	CutOff      float32
	OuterCutOff float32

	Constant  float32
	Linear    float32
	Quadratic float32

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

func (l SpotLight) apply(u uniforms, name string) {
	u.setVec3(name+".position", l.Position)
	u.setVec3(name+".direction", l.Direction)
	u.setVec3(name+".ambient", l.Ambient)
	u.setVec3(name+".diffuse", l.Diffuse)
	u.setVec3(name+".specular", l.Specular)
	u.setFloat(name+".constant", l.Constant)
	u.setFloat(name+".linear", l.Linear)
	u.setFloat(name+".quadratic", l.Quadratic)
	u.setFloat(name+".cutOff", cosDeg(l.CutOff))
	u.setFloat(name+".outerCutOff", cosDeg(l.OuterCutOff))
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(deg))))
}

func gray(v float32) mgl32.Vec3 { return mgl32.Vec3{v, v, v} }

// defaultPointLight is the overlay-tuned light. Its colors also drive the
// tractor's headlight bulbs.
func defaultPointLight() PointLight {
	return PointLight{
		Position:  mgl32.Vec3{0.0, 4.0, 12.0},
		Ambient:   gray(0.1),
		Diffuse:   gray(0.6),
		Specular:  gray(1.0),
		Constant:  1.0,
		Linear:    0.09,
		Quadratic: 0.032,
	}
}

var (
	sunLight = DirLight{
		Direction: mgl32.Vec3{-0.2, -1.0, 0.3},
		Ambient:   gray(0.01),
		Diffuse:   gray(0.2),
		Specular:  gray(0.3),
	}
	beaconColor   = mgl32.Vec3{1.0, 0.6, 0.0}
	tailLampColor = mgl32.Vec3{0.73, 0.1176, 0.0627}
)

// lightRig is the full set of lights for one frame.
type lightRig struct {
	dir     DirLight
	beacons [2]SpotLight
	// headlamps are the two spot lights in front of tractor2
	headlamps [2]SpotLight
	// bulbs are the headlight bulbs; tailLamps are the red rear lights
	bulbs     [2]PointLight
	tailLamps [2]PointLight
	// editable is the overlay-tuned light bound to the pointLight uniform
	editable PointLight
}

// newLightRig builds the lights for a beacon angle in degrees. The editable
// point light supplies the bulb colors.
func newLightRig(beaconAngle float32, editable PointLight) lightRig {
	beacon := func(dir mgl32.Vec3, outer float32) SpotLight {
		return SpotLight{
			Position:    mgl32.Vec3{9.1, -0.22, 14.0},
			Direction:   dir,
			CutOff:      0.0,
			OuterCutOff: outer,
			Constant:    0.1,
			Linear:      0.9,
			Quadratic:   0.032,
			Ambient:     gray(0.1),
			Diffuse:     beaconColor,
			Specular:    beaconColor,
		}
	}
	headlamp := func(x float32) SpotLight {
		return SpotLight{
			Position:    mgl32.Vec3{x, -2.3, 14.5},
			Direction:   mgl32.Vec3{0.0, -0.07, 1.0},
			CutOff:      19.875,
			OuterCutOff: 21.0,
			Constant:    1.0,
			Linear:      0.09,
			Quadratic:   0.032,
			Ambient:     gray(0.0),
			Diffuse:     gray(1.0),
			Specular:    gray(1.0),
		}
	}
	bulb := func(x float32) PointLight {
		return PointLight{
			Position:  mgl32.Vec3{x, -1.87, 17.3},
			Ambient:   editable.Ambient,
			Diffuse:   editable.Diffuse,
			Specular:  editable.Specular,
			Constant:  0.45,
			Linear:    0.85,
			Quadratic: 0.032,
		}
	}
	tail := func(x float32) PointLight {
		return PointLight{
			Position:  mgl32.Vec3{x, -1.0, 12.6},
			Ambient:   gray(0.1),
			Diffuse:   tailLampColor,
			Specular:  tailLampColor,
			Constant:  0.3,
			Linear:    0.85,
			Quadratic: 0.032,
		}
	}

	return lightRig{
		dir: sunLight,
		beacons: [2]SpotLight{
			beacon(mgl32.Vec3{0.0, 0.0, 1.0}, beaconAngle),
			beacon(mgl32.Vec3{0.0, 0.0, -1.0}, 180.0+beaconAngle),
		},
		headlamps: [2]SpotLight{headlamp(9.9), headlamp(9.5)},
		bulbs:     [2]PointLight{bulb(10.1), bulb(9.6)},
		tailLamps: [2]PointLight{tail(10.5), tail(8.8)},
		editable:  editable,
	}
}

// applyModel writes the lights used by the model lighting shader.
func (r lightRig) applyModel(u uniforms) {
	r.dir.apply(u, "dirLight")
	r.beacons[0].apply(u, "rotPointLight")
	r.beacons[1].apply(u, "rotPointLight1")
	r.headlamps[0].apply(u, "spotLight1")
	r.headlamps[1].apply(u, "spotLight2")
	r.bulbs[0].apply(u, "pointLight1")
	r.bulbs[1].apply(u, "pointLight2")
	r.tailLamps[0].apply(u, "pointLight3")
	r.tailLamps[1].apply(u, "pointLight4")
	// pointLight is the overlay's light; there is no fixed light behind it
	r.editable.apply(u, "pointLight")
}

// applyGrass writes the lights used by the grass blending shader.
func (r lightRig) applyGrass(u uniforms) {
	r.dir.apply(u, "dirLight")
	r.editable.apply(u, "pointLight")
}
