package main

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type modelID int

const (
	fieldModel modelID = iota
	tractorModel
	tractor2Model
	cowModel
	windmillModel
	houseModel
	windmillMovModel
	windmillStatModel
	sunflowerModel
	ledModel
	modelCount
)

// modelPaths are relative to the objects directory.
var modelPaths = [modelCount]string{
	fieldModel:        "field/model.obj",
	tractorModel:      "tractor/Tractor_with_hydraulic_lifter_retopo2_SF.obj",
	tractor2Model:     "tractor2/New_holland_T7_Tractor_SF.obj",
	cowModel:          "cow/cow.obj",
	windmillModel:     "windmill/model.obj",
	houseModel:        "house/model.obj",
	windmillMovModel:  "windmill_mov/windmill.obj",
	windmillStatModel: "windmill_stat/windmill.obj",
	sunflowerModel:    "sunflower/sunflower.obj",
	ledModel:          "LED/LED_E.obj",
}

const (
	// beaconSpeed is the LED spin in degrees per second.
	beaconSpeed = 900.0
	// rotorSpeed is the windmill rotor spin in degrees per second.
	rotorSpeed = 10.0

	sunflowerRows    = 8
	sunflowerColumns = 45
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}

	cowPositions = []mgl32.Vec3{
		{-12.0, -3.56, 8.1},
		{-22.0, -3.58, 12.0},
	}
	grassPositions = []mgl32.Vec3{
		{-15.0, -3.1, 14.0},
		{-26.0, -3.1, 11.0},
		{-18.0, -3.1, 1.45},
		{-12.0, -3.1, 22.0},
		{-25.0, -3.1, 32.0},
		{-38.0, -3.1, 23.0},
	}
	sunflowerOrigin = mgl32.Vec3{-29.0, -4.2, -9.0}
)

type rotation struct {
	degrees float32
	axis    mgl32.Vec3
}

// transform builds translate * rotations... * scale.
func transform(translate mgl32.Vec3, scale float32, rotations ...rotation) mgl32.Mat4 {
	model := mgl32.Translate3D(translate.X(), translate.Y(), translate.Z())
	for _, r := range rotations {
		model = model.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(r.degrees), r.axis))
	}
	return model.Mul4(mgl32.Scale3D(scale, scale, scale))
}

type placement struct {
	model     modelID
	transform mgl32.Mat4
	// noCull draws with face culling disabled
	noCull bool
}

// placements lists every model instance in draw order. seconds drives the
// windmill rotor and beaconAngle the LED.
func placements(seconds float64, beaconAngle float32) []placement {
	list := []placement{
		{model: fieldModel, transform: transform(mgl32.Vec3{}, 1.0, rotation{4.675, axisY})},
		{model: tractorModel, transform: transform(mgl32.Vec3{0.0, -3.6, 12.0}, 0.4)},
		{model: tractor2Model, transform: transform(mgl32.Vec3{9.0, -3.6, 12.0}, 1.0)},
		{model: houseModel, transform: transform(mgl32.Vec3{-29.0, -6.3, 26.0}, 0.5, rotation{-0.4, axisX})},
		{model: ledModel, transform: transform(mgl32.Vec3{9.1, -0.42, 14.0}, 0.1, rotation{beaconAngle, axisY}), noCull: true},
	}
	for i, pos := range cowPositions {
		list = append(list, placement{
			model:     cowModel,
			transform: transform(pos, 0.2, rotation{95.0 * float32(i), axisY}),
		})
	}
	list = append(list,
		placement{model: windmillModel, transform: transform(mgl32.Vec3{21.0, -3.8, 10.0}, 0.5, rotation{170.0, axisY})},
		placement{model: windmillMovModel, transform: transform(mgl32.Vec3{-27.225, 2.425, 3.725}, 1.0,
			rotation{90.0, axisY},
			rotation{-7.0, axisX},
			rotation{float32(seconds) * rotorSpeed, axisZ},
		)},
		placement{model: windmillStatModel, transform: transform(mgl32.Vec3{-30.0, -4.6, 4.0}, 1.0, rotation{90.0, axisY})},
	)
	for row := 0; row < sunflowerRows; row++ {
		z := -2.5 * float32(row)
		for col := 0; col < sunflowerColumns; col++ {
			pos := sunflowerOrigin.Add(mgl32.Vec3{float32(col) * 1.5, 0.0, z})
			list = append(list, placement{model: sunflowerModel, transform: transform(pos, 0.02)})
		}
	}
	return list
}

// grassTransforms fans six quads around each clump centre, 30 degrees apart,
// each shifted so the clump is centred on its position.
func grassTransforms() []mgl32.Mat4 {
	var transforms []mgl32.Mat4
	for _, pos := range grassPositions {
		for j := 0; j < 6; j++ {
			model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
				Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(30.0*float32(j)), axisY)).
				Mul4(mgl32.Translate3D(-0.5, 0.0, 0.0))
			transforms = append(transforms, model)
		}
	}
	return transforms
}

// advanceBeacon returns the LED angle after dt seconds, wrapped to [0, 360).
func advanceBeacon(angle float32, dt float64) float32 {
	next := math.Mod(float64(angle)+beaconSpeed*dt, 360.0)
	if next < 0 {
		next += 360.0
	}
	return float32(next)
}

// Scene holds the GPU resources of the farm.
type Scene struct {
	models      [modelCount]*Model
	grass       *grassPatch
	skybox      *Skybox
	beaconAngle float32
}

func LoadScene(cfg *Config) (*Scene, error) {
	s := &Scene{}
	for id, rel := range modelPaths {
		m, err := LoadModel(cfg.Path(cfg.Resources.ObjectsDir, filepath.FromSlash(rel)), "material.")
		if err != nil {
			return nil, err
		}
		s.models[id] = m
	}

	grass, err := newGrassPatch(cfg.Path(cfg.Resources.GrassDir))
	if err != nil {
		return nil, fmt.Errorf("grass: %w", err)
	}
	s.grass = grass

	skybox, err := NewSkybox(cfg.Path(cfg.Resources.SkyboxDir))
	if err != nil {
		// the scene still renders, just without a sky
		return s, fmt.Errorf("skybox: %w", err)
	}
	s.skybox = skybox
	return s, nil
}

func (s *Scene) update(dt float64) {
	s.beaconAngle = advanceBeacon(s.beaconAngle, dt)
}

// frame is the per-frame input to Scene.Draw.
type frame struct {
	view, projection mgl32.Mat4
	viewPosition     mgl32.Vec3
	seconds          float64
	pointLight       PointLight
}

// Draw renders grass, models and sky into the currently bound framebuffer.
func (s *Scene) Draw(shaders *shaderLibrary, f frame) {
	gl.Enable(gl.DEPTH_TEST)
	rig := newLightRig(s.beaconAngle, f.pointLight)

	blending := shaders.get("blendShader").use()
	blending.setMat4("projection", f.projection)
	blending.setMat4("view", f.view)
	blending.setVec3("viewPosition", f.viewPosition)
	rig.applyGrass(blending)
	s.grass.Draw(blending)

	gl.Enable(gl.CULL_FACE)
	lighting := shaders.get("model_lighting").use()
	lighting.setMat4("projection", f.projection)
	lighting.setMat4("view", f.view)
	lighting.setVec3("viewPosition", f.viewPosition)
	lighting.setFloat("material.shininess", 32.0)
	rig.applyModel(lighting)

	for _, p := range placements(f.seconds, s.beaconAngle) {
		if p.noCull {
			gl.Disable(gl.CULL_FACE)
		}
		lighting.setMat4("model", p.transform)
		s.models[p.model].Draw(lighting)
		if p.noCull {
			gl.Enable(gl.CULL_FACE)
		}
	}
	gl.Disable(gl.CULL_FACE)

	if s.skybox != nil {
		s.skybox.Draw(shaders.get("skybox"), f.view, f.projection)
	}
}

func (s *Scene) delete() {
	for _, m := range s.models {
		if m != nil {
			m.delete()
		}
	}
	if s.grass != nil {
		s.grass.delete()
	}
	if s.skybox != nil {
		s.skybox.delete()
	}
}
