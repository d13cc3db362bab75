package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type CameraMovement int

const (
	FORWARD CameraMovement = iota
	BACKWARD
	LEFT
	RIGHT
	UP
	DOWN
)

const (
	defaultYaw         = -90.0
	defaultZoom        = 45.0
	defaultSensitivity = 0.1
	defaultSpeed       = 2.5
	maxPitch           = 89.0
	minZoom            = 1.0
	maxZoom            = 45.0
)

// Camera provides a fly camera to navigate the farm
type Camera struct {
	// camera attributes
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3
	// euler angles
	yaw, pitch float32
	// camera options
	movementSpeed    float32
	mouseSensitivity float32
	zoom             float32
}

func newCamera() *Camera {
	c := Camera{
		worldUp:          mgl32.Vec3{0.0, 1.0, 0.0},
		up:               mgl32.Vec3{0.0, 1.0, 0.0},
		yaw:              defaultYaw,
		pitch:            0.0,
		zoom:             defaultZoom,
		mouseSensitivity: defaultSensitivity,
		movementSpeed:    defaultSpeed,
	}
	return &c
}

func NewDefaultCameraAtPosition(position mgl32.Vec3) *Camera {
	c := newCamera()

	c.position = position

	c.updateVectors()
	return c
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Zoom() float32        { return c.zoom }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }

func (c *Camera) SetPosition(position mgl32.Vec3) {
	c.position = position
}

// SetFront points the camera along front and recovers yaw and pitch from it,
// so later mouse movement continues from this orientation.
func (c *Camera) SetFront(front mgl32.Vec3) {
	if front.Len() == 0 {
		return
	}
	dir := front.Normalize()
	c.pitch = mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(dir.Y(), -1, 1)))))
	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(dir.Z()), float64(dir.X()))))
	c.clampPitch()
	// a front along world up has no right vector; rebuild it from the clamped angles
	if dir.Cross(c.worldUp).Len() < 1e-6 {
		c.updateVectors()
		return
	}
	// keep the stored front as given so a saved pose reloads exactly
	c.front = front
	c.updateBasis()
}

func (c *Camera) processKeyboard(direction CameraMovement, deltaTime float32) {
	velocity := c.movementSpeed * deltaTime
	switch direction {
	case FORWARD:
		c.position = c.position.Add(c.front.Mul(velocity))
	case BACKWARD:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case LEFT:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case RIGHT:
		c.position = c.position.Add(c.right.Mul(velocity))
	case UP:
		c.position = c.position.Add(c.worldUp.Mul(velocity))
	case DOWN:
		c.position = c.position.Sub(c.worldUp.Mul(velocity))
	}
}

func (c *Camera) processMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	xOffset *= c.mouseSensitivity
	yOffset *= c.mouseSensitivity

	c.yaw += xOffset
	c.pitch += yOffset

	if constrainPitch {
		c.clampPitch()
	}

	c.updateVectors()
}

func (c *Camera) processMouseScroll(yOffset float32) {
	c.zoom = mgl32.Clamp(c.zoom-yOffset, minZoom, maxZoom)
}

func (c *Camera) clampPitch() {
	c.pitch = mgl32.Clamp(c.pitch, -maxPitch, maxPitch)
}

func (c *Camera) getViewMatrix() mgl32.Mat4 {
	return lookAt(c.position, c.position.Add(c.front), c.up)
}

func (c *Camera) getProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, 0.1, 100.0)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()
	c.updateBasis()
}

func (c *Camera) updateBasis() {
	// normalize, their length gets closer to 0 the more you look up or down
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func lookAt(cameraPosition, target, cameraUp mgl32.Vec3) mgl32.Mat4 {
	forward := target.Sub(cameraPosition).Normalize()
	right := forward.Cross(cameraUp.Normalize()).Normalize()
	up := right.Cross(forward)
	rotation := mgl32.Mat4{
		right.X(), up.X(), -forward.X(), 0,
		right.Y(), up.Y(), -forward.Y(), 0,
		right.Z(), up.Z(), -forward.Z(), 0,
		0, 0, 0, 1,
	}
	translation := mgl32.Translate3D(-cameraPosition.X(), -cameraPosition.Y(), -cameraPosition.Z())

	return rotation.Mul4(translation)
}
