package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// stateFieldCount is the number of values in the state file:
// clear color RGB, overlay flag, camera position XYZ, camera front XYZ.
const stateFieldCount = 10

// ProgramState is the mutable state shared by the callbacks and the render loop.
type ProgramState struct {
	ClearColor   mgl32.Vec3
	ImGuiEnabled bool
	Camera       *Camera
	// CameraMouseMovementUpdateEnabled gates mouse look.
	CameraMouseMovementUpdateEnabled bool
	BackpackPosition                 mgl32.Vec3
	BackpackScale                    float32
	PointLight                       PointLight
	BloomEnabled                     bool
	Exposure                         float32
	BlurPasses                       int32
}

func NewProgramState() *ProgramState {
	return &ProgramState{
		Camera:                           NewDefaultCameraAtPosition(mgl32.Vec3{0.0, 0.0, 3.0}),
		CameraMouseMovementUpdateEnabled: true,
		BackpackScale:                    1.0,
		PointLight:                       defaultPointLight(),
		BloomEnabled:                     true,
		Exposure:                         0.1,
		BlurPasses:                       10,
	}
}

// SaveToFile writes the persisted fields, one per line.
func (s *ProgramState) SaveToFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to save program state: %w", err)
	}
	defer f.Close()

	if err := s.write(f); err != nil {
		return fmt.Errorf("failed to save program state: %w", err)
	}
	return nil
}

// LoadFromFile reads the persisted fields back. A missing file is not an error.
func (s *ProgramState) LoadFromFile(filename string) error {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load program state: %w", err)
	}
	defer f.Close()

	if err := s.read(f); err != nil {
		return fmt.Errorf("failed to load program state from %s: %w", filename, err)
	}
	return nil
}

func (s *ProgramState) write(w io.Writer) error {
	position := s.Camera.Position()
	front := s.Camera.Front()
	overlay := "0"
	if s.ImGuiEnabled {
		overlay = "1"
	}
	fields := []string{
		formatFloat(s.ClearColor.X()),
		formatFloat(s.ClearColor.Y()),
		formatFloat(s.ClearColor.Z()),
		overlay,
		formatFloat(position.X()),
		formatFloat(position.Y()),
		formatFloat(position.Z()),
		formatFloat(front.X()),
		formatFloat(front.Y()),
		formatFloat(front.Z()),
	}

	bw := bufio.NewWriter(w)
	for _, field := range fields {
		if _, err := bw.WriteString(field + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// read fills fields in file order. It stops at the first bad field and keeps
// what was read before it.
func (s *ProgramState) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var values [stateFieldCount]float32
	var overlay bool
	for i := 0; i < stateFieldCount; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			s.apply(values, overlay, i)
			return fmt.Errorf("expected %d fields, found %d", stateFieldCount, i)
		}
		token := scanner.Text()
		if i == 3 {
			b, err := parseBool(token)
			if err != nil {
				s.apply(values, overlay, i)
				return fmt.Errorf("field %d: %w", i+1, err)
			}
			overlay = b
			continue
		}
		v, err := strconv.ParseFloat(token, 32)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = fmt.Errorf("non-finite value %q", token)
		}
		if err != nil {
			s.apply(values, overlay, i)
			return fmt.Errorf("field %d: %w", i+1, err)
		}
		values[i] = float32(v)
	}
	s.apply(values, overlay, stateFieldCount)
	return nil
}

// apply copies the first n parsed fields into the state.
func (s *ProgramState) apply(values [stateFieldCount]float32, overlay bool, n int) {
	for i := 0; i < n && i < 3; i++ {
		s.ClearColor[i] = values[i]
	}
	if n > 3 {
		s.ImGuiEnabled = overlay
	}
	// a partial vector overwrites only the components that were read
	if n > 4 {
		position := s.Camera.Position()
		for i := 4; i < n && i < 7; i++ {
			position[i-4] = values[i]
		}
		s.Camera.SetPosition(position)
	}
	if n > 7 {
		front := s.Camera.Front()
		for i := 7; i < n; i++ {
			front[i-7] = values[i]
		}
		s.Camera.SetFront(front)
	}
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func parseBool(token string) (bool, error) {
	switch token {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	}
	return false, fmt.Errorf("invalid flag %q", token)
}
