package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// uniforms is the subset of Shader the scene code writes through.
type uniforms interface {
	setBool(name string, value bool)
	setInt(name string, value int32)
	setFloat(name string, value float32)
	setVec3(name string, value mgl32.Vec3)
	setMat4(name string, value mgl32.Mat4)
}

type Shader struct {
	id           uint32
	vertexPath   string
	fragmentPath string
}

func NewShader(vertexPath string, fragmentPath string) (*Shader, error) {
	s := &Shader{vertexPath: vertexPath, fragmentPath: fragmentPath}
	id, err := compileProgramFromFiles(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	s.id = id
	return s, nil
}

// reload recompiles the program from disk. On failure the old program stays bound to s.
func (s *Shader) reload() error {
	id, err := compileProgramFromFiles(s.vertexPath, s.fragmentPath)
	if err != nil {
		return err
	}
	gl.DeleteProgram(s.id)
	s.id = id
	return nil
}

func (s *Shader) delete() {
	gl.DeleteProgram(s.id)
	s.id = 0
}

func compileProgramFromFiles(vertexPath, fragmentPath string) (uint32, error) {
	// Read shader programs from disk.
	data, err := os.ReadFile(vertexPath)
	if err != nil {
		return 0, err
	}
	vertexShaderSource := string(data)
	data, err = os.ReadFile(fragmentPath)
	if err != nil {
		return 0, err
	}
	fragmentShaderSource := string(data)

	return compileProgram(vertexShaderSource, fragmentShaderSource)
}

func compileProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("failed to compile vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("failed to compile fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	// Link all shaders together to form a shader program, which is used during rendering.
	ID := gl.CreateProgram()
	gl.AttachShader(ID, vertexShader)
	gl.AttachShader(ID, fragmentShader)
	gl.LinkProgram(ID)

	var success int32
	gl.GetProgramiv(ID, gl.LINK_STATUS, &success)
	if success == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(ID, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(ID, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(ID)
		return 0, fmt.Errorf("failed to link shader program: %v", strings.TrimRight(infoLog, "\x00"))
	}

	return ID, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	// The source must be a null-terminated string in C flavor.
	sourceString, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, sourceString, nil)
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%v", strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}

func (s *Shader) use() *Shader {
	gl.UseProgram(s.id)
	return s
}

func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.id, gl.Str(name+"\x00"))
}

func (s *Shader) setBool(name string, value bool) {
	var v0 int32
	if value {
		v0 = 1
	}
	gl.Uniform1i(s.location(name), v0)
}

func (s *Shader) setInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

func (s *Shader) setFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *Shader) setVec3(name string, value mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &value[0])
}

func (s *Shader) setMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &value[0])
}
