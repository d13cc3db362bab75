package main

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
)

// shaderLibrary owns every shader program the viewer uses, keyed by name.
// A program named "bloom" is built from <dir>/bloom.vs and <dir>/bloom.fs.
type shaderLibrary struct {
	dir     string
	shaders map[string]*Shader
}

func newShaderLibrary(dir string) *shaderLibrary {
	return &shaderLibrary{
		dir:     dir,
		shaders: make(map[string]*Shader),
	}
}

func (lib *shaderLibrary) paths(name string) (string, string) {
	return filepath.Join(lib.dir, name+".vs"), filepath.Join(lib.dir, name+".fs")
}

func (lib *shaderLibrary) load(names ...string) error {
	for _, name := range names {
		vs, fs := lib.paths(name)
		shader, err := NewShader(vs, fs)
		if err != nil {
			return fmt.Errorf("shader %q: %w", name, err)
		}
		lib.shaders[name] = shader
	}
	return nil
}

func (lib *shaderLibrary) get(name string) *Shader {
	return lib.shaders[name]
}

// reload recompiles the named programs in place. Unknown names are ignored and
// failures are logged, leaving the previous program active.
func (lib *shaderLibrary) reload(names ...string) {
	for _, name := range names {
		shader, ok := lib.shaders[name]
		if !ok {
			continue
		}
		if err := shader.reload(); err != nil {
			log.Printf("ERROR::SHADER: reload of %q failed: %v", name, err)
			continue
		}
		log.Printf("reloaded shader %q", name)
	}
}

func (lib *shaderLibrary) names() []string {
	names := make([]string, 0, len(lib.shaders))
	for name := range lib.shaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (lib *shaderLibrary) delete() {
	for _, shader := range lib.shaders {
		shader.delete()
	}
	lib.shaders = make(map[string]*Shader)
}
