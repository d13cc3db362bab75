package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// shaderNames are the programs loaded from the shader directory.
var shaderNames = []string{"model_lighting", "skybox", "blendShader", "blur", "bloom", "imgui"}

// Viewer owns the window and everything drawn into it.
type Viewer struct {
	cfg    *Config
	window *glfw.Window
	// width and height are the framebuffer size in pixels
	width, height int32

	state   *ProgramState
	mouse   mouseTracker
	overlay *overlay

	shaders *shaderLibrary
	bloom   *Bloom
	scene   *Scene
	watcher *shaderWatcher
	audio   *ambience
	stats   frameStats

	captureRequested bool
}

func init() {
	// This is needed to arrange that main() runs on main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Printf("%v", err)
	}

	/*
	 * GLFW init and configure
	 */
	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.Window.Samples)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	window.MakeContextCurrent()

	/*
	 * Load OS-specific OpenGL function pointers
	 */
	if err := gl.Init(); err != nil {
		log.Fatal(err)
	}

	v, err := newViewer(cfg, window)
	if err != nil {
		log.Fatal(err)
	}
	defer v.delete()

	v.run()

	if err := v.state.SaveToFile(cfg.Path(cfg.Resources.StateFile)); err != nil {
		log.Printf("%v", err)
	}
}

func newViewer(cfg *Config, window *glfw.Window) (*Viewer, error) {
	v := &Viewer{cfg: cfg, window: window, state: NewProgramState()}
	v.state.BloomEnabled = cfg.Bloom.Enabled
	v.state.BlurPasses = int32(cfg.Bloom.Passes)
	v.state.Exposure = cfg.Bloom.Exposure
	if err := v.state.LoadFromFile(cfg.Path(cfg.Resources.StateFile)); err != nil {
		log.Printf("%v", err)
	}

	width, height := window.GetFramebufferSize()
	v.width, v.height = int32(width), int32(height)

	window.SetFramebufferSizeCallback(v.framebufferSizeCallback)
	window.SetKeyCallback(v.keyCallback)
	window.SetCharCallback(v.charCallback)
	window.SetMouseButtonCallback(v.mouseButtonCallback)
	window.SetCursorPosCallback(v.cursorPosCallback)
	window.SetScrollCallback(v.scrollCallback)
	window.SetInputMode(glfw.CursorMode, cursorMode(v.state.ImGuiEnabled))
	if v.state.ImGuiEnabled {
		v.state.CameraMouseMovementUpdateEnabled = false
	}

	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.DEPTH_TEST)

	v.shaders = newShaderLibrary(cfg.Path(cfg.Resources.ShaderDir))
	if err := v.shaders.load(shaderNames...); err != nil {
		return nil, err
	}
	log.Printf("loaded shaders %v from %s", v.shaders.names(), v.shaders.dir)
	v.overlay = newOverlay(window, v.shaders.get("imgui"))
	v.bloom = NewBloom(v.width, v.height)

	scene, err := LoadScene(cfg)
	if scene == nil {
		return nil, err
	}
	if err != nil {
		log.Printf("%v", err)
	}
	v.scene = scene

	if cfg.Resources.HotReload {
		watcher, err := newShaderWatcher(v.shaders.dir)
		if err != nil {
			log.Printf("shader hot reload disabled: %v", err)
		} else {
			v.watcher = watcher
		}
	}
	if cfg.Audio.Enabled {
		audio, err := newAmbience(cfg.Path(cfg.Audio.Track), cfg.Audio.Volume)
		if err != nil {
			log.Printf("ambience disabled: %v", err)
		} else {
			v.audio = audio
		}
	}
	return v, nil
}

func (v *Viewer) run() {
	lastFrame := glfw.GetTime()
	for !v.window.ShouldClose() {
		currentFrame := glfw.GetTime()
		deltaTime := currentFrame - lastFrame
		lastFrame = currentFrame
		if title, ok := v.stats.tick(currentFrame); ok {
			v.window.SetTitle(title)
		}

		v.processInput(float32(deltaTime))
		v.scene.update(deltaTime)
		v.reloadShaders()

		v.render(currentFrame)

		if v.captureRequested {
			v.captureRequested = false
			if path, err := captureScene(v.bloom, v.cfg.Path(v.cfg.Resources.CaptureDir), time.Now()); err != nil {
				log.Printf("capture failed: %v", err)
			} else {
				log.Printf("captured scene to %s", path)
			}
		}

		v.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (v *Viewer) render(seconds float64) {
	camera := v.state.Camera
	bg := v.state.ClearColor
	v.bloom.BeginScene(bg.X(), bg.Y(), bg.Z())
	v.scene.Draw(v.shaders, frame{
		view:         camera.getViewMatrix(),
		projection:   camera.getProjectionMatrix(float32(v.width) / float32(v.height)),
		viewPosition: camera.Position(),
		seconds:      seconds,
		pointLight:   v.state.PointLight,
	})

	plan := planBloom(int(v.state.BlurPasses), v.state.BloomEnabled, v.state.Exposure)
	v.bloom.Apply(plan, v.shaders.get("blur"), v.shaders.get("bloom"), v.width, v.height)

	v.overlay.Draw(v.state)
}

// reloadShaders recompiles whatever the watcher saw change since the last frame.
func (v *Viewer) reloadShaders() {
	if v.watcher == nil {
		return
	}
	names, err := v.watcher.drain()
	if err != nil {
		log.Printf("shader watcher: %v", err)
	}
	if len(names) > 0 {
		v.shaders.reload(names...)
	}
}

func (v *Viewer) delete() {
	if v.audio != nil {
		if err := v.audio.Close(); err != nil {
			log.Printf("%v", err)
		}
	}
	if v.watcher != nil {
		v.watcher.Close()
	}
	v.overlay.delete()
	v.scene.delete()
	v.bloom.delete()
	v.shaders.delete()
}
