package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config holds the tunables read from config.yaml.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Resources ResourcesConfig `yaml:"resources"`
	Bloom     BloomConfig     `yaml:"bloom"`
	Audio     AudioConfig     `yaml:"audio"`
}

type WindowConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	Samples int    `yaml:"samples"`
}

type ResourcesConfig struct {
	// Root is prepended to every relative asset path.
	Root       string `yaml:"root"`
	StateFile  string `yaml:"state_file"`
	CaptureDir string `yaml:"capture_dir"`
	HotReload  bool   `yaml:"hot_reload"`
	ShaderDir  string `yaml:"shader_dir"`
	SkyboxDir  string `yaml:"skybox_dir"`
	GrassDir   string `yaml:"grass_dir"`
	ObjectsDir string `yaml:"objects_dir"`
}

type BloomConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Passes   int     `yaml:"passes"`
	Exposure float32 `yaml:"exposure"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Track   string  `yaml:"track"`
	Volume  float64 `yaml:"volume"`
}

// DefaultConfig mirrors the values the scene was tuned with.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:   1280,
			Height:  960,
			Title:   "Farming_Life",
			Samples: 4,
		},
		Resources: ResourcesConfig{
			Root:       "resources",
			StateFile:  "program_state.txt",
			CaptureDir: "captures",
			HotReload:  false,
			ShaderDir:  "shaders",
			SkyboxDir:  "textures/skybox/newSkyBox",
			GrassDir:   "textures/grass",
			ObjectsDir: "objects",
		},
		Bloom: BloomConfig{
			Enabled:  true,
			Passes:   10,
			Exposure: 0.1,
		},
		Audio: AudioConfig{
			Enabled: false,
			Track:   "sounds/farm.qoa",
			Volume:  0.5,
		},
	}
}

// LoadConfig reads the configuration from a file. The returned config is
// always usable: on error it holds the defaults.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}
	if config.Bloom.Passes < 0 {
		config.Bloom.Passes = 0
	}

	return config, nil
}

// Path resolves a path relative to the resources root.
func (c *Config) Path(elem ...string) string {
	return filepath.Join(append([]string{c.Resources.Root}, elem...)...)
}
