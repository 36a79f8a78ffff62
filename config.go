package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultManimBin   = "manim"
	defaultScript     = "neural_network.py"
	defaultMediaDir   = "media"
	defaultVenv       = "venv"
	defaultScene      = "HelloManimTest"
	defaultQuality    = "low"
	defaultConfigFile = "render.yaml"
)

// Config holds the wrapper settings. Every field has a built-in default, so
// the tool works without any config file at all.
type Config struct {
	ManimBin       string   `yaml:"manim_bin"`
	Script         string   `yaml:"script"`
	MediaDir       string   `yaml:"media_dir"`
	Venv           string   `yaml:"venv"`
	DefaultScene   string   `yaml:"default_scene"`
	DefaultQuality string   `yaml:"default_quality"`
	ExtraArgs      []string `yaml:"extra_args"`
}

func defaultConfig() Config {
	return Config{
		ManimBin:       defaultManimBin,
		Script:         defaultScript,
		MediaDir:       defaultMediaDir,
		Venv:           defaultVenv,
		DefaultScene:   defaultScene,
		DefaultQuality: defaultQuality,
	}
}

// loadConfig reads a YAML config file and fills in defaults for anything it
// leaves out. A missing file is only an error when the path was given
// explicitly.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	applyDefaults(&cfg)
	if !strings.HasSuffix(cfg.Script, ".py") {
		return Config{}, fmt.Errorf("%s: script must be a .py file, got %q", path, cfg.Script)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ManimBin == "" {
		cfg.ManimBin = defaultManimBin
	}
	if cfg.Script == "" {
		cfg.Script = defaultScript
	}
	if cfg.MediaDir == "" {
		cfg.MediaDir = defaultMediaDir
	}
	if cfg.Venv == "" {
		cfg.Venv = defaultVenv
	}
	if cfg.DefaultScene == "" {
		cfg.DefaultScene = defaultScene
	}
	if cfg.DefaultQuality == "" {
		cfg.DefaultQuality = defaultQuality
	}
}

// projectName is the stem of the scene script; Manim names its output
// directories after it.
func (c Config) projectName() string {
	base := filepath.Base(c.Script)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// outputDir is where Manim conventionally writes rendered videos. It is only
// reported, never created or checked.
func (c Config) outputDir() string {
	return filepath.Join(c.MediaDir, "videos", c.projectName())
}

// videoPath is the conventional location of a rendered scene at the given
// quality.
func (c Config) videoPath(preset QualityPreset, scene string) string {
	return filepath.Join(c.outputDir(), preset.Dir, scene+".mp4")
}
