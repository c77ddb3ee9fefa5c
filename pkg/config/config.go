// Package config loads the optional weft.yaml or weft.toml project file and
// resolves defaults for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// File names searched by LoadOptional, in order.
const (
	YAMLFile = "weft.yaml"
	TOMLFile = "weft.toml"
)

// Defaults applied by Resolve. Sizes are in terminal cells.
const (
	DefaultWidth   = 80
	DefaultHeight  = 24
	DefaultSpacing = 1
)

// Config represents the optional project configuration.
type Config struct {
	App    AppConfig    `yaml:"app" toml:"app"`
	Window WindowConfig `yaml:"window" toml:"window"`
	Layout LayoutConfig `yaml:"layout" toml:"layout"`
	Debug  DebugConfig  `yaml:"debug" toml:"debug"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
}

// WindowConfig is the surface size used when the shell cannot report one.
type WindowConfig struct {
	Width  float64 `yaml:"width,omitempty" toml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty" toml:"height,omitempty"`
}

// LayoutConfig contains layout defaults.
type LayoutConfig struct {
	// Spacing is the gap stacks put between children. Nil means default.
	Spacing *float64 `yaml:"spacing,omitempty" toml:"spacing,omitempty"`
}

// DebugConfig controls diagnostics.
type DebugConfig struct {
	// Port for the inspection server; zero disables it.
	Port    int  `yaml:"port,omitempty" toml:"port,omitempty"`
	Verbose bool `yaml:"verbose,omitempty" toml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ConfigFile string
	ModulePath string
	AppName    string
	Width      float64
	Height     float64
	Spacing    float64
	DebugPort  int
	Verbose    bool
}

// Load reads a configuration file, choosing the format by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	return &cfg, nil
}

// LoadOptional reads weft.yaml or weft.toml from dir if either is present.
// It returns the path that was read, or "" when neither exists. Having
// both is an error.
func LoadOptional(dir string) (*Config, string, error) {
	var found []string
	for _, name := range []string{YAMLFile, TOMLFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			found = append(found, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to stat %s: %w", name, err)
		}
	}
	switch len(found) {
	case 0:
		return &Config{}, "", nil
	case 1:
		cfg, err := Load(found[0])
		return cfg, found[0], err
	default:
		return nil, "", fmt.Errorf("both %s and %s present in %s", YAMLFile, TOMLFile, dir)
	}
}

// Resolve loads the project file (if present) from dir and resolves
// defaults. An explicit configPath overrides the search.
func Resolve(dir, configPath string) (*Resolved, error) {
	var (
		cfg  *Config
		used string
		err  error
	)
	if configPath != "" {
		cfg, err = Load(configPath)
		used = configPath
	} else {
		cfg, used, err = LoadOptional(dir)
	}
	if err != nil {
		return nil, err
	}

	modPath, err := modulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modPath, dir)
	}

	res := &Resolved{
		Root:       dir,
		ConfigFile: used,
		ModulePath: modPath,
		AppName:    appName,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Spacing:    DefaultSpacing,
		DebugPort:  cfg.Debug.Port,
		Verbose:    cfg.Debug.Verbose,
	}
	if res.Width == 0 {
		res.Width = DefaultWidth
	}
	if res.Height == 0 {
		res.Height = DefaultHeight
	}
	if cfg.Layout.Spacing != nil {
		res.Spacing = *cfg.Layout.Spacing
	}
	if err := res.validate(); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Resolved) validate() error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("window size must be positive, got %gx%g", r.Width, r.Height)
	}
	if r.Spacing < 0 {
		return fmt.Errorf("layout spacing must not be negative, got %g", r.Spacing)
	}
	if r.DebugPort < 0 || r.DebugPort > 65535 {
		return fmt.Errorf("debug port %d out of range", r.DebugPort)
	}
	return nil
}

// FindProjectRoot walks up from dir to find go.mod. It returns dir itself
// when no enclosing module exists.
func FindProjectRoot(dir string) string {
	for cur := dir; ; {
		if _, err := os.Stat(filepath.Join(cur, "go.mod")); err == nil {
			return cur
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir
		}
		cur = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "weft_app"
	}
	return base
}
