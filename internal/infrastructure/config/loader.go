package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *Settings
	Dialogs  *Dialogs
}

// Loader loads game configuration from files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadSettings loads settings.json
func (l *Loader) LoadSettings() (*Settings, error) {
	data, err := fs.ReadFile(l.fsys, "settings.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read settings.json: %w", err)
	}

	var cfg Settings
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings.json: %w", err)
	}

	return &cfg, nil
}

// LoadDialogs loads dialogs.yaml
func (l *Loader) LoadDialogs() (*Dialogs, error) {
	data, err := fs.ReadFile(l.fsys, "dialogs.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read dialogs.yaml: %w", err)
	}

	var cfg Dialogs
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse dialogs.yaml: %w", err)
	}
	if cfg.Scripts == nil {
		cfg.Scripts = map[string]string{}
	}

	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if cfg.Size.TileSize <= 0 {
		return nil, fmt.Errorf("stage %s: tile size must be positive, got %d", name, cfg.Size.TileSize)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (settings, dialogs)
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	dialogs, err := l.LoadDialogs()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Dialogs:  dialogs,
	}, nil
}
