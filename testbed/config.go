package testbed

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/kinetic/engine/core"
)

type WindowConfig struct {
	Title     string  `toml:"title"`
	Width     int32   `toml:"width"`
	Height    int32   `toml:"height"`
	TargetFPS int32   `toml:"target_fps"`
	FovY      float32 `toml:"fov_y"`
}

type CameraConfig struct {
	Eye [3]float32 `toml:"eye"`
	At  [3]float32 `toml:"at"`
}

type Config struct {
	Window   WindowConfig `toml:"window"`
	Camera   CameraConfig `toml:"camera"`
	Scene    string       `toml:"scene"`
	DrawAxes bool         `toml:"draw_axes"`
	LogLevel string       `toml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Kinetic Testbed",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
			FovY:      45.0,
		},
		Camera: CameraConfig{
			Eye: [3]float32{10.0, 10.0, 10.0},
			At:  [3]float32{0.0, 0.0, 0.0},
		},
		Scene:    "balls-vee",
		DrawAxes: false,
		LogLevel: "info",
	}
}

// LoadConfig reads a TOML config, filling unset fields with defaults. A
// missing file is not an error; defaults are returned.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			core.LogDebug("no config at '%s', using defaults", path)
			return config, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// WatchConfig watches the config file and invokes onChange with the freshly
// parsed config every time it is written. Returns a stop function.
func WatchConfig(path string, onChange func(*Config)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors replace files on save, which drops the
	// watch if placed on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				config, err := LoadConfig(path)
				if err != nil {
					core.LogWarn("config reload failed: %s", err.Error())
					continue
				}
				core.LogInfo("config reloaded from '%s'", path)
				onChange(config)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				core.LogError("config watcher: %s", err.Error())
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
