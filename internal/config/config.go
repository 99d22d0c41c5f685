package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const DefaultFile = "vrcollab.toml"

type Config struct {
	Platform   string     `toml:"platform"` // "", desktop, touch or immersive
	Window     Window     `toml:"window"`
	Pointer    Pointer    `toml:"pointer"`
	Desktop    Desktop    `toml:"desktop"`
	Touch      Touch      `toml:"touch"`
	Controller Controller `toml:"controller"`
	Text       Text       `toml:"text"`
	Button     Button     `toml:"button"`
	Audio      Audio      `toml:"audio"`
	Layout     string     `toml:"layout"`
}

type Window struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int32  `toml:"target_fps"`
	LogLines  int    `toml:"log_lines"`
}

type Pointer struct {
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
}

type Desktop struct {
	LookSpeed float32 `toml:"look_speed"`
	MoveSpeed float32 `toml:"move_speed"`
}

type Touch struct {
	LookSpeed float32 `toml:"look_speed"`
}

type Controller struct {
	AxisThreshold float32 `toml:"axis_threshold"`
	StickX        int     `toml:"stick_x"`
	StickY        int     `toml:"stick_y"`
}

type Text struct {
	CaretIntervalMs int `toml:"caret_interval_ms"`
	TabWidth        int `toml:"tab_width"`
}

type Button struct {
	PressDuration float32 `toml:"press_duration"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float32 `toml:"volume"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "vrcollab",
			TargetFPS: 60,
			LogLines:  8,
		},
		Pointer: Pointer{Near: 0.1, Far: 20},
		Desktop: Desktop{LookSpeed: 0.2, MoveSpeed: 3},
		Touch:   Touch{LookSpeed: 0.2},
		Controller: Controller{
			AxisThreshold: 0.9,
			StickX:        2,
			StickY:        3,
		},
		Text:   Text{CaretIntervalMs: 500, TabWidth: 4},
		Button: Button{PressDuration: 0.12},
		Audio:  Audio{Enabled: true, Volume: 0.4},
		Layout: filepath.Join("assets", "layouts", "manipulation.json"),
	}
}

// Load reads a TOML file over the defaults. A missing file yields the
// defaults; keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	conf := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("Config: %s not found, using defaults", path)
		return conf, nil
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return Default(), fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return conf, nil
}

// Save writes conf as TOML, creating parent directories as needed.
func Save(path string, conf Config) error {
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

var (
	ErrPointerRange  = errors.New("pointer near must be >= 0 and less than far")
	ErrAxisThreshold = errors.New("controller axis_threshold must be in (0, 1]")
)

func (c Config) Validate() error {
	if c.Pointer.Near < 0 || c.Pointer.Far <= c.Pointer.Near {
		return ErrPointerRange
	}
	if c.Controller.AxisThreshold <= 0 || c.Controller.AxisThreshold > 1 {
		return ErrAxisThreshold
	}
	if c.Text.TabWidth < 0 {
		return fmt.Errorf("text tab_width %d is negative", c.Text.TabWidth)
	}
	return nil
}
