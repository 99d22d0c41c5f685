package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if conf.Pointer.Far != 20 {
		t.Errorf("Expected far 20, got %v", conf.Pointer.Far)
	}
	if conf.Text.CaretIntervalMs != 500 {
		t.Errorf("Expected caret interval 500, got %d", conf.Text.CaretIntervalMs)
	}
}

func TestLoadKeepsDefaultsForAbsentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	data := "platform = \"touch\"\n\n[text]\ntab_width = 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if conf.Platform != "touch" {
		t.Errorf("Expected platform 'touch', got '%s'", conf.Platform)
	}
	if conf.Text.TabWidth != 2 {
		t.Errorf("Expected tab width 2, got %d", conf.Text.TabWidth)
	}
	if conf.Text.CaretIntervalMs != 500 {
		t.Errorf("Expected caret interval default 500, got %d", conf.Text.CaretIntervalMs)
	}
	if conf.Controller.AxisThreshold != 0.9 {
		t.Errorf("Expected axis threshold default 0.9, got %v", conf.Controller.AxisThreshold)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "vrcollab.toml")
	conf := Default()
	conf.Platform = "immersive"
	conf.Pointer.Far = 12
	conf.Audio.Enabled = false

	if err := Save(path, conf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Platform != "immersive" || loaded.Pointer.Far != 12 || loaded.Audio.Enabled {
		t.Errorf("Expected edited values to survive, got %+v", loaded)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[pointer\nnear = "), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected an error for malformed TOML")
	}
}

func TestLoadRejectsInvalidRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "range.toml")
	if err := os.WriteFile(path, []byte("[pointer]\nnear = 5.0\nfar = 1.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrPointerRange) {
		t.Errorf("Expected ErrPointerRange, got %v", err)
	}
}

func TestValidateAxisThreshold(t *testing.T) {
	conf := Default()
	conf.Controller.AxisThreshold = 1.5
	if !errors.Is(conf.Validate(), ErrAxisThreshold) {
		t.Error("Expected ErrAxisThreshold for threshold above 1")
	}
}
