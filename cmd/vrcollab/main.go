package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"vrcollab/internal/app"
	"vrcollab/internal/config"
	"vrcollab/internal/input"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "path to the TOML config file")
	platformName := flag.String("platform", "", "input platform: desktop, touch or immersive (default: probe)")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if *platformName != "" {
		conf.Platform = *platformName
	}
	if *writeConfig {
		if err := config.Save(*configPath, conf); err != nil {
			log.Fatalf("Config: %v", err)
		}
		log.Printf("Config: wrote %s", *configPath)
		return
	}

	platform := input.ParsePlatform(conf.Platform)
	if conf.Platform == "" || conf.Platform == "auto" {
		platform = input.Probe(input.Capabilities{Touch: runtime.GOOS == "android"})
	}

	a, err := app.New(conf, platform)
	if err != nil {
		log.Fatalf("App: %v", err)
	}
	a.Run()
}
