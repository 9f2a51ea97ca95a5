// Package config reads ocdtool settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvOriginX = "OCD_ORIGIN_X"
	EnvOriginY = "OCD_ORIGIN_Y"
	EnvScale   = "OCD_SCALE"
	EnvOutput  = "OCD_OUTPUT"
)

// Config holds the georeference and output path for new maps.
type Config struct {
	OriginX float64
	OriginY float64
	Scale   float64
	Output  string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Scale:  10000,
		Output: "map.ocd",
	}
}

// Load reads envFiles into the environment, then builds a Config from it.
// Missing files are ignored and variables already set win over file values.
// Malformed numbers are errors.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	cfg := Default()

	var err error
	if cfg.OriginX, err = envFloat(EnvOriginX, cfg.OriginX); err != nil {
		return cfg, err
	}
	if cfg.OriginY, err = envFloat(EnvOriginY, cfg.OriginY); err != nil {
		return cfg, err
	}
	if cfg.Scale, err = envFloat(EnvScale, cfg.Scale); err != nil {
		return cfg, err
	}
	if cfg.Scale <= 0 {
		return cfg, fmt.Errorf("%s must be positive, got %g", EnvScale, cfg.Scale)
	}
	if s := os.Getenv(EnvOutput); s != "" {
		cfg.Output = s
	}
	return cfg, nil
}

func envFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
