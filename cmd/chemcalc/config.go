/*
 * config.go, part of chemcalc.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	chem "github.com/rmera/chemcalc"
	"gopkg.in/yaml.v3"
)

// Config holds the user defaults for the command line tool.
type Config struct {
	VolumeUnit   string       `yaml:"volume_unit"`
	ReactionType string       `yaml:"reaction_type"`
	Plot         PlotConfig   `yaml:"plot"`
	Export       ExportConfig `yaml:"export"`
}

type PlotConfig struct {
	WidthCM  float64 `yaml:"width_cm"`
	HeightCM float64 `yaml:"height_cm"`
}

type ExportConfig struct {
	Compress bool `yaml:"compress"` //zstd-compress exported tables, even without a .zst extension
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		VolumeUnit:   chem.Milliliter,
		ReactionType: string(chem.Acid),
		Plot:         PlotConfig{WidthCM: 12, HeightCM: 9},
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/chemcalc/config.yaml, or its
// equivalent in the current OS.
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "chemcalc", "config.yaml"), nil
}

// LoadConfig reads the configuration in path. If path is empty, the default
// location is used, and a missing file just means that the defaults are used.
// Values not given in the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that all the values in the configuration can be used.
func (c *Config) Validate() error {
	if _, err := chem.ToLiters(1, c.VolumeUnit); err != nil {
		return err
	}
	if _, err := chem.ParseReactionType(c.ReactionType); err != nil {
		return err
	}
	if c.Plot.WidthCM <= 0 || c.Plot.HeightCM <= 0 {
		return fmt.Errorf("plot sizes must be positive, got %gx%g cm", c.Plot.WidthCM, c.Plot.HeightCM)
	}
	return nil
}
