/*
 * config_test.go, part of chemcalc.
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
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/chemcalc"
)

func writeConfig(Te *testing.T, content string) string {
	Te.Helper()
	name := filepath.Join(Te.TempDir(), "config.yaml")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
	return name
}

func TestLoadConfig(Te *testing.T) {
	name := writeConfig(Te, `
volume_unit: L
reaction_type: base
plot:
  width_cm: 20
export:
  compress: true
`)
	cfg, err := LoadConfig(name)
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.VolumeUnit != "L" || cfg.ReactionType != "base" || !cfg.Export.Compress {
		Te.Errorf("unexpected configuration %+v", cfg)
	}
	//not in the file, so it keeps its default
	if cfg.Plot.WidthCM != 20 || cfg.Plot.HeightCM != 9 {
		Te.Errorf("unexpected plot size %+v", cfg.Plot)
	}
}

func TestLoadConfigDefaults(Te *testing.T) {
	Te.Setenv("XDG_CONFIG_HOME", Te.TempDir())
	cfg, err := LoadConfig("")
	if err != nil {
		Te.Fatal(err)
	}
	if *cfg != *DefaultConfig() {
		Te.Errorf("got %+v, want the defaults", cfg)
	}
	if _, err := LoadConfig(filepath.Join(Te.TempDir(), "nothere.yaml")); err == nil {
		Te.Errorf("a missing file given explicitly should be an error")
	}
}

func TestLoadConfigInvalid(Te *testing.T) {
	cases := []struct {
		content string
		kind    error
	}{
		{"volume_unit: gal\n", chem.ErrInvalidUnit},
		{"reaction_type: neutral\n", chem.ErrInvalidArgument},
		{"plot:\n  height_cm: -1\n", nil},
		{"volume_unit: [L\n", nil},
	}
	for _, c := range cases {
		_, err := LoadConfig(writeConfig(Te, c.content))
		if err == nil {
			Te.Errorf("config %q should be invalid", c.content)
			continue
		}
		if c.kind != nil && !errors.Is(err, c.kind) {
			Te.Errorf("config %q: expected %v, got %v", c.content, c.kind, err)
		}
	}
}
