/*
 * main_test.go, part of chemcalc.
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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/rmera/chemcalc"
	"github.com/rmera/chemcalc/chemjson"
)

//run executes chemcalc with the given arguments and standard input,
//and returns what it wrote to the standard output.
func run(Te *testing.T, stdin io.Reader, args ...string) (string, error) {
	Te.Helper()
	Te.Setenv("XDG_CONFIG_HOME", Te.TempDir())
	cmd := newRootCmd()
	var out, errout bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errout)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(Te *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"mass", "H2O"}, "18.015 g/mol\n"},
		{[]string{"parse", "Ca(OH)2"}, "Ca  1\nH   2\nO   2\n"},
		{[]string{"purity", "10", "50"}, "20\n"},
		{[]string{"conc", "-m", "5.844", "-V", "250", "-f", "NaCl"}, "0.4 M\n"},
		{[]string{"conc", "-m", "5", "-V", "100", "-t", "%(m/v)"}, "5 %(m/v)\n"},
		{[]string{"solute", "-C", "1", "-V", "1", "-u", "L", "-t", "N", "-f", "H2SO4"}, "49.036 g\n"},
		{[]string{"solute", "-C", "0.1", "-V", "1", "-u", "L", "-t", "N", "-f", "KMnO4", "-r", "redox", "--valence", "5"}, "3.1606 g\n"},
		{[]string{"dilute", "--c1", "10", "--c2", "2", "--v2", "50"}, "C1 = 10\nV1 = 10\nC2 = 2\nV2 = 50\n"},
		{[]string{"density", "105", "100"}, "1.05 g/mL\n"},
		{[]string{"ideal-density", "H2O"}, "1 g/mL at 25 C (table)\n"},
		{[]string{"equivalents", "H3AsO4"}, "3 eq/mol (heuristic): estimated 3 H+ based on the formula\n"},
		{[]string{"eqweight", "Ca(OH)2", "-r", "base"}, "37.046 g/eq\n"},
	}
	for _, c := range cases {
		got, err := run(Te, nil, c.args...)
		if err != nil {
			Te.Errorf("%v: %v", c.args, err)
			continue
		}
		if got != c.want {
			Te.Errorf("%v: got %q, want %q", c.args, got, c.want)
		}
	}
}

func TestCommandErrors(Te *testing.T) {
	if _, err := run(Te, nil, "mass", "Xx"); !errors.Is(err, chem.ErrParse) {
		Te.Errorf("mass of an unknown element returned %v", err)
	}
	if _, err := run(Te, nil, "conc", "-m", "1", "-V", "100"); !errors.Is(err, chem.ErrMissingParameter) {
		Te.Errorf("conc without a molar mass returned %v", err)
	}
	if _, err := run(Te, nil, "dilute", "--c1", "1"); !errors.Is(err, chem.ErrInvalidArgument) {
		Te.Errorf("dilute with two missing values returned %v", err)
	}
	if _, err := run(Te, nil, "purity", "ten", "50"); err == nil {
		Te.Errorf("purity should fail with a non-numeric amount")
	}
}

func TestConfigFlag(Te *testing.T) {
	cfg := writeConfig(Te, "volume_unit: L\nreaction_type: base\n")
	got, err := run(Te, nil, "--config", cfg, "conc", "-m", "5.844", "-V", "0.25", "-f", "NaCl")
	if err != nil {
		Te.Fatal(err)
	}
	if got != "0.4 M\n" {
		Te.Errorf("got %q", got)
	}
	got, err = run(Te, nil, "-c", cfg, "equivalents", "Zn(OH)2")
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(got, "2 eq/mol (heuristic)") {
		Te.Errorf("got %q", got)
	}
	bad := writeConfig(Te, "volume_unit: gal\n")
	if _, err := run(Te, nil, "-c", bad, "mass", "H2O"); !errors.Is(err, chem.ErrInvalidUnit) {
		Te.Errorf("an invalid configuration returned %v", err)
	}
}

func TestSerialExport(Te *testing.T) {
	dir := Te.TempDir()
	table := filepath.Join(dir, "serial.json.zst")
	plot := filepath.Join(dir, "serial.png")
	out, err := run(Te, nil, "serial", "-i", "100", "-f", "10", "-n", "3", "-V", "10", "--out", table, "--plot", plot)
	if err != nil {
		Te.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 5 {
		Te.Errorf("expected a header and 4 tubes, got:\n%s", out)
	}
	f, err := os.Open(table)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	r, err := chemjson.NewReader(f, true)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()
	tubes, jerr := chemjson.DecodeTubes(r)
	if jerr != nil {
		Te.Fatal(jerr)
	}
	if len(tubes) != 4 || tubes[3].Concentration != 0.1 || tubes[3].TransferVolume != 0 {
		Te.Errorf("unexpected exported tubes %+v", tubes)
	}
	if info, err := os.Stat(plot); err != nil || info.Size() == 0 {
		Te.Errorf("the plot was not saved: %v", err)
	}
}

func TestJSONCommand(Te *testing.T) {
	in := strings.NewReader(`{"operation":"molarmass","formula":"H2O"}` + "\n" + `{"operation":"purity","desired":10,"purity":0}` + "\n")
	out, err := run(Te, in, "json")
	if err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		Te.Fatalf("expected 2 responses, got:\n%s", out)
	}
	if !strings.Contains(lines[0], `"result":18.015`) {
		Te.Errorf("unexpected response %s", lines[0])
	}
	if !strings.Contains(lines[1], `"kind":"invalid_argument"`) {
		Te.Errorf("unexpected response %s", lines[1])
	}
}
