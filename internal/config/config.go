// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

// Package config loads the optional TOML file that overrides the evaluator's
// defaults: language version, execution budget, and the cost parameter
// vector (spec §6). Flags on the command line take precedence over the file,
// the file takes precedence over built-in defaults.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"

	"github.com/probechain/uplc/cost"
)

// tomlSettings keeps TOML keys identical to the Go struct field names and
// rejects unknown fields instead of silently ignoring typos in a hand-edited
// file.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string { return key },
	FieldToKey:    func(rt reflect.Type, field string) string { return field },
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) {
			link = fmt.Sprintf(" (see %s)", rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// Config holds the evaluator settings a TOML file may override.
type Config struct {
	// Version selects V1, V2 or V3 ("v1"/"v2"/"v3"); empty keeps the CLI's
	// own default.
	Version string `toml:",omitempty"`

	// Budget overrides the default execution budget. Zero fields are left
	// at the built-in default rather than forced to zero.
	Budget struct {
		Mem int64 `toml:",omitempty"`
		Cpu int64 `toml:",omitempty"`
	} `toml:",omitempty"`

	// CostParams is the ordered (mem, cpu) override vector consumed by
	// cost.PresetModelWithParams; nil leaves the built-in coefficients.
	CostParams []int64 `toml:",omitempty"`
}

// Load reads and decodes a TOML configuration file.
func Load(file string) (*Config, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := new(Config)
	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseVersion maps the config/flag version string to a cost.Version,
// defaulting to V3 per spec §6.
func ParseVersion(s string) (cost.Version, error) {
	switch s {
	case "", "v3":
		return cost.V3, nil
	case "v1":
		return cost.V1, nil
	case "v2":
		return cost.V2, nil
	default:
		return 0, fmt.Errorf("unknown language version %q, want v1, v2 or v3", s)
	}
}

// ApplyBudget returns the execution budget the config requests, falling
// back to b when the file didn't set one.
func (c *Config) ApplyBudget(b cost.ExBudget) cost.ExBudget {
	if c.Budget.Mem == 0 && c.Budget.Cpu == 0 {
		return b
	}
	out := b
	if c.Budget.Mem != 0 {
		out.Mem = c.Budget.Mem
	}
	if c.Budget.Cpu != 0 {
		out.Cpu = c.Budget.Cpu
	}
	return out
}

// CostModel builds the cost model for v, applying the config's cost
// parameter override vector if present.
func (c *Config) CostModel(v cost.Version) *cost.CostModel {
	if len(c.CostParams) == 0 {
		return cost.PresetModel(v)
	}
	return cost.PresetModelWithParams(v, c.CostParams)
}
