// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probechain/uplc/cost"
	"github.com/probechain/uplc/internal/config"
)

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "uplc.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadParsesBudgetAndCostParams(t *testing.T) {
	path := writeTOML(t, `
Version = "v2"
CostParams = [1, 2, 3, 4]

[Budget]
Mem = 500
Cpu = 1000
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", cfg.Version)
	assert.Equal(t, []int64{1, 2, 3, 4}, cfg.CostParams)
	assert.EqualValues(t, 500, cfg.Budget.Mem)
	assert.EqualValues(t, 1000, cfg.Budget.Cpu)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	path := writeTOML(t, `Bogus = "nope"`)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseVersionDefaultsToV3(t *testing.T) {
	v, err := config.ParseVersion("")
	require.NoError(t, err)
	assert.Equal(t, cost.V3, v)
}

func TestParseVersionRejectsUnknown(t *testing.T) {
	_, err := config.ParseVersion("v9")
	assert.Error(t, err)
}

func TestApplyBudgetKeepsDefaultWhenUnset(t *testing.T) {
	cfg := &config.Config{}
	def := cost.ExBudget{Mem: 10, Cpu: 20}
	assert.Equal(t, def, cfg.ApplyBudget(def))
}

func TestApplyBudgetOverridesSetFields(t *testing.T) {
	cfg := &config.Config{}
	cfg.Budget.Mem = 99
	def := cost.ExBudget{Mem: 10, Cpu: 20}

	got := cfg.ApplyBudget(def)
	assert.Equal(t, cost.ExBudget{Mem: 99, Cpu: 20}, got)
}

func TestCostModelUsesDefaultsWithoutParams(t *testing.T) {
	cfg := &config.Config{}
	assert.NotNil(t, cfg.CostModel(cost.V3))
}

func TestCostModelAppliesParams(t *testing.T) {
	cfg := &config.Config{CostParams: []int64{7, 8}}
	m := cfg.CostModel(cost.V3)
	got := m.Builtins[0]
	assert.Equal(t, int64(7), got.Mem.Cost(nil))
	assert.Equal(t, int64(8), got.Cpu.Cost(nil))
}
