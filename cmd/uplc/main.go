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

// Command uplc is the debug driver around the evaluator: it decodes a
// script (flat bytes or the textual S-expression form), optionally applies
// extra argument terms to it, evaluates it under a chosen language version,
// and reports the result, the consumed budget, and any trace log lines
// (spec §6).
package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/probechain/uplc/cost"
	"github.com/probechain/uplc/internal/config"
	"github.com/probechain/uplc/internal/ulog"
	"github.com/probechain/uplc/program"
	"github.com/probechain/uplc/syn/parser"
)

var gitCommit = ""

func main() {
	app := cli.NewApp()
	app.Name = "uplc"
	app.Usage = "evaluate Untyped Plutus Core scripts"
	app.Version = "0.1.0" + gitCommit

	app.Commands = []cli.Command{
		evalCommand,
	}
	app.Flags = []cli.Flag{
		verboseFlag,
	}
	app.Before = func(ctx *cli.Context) error {
		if ctx.GlobalBool(verboseFlag.Name) {
			ulog.SetDefault(ulog.NewTerminalLogger(os.Stderr, ulog.LevelDebug))
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var verboseFlag = cli.BoolFlag{
	Name:  "verbose",
	Usage: "enable debug logging",
}

var (
	fileFlag = cli.StringFlag{
		Name:  "file",
		Usage: "read the script from PATH instead of stdin",
	}
	flatFlag = cli.BoolFlag{
		Name:  "flat",
		Usage: "input is flat-encoded bytes rather than the textual syntax",
	}
	argsFlag = cli.StringSliceFlag{
		Name:  "A",
		Usage: "a term to apply to the program before evaluation, repeatable, applied in order",
	}
	versionFlag = cli.StringFlag{
		Name:  "v",
		Value: "v3",
		Usage: "language version: v1, v2 or v3",
	}
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML file overriding the default budget and cost parameters",
	}
)

var evalCommand = cli.Command{
	Name:   "eval",
	Usage:  "decode, apply and evaluate a script",
	Action: runEval,
	Flags: []cli.Flag{
		fileFlag,
		flatFlag,
		argsFlag,
		versionFlag,
		configFlag,
	},
}

func runEval(ctx *cli.Context) error {
	src, err := readInput(ctx.String(fileFlag.Name))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	prog, err := decodeProgram(src, ctx.Bool(flatFlag.Name))
	if err != nil {
		return fmt.Errorf("decoding program: %w", err)
	}

	for _, src := range ctx.StringSlice(argsFlag.Name) {
		arg, err := parser.ParseTerm("<arg>", src)
		if err != nil {
			return fmt.Errorf("parsing -A argument %q: %w", src, err)
		}
		prog = prog.Apply(arg)
	}

	var cfg *config.Config
	if file := ctx.String(configFlag.Name); file != "" {
		cfg, err = config.Load(file)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = &config.Config{}
	}

	version := ctx.String(versionFlag.Name)
	if !ctx.IsSet(versionFlag.Name) && cfg.Version != "" {
		version = cfg.Version
	}
	v, err := config.ParseVersion(version)
	if err != nil {
		return err
	}

	budget := cfg.ApplyBudget(cost.DefaultBudget())
	var result program.EvalResult
	if len(cfg.CostParams) > 0 {
		result = prog.EvalWithParams(v, cfg.CostParams, budget)
	} else {
		result = prog.EvalWithBudget(v, budget)
	}

	for _, line := range result.Logs {
		ulog.Info("trace", "msg", line)
	}
	fmt.Printf("consumed budget: %s\n", result.Budget)

	if result.Err != nil {
		return fmt.Errorf("evaluation failed: %w", result.Err)
	}
	fmt.Println(result.Term)
	return nil
}

func readInput(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func decodeProgram(src []byte, flat bool) (*program.Program, error) {
	if flat {
		return program.Decode(src)
	}
	ast, err := parser.ParseProgram("<stdin>", string(src))
	if err != nil {
		return nil, err
	}
	return program.New(program.Version{Major: ast.Major, Minor: ast.Minor, Patch: ast.Patch}, ast.Term)
}
