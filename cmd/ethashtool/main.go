// Copyright 2024 The vaultchain authors
// This file is part of the vaultchain ethash library.
//
// The vaultchain ethash library is free software: you can redistribute it
// and/or modify it under the terms of the GNU Lesser General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// The vaultchain ethash library is distributed in the hope that it will be
// useful, but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU Lesser
// General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the vaultchain ethash library. If not, see
// <http://www.gnu.org/licenses/>.

// ethashtool is a small command line utility for inspecting and exercising
// the ethash package: printing the epoch parameters for a block number, and
// running a scratch mine/verify round trip against a test-sized cache and
// dataset. It exists to support manual poking at the algorithm; it is not
// part of any consensus-critical path.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/urfave/cli"

	"github.com/vaultchain/ethash/ethash"
)

var (
	gitCommit string // set via -ldflags at build time

	stdout = colorable.NewColorableStdout()

	headingColor = color.New(color.FgCyan, color.Bold)
	valueColor   = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed, color.Bold)
)

func main() {
	app := cli.NewApp()
	app.Name = "ethashtool"
	app.Usage = "inspect and exercise the ethash proof-of-work engine"
	app.Version = "0.1.0"
	if gitCommit != "" {
		app.Version += "-" + gitCommit
	}
	app.Commands = []cli.Command{
		epochCommand,
		mineCommand,
	}

	if err := app.Run(os.Args); err != nil {
		errorColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var epochCommand = cli.Command{
	Name:      "epoch",
	Usage:     "print the derived epoch parameters for a block number",
	ArgsUsage: "<blockNumber>",
	Action:    runEpoch,
}

func runEpoch(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("Usage: ethashtool epoch <blockNumber>", 1)
	}
	block, err := strconv.ParseUint(ctx.Args().First(), 0, 64)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid block number: %v", err), 1)
	}

	params, err := ethash.EpochParamsFor(block)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	headingColor.Fprintln(stdout, "epoch parameters")
	printField("epoch", params.Epoch)
	printField("cache size (bytes)", params.CacheSize)
	printField("dataset size (bytes)", params.DataSize)
	printField("seed hash", fmt.Sprintf("%x", params.SeedHash))
	return nil
}

func printField(name string, value interface{}) {
	fmt.Fprintf(stdout, "  %-22s %s\n", name+":", valueColor.Sprintf("%v", value))
}

var mineCommand = cli.Command{
	Name:      "mine",
	Usage:     "mine and then verify a nonce against a test-sized dataset",
	ArgsUsage: "<blockNumber> <difficulty>",
	Description: `
Runs a scratch Mine/Validate round trip using ethash.NewTester, which builds
a deliberately undersized cache and dataset. Useful for confirming the
algorithm produces a self-consistent header without waiting on a real
mainnet-sized dataset build.
`,
	Action: runMine,
}

func runMine(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return cli.NewExitError("Usage: ethashtool mine <blockNumber> <difficulty>", 1)
	}
	block, err := strconv.ParseUint(ctx.Args().Get(0), 0, 64)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid block number: %v", err), 1)
	}
	difficulty, ok := new(big.Int).SetString(ctx.Args().Get(1), 0)
	if !ok {
		return cli.NewExitError("invalid difficulty", 1)
	}

	e := ethash.NewTester()
	h := &scratchHeader{number: block, difficulty: difficulty}

	start := time.Now()
	nonce, mix, err := e.Mine(h, difficulty, nil)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	elapsed := time.Since(start)

	h.nonce = nonce
	h.mixDigest = mix

	valid, err := e.Validate(h)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	headingColor.Fprintln(stdout, "mine result")
	printField("nonce", nonce)
	printField("mix digest", fmt.Sprintf("%x", mix))
	printField("elapsed", elapsed)
	printField("validates", valid)
	if !valid {
		errorColor.Fprintln(os.Stderr, "mined nonce failed self-validation, this is a bug")
		return cli.NewExitError("", 1)
	}
	return nil
}

// scratchHeader is a throwaway ethash.Header for the mine command; it has no
// real chain identity, only what Mine and Validate need.
type scratchHeader struct {
	number     uint64
	nonce      uint64
	mixDigest  [32]byte
	difficulty *big.Int
}

func (h *scratchHeader) NumberU64() uint64    { return h.number }
func (h *scratchHeader) NonceU64() uint64     { return h.nonce }
func (h *scratchHeader) MixDigest() [32]byte  { return h.mixDigest }
func (h *scratchHeader) Difficulty() *big.Int { return h.difficulty }
func (h *scratchHeader) SealHash() [32]byte {
	var seal [32]byte
	seal[0] = byte(h.number)
	seal[1] = byte(h.number >> 8)
	return seal
}
