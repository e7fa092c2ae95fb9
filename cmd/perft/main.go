/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessperft/internal/config"
	"github.com/frankkopp/chessperft/internal/logging"
	"github.com/frankkopp/chessperft/internal/movegen"
	"github.com/frankkopp/chessperft/internal/perftsuite"
	"github.com/frankkopp/chessperft/internal/refengine"
)

var out = message.NewPrinter(language.German)

func main() {
	fen := flag.String("fen", "", "fen of the position to run perft on (defaults to config.toml's perft default, or the standard start position)")
	depth := flag.Int("depth", 0, "perft depth (defaults to config.toml's perft default)")
	divide := flag.Bool("divide", false, "print the node count reached by each root move")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "log level (critical|error|warning|notice|info|debug)")
	compare := flag.String("compare", "", "path to a UCI engine binary to cross check the divide output against")
	suite := flag.String("suite", "", "path to a CSV file of expected perft results to verify in batch")
	progress := flag.Bool("progress", false, "print a live count of completed root moves while perft runs")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	if *suite != "" {
		runSuite(*suite)
		return
	}

	runFen := config.Settings.Perft.DefaultFen
	if *fen != "" {
		runFen = *fen
	}
	runDepth := config.Settings.Perft.DefaultDepth
	if *depth != 0 {
		runDepth = *depth
	}

	var perft movegen.Perft
	perft.ShowProgress = *progress
	perft.StartPerft(runFen, runDepth, *divide)

	if *divide && *compare != "" {
		compareDivide(runFen, runDepth, *compare, perft.Divide)
	}
}

// runSuite checks a batch of known positions from a CSV file against
// the move generator and reports a pass/fail summary, exiting non-zero
// if any position mismatches.
func runSuite(path string) {
	cases, err := perftsuite.LoadFile(path)
	if err != nil {
		out.Printf("could not load perft suite: %v\n", err)
		os.Exit(1)
	}

	failures := 0
	for _, c := range cases {
		var perft movegen.Perft
		perft.StartPerft(c.Fen, c.Depth, false)
		ok := perft.Nodes == c.Nodes &&
			matchesOptional(perft.CaptureCounter, c.Captures) &&
			matchesOptional(perft.EnpassantCounter, c.EnPassants) &&
			matchesOptional(perft.CastleCounter, c.Castles) &&
			matchesOptional(perft.PromotionCounter, c.Promotions) &&
			matchesOptional(perft.CheckCounter, c.Checks) &&
			matchesOptional(perft.CheckMateCounter, c.Checkmates)
		if ok {
			out.Printf("PASS depth=%d nodes=%d  %s\n", c.Depth, perft.Nodes, c.Fen)
		} else {
			failures++
			out.Printf("FAIL depth=%d  %s\n", c.Depth, c.Fen)
			out.Printf("  got  nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d mates=%d\n",
				perft.Nodes, perft.CaptureCounter, perft.EnpassantCounter, perft.CastleCounter, perft.PromotionCounter, perft.CheckCounter, perft.CheckMateCounter)
			out.Printf("  want nodes=%d captures=%s ep=%s castles=%s promotions=%s checks=%s mates=%s\n",
				c.Nodes, formatOptional(c.Captures), formatOptional(c.EnPassants), formatOptional(c.Castles),
				formatOptional(c.Promotions), formatOptional(c.Checks), formatOptional(c.Checkmates))
		}
	}

	out.Printf("-----------------------------------------\n")
	out.Printf("%d/%d positions passed\n", len(cases)-failures, len(cases))
	if failures > 0 {
		os.Exit(1)
	}
}

// matchesOptional reports whether got matches want, treating a nil
// want as "not checked for this row".
func matchesOptional(got uint64, want *uint64) bool {
	return want == nil || got == *want
}

// formatOptional renders an optional expected count for diagnostics,
// printing "-" for fields the suite row left unchecked.
func formatOptional(v *uint64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

// compareDivide cross checks our divide map against a reference UCI
// engine's divide map for the same position and depth, printing every
// move where the two disagree.
func compareDivide(fen string, depth int, enginePath string, ours map[string]uint64) {
	eng, err := refengine.Start(enginePath)
	if err != nil {
		out.Printf("could not start reference engine: %v\n", err)
		return
	}
	defer eng.Close()

	theirs, err := eng.Divide(fen, depth)
	if err != nil {
		out.Printf("could not read reference engine divide output: %v\n", err)
		return
	}

	mismatches := 0
	moves := make(map[string]struct{}, len(ours)+len(theirs))
	for m := range ours {
		moves[m] = struct{}{}
	}
	for m := range theirs {
		moves[m] = struct{}{}
	}
	keys := make([]string, 0, len(moves))
	for m := range moves {
		keys = append(keys, m)
	}
	sort.Strings(keys)

	out.Printf("Comparing against reference engine divide:\n")
	for _, m := range keys {
		ourCount := ours[m]
		theirCount := theirs[m]
		if ourCount != theirCount {
			mismatches++
			out.Printf("   %-6s ours=%d reference=%d\n", m, ourCount, theirCount)
		}
	}
	if mismatches == 0 {
		out.Printf("   all %d root moves agree\n", len(keys))
	} else {
		fmt.Fprintf(os.Stderr, "perft: %d root moves disagree with reference engine\n", mismatches)
	}
}
