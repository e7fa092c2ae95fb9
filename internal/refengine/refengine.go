//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package refengine bridges to an external UCI-speaking binary so its
// "go perft" divide output can be compared, move by move, against this
// engine's own divide map. It speaks only the handful of UCI lines
// needed for that (uci/isready/position/go perft/quit) - it is not a
// general UCI client.
package refengine

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Engine is a running instance of an external UCI engine used as a
// perft reference.
type Engine struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Scanner
}

// Start launches the engine binary at path and waits for it to
// acknowledge "uciok" and "readyok".
func Start(path string) (*Engine, error) {
	cmd := exec.Command(path)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("refengine: could not open stdin to %q: %w", path, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("refengine: could not open stdout of %q: %w", path, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("refengine: could not start %q: %w", path, err)
	}

	e := &Engine{cmd: cmd, stdin: stdin, stdout: bufio.NewScanner(stdout)}
	e.stdout.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if err := e.send("uci"); err != nil {
		return nil, err
	}
	if err := e.waitFor("uciok", 5*time.Second); err != nil {
		return nil, err
	}
	if err := e.send("isready"); err != nil {
		return nil, err
	}
	if err := e.waitFor("readyok", 5*time.Second); err != nil {
		return nil, err
	}
	return e, nil
}

// Close tells the engine to quit and releases its process resources.
func (e *Engine) Close() error {
	_ = e.send("quit")
	_ = e.stdin.Close()
	return e.cmd.Wait()
}

func (e *Engine) send(line string) error {
	_, err := io.WriteString(e.stdin, line+"\n")
	if err != nil {
		return fmt.Errorf("refengine: could not write %q: %w", line, err)
	}
	return nil
}

func (e *Engine) waitFor(token string, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		for e.stdout.Scan() {
			if strings.Contains(e.stdout.Text(), token) {
				done <- nil
				return
			}
		}
		done <- e.stdout.Err()
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("refengine: timed out waiting for %q", token)
	}
}

var divideLineRe = regexp.MustCompile(`^([a-h][1-8][a-h][1-8][nbrqNBRQ]?)\s*[:=]\s*(\d+)`)

// Divide sends "position fen <fen>" followed by "go perft <depth>" and
// parses the engine's per-root-move divide output into a map keyed by
// UCI move. Most UCI engines print divide lines as "e2e4: 20" and a
// trailing total; only lines matching a move token are kept.
func (e *Engine) Divide(fen string, depth int) (map[string]uint64, error) {
	if err := e.send(fmt.Sprintf("position fen %s", fen)); err != nil {
		return nil, err
	}
	if err := e.send(fmt.Sprintf("go perft %d", depth)); err != nil {
		return nil, err
	}

	result := make(map[string]uint64)
	deadline := time.Now().Add(2 * time.Minute)
	for time.Now().Before(deadline) && e.stdout.Scan() {
		line := strings.TrimSpace(e.stdout.Text())
		if line == "" {
			continue
		}
		if matches := divideLineRe.FindStringSubmatch(line); matches != nil {
			nodes, err := strconv.ParseUint(matches[2], 10, 64)
			if err != nil {
				continue
			}
			result[strings.ToLower(matches[1])] = nodes
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "nodes searched") || strings.HasPrefix(strings.ToLower(line), "total") {
			break
		}
	}
	return result, nil
}
