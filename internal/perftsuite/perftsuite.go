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

// Package perftsuite loads a flat CSV file of expected perft results
// so a batch of known positions can be checked against the move
// generator in one run.
package perftsuite

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ExpectedResult is one row of an expected-counts CSV file: a FEN, the
// depth it was measured at, and the counts a correct move generator
// must reproduce exactly at that depth. Nodes is always required; the
// classification counters are optional and left nil when the source
// row leaves that column blank or "None", meaning that count is not
// checked for this row.
type ExpectedResult struct {
	Fen        string
	Depth      int
	Nodes      uint64
	Captures   *uint64
	EnPassants *uint64
	Castles    *uint64
	Promotions *uint64
	Checks     *uint64
	Checkmates *uint64
}

// header names required in the first row of the CSV file, in any
// order. The remaining classification columns (captures, en_passants,
// castles, promotions, checks, checkmates) are optional.
var wantColumns = []string{"fen", "depth", "nodes"}

// LoadFile reads an expected-counts CSV file from path and returns its
// rows as ExpectedResult values. The first row must be a header naming
// the columns listed in wantColumns; columns may appear in any order.
func LoadFile(path string) ([]ExpectedResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open perft suite file %q: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads an expected-counts CSV file from r. See LoadFile.
func Load(r io.Reader) ([]ExpectedResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read perft suite header: %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var results []ExpectedResult
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read perft suite row: %w", err)
		}
		result, err := parseRow(record, index)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, want := range wantColumns {
		if _, found := index[want]; !found {
			return nil, fmt.Errorf("perft suite header is missing column %q", want)
		}
	}
	return index, nil
}

func parseRow(record []string, index map[string]int) (ExpectedResult, error) {
	var r ExpectedResult
	r.Fen = strings.TrimSpace(record[index["fen"]])

	depth, err := strconv.Atoi(strings.TrimSpace(record[index["depth"]]))
	if err != nil {
		return ExpectedResult{}, fmt.Errorf("perft suite row %v: invalid depth: %w", record, err)
	}
	r.Depth = depth

	nodes, err := strconv.ParseUint(strings.TrimSpace(record[index["nodes"]]), 10, 64)
	if err != nil {
		return ExpectedResult{}, fmt.Errorf("perft suite row %v: invalid nodes: %w", record, err)
	}
	r.Nodes = nodes

	optionalFields := map[string]**uint64{
		"captures":    &r.Captures,
		"en_passants": &r.EnPassants,
		"castles":     &r.Castles,
		"promotions":  &r.Promotions,
		"checks":      &r.Checks,
		"checkmates":  &r.Checkmates,
	}
	for name, dst := range optionalFields {
		col, present := index[name]
		if !present {
			continue
		}
		v, err := parseOptionalUint(record[col])
		if err != nil {
			return ExpectedResult{}, fmt.Errorf("perft suite row %v: invalid %s: %w", record, name, err)
		}
		*dst = v
	}

	return r, nil
}

// parseOptionalUint parses a CSV cell that may be blank or the literal
// "None" to mean "not checked", returning a nil pointer in that case.
func parseOptionalUint(cell string) (*uint64, error) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" || strings.EqualFold(trimmed, "none") {
		return nil, nil
	}
	v, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
