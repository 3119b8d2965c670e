package main

import (
	"bufio"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	pkgLineRegexp   = regexp.MustCompile(`^pkg: (\S+)`)
	benchLineRegexp = regexp.MustCompile(`^Benchmark([A-Za-z]+)_capacity([0-9]+)_keyAmount([0-9]+)(-[0-9]+)?\s+[0-9]+\s+([0-9.]+) ns/op`)
)

type benchResult struct {
	MapName   string
	Action    string
	Capacity  int
	KeyAmount int
	NsPerOp   float32
}

type benchResults []benchResult

func (result benchResult) SeriesName() string {
	return result.MapName + "_" + result.Action + "_cap" + strconv.Itoa(result.Capacity)
}

// parseBenchOutput collects the results of generated benchmarks. The map
// name is the last element of the latest "pkg:" line.
func parseBenchOutput(scanner *bufio.Scanner) (results benchResults, err error) {
	mapName := ""
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if m := pkgLineRegexp.FindStringSubmatch(line); m != nil {
			mapName = path.Base(m[1])
			continue
		}

		m := benchLineRegexp.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		result := benchResult{MapName: mapName, Action: m[1]}
		if result.Capacity, err = strconv.Atoi(m[2]); err != nil {
			return nil, errors.Wrapf(err, "line %v", lineNum)
		}
		if result.KeyAmount, err = strconv.Atoi(m[3]); err != nil {
			return nil, errors.Wrapf(err, "line %v", lineNum)
		}
		nsPerOp, err := strconv.ParseFloat(m[5], 32)
		if err != nil {
			return nil, errors.Wrapf(err, "line %v", lineNum)
		}
		result.NsPerOp = float32(nsPerOp)

		results = append(results, result)
	}
	return results, scanner.Err()
}
