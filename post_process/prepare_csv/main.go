// Convert the output of "go test -bench ." over the map packages into a CSV
// table: one row per key amount, one column per package/capacity series.
//
// Usage: prepare_csv <bench output file> <action name, for example "Put">

package main

import (
	"bufio"
	"encoding/csv"
	"os"
	"sort"
	"strconv"
)

func checkErr(err error) {
	if err == nil {
		return
	}
	panic(err)
}

func averageF32(values ...float32) float32 {
	sum := float32(0)
	for _, value := range values {
		sum += value
	}
	return sum / float32(len(values))
}

func main() {
	if len(os.Args) < 2 {
		panic(`It's required to pass the file path as an argument`)
	}
	if len(os.Args) < 3 {
		panic(`It's required to pass action name (for example: "Put")`)
	}

	filePath := os.Args[1]
	requiredActionName := os.Args[2]

	file, err := os.Open(filePath)
	checkErr(err)
	defer file.Close()

	results, err := parseBenchOutput(bufio.NewScanner(file))
	checkErr(err)

	table := results.Table(requiredActionName)

	w := csv.NewWriter(os.Stdout)
	checkErr(w.WriteAll(table))
}

// Table builds CSV rows for one action. The first row is the header.
func (results benchResults) Table(actionName string) [][]string {
	seriesNamesMap := map[string]bool{}
	values := map[int]map[string][]float32{}

	for _, result := range results {
		if result.Action != actionName {
			continue
		}

		seriesName := result.SeriesName()
		seriesNamesMap[seriesName] = true

		if values[result.KeyAmount] == nil {
			values[result.KeyAmount] = map[string][]float32{}
		}
		values[result.KeyAmount][seriesName] = append(values[result.KeyAmount][seriesName], result.NsPerOp)
	}

	seriesNames := []string{}
	for seriesName := range seriesNamesMap {
		seriesNames = append(seriesNames, seriesName)
	}
	sort.Strings(seriesNames)

	keyAmounts := []int{}
	for keyAmount := range values {
		keyAmounts = append(keyAmounts, keyAmount)
	}
	sort.Ints(keyAmounts)

	table := [][]string{append([]string{""}, seriesNames...)}
	for _, keyAmount := range keyAmounts {
		row := []string{strconv.Itoa(keyAmount)}
		for _, seriesName := range seriesNames {
			seriesValues := values[keyAmount][seriesName]
			if len(seriesValues) == 0 {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(float64(averageF32(seriesValues...)), 'f', 1, 32))
		}
		table = append(table, row)
	}
	return table
}
