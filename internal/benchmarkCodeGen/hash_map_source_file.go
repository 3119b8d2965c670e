package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/template"
)

var (
	benchmarkActionNames = []string{"Put", "Get", "GetMiss", "Remove"}
	capacities           = []int{11, 1031, 65537}
	keyAmounts           = []int{16, 512, 65536}

	// constructors is how every package with the go:generate comment
	// builds a map of a given capacity with the default hash function.
	constructors = map[string]string{
		"openaddressing": "New(capacity, nil)",
		"chaining":       "NewWithArgs(capacity, nil)",
		"builtinMap":     "NewWithArgs(capacity)",
		"cornelkHashmap": "NewWithArgs(capacity)",
	}
)

type hashMapSourceFile struct {
	Name        string
	PackageName string
}

type hashMapSourceFiles []hashMapSourceFile

func (files hashMapSourceFiles) GenerateTestFiles(outSuffix string) error {
	for _, file := range files {
		err := file.GenerateTestFile(outSuffix)
		if err != nil {
			return err
		}
	}

	return nil
}

func (file hashMapSourceFile) GenerateTestFile(outSuffix string) error {
	if !strings.HasSuffix(file.Name, ".go") || len(file.Name) <= len(".go") {
		return fmt.Errorf(`not a go source file name: "%v"`, file.Name)
	}
	constructor, ok := constructors[file.PackageName]
	if !ok {
		return fmt.Errorf(`don't know how to construct a map in package "%v"`, file.PackageName)
	}

	data := map[string]interface{}{
		"PackageName": file.PackageName,
		"Constructor": constructor,
	}

	outFileName := strings.TrimSuffix(file.Name, ".go") + outSuffix // myMap.go -> myMap_bench_test.go

	outFile, err := os.Create(outFileName)
	if err != nil {
		return err
	}
	defer outFile.Close()

	outFileWriter := bufio.NewWriter(outFile)
	defer outFileWriter.Flush()

	tpl, err := template.New("benchmarksFileTemplate").Parse(benchmarksFileTemplate)
	if err != nil {
		return err
	}

	err = tpl.ExecuteTemplate(outFileWriter, "header", data)
	if err != nil {
		return err
	}

	for _, actionName := range benchmarkActionNames {
		data["Action"] = actionName
		for _, capacity := range capacities {
			data["Capacity"] = capacity
			for _, keyAmount := range keyAmounts {
				if keyAmount*1024 < capacity {
					continue
				}
				data["KeyAmount"] = keyAmount
				err = tpl.ExecuteTemplate(outFileWriter, "benchmarkFunction", data)
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}
