package main

const benchmarksFileTemplate = `
{{define "header"}}// Code generated by benchmarkCodeGen. DO NOT EDIT.

package {{.PackageName}}

import (
	"testing"

	I "github.com/xaionaro-go/primemap/interfaces"

	benchmark "github.com/xaionaro-go/primemap/internal/benchmarkRoutines"
)

func benchmarkFactory(capacity int) I.Basic {
	return {{.Constructor}}
}
{{end}}

{{define "benchmarkFunction"}}
func Benchmark{{.Action}}_capacity{{.Capacity}}_keyAmount{{.KeyAmount}}(b *testing.B) {
	benchmark.DoBenchmarkOf{{.Action}}(b, benchmarkFactory, {{.Capacity}}, {{.KeyAmount}})
}
{{end}}
`
