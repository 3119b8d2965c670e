package main

import (
	"go/parser"
	"go/token"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"
)

const markedSource = `//go:generate benchmarkCodeGen

package chaining
`

func TestGenerateTestFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "benchmarkCodeGen")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	if err := ioutil.WriteFile(path.Join(dir, "chaining_map.go"), []byte(markedSource), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(path.Join(dir, "chain.go"), []byte("package chaining\n"), 0644); err != nil {
		t.Fatal(err)
	}

	os.Unsetenv("GOFILE")
	files := parseHashMapSourceFiles(dir)
	if len(files) != 1 || files[0].PackageName != "chaining" {
		t.Fatalf("parseHashMapSourceFiles() == %v", files)
	}

	if err := files.GenerateTestFiles("_bench_test.go"); err != nil {
		t.Fatal(err)
	}

	outPath := path.Join(dir, "chaining_map_bench_test.go")
	out, err := ioutil.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), outPath, out, 0); err != nil {
		t.Fatalf("generated file doesn't parse: %v\n%s", err, out)
	}

	for _, expected := range []string{
		"return NewWithArgs(capacity, nil)",
		"func BenchmarkPut_capacity11_keyAmount16(b *testing.B)",
		"benchmark.DoBenchmarkOfGetMiss(b, benchmarkFactory, 1031, 512)",
		"func BenchmarkRemove_capacity65537_keyAmount65536(b *testing.B)",
	} {
		if !strings.Contains(string(out), expected) {
			t.Errorf("generated file doesn't contain %q", expected)
		}
	}
	if strings.Contains(string(out), "capacity65537_keyAmount16(") {
		t.Errorf("a benchmark with too few keys for the capacity was generated")
	}
}

func TestGenerateTestFileUnknownPackage(t *testing.T) {
	err := hashMapSourceFile{Name: "unknown.go", PackageName: "unknown"}.GenerateTestFile("_bench_test.go")
	if err == nil {
		t.Errorf("expected an error for a package without a constructor")
	}
}
