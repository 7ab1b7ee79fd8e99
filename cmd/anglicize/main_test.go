package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_run_files(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(input, []byte("Я говорю"), 0o644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "out.txt")

	CLI.Files = []string{input}
	CLI.Output = output
	defer func() { CLI.Files = nil; CLI.Output = "" }()

	if err := run(strings.NewReader("")); err != nil {
		t.Fatalf("unexpected error %q", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Ya govoryu" {
		t.Errorf("output = %q, want %q", got, "Ya govoryu")
	}
}

func Test_run_stdin(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.txt")

	CLI.Files = nil
	CLI.Output = output
	defer func() { CLI.Output = "" }()

	if err := run(strings.NewReader("ЯЩЕРИЦА")); err != nil {
		t.Fatalf("unexpected error %q", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "YASCHERITSA" {
		t.Errorf("output = %q, want %q", got, "YASCHERITSA")
	}
}

func Test_run_removesPartialOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.txt")

	CLI.Files = []string{filepath.Join(dir, "missing.txt")}
	CLI.Output = output
	defer func() { CLI.Files = nil; CLI.Output = "" }()

	if err := run(strings.NewReader("")); err == nil {
		t.Fatal("expected an error for a missing input file")
	}

	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("partial output file left behind (stat err: %v)", err)
	}
}
