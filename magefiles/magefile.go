// Package main provides build targets for the kiln project using Mage.
//
// Usage:
//
//	mage build    Compile the kiln-stress binary to bin/
//	mage test     Run all tests
//	mage bench    Run the ecs benchmarks
//	mage lint     Run golangci-lint
//	mage stress   Build and run a short stress test
//	mage clean    Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "kiln-stress"
	binaryDir  = "bin"
	cmdDir     = "./cmd/kiln-stress"
)

// Build compiles the kiln-stress binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Bench runs the ecs benchmarks.
func Bench() error {
	return sh.RunV("go", "test", "-bench=.", "-benchmem", "-run=^$", "./ecs/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Stress builds the stress binary and runs a short simulation.
func Stress() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "run", "--duration", "10s", "--entities", "10000")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}
