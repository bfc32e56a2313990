//go:build mage

// Build targets for theftwatch.
//
//	mage build     Compile theftwatch to bin/
//	mage test      Run all tests
//	mage lint      Run go vet and golangci-lint
//	mage swagger   Regenerate docs/ from handler annotations
//	mage migrate   Apply pending migrations
//	mage clean     Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "theftwatch"
	binaryDir  = "bin"
	cmdDir     = "./cmd"
)

var Default = Build

// Build compiles the theftwatch binary to bin/.
func Build() error {
	mg.Deps(Swagger)
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	return sh.RunV("go", "build", "-ldflags", "-X main.version="+version,
		"-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet and golangci-lint.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Swagger regenerates the OpenAPI docs package.
func Swagger() error {
	return sh.RunV("swag", "init", "-g", "cmd/main.go", "-o", "docs", "--outputTypes", "go")
}

// Migrate applies pending migrations with the built binary.
func Migrate() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "migrate", "up")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
