//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "cipherpair"

// Default target to run when none is specified
var Default = Build

// Build compiles the cipherpair binary
func Build() error {
	mg.Deps(Vet)
	return sh.RunV("go", "build", "-o", binary, "./cmd/cipherpair")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Integration runs the tests that talk to real providers
func Integration() error {
	if os.Getenv("OPENAI_API_KEY") == "" {
		return mg.Fatal(1, "OPENAI_API_KEY must be set for integration tests")
	}
	return sh.RunV("go", "test", "-count=1", "./internal/translation/...", "./internal/models/...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/cipherpair")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
