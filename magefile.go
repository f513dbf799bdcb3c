//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the figstyle binary
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/figstyle", "./cmd/figstyle")
}

// Test runs the full test suite with race detection
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet across the module
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs lint and tests
func QA() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
