//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified.
var Default = Test

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Build compiles the papiext binary into bin/.
func Build() error {
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", "bin/papiext", "./cmd/papiext")
}

// Resolve builds papiext and prints the cgo environment for PAPI.
func Resolve() error {
	mg.Deps(Build)
	return sh.RunV("bin/papiext", "resolve", "-o", "env")
}
