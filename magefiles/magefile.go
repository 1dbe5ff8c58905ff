//go:build mage

// Package main contains Mage build targets for column-extract developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "column-extract"
	cmdPkg  = "./cmd/column-extract"
)

// Inputs for the Example target.
const (
	exampleInput  = "./cf.csv"
	exampleColumn = "text"
	exampleOutput = "new.txt"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests for all packages.
func Test() error {
	if err := sh.RunV("go", "test", "./..."); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// Example builds the CLI and runs it on ./cf.csv, writing the text column to new.txt.
func Example() error {
	mg.Deps(Build)
	if err := sh.RunV(filepath.Join(binDir, binName), exampleInput, exampleColumn, exampleOutput); err != nil {
		return fmt.Errorf("running %s: %w", binName, err)
	}
	fmt.Printf("Wrote %s\n", exampleOutput)
	return nil
}

// Clean removes the bin/ directory.
func Clean() error {
	if err := sh.Rm(binDir); err != nil {
		return fmt.Errorf("removing %s: %w", binDir, err)
	}
	fmt.Println("Removed", binDir)
	return nil
}
