// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main provides build targets for holonet using Mage.
//
// Usage:
//
//	mage build             Compile the holonet binary to bin/
//	mage serve [args]      Run holonet serve with extra arguments
//	mage test:all          Run all tests (unit + integration)
//	mage test:unit         Run only unit tests
//	mage test:integration  Build, then run the binary-driven tests
//	mage test:cover        Run unit tests with a coverage profile
//	mage lint              Run golangci-lint
//	mage clean             Remove build artifacts
//	mage install           Install holonet to GOPATH/bin
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "holonet"
	binaryDir  = "bin"
	cmdDir     = "./cmd/holonet"

	versionVar = "github.com/mesh-intelligence/holonet/internal/cli.Version"
)

// ldflags stamps the version from $HOLONET_VERSION or the latest git tag.
func ldflags() string {
	version := os.Getenv("HOLONET_VERSION")
	if version == "" {
		tag, err := sh.Output("git", "describe", "--tags", "--abbrev=0")
		if err != nil {
			return ""
		}
		version = tag
	}
	return "-X " + versionVar + "=" + strings.TrimPrefix(version, "v")
}

// Build compiles the holonet binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Serve builds and runs "holonet serve", passing any arguments after the
// target through (e.g. "mage serve --listen-addr :8080").
func Serve() error {
	mg.Deps(Build)
	args := append([]string{"serve"}, targetArgs...)
	return sh.RunV(filepath.Join(binaryDir, binaryName), args...)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := os.Remove(coverProfile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
