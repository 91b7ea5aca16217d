//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through `go generate` (see render/renderer.go); importing
// it here keeps it tracked in go.mod so a fresh checkout can regenerate mocks.
package group_maker

import (
	_ "go.uber.org/mock/mockgen"
)
