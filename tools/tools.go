//go:build tools
// +build tools

package tools

import (
	_ "github.com/google/wire/cmd/wire"
	_ "github.com/wadey/gocovmerge"
	_ "go.uber.org/mock/mockgen"
	_ "mvdan.cc/gofumpt"
)
