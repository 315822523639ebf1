package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)

	got := strings.TrimSpace(out.String())
	assert.True(t, strings.HasPrefix(got, "paper-engine "+version+" "))
	assert.Contains(t, got, runtime.GOOS+"/"+runtime.GOARCH)
}
