//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Search builds the CLI and runs a search, saving the results under
// queries/. Example: mage search "attention is all you need"
func Search(query string) error {
	mg.Deps(Build, Init)
	bin := filepath.Join(binDir, binName)
	return sh.RunV(bin, "search", "--query", query, "--save", filepath.Join("queries", "last.yaml"))
}
