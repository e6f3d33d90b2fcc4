//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const samplesDir = "samples"

// Samples checks and converts every deck in samples/ into bin/samples/.
func Samples() error {
	mg.Deps(Build)

	decks, err := filepath.Glob(filepath.Join(samplesDir, "*.md"))
	if err != nil {
		return err
	}
	if len(decks) == 0 {
		fmt.Println("[samples] No decks found in", samplesDir)
		return nil
	}

	bin := filepath.Join(binDir, binName)
	outDir := filepath.Join(binDir, samplesDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	for _, in := range decks {
		base := strings.TrimSuffix(filepath.Base(in), ".md")
		out := filepath.Join(outDir, base+".pptx")
		if err := sh.RunV(bin, "check", in); err != nil {
			return fmt.Errorf("checking %s: %w", in, err)
		}
		if err := sh.RunV(bin, "convert", in, out); err != nil {
			return fmt.Errorf("converting %s: %w", in, err)
		}
	}
	return nil
}
